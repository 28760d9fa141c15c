package meshuv

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrMissingPositions marks a mesh with no position attribute. Such a mesh
// cannot contribute geometry; callers skip it rather than fail the scene.
var ErrMissingPositions = errors.New("meshuv: mesh has no position attribute")

// MergeTolerance is the world-space distance under which two vertices weld
// into one during PrepareForWorldProjection.
const MergeTolerance = 1e-5

// PrepareForWorldProjection produces the buffer MapWorldSpaceUVs expects from
// arbitrary imported geometry: normals present, UV storage allocated,
// topology flattened so every triangle owns its corners, positions and
// normals brought into world space. With weld set, coincident vertices are
// merged back into shared ones with a common normal, which is what lets the
// per-vertex mapping mode produce a continuous UV field across a solid.
//
// The input buffer is not modified; the returned buffer is owned by the
// caller.
func PrepareForWorldProjection(mesh *MeshBuffer, world mgl32.Mat4, weld bool) (*MeshBuffer, error) {
	if mesh == nil || len(mesh.Positions) == 0 {
		return nil, ErrMissingPositions
	}

	out := &MeshBuffer{
		Positions: append([]float32(nil), mesh.Positions...),
		Indices:   append([]uint32(nil), mesh.Indices...),
		Space:     mesh.Space,
	}
	if mesh.HasNormals() {
		out.Normals = append([]float32(nil), mesh.Normals...)
	} else {
		out.Normals = computeVertexNormals(out)
	}
	if mesh.HasUVs() {
		out.UVs = append([]float32(nil), mesh.UVs...)
	} else {
		// Placeholder so every attribute has the same vertex count through
		// the steps below; the mapper overwrites it.
		out.UVs = make([]float32, 2*out.VertexCount())
	}

	out = expandToTriangleList(out)
	transformMesh(out, world)

	if weld {
		out = weldVertices(out, MergeTolerance)
		out.Normals = computeVertexNormals(out)
	}
	return out, nil
}

// computeVertexNormals averages the unnormalized face normals of every
// triangle touching a vertex, which weights each face by its area, then
// normalizes.
func computeVertexNormals(mesh *MeshBuffer) []float32 {
	normals := make([]float32, 3*mesh.VertexCount())
	for t := 0; t < mesh.TriangleCount(); t++ {
		i0, i1, i2 := mesh.Triangle(t)
		v0 := mesh.Position(i0)
		face := mesh.Position(i1).Sub(v0).Cross(mesh.Position(i2).Sub(v0))
		for _, i := range [3]int{i0, i1, i2} {
			normals[3*i] += face.X()
			normals[3*i+1] += face.Y()
			normals[3*i+2] += face.Z()
		}
	}
	for i := 0; i < len(normals); i += 3 {
		n := mgl32.Vec3{normals[i], normals[i+1], normals[i+2]}
		if l := n.Len(); l > 0 {
			n = n.Mul(1 / l)
		}
		normals[i], normals[i+1], normals[i+2] = n.X(), n.Y(), n.Z()
	}
	return normals
}

// expandToTriangleList resolves an index list into a flat triangle soup where
// every triangle owns three vertices. Later steps write per-corner UV and
// normal values that must be allowed to differ at shared positions until
// welding decides otherwise.
func expandToTriangleList(mesh *MeshBuffer) *MeshBuffer {
	if len(mesh.Indices) == 0 {
		return mesh
	}
	n := len(mesh.Indices)
	out := &MeshBuffer{
		Positions: make([]float32, 0, 3*n),
		Normals:   make([]float32, 0, 3*n),
		UVs:       make([]float32, 0, 2*n),
		Space:     mesh.Space,
	}
	for _, idx := range mesh.Indices {
		i := int(idx)
		out.Positions = append(out.Positions, mesh.Positions[3*i], mesh.Positions[3*i+1], mesh.Positions[3*i+2])
		out.Normals = append(out.Normals, mesh.Normals[3*i], mesh.Normals[3*i+1], mesh.Normals[3*i+2])
		out.UVs = append(out.UVs, mesh.UVs[2*i], mesh.UVs[2*i+1])
	}
	return out
}

// transformMesh applies the world matrix to positions and its
// inverse-transpose to normals, renormalizing so non-uniform scale cannot
// leave non-unit normals behind.
func transformMesh(mesh *MeshBuffer, world mgl32.Mat4) {
	normalMat := world.Inv().Transpose().Mat3()
	for i := 0; i < mesh.VertexCount(); i++ {
		p := world.Mul4x1(mesh.Position(i).Vec4(1))
		mesh.SetPosition(i, p.Vec3())
		if len(mesh.Normals) > 0 {
			n := normalMat.Mul3x1(mesh.Normal(i))
			if l := n.Len(); l > 0 {
				n = n.Mul(1 / l)
			}
			mesh.SetNormal(i, n)
		}
	}
	mesh.Space = SpaceWorld
}

// weldVertices collapses vertices whose positions agree within tol into one
// shared vertex, averaging their normals and keeping the first UV, and
// returns an indexed buffer over the surviving vertices. Hashing quantizes
// each component to the tolerance, so "within tol" is by rounding cell, not
// euclidean distance.
func weldVertices(mesh *MeshBuffer, tol float64) *MeshBuffer {
	inv := 1 / tol
	seen := make(map[[3]int64]int, mesh.VertexCount())

	out := &MeshBuffer{Space: mesh.Space}
	indices := make([]uint32, 0, 3*mesh.TriangleCount())

	remap := func(i int) uint32 {
		p := mesh.Position(i)
		key := [3]int64{
			int64(math.Round(float64(p.X()) * inv)),
			int64(math.Round(float64(p.Y()) * inv)),
			int64(math.Round(float64(p.Z()) * inv)),
		}
		if j, ok := seen[key]; ok {
			out.Normals[3*j] += mesh.Normals[3*i]
			out.Normals[3*j+1] += mesh.Normals[3*i+1]
			out.Normals[3*j+2] += mesh.Normals[3*i+2]
			return uint32(j)
		}
		j := out.VertexCount()
		out.Positions = append(out.Positions, p.X(), p.Y(), p.Z())
		out.Normals = append(out.Normals, mesh.Normals[3*i], mesh.Normals[3*i+1], mesh.Normals[3*i+2])
		out.UVs = append(out.UVs, mesh.UVs[2*i], mesh.UVs[2*i+1])
		seen[key] = j
		return uint32(j)
	}

	for t := 0; t < mesh.TriangleCount(); t++ {
		i0, i1, i2 := mesh.Triangle(t)
		indices = append(indices, remap(i0), remap(i1), remap(i2))
	}
	out.Indices = indices

	// Accumulated normals become averages once renormalized.
	for i := 0; i < len(out.Normals); i += 3 {
		n := mgl32.Vec3{out.Normals[i], out.Normals[i+1], out.Normals[i+2]}
		if l := n.Len(); l > 0 {
			n = n.Mul(1 / l)
		}
		out.Normals[i], out.Normals[i+1], out.Normals[i+2] = n.X(), n.Y(), n.Z()
	}
	return out
}
