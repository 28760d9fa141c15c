package meshuv

import (
	"github.com/chewxy/math32"
)

// UVMode selects how MapWorldSpaceUVs obtains the normal that drives axis
// selection.
type UVMode int

const (
	// PerVertexNormal uses the normals already stored on the buffer, one
	// write per vertex. Intended for welded geometry whose normals were
	// averaged across coincident vertices.
	PerVertexNormal UVMode = iota
	// PerTriangleComputed recomputes a face normal per triangle and writes
	// all three corners, producing flat per-face shading. Intended for
	// non-indexed geometry where import topology must survive untouched.
	PerTriangleComputed
)

// Grid is the snap resolution for world-space UVs, in world units. Snapping
// forces shared seams from different source objects onto bit-identical UV
// values; without it, float noise from transform composition leaves
// micro-seams. Empirically tuned.
const Grid = float32(1.0 / 512.0)

func snapToGrid(v float32) float32 {
	return math32.Round(v/Grid) * Grid
}

// MapWorldSpaceUVs overwrites the buffer's UVs and normals with a world-space
// planar projection: each vertex projects onto the two axes perpendicular to
// its normal's dominant axis, grid-snapped, with U mirrored on negative-facing
// sides. Positions must already be in world space (see
// PrepareForWorldProjection). The resulting texture tiles with a period of one
// world unit regardless of mesh origin, so unrelated meshes sharing a plane
// line up at the seam.
func MapWorldSpaceUVs(mesh *MeshBuffer, mode UVMode) {
	if mesh == nil || mesh.VertexCount() == 0 {
		return
	}
	if !mesh.HasNormals() {
		mesh.Normals = make([]float32, 3*mesh.VertexCount())
	}
	if !mesh.HasUVs() {
		mesh.UVs = make([]float32, 2*mesh.VertexCount())
	}

	switch mode {
	case PerTriangleComputed:
		for t := 0; t < mesh.TriangleCount(); t++ {
			i0, i1, i2 := mesh.Triangle(t)
			v0 := mesh.Position(i0)
			e1 := mesh.Position(i1).Sub(v0)
			e2 := mesh.Position(i2).Sub(v0)
			// Degenerate triangles produce a NaN normal here; ProjectAxis
			// still returns a deterministic axis and the triangle has no
			// visible area, so nothing guards against it.
			face := e1.Cross(e2).Normalize()
			res := ProjectAxis(face)
			writeProjected(mesh, i0, res)
			writeProjected(mesh, i1, res)
			writeProjected(mesh, i2, res)
		}
	case PerVertexNormal:
		for i := 0; i < mesh.VertexCount(); i++ {
			writeProjected(mesh, i, ProjectAxis(mesh.Normal(i)))
		}
	}
}

func writeProjected(mesh *MeshBuffer, i int, res AxisResult) {
	uAxis, vAxis := UVAxes(res.Axis)
	p := mesh.Position(i)
	u := snapToGrid(p[int(uAxis)])
	v := snapToGrid(p[int(vAxis)])
	if res.Sign < 0 {
		u = -u
	}
	mesh.UVs[2*i] = u
	mesh.UVs[2*i+1] = v
	mesh.SetNormal(i, res.Normal())
}
