package meshuv

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// boxFaces lists each face's outward normal and the in-plane directions its
// U and V run along, in the fixed ±X, ±Y, ±Z face order. The directions are
// chosen so uDir x vDir equals the normal, which makes the shared corner
// ordering below wind counter-clockwise from outside.
var boxFaces = [6]struct {
	normal, uDir, vDir mgl32.Vec3
}{
	{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
	{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
}

// quadCorners walks a face quad as two CCW triangles in (u, v) sign space.
var quadCorners = [6][2]float32{
	{-1, -1}, {1, -1}, {1, 1},
	{-1, -1}, {1, 1}, {-1, 1},
}

// BuildBoxMesh builds a non-indexed box centered on the origin with its UVs
// already scaled to the faces' physical sizes, so a freshly constructed brush
// tiles at one texture repeat per world unit without any projection pass.
func BuildBoxMesh(halfExtents mgl32.Vec3) *MeshBuffer {
	scales := UnwrapBox(halfExtents)
	mesh := &MeshBuffer{
		Positions: make([]float32, 0, 36*3),
		Normals:   make([]float32, 0, 36*3),
		UVs:       make([]float32, 0, 36*2),
		Space:     SpaceLocal,
	}
	for f, face := range boxFaces {
		hn := math32.Abs(face.normal.Dot(halfExtents))
		hu := math32.Abs(face.uDir.Dot(halfExtents))
		hv := math32.Abs(face.vDir.Dot(halfExtents))
		for _, c := range quadCorners {
			su, sv := c[0], c[1]
			p := face.normal.Mul(hn).
				Add(face.uDir.Mul(su * hu)).
				Add(face.vDir.Mul(sv * hv))
			mesh.Positions = append(mesh.Positions, p.X(), p.Y(), p.Z())
			mesh.Normals = append(mesh.Normals, face.normal.X(), face.normal.Y(), face.normal.Z())
			mesh.UVs = append(mesh.UVs,
				(su+1)/2*scales[f].X(),
				(sv+1)/2*scales[f].Y())
		}
	}
	return mesh
}

// BuildCylinderMesh builds a non-indexed cylinder on the Y axis, centered on
// the origin, with the side sheet unrolled to circumference x height and
// radial cap UVs per UnwrapCylinder. radialSegments is clamped to 3 and
// heightSegments to 1.
func BuildCylinderMesh(radius, height float32, radialSegments, heightSegments int) *MeshBuffer {
	if radialSegments < 3 {
		radialSegments = 3
	}
	if heightSegments < 1 {
		heightSegments = 1
	}
	sideScale, capScale := UnwrapCylinder(radius, height, radialSegments)
	mesh := &MeshBuffer{Space: SpaceLocal}
	halfH := height / 2

	cos := make([]float32, radialSegments+1)
	sin := make([]float32, radialSegments+1)
	for i := 0; i <= radialSegments; i++ {
		theta := float32(i) / float32(radialSegments) * 2 * math32.Pi
		cos[i], sin[i] = math32.Cos(theta), math32.Sin(theta)
	}

	side := func(i, j int) {
		y := -halfH + float32(j)/float32(heightSegments)*height
		p := mgl32.Vec3{radius * cos[i], y, radius * sin[i]}
		n := mgl32.Vec3{cos[i], 0, sin[i]}
		mesh.Positions = append(mesh.Positions, p.X(), p.Y(), p.Z())
		mesh.Normals = append(mesh.Normals, n.X(), n.Y(), n.Z())
		mesh.UVs = append(mesh.UVs,
			float32(i)/float32(radialSegments)*sideScale.X(),
			float32(j)/float32(heightSegments)*sideScale.Y())
	}
	for j := 0; j < heightSegments; j++ {
		for i := 0; i < radialSegments; i++ {
			// Quad corners a=(i,j) b=(i+1,j) c=(i+1,j+1) d=(i,j+1),
			// wound outward.
			side(i, j)
			side(i, j+1)
			side(i+1, j+1)
			side(i, j)
			side(i+1, j+1)
			side(i+1, j)
		}
	}

	capVert := func(i int, top bool) {
		y, ny, vSign := halfH, float32(1), float32(1)
		if !top {
			y, ny, vSign = -halfH, -1, -1
		}
		mesh.Positions = append(mesh.Positions, radius*cos[i], y, radius*sin[i])
		mesh.Normals = append(mesh.Normals, 0, ny, 0)
		mesh.UVs = append(mesh.UVs,
			(0.5+0.5*cos[i])*capScale.X(),
			(0.5+vSign*0.5*sin[i])*capScale.Y())
	}
	capCenter := func(top bool) {
		y, ny := halfH, float32(1)
		if !top {
			y, ny = -halfH, -1
		}
		mesh.Positions = append(mesh.Positions, 0, y, 0)
		mesh.Normals = append(mesh.Normals, 0, ny, 0)
		mesh.UVs = append(mesh.UVs, 0.5*capScale.X(), 0.5*capScale.Y())
	}
	for i := 0; i < radialSegments; i++ {
		capCenter(true)
		capVert(i+1, true)
		capVert(i, true)

		capCenter(false)
		capVert(i, false)
		capVert(i+1, false)
	}
	return mesh
}
