package meshuv

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Space tags whether a buffer's positions are in the mesh's own frame or in
// the shared world frame.
type Space int

const (
	SpaceLocal Space = iota
	SpaceWorld
)

// MeshBuffer is a triangle mesh with flat attribute arrays: 3 floats per
// vertex for positions and normals, 2 per vertex for UVs. Triangles are
// either explicit through Indices or implicit (every 3 consecutive vertices).
// The kernel mutates Normals and UVs in place; the buffer itself is owned by
// the caller for its whole lifetime.
type MeshBuffer struct {
	Positions []float32
	Normals   []float32
	UVs       []float32
	Indices   []uint32
	Space     Space
}

func (m *MeshBuffer) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount counts explicit triangles when indexed, implicit ones
// otherwise.
func (m *MeshBuffer) TriangleCount() int {
	if len(m.Indices) > 0 {
		return len(m.Indices) / 3
	}
	return m.VertexCount() / 3
}

func (m *MeshBuffer) HasNormals() bool {
	return len(m.Normals) == 3*m.VertexCount() && m.VertexCount() > 0
}

func (m *MeshBuffer) HasUVs() bool {
	return len(m.UVs) == 2*m.VertexCount() && m.VertexCount() > 0
}

// Triangle returns the three vertex indices of triangle t.
func (m *MeshBuffer) Triangle(t int) (i0, i1, i2 int) {
	if len(m.Indices) > 0 {
		return int(m.Indices[3*t]), int(m.Indices[3*t+1]), int(m.Indices[3*t+2])
	}
	return 3 * t, 3*t + 1, 3*t + 2
}

func (m *MeshBuffer) Position(i int) mgl32.Vec3 {
	return mgl32.Vec3{m.Positions[3*i], m.Positions[3*i+1], m.Positions[3*i+2]}
}

func (m *MeshBuffer) SetPosition(i int, p mgl32.Vec3) {
	m.Positions[3*i] = p.X()
	m.Positions[3*i+1] = p.Y()
	m.Positions[3*i+2] = p.Z()
}

func (m *MeshBuffer) Normal(i int) mgl32.Vec3 {
	return mgl32.Vec3{m.Normals[3*i], m.Normals[3*i+1], m.Normals[3*i+2]}
}

func (m *MeshBuffer) SetNormal(i int, n mgl32.Vec3) {
	m.Normals[3*i] = n.X()
	m.Normals[3*i+1] = n.Y()
	m.Normals[3*i+2] = n.Z()
}

func (m *MeshBuffer) UV(i int) mgl32.Vec2 {
	return mgl32.Vec2{m.UVs[2*i], m.UVs[2*i+1]}
}

func (m *MeshBuffer) SetUV(i int, uv mgl32.Vec2) {
	m.UVs[2*i] = uv.X()
	m.UVs[2*i+1] = uv.Y()
}
