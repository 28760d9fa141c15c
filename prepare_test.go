package meshuv

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepare_MissingPositionsSkipsMesh(t *testing.T) {
	_, err := PrepareForWorldProjection(&MeshBuffer{}, mgl32.Ident4(), false)
	require.ErrorIs(t, err, ErrMissingPositions)

	_, err = PrepareForWorldProjection(nil, mgl32.Ident4(), false)
	require.ErrorIs(t, err, ErrMissingPositions)
}

func TestPrepare_ExpandsIndexedTopology(t *testing.T) {
	quad := &MeshBuffer{
		Positions: []float32{
			0, 0, 0,
			1, 0, 0,
			1, 1, 0,
			0, 1, 0,
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
	out, err := PrepareForWorldProjection(quad, mgl32.Ident4(), false)
	require.NoError(t, err)

	assert.Equal(t, 6, out.VertexCount(), "every triangle owns its corners")
	assert.Empty(t, out.Indices)
	assert.Equal(t, 2, out.TriangleCount())
	assert.Equal(t, SpaceWorld, out.Space)
	// Input untouched.
	assert.Equal(t, 4, quad.VertexCount())
	assert.Len(t, quad.Indices, 6)
}

func TestPrepare_ComputesNormalsWhenAbsent(t *testing.T) {
	tri := &MeshBuffer{
		Positions: []float32{
			0, 0, 0,
			1, 0, 0,
			0, 1, 0,
		},
	}
	out, err := PrepareForWorldProjection(tri, mgl32.Ident4(), false)
	require.NoError(t, err)
	require.True(t, out.HasNormals())
	require.True(t, out.HasUVs(), "placeholder UVs keep attribute shape consistent")

	for i := 0; i < 3; i++ {
		assert.Equal(t, mgl32.Vec3{0, 0, 1}, out.Normal(i))
	}
}

func TestPrepare_NormalsUseInverseTranspose(t *testing.T) {
	// Rotate a +Z facing triangle 90 degrees about Y: the normal has to
	// follow to +X and stay unit length.
	tri := &MeshBuffer{
		Positions: []float32{
			0, 0, 0,
			1, 0, 0,
			0, 1, 0,
		},
		Normals: []float32{
			0, 0, 1,
			0, 0, 1,
			0, 0, 1,
		},
	}
	rot := mgl32.HomogRotate3DY(math.Pi / 2)
	out, err := PrepareForWorldProjection(tri, rot, false)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		n := out.Normal(i)
		assert.InDelta(t, 1, n.X(), 1e-5)
		assert.InDelta(t, 0, n.Y(), 1e-5)
		assert.InDelta(t, 0, n.Z(), 1e-5)
	}
}

func TestPrepare_WeldsCubeCorners(t *testing.T) {
	// A box arrives as 36 loose corners; welding collapses the 3 coincident
	// corners at each of the 8 cube corners into shared vertices.
	cube := BuildBoxMesh(mgl32.Vec3{0.5, 0.5, 0.5})
	out, err := PrepareForWorldProjection(cube, mgl32.Ident4(), true)
	require.NoError(t, err)

	assert.Equal(t, 8, out.VertexCount())
	assert.Equal(t, 12, out.TriangleCount())
	assert.Len(t, out.Indices, 36)
}

func TestPrepare_WeldIdempotent(t *testing.T) {
	cube := BuildBoxMesh(mgl32.Vec3{0.5, 0.5, 0.5})
	once, err := PrepareForWorldProjection(cube, mgl32.Ident4(), true)
	require.NoError(t, err)
	twice, err := PrepareForWorldProjection(once, mgl32.Ident4(), true)
	require.NoError(t, err)

	assert.Equal(t, once.VertexCount(), twice.VertexCount())
	assert.Equal(t, once.TriangleCount(), twice.TriangleCount())
}

func TestPrepare_ThenMapUnitCube(t *testing.T) {
	// Unit cube spanning [0,1]^3 through the full import pipeline: prepare
	// with weld, then per-vertex world projection. Every vertex must come
	// out with an axis-aligned normal and a UV equal to the projection of
	// its own (integer) coordinates.
	cube := BuildBoxMesh(mgl32.Vec3{0.5, 0.5, 0.5})
	world := mgl32.Translate3D(0.5, 0.5, 0.5)
	out, err := PrepareForWorldProjection(cube, world, true)
	require.NoError(t, err)
	require.Equal(t, 8, out.VertexCount())

	MapWorldSpaceUVs(out, PerVertexNormal)

	for i := 0; i < out.VertexCount(); i++ {
		n := out.Normal(i)
		axisAligned := n == mgl32.Vec3{1, 0, 0} || n == mgl32.Vec3{-1, 0, 0} ||
			n == mgl32.Vec3{0, 1, 0} || n == mgl32.Vec3{0, -1, 0} ||
			n == mgl32.Vec3{0, 0, 1} || n == mgl32.Vec3{0, 0, -1}
		require.True(t, axisAligned, "vertex %d normal %v not snapped", i, n)

		res := AxisResult{Axis: AxisZ, Sign: n.Z()}
		switch {
		case n.X() != 0:
			res = AxisResult{Axis: AxisX, Sign: n.X()}
		case n.Y() != 0:
			res = AxisResult{Axis: AxisY, Sign: n.Y()}
		}
		uAxis, vAxis := UVAxes(res.Axis)
		p := out.Position(i)
		wantU := p[int(uAxis)]
		if res.Sign < 0 {
			wantU = -wantU
		}
		assert.Equal(t, mgl32.Vec2{wantU, p[int(vAxis)]}, out.UV(i), "vertex %d", i)
	}
}
