package meshuv

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

type AssetId string

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}

// Brush is an editor-authored solid: a synthetic primitive or an imported
// mesh. The interface is a closed sum; adding a kind means touching every
// switch over it, which is the point.
type Brush interface {
	isBrush()
}

// BoxBrush is an axis-aligned box described by its half extents.
type BoxBrush struct {
	HalfExtents mgl32.Vec3
}

// CylinderBrush is a Y-axis cylinder.
type CylinderBrush struct {
	Radius         float32
	Height         float32
	RadialSegments int
	HeightSegments int
}

// ImportedBrush wraps geometry from a scene file. Weld selects the prepared
// pipeline variant: welded solids get a continuous per-vertex UV field,
// unwelded ones keep their import topology and get flat per-triangle UVs.
type ImportedBrush struct {
	Mesh *MeshBuffer
	Weld bool
}

func (BoxBrush) isBrush()      {}
func (CylinderBrush) isBrush() {}
func (ImportedBrush) isBrush() {}

// BuildBrushMesh turns a brush description into local-space geometry.
// Primitives come out with closed-form UVs already applied; imported brushes
// are returned as-is and only become usable after the world projection
// pipeline in LoadScene.
func BuildBrushMesh(b Brush) (*MeshBuffer, error) {
	switch b := b.(type) {
	case BoxBrush:
		return BuildBoxMesh(b.HalfExtents), nil
	case CylinderBrush:
		return BuildCylinderMesh(b.Radius, b.Height, b.RadialSegments, b.HeightSegments), nil
	case ImportedBrush:
		if b.Mesh == nil || len(b.Mesh.Positions) == 0 {
			return nil, ErrMissingPositions
		}
		return b.Mesh, nil
	default:
		return nil, fmt.Errorf("meshuv: unknown brush kind %T", b)
	}
}

// BrushServer stores finished brush meshes under generated asset ids, the
// handle the material and rendering side looks meshes up by.
type BrushServer struct {
	meshes map[AssetId]*MeshBuffer
}

func NewBrushServer() *BrushServer {
	return &BrushServer{meshes: make(map[AssetId]*MeshBuffer)}
}

func (s *BrushServer) Register(mesh *MeshBuffer) AssetId {
	id := makeAssetId()
	s.meshes[id] = mesh
	return id
}

func (s *BrushServer) Mesh(id AssetId) (*MeshBuffer, bool) {
	m, ok := s.meshes[id]
	return m, ok
}

func (s *BrushServer) Len() int {
	return len(s.meshes)
}
