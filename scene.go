package meshuv

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// BrushDef places one brush in the world.
type BrushDef struct {
	Brush    Brush
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

// SceneDef defines the brush content of a level.
type SceneDef struct {
	Brushes []BrushDef
}

// WorldMatrix composes the brush's TRS transform. Zero-valued rotation and
// scale read as identity so a bare BrushDef{Brush: ..., Position: ...} does
// what it looks like.
func (d BrushDef) WorldMatrix() mgl32.Mat4 {
	rot := d.Rotation
	if rot.Len() == 0 {
		rot = mgl32.QuatIdent()
	}
	scale := d.Scale
	if scale == (mgl32.Vec3{}) {
		scale = mgl32.Vec3{1, 1, 1}
	}
	return mgl32.Translate3D(d.Position.X(), d.Position.Y(), d.Position.Z()).
		Mul4(rot.Mat4()).
		Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
}

// LoadScene runs every brush through its texturing pipeline and registers the
// finished world-space meshes with the server, returning their ids in brush
// order. Primitives keep their closed-form UVs and are only moved into world
// space. Imported meshes go through prepare + world projection; welded ones
// use the per-vertex mapping, unwelded ones the per-triangle mapping. A brush
// whose mesh has no positions cannot contribute geometry and is skipped with
// a warning rather than failing the scene.
func LoadScene(server *BrushServer, scene *SceneDef, logger Logger) []AssetId {
	if logger == nil {
		logger = NewNopLogger()
	}
	ids := make([]AssetId, 0, len(scene.Brushes))
	for i, def := range scene.Brushes {
		mesh, err := buildWorldBrush(def)
		if err != nil {
			if errors.Is(err, ErrMissingPositions) {
				logger.Warnf("scene: skipping brush %d: %v", i, err)
				continue
			}
			logger.Errorf("scene: brush %d: %v", i, err)
			continue
		}
		ids = append(ids, server.Register(mesh))
	}
	return ids
}

func buildWorldBrush(def BrushDef) (*MeshBuffer, error) {
	world := def.WorldMatrix()
	switch b := def.Brush.(type) {
	case ImportedBrush:
		mesh, err := PrepareForWorldProjection(b.Mesh, world, b.Weld)
		if err != nil {
			return nil, err
		}
		mode := PerTriangleComputed
		if b.Weld {
			mode = PerVertexNormal
		}
		MapWorldSpaceUVs(mesh, mode)
		return mesh, nil
	default:
		mesh, err := BuildBrushMesh(def.Brush)
		if err != nil {
			return nil, err
		}
		transformMesh(mesh, world)
		return mesh, nil
	}
}

// GridLayout is the output format of the external layout generator: rows of
// cells, '#' for a wall cell, anything else for open floor.
type GridLayout struct {
	Rows       []string
	CellSize   float32
	WallHeight float32
}

// LoadGridLayout converts a wall grid into box brush placements, one
// full-cell box per wall cell, sitting on Y=0. Row r runs along +Z and
// column c along +X.
func LoadGridLayout(layout GridLayout) []BrushDef {
	if layout.CellSize <= 0 {
		layout.CellSize = 1
	}
	if layout.WallHeight <= 0 {
		layout.WallHeight = 1
	}
	half := mgl32.Vec3{layout.CellSize / 2, layout.WallHeight / 2, layout.CellSize / 2}
	var defs []BrushDef
	for r, row := range layout.Rows {
		for c, cell := range row {
			if cell != '#' {
				continue
			}
			defs = append(defs, BrushDef{
				Brush: BoxBrush{HalfExtents: half},
				Position: mgl32.Vec3{
					float32(c)*layout.CellSize + layout.CellSize/2,
					layout.WallHeight / 2,
					float32(r)*layout.CellSize + layout.CellSize/2,
				},
				Rotation: mgl32.QuatIdent(),
				Scale:    mgl32.Vec3{1, 1, 1},
			})
		}
	}
	return defs
}
