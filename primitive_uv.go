package meshuv

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// BoxFace indexes the fixed face order of a box primitive.
type BoxFace int

const (
	BoxFacePosX BoxFace = iota
	BoxFaceNegX
	BoxFacePosY
	BoxFaceNegY
	BoxFacePosZ
	BoxFaceNegZ
)

// UnwrapBox returns, per face in ±X, ±Y, ±Z order, the factor that scales the
// face's default [0,1]x[0,1] parametrization so one texture tile covers one
// world unit. Each face's scale is simply its physical size along the plane
// it spans: the ±X faces span depth and height, and so on per the UVAxes
// table.
func UnwrapBox(halfExtents mgl32.Vec3) [6]mgl32.Vec2 {
	w := halfExtents.Mul(2) // full size
	x := mgl32.Vec2{w.Z(), w.Y()}
	y := mgl32.Vec2{w.X(), w.Z()}
	z := mgl32.Vec2{w.X(), w.Y()}
	return [6]mgl32.Vec2{x, x, y, y, z, z}
}

// UnwrapCylinder returns the UV scale of the side sheet and of the end caps.
// The side unrolls to circumference x height. Caps use a radial layout
// centered on (0.5, 0.5) of the unit square, scaled to the cap diameter so
// the texture density matches the side exactly at the rim.
func UnwrapCylinder(radius, height float32, radialSegments int) (sideScale, capScale mgl32.Vec2) {
	sideScale = mgl32.Vec2{2 * math32.Pi * radius, height}
	capScale = mgl32.Vec2{2 * radius, 2 * radius}
	return sideScale, capScale
}
