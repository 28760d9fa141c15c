package meshuv

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Axis identifies one of the three world axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return "?"
}

// TieEpsilon is the magnitude gap below which the two largest normal
// components are considered ambiguous. Empirically tuned; changing it
// changes axis selection globally.
const TieEpsilon = 0.2

// AxisResult is a normal collapsed to a signed principal axis.
type AxisResult struct {
	Axis Axis
	Sign float32
}

// Normal returns the axis-aligned unit normal for the result.
func (r AxisResult) Normal() mgl32.Vec3 {
	var n mgl32.Vec3
	n[int(r.Axis)] = r.Sign
	return n
}

// uvAxisPairs maps a dominant axis to the two world axes written to (U, V).
var uvAxisPairs = [3][2]Axis{
	AxisX: {AxisZ, AxisY},
	AxisY: {AxisX, AxisZ},
	AxisZ: {AxisX, AxisY},
}

// UVAxes returns which world axes a face projects onto for its U and V
// coordinates, given the dominant axis of its normal.
func UVAxes(axis Axis) (u, v Axis) {
	pair := uvAxisPairs[axis]
	return pair[0], pair[1]
}

// ProjectAxis collapses a (near-)unit normal onto one of the six signed
// principal axes. When the two largest components are within TieEpsilon of
// each other the choice would flip between neighboring triangles of the same
// quad and shear the texture along the diagonal, so the smallest component's
// axis is used instead: it is stable across the whole quad.
//
// The input is assumed valid; a zero or NaN normal still yields a
// deterministic result because every NaN comparison is false, but which axis
// wins is unspecified.
func ProjectAxis(normal mgl32.Vec3) AxisResult {
	abs := [3]float32{
		math32.Abs(normal.X()),
		math32.Abs(normal.Y()),
		math32.Abs(normal.Z()),
	}

	// Order the axes by falling magnitude with explicit swaps.
	order := [3]Axis{AxisX, AxisY, AxisZ}
	if abs[order[1]] > abs[order[0]] {
		order[0], order[1] = order[1], order[0]
	}
	if abs[order[2]] > abs[order[1]] {
		order[1], order[2] = order[2], order[1]
	}
	if abs[order[1]] > abs[order[0]] {
		order[0], order[1] = order[1], order[0]
	}

	dominant := order[0]
	if abs[order[0]]-abs[order[1]] < TieEpsilon {
		dominant = order[2]
	}

	sign := float32(1)
	if normal[int(dominant)] < 0 {
		sign = -1
	}
	return AxisResult{Axis: dominant, Sign: sign}
}
