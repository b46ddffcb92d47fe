package aa

import (
	"fmt"

	"github.com/gogpu/texraster"
)

// DefaultFollowSteps is the default step limit of FollowLine.
const DefaultFollowSteps = 8

// Direction is a compass direction for FollowLine.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return fmt.Sprintf("Direction(%d)", d)
	}
}

// delta returns the step of one move in direction d.
func (d Direction) delta() offset {
	switch d {
	case North:
		return offset{-1, 0}
	case South:
		return offset{1, 0}
	case East:
		return offset{0, 1}
	default:
		return offset{0, -1}
	}
}

// side returns the positive side of a walk in direction d: north for
// horizontal walks, east for vertical ones.
func (d Direction) side() offset {
	if d == North || d == South {
		return offset{0, 1}
	}
	return offset{-1, 0}
}

// directionOf returns the direction whose step is o.
func directionOf(o offset) Direction {
	switch o {
	case offset{-1, 0}:
		return North
	case offset{1, 0}:
		return South
	case offset{0, 1}:
		return East
	default:
		return West
	}
}

// FollowLine walks from (row, col) in direction dir along the edge the
// start pixel lies on and reports where the edge turns.
//
// The walk tracks the pixels on both sides of the path. It starts only
// when the start pixel differs from at least one of its side pixels. At
// step n it returns +n when the edge bends towards the positive side
// (north for East and West walks, east for North and South walks) and -n
// when it bends towards the negative side. It returns 0 when the path
// ends without a clean bend, when both sides change at once, when it
// meets a T or Y junction, or when maxSteps moves find no bend. Pixels
// outside r are background.
func FollowLine(r *texraster.Raster, row, col int, dir Direction, maxSteps int) int {
	if !r.InBounds(row, col) {
		return 0
	}
	step, side := dir.delta(), dir.side()
	bit := func(o offset) bool { return r.Bit(row+o.dr, col+o.dc) }
	neg := offset{-side.dr, -side.dc}

	v := bit(offset{})
	a, b := bit(side), bit(neg)
	if a == v && b == v {
		return 0
	}
	for n := 1; n <= maxSteps; n++ {
		row += step.dr
		col += step.dc
		c, sa, sb := bit(offset{}), bit(side), bit(neg)
		if c != v {
			switch {
			case sa == v && sb != v:
				return n
			case sb == v && sa != v:
				return -n
			}
			return 0
		}
		changedA, changedB := sa != a, sb != b
		switch {
		case changedA && changedB:
			return 0
		case changedA || changedB:
			// A side branch that continues past the bend is a junction.
			if bit(step) == v {
				return 0
			}
			if changedA {
				return n
			}
			return -n
		}
	}
	return 0
}
