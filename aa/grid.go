package aa

import "github.com/gogpu/texraster"

// Grid number bits.
const (
	GridC  = 1 << iota // center
	GridNW             // north-west
	GridN              // north
	GridNE             // north-east
	GridW              // west
	GridE              // east
	GridSW             // south-west
	GridS              // south
	GridSE             // south-east
)

// MaxGridNumber is the grid number of a neighbourhood full of ink.
const MaxGridNumber = 511

// neighbours lists the grid bits of the eight neighbours with their
// offsets from the center.
var neighbours = [8]struct {
	bit int
	off offset
}{
	{GridNW, offset{-1, -1}},
	{GridN, offset{-1, 0}},
	{GridNE, offset{-1, 1}},
	{GridW, offset{0, -1}},
	{GridE, offset{0, 1}},
	{GridSW, offset{1, -1}},
	{GridS, offset{1, 0}},
	{GridSE, offset{1, 1}},
}

// GridNumber packs the 3x3 neighbourhood of (row, col) into a grid
// number. Neighbours outside r count as background. ok is false when
// (row, col) itself lies outside r.
func GridNumber(r *texraster.Raster, row, col int) (g int, ok bool) {
	if !r.InBounds(row, col) {
		return 0, false
	}
	if r.Bit(row, col) {
		g = GridC
	}
	for _, n := range neighbours {
		if r.Bit(row+n.off.dr, col+n.off.dc) {
			g |= n.bit
		}
	}
	return g, true
}
