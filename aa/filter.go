package aa

import (
	"github.com/gogpu/texraster"
	"github.com/gogpu/texraster/internal/filter"
)

// lTriples are the four L-shaped edge-corner-edge runs around the center.
var lTriples = [4][3]int{
	{filter.N, filter.NE, filter.E},
	{filter.E, filter.SE, filter.S},
	{filter.S, filter.SW, filter.W},
	{filter.W, filter.NW, filter.N},
}

// adjacency measures the ink around the center for the low-pass gate.
func (c Config) adjacency(cells filter.Cells) int {
	if !c.WeightedAdjacency {
		return cells.Count(filter.Edges[:]...) + cells.Count(filter.Corners[:]...)
	}
	return c.AdjacentWeight*cells.Count(filter.Edges[:]...) +
		c.CornerWeight*cells.Count(filter.Corners[:]...)
}

// lowpass fills out with the low-pass filtered intensities of r.
//
// Ink pixels keep full intensity so thin lines do not wash out.
// Background pixels whose ink neighbours fall outside the adjacency band
// stay background.
func (c Config) lowpass(r, out *texraster.Raster) {
	k := filter.BoxKernel(c.CenterWeight)
	full := c.Levels - 1
	for row := 0; row < r.Height(); row++ {
		for col := 0; col < r.Width(); col++ {
			cells := filter.Neighbourhood(r.Bit, row, col)
			switch {
			case cells[filter.C]:
				out.SetPixel(row, col, full)
			case !c.AliasBackground:
			case c.adjacency(cells) < c.MinAdjacent || c.adjacency(cells) > c.MaxAdjacent:
			default:
				out.SetPixel(row, col, k.Average(cells, full))
			}
		}
	}
}

// pnm fills out with the edge weighted intensities of r.
//
// A pixel is averaged when one of its L-shaped runs is uniformly the
// opposite color, unless a full row and a full column of its
// neighbourhood are, which marks an inside corner.
func (c Config) pnm(r, out *texraster.Raster) {
	k := filter.WeightedKernel(c.CenterWeight, c.AdjacentWeight, c.CornerWeight)
	full := c.Levels - 1
	for row := 0; row < r.Height(); row++ {
		for col := 0; col < r.Width(); col++ {
			cells := filter.Neighbourhood(r.Bit, row, col)
			ink := cells[filter.C]
			v := 0
			if ink {
				v = full
			}
			if (ink && c.AliasForeground || !ink && c.AliasBackground) &&
				onEdge(cells, !ink) && !insideCorner(cells, !ink) {
				v = k.Average(cells, full)
			}
			out.SetPixel(row, col, v)
		}
	}
}

// onEdge reports whether one of the L-shaped runs is uniformly v.
func onEdge(cells filter.Cells, v bool) bool {
	for _, l := range lTriples {
		if cells.Uniform(v, l[:]...) {
			return true
		}
	}
	return false
}

// insideCorner reports whether a full row and a full column of the
// neighbourhood border are uniformly v.
func insideCorner(cells filter.Cells, v bool) bool {
	row := cells.Uniform(v, filter.NW, filter.N, filter.NE) ||
		cells.Uniform(v, filter.SW, filter.S, filter.SE)
	col := cells.Uniform(v, filter.NW, filter.W, filter.SW) ||
		cells.Uniform(v, filter.NE, filter.E, filter.SE)
	return row && col
}
