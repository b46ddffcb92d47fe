package aa

import "github.com/gogpu/texraster"

// Pattern classes resolved by following lines.
const (
	classCornerLine  = 11 // ink center, two adjacent edges
	classCornerBlock = 24 // ink center, two adjacent edges and their corner
	classTopRow      = 19 // background center under a row of three
	classStep        = 20 // background center under an edge and a corner
	classInnerCorner = 39 // background center inside an L
)

// Canonical neighbourhoods of the classes above.
const (
	canonCornerLine  = GridN | GridW
	canonCornerBlock = GridNW | GridN | GridW
	canonTopRow      = GridNW | GridN | GridNE
	canonStep        = GridN | GridNE
	canonInnerCorner = GridNW | GridN | GridNE | GridW
)

// Stats accumulates classifier diagnostics over one or more renders.
// The caller owns it; pass nil to skip counting.
type Stats struct {
	// Patterns counts pixels per pattern class; index 0 is unused.
	Patterns [NumPatterns + 1]int

	// Followed counts pixels resolved by line following.
	Followed int
}

// Weight classifies the pixel at (row, col) and returns its intensity in
// [0, levels-1], using DefaultFollowSteps for line following. ok is
// false when (row, col) lies outside r or levels is outside [2, 256].
func Weight(r *texraster.Raster, row, col, levels int) (w int, ok bool) {
	if levels < 2 || levels > 256 {
		return 0, false
	}
	cfg := DefaultConfig()
	cfg.Levels = levels
	return cfg.weigh(r, row, col, nil)
}

// weigh is Weight under c, counting into stats when it is not nil.
func (c Config) weigh(r *texraster.Raster, row, col int, stats *Stats) (int, bool) {
	g, ok := GridNumber(r, row, col)
	if !ok {
		return 0, false
	}
	class, _ := PatternClass(g)
	ink := g&GridC != 0
	if stats != nil {
		stats.Patterns[class]++
	}
	full := c.Levels - 1
	switch {
	case ink && !c.AliasForeground:
		return full, true
	case !ink && !c.AliasBackground:
		return 0, true
	}

	tw, _ := TableWeight(class, ink)
	scaled := tw * full / 255
	f := frame{r: r, row: row, col: col, steps: c.FollowSteps}

	switch {
	case ink && (class == classCornerLine || class == classCornerBlock):
		canon := canonCornerLine
		if class == classCornerBlock {
			canon = canonCornerBlock
		}
		f.t, _ = orient(g, canon)
		c.followed(stats)
		north := f.follow(offset{-1, 0}, North)
		west := f.follow(offset{0, -1}, West)
		// Arms bending apart make a staircase: lighten it.
		if north > 0 && west < 0 {
			return scaled, true
		}
		return full, true

	case !ink && (class == classTopRow || class == classStep):
		canon, start := canonTopRow, offset{-1, -1}
		if class == classStep {
			canon, start = canonStep, offset{-1, 0}
		}
		f.t, _ = orient(g, canon)
		c.followed(stats)
		t1 := f.follow(start, West)
		t2 := f.follow(offset{-1, 1}, East)
		if t1 == 0 || t2 == 0 || (t1 > 0) == (t2 > 0) {
			return 0, true
		}
		return full / (3 + min(abs(t1), abs(t2))), true

	case !ink && class == classInnerCorner:
		f.t, _ = orient(g, canonInnerCorner)
		c.followed(stats)
		if f.follow(offset{0, -1}, West) == 1 {
			return 0, true
		}
		return scaled, true
	}
	return scaled, true
}

func (c Config) followed(stats *Stats) {
	if stats != nil {
		stats.Followed++
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
