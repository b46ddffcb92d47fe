package aa

import "github.com/gogpu/texraster"

// offset is a (row, column) displacement.
type offset struct{ dr, dc int }

// transform is one of the eight symmetries of the square acting on
// offsets: the rotations 0, 90, 180 and 270 degrees followed by the
// four reflections.
type transform uint8

func (t transform) apply(o offset) offset {
	r, c := o.dr, o.dc
	switch t {
	case 1:
		return offset{c, -r}
	case 2:
		return offset{-r, -c}
	case 3:
		return offset{-c, r}
	case 4:
		return offset{r, -c}
	case 5:
		return offset{-r, c}
	case 6:
		return offset{c, r}
	case 7:
		return offset{-c, -r}
	default:
		return o
	}
}

// inverse returns the transform undoing t.
func (t transform) inverse() transform {
	return [8]transform{0, 3, 2, 1, 4, 5, 6, 7}[t]
}

// gridBit returns the grid bit of the neighbour at o.
func gridBit(o offset) int {
	for _, n := range neighbours {
		if n.off == o {
			return n.bit
		}
	}
	return 0
}

// mask applies t to the neighbour bits of g. The center bit is dropped.
func (t transform) mask(g int) int {
	out := 0
	for _, n := range neighbours {
		if g&n.bit != 0 {
			out |= gridBit(t.apply(n.off))
		}
	}
	return out
}

// orient returns a transform taking the neighbours of canonical onto the
// neighbours of g.
func orient(g, canonical int) (transform, bool) {
	want := g &^ GridC
	for t := range transform(8) {
		if t.mask(canonical) == want {
			return t, true
		}
	}
	return 0, false
}

// frame views the neighbourhood of one pixel in the canonical
// orientation of its pattern class.
type frame struct {
	r        *texraster.Raster
	row, col int
	t        transform
	steps    int
}

// follow runs FollowLine from the canonical neighbour start in the
// canonical direction dir and reports the bend in canonical terms.
func (f frame) follow(start offset, dir Direction) int {
	adir := directionOf(f.t.apply(dir.delta()))
	s := f.t.apply(start)
	n := FollowLine(f.r, f.row+s.dr, f.col+s.dc, adir, f.steps)
	if n == 0 {
		return 0
	}
	turn := adir.side()
	if n < 0 {
		n = -n
		turn = offset{-turn.dr, -turn.dc}
	}
	if f.t.inverse().apply(turn) == dir.side() {
		return n
	}
	return -n
}
