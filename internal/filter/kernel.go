package filter

// Cell positions within a 3x3 neighbourhood.
const (
	NW = iota
	N
	NE
	W
	C
	E
	SW
	S
	SE
)

// Edges lists the cells sharing a side with the center.
var Edges = [4]int{N, W, E, S}

// Corners lists the diagonal cells.
var Corners = [4]int{NW, NE, SW, SE}

// Kernel is a 3x3 integer weight kernel in row-major order.
type Kernel [9]int

// Cells is a 3x3 neighbourhood of ink flags in row-major order.
type Cells [9]bool

// BoxKernel returns a kernel weighing the eight neighbours equally with
// weight 1 and the center with center.
func BoxKernel(center int) Kernel {
	return Kernel{1, 1, 1, 1, center, 1, 1, 1, 1}
}

// WeightedKernel returns a kernel with separate center, edge and corner
// weights.
func WeightedKernel(center, adjacent, corner int) Kernel {
	return Kernel{
		corner, adjacent, corner,
		adjacent, center, adjacent,
		corner, adjacent, corner,
	}
}

// Total returns the sum of all weights.
func (k Kernel) Total() int {
	total := 0
	for _, w := range k {
		total += w
	}
	return total
}

// Sum returns the total weight of the cells holding ink.
func (k Kernel) Sum(cells Cells) int {
	sum := 0
	for i, set := range cells {
		if set {
			sum += k[i]
		}
	}
	return sum
}

// Average scales the weighted sum of cells to [0, maxValue].
// A kernel with a non-positive total averages to 0.
func (k Kernel) Average(cells Cells, maxValue int) int {
	total := k.Total()
	if total <= 0 {
		return 0
	}
	return maxValue * k.Sum(cells) / total
}

// Neighbourhood reads the 3x3 cells centered on (row, col) through bit,
// which must report false for coordinates outside the image.
func Neighbourhood(bit func(row, col int) bool, row, col int) Cells {
	var cells Cells
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			cells[(dr+1)*3+dc+1] = bit(row+dr, col+dc)
		}
	}
	return cells
}

// Count returns how many of the listed cells hold ink.
func (c Cells) Count(idx ...int) int {
	n := 0
	for _, i := range idx {
		if c[i] {
			n++
		}
	}
	return n
}

// Uniform reports whether all listed cells equal v.
func (c Cells) Uniform(v bool, idx ...int) bool {
	for _, i := range idx {
		if c[i] != v {
			return false
		}
	}
	return true
}
