package texraster

// FillRect sets every pixel of the rectangle with top-left (top, left)
// and the given size to full ink. The rectangle is clipped to r.
// This is the rule primitive used for fraction bars and \rule.
func (r *Raster) FillRect(top, left, width, height int) {
	rowEnd := min(top+height, r.height)
	colEnd := min(left+width, r.width)
	ink := r.ink()
	for row := max(top, 0); row < rowEnd; row++ {
		for col := max(left, 0); col < colEnd; col++ {
			r.SetPixel(row, col, ink)
		}
	}
}

// Frame draws a border of the given thickness just inside r's edges.
// A thickness of at least half the smaller dimension fills r.
func (r *Raster) Frame(thickness int) {
	if thickness <= 0 {
		return
	}
	n := thickness
	r.FillRect(0, 0, r.width, n)
	r.FillRect(r.height-n, 0, r.width, n)
	r.FillRect(n, 0, n, r.height-2*n)
	r.FillRect(n, r.width-n, n, r.height-2*n)
}

// Invert replaces every pixel value v with ink-v.
func (r *Raster) Invert() {
	if r.pixelSize == 8 {
		for i, v := range r.pix {
			r.pix[i] = 255 - v
		}
		return
	}
	n := r.width * r.height
	for i := range r.pix {
		r.pix[i] = ^r.pix[i]
	}
	// Keep the padding bits of the last byte clear.
	if rem := n % 8; rem != 0 {
		r.pix[len(r.pix)-1] &= byte(1)<<rem - 1
	}
}

// DrawLine draws a line of the given thickness from (row0, col0) to
// (row1, col1), both end points included. Thickness grows the line
// perpendicular to its major axis. Pixels outside r are clipped.
func (r *Raster) DrawLine(row0, col0, row1, col1, thickness int) {
	thickness = max(thickness, 1)
	var l lineStepper
	dirRow, dirCol, steps := l.reset(row1-row0, col1-col0)
	row, col := row0, col0
	r.plotThick(row, col, thickness, l.swap == 1)
	for range steps {
		dr, dc := l.step()
		row += dr * dirRow
		col += dc * dirCol
		r.plotThick(row, col, thickness, l.swap == 1)
	}
}

// plotThick sets a run of thickness pixels centered on (row, col),
// running across columns for steep lines and across rows otherwise.
func (r *Raster) plotThick(row, col, thickness int, steep bool) {
	ink := r.ink()
	first := -(thickness - 1) / 2
	for i := first; i < first+thickness; i++ {
		rr, cc := row+i, col
		if steep {
			rr, cc = row, col+i
		}
		if r.InBounds(rr, cc) {
			r.SetPixel(rr, cc, ink)
		}
	}
}

// lineStepper walks a line with the Bresenham algorithm, one unit
// along the major axis per step.
type lineStepper struct {
	// d is the minor axis error, doubled.
	d int
	// dmajor, dminor is the line vector.
	dmajor, dminor int
	// swap is 0 if the major axis is the column axis, 1 otherwise.
	swap uint8
}

// reset starts the stepper for a signed distance. It returns the row and
// column directions (+1 or -1) and the number of steps.
func (l *lineStepper) reset(drow, dcol int) (int, int, int) {
	dirRow, dirCol := 1, 1
	if drow < 0 {
		dirRow = -1
		drow = -drow
	}
	if dcol < 0 {
		dirCol = -1
		dcol = -dcol
	}
	l.swap = 0
	if drow > dcol {
		l.swap = 1
		drow, dcol = dcol, drow
	}
	l.dmajor, l.dminor = dcol, drow
	l.d = 2*l.dminor - l.dmajor
	return dirRow, dirCol, l.dmajor
}

// step advances one pixel and returns the unsigned row and column moves.
func (l *lineStepper) step() (int, int) {
	maj, mnr := 1, 0
	if l.d > 0 {
		mnr = 1
	}
	l.d -= 2 * l.dmajor * mnr
	l.d += 2 * l.dminor
	if l.swap == 1 {
		return maj, mnr
	}
	return mnr, maj
}

// InkBounds returns the smallest rectangle (top, left, width, height)
// holding every ink pixel. A blank raster yields a zero size.
func (r *Raster) InkBounds() (top, left, width, height int) {
	emptyRow := func(row int) bool {
		for col := 0; col < r.width; col++ {
			if r.Pixel(row, col) != 0 {
				return false
			}
		}
		return true
	}
	emptyCol := func(col, top, bottom int) bool {
		for row := top; row < bottom; row++ {
			if r.Pixel(row, col) != 0 {
				return false
			}
		}
		return true
	}
	top, bottom := 0, r.height
	// Crop top side.
	for top < bottom && emptyRow(top) {
		top++
	}
	if top == bottom {
		return 0, 0, 0, 0
	}
	// Crop bottom side.
	for emptyRow(bottom - 1) {
		bottom--
	}
	left, right := 0, r.width
	// Crop left side.
	for emptyCol(left, top, bottom) {
		left++
	}
	// Crop right side.
	for emptyCol(right-1, top, bottom) {
		right--
	}
	return top, left, right - left, bottom - top
}

// Trim returns a copy of r cropped to its ink bounds, along with the
// number of rows removed from the top. A blank raster trims to 0x0.
func (r *Raster) Trim() (*Raster, int, error) {
	top, left, width, height := r.InkBounds()
	dst, err := NewRaster(width, height, r.pixelSize)
	if err != nil {
		return nil, 0, err
	}
	if _, err := Overlay(dst, r, -top, -left, true, false); err != nil {
		return nil, 0, err
	}
	return dst, top, nil
}
