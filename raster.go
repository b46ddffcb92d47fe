package texraster

import (
	"fmt"
	"strings"
)

// MaxRasterBits bounds width*height*pixelSize for a single raster.
const MaxRasterBits = 8 * 4096 * 4096

// Axis selects the mirror used by Reflect.
type Axis uint8

const (
	// Horizontal mirrors columns (left to right).
	Horizontal Axis = iota + 1

	// Vertical mirrors rows (top to bottom).
	Vertical
)

// Raster is a rectangular pixel buffer of 1-bit or 8-bit pixels.
//
// One-bit pixels are packed continuously, least significant bit first, with
// pixel (row, col) at bit index row*width+col and no per-row padding.
// Eight-bit pixels use one byte each; 255 is full ink.
//
// The shape of a Raster never changes after construction.
type Raster struct {
	width     int
	height    int
	pixelSize int
	pix       []byte
}

// NewRaster allocates a zeroed raster.
// pixelSize must be 1 or 8.
func NewRaster(width, height, pixelSize int) (*Raster, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if pixelSize != 1 && pixelSize != 8 {
		return nil, fmt.Errorf("%w: %d", ErrPixelSize, pixelSize)
	}
	// Compare against the limit before multiplying all three terms.
	if width > 0 && height > MaxRasterBits/pixelSize/width {
		Logger().Warn("texraster: raster allocation rejected",
			"width", width, "height", height, "pixelSize", pixelSize)
		return nil, fmt.Errorf("%w: %dx%dx%d", ErrRasterTooLarge, width, height, pixelSize)
	}
	return &Raster{
		width:     width,
		height:    height,
		pixelSize: pixelSize,
		pix:       make([]byte, bufferLen(width, height, pixelSize)),
	}, nil
}

// bufferLen returns ceil(width*height*pixelSize/8).
func bufferLen(width, height, pixelSize int) int {
	return (width*height*pixelSize + 7) / 8
}

// Width returns the number of columns.
func (r *Raster) Width() int { return r.width }

// Height returns the number of rows.
func (r *Raster) Height() int { return r.height }

// PixelSize returns 1 or 8.
func (r *Raster) PixelSize() int { return r.pixelSize }

// Pix returns the underlying pixel buffer.
func (r *Raster) Pix() []byte { return r.pix }

// Released reports whether Release has been called.
func (r *Raster) Released() bool { return r.pix == nil }

// Release drops the pixel buffer. Calling Release twice is a no-op.
func (r *Raster) Release() {
	r.pix = nil
}

// InBounds reports whether (row, col) addresses a pixel of r. A
// released raster has no pixels.
func (r *Raster) InBounds(row, col int) bool {
	return r.pix != nil && row >= 0 && row < r.height && col >= 0 && col < r.width
}

// Pixel returns the value at (row, col): 0/1 for 1-bit rasters,
// 0..255 for 8-bit rasters. The coordinates must be in range.
func (r *Raster) Pixel(row, col int) int {
	if !r.InBounds(row, col) {
		panic(fmt.Sprintf("texraster: pixel (%d,%d) outside %dx%d raster", row, col, r.width, r.height))
	}
	i := row*r.width + col
	if r.pixelSize == 1 {
		return int(r.pix[i/8]>>(i%8)) & 1
	}
	return int(r.pix[i])
}

// Bit reports whether (row, col) holds ink. Out-of-range coordinates
// read as background, which is how neighbourhood scans treat the border.
func (r *Raster) Bit(row, col int) bool {
	if !r.InBounds(row, col) {
		return false
	}
	return r.Pixel(row, col) != 0
}

// SetPixel stores v at (row, col). For 1-bit rasters any non-zero v sets
// the bit. The coordinates must be in range.
func (r *Raster) SetPixel(row, col, v int) {
	if !r.InBounds(row, col) {
		panic(fmt.Sprintf("texraster: pixel (%d,%d) outside %dx%d raster", row, col, r.width, r.height))
	}
	i := row*r.width + col
	if r.pixelSize == 1 {
		if v != 0 {
			r.pix[i/8] |= 1 << (i % 8)
		} else {
			r.pix[i/8] &^= 1 << (i % 8)
		}
		return
	}
	r.pix[i] = clampByte(v)
}

// ink returns the pixel value used to mark full ink on r.
func (r *Raster) ink() int {
	if r.pixelSize == 1 {
		return 1
	}
	return 255
}

// IsBlank reports whether every pixel is background.
func (r *Raster) IsBlank() bool {
	for _, b := range r.pix {
		if b != 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of r.
func (r *Raster) Clone() *Raster {
	pix := make([]byte, len(r.pix))
	copy(pix, r.pix)
	return &Raster{
		width:     r.width,
		height:    r.height,
		pixelSize: r.pixelSize,
		pix:       pix,
	}
}

// Rotate90 returns a copy of r rotated 90 degrees clockwise.
// The result is height x width.
func (r *Raster) Rotate90() *Raster {
	dst := &Raster{
		width:     r.height,
		height:    r.width,
		pixelSize: r.pixelSize,
		pix:       make([]byte, len(r.pix)),
	}
	for row := 0; row < r.height; row++ {
		for col := 0; col < r.width; col++ {
			if v := r.Pixel(row, col); v != 0 {
				dst.SetPixel(col, r.height-1-row, v)
			}
		}
	}
	return dst
}

// Reflect returns a mirrored copy of r.
func (r *Raster) Reflect(axis Axis) *Raster {
	dst := &Raster{
		width:     r.width,
		height:    r.height,
		pixelSize: r.pixelSize,
		pix:       make([]byte, len(r.pix)),
	}
	for row := 0; row < r.height; row++ {
		for col := 0; col < r.width; col++ {
			v := r.Pixel(row, col)
			if v == 0 {
				continue
			}
			switch axis {
			case Vertical:
				dst.SetPixel(r.height-1-row, col, v)
			default:
				dst.SetPixel(row, r.width-1-col, v)
			}
		}
	}
	return dst
}

// Overlay writes source into target with source's top-left corner at
// (top, left).
//
// When opaque is false, background source pixels leave target pixels
// untouched, so glyphs can be stacked transparently. Target pixels outside
// the source rectangle are never modified.
//
// Source pixels falling outside target are clipped and partial is
// reported. With strict set, such an overlay fails with ErrOutOfBounds
// before anything is written.
func Overlay(target, source *Raster, top, left int, opaque, strict bool) (partial bool, err error) {
	if target.Released() || source.Released() {
		return false, ErrReleased
	}
	fits := top >= 0 && left >= 0 &&
		top+source.height <= target.height && left+source.width <= target.width
	if !fits && strict {
		return true, fmt.Errorf("%w: %dx%d at (%d,%d) into %dx%d", ErrOutOfBounds,
			source.width, source.height, top, left, target.width, target.height)
	}
	for row := 0; row < source.height; row++ {
		trow := top + row
		if trow < 0 || trow >= target.height {
			continue
		}
		for col := 0; col < source.width; col++ {
			tcol := left + col
			if tcol < 0 || tcol >= target.width {
				continue
			}
			v := convertPixel(source.Pixel(row, col), source.pixelSize, target.pixelSize)
			if v == 0 && !opaque {
				continue
			}
			target.SetPixel(trow, tcol, v)
		}
	}
	if !fits {
		Logger().Debug("texraster: overlay clipped",
			"source", fmt.Sprintf("%dx%d", source.width, source.height),
			"target", fmt.Sprintf("%dx%d", target.width, target.height),
			"top", top, "left", left)
	}
	return !fits, nil
}

// convertPixel maps a pixel value between pixel sizes.
// Eight-bit values are thresholded at half intensity.
func convertPixel(v, from, to int) int {
	switch {
	case from == to:
		return v
	case from == 1:
		return v * 255
	case v >= 128:
		return 1
	default:
		return 0
	}
}

func clampByte(v int) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

// String renders r as text, one line per row: '*' for 1-bit ink,
// and for 8-bit rasters one hex digit of the pixel's high nibble
// ('.' for zero).
func (r *Raster) String() string {
	if r.Released() {
		return "<released raster>"
	}
	var sb strings.Builder
	sb.Grow((r.width + 1) * r.height)
	for row := 0; row < r.height; row++ {
		for col := 0; col < r.width; col++ {
			v := r.Pixel(row, col)
			switch {
			case v == 0:
				sb.WriteByte('.')
			case r.pixelSize == 1:
				sb.WriteByte('*')
			default:
				sb.WriteByte("0123456789abcdef"[v>>4])
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseRaster builds a 1-bit raster from rows of text where '*', '#' and
// 'X' mark ink and any other byte is background. Rows shorter than the
// longest are padded with background. It is the inverse of String for
// 1-bit rasters and is handy for fixtures.
func ParseRaster(rows ...string) (*Raster, error) {
	width := 0
	for _, s := range rows {
		width = max(width, len(s))
	}
	r, err := NewRaster(width, len(rows), 1)
	if err != nil {
		return nil, err
	}
	for row, s := range rows {
		for col := 0; col < len(s); col++ {
			switch s[col] {
			case '*', '#', 'X':
				r.SetPixel(row, col, 1)
			}
		}
	}
	return r, nil
}
