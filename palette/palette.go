// Package palette reduces an anti-aliased bytemap to the few gray levels
// it actually uses.
//
// Build collects the distinct intensities of a bytemap into a sorted
// palette and maps every pixel to its palette index. The palette can be
// rescaled so the darkest ink present becomes full intensity, and gamma
// corrected with a power law. The result converts to an *image.Paletted
// for the standard image encoders.
package palette

import (
	"errors"
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/gogpu/texraster"
	lut "github.com/gogpu/texraster/internal/color"
)

// ErrEmpty is returned for bytemaps without pixels.
var ErrEmpty = errors.New("palette: empty bytemap")

// DefaultGamma is the conventional gamma for WithGamma.
const DefaultGamma = lut.DefaultGamma

// Palette is a sorted list of intensities plus an index image.
type Palette struct {
	// Colors holds the intensities in ascending order; 255 is full ink.
	// Entries are distinct before correction; rescaling and gamma keep
	// them sorted but may merge neighbours.
	Colors []uint8

	// Index holds one palette index per pixel, row by row.
	Index []uint8

	// Width and Height are the dimensions of the index image.
	Width, Height int
}

// Option configures Build.
type Option func(*options)

type options struct {
	rescale bool
	gamma   float64
}

// WithRescale makes the darkest intensity present map to 255.
func WithRescale(on bool) Option {
	return func(o *options) { o.rescale = on }
}

// WithGamma applies the power-law correction
// out = 255*(1-((255-in)/255)^(1/gamma)) to every color but the first.
// Gamma 1 or less than or equal to 0 disables correction.
func WithGamma(gamma float64) Option {
	return func(o *options) { o.gamma = gamma }
}

// Build computes the palette of bytemap. Any pixel size is accepted; 1-bit
// ink counts as 255.
func Build(bytemap *texraster.Raster, opts ...Option) (*Palette, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if bytemap == nil || bytemap.Released() {
		return nil, texraster.ErrReleased
	}
	w, h := bytemap.Width(), bytemap.Height()
	if w == 0 || h == 0 {
		return nil, ErrEmpty
	}

	values := make([]uint8, 0, w*h)
	var present [256]bool
	for row := range h {
		for col := range w {
			v := intensity(bytemap, row, col)
			values = append(values, v)
			present[v] = true
		}
	}

	p := &Palette{Width: w, Height: h, Index: make([]uint8, w*h)}
	var index [256]uint8
	for v, ok := range present {
		if ok {
			index[v] = uint8(len(p.Colors))
			p.Colors = append(p.Colors, uint8(v))
		}
	}
	for i, v := range values {
		p.Index[i] = index[v]
	}

	if o.rescale {
		darkest := p.Colors[len(p.Colors)-1]
		for i, c := range p.Colors {
			p.Colors[i] = lut.Rescale(c, darkest, 255)
		}
	}
	if o.gamma > 0 && o.gamma != 1 {
		table := lut.DefaultGammaLUT()
		if math.Abs(o.gamma-lut.DefaultGamma) > 1e-9 {
			table = lut.NewGammaLUT(o.gamma, 255)
		}
		for i := 1; i < len(p.Colors); i++ {
			p.Colors[i] = table.Apply(p.Colors[i])
		}
	}

	texraster.Logger().Debug("palette: built",
		"colors", len(p.Colors), "width", w, "height", h,
		"rescale", o.rescale, "gamma", o.gamma)
	return p, nil
}

func intensity(r *texraster.Raster, row, col int) uint8 {
	v := r.Pixel(row, col)
	if r.PixelSize() == 1 {
		v *= 255
	}
	return uint8(v)
}

// Color returns the intensity of the pixel at (row, col).
func (p *Palette) Color(row, col int) uint8 {
	return p.Colors[p.Index[row*p.Width+col]]
}

// Paletted returns the index image with a gray palette. With
// blackOnWhite, full ink is black and background white; otherwise ink is
// white on black.
func (p *Palette) Paletted(blackOnWhite bool) *image.Paletted {
	pal := make(color.Palette, len(p.Colors))
	for i, c := range p.Colors {
		if blackOnWhite {
			c = 255 - c
		}
		pal[i] = color.Gray{Y: c}
	}
	img := image.NewPaletted(image.Rect(0, 0, p.Width, p.Height), pal)
	copy(img.Pix, p.Index)
	return img
}

// Distinct reports the number of different colors after correction.
func (p *Palette) Distinct() int {
	return len(slices.Compact(slices.Clone(p.Colors)))
}
