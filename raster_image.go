package texraster

import (
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// ColorModel implements the image.Image interface.
func (r *Raster) ColorModel() color.Model { return color.GrayModel }

// Bounds implements the image.Image interface.
func (r *Raster) Bounds() image.Rectangle { return image.Rect(0, 0, r.width, r.height) }

// At implements the image.Image interface using the black-ink-on-white
// display convention: full ink is black, background is white.
func (r *Raster) At(x, y int) color.Color {
	if !r.InBounds(y, x) {
		return color.Gray{Y: 0xff}
	}
	v := r.Pixel(y, x)
	if r.pixelSize == 1 {
		v *= 255
	}
	return color.Gray{Y: uint8(255 - v)}
}

// Gray converts r to an *image.Gray where ink is 255 (white-on-black).
// Pass inverse to get the black-on-white display convention instead.
func (r *Raster) Gray(inverse bool) *image.Gray {
	img := image.NewGray(r.Bounds())
	for row := 0; row < r.height; row++ {
		for col := 0; col < r.width; col++ {
			v := convertPixel(r.Pixel(row, col), r.pixelSize, 8)
			if inverse {
				v = 255 - v
			}
			img.Pix[row*img.Stride+col] = uint8(v)
		}
	}
	return img
}

// FromImage thresholds img into a 1-bit raster. A pixel is ink when its
// alpha-weighted darkness is at least half intensity, so both opaque black
// on white images and alpha masks convert as expected.
func FromImage(img image.Image) (*Raster, error) {
	b := img.Bounds()
	r, err := NewRaster(b.Dx(), b.Dy(), 1)
	if err != nil {
		return nil, err
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if inkOf(img.At(x, y)) >= 0x8000 {
				r.SetPixel(y-b.Min.Y, x-b.Min.X, 1)
			}
		}
	}
	return r, nil
}

// inkOf returns the 16-bit ink coverage of c: alpha times darkness.
func inkOf(c color.Color) uint32 {
	switch a := c.(type) {
	case color.Alpha:
		return uint32(a.A) * 0x101
	case color.Alpha16:
		return uint32(a.A)
	}
	_, _, _, a := c.RGBA()
	y := color.Gray16Model.Convert(c).(color.Gray16).Y
	// Premultiplied luminance: the uncovered share of alpha is ink.
	return a - min(uint32(y), a)
}

// Magnify returns r scaled by an integer factor with nearest-neighbour
// sampling, keeping r's pixel size.
func (r *Raster) Magnify(factor int) (*Raster, error) {
	if factor < 1 {
		return nil, fmt.Errorf("%w: magnification %d", ErrInvalidSize, factor)
	}
	dst, err := NewRaster(r.width*factor, r.height*factor, r.pixelSize)
	if err != nil {
		return nil, err
	}
	if factor == 1 {
		copy(dst.pix, r.pix)
		return dst, nil
	}
	src := r.Gray(false)
	big := image.NewGray(dst.Bounds())
	xdraw.NearestNeighbor.Scale(big, big.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	for row := 0; row < dst.height; row++ {
		for col := 0; col < dst.width; col++ {
			if v := int(big.Pix[row*big.Stride+col]); v != 0 {
				dst.SetPixel(row, col, convertPixel(v, 8, r.pixelSize))
			}
		}
	}
	return dst, nil
}
