package aa

import (
	"fmt"

	"github.com/gogpu/texraster"
)

// Antialias computes the anti-aliased bytemap of r under cfg. Any
// non-zero pixel of r is ink. The result is a new 8-bit raster of the
// same size. When stats is not nil, the pattern algorithm adds its
// classifier counts to it.
func Antialias(r *texraster.Raster, cfg Config, stats *Stats) (*texraster.Raster, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if r == nil || r.Released() {
		return nil, texraster.ErrReleased
	}
	out, err := texraster.NewRaster(r.Width(), r.Height(), 8)
	if err != nil {
		return nil, fmt.Errorf("aa: bytemap: %w", err)
	}

	switch cfg.Algorithm {
	case AlgorithmPattern:
		for row := 0; row < r.Height(); row++ {
			for col := 0; col < r.Width(); col++ {
				w, _ := cfg.weigh(r, row, col, stats)
				out.SetPixel(row, col, w)
			}
		}
	case AlgorithmLowpass:
		cfg.lowpass(r, out)
	case AlgorithmPNM:
		cfg.pnm(r, out)
	case AlgorithmNone:
		full := cfg.Levels - 1
		for row := 0; row < r.Height(); row++ {
			for col := 0; col < r.Width(); col++ {
				if r.Bit(row, col) {
					out.SetPixel(row, col, full)
				}
			}
		}
	}

	texraster.Logger().Debug("aa: antialias",
		"algorithm", cfg.Algorithm,
		"width", r.Width(), "height", r.Height(),
		"levels", cfg.Levels)
	return out, nil
}
