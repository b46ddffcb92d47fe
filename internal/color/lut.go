// Package color provides intensity lookup tables for palette reduction.
//
// A GammaLUT replaces the math.Pow call of the power-law remap with an
// array lookup, so a palette of up to 256 entries is corrected in O(1)
// per entry regardless of the gamma value.
//
// The remap works on ink intensities, where max is full ink and 0 is
// background:
//
//	out = max * (1 - ((max-in)/max)^(1/gamma))
package color

import "math"

// DefaultGamma is the gamma applied when the caller asks for correction
// without choosing a value.
const DefaultGamma = 1.25

// GammaLUT maps 8-bit intensities through the power-law remap.
type GammaLUT [256]uint8

// defaultLUT is the table for DefaultGamma over the full 8-bit range.
var defaultLUT GammaLUT

func init() {
	defaultLUT = *NewGammaLUT(DefaultGamma, 255)
}

// NewGammaLUT builds the table for gamma over [0, maxValue]. Inputs above
// maxValue are treated as maxValue. A non-positive gamma yields the
// identity table.
func NewGammaLUT(gamma float64, maxValue uint8) *GammaLUT {
	var lut GammaLUT
	for i := range lut {
		lut[i] = GammaSlow(uint8(i), maxValue, gamma)
	}
	return &lut
}

// DefaultGammaLUT returns the shared table for DefaultGamma and max 255.
// The table must not be modified.
func DefaultGammaLUT() *GammaLUT { return &defaultLUT }

// Apply remaps v.
func (l *GammaLUT) Apply(v uint8) uint8 { return l[v] }

// GammaSlow computes the remap of v with math.Pow.
//
// This is the reference implementation behind the tables.
func GammaSlow(v, maxValue uint8, gamma float64) uint8 {
	v = min(v, maxValue)
	if maxValue == 0 || gamma <= 0 {
		return v
	}
	m := float64(maxValue)
	out := m * (1 - math.Pow((m-float64(v))/m, 1/gamma))
	return clamp(int(out + 0.5), maxValue)
}

// Rescale maps v from [0, from] to [0, to] with rounding.
func Rescale(v, from, to uint8) uint8 {
	if from == 0 {
		return 0
	}
	return clamp((int(v)*int(to)+int(from)/2)/int(from), to)
}

func clamp(v int, maxValue uint8) uint8 {
	if v < 0 {
		return 0
	}
	if v > int(maxValue) {
		return maxValue
	}
	//nolint:gosec // G115: v is clamped to [0,maxValue] range
	return uint8(v)
}
