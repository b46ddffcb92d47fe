package aa

import (
	"math/rand/v2"
	"testing"

	"github.com/gogpu/texraster"
)

func mustRaster(t *testing.T, rows ...string) *texraster.Raster {
	t.Helper()
	r, err := texraster.ParseRaster(rows...)
	if err != nil {
		t.Fatalf("ParseRaster(%q) = %v", rows, err)
	}
	return r
}

// randomRaster returns a w x h bitmap with roughly density ink.
func randomRaster(t *testing.T, rng *rand.Rand, w, h int, density float64) *texraster.Raster {
	t.Helper()
	r, err := texraster.NewRaster(w, h, 1)
	if err != nil {
		t.Fatal(err)
	}
	for row := range h {
		for col := range w {
			if rng.Float64() < density {
				r.SetPixel(row, col, 1)
			}
		}
	}
	return r
}

func TestGridNumber(t *testing.T) {
	tests := []struct {
		name     string
		rows     []string
		row, col int
		want     int
	}{
		{"full", []string{"***", "***", "***"}, 1, 1, 511},
		{"center only", []string{"...", ".*.", "..."}, 1, 1, 1},
		{"ring", []string{"***", "*.*", "***"}, 1, 1, 510},
		{"north-west", []string{"*..", "...", "..."}, 1, 1, GridNW},
		{"south-east", []string{"...", "...", "..*"}, 1, 1, GridSE},
		{"corner off raster", []string{"**", "**"}, 0, 0, GridC | GridE | GridS | GridSE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, ok := GridNumber(mustRaster(t, tt.rows...), tt.row, tt.col)
			if !ok || g != tt.want {
				t.Errorf("GridNumber() = %d, %v, want %d, true", g, ok, tt.want)
			}
		})
	}
}

func TestGridNumberRange(t *testing.T) {
	r := randomRaster(t, rand.New(rand.NewPCG(3, 4)), 9, 7, 0.5)
	for row := -1; row <= r.Height(); row++ {
		for col := -1; col <= r.Width(); col++ {
			g, ok := GridNumber(r, row, col)
			if ok != r.InBounds(row, col) {
				t.Fatalf("GridNumber(%d, %d) ok = %v", row, col, ok)
			}
			if ok && (g < 0 || g > MaxGridNumber) {
				t.Fatalf("GridNumber(%d, %d) = %d", row, col, g)
			}
			if ok && (g&GridC != 0) != r.Bit(row, col) {
				t.Fatalf("GridNumber(%d, %d) center bit mismatch", row, col)
			}
		}
	}
}

func TestReleasedRaster(t *testing.T) {
	r := mustRaster(t, "***", "***", "***")
	r.Release()
	if g, ok := GridNumber(r, 1, 1); ok {
		t.Errorf("GridNumber() on released = %d, true", g)
	}
	if n := FollowLine(r, 1, 1, East, DefaultFollowSteps); n != 0 {
		t.Errorf("FollowLine() on released = %d, want 0", n)
	}
	if w, ok := Weight(r, 1, 1, 256); ok {
		t.Errorf("Weight() on released = %d, true", w)
	}
}
