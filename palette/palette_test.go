package palette

import (
	"errors"
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/gogpu/texraster"
	lut "github.com/gogpu/texraster/internal/color"
	"github.com/google/go-cmp/cmp"
)

// bytemap builds a one-row 8-bit raster holding values.
func bytemap(t *testing.T, values ...int) *texraster.Raster {
	t.Helper()
	r, err := texraster.NewRaster(len(values), 1, 8)
	if err != nil {
		t.Fatal(err)
	}
	for col, v := range values {
		r.SetPixel(0, col, v)
	}
	return r
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name      string
		values    []int
		opts      []Option
		wantColor []uint8
		wantIndex []uint8
	}{
		{
			name:      "distinct values",
			values:    []int{0, 128, 128, 255},
			wantColor: []uint8{0, 128, 255},
			wantIndex: []uint8{0, 1, 1, 2},
		},
		{
			name:      "unsorted input",
			values:    []int{200, 7, 0, 7},
			wantColor: []uint8{0, 7, 200},
			wantIndex: []uint8{2, 1, 0, 1},
		},
		{
			name:      "rescale",
			values:    []int{0, 50, 100},
			opts:      []Option{WithRescale(true)},
			wantColor: []uint8{0, 128, 255},
			wantIndex: []uint8{0, 1, 2},
		},
		{
			name:      "gamma one",
			values:    []int{0, 50, 100},
			opts:      []Option{WithGamma(1)},
			wantColor: []uint8{0, 50, 100},
			wantIndex: []uint8{0, 1, 2},
		},
		{
			name:      "gamma keeps first entry",
			values:    []int{100, 200},
			opts:      []Option{WithGamma(2)},
			wantColor: []uint8{100, lut.GammaSlow(200, 255, 2)},
			wantIndex: []uint8{0, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Build(bytemap(t, tt.values...), tt.opts...)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.wantColor, p.Colors); diff != "" {
				t.Errorf("Colors mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantIndex, p.Index); diff != "" {
				t.Errorf("Index mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildGamma(t *testing.T) {
	p, err := Build(bytemap(t, 0, 64, 128, 192, 255), WithGamma(DefaultGamma))
	if err != nil {
		t.Fatal(err)
	}
	if p.Colors[0] != 0 || p.Colors[4] != 255 {
		t.Errorf("endpoints moved: %v", p.Colors)
	}
	for i := 1; i < len(p.Colors); i++ {
		if p.Colors[i] < p.Colors[i-1] {
			t.Errorf("colors not sorted: %v", p.Colors)
		}
	}
	if p.Colors[2] >= 128 {
		t.Errorf("gamma %v did not lighten mid gray: %v", DefaultGamma, p.Colors)
	}
}

func TestBuildRandomBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	r, _ := texraster.NewRaster(40, 30, 8)
	for row := range 30 {
		for col := range 40 {
			r.SetPixel(row, col, rng.IntN(256))
		}
	}
	p, err := Build(r, WithRescale(true), WithGamma(DefaultGamma))
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Colors) > 256 {
		t.Errorf("%d colors", len(p.Colors))
	}
	if p.Distinct() > len(p.Colors) {
		t.Errorf("Distinct() = %d > %d", p.Distinct(), len(p.Colors))
	}
	for i, idx := range p.Index {
		if int(idx) >= len(p.Colors) {
			t.Fatalf("index %d = %d out of range", i, idx)
		}
	}
}

func TestBuildBitmap(t *testing.T) {
	r, _ := texraster.ParseRaster("*.", ".*")
	p, err := Build(r)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]uint8{0, 255}, p.Colors); diff != "" {
		t.Errorf("Colors mismatch (-want +got):\n%s", diff)
	}
	if p.Color(1, 1) != 255 || p.Color(0, 1) != 0 {
		t.Error("Color() does not follow the index image")
	}
}

func TestBuildErrors(t *testing.T) {
	empty, _ := texraster.NewRaster(0, 3, 8)
	if _, err := Build(empty); !errors.Is(err, ErrEmpty) {
		t.Errorf("Build(empty) error = %v, want ErrEmpty", err)
	}
	gone := bytemap(t, 1)
	gone.Release()
	if _, err := Build(gone); !errors.Is(err, texraster.ErrReleased) {
		t.Errorf("Build(released) error = %v, want ErrReleased", err)
	}
}

func TestPaletted(t *testing.T) {
	p, err := Build(bytemap(t, 0, 255, 0))
	if err != nil {
		t.Fatal(err)
	}
	img := p.Paletted(true)
	if got := img.At(0, 0); got != (color.Gray{Y: 255}) {
		t.Errorf("background = %v, want white", got)
	}
	if got := img.At(1, 0); got != (color.Gray{Y: 0}) {
		t.Errorf("ink = %v, want black", got)
	}
	if diff := cmp.Diff([]uint8{0, 1, 0}, img.Pix); diff != "" {
		t.Errorf("Pix mismatch (-want +got):\n%s", diff)
	}
	if got := p.Paletted(false).At(1, 0); got != (color.Gray{Y: 255}) {
		t.Errorf("white on black ink = %v", got)
	}
}
