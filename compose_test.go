package texraster

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name     string
		offset   int
		align    bool
		want     string
		wantBase int
	}{
		{"aligned", 0, true, lines("*.*", ".*.", "*.*"), 1},
		{"centered", 0, false, lines("*.*", ".*.", "*.*"), 1},
		{"offset right", 3, true, lines("*.*..", "....*", "*.*.."), 1},
		{"offset left", -3, true, lines("..*.*", "*....", "..*.*"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp1 := mustSub(t, 1, "*.*", "...", "*.*")
			sp2 := mustSub(t, 0, "*")
			got, err := NewComposer().Compose(sp1, sp2, tt.offset, tt.align, ReleaseNone)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got.Image().String()); diff != "" {
				t.Errorf("Compose mismatch (-want +got):\n%s", diff)
			}
			if got.Baseline != tt.wantBase {
				t.Errorf("baseline = %d, want %d", got.Baseline, tt.wantBase)
			}
		})
	}
}

func TestComposeAlignedHeight(t *testing.T) {
	// A descender below and an accent above the baseline.
	sp1 := mustSub(t, 0, "***", "*..")
	sp2 := mustSub(t, 1, ".*.", "***")
	got, err := NewComposer().Compose(sp1, sp2, 0, true, ReleaseNone)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(lines(".*.", "***", "*.."), got.Image().String()); diff != "" {
		t.Errorf("Compose mismatch (-want +got):\n%s", diff)
	}
	if got.Baseline != 1 {
		t.Errorf("baseline = %d, want 1", got.Baseline)
	}
}

func TestComposeTransparent(t *testing.T) {
	sp1 := mustSub(t, 0, "***")
	sp2 := mustSub(t, 0, "...")
	got, err := NewComposer().Compose(sp1, sp2, 0, true, ReleaseNone)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(lines("***"), got.Image().String()); diff != "" {
		t.Errorf("background of sp2 cleared sp1 (-want +got):\n%s", diff)
	}
}

func TestReleaseFlags(t *testing.T) {
	tests := []struct {
		flag          Release
		first, second bool
	}{
		{ReleaseNone, false, false},
		{ReleaseFirst, true, false},
		{ReleaseSecond, false, true},
		{ReleaseBoth, true, true},
	}
	for _, tt := range tests {
		sp1 := mustSub(t, 0, "*")
		sp2 := mustSub(t, 0, "*")
		if _, err := NewComposer().Compose(sp1, sp2, 0, true, tt.flag); err != nil {
			t.Fatal(err)
		}
		if sp1.Released() != tt.first || sp2.Released() != tt.second {
			t.Errorf("flag %d: released = (%v, %v), want (%v, %v)", tt.flag,
				sp1.Released(), sp2.Released(), tt.first, tt.second)
		}
	}

	glyph := mustRaster(t, "*")
	ch := NewCharacter(glyph, nil, 0, DefaultFontSize)
	img := mustSub(t, 0, "**")
	if _, err := NewComposer().Concatenate(img, ch, ReleaseBoth); err != nil {
		t.Fatal(err)
	}
	if glyph.Released() {
		t.Error("ReleaseBoth released a borrowed glyph raster")
	}
}

func TestOperandErrors(t *testing.T) {
	c := NewComposer()
	sp := mustSub(t, 0, "*")
	if _, err := c.Compose(sp, nil, 0, true, ReleaseNone); !errors.Is(err, ErrNilSubraster) {
		t.Errorf("Compose(nil) error = %v, want ErrNilSubraster", err)
	}
	gone := mustSub(t, 0, "*")
	gone.Release()
	if _, err := c.Stack(sp, gone, BaselineLower, 0, false, ReleaseBoth); !errors.Is(err, ErrReleased) {
		t.Errorf("Stack(released) error = %v, want ErrReleased", err)
	}
	if sp.Released() {
		t.Error("failed operator released its operand")
	}
}

func TestStack(t *testing.T) {
	tests := []struct {
		name     string
		baseline BaselineSource
		center   bool
		want     string
		wantBase int
	}{
		{"lower centered", BaselineLower, true, lines("****", "....", ".**."), 2},
		{"upper", BaselineUpper, false, lines("****", "....", "**.."), 0},
		{"computed", BaselineComputed, true, lines("****", "....", ".**."), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lower := mustSub(t, 0, "**")
			upper := mustSub(t, 0, "****")
			got, err := NewComposer().Stack(lower, upper, tt.baseline, 1, tt.center, ReleaseNone)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got.Image().String()); diff != "" {
				t.Errorf("Stack mismatch (-want +got):\n%s", diff)
			}
			if got.Baseline != tt.wantBase {
				t.Errorf("baseline = %d, want %d", got.Baseline, tt.wantBase)
			}
		})
	}
}

func TestStackFraction(t *testing.T) {
	c := NewComposer()
	num := mustSub(t, 0, "*")
	bar, _ := NewSubraster(3, 1, 1)
	bar.Image().FillRect(0, 0, 3, 1)
	den := mustSub(t, 0, ".*.", "***")

	top, err := c.Stack(bar, num, BaselineLower, 1, true, ReleaseBoth)
	if err != nil {
		t.Fatal(err)
	}
	frac, err := c.Stack(den, top, BaselineUpper, 1, true, ReleaseBoth)
	if err != nil {
		t.Fatal(err)
	}
	want := lines(".*.", "...", "***", "...", ".*.", "***")
	if diff := cmp.Diff(want, frac.Image().String()); diff != "" {
		t.Errorf("fraction mismatch (-want +got):\n%s", diff)
	}
	if frac.Baseline != 2 {
		t.Errorf("baseline = %d, want the bar row 2", frac.Baseline)
	}
}

func TestTile(t *testing.T) {
	a := mustSub(t, 0, "*")
	a.Top, a.Left = -1, 2
	b := mustSub(t, 0, "**")
	b.Top, b.Left = 1, 0
	got, err := NewComposer().Tile([]*Subraster{a, b})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(lines("..*", "...", "**."), got.String()); diff != "" {
		t.Errorf("Tile mismatch (-want +got):\n%s", diff)
	}

	empty, err := NewComposer().Tile(nil)
	if err != nil || empty.Width() != 0 || empty.Height() != 0 {
		t.Errorf("Tile(nil) = %v, %v", empty, err)
	}
	if _, err := NewComposer().Tile([]*Subraster{a, nil}); !errors.Is(err, ErrNilSubraster) {
		t.Errorf("Tile with nil error = %v, want ErrNilSubraster", err)
	}
}

func TestComposerOptions(t *testing.T) {
	c := NewComposer(WithSmash(true), WithSmashMargin(-2), WithFontSize(5), WithStringMode(true))
	if !c.Smash() || c.SmashMargin() != 0 || c.FontSize() != 5 || !c.StringMode() {
		t.Errorf("options not applied: %+v", c)
	}
	d := c.With(WithSmash(false))
	if d.Smash() || !c.Smash() {
		t.Error("With modified the original composer")
	}
	def := NewComposer()
	if def.Smash() || def.SmashMargin() != DefaultSmashMargin || def.FontSize() != DefaultFontSize {
		t.Errorf("defaults = %+v", def)
	}
}
