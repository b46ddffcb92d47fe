package texraster

import "fmt"

// Release selects which operands an operator releases once the
// composite has been built. Borrowed glyph rasters are never released.
// On error nothing is released and the caller keeps ownership.
type Release uint8

const (
	// ReleaseNone keeps both operands.
	ReleaseNone Release = 0

	// ReleaseFirst releases the first operand (sp1, or the lower one in Stack).
	ReleaseFirst Release = 1

	// ReleaseSecond releases the second operand (sp2, or the upper one in Stack).
	ReleaseSecond Release = 2

	// ReleaseBoth releases both operands.
	ReleaseBoth = ReleaseFirst | ReleaseSecond
)

// release frees the operands named by flag.
func (flag Release) release(sp1, sp2 *Subraster) {
	if flag&ReleaseFirst != 0 {
		sp1.Release()
	}
	if flag&ReleaseSecond != 0 {
		sp2.Release()
	}
}

// BaselineSource selects the baseline of a stacked composite.
type BaselineSource uint8

const (
	// BaselineLower keeps the lower operand's baseline.
	BaselineLower BaselineSource = iota

	// BaselineUpper keeps the upper operand's baseline.
	BaselineUpper

	// BaselineComputed puts the baseline in the middle of the gap between
	// the operands, where a fraction bar goes.
	BaselineComputed
)

// Composer carries the compositing configuration. It is an immutable
// value: create one per render setting and share it freely.
type Composer struct {
	smash       bool
	smashMargin int
	smashDelta  bool
	fontSize    int
	stringMode  bool
	strict      bool
}

// NewComposer creates a Composer with the given options applied over
// the defaults (no smashing, DefaultSmashMargin, DefaultFontSize).
func NewComposer(opts ...ComposerOption) Composer {
	c := Composer{
		smashMargin: DefaultSmashMargin,
		fontSize:    DefaultFontSize,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// With returns a copy of c with opts applied.
func (c Composer) With(opts ...ComposerOption) Composer {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Smash reports whether kerning is enabled.
func (c Composer) Smash() bool { return c.smash }

// SmashMargin returns the configured smash margin.
func (c Composer) SmashMargin() int { return c.smashMargin }

// FontSize returns the configured size class.
func (c Composer) FontSize() int { return c.fontSize }

// StringMode reports whether concatenation joins operands as text.
func (c Composer) StringMode() bool { return c.stringMode }

func (c Composer) overlay(dst, src *Raster, top, left int, opaque bool) error {
	_, err := Overlay(dst, src, top, left, opaque, c.strict)
	return err
}

// operands returns the rasters of sp1 and sp2, failing on nil or
// released operands.
func operands(sp1, sp2 *Subraster) (*Raster, *Raster, error) {
	if sp1 == nil || sp2 == nil {
		return nil, nil, ErrNilSubraster
	}
	r1, r2 := sp1.Image(), sp2.Image()
	if r1 == nil || r2 == nil {
		return nil, nil, ErrReleased
	}
	return r1, r2, nil
}

// Compose overlays sp2 on sp1, e.g. for accents, negations and \not.
//
// The composite covers the union of both operands. sp1 is centered
// horizontally and drawn opaque; sp2 is centered on sp1, shifted right by
// offset columns and drawn transparently. With align, both baselines land
// on one row and the extra height is computed separately above and below
// it; otherwise both operands are centered vertically.
func (c Composer) Compose(sp1, sp2 *Subraster, offset int, align bool, release Release) (*Subraster, error) {
	r1, r2, err := operands(sp1, sp2)
	if err != nil {
		return nil, err
	}
	base1, h1, w1 := sp1.Baseline, r1.height, r1.width
	base2, h2, w2 := sp2.Baseline, r2.height, r2.width

	var height, base, top1, top2 int
	if align {
		base = max(base1, base2)
		height = base + 1 + max(h1-base1-1, h2-base2-1)
		top1, top2 = base-base1, base-base2
	} else {
		height = max(h1, h2)
		base = base1 + (height-h1)/2
		top1, top2 = (height-h1)/2, (height-h2)/2
	}

	// Column of sp2 relative to sp1, then shift both into the union.
	rel := (w1-w2)/2 + offset
	minLeft := min(0, rel)
	width := max(w1, rel+w2) - minLeft

	sp, err := NewSubraster(width, height, max(r1.pixelSize, r2.pixelSize))
	if err != nil {
		return nil, fmt.Errorf("compose %dx%d: %w", width, height, err)
	}
	sp.Baseline = base
	sp.Size = sp1.Size
	if err := c.overlay(sp.image, r1, top1, -minLeft, true); err != nil {
		return nil, err
	}
	if err := c.overlay(sp.image, r2, top2, rel-minLeft, false); err != nil {
		return nil, err
	}
	release.release(sp1, sp2)
	return sp, nil
}

// Stack places upper above lower with space blank rows between them.
//
// The composite is max(width) wide and height(lower)+space+height(upper)
// tall. With center, each operand is centered horizontally on its own;
// otherwise both are left-justified. Negative space is treated as zero.
func (c Composer) Stack(lower, upper *Subraster, baseline BaselineSource, space int, center bool, release Release) (*Subraster, error) {
	r1, r2, err := operands(lower, upper)
	if err != nil {
		return nil, err
	}
	space = max(space, 0)
	h1, w1 := r1.height, r1.width
	h2, w2 := r2.height, r2.width
	width, height := max(w1, w2), h1+space+h2

	sp, err := NewSubraster(width, height, max(r1.pixelSize, r2.pixelSize))
	if err != nil {
		return nil, fmt.Errorf("stack %dx%d: %w", width, height, err)
	}
	switch baseline {
	case BaselineUpper:
		sp.Baseline = upper.Baseline
	case BaselineComputed:
		sp.Baseline = h2 + space/2
	default:
		sp.Baseline = h2 + space + lower.Baseline
	}
	sp.Baseline = min(max(sp.Baseline, 0), max(height-1, 0))
	sp.Size = lower.Size

	left1, left2 := 0, 0
	if center {
		left1, left2 = (width-w1)/2, (width-w2)/2
	}
	if err := c.overlay(sp.image, r2, 0, left2, true); err != nil {
		return nil, err
	}
	if err := c.overlay(sp.image, r1, h2+space, left1, true); err != nil {
		return nil, err
	}
	release.release(lower, upper)
	return sp, nil
}

// Tile builds one raster from subrasters placed at their Top and Left
// coordinates. The result spans the bounding box of all tiles, whose
// top-left corner becomes (0, 0). Tiles are drawn opaque in order.
func (c Composer) Tile(tiles []*Subraster) (*Raster, error) {
	if len(tiles) == 0 {
		return NewRaster(0, 0, 1)
	}
	minTop, minLeft := int(^uint(0)>>1), int(^uint(0)>>1)
	maxBottom, maxRight := -minTop-1, -minLeft-1
	pixelSize := 1
	for i, t := range tiles {
		if t == nil {
			return nil, fmt.Errorf("tile %d: %w", i, ErrNilSubraster)
		}
		r := t.Image()
		if r == nil {
			return nil, fmt.Errorf("tile %d: %w", i, ErrReleased)
		}
		minTop, minLeft = min(minTop, t.Top), min(minLeft, t.Left)
		maxBottom, maxRight = max(maxBottom, t.Top+r.height), max(maxRight, t.Left+r.width)
		pixelSize = max(pixelSize, r.pixelSize)
	}
	dst, err := NewRaster(maxRight-minLeft, maxBottom-minTop, pixelSize)
	if err != nil {
		return nil, fmt.Errorf("tile: %w", err)
	}
	for _, t := range tiles {
		if err := c.overlay(dst, t.image, t.Top-minTop, t.Left-minLeft, true); err != nil {
			return nil, err
		}
	}
	return dst, nil
}
