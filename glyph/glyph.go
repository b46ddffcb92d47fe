// Package glyph turns glyph masks from golang.org/x/image/font faces into
// borrowed character subrasters.
//
// A Source thresholds each glyph once, crops it to its ink (keeping the
// baseline row inside the bitmap) and hands out KindCharacter subrasters
// that borrow the cached raster. Releasing such a subraster never frees
// the cached glyph.
//
// Faces are supplied by the caller; the package does no font lookup.
package glyph

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/gogpu/texraster"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

var (
	// ErrNilFace is returned by NewSource for a nil face.
	ErrNilFace = errors.New("glyph: nil face")

	// ErrNoGlyph is returned when the face has no glyph for a rune.
	ErrNoGlyph = errors.New("glyph: no glyph for rune")
)

// Source caches thresholded glyphs of one face.
//
// Source is safe for concurrent use; the face itself is only accessed
// under the source's lock.
type Source struct {
	face     font.Face
	size     int
	classify func(rune) texraster.Class

	mu     sync.Mutex
	glyphs map[rune]*entry
}

// entry is a cached glyph. raster is nil for glyphs without ink.
type entry struct {
	raster   *texraster.Raster
	baseline int
	advance  int
	symbol   *texraster.Symbol
}

// Option configures a Source.
type Option func(*Source)

// WithSize sets the font size class stamped on produced subrasters.
func WithSize(size int) Option {
	return func(s *Source) { s.size = size }
}

// WithClassifier replaces DefaultClass as the rune to class mapping.
func WithClassifier(classify func(rune) texraster.Class) Option {
	return func(s *Source) {
		if classify != nil {
			s.classify = classify
		}
	}
}

// NewSource returns a glyph source for face.
func NewSource(face font.Face, opts ...Option) (*Source, error) {
	if face == nil {
		return nil, ErrNilFace
	}
	s := &Source{
		face:     face,
		size:     texraster.DefaultFontSize,
		classify: DefaultClass,
		glyphs:   make(map[rune]*entry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Len returns the number of cached glyphs.
func (s *Source) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.glyphs)
}

// Character returns a subraster for r. Glyphs with ink come back as
// borrowed KindCharacter subrasters; glyphs without ink (spaces) come back
// as owned KindBlank subrasters as wide as the glyph advance.
func (s *Source) Character(r rune) (*texraster.Subraster, error) {
	e, err := s.lookup(r)
	if err != nil {
		return nil, err
	}
	if e.raster == nil {
		sp, err := texraster.NewBlank(e.advance, 1)
		if err != nil {
			return nil, err
		}
		sp.Symbol = e.symbol
		sp.Size = s.size
		return sp, nil
	}
	return texraster.NewCharacter(e.raster, e.symbol, e.baseline, s.size), nil
}

// Text concatenates the glyphs of text in string mode.
func (s *Source) Text(c texraster.Composer, text string) (*texraster.Subraster, error) {
	c = c.With(texraster.WithStringMode(true))
	var out *texraster.Subraster
	for _, r := range text {
		sp, err := s.Character(r)
		if err != nil {
			if out != nil {
				out.Release()
			}
			return nil, err
		}
		if out == nil {
			out = sp
			continue
		}
		next, err := c.Concatenate(out, sp, texraster.ReleaseBoth)
		if err != nil {
			out.Release()
			sp.Release()
			return nil, err
		}
		out = next
	}
	if out == nil {
		return texraster.NewBlank(0, 1)
	}
	return out, nil
}

func (s *Source) lookup(r rune) (*entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.glyphs[r]; ok {
		return e, nil
	}
	e, err := s.render(r)
	if err != nil {
		return nil, err
	}
	s.glyphs[r] = e
	texraster.Logger().Debug("glyph: cached",
		"rune", string(r), "baseline", e.baseline, "blank", e.raster == nil)
	return e, nil
}

// render thresholds the mask of r drawn with its origin at (0, 0), so dr
// is relative to the baseline: row y of dr sits y rows below it.
func (s *Source) render(r rune) (*entry, error) {
	dr, mask, maskp, advance, ok := s.face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrNoGlyph, r)
	}
	e := &entry{
		advance: advance.Round(),
		symbol:  &texraster.Symbol{Name: string(r), Class: s.classify(r)},
	}
	cell, err := threshold(dr, mask, maskp)
	if err != nil {
		return nil, err
	}
	top, left, width, height := cell.InkBounds()
	if width == 0 {
		return e, nil
	}

	// The character baseline is the last row above y = 0. Keep it inside
	// the cropped bitmap even for glyphs drawn wholly above or below it.
	base := -1 - dr.Min.Y
	first := min(top, base)
	last := max(top+height, base+1)
	glyph, err := texraster.NewRaster(width, last-first, 1)
	if err != nil {
		return nil, err
	}
	if _, err := texraster.Overlay(glyph, cell, -first, -left, true, false); err != nil {
		return nil, err
	}
	e.raster = glyph
	e.baseline = base - first
	return e, nil
}

// threshold converts the dr-sized region of mask at maskp into a 1-bit
// raster. Coverage of at least half counts as ink.
func threshold(dr image.Rectangle, mask image.Image, maskp image.Point) (*texraster.Raster, error) {
	cell, err := texraster.NewRaster(dr.Dx(), dr.Dy(), 1)
	if err != nil {
		return nil, err
	}
	if mask == nil {
		return cell, nil
	}
	for row := range dr.Dy() {
		for col := range dr.Dx() {
			_, _, _, a := mask.At(maskp.X+col, maskp.Y+row).RGBA()
			if a >= 0x8000 {
				cell.SetPixel(row, col, 1)
			}
		}
	}
	return cell, nil
}
