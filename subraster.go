package texraster

import "fmt"

// Kind tags what a Subraster holds.
type Kind uint8

const (
	// KindCharacter is a single glyph whose raster is borrowed from a
	// glyph source.
	KindCharacter Kind = iota

	// KindString is text concatenated in string mode.
	KindString

	// KindImage is a general composite.
	KindImage

	// KindFraction is a numerator/denominator composite.
	KindFraction

	// KindBlank is intentional white space that must never be smashed.
	KindBlank
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindCharacter:
		return "Character"
	case KindString:
		return "String"
	case KindImage:
		return "Image"
	case KindFraction:
		return "Fraction"
	case KindBlank:
		return "Blank"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Class is the semantic class of a symbol, used for inter-symbol spacing
// and smash decisions.
type Class uint8

const (
	Ordinary Class = iota
	Operator
	BinaryOp
	Relation
	Opening
	Closing
	Punctuation
	Variable
	DisplayOperator

	// numClasses is the number of classes (for internal use).
	numClasses
)

// Symbol is read-only metadata about the glyph a Subraster came from.
// Subrasters only borrow it.
type Symbol struct {
	Name  string
	Class Class
}

// classOf returns the class of sym, Ordinary when sym is nil.
func classOf(sym *Symbol) Class {
	if sym == nil || sym.Class >= numClasses {
		return Ordinary
	}
	return sym.Class
}

// Subraster is a Raster plus the metadata needed for compositing.
//
// A Subraster either owns its raster or borrows it. Borrowed rasters
// (glyph bitmaps shared by a glyph source) are never released through
// the Subraster.
type Subraster struct {
	// Kind tags the content.
	Kind Kind

	// Symbol is the rightmost symbol of the content, or nil.
	Symbol *Symbol

	// Baseline is the row aligned with the surrounding text line.
	Baseline int

	// Size is the font size class the content was rendered at.
	Size int

	// Top and Left place the subraster when tiling.
	Top, Left int

	image    *Raster
	borrowed bool
	released bool
}

// NewSubraster allocates an owned subraster with a fresh raster.
func NewSubraster(width, height, pixelSize int) (*Subraster, error) {
	r, err := NewRaster(width, height, pixelSize)
	if err != nil {
		return nil, err
	}
	return &Subraster{Kind: KindImage, image: r}, nil
}

// Wrap makes an owned subraster around r with the given kind and baseline.
func Wrap(r *Raster, kind Kind, baseline int) *Subraster {
	return &Subraster{Kind: kind, Baseline: baseline, image: r}
}

// NewCharacter makes a KindCharacter subraster that borrows glyph.
// The glyph raster must not be modified while borrowed.
func NewCharacter(glyph *Raster, sym *Symbol, baseline, size int) *Subraster {
	return &Subraster{
		Kind:     KindCharacter,
		Symbol:   sym,
		Baseline: baseline,
		Size:     size,
		image:    glyph,
		borrowed: true,
	}
}

// NewBlank makes an owned KindBlank subraster of the given width and
// height. Its baseline is the last row, so it is entirely ascending.
func NewBlank(width, height int) (*Subraster, error) {
	sp, err := NewSubraster(width, height, 1)
	if err != nil {
		return nil, err
	}
	sp.Kind = KindBlank
	sp.Baseline = max(height-1, 0)
	return sp, nil
}

// Image returns the subraster's raster, or nil once released.
func (s *Subraster) Image() *Raster {
	if s.released {
		return nil
	}
	return s.image
}

// Borrowed reports whether the raster is borrowed from a glyph source.
func (s *Subraster) Borrowed() bool { return s.borrowed }

// Released reports whether Release has been called.
func (s *Subraster) Released() bool { return s.released }

// Width returns the raster width, 0 once released.
func (s *Subraster) Width() int {
	if r := s.Image(); r != nil {
		return r.width
	}
	return 0
}

// Height returns the raster height, 0 once released.
func (s *Subraster) Height() int {
	if r := s.Image(); r != nil {
		return r.height
	}
	return 0
}

// Release frees the owned raster. A borrowed raster is left intact.
// Only the first call has an effect.
func (s *Subraster) Release() {
	if s == nil || s.released {
		return
	}
	s.released = true
	if !s.borrowed && s.image != nil {
		s.image.Release()
	}
	s.image = nil
}

// Clone returns an owned deep copy of s. Cloning a borrowed character
// yields an owned copy of the glyph bitmap.
func (s *Subraster) Clone() (*Subraster, error) {
	r := s.Image()
	if r == nil {
		return nil, ErrReleased
	}
	c := *s
	c.image = r.Clone()
	c.borrowed = false
	return &c, nil
}

// Rotate returns an owned subraster holding s's raster rotated 90 degrees
// clockwise. The baseline is copied unchanged; rotation does not preserve
// baseline semantics, so callers must re-baseline the result.
func (s *Subraster) Rotate(release bool) (*Subraster, error) {
	r := s.Image()
	if r == nil {
		return nil, ErrReleased
	}
	out := s.derive(r.Rotate90())
	if release {
		s.Release()
	}
	return out, nil
}

// Reflect returns an owned subraster holding s's raster mirrored about axis.
// The baseline is copied unchanged.
func (s *Subraster) Reflect(axis Axis, release bool) (*Subraster, error) {
	r := s.Image()
	if r == nil {
		return nil, ErrReleased
	}
	out := s.derive(r.Reflect(axis))
	if release {
		s.Release()
	}
	return out, nil
}

// derive copies s's metadata onto a new owned raster.
func (s *Subraster) derive(r *Raster) *Subraster {
	kind := s.Kind
	if kind == KindCharacter {
		kind = KindImage
	}
	return &Subraster{
		Kind:     kind,
		Symbol:   s.Symbol,
		Baseline: s.Baseline,
		Size:     s.Size,
		image:    r,
	}
}

// String describes s for debugging.
func (s *Subraster) String() string {
	return fmt.Sprintf("%s %dx%d baseline=%d", s.Kind, s.Width(), s.Height(), s.Baseline)
}
