package texraster

// ComposerOption configures a Composer during creation.
//
// Example:
//
//	// Default composer: no smashing, normal size
//	c := texraster.NewComposer()
//
//	// Kerning with a 3-pixel safety margin
//	c := texraster.NewComposer(texraster.WithSmash(true), texraster.WithSmashMargin(3))
type ComposerOption func(*Composer)

// DefaultFontSize is the size class at which the spacing table applies
// unchanged.
const DefaultFontSize = 3

// DefaultSmashMargin is the number of columns smashing leaves between
// two operands.
const DefaultSmashMargin = 3

// WithSmash enables automatic optical kerning in Concatenate.
func WithSmash(enabled bool) ComposerOption {
	return func(c *Composer) {
		c.smash = enabled
	}
}

// WithSmashMargin sets the minimum number of columns smashing preserves.
// Negative values are treated as zero.
func WithSmashMargin(margin int) ComposerOption {
	return func(c *Composer) {
		c.smashMargin = max(margin, 0)
	}
}

// WithSmashDelta makes the smash margin relative to the font size:
// the font size is added to the margin when images are involved.
func WithSmashDelta(delta bool) ComposerOption {
	return func(c *Composer) {
		c.smashDelta = delta
	}
}

// WithFontSize sets the size class used to scale inter-symbol spacing.
func WithFontSize(size int) ComposerOption {
	return func(c *Composer) {
		c.fontSize = size
	}
}

// WithStringMode makes Concatenate join operands as text: no
// inter-symbol space and no smashing.
func WithStringMode(on bool) ComposerOption {
	return func(c *Composer) {
		c.stringMode = on
	}
}

// WithStrict makes every overlay inside an operator fail with
// ErrOutOfBounds instead of clipping.
func WithStrict(strict bool) ComposerOption {
	return func(c *Composer) {
		c.strict = strict
	}
}
