package texraster

import "errors"

// Common errors for raster operations.
var (
	// ErrInvalidSize is returned when width or height is negative.
	ErrInvalidSize = errors.New("texraster: invalid raster size")

	// ErrPixelSize is returned for pixel sizes other than 1 and 8 bits.
	ErrPixelSize = errors.New("texraster: pixel size must be 1 or 8")

	// ErrRasterTooLarge is returned when width*height*pixelSize exceeds MaxRasterBits.
	ErrRasterTooLarge = errors.New("texraster: raster too large")

	// ErrOutOfBounds is returned by strict overlays whose source does not
	// fit inside the target.
	ErrOutOfBounds = errors.New("texraster: source outside target bounds")

	// ErrReleased is returned when an operand's raster was already released.
	ErrReleased = errors.New("texraster: raster already released")

	// ErrNilSubraster is returned when a compositing operand is nil.
	ErrNilSubraster = errors.New("texraster: nil subraster")
)
