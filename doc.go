// Package texraster provides the bitmap raster algebra used to typeset
// small math expressions from monochrome glyph bitmaps.
//
// # Overview
//
// A [Raster] is a rectangular 1-bit or 8-bit pixel buffer. A [Subraster]
// wraps a Raster with a baseline, a kind and optional symbol metadata, and
// is the unit the compositing operators work on:
//
//	c := texraster.NewComposer(texraster.WithSmash(true))
//
//	// "x+y": concatenate glyph subrasters with optical kerning
//	sp, err := c.Concatenate(x, plus, texraster.ReleaseNone)
//	if err != nil { ... }
//	sp, err = c.Concatenate(sp, y, texraster.ReleaseFirst)
//
//	// fraction: numerator over denominator with a gap for the bar
//	frac, err := c.Stack(den, num, texraster.BaselineComputed, 3, true, texraster.ReleaseBoth)
//
// Package glyph builds character subrasters from golang.org/x/image/font
// faces. The final monochrome raster is converted to grayscale by package
// aa and reduced to an indexed image by package palette.
//
// # Ownership
//
// Subrasters built with [NewCharacter] borrow their raster from a glyph
// source and never release it. All other subrasters own their raster.
// Operators accepting a [Release] flag release exactly the operands the
// flag names, after the composite has been built.
//
// # Coordinate System
//
// Rows grow downward from 0 at the top, columns grow rightward from 0.
// Pixel (row, col) lives at linear index row*width+col.
//
// # Concurrency
//
// All operations are synchronous and pure aside from explicit releases.
// Configuration is carried by values ([Composer], aa.Config), so concurrent
// renders with different settings do not interfere.
package texraster

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
