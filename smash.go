package texraster

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// SmashResult is the outcome of a kerning search.
type SmashResult struct {
	// Distance is the number of columns the right operand may move left.
	Distance int

	// Blank is set when the right operand holds no ink. Intentional white
	// space must never be smashed.
	Blank bool
}

// noInk marks a profile row without ink.
const noInk = -1

// unbounded is the initial search distance.
const unbounded = 9999

// SmashDistance finds how far sp2 can slide left towards sp1 before the
// ink of the two operands gets closer than the search allows.
//
// Both operands are placed on a common baseline. For each row the search
// measures the blank columns after sp1's last ink pixel and before sp2's
// first ink pixel, then looks for the row pair minimizing gap plus the
// vertical distance between the rows. Once a candidate exists, pairs more
// than margin rows apart never replace it for a narrower gap alone.
//
// The result is the horizontal gap of the best pair. It is 0 when sp1 is
// blank or when some pair is already within distance 2, and Blank is set
// when sp2 is blank.
func SmashDistance(sp1, sp2 *Subraster, margin int) SmashResult {
	r1, r2, err := operands(sp1, sp2)
	if err != nil {
		return SmashResult{}
	}
	return smashDistance(r1, sp1.Baseline, sp1.Kind == KindBlank,
		r2, sp2.Baseline, sp2.Kind == KindBlank, margin)
}

// smashDistance is SmashDistance on rasters aligned at rows base1 and
// base2, the frame the caller draws them in.
func smashDistance(r1 *Raster, base1 int, blank1 bool, r2 *Raster, base2 int, blank2 bool, margin int) SmashResult {
	if blank2 || r2.IsBlank() {
		return SmashResult{Blank: true}
	}
	if blank1 || r1.IsBlank() {
		return SmashResult{}
	}

	base := max(base1, base2)
	top1, top2 := base-base1, base-base2
	bot1, bot2 := top1+r1.height-1, top2+r2.height-1
	right1 := trailingProfile(r1)
	left2 := leadingProfile(r2)

	smin, xmin := unbounded, unbounded
	for row2 := top2; row2 <= bot2; row2++ {
		gap2 := left2[row2-top2]
		if gap2 != noInk {
			for row1 := max(row2-smin, top1); row1 <= min(row2+smin, bot1); row1++ {
				gap1 := right1[row1-top1]
				if gap1 == noInk {
					continue
				}
				dx := gap1 + gap2
				dy := abs(row2 - row1)
				ds := dx + dy
				if ds >= smin {
					continue
				}
				if dy > margin && dx < xmin && smin < unbounded {
					continue
				}
				smin, xmin = ds, dx
			}
		}
		if smin < 2 {
			return SmashResult{}
		}
	}
	return SmashResult{Distance: xmin}
}

// leadingProfile returns, per row, the number of blank columns before the
// first ink pixel, or noInk.
func leadingProfile(r *Raster) []int {
	prof := make([]int, r.height)
	for row := range prof {
		prof[row] = noInk
		for col := 0; col < r.width; col++ {
			if r.Pixel(row, col) != 0 {
				prof[row] = col
				break
			}
		}
	}
	return prof
}

// trailingProfile returns, per row, the number of blank columns after the
// last ink pixel, or noInk.
func trailingProfile(r *Raster) []int {
	prof := make([]int, r.height)
	for row := range prof {
		prof[row] = noInk
		for col := r.width - 1; col >= 0; col-- {
			if r.Pixel(row, col) != 0 {
				prof[row] = r.width - 1 - col
				break
			}
		}
	}
	return prof
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// styleDirectives are skipped before SmashGuard inspects a term.
var styleDirectives = []string{
	`\tiny`, `\small`, `\normalsize`, `\large`, `\Large`, `\LARGE`,
	`\huge`, `\Huge`, `\displaystyle`, `\textstyle`, `\scriptstyle`,
}

// unsafeLeaders are leading characters whose glyphs kern badly.
const unsafeLeaders = "-.,="

// SmashGuard reports whether a term may be smashed against its left
// neighbour. Leading white space and size or style directives are
// skipped; full-width forms are folded to their ASCII equivalents first.
// Empty terms, terms starting with one of "-.,=" and fractions are
// rejected.
func SmashGuard(term string) bool {
	s := width.Fold.String(term)
	for {
		s = strings.TrimLeftFunc(s, unicode.IsSpace)
		d := leadingDirective(s, styleDirectives)
		if d == "" {
			break
		}
		s = s[len(d):]
	}
	switch {
	case s == "":
		return false
	case strings.IndexByte(unsafeLeaders, s[0]) >= 0:
		return false
	case leadingDirective(s, []string{`\frac`}) != "":
		return false
	}
	return true
}

// leadingDirective returns the directive s starts with, or "". A
// directive only matches when no letter follows it.
func leadingDirective(s string, directives []string) string {
	for _, d := range directives {
		if !strings.HasPrefix(s, d) {
			continue
		}
		if rest := s[len(d):]; rest != "" && isLetter(rest[0]) {
			continue
		}
		return d
	}
	return ""
}

func isLetter(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}
