package glyph

import (
	"unicode"

	"github.com/gogpu/texraster"
)

// DefaultClass maps ASCII math punctuation to symbol classes. Letters are
// variables; everything else is ordinary.
func DefaultClass(r rune) texraster.Class {
	switch r {
	case '+', '-', '*', '/', '±', '×', '÷', '−':
		return texraster.BinaryOp
	case '=', '<', '>', '≠', '≤', '≥', '→':
		return texraster.Relation
	case '(', '[', '{':
		return texraster.Opening
	case ')', ']', '}':
		return texraster.Closing
	case ',', ';', ':', '.', '!', '?':
		return texraster.Punctuation
	case '∑', '∏', '∫':
		return texraster.DisplayOperator
	}
	if unicode.IsLetter(r) {
		return texraster.Variable
	}
	return texraster.Ordinary
}
