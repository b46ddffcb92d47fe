package texraster

import "fmt"

// symbolSpace is the base number of blank columns between two adjacent
// symbols, indexed by the class of the left and the right symbol.
var symbolSpace = [numClasses][numClasses]int{
	//           ORD OPER BIN REL OPEN CLOS PUNC VAR DISP
	Ordinary:        {2, 3, 3, 5, 3, 2, 2, 2, 3},
	Operator:        {3, 1, 1, 5, 3, 2, 2, 2, 3},
	BinaryOp:        {2, 1, 1, 5, 3, 2, 2, 2, 3},
	Relation:        {5, 5, 5, 2, 5, 5, 2, 5, 5},
	Opening:         {2, 2, 2, 5, 2, 4, 2, 2, 3},
	Closing:         {2, 3, 3, 5, 4, 2, 1, 2, 3},
	Punctuation:     {2, 2, 2, 5, 2, 2, 1, 2, 2},
	Variable:        {2, 2, 2, 5, 2, 2, 1, 2, 2},
	DisplayOperator: {2, 3, 3, 5, 2, 3, 2, 2, 2},
}

// textual reports whether c is a class whose glyphs sit like letters,
// for which smashing down to the inter-symbol space is safe.
func textual(c Class) bool {
	switch c {
	case Ordinary, Variable, Opening, Closing, Punctuation:
		return true
	}
	return false
}

// spacing returns the inter-symbol space between classes c1 and c2.
func (c Composer) spacing(c1, c2 Class) int {
	return max(2, symbolSpace[c1][c2]+c.fontSize-3)
}

// Concatenate places sp2 to the right of sp1 on a common baseline.
//
// The operands are separated by the class-pair space, which is zero in
// string mode or when either operand is already a String. With smashing
// enabled, sp2 then moves left by the distance SmashDistance permits
// less the smash margin, except next to relations and binary operators.
// The composite is never narrower than either operand.
//
// Punctuation following a fraction sits on the fraction's last row
// instead of its bar.
func (c Composer) Concatenate(sp1, sp2 *Subraster, release Release) (*Subraster, error) {
	r1, r2, err := operands(sp1, sp2)
	if err != nil {
		return nil, err
	}
	class1, class2 := classOf(sp1.Symbol), classOf(sp2.Symbol)
	h1, w1 := r1.height, r1.width
	h2, w2 := r2.height, r2.width
	base1, base2 := sp1.Baseline, sp2.Baseline
	if sp1.Kind == KindFraction && class2 == Punctuation {
		base1 = h1 - 1
	}

	isString := c.stringMode || sp1.Kind == KindString || sp2.Kind == KindString
	space := 0
	if !isString {
		space = c.spacing(class1, class2)
	}

	reduce := 0
	if c.smash && !isString &&
		class1 != Relation && class1 != BinaryOp &&
		class2 != Relation && class2 != BinaryOp {
		margin := c.smashMargin
		if textual(class1) && textual(class2) ||
			!isPicture(sp1.Kind) && !isPicture(sp2.Kind) {
			// Letters may close up to the inter-symbol space, never
			// below the configured margin.
			margin = max(margin, space-1)
		} else if c.smashDelta {
			margin += c.fontSize
		}
		// Search in the frame the operands are drawn in below.
		res := smashDistance(r1, base1, sp1.Kind == KindBlank,
			r2, base2, sp2.Kind == KindBlank, margin)
		if !res.Blank {
			reduce = max(0, res.Distance-margin)
		}
	}

	base := max(base1, base2)
	height := base + 1 + max(h1-base1-1, h2-base2-1)
	width := max(w1+w2+space-reduce, w1, w2)
	top1, top2 := base-base1, base-base2

	sp, err := NewSubraster(width, height, max(r1.pixelSize, r2.pixelSize))
	if err != nil {
		return nil, fmt.Errorf("concatenate %dx%d: %w", width, height, err)
	}
	if isString {
		sp.Kind = KindString
	}
	sp.Symbol = sp2.Symbol
	sp.Size = max(sp1.Size, sp2.Size)
	// The composite keeps sp1's own baseline row.
	sp.Baseline = top1 + sp1.Baseline

	if err := c.overlay(sp.image, r1, top1, 0, true); err != nil {
		return nil, err
	}
	if err := c.overlay(sp.image, r2, top2, max(0, w1+space-reduce), reduce == 0); err != nil {
		return nil, err
	}
	Logger().Debug("texraster: concatenate",
		"left", sp1.Kind, "right", sp2.Kind,
		"space", space, "smash", reduce,
		"width", width, "height", height)
	release.release(sp1, sp2)
	return sp, nil
}

// isPicture reports whether k is a composite whose shape smashing
// cannot predict from character metrics.
func isPicture(k Kind) bool {
	return k == KindImage || k == KindFraction
}
