package aa

// NumPatterns is the number of pattern classes.
const NumPatterns = 51

// patternTable maps grid numbers with the center bit dropped to their
// pattern class. Classes are the orbits of the eight-neighbour ring under
// the rotations and reflections of the square.
//
// Only the anchor classes 1, 2, 11, 19, 20, 24 and 39 have fixed numbers;
// the rest are ordered by ink count, then by lowest member.
// TODO: check this numbering and the centerBlack and centerWhite weights
// against the aapatternnum and aapatterns reference data; until then all
// three tables are provisional.
var patternTable = [256]uint8{
	1, 3, 4, 20, 3, 5, 20, 19, 4, 20, 11, 24, 6, 9, 10, 39, //   0- 15
	4, 6, 11, 10, 20, 9, 24, 39, 7, 12, 13, 18, 12, 21, 18, 33, //  16- 31
	3, 5, 6, 9, 8, 14, 15, 22, 20, 19, 10, 39, 15, 22, 23, 34, //  32- 47
	6, 16, 17, 25, 15, 26, 27, 35, 12, 28, 29, 36, 30, 37, 38, 44, //  48- 63
	4, 6, 7, 12, 6, 16, 12, 28, 11, 10, 13, 18, 17, 25, 29, 36, //  64- 79
	11, 17, 13, 29, 10, 25, 18, 36, 13, 29, 31, 40, 29, 41, 40, 45, //  80- 95
	20, 9, 12, 21, 15, 26, 30, 37, 24, 39, 18, 33, 27, 35, 38, 44, //  96-111
	10, 25, 29, 41, 23, 42, 38, 46, 18, 36, 40, 45, 38, 46, 47, 50, // 112-127
	3, 8, 6, 15, 5, 14, 9, 22, 6, 15, 17, 27, 16, 26, 25, 35, // 128-143
	20, 15, 10, 23, 19, 22, 39, 34, 12, 30, 29, 38, 28, 37, 36, 44, // 144-159
	5, 14, 16, 26, 14, 32, 26, 43, 9, 22, 25, 35, 26, 43, 42, 48, // 160-175
	9, 26, 25, 42, 22, 43, 35, 48, 21, 37, 41, 46, 37, 49, 46, 51, // 176-191
	20, 15, 12, 30, 9, 26, 21, 37, 10, 23, 29, 38, 25, 42, 41, 46, // 192-207
	24, 27, 18, 38, 39, 35, 33, 44, 18, 38, 40, 47, 36, 46, 45, 50, // 208-223
	19, 22, 28, 37, 22, 43, 37, 49, 39, 34, 36, 44, 35, 48, 46, 51, // 224-239
	39, 35, 36, 46, 34, 48, 44, 51, 33, 44, 45, 50, 44, 51, 50, 2, // 240-255
}

// centerBlack is the intensity, out of 255, of an ink pixel per pattern
// class. Index 0 is unused.
var centerBlack = [NumPatterns + 1]uint8{
	0,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 233, //  1-10
	170, 255, 255, 255, 255, 255, 233, 255, 255, 255, // 11-20
	255, 255, 233, 212, 233, 255, 233, 255, 255, 255, // 21-30
	255, 255, 255, 233, 233, 255, 255, 255, 233, 255, // 31-40
	255, 233, 255, 255, 255, 255, 255, 233, 255, 255, // 41-50
	255, // 51
}

// centerWhite is the intensity, out of 255, of a background pixel per
// pattern class. Index 0 is unused.
var centerWhite = [NumPatterns + 1]uint8{
	0,
	0, 223, 0, 0, 0, 0, 0, 0, 0, 80, //  1-10
	64, 0, 128, 0, 0, 0, 80, 144, 0, 0, // 11-20
	0, 0, 96, 80, 96, 0, 96, 0, 144, 0, // 21-30
	191, 0, 160, 112, 112, 160, 0, 160, 96, 199, // 31-40
	160, 112, 0, 176, 207, 176, 207, 128, 0, 215, // 41-50
	192, // 51
}

// PatternClass returns the pattern class of grid number g, in
// [1, NumPatterns]. ok is false when g is outside [0, MaxGridNumber].
func PatternClass(g int) (class int, ok bool) {
	if g < 0 || g > MaxGridNumber {
		return 0, false
	}
	return int(patternTable[g>>1]), true
}

// TableWeight returns the tabulated intensity, out of 255, of a pixel of
// the given class. ok is false for classes outside [1, NumPatterns].
func TableWeight(class int, ink bool) (w int, ok bool) {
	if class < 1 || class > NumPatterns {
		return 0, false
	}
	if ink {
		return int(centerBlack[class]), true
	}
	return int(centerWhite[class]), true
}
