// Package filter provides the 3x3 neighbourhood kernels used by the
// convolution anti-aliasing filters.
//
// A kernel weighs the nine cells around a pixel: the center, the four
// edge-adjacent cells and the four corners. Cells are addressed in
// row-major order from the north-west corner.
//
//	NW N NE
//	W  C E
//	SW S SE
package filter
