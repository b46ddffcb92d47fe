// Package aa converts a monochrome raster into an anti-aliased bytemap.
//
// Three algorithms are available, selected through Config:
//
//   - AlgorithmPattern classifies the 3x3 neighbourhood of every pixel
//     into one of 51 symmetry-reduced shape classes and looks up a tuned
//     intensity for the class. Shapes a table cannot tell apart (diagonal
//     lines, corners and junctions) are resolved by following the edge.
//   - AlgorithmLowpass is a 3x3 low-pass filter with a separately
//     weighted center, gated by the number of ink neighbours.
//   - AlgorithmPNM weighs center, edge and corner cells separately and
//     only touches pixels on an edge.
//
// Output bytemaps are 8-bit rasters of the same size as the input in
// which Levels-1 is full ink and 0 is background. The display
// convention (black on white or white on black) is left to the caller.
//
// Basic usage:
//
//	cfg := aa.DefaultConfig()
//	var stats aa.Stats
//	bytemap, err := aa.Antialias(r, cfg, &stats)
//
// # Grid numbers
//
// A neighbourhood is packed into a 9-bit grid number:
//
//	  2   4   8        NW  N   NE
//	 16   1  32        W   C   E
//	 64 128 256        SW  S   SE
//
// The center is bit 0, so the pattern class of g and g^1 is the same.
package aa
