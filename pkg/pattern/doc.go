// Package pattern builds the symmetric binary grid of an identicon.
//
// A 15-character hex string is read as a 3×5 grid of nibbles. Each nibble maps
// to a bit (1 when even, 0 when odd). The three rows are mirrored into five
// (row2, row1, row0, row1, row2) and the result is rotated 90° clockwise, so
// the final grid is symmetric about its vertical midline:
//
//	hex "02468135790000f"
//
//	bits        mirrored       rotated
//	1 1 1 1 1   1 1 1 1 0      1 0 1 0 1
//	0 0 0 0 0   0 0 0 0 0      1 0 1 0 1
//	1 1 1 1 0   1 1 1 1 1      1 0 1 0 1
//	            0 0 0 0 0      1 0 1 0 1
//	            1 1 1 1 0      0 0 1 0 0
//
// [Pattern.ApplyColor] composites the grid with a foreground color: cells set
// to 1 take the color, cells set to 0 are white.
package pattern
