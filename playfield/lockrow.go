package playfield

import "math/bits"

// FindLockRow returns the lowest row the piece can still occupy when
// dropping straight down from startRow in column col, given bit
// startRow of col is already set (free). It is the bit trick from
// original_source/src/move_search.h:321-329:
//
//	col               = 00111100011101
//	1<<row            = 00000000001000
//	col+(1<<row)      = 00111100100101
//	col^(col+(1<<row))= 00000000111000
//	              highbit=31-clz ^
//
// Adding 1<<startRow ripples a carry through the contiguous run of
// free bits starting at startRow until it hits the first non-free bit
// (an obstacle, or the implicit floor sentinel past row 19); XOR with
// the original column isolates exactly that run, and its high bit
// minus one is the last free row before the obstacle.
func FindLockRow(col Column, startRow int) int {
	x := uint32(col) ^ (uint32(col) + (1 << uint(startRow)))
	return 31 - bits.LeadingZeros32(x) - 1
}
