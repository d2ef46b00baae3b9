package movesearch

import "tetris-movesearch/playfield"

// TableEntry is one (rot, col) target reachable from a Phase-1 table's
// root, together with the predecessor it extends and the board cells
// its segment requires free. Ported from TableEntry<R>
// (original_source/src/move_search.h:108-124).
type TableEntry struct {
	Rot, Col, Prev, NumTaps uint8

	// CannotFinish means this entry's end frame already falls on row 20
	// or later: the entry is reachable but cannot be extended by another
	// tap.
	CannotFinish bool

	// Masks holds, per rotation, the cells that must be free for the
	// full segment (including in-between drop cells) ending at this
	// entry. MasksNodrop is the subset covering only the pre-tap and
	// post-tap cells, used when the segment's start frame is reachable
	// but CannotFinish is set.
	Masks, MasksNodrop []playfield.Board
}
