package movesearch

import "tetris-movesearch/playfield"

// FrameMasks holds, for every (rot, col), the frame mask at which the
// piece occupies that cell without colliding (Frame) and the frame
// mask at which gravity drags it straight through that cell on the
// way down (Drop). Ported from FrameMasks<R>
// (original_source/src/move_search.h:258-261).
type FrameMasks struct {
	Frame, Drop [][10]playfield.Frames // length R
}

func buildFrameMasks(level playfield.Level, r int, cols [][10]playfield.Column) FrameMasks {
	fm := FrameMasks{
		Frame: make([][10]playfield.Frames, r),
		Drop:  make([][10]playfield.Frames, r),
	}
	for rot := 0; rot < r; rot++ {
		for col := 0; col < 10; col++ {
			fm.Frame[rot][col] = playfield.ColumnToNormalFrameMask(level, cols[rot][col])
			fm.Drop[rot][col] = playfield.ColumnToDropFrameMask(level, cols[rot][col])
		}
	}
	return fm
}
