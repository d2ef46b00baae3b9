package movesearch_test

import "tetris-movesearch/playfield"

// tOffset is one occupied cell of a piece shape, relative to its
// reference (row, col).
type tOffset struct{ dr, dc int }

// tOffsets gives the four rotation states of a classic T tetromino,
// each as offsets from the reference cell (the top-left corner of its
// bounding box). This fixture exists only to exercise the kernel in
// these tests; real piece geometry belongs to the collaborator.
var tOffsets = [4][]tOffset{
	{{0, 1}, {1, 0}, {1, 1}, {1, 2}}, // up: flat side down
	{{0, 0}, {1, 0}, {1, 1}, {2, 0}}, // right
	{{0, 0}, {0, 1}, {0, 2}, {1, 1}}, // down: flat side up
	{{0, 1}, {1, 0}, {1, 1}, {2, 1}}, // left
}

// tMaxDr is the largest row offset in each rotation's shape, i.e. how
// far below the reference cell the piece extends.
var tMaxDr = [4]int{1, 2, 1, 2}

// buildTBoards convolves a 20x10 occupancy grid with the T piece's
// four rotation offsets, producing the per-rotation free-cell Board
// array the kernel expects.
func buildTBoards(occupied [20][10]bool) []playfield.Board {
	boards := make([]playfield.Board, 4)
	for rot := 0; rot < 4; rot++ {
		for row := 0; row < 20; row++ {
			for col := 0; col < 10; col++ {
				if cellFree(occupied, tOffsets[rot], row, col) {
					boards[rot].SetFree(row, col)
				}
			}
		}
	}
	return boards
}

func cellFree(occupied [20][10]bool, offsets []tOffset, row, col int) bool {
	for _, o := range offsets {
		r, c := row+o.dr, col+o.dc
		if r < 0 || r >= 20 || c < 0 || c >= 10 {
			return false
		}
		if occupied[r][c] {
			return false
		}
	}
	return true
}
