package movesearch

import "tetris-movesearch/playfield"

// PieceKind names the seven NES Tetris pieces. The kernel only needs a
// piece's rotation count to pick R; piece geometry and the piece→R
// table's authority belong to the collaborator (spec.md §6), but the
// table is reproduced here since nothing in this module supplies it
// otherwise.
type PieceKind int

const (
	PieceT PieceKind = iota
	PieceJ
	PieceL
	PieceO
	PieceS
	PieceZ
	PieceI
)

var pieceRotations = map[PieceKind]int{
	PieceT: 4,
	PieceJ: 4,
	PieceL: 4,
	PieceO: 1,
	PieceS: 2,
	PieceZ: 2,
	PieceI: 2,
}

// Search holds one compiled Phase-1 table, keyed by (level, R,
// adjFrame, taps) and shared process-wide via the table cache. A
// *Search has no mutable state of its own and is safe for concurrent
// use across goroutines and boards (spec.md §5).
type Search struct {
	Level             playfield.Level
	R                 int
	AdjFrame          int
	Taps              playfield.TapSchedule
	DoubleTuckAllowed bool

	table     *Phase1Table
	tuckTypes []TuckType
}

// NewSearch validates its parameters and builds (or reuses, from the
// process-wide cache) the Phase-1 table for this configuration.
func NewSearch(level playfield.Level, r, adjFrame int, taps playfield.TapSchedule, doubleTuckAllowed bool) (*Search, error) {
	if !level.Valid() {
		return nil, playfield.ErrInvalidLevel
	}
	if r != 1 && r != 2 && r != 4 {
		return nil, ErrInvalidRotationCount
	}
	return &Search{
		Level:             level,
		R:                 r,
		AdjFrame:          adjFrame,
		Taps:              taps,
		DoubleTuckAllowed: doubleTuckAllowed,
		table:             getOrBuildTable(level, r, adjFrame, taps),
		tuckTypes:         tuckTypes(r, doubleTuckAllowed),
	}, nil
}

// MoveSearch evaluates this Search's Phase-1/Phase-2 tables against a
// concrete rotation-board array of length R, producing every
// placement reachable with and without a late adjustment input.
// Ported from Search<...>::MoveSearch
// (original_source/src/move_search.h:539-569).
func (s *Search) MoveSearch(board []playfield.Board) PossibleMoves {
	r := s.R
	cols := make([][10]playfield.Column, r)
	for rot := 0; rot < r; rot++ {
		for col := 0; col < 10; col++ {
			cols[rot][col] = board[rot].Column(col)
		}
	}
	fm := buildFrameMasks(s.Level, r, cols)
	tuckMasks := buildTuckMasks(r, s.tuckTypes, fm)

	canAdj := make([]bool, len(s.table.Initial))

	var ret PossibleMoves
	ret.NonAdj = s.doOneSearch(board, cols, tuckMasks, s.table.Initial, 0, false, canAdj)

	for initialID, entry := range s.table.Initial {
		if !canAdj[initialID] {
			continue
		}
		adjInitialFrame := s.adjInitialFrame(entry)
		moves := s.doOneSearch(board, cols, tuckMasks, s.table.Adj[initialID], adjInitialFrame, true, nil)
		if len(moves) == 0 {
			continue
		}
		row := s.Level.Row(adjInitialFrame)
		ret.Adj = append(ret.Adj, AdjEntry{
			Anchor: playfield.Position{Rot: entry.Rot, Row: uint8(row), Col: entry.Col},
			Moves:  moves,
		})
	}
	return ret
}

func (s *Search) adjInitialFrame(entry TableEntry) int {
	frame := s.AdjFrame
	if t := s.Taps[entry.NumTaps]; t > frame {
		frame = t
	}
	return frame
}

// MoveSearch is the kernel's top-level dispatch entry point: it looks
// up the piece's rotation count, builds (or reuses) a Search, and
// evaluates it against board. Ported from the three-level
// MoveSearch(level, adj_frame, Taps)(board, level, piece) template
// cascade (original_source/src/move_search.h:574-594).
func MoveSearch(board []playfield.Board, piece PieceKind, level playfield.Level, adjFrame int, taps playfield.TapSchedule, doubleTuckAllowed bool) (PossibleMoves, error) {
	r, ok := pieceRotations[piece]
	if !ok {
		return PossibleMoves{}, ErrInvalidPieceKind
	}
	if len(board) != r {
		return PossibleMoves{}, ErrInvalidRotationCount
	}
	s, err := NewSearch(level, r, adjFrame, taps, doubleTuckAllowed)
	if err != nil {
		return PossibleMoves{}, err
	}
	return s.MoveSearch(board), nil
}
