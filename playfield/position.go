package playfield

// Position is a concrete placement: a rotation state, the row the
// piece locked on, and the column of its reference cell.
type Position struct {
	Rot, Row, Col uint8
}

// StartCol is the spawn column used to seed Phase-1 table generation
// (original_source/src/move_search.h:233, Position::Start.y).
const StartCol = 5

// Start is the spawn position: rotation 0, row unset (the piece has
// not dropped yet), at StartCol.
var Start = Position{Rot: 0, Row: 0, Col: StartCol}

// Less gives Position its natural lexicographic order (rot, row, col),
// used to normalize PossibleMoves (spec.md §5 "Ordering").
func (p Position) Less(q Position) bool {
	if p.Rot != q.Rot {
		return p.Rot < q.Rot
	}
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// Compare returns -1, 0, or 1 the way golang.org/x/exp/slices.SortFunc
// comparators want it.
func Compare(p, q Position) int {
	if p.Less(q) {
		return -1
	}
	if q.Less(p) {
		return 1
	}
	return 0
}
