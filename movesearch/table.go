package movesearch

import "tetris-movesearch/playfield"

// Phase1Table holds the initial Phase-1 table (reachable from spawn)
// and, for each of its entries, that entry's own adjustment Phase-1
// table (reachable onward from that entry's resting frame). Ported
// from Phase1Table<level,R,adj_frame,Taps>
// (original_source/src/move_search.h:230-246); a runtime port per
// spec.md §5 builds this lazily instead of at compile time.
type Phase1Table struct {
	Initial []TableEntry
	Adj     [][]TableEntry
}

func buildPhase1Table(level playfield.Level, r, adjFrame int, taps playfield.TapSchedule) *Phase1Table {
	initial := generatePhase1Table(level, r, taps, 0, 0, playfield.StartCol)
	adj := make([][]TableEntry, len(initial))
	for i, e := range initial {
		frameStart := adjFrame
		if t := taps[e.NumTaps]; t > frameStart {
			frameStart = t
		}
		adj[i] = generatePhase1Table(level, r, taps, frameStart, int(e.Rot), int(e.Col))
	}
	return &Phase1Table{Initial: initial, Adj: adj}
}
