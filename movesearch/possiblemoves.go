package movesearch

import (
	"golang.org/x/exp/slices"

	"tetris-movesearch/playfield"
)

// AdjEntry pairs an adjustment anchor with the placements reachable
// from it once the adjustment frame arrives.
type AdjEntry struct {
	Anchor playfield.Position
	Moves  []playfield.Position
}

// PossibleMoves is the kernel's result: NonAdj holds placements
// reachable with no late adjustment; Adj holds one entry per anchor
// from which an adjustment input still reaches further placements.
// Ported from PossibleMoves (original_source/src/move_search.h:12-25).
type PossibleMoves struct {
	NonAdj []playfield.Position
	Adj    []AdjEntry
}

// Normalize sorts NonAdj, each Adj[].Moves, and Adj itself by anchor.
// When unique is true it also dedupes NonAdj and each Adj[].Moves.
// Ported from PossibleMoves::Normalize
// (original_source/src/move_search.h:13-24).
func (pm *PossibleMoves) Normalize(unique bool) {
	normalizePositions(&pm.NonAdj, unique)
	for i := range pm.Adj {
		normalizePositions(&pm.Adj[i].Moves, unique)
	}
	slices.SortFunc(pm.Adj, func(a, b AdjEntry) int {
		return playfield.Compare(a.Anchor, b.Anchor)
	})
}

func normalizePositions(p *[]playfield.Position, unique bool) {
	slices.SortFunc(*p, playfield.Compare)
	if unique {
		*p = slices.CompactFunc(*p, func(a, b playfield.Position) bool {
			return a == b
		})
	}
}
