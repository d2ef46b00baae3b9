package movesearch

import (
	"sync"
	"unsafe"

	"golang.org/x/exp/maps"

	"tetris-movesearch/playfield"
)

// tableKey identifies one Phase-1 table configuration. TapSchedule is
// a comparable [10]int array, so tableKey is usable directly as a map
// key without a separate hash step.
type tableKey struct {
	level    playfield.Level
	r        int
	adjFrame int
	taps     playfield.TapSchedule
}

var (
	tableCacheMu sync.RWMutex
	tableCache   = map[tableKey]*Phase1Table{}
)

// getOrBuildTable returns the shared, read-only Phase-1 table for this
// configuration, building and caching it on first use. This is the
// runtime stand-in for the reference kernel's compile-time const
// tables (spec.md §5, §9): the key space is tiny (a handful of levels
// x 3 rotation counts x a few tap profiles) so the cache stays small
// for the life of the process.
func getOrBuildTable(level playfield.Level, r, adjFrame int, taps playfield.TapSchedule) *Phase1Table {
	key := tableKey{level, r, adjFrame, taps}

	tableCacheMu.RLock()
	t, ok := tableCache[key]
	tableCacheMu.RUnlock()
	if ok {
		return t
	}

	tableCacheMu.Lock()
	defer tableCacheMu.Unlock()
	if t, ok := tableCache[key]; ok {
		return t
	}
	t = buildPhase1Table(level, r, adjFrame, taps)
	tableCache[key] = t
	return t
}

// CacheSize reports how many distinct Phase-1 table configurations are
// currently cached process-wide, for the -stats flag of cmd/movesearch.
func CacheSize() int {
	tableCacheMu.RLock()
	defer tableCacheMu.RUnlock()
	return len(maps.Keys(tableCache))
}

// CacheBytes reports the approximate resident size, in bytes, of every
// Phase-1 table currently cached process-wide. Each TableEntry and its
// board masks are sized with unsafe.Sizeof the way the teacher's
// transposition table sizes TTEntry (engine/transposition.go's
// TT.init) — here the budget runs the other way: the tables already
// exist, so this totals their footprint instead of sizing a table to
// fit a byte budget.
func CacheBytes() uint64 {
	tableCacheMu.RLock()
	defer tableCacheMu.RUnlock()

	entrySize := uint64(unsafe.Sizeof(TableEntry{}))
	boardSize := uint64(unsafe.Sizeof(playfield.Board{}))

	var total uint64
	for _, t := range tableCache {
		total += tableEntriesBytes(t.Initial, entrySize, boardSize)
		for _, sub := range t.Adj {
			total += tableEntriesBytes(sub, entrySize, boardSize)
		}
	}
	return total
}

func tableEntriesBytes(entries []TableEntry, entrySize, boardSize uint64) uint64 {
	total := uint64(len(entries)) * entrySize
	for _, e := range entries {
		total += uint64(len(e.Masks)) * boardSize
		total += uint64(len(e.MasksNodrop)) * boardSize
	}
	return total
}
