// Command tapcalibrate coordinate-descends over a tap delta table to
// maximize the number of distinct placements the kernel reaches on an
// empty board at a given level, the way tuner/train.go iterates epochs
// of gradient steps over evaluation parameters — here the "parameters"
// are the 10 integer tap deltas and the "gradient" is a local search
// since they are constrained integers, not continuous weights.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"tetris-movesearch/movesearch"
	"tetris-movesearch/playfield"
)

func main() {
	levelFlag := flag.String("level", "L18", "gravity level: L18 L19 L29 L39")
	adjFrameFlag := flag.Int("adjframe", 18, "adjustment frame")
	epochsFlag := flag.Int("epochs", 20, "coordinate-descent epochs")
	flag.Parse()

	var level playfield.Level
	switch *levelFlag {
	case "L18":
		level = playfield.L18
	case "L19":
		level = playfield.L19
	case "L29":
		level = playfield.L29
	case "L39":
		level = playfield.L39
	default:
		log.Fatalf("unknown level %q", *levelFlag)
	}

	deltas := [10]int{0, 2, 2, 2, 2, 2, 2, 2, 2, 2} // seeded from Tap30Hz
	board := emptyBoard()

	best, err := score(level, *adjFrameFlag, deltas, board)
	if err != nil {
		log.Fatalf("scoring seed deltas: %v", err)
	}
	fmt.Printf("tapcalibrate: level=%s adjframe=%d seed score=%d\n", level, *adjFrameFlag, best)

	for ep := 1; ep <= *epochsFlag; ep++ {
		t0 := time.Now()
		improved := false
		for i := 0; i < 10; i++ {
			for _, step := range []int{-1, 1} {
				trial := deltas
				trial[i] += step
				if trial[i] < minDelta(i) {
					continue
				}
				s, err := score(level, *adjFrameFlag, trial, board)
				if err != nil {
					continue // invalid tap schedule for this trial; skip
				}
				if s > best {
					best = s
					deltas = trial
					improved = true
				}
			}
		}
		fmt.Printf("epoch %d: score=%d deltas=%v time=%v\n", ep, best, deltas, time.Since(t0))
		if !improved {
			break
		}
	}

	fmt.Printf("final deltas: %v  score=%d\n", deltas, best)
}

func minDelta(i int) int {
	if i == 0 {
		return 0
	}
	return 2
}

// score runs the kernel once with R=4 and sums the number of non_adj
// placements plus all adjustment moves —
// a proxy for how much of the board a tap schedule lets a player reach.
func score(level playfield.Level, adjFrame int, deltas [10]int, board []playfield.Board) (int, error) {
	taps, err := playfield.NewTapSchedule(deltas)
	if err != nil {
		return 0, err
	}
	search, err := movesearch.NewSearch(level, 4, adjFrame, taps, false)
	if err != nil {
		return 0, err
	}
	moves := search.MoveSearch(board)
	total := len(moves.NonAdj)
	for _, a := range moves.Adj {
		total += len(a.Moves)
	}
	return total, nil
}

func emptyBoard() []playfield.Board {
	board := make([]playfield.Board, 4)
	for rot := range board {
		for col := 0; col < 10; col++ {
			for row := 0; row < 20; row++ {
				board[rot].SetFree(row, col)
			}
		}
	}
	return board
}
