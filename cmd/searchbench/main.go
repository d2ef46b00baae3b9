// Command searchbench repeatedly runs the move-search kernel against
// an empty board and reports timing, optionally under CPU/heap
// profiling, the way cmd/searchbench benchmarked repeated engine
// searches.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"tetris-movesearch/movesearch"
	"tetris-movesearch/playfield"
)

func main() {
	repeatFlag := flag.Int("repeat", 10000, "number of searches to run")
	levelFlag := flag.String("level", "L18", "gravity level: L18 L19 L29 L39")
	adjFrameFlag := flag.Int("adjframe", 18, "adjustment frame")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
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

	var cpuFile *os.File
	var err error
	if *cpuProfile != "" {
		cpuFile, err = os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	search, err := movesearch.NewSearch(level, 4, *adjFrameFlag, playfield.Tap30Hz, false)
	if err != nil {
		log.Fatalf("building search: %v", err)
	}
	board := make([]playfield.Board, 4)
	for rot := range board {
		for col := 0; col < 10; col++ {
			for row := 0; row < 20; row++ {
				board[rot].SetFree(row, col)
			}
		}
	}

	repeat := *repeatFlag
	fmt.Printf("searchbench: level=%s adjframe=%d repeat=%d\n", level, *adjFrameFlag, repeat)

	start := time.Now()
	var total int
	for i := 0; i < repeat; i++ {
		moves := search.MoveSearch(board)
		total += len(moves.NonAdj)
	}
	elapsed := time.Since(start)
	fmt.Printf("total time: %v  (%.0f searches/sec, %d non_adj placements summed)\n",
		elapsed, float64(repeat)/elapsed.Seconds(), total)

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer f.Close()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
	}
}
