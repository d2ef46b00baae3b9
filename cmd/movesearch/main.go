// Command movesearch runs the move-search kernel against a board read
// from a text file and prints the resulting placements, the way
// cmd/perft prints node counts for a FEN.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"tetris-movesearch/movesearch"
	"tetris-movesearch/playfield"
)

var pieceNames = map[string]movesearch.PieceKind{
	"T": movesearch.PieceT,
	"J": movesearch.PieceJ,
	"L": movesearch.PieceL,
	"O": movesearch.PieceO,
	"S": movesearch.PieceS,
	"Z": movesearch.PieceZ,
	"I": movesearch.PieceI,
}

var levelNames = map[string]playfield.Level{
	"L18": playfield.L18,
	"L19": playfield.L19,
	"L29": playfield.L29,
	"L39": playfield.L39,
}

var tapNames = map[string]playfield.TapSchedule{
	"30hz": playfield.Tap30Hz,
	"20hz": playfield.Tap20Hz,
	"15hz": playfield.Tap15Hz,
	"12hz": playfield.Tap12Hz,
}

func main() {
	boardFlag := flag.String("board", "", "path to a board file (R blank-line-separated 20x10 free masks, . = occupied, # = free)")
	pieceFlag := flag.String("piece", "T", "piece kind: T J L O S Z I")
	levelFlag := flag.String("level", "L18", "gravity level: L18 L19 L29 L39")
	adjFrameFlag := flag.Int("adjframe", 18, "adjustment frame")
	tapsFlag := flag.String("taps", "30hz", "tap schedule: 30hz 20hz 15hz 12hz")
	doubleTuckFlag := flag.Bool("double-tuck", false, "allow double tucks (LL/RR)")
	statsFlag := flag.Bool("stats", false, "print Phase-1 table cache size after the search")
	flag.Parse()

	piece, ok := pieceNames[strings.ToUpper(*pieceFlag)]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown piece %q\n", *pieceFlag)
		os.Exit(2)
	}
	level, ok := levelNames[strings.ToUpper(*levelFlag)]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown level %q\n", *levelFlag)
		os.Exit(2)
	}
	taps, ok := tapNames[strings.ToLower(*tapsFlag)]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown tap schedule %q\n", *tapsFlag)
		os.Exit(2)
	}
	if *boardFlag == "" {
		fmt.Fprintln(os.Stderr, "-board is required")
		os.Exit(2)
	}

	board, err := readBoard(*boardFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading board: %v\n", err)
		os.Exit(2)
	}

	moves, err := movesearch.MoveSearch(board, piece, level, *adjFrameFlag, taps, *doubleTuckFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "move search: %v\n", err)
		os.Exit(2)
	}
	moves.Normalize(true)

	fmt.Println("non_adj:")
	for _, p := range moves.NonAdj {
		fmt.Printf("  (%d, %d, %d)\n", p.Rot, p.Row, p.Col)
	}
	fmt.Println("adj:")
	for _, a := range moves.Adj {
		fmt.Printf("  anchor (%d, %d, %d):\n", a.Anchor.Rot, a.Anchor.Row, a.Anchor.Col)
		for _, p := range a.Moves {
			fmt.Printf("    (%d, %d, %d)\n", p.Rot, p.Row, p.Col)
		}
	}

	if *statsFlag {
		fmt.Printf("phase-1 table cache configs: %d\n", movesearch.CacheSize())
		fmt.Printf("phase-1 table cache bytes: %d\n", movesearch.CacheBytes())
	}
}

// readBoard parses a file holding R stanzas of 20 lines x 10 columns,
// separated by blank lines. '#' marks a cell free for the piece's
// reference cell at that rotation; anything else marks it occupied.
func readBoard(path string) ([]playfield.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var boards []playfield.Board
	var cur playfield.Board
	row := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			if row > 0 {
				boards = append(boards, cur)
				cur = playfield.Board{}
				row = 0
			}
			continue
		}
		if row >= 20 {
			return nil, fmt.Errorf("more than 20 rows in one rotation stanza")
		}
		for col := 0; col < 10 && col < len(line); col++ {
			if line[col] == '#' {
				cur.SetFree(row, col)
			}
		}
		row++
	}
	if row > 0 {
		boards = append(boards, cur)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(boards) == 0 {
		return nil, fmt.Errorf("empty board file")
	}
	return boards, nil
}
