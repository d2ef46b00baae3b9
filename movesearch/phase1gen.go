package movesearch

import "tetris-movesearch/playfield"

// Last-tap direction bits, ported from kA/kB/kL/kR
// (original_source/src/move_search.h:133-136).
const (
	kA uint8 = 0x1
	kB uint8 = 0x2
	kL uint8 = 0x4
	kR uint8 = 0x8
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sgn(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// cellTarget tracks, during table generation, the board requirements
// and metadata for reaching one (rot, col) in a single tap from the
// entry being extended.
type cellTarget struct {
	masks, masksNodrop []playfield.Board
	lastTap            uint8
	cannotReach        bool
	cannotFinish       bool
}

// generatePhase1Table runs a BFS from (initialRot, initialCol) over
// every (rotation, column) reachable by tap sequences, recording for
// each the board cells its segment requires free. Ported from
// Phase1TableGen (original_source/src/move_search.h:126-228).
func generatePhase1Table(level playfield.Level, r int, taps playfield.TapSchedule, initialFrame, initialRot, initialCol int) []TableEntry {
	targets := make([][]cellTarget, r)
	for i := range targets {
		targets[i] = make([]cellTarget, 10)
		for j := range targets[i] {
			targets[i][j].masks = make([]playfield.Board, r)
		}
	}

	for col := 0; col < 10; col++ {
		for deltaRot := 0; deltaRot < 4; deltaRot++ {
			if r == 1 && deltaRot != 0 {
				continue
			}
			if r == 2 && deltaRot >= 2 {
				continue
			}
			rot := (initialRot + deltaRot) % r
			numLR := abs(col - initialCol)
			numAB := deltaRot
			if deltaRot == 3 {
				numAB = 1
			}
			numTap := numLR
			if numAB > numTap {
				numTap = numAB
			}

			startFrame := initialFrame
			if numTap != 0 {
				startFrame += taps[numTap-1]
			}
			endFrame := taps[numTap] + initialFrame

			t := &targets[rot][col]
			if numTap != 0 {
				if numTap == numLR {
					if col > initialCol {
						t.lastTap |= kR
					} else {
						t.lastTap |= kL
					}
				}
				if numTap == numAB {
					if deltaRot == 3 {
						t.lastTap |= kB
					} else {
						t.lastTap |= kA
					}
				}
			}

			startRow := level.Row(startFrame)
			if startRow >= 20 {
				t.cannotReach = true
				continue
			}

			startCol := col
			if numTap == numLR {
				startCol = col - sgn(col-initialCol)
			}
			startRot := rot
			if numTap == numAB {
				add := 0
				if deltaRot == 2 {
					add = 1
				}
				startRot = (add + initialRot) % r
			}

			cur := t.masks
			cur[startRot].SetFree(startRow, startCol) // pre-tap position
			cur[startRot].SetFree(startRow, col)       // shift
			cur[rot].SetFree(startRow, col)            // then rotate
			t.masksNodrop = playfield.CopyBoards(cur)

			if level.Row(endFrame) >= 20 {
				t.cannotFinish = true
				continue
			}
			for frame := startFrame; frame < endFrame; frame++ {
				row := level.Row(frame)
				cur[rot].SetFree(row, col)
				if level.IsDropFrame(frame) {
					cur[rot].SetFree(row+1, col)
					if level == playfield.L39 {
						cur[rot].SetFree(row+2, col)
					}
				}
			}
		}
	}

	entries := make([]TableEntry, 0, 10*r)
	push := func(rot, col int, prev uint8, numTaps uint8) {
		t := &targets[rot][col]
		if t.cannotReach {
			return
		}
		entries = append(entries, TableEntry{
			Rot: uint8(rot), Col: uint8(col), Prev: prev, NumTaps: numTaps,
			CannotFinish: t.cannotFinish,
			Masks:        playfield.CopyBoards(t.masks),
			MasksNodrop:  playfield.CopyBoards(t.masksNodrop),
		})
	}

	push(initialRot, initialCol, 0, 0)
	for cur := 0; cur < len(entries); cur++ {
		e := entries[cur]
		rot, col, numTaps := int(e.Rot), int(e.Col), e.NumTaps
		last := targets[rot][col].lastTap
		shouldL := col > 0 && (numTaps == 0 || last&kL != 0)
		shouldR := col < 9 && (numTaps == 0 || last&kR != 0)
		shouldA := (r > 1 && numTaps == 0) || (r == 4 && numTaps == 1 && last&kA != 0)
		shouldB := r == 4 && numTaps == 0
		p := uint8(cur)

		if shouldL {
			push(rot, col-1, p, numTaps+1)
		}
		if shouldR {
			push(rot, col+1, p, numTaps+1)
		}
		if shouldA {
			nrot := (rot + 1) % r
			push(nrot, col, p, numTaps+1)
			if shouldL {
				push(nrot, col-1, p, numTaps+1)
			}
			if shouldR {
				push(nrot, col+1, p, numTaps+1)
			}
		}
		if shouldB {
			nrot := (rot + 3) % r
			push(nrot, col, p, numTaps+1)
			if shouldL {
				push(nrot, col-1, p, numTaps+1)
			}
			if shouldR {
				push(nrot, col+1, p, numTaps+1)
			}
		}
	}
	return entries
}
