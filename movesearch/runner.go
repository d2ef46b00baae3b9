package movesearch

import (
	"math/bits"

	"tetris-movesearch/playfield"
)

// doOneSearch runs Phase 1 then Phase 2 against one table (the initial
// table, or one entry's adjustment table), returning every placement
// reached in this pass. canAdj is nil during an adjustment pass: once
// a pass is itself an adjustment, nothing can adjust again. Ported
// from Search<...>::DoOneSearch (original_source/src/move_search.h:465-526).
func (s *Search) doOneSearch(board []playfield.Board, cols [][10]playfield.Column, tuckMasks [][][10]playfield.Frames, entries []TableEntry, initialFrame int, isAdj bool, canAdj []bool) []playfield.Position {
	totalFrames := s.Level.LastFrameOnRow(19) + 1
	if initialFrame >= totalFrames {
		return nil
	}

	r := s.R
	canContinue := make([]bool, len(entries))
	canReach := make([]bool, len(entries))
	canTuckFrameMasks := make([][10]playfield.Frames, r)
	lockPositionsWithoutTuck := make([][10]playfield.Column, r)

	for i, entry := range entries {
		if i != 0 && !canContinue[entry.Prev] {
			continue
		}
		if !entry.CannotFinish && playfield.ContainsAll(board, entry.Masks) {
			canContinue[i] = true
		} else if !playfield.ContainsAll(board, entry.MasksNodrop) {
			continue
		}
		canReach[i] = true
	}

	var positions []playfield.Position
	phase2Possible := false
	for i, entry := range entries {
		if !canReach[i] {
			continue
		}
		startFrame := initialFrame
		if entry.NumTaps != 0 {
			startFrame += s.Taps[entry.NumTaps-1]
		}
		startRow := s.Level.Row(startFrame)

		var endFrame int
		if isAdj {
			endFrame = totalFrames
		} else {
			endFrame = s.AdjFrame
			if t := s.Taps[entry.NumTaps]; t > endFrame {
				endFrame = t
			}
		}

		lockRow := playfield.FindLockRow(cols[entry.Rot][entry.Col], startRow)
		lockFrame := s.Level.LastFrameOnRow(lockRow) + 1
		if !isAdj && lockFrame > endFrame {
			canAdj[i] = true
		} else {
			positions = append(positions, playfield.Position{Rot: entry.Rot, Row: uint8(lockRow), Col: entry.Col})
		}

		firstTuckFrame := initialFrame + s.Taps[entry.NumTaps]
		lastTuckFrame := lockFrame
		if endFrame < lastTuckFrame {
			lastTuckFrame = endFrame
		}
		lockPositionsWithoutTuck[entry.Rot][entry.Col] |= 1 << uint(lockRow)
		if lastTuckFrame > firstTuckFrame {
			canTuckFrameMasks[entry.Rot][entry.Col] = (playfield.Frames(1) << uint(lastTuckFrame)) - (playfield.Frames(1) << uint(firstTuckFrame))
			phase2Possible = true
		}
	}

	if phase2Possible {
		positions = append(positions, s.runPhase2(cols, tuckMasks, lockPositionsWithoutTuck, canTuckFrameMasks)...)
	}
	return positions
}

// runPhase2 propagates each viable tuck window through the tuck-type
// table, converts the resulting frame masks back to columns, and
// derives the new resting positions those tucks reach, deduped
// against the no-tuck lock set. Ported from Search<...>::RunPhase2
// (original_source/src/move_search.h:425-460).
func (s *Search) runPhase2(cols [][10]playfield.Column, tuckMasks [][][10]playfield.Frames, lockPositionsWithoutTuck [][10]playfield.Column, canTuckFrameMasks [][10]playfield.Frames) []playfield.Position {
	r := s.R
	tuckResult := make([][10]playfield.Frames, r)

	for ti, t := range s.tuckTypes {
		startCol := 0
		if -t.DeltaCol > startCol {
			startCol = -t.DeltaCol
		}
		endCol := 10
		if 10-t.DeltaCol < endCol {
			endCol = 10 - t.DeltaCol
		}
		for rot := 0; rot < r; rot++ {
			nrot := ((rot+t.DeltaRot)%r + r) % r
			for col := startCol; col < endCol; col++ {
				tuckResult[nrot][col+t.DeltaCol] |= (tuckMasks[ti][rot][col] & canTuckFrameMasks[rot][col]) << uint(t.DeltaFrame)
			}
		}
	}

	var positions []playfield.Position
	for rot := 0; rot < r; rot++ {
		for col := 0; col < 10; col++ {
			afterTuck := playfield.FramesToColumn(s.Level, tuckResult[rot][col])
			cur := cols[rot][col]
			tuckLockPositions := ((afterTuck + cur) >> 1) & (cur &^ (cur >> 1)) &^ lockPositionsWithoutTuck[rot][col]
			for tuckLockPositions != 0 {
				row := bits.TrailingZeros32(uint32(tuckLockPositions))
				positions = append(positions, playfield.Position{Rot: uint8(rot), Row: uint8(row), Col: uint8(col)})
				tuckLockPositions &^= 1 << uint(row)
			}
		}
	}
	return positions
}
