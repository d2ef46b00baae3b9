package movesearch

import "tetris-movesearch/playfield"

// TuckType is a single post-lock-window input: a rotation delta, a
// column delta, and the frame gap between a split input's drop half
// and its rotate/shift half (0 for a same-frame input). Ported from
// TuckType (original_source/src/move_search.h:348-350).
type TuckType struct {
	DeltaRot, DeltaCol, DeltaFrame int
}

// tuckTypes builds the TuckType table for R rotations, ported from
// TuckTypeTable<R> (original_source/src/move_search.h:352-376).
func tuckTypes(r int, doubleTuckAllowed bool) []TuckType {
	types := []TuckType{
		{0, -1, 0}, // L
		{0, 1, 0},  // R
	}
	if doubleTuckAllowed {
		types = append(types,
			TuckType{0, -2, 2}, // LL
			TuckType{0, 2, 2},  // RR
		)
	}
	if r == 1 {
		return types
	}
	types = append(types,
		TuckType{1, 0, 0},  // A
		TuckType{1, -1, 0}, // LA
		TuckType{1, 1, 0},  // RA
		TuckType{1, -1, 1}, // A-L
		TuckType{1, 1, 1},  // A-R
	)
	if r == 2 {
		return types
	}
	return append(types,
		TuckType{3, 0, 0},  // B
		TuckType{3, -1, 0}, // LB
		TuckType{3, 1, 0},  // RB
		TuckType{3, -1, 1}, // B-L
		TuckType{3, 1, 1},  // B-R
	)
}

// buildTuckMasks derives, for each TuckType, a per-(rot,col) frame
// mask of when that tuck is physically legal. Ported from
// GetTuckMasks (original_source/src/move_search.h:378-418); the
// reference unrolls the rotation family (rot+1, rot+4-1) as two
// separate loops, one per R=2/R=4 stage — here the shared shape is
// pulled into applyRotationFamily since both stages do the same thing
// for a different delta_rot.
func buildTuckMasks(r int, types []TuckType, fm FrameMasks) [][][10]playfield.Frames {
	masks := make([][][10]playfield.Frames, len(types))
	for i := range masks {
		masks[i] = make([][10]playfield.Frames, r)
	}

	lIdx, rIdx := -1, -1
	for i, t := range types {
		if t.DeltaRot != 0 {
			continue
		}
		switch t.DeltaCol {
		case -1:
			lIdx = i
			for rot := 0; rot < r; rot++ {
				for col := 1; col < 10; col++ {
					masks[i][rot][col] = fm.Frame[rot][col] & fm.Frame[rot][col-1]
				}
			}
		case 1:
			rIdx = i
			for rot := 0; rot < r; rot++ {
				for col := 0; col < 9; col++ {
					masks[i][rot][col] = fm.Frame[rot][col] & fm.Frame[rot][col+1]
				}
			}
		case -2:
			for rot := 0; rot < r; rot++ {
				for col := 2; col < 10; col++ {
					masks[i][rot][col] = fm.Frame[rot][col] & fm.Drop[rot][col-1] & (fm.Drop[rot][col-1] >> 1) & (fm.Frame[rot][col-2] >> 2)
				}
			}
		case 2:
			for rot := 0; rot < r; rot++ {
				for col := 0; col < 8; col++ {
					masks[i][rot][col] = fm.Frame[rot][col] & fm.Drop[rot][col+1] & (fm.Drop[rot][col+1] >> 1) & (fm.Frame[rot][col+2] >> 2)
				}
			}
		}
	}

	if r == 1 {
		return masks
	}

	applyRotationFamily := func(deltaRot int) {
		base, la, ra, al, ar := -1, -1, -1, -1, -1
		for i, t := range types {
			if t.DeltaRot != deltaRot {
				continue
			}
			switch {
			case t.DeltaCol == 0:
				base = i
			case t.DeltaCol == -1 && t.DeltaFrame == 0:
				la = i
			case t.DeltaCol == 1 && t.DeltaFrame == 0:
				ra = i
			case t.DeltaCol == -1 && t.DeltaFrame == 1:
				al = i
			case t.DeltaCol == 1 && t.DeltaFrame == 1:
				ar = i
			}
		}
		if base == -1 {
			return
		}
		for rot := 0; rot < r; rot++ {
			nrot := (rot + deltaRot) % r
			for col := 0; col < 10; col++ {
				masks[base][rot][col] = fm.Frame[rot][col] & fm.Frame[nrot][col]
				if col > 0 {
					if la != -1 {
						masks[la][rot][col] = masks[lIdx][rot][col] & fm.Frame[nrot][col-1]
					}
					if al != -1 {
						masks[al][rot][col] = fm.Frame[rot][col] & (fm.Drop[nrot][col] | fm.Drop[rot][col-1]) & (fm.Frame[nrot][col-1] >> 1)
					}
				}
				if col < 9 {
					if ra != -1 {
						masks[ra][rot][col] = masks[rIdx][rot][col] & fm.Frame[nrot][col+1]
					}
					if ar != -1 {
						masks[ar][rot][col] = fm.Frame[rot][col] & (fm.Drop[nrot][col] | fm.Drop[rot][col+1]) & (fm.Frame[nrot][col+1] >> 1)
					}
				}
			}
		}
	}

	applyRotationFamily(1)
	if r == 2 {
		return masks
	}
	applyRotationFamily(3)
	return masks
}
