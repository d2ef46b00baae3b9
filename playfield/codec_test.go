package playfield

import "testing"

// TestCodecRoundTrip verifies I7: frames_to_column(column_to_normal_frame_mask(c)) == c
// for every level and every 20-bit column.
func TestCodecRoundTrip(t *testing.T) {
	levels := []Level{L18, L19, L29, L39}
	if testing.Short() {
		for _, level := range levels {
			for _, c := range []Column{0, 1, 0x3, 0xAAAAA, 0x55555, 0xFFFFF, 0x80000, 1 << 19} {
				checkRoundTrip(t, level, c)
			}
		}
		return
	}
	for _, level := range levels {
		for c := 0; c < 1<<20; c++ {
			checkRoundTrip(t, level, Column(c))
		}
	}
}

func checkRoundTrip(t *testing.T, level Level, c Column) {
	t.Helper()
	frames := ColumnToNormalFrameMask(level, c)
	got := FramesToColumn(level, frames)
	if got != c {
		t.Fatalf("%s: round-trip mismatch for col=%020b: got %020b", level, uint32(c), uint32(got))
	}
}

func TestDropFrameMaskIsSubsetOfNormalMask(t *testing.T) {
	for _, level := range []Level{L18, L19, L29, L39} {
		for _, c := range []Column{0xAAAAA, 0x55555, 0xFFFFF, 0x12345} {
			normal := ColumnToNormalFrameMask(level, c)
			drop := ColumnToDropFrameMask(level, c)
			if drop&^normal != 0 {
				t.Fatalf("%s col=%020b: drop mask %x not a subset of normal mask %x", level, uint32(c), drop, normal)
			}
		}
	}
}
