package playfield

import "errors"

// ErrInvalidTapSchedule reports a tap delta table that violates the
// minimum-spacing constraint: the first tap may occur on any frame at
// or after 0, but every subsequent tap must be at least 2 frames after
// the previous one.
var ErrInvalidTapSchedule = errors.New("playfield: invalid tap schedule")

// TapSchedule holds the cumulative frame index of each of the first 10
// taps a player can make, derived from a length-10 delta table.
// TapSchedule is comparable and may be used directly as a map key.
type TapSchedule [10]int

// NewTapSchedule builds a TapSchedule from per-tap deltas: deltas[0] is
// the frame of the first tap (must be >= 0); deltas[1..9] is the number
// of frames after the previous tap (each must be >= 2).
func NewTapSchedule(deltas [10]int) (TapSchedule, error) {
	if deltas[0] < 0 {
		return TapSchedule{}, ErrInvalidTapSchedule
	}
	for i := 1; i < 10; i++ {
		if deltas[i] < 2 {
			return TapSchedule{}, ErrInvalidTapSchedule
		}
	}
	var t TapSchedule
	t[0] = deltas[0]
	for i := 1; i < 10; i++ {
		t[i] = t[i-1] + deltas[i]
	}
	return t, nil
}

// MustTapSchedule is like NewTapSchedule but panics on an invalid table.
// It exists for building the package-level named profiles below.
func MustTapSchedule(deltas [10]int) TapSchedule {
	t, err := NewTapSchedule(deltas)
	if err != nil {
		panic(err)
	}
	return t
}

// Named tap profiles, ported from the reference kernel's Tap30Hz..Tap12Hz
// constants (original_source/src/move_search.h:596-599).
var (
	Tap30Hz = MustTapSchedule([10]int{0, 2, 2, 2, 2, 2, 2, 2, 2, 2})
	Tap20Hz = MustTapSchedule([10]int{0, 3, 3, 3, 3, 3, 3, 3, 3, 3})
	Tap15Hz = MustTapSchedule([10]int{0, 4, 4, 4, 4, 4, 4, 4, 4, 4})
	Tap12Hz = MustTapSchedule([10]int{0, 5, 5, 5, 5, 5, 5, 5, 5, 5})
)
