package playfield

import "testing"

func TestNewTapScheduleCumulative(t *testing.T) {
	ts, err := NewTapSchedule([10]int{0, 2, 2, 2, 2, 2, 2, 2, 2, 2})
	if err != nil {
		t.Fatalf("NewTapSchedule: %v", err)
	}
	want := TapSchedule{0, 2, 4, 6, 8, 10, 12, 14, 16, 18}
	if ts != want {
		t.Fatalf("got %v, want %v", ts, want)
	}
}

func TestNewTapScheduleRejectsNegativeFirstTap(t *testing.T) {
	if _, err := NewTapSchedule([10]int{-1, 2, 2, 2, 2, 2, 2, 2, 2, 2}); err != ErrInvalidTapSchedule {
		t.Fatalf("expected ErrInvalidTapSchedule, got %v", err)
	}
}

func TestNewTapScheduleRejectsShortGap(t *testing.T) {
	if _, err := NewTapSchedule([10]int{0, 1, 2, 2, 2, 2, 2, 2, 2, 2}); err != ErrInvalidTapSchedule {
		t.Fatalf("expected ErrInvalidTapSchedule, got %v", err)
	}
}

func TestTapScheduleComparable(t *testing.T) {
	m := map[TapSchedule]bool{Tap30Hz: true}
	if !m[Tap30Hz] {
		t.Fatalf("TapSchedule not usable as a map key")
	}
	if m[Tap20Hz] {
		t.Fatalf("distinct tap schedules collided as map keys")
	}
}

func TestMustTapSchedulePanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on invalid deltas")
		}
	}()
	MustTapSchedule([10]int{0, 1, 1, 1, 1, 1, 1, 1, 1, 1})
}
