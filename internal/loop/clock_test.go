package loop

import (
	"testing"
	"time"
)

func TestStepper(t *testing.T) {
	s := NewStepper(10*time.Millisecond, 5)

	steps := []struct {
		elapsed  time.Duration
		expected int
	}{
		{25 * time.Millisecond, 2},
		{5 * time.Millisecond, 1},
		{0, 0},
		{9 * time.Millisecond, 0},
		{time.Millisecond, 1},
		{-time.Second, 0},
	}

	for i, st := range steps {
		if got := s.Advance(st.elapsed); got != st.expected {
			t.Fatalf("step %d: Advance(%v) = %d, expected %d", i, st.elapsed, got, st.expected)
		}
	}
}

func TestStepperCapDropsBacklog(t *testing.T) {
	s := NewStepper(10*time.Millisecond, 5)

	if got := s.Advance(1003 * time.Millisecond); got != 5 {
		t.Fatalf("capped Advance = %d, expected 5", got)
	}
	// Only the 3ms remainder is carried over
	if got := s.Advance(6 * time.Millisecond); got != 0 {
		t.Errorf("Advance after cap = %d, expected 0", got)
	}
	if got := s.Advance(time.Millisecond); got != 1 {
		t.Errorf("Advance after cap = %d, expected 1", got)
	}
}
