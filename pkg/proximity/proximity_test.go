package proximity

import (
	"math"
	"testing"
)

func TestClassify_Thresholds(t *testing.T) {
	cases := []struct {
		depth float64
		want  State
	}{
		{0.0, StateVeryClose},
		{0.49, StateVeryClose},
		{0.5, StateClose}, // boundary belongs to the farther bucket
		{1.0, StateClose},
		{1.49, StateClose},
		{1.5, StateMedium},
		{2.99, StateMedium},
		{3.0, StateClear},
		{10.0, StateClear},
		{math.Inf(1), StateClear},
	}

	for _, tc := range cases {
		if got := Classify(tc.depth); got != tc.want {
			t.Errorf("Classify(%v): got %v, want %v", tc.depth, got, tc.want)
		}
	}
}

func TestClassify_MonotoneAndPartitioned(t *testing.T) {
	// Severity never increases as depth grows, and every depth in [0, 12)
	// lands in exactly one bucket.
	prev := StateVeryClose
	for d := 0.0; d < 12.0; d += 0.01 {
		s := Classify(d)
		if s == StateUnknown {
			t.Fatalf("Classify(%v) returned unknown", d)
		}
		if s < prev {
			t.Fatalf("severity increased at depth %v: %v after %v", d, s, prev)
		}
		prev = s
	}
}

func TestResolve_ForwardIffCenterClear(t *testing.T) {
	cases := []struct {
		left, center, right float64
		want                Direction
	}{
		{0.1, 1.0, 0.1, DirectionForward}, // boundary: exactly 1.0 is walkable
		{5.0, 5.0, 5.0, DirectionForward},
		{0.1, 0.99, 5.0, DirectionRight},
		{5.0, 0.99, 0.1, DirectionLeft},
		{2.0, 0.3, 1.0, DirectionLeft},
	}

	for _, tc := range cases {
		got := Resolve(tc.left, tc.center, tc.right)
		if got != tc.want {
			t.Errorf("Resolve(%v, %v, %v): got %v, want %v",
				tc.left, tc.center, tc.right, got, tc.want)
		}
	}
}

func TestResolve_TieBreaksRight(t *testing.T) {
	// Equal side clearance with a blocked center always advises right,
	// so noise around equality can't flip-flop the advice.
	if got := Resolve(0.8, 0.5, 0.8); got != DirectionRight {
		t.Errorf("Resolve(0.8, 0.5, 0.8): got %v, want %v", got, DirectionRight)
	}
	if got := Resolve(0.0, 0.0, 0.0); got != DirectionRight {
		t.Errorf("Resolve(0, 0, 0): got %v, want %v", got, DirectionRight)
	}
}

func TestStateString(t *testing.T) {
	if StateVeryClose.String() != "very_close" || StateClear.String() != "clear" {
		t.Error("unexpected state names")
	}
	if DirectionLeft.String() != "left" || DirectionForward.String() != "forward" {
		t.Error("unexpected direction names")
	}
}
