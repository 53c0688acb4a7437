package features

import (
	"math"
	"testing"
)

func TestLegalBallsFromLabel(t *testing.T) {
	tests := []struct {
		ball float64
		want int
	}{
		{0.1, 1},
		{0.6, 6},
		{7.3, 45},
		{19.6, 120},
		{0.0, 0},
	}
	for _, tt := range tests {
		if got := LegalBallsFromLabel(tt.ball); got != tt.want {
			t.Fatalf("LegalBallsFromLabel(%v) = %d, want %d", tt.ball, got, tt.want)
		}
	}
}

func TestCurrentRunRate(t *testing.T) {
	if got := CurrentRunRate(50, 0); got != 0 {
		t.Fatalf("crr with zero balls = %v, want 0", got)
	}
	if got := CurrentRunRate(60, 36); math.Abs(got-10.0) > 1e-9 {
		t.Fatalf("crr = %v, want 10.0", got)
	}
}

func TestDeriveState(t *testing.T) {
	st := DeriveState(7.3, 62, 2)
	if st.LegalBallsBowled != 45 {
		t.Fatalf("legal balls = %d, want 45", st.LegalBallsBowled)
	}
	if st.BallsLeft != 75 {
		t.Fatalf("balls left = %d, want 75", st.BallsLeft)
	}
	if st.WicketsLeft != 8 {
		t.Fatalf("wickets left = %d, want 8", st.WicketsLeft)
	}
	if math.Abs(st.CRR-float64(62*6)/45.0) > 1e-9 {
		t.Fatalf("crr = %v", st.CRR)
	}

	// Identity with the training-side formulas.
	if st.BallsLeft != BallsLeft(st.LegalBallsBowled) {
		t.Fatalf("balls left identity broken")
	}
}

func TestRollingSum(t *testing.T) {
	vals := []int{1, 2, 3, 4, 5}
	got := rollingSum(vals, 3)
	want := []int{1, 3, 6, 9, 12}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rollingSum[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	// Window larger than the series degrades to a running total.
	got = rollingSum(vals, 100)
	if got[4] != 15 {
		t.Fatalf("oversized window tail = %d, want 15", got[4])
	}

	if out := rollingSum(nil, 3); len(out) != 0 {
		t.Fatalf("empty input produced %d values", len(out))
	}
}

func TestRecencyWeight(t *testing.T) {
	tests := []struct {
		year, maxYear int
		want          float64
	}{
		{2024, 2024, 1.0},
		{2021, 2024, 1.0},
		{2020, 2024, 0.8},
		{2016, 2024, math.Pow(0.8, 5)},
		{1990, 2024, 0.1},
	}
	for _, tt := range tests {
		if got := RecencyWeight(tt.year, tt.maxYear); math.Abs(got-tt.want) > 1e-12 {
			t.Fatalf("RecencyWeight(%d, %d) = %v, want %v", tt.year, tt.maxYear, got, tt.want)
		}
	}
}
