package model

import (
	"errors"
	"math"
	"testing"
)

func mustInstance(t *testing.T, d int, rs, rp float64, cities ...Point) *Instance {
	t.Helper()
	inst, err := NewInstance(d, rs, rp, cities)
	if err != nil {
		t.Fatalf("NewInstance error: %v", err)
	}
	return inst
}

func TestSolutionValidate(t *testing.T) {
	inst := mustInstance(t, 3, 2, 1, Point{0, 0}, Point{2, 2})

	good := &Solution{Instance: inst, Towers: []Point{{1, 1}}}
	if err := good.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	partial := &Solution{Instance: inst, Towers: []Point{{0, 0}}}
	if err := partial.Validate(); !errors.Is(err, ErrUncoveredCity) {
		t.Fatalf("Validate() = %v, want ErrUncoveredCity", err)
	}

	outside := &Solution{Instance: inst, Towers: []Point{{1, 1}, {3, 0}}}
	if err := outside.Validate(); !errors.Is(err, ErrTowerOutOfBounds) {
		t.Fatalf("Validate() = %v, want ErrTowerOutOfBounds", err)
	}
	if outside.Valid() {
		t.Fatalf("Valid() = true for out-of-grid tower")
	}
}

func TestNaiveTowersAlwaysCover(t *testing.T) {
	inst := mustInstance(t, 10, 1, 3, Point{0, 0}, Point{9, 9}, Point{4, 5}, Point{0, 9})
	sol := &Solution{Instance: inst, Towers: inst.Cities()}
	if !sol.Valid() {
		t.Fatalf("towers on every city must be valid: %v", sol.Validate())
	}
}

func TestPenalty(t *testing.T) {
	if got := Penalty(nil, 5); got != 0 {
		t.Fatalf("Penalty(empty) = %v, want 0", got)
	}

	// A lone tower has no interfering neighbour, so only the base term remains.
	if got := Penalty([]Point{{3, 3}}, 5); got != PenaltyBase {
		t.Fatalf("Penalty(single) = %v, want %v", got, PenaltyBase)
	}

	towers := []Point{{0, 0}, {1, 0}, {5, 5}}
	overlap := Overlap(towers, 1)
	if overlap[0] != 1 || overlap[1] != 1 || overlap[2] != 0 {
		t.Fatalf("Overlap = %v, want [1 1 0]", overlap)
	}
	want := 2*PenaltyBase*math.Exp(PenaltyGrowth) + PenaltyBase
	if got := Penalty(towers, 1); math.Abs(got-want) > 1e-9 {
		t.Fatalf("Penalty = %v, want %v", got, want)
	}

	sol := &Solution{Instance: mustInstance(t, 6, 1, 1, Point{0, 0}), Towers: towers}
	if got := sol.Penalty(); math.Abs(got-want) > 1e-9 {
		t.Fatalf("Solution.Penalty = %v, want %v", got, want)
	}
}

func TestPenaltyGrowsWithDensity(t *testing.T) {
	sparse := []Point{{0, 0}, {9, 9}}
	dense := []Point{{0, 0}, {0, 1}}
	if Penalty(dense, 2) <= Penalty(sparse, 2) {
		t.Fatalf("clustered towers should cost more than separated ones")
	}
}
