package core

import "github.com/signalsfoundry/tower-placement/model"

// The grid is scanned in row-major order over X then Y, so cell index
// i maps to (i / D, i % D). Results indexed this way merge deterministically
// no matter how the scan is split across workers.

func cellAt(d, i int) model.Point {
	return model.Point{X: i / d, Y: i % d}
}

// withoutCovered returns the cities farther than r from tower. The input
// slice is left untouched.
func withoutCovered(cities []model.Point, tower model.Point, r float64) []model.Point {
	out := make([]model.Point, 0, len(cities))
	for _, c := range cities {
		if !tower.Within(c, r) {
			out = append(out, c)
		}
	}
	return out
}

// splitRange splits [0, n) into at most parts contiguous ranges of near-equal size.
func splitRange(n, parts int) [][2]int {
	if parts < 1 {
		parts = 1
	}
	if parts > n {
		parts = n
	}
	out := make([][2]int, 0, parts)
	lo := 0
	for p := 0; p < parts; p++ {
		hi := lo + (n-lo)/(parts-p)
		out = append(out, [2]int{lo, hi})
		lo = hi
	}
	return out
}
