package model

import "math"

const (
	// PenaltyBase is the cost of a tower with no interfering neighbours.
	PenaltyBase = 170.0
	// PenaltyGrowth is the exponent applied per interfering neighbour.
	PenaltyGrowth = 0.17
)

// Overlap returns, for each tower, the number of other towers within rp.
func Overlap(towers []Point, rp float64) []int {
	counts := make([]int, len(towers))
	for i := range towers {
		for j := i + 1; j < len(towers); j++ {
			if towers[i].Within(towers[j], rp) {
				counts[i]++
				counts[j]++
			}
		}
	}
	return counts
}

// Penalty is the sum over towers of 170·e^(0.17·overlap). It is 0 for an
// empty tower set.
func Penalty(towers []Point, rp float64) float64 {
	total := 0.0
	for _, w := range Overlap(towers, rp) {
		total += PenaltyBase * math.Exp(PenaltyGrowth*float64(w))
	}
	return total
}
