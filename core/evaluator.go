package core

import "github.com/signalsfoundry/tower-placement/model"

const (
	// CornerBonus is added on top of the border bonus for a covered corner city.
	CornerBonus = 2.0
	// InterferenceDiscount is subtracted per placed tower within R_p of a
	// candidate. It stands in for the exponential penalty term.
	InterferenceDiscount = 0.5
)

// Candidate is a scored grid cell.
type Candidate struct {
	Cell     model.Point
	Coverage int
	Weight   float64
}

// Score evaluates cell as the next tower. Coverage counts the uncovered
// cities within R_s. Weight starts at Coverage, adds R_s for each such city
// on the grid border (plus CornerBonus for corners) and subtracts
// InterferenceDiscount for every placed tower within R_p.
//
// Score has no side effects; the slices are only read.
func Score(inst *model.Instance, uncovered, towers []model.Point, cell model.Point) Candidate {
	rs := inst.ServiceRadius()
	c := Candidate{Cell: cell}
	for _, city := range uncovered {
		if !cell.Within(city, rs) {
			continue
		}
		c.Coverage++
		c.Weight++
		if inst.OnBorder(city) {
			c.Weight += rs
			if inst.OnCorner(city) {
				c.Weight += CornerBonus
			}
		}
	}

	rp := inst.PenaltyRadius()
	for _, t := range towers {
		if cell.Within(t, rp) {
			c.Weight -= InterferenceDiscount
		}
	}
	return c
}

// better orders candidates by weight descending, then by coordinate so that
// equal weights rank the same way on every run.
func better(a, b Candidate) bool {
	if a.Weight != b.Weight {
		return a.Weight > b.Weight
	}
	if a.Cell.X != b.Cell.X {
		return a.Cell.X < b.Cell.X
	}
	return a.Cell.Y < b.Cell.Y
}
