package model

import "fmt"

// Solution pairs an instance with an ordered list of towers.
type Solution struct {
	Instance *Instance
	Towers   []Point
}

// Validate checks that every tower is on the grid and that every city is
// within R_s of some tower. The first violation found is returned.
func (s *Solution) Validate() error {
	d := s.Instance.D()
	for i, t := range s.Towers {
		if !t.InGrid(d) {
			return fmt.Errorf("%w: tower %d at %v, D=%d", ErrTowerOutOfBounds, i, t, d)
		}
	}
	rs := s.Instance.ServiceRadius()
	for _, c := range s.Instance.cities {
		if !coveredBy(c, s.Towers, rs) {
			return fmt.Errorf("%w: %v", ErrUncoveredCity, c)
		}
	}
	return nil
}

// Valid is Validate without the reason.
func (s *Solution) Valid() bool {
	return s.Validate() == nil
}

// Penalty recomputes the solution's interference penalty.
func (s *Solution) Penalty() float64 {
	return Penalty(s.Towers, s.Instance.PenaltyRadius())
}

func coveredBy(c Point, towers []Point, rs float64) bool {
	for _, t := range towers {
		if t.Within(c, rs) {
			return true
		}
	}
	return false
}
