package model

import "fmt"

// Instance is an immutable tower placement problem: a D×D grid, a service
// radius, a penalty radius and a set of distinct cities inside the grid.
type Instance struct {
	d             int
	serviceRadius float64
	penaltyRadius float64
	cities        []Point
}

// NewInstance validates its arguments and returns an Instance. The city slice
// is copied, so later changes by the caller are not observed.
func NewInstance(d int, serviceRadius, penaltyRadius float64, cities []Point) (*Instance, error) {
	if d <= 0 {
		return nil, fmt.Errorf("%w: D=%d", ErrInvalidGrid, d)
	}
	if !(serviceRadius > 0) {
		return nil, fmt.Errorf("%w: R_s=%v", ErrInvalidServiceRadius, serviceRadius)
	}
	if !(penaltyRadius >= 0) {
		return nil, fmt.Errorf("%w: R_p=%v", ErrInvalidPenaltyRadius, penaltyRadius)
	}
	if len(cities) == 0 {
		return nil, ErrNoCities
	}

	seen := make(map[Point]struct{}, len(cities))
	owned := make([]Point, 0, len(cities))
	for i, c := range cities {
		if !c.InGrid(d) {
			return nil, fmt.Errorf("%w: city %d at %v, D=%d", ErrCityOutOfBounds, i, c, d)
		}
		if _, dup := seen[c]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateCity, c)
		}
		seen[c] = struct{}{}
		owned = append(owned, c)
	}

	return &Instance{
		d:             d,
		serviceRadius: serviceRadius,
		penaltyRadius: penaltyRadius,
		cities:        owned,
	}, nil
}

// D returns the grid side length.
func (inst *Instance) D() int { return inst.d }

// ServiceRadius returns R_s.
func (inst *Instance) ServiceRadius() float64 { return inst.serviceRadius }

// PenaltyRadius returns R_p.
func (inst *Instance) PenaltyRadius() float64 { return inst.penaltyRadius }

// N returns the number of cities.
func (inst *Instance) N() int { return len(inst.cities) }

// Cities returns a copy of the city list in construction order.
func (inst *Instance) Cities() []Point {
	out := make([]Point, len(inst.cities))
	copy(out, inst.cities)
	return out
}

// OnBorder reports whether p sits in the first or last row or column.
func (inst *Instance) OnBorder(p Point) bool {
	return inst.edgeX(p) || inst.edgeY(p)
}

// OnCorner reports whether p sits on both a border row and a border column.
func (inst *Instance) OnCorner(p Point) bool {
	return inst.edgeX(p) && inst.edgeY(p)
}

func (inst *Instance) edgeX(p Point) bool { return p.X == 0 || p.X == inst.d-1 }
func (inst *Instance) edgeY(p Point) bool { return p.Y == 0 || p.Y == inst.d-1 }
