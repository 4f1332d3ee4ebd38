package model

import "fmt"

// Point is a cell on the square grid. Cities and towers are both Points.
type Point struct {
	X int
	Y int
}

// InGrid reports whether p lies in [0, d) on both axes.
func (p Point) InGrid(d int) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < d && p.Y < d
}

// DistanceSquared returns the squared Euclidean distance between p and q.
func (p Point) DistanceSquared(q Point) int {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Within reports whether q lies at Euclidean distance <= r from p.
// Comparison is done on squared distances so integer radii are exact.
func (p Point) Within(q Point, r float64) bool {
	if r < 0 {
		return false
	}
	return float64(p.DistanceSquared(q)) <= r*r
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
