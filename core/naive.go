package core

import (
	"context"

	"github.com/signalsfoundry/tower-placement/model"
)

// Naive puts a tower on every city. It is always feasible and serves as a
// reference point for penalty comparisons.
type Naive struct{}

// Name implements Solver.
func (Naive) Name() string { return "naive" }

// Solve implements Solver.
func (Naive) Solve(ctx context.Context, inst *model.Instance) ([]model.Point, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return inst.Cities(), nil
}
