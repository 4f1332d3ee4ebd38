package core

import (
	"context"
	"errors"
	"time"

	"github.com/signalsfoundry/tower-placement/model"
)

var (
	// ErrNoProgress means a placement round covered no new city. It can only
	// happen through a bug, since every uncovered city is its own candidate.
	ErrNoProgress = errors.New("core: placement round made no progress")
	// ErrInfeasible means a solver returned towers that fail validation.
	ErrInfeasible = errors.New("core: solver produced an infeasible solution")
)

// Solver places towers for an instance. Implementations make no coverage
// promise by construction alone; Run checks the result.
type Solver interface {
	Name() string
	Solve(ctx context.Context, inst *model.Instance) ([]model.Point, error)
}

// Rand is the randomness a solver consumes. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Recorder receives solver progress. observability.SolverCollector
// implements it; a nil Recorder is allowed wherever one is accepted.
type Recorder interface {
	RecordRound(solver string, scored, skipped, remaining int)
	RecordSolve(solver string, d time.Duration, towers int, penalty float64, outcome string)
}

// Outcome labels passed to Recorder.RecordSolve.
const (
	OutcomeOK         = "ok"
	OutcomeInfeasible = "infeasible"
	OutcomeError      = "error"
)

type nopRecorder struct{}

func (nopRecorder) RecordRound(string, int, int, int)                       {}
func (nopRecorder) RecordSolve(string, time.Duration, int, float64, string) {}
