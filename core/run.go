package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/signalsfoundry/tower-placement/internal/logging"
	"github.com/signalsfoundry/tower-placement/model"
)

// Run solves inst with s and checks the result before returning it. A
// solution that leaves a city uncovered or puts a tower off the grid yields
// ErrInfeasible wrapping the validation error; it is never returned as a
// Solution.
func Run(ctx context.Context, s Solver, inst *model.Instance, rec Recorder) (*model.Solution, error) {
	if rec == nil {
		rec = nopRecorder{}
	}
	log := logging.LoggerFromContext(ctx).With(logging.String("solver", s.Name()))

	ctx, span := tracer.Start(ctx, "solve", trace.WithAttributes(
		attribute.String("solver", s.Name()),
		attribute.Int("grid.d", inst.D()),
		attribute.Int("cities", inst.N()),
	))
	defer span.End()

	start := time.Now()
	towers, err := s.Solve(ctx, inst)
	elapsed := time.Since(start)
	if err != nil {
		rec.RecordSolve(s.Name(), elapsed, 0, 0, OutcomeError)
		span.SetStatus(codes.Error, err.Error())
		log.Error(ctx, "solver failed", logging.Err(err))
		return nil, fmt.Errorf("solve with %s: %w", s.Name(), err)
	}

	sol := &model.Solution{Instance: inst, Towers: towers}
	if verr := sol.Validate(); verr != nil {
		err := errors.Join(ErrInfeasible, verr)
		rec.RecordSolve(s.Name(), elapsed, len(towers), 0, OutcomeInfeasible)
		span.SetStatus(codes.Error, err.Error())
		log.Error(ctx, "solution failed validation", logging.Err(verr), logging.Int("towers", len(towers)))
		return nil, fmt.Errorf("solve with %s: %w", s.Name(), err)
	}

	penalty := sol.Penalty()
	rec.RecordSolve(s.Name(), elapsed, len(towers), penalty, OutcomeOK)
	span.SetAttributes(
		attribute.Int("towers", len(towers)),
		attribute.Float64("penalty", penalty),
	)
	log.Info(ctx, "solved",
		logging.Int("towers", len(towers)),
		logging.Float64("penalty", penalty),
		logging.Duration("elapsed", elapsed),
	)
	return sol, nil
}
