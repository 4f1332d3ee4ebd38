package observability

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SolverCollector bundles Prometheus metrics for solver runs. Its methods are
// safe to call on a nil receiver so solvers can run without metrics.
type SolverCollector struct {
	gatherer prometheus.Gatherer

	SolvesTotal        *prometheus.CounterVec
	SolveDuration      *prometheus.HistogramVec
	RoundsTotal        *prometheus.CounterVec
	CandidatesScored   *prometheus.CounterVec
	CandidatesSkipped  *prometheus.CounterVec
	UncoveredCities    *prometheus.GaugeVec
	SolutionTowers     *prometheus.GaugeVec
	SolutionPenalty    *prometheus.GaugeVec
	LastSolveTimestamp prometheus.Gauge
}

// NewSolverCollector registers solver metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
func NewSolverCollector(reg prometheus.Registerer) (*SolverCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	solves, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "towers_solves_total",
		Help: "Completed solver runs, labeled by solver and outcome (ok, infeasible, error).",
	}, []string{"solver", "outcome"}), "towers_solves_total")
	if err != nil {
		return nil, err
	}

	durations, err := registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "towers_solve_duration_seconds",
		Help:    "Wall-clock duration of a solver run in seconds.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
	}, []string{"solver"}), "towers_solve_duration_seconds")
	if err != nil {
		return nil, err
	}

	rounds, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "towers_rounds_total",
		Help: "Placement rounds executed, one tower placed per round.",
	}, []string{"solver"}), "towers_rounds_total")
	if err != nil {
		return nil, err
	}

	scored, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "towers_candidates_scored_total",
		Help: "Grid cells scored as tower candidates.",
	}, []string{"solver"}), "towers_candidates_scored_total")
	if err != nil {
		return nil, err
	}

	skipped, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "towers_candidates_skipped_total",
		Help: "Grid cells skipped because an earlier round proved they cover nothing.",
	}, []string{"solver"}), "towers_candidates_skipped_total")
	if err != nil {
		return nil, err
	}

	uncovered, err := registerGaugeVec(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "towers_uncovered_cities",
		Help: "Cities not yet covered after the most recent round.",
	}, []string{"solver"}), "towers_uncovered_cities")
	if err != nil {
		return nil, err
	}

	towers, err := registerGaugeVec(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "towers_solution_towers",
		Help: "Towers in the most recent solution.",
	}, []string{"solver"}), "towers_solution_towers")
	if err != nil {
		return nil, err
	}

	penalty, err := registerGaugeVec(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "towers_solution_penalty",
		Help: "Interference penalty of the most recent solution.",
	}, []string{"solver"}), "towers_solution_penalty")
	if err != nil {
		return nil, err
	}

	last, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "towers_last_solve_timestamp_seconds",
		Help: "Unix time at which the most recent solver run finished.",
	}), "towers_last_solve_timestamp_seconds")
	if err != nil {
		return nil, err
	}

	return &SolverCollector{
		gatherer:           gatherer,
		SolvesTotal:        solves,
		SolveDuration:      durations,
		RoundsTotal:        rounds,
		CandidatesScored:   scored,
		CandidatesSkipped:  skipped,
		UncoveredCities:    uncovered,
		SolutionTowers:     towers,
		SolutionPenalty:    penalty,
		LastSolveTimestamp: last,
	}, nil
}

// Gatherer returns the Prometheus gatherer associated with the collector.
func (c *SolverCollector) Gatherer() prometheus.Gatherer {
	if c == nil {
		return nil
	}
	return c.gatherer
}

// RecordRound records one placement round.
func (c *SolverCollector) RecordRound(solver string, scored, skipped, remaining int) {
	if c == nil {
		return
	}
	c.RoundsTotal.WithLabelValues(solver).Inc()
	c.CandidatesScored.WithLabelValues(solver).Add(float64(scored))
	c.CandidatesSkipped.WithLabelValues(solver).Add(float64(skipped))
	c.UncoveredCities.WithLabelValues(solver).Set(float64(remaining))
}

// RecordSolve records the outcome of a full solver run. Solution gauges are
// only updated for feasible runs.
func (c *SolverCollector) RecordSolve(solver string, d time.Duration, towers int, penalty float64, outcome string) {
	if c == nil {
		return
	}
	c.SolvesTotal.WithLabelValues(solver, outcome).Inc()
	c.SolveDuration.WithLabelValues(solver).Observe(d.Seconds())
	if outcome == OutcomeOK {
		c.SolutionTowers.WithLabelValues(solver).Set(float64(towers))
		c.SolutionPenalty.WithLabelValues(solver).Set(penalty)
	}
	c.LastSolveTimestamp.SetToCurrentTime()
}

// Outcome labels for towers_solves_total.
const (
	OutcomeOK         = "ok"
	OutcomeInfeasible = "infeasible"
	OutcomeError      = "error"
)

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGaugeVec(reg prometheus.Registerer, vec *prometheus.GaugeVec, name string) (*prometheus.GaugeVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.GaugeVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
