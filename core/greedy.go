package core

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/signalsfoundry/tower-placement/internal/logging"
	"github.com/signalsfoundry/tower-placement/model"
)

// DefaultTopKDivisor sets the shortlist size to max(1, D/10).
const DefaultTopKDivisor = 10

var tracer = otel.Tracer("github.com/signalsfoundry/tower-placement/core")

// Greedy places one tower per round at a cell drawn uniformly from the
// best-weighted candidates, until every city is covered.
type Greedy struct {
	rng         Rand
	topKDivisor int
	workers     int
	recorder    Recorder
	log         logging.Logger
}

// GreedyOption configures a Greedy solver.
type GreedyOption func(*Greedy)

// WithTopKDivisor sets the shortlist size to max(1, D/divisor). Values below
// 1 are ignored.
func WithTopKDivisor(divisor int) GreedyOption {
	return func(g *Greedy) {
		if divisor >= 1 {
			g.topKDivisor = divisor
		}
	}
}

// WithWorkers scores each round's candidates on n goroutines. The result is
// identical to the sequential scan.
func WithWorkers(n int) GreedyOption {
	return func(g *Greedy) {
		if n >= 1 {
			g.workers = n
		}
	}
}

// WithRecorder attaches a progress recorder.
func WithRecorder(r Recorder) GreedyOption {
	return func(g *Greedy) {
		if r != nil {
			g.recorder = r
		}
	}
}

// WithLogger attaches a logger. Without one, the logger on the Solve context
// is used.
func WithLogger(l logging.Logger) GreedyOption {
	return func(g *Greedy) {
		g.log = l
	}
}

// NewGreedy builds a greedy solver drawing from rng. A nil rng is replaced by
// a source seeded with 0 so runs stay reproducible.
func NewGreedy(rng Rand, opts ...GreedyOption) *Greedy {
	if rng == nil {
		rng = rand.New(rand.NewSource(0))
	}
	g := &Greedy{
		rng:         rng,
		topKDivisor: DefaultTopKDivisor,
		workers:     1,
		recorder:    nopRecorder{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Name implements Solver.
func (g *Greedy) Name() string { return "greedy" }

// TopK returns the shortlist size used for a grid of side d.
func (g *Greedy) TopK(d int) int {
	return max(1, d/g.topKDivisor)
}

// Solve implements Solver.
func (g *Greedy) Solve(ctx context.Context, inst *model.Instance) ([]model.Point, error) {
	log := g.log
	if log == nil {
		log = logging.LoggerFromContext(ctx)
	}
	log = log.With(logging.String("solver", g.Name()))

	ctx, span := tracer.Start(ctx, "greedy.solve", trace.WithAttributes(
		attribute.Int("grid.d", inst.D()),
		attribute.Int("cities", inst.N()),
		attribute.Int("workers", g.workers),
	))
	defer span.End()

	var (
		d         = inst.D()
		rs        = inst.ServiceRadius()
		k         = g.TopK(d)
		uncovered = inst.Cities()
		towers    = make([]model.Point, 0)
		scores    = make([]Candidate, d*d)
		// exhausted marks cells that covered nothing in an earlier round.
		// The uncovered set only shrinks, so they can never cover anything again.
		exhausted = make([]bool, d*d)
	)

	for round := 1; len(uncovered) > 0; round++ {
		if err := ctx.Err(); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}

		_, roundSpan := tracer.Start(ctx, "greedy.round", trace.WithAttributes(
			attribute.Int("round", round),
			attribute.Int("uncovered", len(uncovered)),
		))

		scored, skipped := g.scoreGrid(inst, uncovered, towers, scores, exhausted)
		top := shortlist(scores, exhausted, k)
		if len(top) == 0 {
			err := fmt.Errorf("%w: round %d has no covering candidate for %d cities", ErrNoProgress, round, len(uncovered))
			roundSpan.End()
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}

		pick := top[g.rng.Intn(len(top))]
		towers = append(towers, pick.Cell)

		before := len(uncovered)
		uncovered = withoutCovered(uncovered, pick.Cell, rs)
		if len(uncovered) >= before {
			err := fmt.Errorf("%w: round %d tower %v covered nothing", ErrNoProgress, round, pick.Cell)
			roundSpan.End()
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}

		g.recorder.RecordRound(g.Name(), scored, skipped, len(uncovered))
		log.Debug(ctx, "placed tower",
			logging.Int("round", round),
			logging.String("tower", pick.Cell.String()),
			logging.Float64("weight", pick.Weight),
			logging.Int("covered", before-len(uncovered)),
			logging.Int("uncovered", len(uncovered)),
			logging.Int("shortlist", len(top)),
		)
		roundSpan.SetAttributes(
			attribute.Int("tower.x", pick.Cell.X),
			attribute.Int("tower.y", pick.Cell.Y),
			attribute.Int("covered", before-len(uncovered)),
		)
		roundSpan.End()
	}

	span.SetAttributes(attribute.Int("towers", len(towers)))
	return towers, nil
}

// scoreGrid fills scores for every cell not yet exhausted and marks cells
// that cover nothing. Workers own disjoint index ranges, so no locking is
// needed and the output does not depend on scheduling.
func (g *Greedy) scoreGrid(inst *model.Instance, uncovered, towers []model.Point, scores []Candidate, exhausted []bool) (scored, skipped int) {
	d := inst.D()
	ranges := splitRange(len(scores), g.workers)
	counts := make([][2]int, len(ranges))

	scan := func(part int) {
		lo, hi := ranges[part][0], ranges[part][1]
		for i := lo; i < hi; i++ {
			if exhausted[i] {
				counts[part][1]++
				continue
			}
			c := Score(inst, uncovered, towers, cellAt(d, i))
			if c.Coverage == 0 {
				exhausted[i] = true
			}
			scores[i] = c
			counts[part][0]++
		}
	}

	if len(ranges) == 1 {
		scan(0)
	} else {
		var wg sync.WaitGroup
		for part := range ranges {
			wg.Add(1)
			go func(part int) {
				defer wg.Done()
				scan(part)
			}(part)
		}
		wg.Wait()
	}

	for _, c := range counts {
		scored += c[0]
		skipped += c[1]
	}
	return scored, skipped
}

// shortlist returns up to k covering candidates, best first.
func shortlist(scores []Candidate, exhausted []bool, k int) []Candidate {
	eligible := make([]Candidate, 0, len(scores))
	for i, c := range scores {
		if !exhausted[i] && c.Coverage > 0 {
			eligible = append(eligible, c)
		}
	}
	slices.SortFunc(eligible, func(a, b Candidate) int {
		switch {
		case better(a, b):
			return -1
		case better(b, a):
			return 1
		default:
			return 0
		}
	})
	if len(eligible) > k {
		eligible = eligible[:k]
	}
	return eligible
}
