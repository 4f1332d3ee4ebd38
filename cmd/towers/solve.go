package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/signalsfoundry/tower-placement/core"
	"github.com/signalsfoundry/tower-placement/internal/config"
	"github.com/signalsfoundry/tower-placement/internal/logging"
	"github.com/signalsfoundry/tower-placement/internal/observability"
	"github.com/signalsfoundry/tower-placement/registry"
	"github.com/signalsfoundry/tower-placement/textio"
)

type solveFlags struct {
	configPath  string
	solver      string
	seed        int64
	workers     int
	topKDivisor int
}

func solveCmd() *cobra.Command {
	var flags solveFlags

	cmd := &cobra.Command{
		Use:   "solve <input|-> <output|->",
		Short: "Solve an instance and write the towers as a solution file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			return runSolve(cmd, cfg, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "YAML file with solver, logging, tracing and metrics settings")
	cmd.Flags().StringVar(&flags.solver, "solver", "greedy", "solver to run (greedy or naive)")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "seed for the greedy shortlist draw")
	cmd.Flags().IntVar(&flags.workers, "workers", 1, "goroutines scoring candidates each round")
	cmd.Flags().IntVar(&flags.topKDivisor, "top-k-divisor", core.DefaultTopKDivisor, "shortlist size is max(1, D/divisor)")
	return cmd
}

// loadSolveConfig layers explicitly set flags over the file and environment.
func loadSolveConfig(cmd *cobra.Command, flags solveFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return config.Config{}, err
	}
	set := cmd.Flags().Changed
	if set("solver") {
		cfg.Solver = flags.solver
	}
	if set("seed") {
		cfg.Seed = flags.seed
	}
	if set("workers") {
		cfg.Workers = flags.workers
	}
	if set("top-k-divisor") {
		cfg.TopKDivisor = flags.topKDivisor
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newRegistry builds every solver the CLI knows about from cfg.
func newRegistry(cfg config.Config, rec core.Recorder) (*registry.Registry, error) {
	greedy := core.NewGreedy(
		rand.New(rand.NewSource(cfg.Seed)),
		core.WithWorkers(cfg.Workers),
		core.WithTopKDivisor(cfg.TopKDivisor),
		core.WithRecorder(rec),
	)
	return registry.New(core.Naive{}, greedy)
}

func runSolve(cmd *cobra.Command, cfg config.Config, input, output string) (err error) {
	logCfg := cfg.Log.Logging()
	logCfg.Output = cmd.ErrOrStderr()
	ctx, log := logging.WithRunLogger(cmd.Context(), logging.New(logCfg))

	tracingCfg := cfg.Tracing
	if tracingCfg.Writer == nil {
		tracingCfg.Writer = cmd.ErrOrStderr()
	}
	shutdown, err := observability.InitTracing(ctx, tracingCfg, log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer observability.ShutdownWithTimeout(ctx, shutdown, log)

	ctx, span := observability.Tracer().Start(ctx, "towers.solve", trace.WithAttributes(
		attribute.String("input", input),
		attribute.String("output", output),
	))
	defer func() {
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	collector, err := observability.NewSolverCollector(prometheus.NewRegistry())
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}
	defer func() {
		if exportErr := observability.Export(ctx, cfg.Metrics, collector.Gatherer(), log); exportErr != nil {
			err = errors.Join(err, exportErr)
		}
	}()

	solvers, err := newRegistry(cfg, collector)
	if err != nil {
		return err
	}
	solver, err := solvers.Get(cfg.Solver)
	if err != nil {
		return err
	}

	in, err := openInput(cmd, input)
	if err != nil {
		return err
	}
	inst, err := textio.ParseInstance(in)
	in.Close()
	if err != nil {
		return fmt.Errorf("read instance %s: %w", input, err)
	}
	log.Info(ctx, "loaded instance",
		logging.String("input", input),
		logging.Int("d", inst.D()),
		logging.Int("cities", inst.N()),
		logging.String("solver", solver.Name()),
		logging.Int64("seed", cfg.Seed),
	)

	sol, err := core.Run(ctx, solver, inst, collector)
	if err != nil {
		return err
	}

	return writeOutput(cmd, output, func(w io.Writer) error {
		return textio.WriteSolution(w, sol)
	})
}
