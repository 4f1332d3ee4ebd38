package observability

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordRoundAccumulates(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewSolverCollector(reg)
	if err != nil {
		t.Fatalf("NewSolverCollector: %v", err)
	}

	collector.RecordRound("greedy", 900, 0, 40)
	collector.RecordRound("greedy", 850, 50, 31)

	if got := testutil.ToFloat64(collector.RoundsTotal.WithLabelValues("greedy")); got != 2 {
		t.Fatalf("towers_rounds_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(collector.CandidatesScored.WithLabelValues("greedy")); got != 1750 {
		t.Fatalf("towers_candidates_scored_total = %v, want 1750", got)
	}
	if got := testutil.ToFloat64(collector.CandidatesSkipped.WithLabelValues("greedy")); got != 50 {
		t.Fatalf("towers_candidates_skipped_total = %v, want 50", got)
	}
	if got := testutil.ToFloat64(collector.UncoveredCities.WithLabelValues("greedy")); got != 31 {
		t.Fatalf("towers_uncovered_cities = %v, want 31", got)
	}
}

func TestRecordSolveOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewSolverCollector(reg)
	if err != nil {
		t.Fatalf("NewSolverCollector: %v", err)
	}

	collector.RecordSolve("greedy", 20*time.Millisecond, 7, 1234.5, OutcomeOK)
	collector.RecordSolve("greedy", 5*time.Millisecond, 3, 99, OutcomeInfeasible)

	if got := testutil.ToFloat64(collector.SolvesTotal.WithLabelValues("greedy", OutcomeOK)); got != 1 {
		t.Fatalf("towers_solves_total{ok} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(collector.SolvesTotal.WithLabelValues("greedy", OutcomeInfeasible)); got != 1 {
		t.Fatalf("towers_solves_total{infeasible} = %v, want 1", got)
	}
	// Infeasible runs must not overwrite the last good solution gauges.
	if got := testutil.ToFloat64(collector.SolutionTowers.WithLabelValues("greedy")); got != 7 {
		t.Fatalf("towers_solution_towers = %v, want 7", got)
	}
	if got := testutil.ToFloat64(collector.SolutionPenalty.WithLabelValues("greedy")); got != 1234.5 {
		t.Fatalf("towers_solution_penalty = %v, want 1234.5", got)
	}
	if count := histogramSampleCount(t, reg, "towers_solve_duration_seconds", map[string]string{"solver": "greedy"}); count != 2 {
		t.Fatalf("towers_solve_duration_seconds sample_count = %d, want 2", count)
	}
}

func TestNewSolverCollectorReusesRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewSolverCollector(reg)
	if err != nil {
		t.Fatalf("first NewSolverCollector: %v", err)
	}
	second, err := NewSolverCollector(reg)
	if err != nil {
		t.Fatalf("second NewSolverCollector: %v", err)
	}
	first.RecordRound("naive", 0, 0, 0)
	if got := testutil.ToFloat64(second.RoundsTotal.WithLabelValues("naive")); got != 1 {
		t.Fatalf("collectors should share registered metrics, got %v", got)
	}
}

func TestNilCollectorIsSafe(t *testing.T) {
	var c *SolverCollector
	c.RecordRound("greedy", 1, 1, 1)
	c.RecordSolve("greedy", time.Second, 1, 1, OutcomeOK)
	if c.Gatherer() != nil {
		t.Fatalf("nil collector should have nil gatherer")
	}
}

func TestExportWritesTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewSolverCollector(reg)
	if err != nil {
		t.Fatalf("NewSolverCollector: %v", err)
	}
	collector.RecordSolve("greedy", time.Millisecond, 4, 680, OutcomeOK)

	path := filepath.Join(t.TempDir(), "towers.prom")
	if err := Export(context.Background(), ExportConfig{TextfilePath: path}, collector.Gatherer(), nil); err != nil {
		t.Fatalf("Export: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	for _, metric := range []string{"towers_solves_total", "towers_solution_towers", "towers_solution_penalty"} {
		if !strings.Contains(string(data), metric) {
			t.Fatalf("expected %q in textfile output:\n%s", metric, data)
		}
	}
}

func TestExportPushesToGateway(t *testing.T) {
	var (
		gotPath string
		gotBody []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	reg := prometheus.NewRegistry()
	collector, err := NewSolverCollector(reg)
	if err != nil {
		t.Fatalf("NewSolverCollector: %v", err)
	}
	collector.RecordRound("greedy", 10, 0, 0)

	cfg := ExportConfig{PushURL: srv.URL, Job: "nightly"}
	if err := Export(context.Background(), cfg, collector.Gatherer(), nil); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if gotPath != "/metrics/job/nightly" {
		t.Fatalf("push path = %q, want /metrics/job/nightly", gotPath)
	}
	if len(gotBody) == 0 {
		t.Fatalf("push body empty")
	}
}

func TestExportDisabledIsNoop(t *testing.T) {
	if (ExportConfig{}).Enabled() {
		t.Fatalf("empty config should be disabled")
	}
	if err := Export(context.Background(), ExportConfig{}, prometheus.NewRegistry(), nil); err != nil {
		t.Fatalf("Export with no destinations = %v, want nil", err)
	}
}

func TestExportReportsTextfileError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "towers.prom")
	err := Export(context.Background(), ExportConfig{TextfilePath: path}, prometheus.NewRegistry(), nil)
	if err == nil {
		t.Fatalf("expected error writing into a missing directory")
	}
}

func TestStdoutTracingExportsSpans(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultTracingConfig()
	cfg.Enabled = true
	cfg.Writer = &buf

	ctx := context.Background()
	shutdown, err := InitTracing(ctx, cfg, nil)
	if err != nil {
		t.Fatalf("InitTracing: %v", err)
	}
	_, span := Tracer().Start(ctx, "test.span")
	span.End()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	if !strings.Contains(buf.String(), "test.span") {
		t.Fatalf("expected span in exporter output, got %q", buf.String())
	}

	// Restore the noop provider for other tests.
	if _, err := InitTracing(ctx, TracingConfig{}, nil); err != nil {
		t.Fatalf("InitTracing(disabled): %v", err)
	}
}

func TestUnsupportedExporter(t *testing.T) {
	cfg := DefaultTracingConfig()
	cfg.Enabled = true
	cfg.Exporter = "zipkin"
	if _, err := InitTracing(context.Background(), cfg, nil); err == nil {
		t.Fatalf("expected error for unsupported exporter")
	}
}

func TestTracingConfigApplyEnv(t *testing.T) {
	t.Setenv("TOWERS_TRACING_ENABLED", "TRUE")
	t.Setenv("TOWERS_TRACING_EXPORTER", "OTLP")
	t.Setenv("TOWERS_OTLP_ENDPOINT", "collector:4317")
	t.Setenv("TOWERS_TRACING_SAMPLE_RATIO", "1.5")

	cfg := DefaultTracingConfig().ApplyEnv()
	if !cfg.Enabled || cfg.Exporter != "otlp" || cfg.Endpoint != "collector:4317" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.SampleRatio != 1.0 {
		t.Fatalf("out-of-range ratio should be ignored, got %v", cfg.SampleRatio)
	}
}

func histogramSampleCount(t *testing.T, gatherer prometheus.Gatherer, name string, labels map[string]string) uint64 {
	t.Helper()

	metrics, err := gatherer.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	for _, mf := range metrics {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.Metric {
			if matchLabels(m.GetLabel(), labels) && m.GetHistogram() != nil {
				return m.GetHistogram().GetSampleCount()
			}
		}
	}
	return 0
}

func matchLabels(got []*dto.LabelPair, want map[string]string) bool {
	if len(got) < len(want) {
		return false
	}
	matched := 0
	for _, lp := range got {
		if val, ok := want[lp.GetName()]; ok && val == lp.GetValue() {
			matched++
		}
	}
	return matched == len(want)
}
