package observability

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/signalsfoundry/tower-placement/internal/logging"
)

// ExportConfig says where a finished batch run publishes its metrics. Both
// destinations are optional and may be combined.
type ExportConfig struct {
	// TextfilePath is written in the Prometheus text format, suitable for the
	// node_exporter textfile collector.
	TextfilePath string `yaml:"textfile"`
	// PushURL is a Pushgateway base URL.
	PushURL string `yaml:"push_url"`
	// Job is the Pushgateway job label.
	Job string `yaml:"job"`
}

// ApplyEnv overlays TOWERS_METRICS_TEXTFILE, TOWERS_METRICS_PUSH_URL and
// TOWERS_METRICS_JOB on c. Unset variables leave the field unchanged.
func (c ExportConfig) ApplyEnv() ExportConfig {
	if v := os.Getenv("TOWERS_METRICS_TEXTFILE"); v != "" {
		c.TextfilePath = v
	}
	if v := os.Getenv("TOWERS_METRICS_PUSH_URL"); v != "" {
		c.PushURL = v
	}
	if v := os.Getenv("TOWERS_METRICS_JOB"); v != "" {
		c.Job = v
	}
	return c
}

// Enabled reports whether any destination is configured.
func (c ExportConfig) Enabled() bool {
	return strings.TrimSpace(c.TextfilePath) != "" || strings.TrimSpace(c.PushURL) != ""
}

// Export publishes everything in g to the configured destinations. Errors
// from each destination are joined so one failing sink does not hide the
// other.
func Export(ctx context.Context, cfg ExportConfig, g prometheus.Gatherer, log logging.Logger) error {
	if g == nil || !cfg.Enabled() {
		return nil
	}
	if log == nil {
		log = logging.Noop()
	}

	var errs []error
	if path := strings.TrimSpace(cfg.TextfilePath); path != "" {
		if err := prometheus.WriteToTextfile(path, g); err != nil {
			errs = append(errs, fmt.Errorf("write textfile %s: %w", path, err))
		} else {
			log.Debug(ctx, "wrote metrics textfile", logging.String("path", path))
		}
	}
	if url := strings.TrimSpace(cfg.PushURL); url != "" {
		job := cfg.Job
		if job == "" {
			job = "towers"
		}
		if err := push.New(url, job).Gatherer(g).PushContext(ctx); err != nil {
			errs = append(errs, fmt.Errorf("push to %s: %w", url, err))
		} else {
			log.Debug(ctx, "pushed metrics", logging.String("url", url), logging.String("job", job))
		}
	}
	return errors.Join(errs...)
}
