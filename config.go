package colser

import (
	"github.com/AndrewDonelson/colser/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// Re-export types so callers only import this package.
type MetricsRecorder = metrics.MetricsRecorder

// Config contains Registry configuration. The zero value is usable.
type Config struct {
	// Logger receives registry diagnostics. Defaults to a no-op logger.
	Logger Logger
	// Metrics receives codec activity from every codec the registry builds.
	// Defaults to a no-op recorder.
	Metrics MetricsRecorder
}

func (c *Config) defaults() {
	if c.Logger == nil {
		c.Logger = noopLogger{}
	}
	if c.Metrics == nil {
		c.Metrics = metrics.Noop{}
	}
}

// NewPrometheusMetrics returns a MetricsRecorder that exports codec counters
// under namespace, registered with reg (nil means the default registerer).
func NewPrometheusMetrics(reg prometheus.Registerer, namespace string) (MetricsRecorder, error) {
	p, err := metrics.NewPrometheus(reg, namespace)
	if err != nil {
		return nil, err
	}
	return p, nil
}
