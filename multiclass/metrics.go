package multiclass

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the Prometheus collectors updated by training. A nil *Metrics is a no-op.
type Metrics struct {
	rounds    prometheus.Counter
	failures  prometheus.Counter
	duration  prometheus.Histogram
	submodels prometheus.Gauge
}

// NewMetrics registers the training collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		rounds: f.NewCounter(prometheus.CounterOpts{
			Name: "multiclass_rounds_total",
			Help: "Total training rounds committed to the registry",
		}),
		failures: f.NewCounter(prometheus.CounterOpts{
			Name: "multiclass_train_failures_total",
			Help: "Total training passes aborted by an error",
		}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "multiclass_round_duration_seconds",
			Help:    "Duration of one training round including the submodel capture",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		submodels: f.NewGauge(prometheus.GaugeOpts{
			Name: "multiclass_submodels",
			Help: "Number of submodels in the registry",
		}),
	}
}

func (m *Metrics) round(d time.Duration) {
	if m == nil {
		return
	}
	m.rounds.Inc()
	m.duration.Observe(d.Seconds())
}

func (m *Metrics) failure() {
	if m == nil {
		return
	}
	m.failures.Inc()
}

func (m *Metrics) registry(n int) {
	if m == nil {
		return
	}
	m.submodels.Set(float64(n))
}
