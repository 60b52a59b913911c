// Package metric provides Prometheus-based instrumentation for the pack
// registry and industry detector. Core metrics cover registry lifecycle
// (packs registered, change events, listener failures) and detection
// (runs per industry, scoring duration, ambiguous results).
package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains all subsystem metrics
type Metrics struct {
	// Registry metrics
	PacksRegistered  prometheus.Gauge
	RegistryEvents   *prometheus.CounterVec
	ListenerFailures prometheus.Counter

	// Detection metrics
	DetectionsTotal   *prometheus.CounterVec
	DetectionDuration prometheus.Histogram
	AmbiguousResults  prometheus.Counter
}

// New creates a Metrics instance with all collectors constructed but not
// yet registered. Use Register to attach them to a Prometheus registry.
func New() *Metrics {
	return &Metrics{
		PacksRegistered: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "packkit",
			Subsystem: "registry",
			Name:      "packs",
			Help:      "Number of industry packs currently registered",
		}),

		RegistryEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "packkit",
				Subsystem: "registry",
				Name:      "events_total",
				Help:      "Total registry change events emitted",
			},
			[]string{"type"},
		),

		ListenerFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "packkit",
			Subsystem: "registry",
			Name:      "listener_failures_total",
			Help:      "Total registry event listeners that returned an error or panicked",
		}),

		DetectionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "packkit",
				Subsystem: "detect",
				Name:      "runs_total",
				Help:      "Total detection runs by resulting primary industry",
			},
			[]string{"industry"},
		),

		DetectionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "packkit",
			Subsystem: "detect",
			Name:      "duration_seconds",
			Help:      "Detection scoring duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		AmbiguousResults: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "packkit",
			Subsystem: "detect",
			Name:      "ambiguous_total",
			Help:      "Total detection runs flagged ambiguous",
		}),
	}
}

// Register attaches all collectors to the given registerer
func (m *Metrics) Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.PacksRegistered,
		m.RegistryEvents,
		m.ListenerFailures,
		m.DetectionsTotal,
		m.DetectionDuration,
		m.AmbiguousResults,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// ObserveDetection records one detection run
func (m *Metrics) ObserveDetection(industry string, ambiguous bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.DetectionsTotal.WithLabelValues(industry).Inc()
	m.DetectionDuration.Observe(elapsed.Seconds())
	if ambiguous {
		m.AmbiguousResults.Inc()
	}
}

// ObserveRegistryEvent records one registry change event
func (m *Metrics) ObserveRegistryEvent(eventType string, packCount int) {
	if m == nil {
		return
	}
	m.RegistryEvents.WithLabelValues(eventType).Inc()
	m.PacksRegistered.Set(float64(packCount))
}

// ObserveListenerFailure records a failing registry listener
func (m *Metrics) ObserveListenerFailure() {
	if m == nil {
		return
	}
	m.ListenerFailures.Inc()
}
