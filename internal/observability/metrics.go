package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rotate-screen/rotate-screen/internal/engine"
)

// Metrics describes a single run for the node_exporter textfile collector.
// It implements engine.Observer.
type Metrics struct {
	registry *prometheus.Registry

	Rotations   prometheus.Counter
	Mappings    *prometheus.CounterVec
	Orientation *prometheus.GaugeVec
	Success     prometheus.Gauge
	Timestamp   prometheus.Gauge
}

var _ engine.Observer = (*Metrics)(nil)

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Rotations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rotate_screen_rotations_total",
			Help: "Screens rotated by the last run",
		}),
		Mappings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rotate_screen_device_mappings_total",
			Help: "Input device mappings by outcome in the last run",
		}, []string{"outcome"}),
		Orientation: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "rotate_screen_orientation",
			Help: "1 for the orientation applied by the last run",
		}, []string{"orientation"}),
		Success: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rotate_screen_last_run_success",
			Help: "1 if the last run completed without a fatal error",
		}),
		Timestamp: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rotate_screen_last_run_timestamp_seconds",
			Help: "Unix time the last run finished",
		}),
	}
	m.registry.MustRegister(m.Rotations, m.Mappings, m.Orientation, m.Success, m.Timestamp)
	return m
}

func (m *Metrics) ScreenRotated(_ string, o engine.Orientation) {
	m.Rotations.Inc()
	for _, c := range []engine.Orientation{engine.Normal, engine.Right, engine.Inverted, engine.Left} {
		v := 0.0
		if c == o {
			v = 1
		}
		m.Orientation.WithLabelValues(c.String()).Set(v)
	}
}

func (m *Metrics) DeviceMapped(engine.ResolvedDevice, string) {
	m.Mappings.WithLabelValues(engine.Applied.String()).Inc()
}

func (m *Metrics) DeviceTolerated(engine.ResolvedDevice, string, error) {
	m.Mappings.WithLabelValues(engine.Tolerated.String()).Inc()
}

// Finish records the run's end state.
func (m *Metrics) Finish(err error, at time.Time) {
	if err == nil {
		m.Success.Set(1)
	} else {
		m.Success.Set(0)
	}
	m.Timestamp.Set(float64(at.Unix()))
}

func (m *Metrics) Gatherer() prometheus.Gatherer { return m.registry }

// WriteTextfile atomically replaces path with the current metrics.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
