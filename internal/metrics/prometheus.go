package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/eliminator/elimination"
)

// ErrNoTextfile is returned by WriteTextfile for an empty path.
var ErrNoTextfile = errors.New("metrics: textfile path is empty")

// Outcome label values.
const (
	OutcomeEliminated = "eliminated"
	OutcomeAlive      = "alive"
)

// Manager owns the elimination metrics and the registry they are registered
// on. It implements elimination.Recorder.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	queries       *prometheus.CounterVec
	queryDuration *prometheus.HistogramVec
	errors        *prometheus.CounterVec
}

var _ elimination.Recorder = (*Manager)(nil)

// NewManager creates a Manager. Without WithRegistry it gets a fresh
// registry, so no Go runtime collectors are exported.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "eliminator",
		subsystem:        "analyzer",
		histogramBuckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}
	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.queries = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "queries_total",
			Help:      "Elimination queries by deciding check and outcome",
		},
		[]string{"path", "outcome"},
	)

	m.queryDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "query_duration_seconds",
			Help:      "Time spent answering one elimination query",
			Buckets:   m.histogramBuckets,
		},
		[]string{"path"},
	)

	m.errors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_total",
			Help:      "Failed elimination queries by kind",
		},
		[]string{"kind"},
	)
}

// ObserveQuery implements elimination.Recorder.
func (m *Manager) ObserveQuery(path elimination.Reason, eliminated bool, d time.Duration) {
	outcome := OutcomeAlive
	if eliminated {
		outcome = OutcomeEliminated
	}
	m.queries.WithLabelValues(string(path), outcome).Inc()
	m.queryDuration.WithLabelValues(string(path)).Observe(d.Seconds())
}

// ObserveError implements elimination.Recorder.
func (m *Manager) ObserveError(kind string) {
	m.errors.WithLabelValues(kind).Inc()
}

// Registry returns the registry the metrics are registered on.
func (m *Manager) Registry() *prometheus.Registry { return m.registry }

// WriteTextfile writes every metric in the text exposition format, for the
// node_exporter textfile collector.
func (m *Manager) WriteTextfile(path string) error {
	if path == "" {
		return ErrNoTextfile
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
