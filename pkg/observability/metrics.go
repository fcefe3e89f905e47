package observability

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Result labels.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Metrics holds the editor's Prometheus collectors on a private registry.
type Metrics struct {
	Registry *prometheus.Registry

	TablesParsed  *prometheus.CounterVec
	ParseDuration prometheus.Histogram
	TablesSaved   *prometheus.CounterVec
	Evaluations   prometheus.Counter
	Edits         *prometheus.CounterVec
}

// NewMetrics creates and registers the editor metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		TablesParsed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "curvedit_tables_parsed_total",
				Help: "Total number of table files parsed",
			},
			[]string{"result"},
		),
		ParseDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "curvedit_parse_duration_seconds",
				Help:    "Duration of table file parsing",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
		),
		TablesSaved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "curvedit_tables_saved_total",
				Help: "Total number of table files written",
			},
			[]string{"result"},
		),
		Evaluations: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "curvedit_evaluations_total",
				Help: "Total number of top-level curve evaluations",
			},
		),
		Edits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "curvedit_edits_total",
				Help: "Total number of editing operations applied",
			},
			[]string{"op"},
		),
	}
	m.Registry.MustRegister(m.TablesParsed, m.ParseDuration, m.TablesSaved, m.Evaluations, m.Edits)
	return m
}

// ObserveParse records one parse attempt.
func (m *Metrics) ObserveParse(d time.Duration, err error) {
	if m == nil {
		return
	}
	m.ParseDuration.Observe(d.Seconds())
	m.TablesParsed.WithLabelValues(result(err)).Inc()
}

// ObserveSave records one save attempt.
func (m *Metrics) ObserveSave(err error) {
	if m == nil {
		return
	}
	m.TablesSaved.WithLabelValues(result(err)).Inc()
}

// ObserveEvaluations adds n evaluations.
func (m *Metrics) ObserveEvaluations(n int) {
	if m == nil {
		return
	}
	m.Evaluations.Add(float64(n))
}

// ObserveEdit records an applied editing operation.
func (m *Metrics) ObserveEdit(op string) {
	if m == nil {
		return
	}
	m.Edits.WithLabelValues(op).Inc()
}

// WriteText writes every gathered metric family in the Prometheus text format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.Registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to encode metrics: %w", err)
		}
	}
	return nil
}

func result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultOK
}
