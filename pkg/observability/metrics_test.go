package observability_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/curvedit/pkg/observability"
)

func TestMetrics_Counters(t *testing.T) {
	m := observability.NewMetrics()

	m.ObserveParse(2*time.Millisecond, nil)
	m.ObserveParse(time.Millisecond, errors.New("bad"))
	m.ObserveSave(nil)
	m.ObserveEvaluations(501)
	m.ObserveEdit("rename")
	m.ObserveEdit("rename")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.TablesParsed.WithLabelValues(observability.ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TablesParsed.WithLabelValues(observability.ResultError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TablesSaved.WithLabelValues(observability.ResultOK)))
	assert.Equal(t, 501.0, testutil.ToFloat64(m.Evaluations))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Edits.WithLabelValues("rename")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.ParseDuration))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *observability.Metrics
	assert.NotPanics(t, func() {
		m.ObserveParse(time.Second, nil)
		m.ObserveSave(nil)
		m.ObserveEvaluations(1)
		m.ObserveEdit("move")
	})
}

func TestMetrics_WriteText(t *testing.T) {
	m := observability.NewMetrics()
	m.ObserveEdit("add-curve")

	var buf bytes.Buffer
	require.NoError(t, m.WriteText(&buf))
	assert.Contains(t, buf.String(), `curvedit_edits_total{op="add-curve"} 1`)
	assert.Contains(t, buf.String(), "# TYPE curvedit_parse_duration_seconds histogram")
}
