package prometheus

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_RecordPrediction(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewRecorder(reg)
	require.NoError(t, err)

	rec.RecordPrediction(420, 2*time.Millisecond)
	rec.RecordPrediction(310, time.Millisecond)
	rec.RecordFailure("schema_mismatch")

	r := rec.(*recorder)
	assert.Equal(t, 2.0, testutil.ToFloat64(r.predictions.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.predictions.WithLabelValues("schema_mismatch")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.latency))
}

func TestRecorder_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewRecorder(reg)
	require.NoError(t, err)
	second, err := NewRecorder(reg)
	require.NoError(t, err)

	first.RecordFailure("model_error")
	second.RecordFailure("model_error")

	r := second.(*recorder)
	assert.Equal(t, 2.0, testutil.ToFloat64(r.predictions.WithLabelValues("model_error")))
}
