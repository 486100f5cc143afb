package ports

import "time"

// PredictionRecorder receives prediction outcomes for monitoring.
type PredictionRecorder interface {
	RecordPrediction(rangeKm float64, latency time.Duration)
	RecordFailure(reason string)
}

// NopRecorder discards everything.
type NopRecorder struct{}

func (NopRecorder) RecordPrediction(float64, time.Duration) {}
func (NopRecorder) RecordFailure(string)                    {}
