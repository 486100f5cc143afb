package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	ports "ev-range-service/internal/core/ports/output"
)

type recorder struct {
	predictions *prometheus.CounterVec
	latency     prometheus.Histogram
	rangeKm     prometheus.Histogram
}

// NewRecorder registers prediction metrics on reg. If reg is nil, the default
// registerer is used. Collectors that are already registered are reused.
func NewRecorder(reg prometheus.Registerer) (ports.PredictionRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	predictions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ev_range_predictions_total",
		Help: "Total number of range predictions by outcome",
	}, []string{"outcome"})
	latency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "ev_range_prediction_duration_seconds",
		Help:    "Time spent encoding and evaluating the model",
		Buckets: []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05},
	})
	rangeKm := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "ev_range_predicted_km",
		Help:    "Distribution of predicted driving ranges",
		Buckets: prometheus.LinearBuckets(100, 50, 12),
	})

	var err error
	if predictions, err = register(reg, predictions); err != nil {
		return nil, err
	}
	if latency, err = register(reg, latency); err != nil {
		return nil, err
	}
	if rangeKm, err = register(reg, rangeKm); err != nil {
		return nil, err
	}

	return &recorder{predictions: predictions, latency: latency, rangeKm: rangeKm}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (r *recorder) RecordPrediction(rangeKm float64, latency time.Duration) {
	r.predictions.WithLabelValues("success").Inc()
	r.latency.Observe(latency.Seconds())
	r.rangeKm.Observe(rangeKm)
}

func (r *recorder) RecordFailure(reason string) {
	r.predictions.WithLabelValues(reason).Inc()
}
