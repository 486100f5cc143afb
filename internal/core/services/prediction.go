package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"ev-range-service/internal/core/domain"
	"ev-range-service/internal/core/encoder"
	"ev-range-service/internal/core/ports/output"
)

// PredictionService predicts driving range with a model loaded once at
// startup. The model must be loaded before the service is constructed and is
// shared read-only by all requests.
type PredictionService struct {
	model    ports.Regressor
	recorder ports.PredictionRecorder
}

func NewPredictionService(model ports.Regressor, recorder ports.PredictionRecorder) *PredictionService {
	if recorder == nil {
		recorder = ports.NopRecorder{}
	}
	return &PredictionService{model: model, recorder: recorder}
}

// Predict encodes spec, checks the vector against the model schema and runs
// the model.
func (s *PredictionService) Predict(ctx context.Context, spec domain.VehicleSpec) (*domain.Prediction, error) {
	if s.model == nil {
		return nil, domain.ErrModelNotLoaded
	}

	start := time.Now()
	vector := encoder.Encode(spec)
	if err := CheckSchema(vector, s.model.FeatureNames()); err != nil {
		s.recorder.RecordFailure("schema_mismatch")
		return nil, err
	}

	rangeKm, err := s.model.Predict(vector.Values())
	if err != nil {
		s.recorder.RecordFailure("model_error")
		return nil, fmt.Errorf("predict range: %w", err)
	}
	s.recorder.RecordPrediction(rangeKm, time.Since(start))

	info := s.model.Info()
	prediction := &domain.Prediction{
		ID:              uuid.New().String(),
		RangeKm:         rangeKm,
		ProgressPercent: domain.ProgressPercent(rangeKm),
		ModelName:       info.Name,
		ModelVersion:    info.Version,
	}

	log.WithFields(log.Fields{
		"prediction_id": prediction.ID,
		"range_km":      rangeKm,
		"drivetrain":    spec.Drivetrain,
		"segment":       spec.Segment,
		"body_type":     spec.BodyType,
	}).Debug("range predicted")

	return prediction, nil
}

// ModelInfo describes the model serving predictions.
func (s *PredictionService) ModelInfo() (domain.ModelInfo, error) {
	if s.model == nil {
		return domain.ModelInfo{}, domain.ErrModelNotLoaded
	}
	return s.model.Info(), nil
}

// Ready reports whether a model is available.
func (s *PredictionService) Ready() bool { return s.model != nil }

// CheckSchema verifies that vector has exactly the expected columns in the
// expected order.
func CheckSchema(vector domain.FeatureVector, expected []string) error {
	names := vector.Names()
	if len(names) != len(expected) {
		return fmt.Errorf("%w: got %d features, model expects %d", domain.ErrSchemaMismatch, len(names), len(expected))
	}
	for i, name := range names {
		if name != expected[i] {
			return fmt.Errorf("%w: feature %d is %q, model expects %q", domain.ErrSchemaMismatch, i, name, expected[i])
		}
	}
	return nil
}
