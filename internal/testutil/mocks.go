package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"ev-range-service/internal/core/domain"
	"ev-range-service/internal/core/encoder"
	"ev-range-service/internal/core/ports/output"
)

// MockRegressor is a mock of ports.Regressor.
type MockRegressor struct {
	mock.Mock
}

func (m *MockRegressor) FeatureNames() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockRegressor) Predict(values []float64) (float64, error) {
	args := m.Called(values)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockRegressor) Info() domain.ModelInfo {
	args := m.Called()
	return args.Get(0).(domain.ModelInfo)
}

// NewMockRegressor returns a regressor mock that accepts the encoder schema
// and reports info.
func NewMockRegressor(info domain.ModelInfo) *MockRegressor {
	m := new(MockRegressor)
	m.On("FeatureNames").Return(encoder.Schema()).Maybe()
	m.On("Info").Return(info).Maybe()
	return m
}

// MockModelLoader is a mock of ports.ModelLoader.
type MockModelLoader struct {
	mock.Mock
}

func (m *MockModelLoader) LoadFile(path string) (ports.Regressor, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ports.Regressor), args.Error(1)
}

// MockArtifactLocator is a mock of ports.ArtifactLocator.
type MockArtifactLocator struct {
	mock.Mock
}

func (m *MockArtifactLocator) Locate(ctx context.Context, modelName, versionName string) (string, error) {
	args := m.Called(ctx, modelName, versionName)
	return args.String(0), args.Error(1)
}

// MockRecorder is a mock of ports.PredictionRecorder.
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) RecordPrediction(rangeKm float64, latency time.Duration) {
	m.Called(rangeKm, latency)
}

func (m *MockRecorder) RecordFailure(reason string) {
	m.Called(reason)
}
