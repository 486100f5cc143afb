package ports

import "ev-range-service/internal/core/domain"

// Regressor is a loaded, read-only regression model.
type Regressor interface {
	// FeatureNames returns the ordered input columns the model was trained on
	FeatureNames() []string

	// Predict evaluates the model on values laid out in FeatureNames order.
	// It returns an error when len(values) differs from the model width.
	Predict(values []float64) (float64, error)

	// Info describes the loaded artifact
	Info() domain.ModelInfo
}

// ModelLoader deserializes a model artifact from local disk.
type ModelLoader interface {
	LoadFile(path string) (Regressor, error)
}
