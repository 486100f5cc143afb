package regressor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"ev-range-service/internal/core/domain"
)

// Model is a loaded regressor. It is never modified after LoadFile returns and
// is safe for concurrent use.
type Model struct {
	info         domain.ModelInfo
	featureNames []string

	init         float64
	learningRate float64
	trees        []tree

	coef      []float64
	intercept float64
}

func (m *Model) FeatureNames() []string {
	cp := make([]string, len(m.featureNames))
	copy(cp, m.featureNames)
	return cp
}

func (m *Model) Info() domain.ModelInfo { return m.info }

// Predict evaluates the model on values ordered as FeatureNames.
func (m *Model) Predict(values []float64) (float64, error) {
	if len(values) != len(m.featureNames) {
		return 0, fmt.Errorf("%w: got %d values, model expects %d", domain.ErrSchemaMismatch, len(values), len(m.featureNames))
	}

	switch m.info.Kind {
	case KindLinear:
		return floats.Dot(m.coef, values) + m.intercept, nil
	default:
		outputs := make([]float64, len(m.trees))
		for i, t := range m.trees {
			outputs[i] = t.predict(values)
		}
		return m.init + m.learningRate*floats.Sum(outputs), nil
	}
}
