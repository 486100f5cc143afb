// Package regressor loads exported regression models from JSON artifacts and
// evaluates them.
package regressor

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"ev-range-service/internal/core/domain"
	"ev-range-service/internal/core/ports/output"
)

// Loader implements ports.ModelLoader for JSON artifacts.
type Loader struct{}

func NewLoader() ports.ModelLoader { return Loader{} }

func (Loader) LoadFile(path string) (ports.Regressor, error) {
	m, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// LoadFile reads and validates the artifact at path.
func LoadFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrArtifactNotFound, path)
		}
		return nil, fmt.Errorf("open artifact: %w", err)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, err
	}
	m.info.Path = path
	return m, nil
}

// Decode reads an artifact from r.
func Decode(r io.Reader) (*Model, error) {
	var a artifact
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&a); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", domain.ErrInvalidArtifact, err)
	}
	return build(a)
}

func build(a artifact) (*Model, error) {
	width := len(a.FeatureNames)
	if width == 0 {
		return nil, fmt.Errorf("%w: no feature names", domain.ErrInvalidArtifact)
	}
	seen := make(map[string]struct{}, width)
	for _, name := range a.FeatureNames {
		if name == "" {
			return nil, fmt.Errorf("%w: empty feature name", domain.ErrInvalidArtifact)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: duplicate feature %q", domain.ErrInvalidArtifact, name)
		}
		seen[name] = struct{}{}
	}

	m := &Model{
		info: domain.ModelInfo{
			Name:         a.Name,
			Version:      a.Version,
			Kind:         a.Kind,
			FeatureCount: width,
		},
		featureNames: append([]string(nil), a.FeatureNames...),
	}

	switch a.Kind {
	case KindGradientBoosting:
		if len(a.Trees) == 0 {
			return nil, fmt.Errorf("%w: gradient boosting model has no trees", domain.ErrInvalidArtifact)
		}
		m.init = a.Init
		m.learningRate = a.LearningRate
		m.trees = make([]tree, len(a.Trees))
		for i, ta := range a.Trees {
			t, err := newTree(ta, width)
			if err != nil {
				return nil, fmt.Errorf("tree %d: %w", i, err)
			}
			m.trees[i] = t
		}
	case KindLinear:
		if len(a.Coef) != width {
			return nil, fmt.Errorf("%w: %d coefficients for %d features", domain.ErrInvalidArtifact, len(a.Coef), width)
		}
		m.coef = append([]float64(nil), a.Coef...)
		m.intercept = a.Intercept
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedModelKind, a.Kind)
	}

	return m, nil
}
