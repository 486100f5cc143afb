package services

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"ev-range-service/internal/core/domain"
	"ev-range-service/internal/core/ports/output"
)

// ArtifactSource selects where the model artifact is read from.
type ArtifactSource struct {
	// Path is used as is when no locator is configured.
	Path string

	// ModelName and VersionName are passed to the locator.
	ModelName   string
	VersionName string
}

type ModelArtifactService struct {
	loader  ports.ModelLoader
	locator ports.ArtifactLocator
}

// NewModelArtifactService creates the service. locator may be nil, in which
// case ArtifactSource.Path is loaded directly.
func NewModelArtifactService(loader ports.ModelLoader, locator ports.ArtifactLocator) *ModelArtifactService {
	return &ModelArtifactService{loader: loader, locator: locator}
}

// Resolve returns the local path of the artifact described by src.
func (s *ModelArtifactService) Resolve(ctx context.Context, src ArtifactSource) (string, error) {
	if s.locator == nil {
		if src.Path == "" {
			return "", domain.ErrArtifactNotFound
		}
		return src.Path, nil
	}
	if src.ModelName == "" {
		return "", fmt.Errorf("%w: registry model name is required", domain.ErrArtifactNotFound)
	}

	path, err := s.locator.Locate(ctx, src.ModelName, src.VersionName)
	if err != nil {
		return "", fmt.Errorf("locate artifact for model %q: %w", src.ModelName, err)
	}
	return path, nil
}

// Load resolves and deserializes the artifact. It is called once at startup;
// any error means the service cannot serve predictions.
func (s *ModelArtifactService) Load(ctx context.Context, src ArtifactSource) (ports.Regressor, error) {
	path, err := s.Resolve(ctx, src)
	if err != nil {
		return nil, err
	}

	model, err := s.loader.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load model artifact %s: %w", path, err)
	}

	info := model.Info()
	log.WithFields(log.Fields{
		"path":     path,
		"model":    info.Name,
		"version":  info.Version,
		"kind":     info.Kind,
		"features": info.FeatureCount,
	}).Info("model artifact loaded")

	return model, nil
}
