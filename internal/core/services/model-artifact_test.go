package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ev-range-service/internal/core/domain"
	"ev-range-service/internal/testutil"
)

func TestModelArtifactService_Load_FromPath(t *testing.T) {
	loader := new(testutil.MockModelLoader)
	model := testutil.NewMockRegressor(testInfo)
	svc := NewModelArtifactService(loader, nil)

	loader.On("LoadFile", "/models/ev.json").Return(model, nil)

	result, err := svc.Load(context.Background(), ArtifactSource{Path: "/models/ev.json"})
	require.NoError(t, err)
	assert.Equal(t, "ev-range", result.Info().Name)
	loader.AssertExpectations(t)
}

func TestModelArtifactService_Load_MissingPath(t *testing.T) {
	loader := new(testutil.MockModelLoader)
	svc := NewModelArtifactService(loader, nil)

	_, err := svc.Load(context.Background(), ArtifactSource{})
	assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
	loader.AssertNotCalled(t, "LoadFile", mock.Anything)
}

func TestModelArtifactService_Load_LoaderError(t *testing.T) {
	loader := new(testutil.MockModelLoader)
	svc := NewModelArtifactService(loader, nil)

	loader.On("LoadFile", "missing.json").Return(nil, domain.ErrArtifactNotFound)

	_, err := svc.Load(context.Background(), ArtifactSource{Path: "missing.json"})
	assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
	assert.Contains(t, err.Error(), "missing.json")
}

func TestModelArtifactService_Resolve_WithLocator(t *testing.T) {
	loader := new(testutil.MockModelLoader)
	locator := new(testutil.MockArtifactLocator)
	svc := NewModelArtifactService(loader, locator)

	locator.On("Locate", mock.Anything, "ev-range", "").Return("/registry/ev-range/v3.json", nil)

	path, err := svc.Resolve(context.Background(), ArtifactSource{Path: "ignored.json", ModelName: "ev-range"})
	require.NoError(t, err)
	assert.Equal(t, "/registry/ev-range/v3.json", path)
}

func TestModelArtifactService_Resolve_LocatorRequiresName(t *testing.T) {
	svc := NewModelArtifactService(new(testutil.MockModelLoader), new(testutil.MockArtifactLocator))

	_, err := svc.Resolve(context.Background(), ArtifactSource{})
	assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
}

func TestModelArtifactService_Resolve_LocatorError(t *testing.T) {
	locator := new(testutil.MockArtifactLocator)
	svc := NewModelArtifactService(new(testutil.MockModelLoader), locator)

	locator.On("Locate", mock.Anything, "ev-range", "v2").Return("", errors.New("connection refused"))

	_, err := svc.Resolve(context.Background(), ArtifactSource{ModelName: "ev-range", VersionName: "v2"})
	assert.EqualError(t, err, `locate artifact for model "ev-range": connection refused`)
}
