package postgres

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ev-range-service/internal/core/domain"
	"ev-range-service/internal/core/ports/output"
)

// rowQuerier is the subset of pgxpool.Pool used by the locator.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type artifactLocator struct {
	db rowQuerier
}

// NewArtifactLocator resolves model artifacts through the model registry
// tables (registered_model, model_version).
func NewArtifactLocator(pool *pgxpool.Pool) ports.ArtifactLocator {
	return &artifactLocator{db: pool}
}

const locateQuery = `
	SELECT mv.uri
	FROM model_version mv
	JOIN registered_model rm ON rm.id = mv.registered_model_id
	WHERE rm.name = $1
		AND ($2 = '' OR mv.name = $2)
		AND mv.status = 'READY'
		AND mv.artifact_type = 'model-artifact'
	ORDER BY mv.is_default DESC, mv.created_at DESC
	LIMIT 1
`

func (l *artifactLocator) Locate(ctx context.Context, modelName, versionName string) (string, error) {
	var uri string
	if err := l.db.QueryRow(ctx, locateQuery, modelName, versionName).Scan(&uri); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrArtifactNotFound
		}
		return "", fmt.Errorf("query model version uri: %w", err)
	}
	return LocalPath(uri)
}

// LocalPath converts a registry uri into a local file path. Only file uris
// and bare paths are accepted.
func LocalPath(uri string) (string, error) {
	if uri == "" {
		return "", fmt.Errorf("%w: empty uri", domain.ErrUnsupportedArtifactURI)
	}
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnsupportedArtifactURI, err)
	}
	switch u.Scheme {
	case "":
		return filepath.Clean(uri), nil
	case "file":
		if u.Host != "" && u.Host != "localhost" {
			return "", fmt.Errorf("%w: remote file host %q", domain.ErrUnsupportedArtifactURI, u.Host)
		}
		return filepath.Clean(u.Path), nil
	default:
		return "", fmt.Errorf("%w: scheme %q", domain.ErrUnsupportedArtifactURI, u.Scheme)
	}
}
