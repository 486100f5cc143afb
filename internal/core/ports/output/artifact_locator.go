package ports

import "context"

// ArtifactLocator resolves where the model artifact lives on local disk.
type ArtifactLocator interface {
	// Locate returns the artifact path for the given registered model name and
	// optional version name. An empty version selects the default or newest
	// ready version.
	Locate(ctx context.Context, modelName, versionName string) (string, error)
}
