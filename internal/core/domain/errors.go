package domain

import "errors"

// ============================================================================
// Model Errors
// ============================================================================

var (
	ErrModelNotLoaded         = errors.New("model is not loaded")
	ErrArtifactNotFound       = errors.New("model artifact not found")
	ErrInvalidArtifact        = errors.New("invalid model artifact")
	ErrUnsupportedModelKind   = errors.New("unsupported model kind")
	ErrUnsupportedArtifactURI = errors.New("unsupported artifact uri")
)

// ============================================================================
// Prediction Errors
// ============================================================================

var (
	ErrSchemaMismatch  = errors.New("feature vector does not match model schema")
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidInput    = errors.New("invalid vehicle specification")
)
