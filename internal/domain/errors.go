package domain

import "errors"

var (
	// ErrNotFound signals a missing resource (e.g. an unknown user profile).
	ErrNotFound = errors.New("not found")
	// ErrSearchProviderError signals a failure of the hybrid search backend.
	ErrSearchProviderError = errors.New("search provider error")
	// ErrGenerationProviderError signals a failure of the generation backend.
	ErrGenerationProviderError = errors.New("generation provider error")
	// ErrEmptyCompletion signals that the generation backend returned no text.
	ErrEmptyCompletion = errors.New("empty completion")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
)
