package retrieve

import (
	"context"

	"github.com/pepdex-ai/pepdex/internal/domain"
)

// SearchParams are the backend parameters one hybrid search call is issued with.
type SearchParams struct {
	Query string
	Limit int
	// Alpha is the lexical/semantic blend weight: 1.0 is fully semantic,
	// 0.0 fully lexical.
	Alpha float64
	// Entities is an advisory pre-filter; a backend that cannot honor it
	// must return unfiltered results rather than erroring.
	Entities []string
	// IncludeOutcomes adds the aggregated outcome-narrative collection to
	// the reference-material collection.
	IncludeOutcomes bool
}

// Index is the hybrid search backend consumed by the adapter.
type Index interface {
	HybridSearch(ctx context.Context, params SearchParams) ([]domain.RetrievedDocument, error)
}
