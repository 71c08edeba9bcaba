package retrieve

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/pepdex-ai/pepdex/internal/domain"
)

// DefaultLimit caps how many documents one request retrieves.
const DefaultLimit = 10

// Blend weights per strategy. Higher alpha skews semantic.
const (
	alphaResearchHeavy   = 0.6
	alphaExperienceHeavy = 0.4
	alphaBalanced        = 0.5
)

// Service translates a classification into hybrid-search parameters and
// issues the call. Retrieval is best-effort: backend failures degrade to an
// empty result set so the pipeline can still answer from the model's own
// knowledge.
type Service struct {
	index  Index
	limit  int
	logger *zap.Logger
}

// New creates a retrieval adapter with the default document limit.
func New(index Index, logger *zap.Logger) *Service {
	return &Service{index: index, limit: DefaultLimit, logger: logger}
}

// WithLimit overrides the retrieval document limit.
func (s *Service) WithLimit(limit int) *Service {
	if limit > 0 {
		s.limit = limit
	}
	return s
}

// Retrieve returns documents ordered by descending relevance, truncated to
// the configured limit. The minimal strategy short-circuits without touching
// the backend.
func (s *Service) Retrieve(
	ctx context.Context, c domain.Classification, query string,
) []domain.RetrievedDocument {
	if c.Strategy == domain.StrategyMinimal {
		return nil
	}

	params := SearchParams{
		Query:    query,
		Limit:    s.limit,
		Entities: c.Entities,
	}

	switch c.Strategy {
	case domain.StrategyResearchHeavy:
		params.Alpha = alphaResearchHeavy
		params.IncludeOutcomes = false
	case domain.StrategyExperienceHeavy:
		params.Alpha = alphaExperienceHeavy
		params.IncludeOutcomes = true
	case domain.StrategyBalanced, domain.StrategyMinimal:
		params.Alpha = alphaBalanced
		params.IncludeOutcomes = true
	default:
		params.Alpha = alphaBalanced
		params.IncludeOutcomes = true
	}

	docs, err := s.index.HybridSearch(ctx, params)
	if err != nil {
		s.logger.Warn("hybrid search failed, answering without context",
			zap.String("strategy", string(c.Strategy)),
			zap.Error(err))
		return nil
	}

	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].Score > docs[j].Score
	})
	if len(docs) > s.limit {
		docs = docs[:s.limit]
	}
	return docs
}
