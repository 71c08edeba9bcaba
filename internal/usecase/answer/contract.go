package answer

import (
	"context"

	"github.com/pepdex-ai/pepdex/internal/domain"
)

// Classifier turns raw query text into a classification. Never fails.
type Classifier interface {
	Classify(query string) domain.Classification
}

// Retriever returns context documents for a classified query. Best-effort:
// backend failures surface as an empty slice.
type Retriever interface {
	Retrieve(ctx context.Context, c domain.Classification, query string) []domain.RetrievedDocument
}

// PromptBuilder assembles the generation message sequence.
type PromptBuilder interface {
	Build(
		c domain.Classification,
		docs []domain.RetrievedDocument,
		profile *domain.Profile,
		history []domain.Message,
		query string,
	) []domain.Message
}

// Generator produces answer text. Never fails: provider errors degrade to a
// fixed apology inside the generator.
type Generator interface {
	Generate(ctx context.Context, messages []domain.Message) string
}

// SafetyFilter redacts disallowed content from generated text.
type SafetyFilter interface {
	Apply(text string) (redacted string, redactions int)
}

// Annotator resolves disclaimers and builds follow-up suggestions.
type Annotator interface {
	Disclaimers(tags []string) []string
	FollowUps(c domain.Classification) []string
}

// ProfileReader supplies the optional user snapshot. domain.ErrNotFound is
// the valid anonymous/new-user state.
type ProfileReader interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
}
