package generate

import (
	"context"

	"github.com/pepdex-ai/pepdex/internal/domain"
)

// Completer is the generation backend: it returns the text of the top
// completion for a message sequence.
type Completer interface {
	Complete(ctx context.Context, messages []domain.Message, temperature float32, maxTokens int) (string, error)
}
