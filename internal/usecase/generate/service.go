package generate

import (
	"context"

	"go.uber.org/zap"

	"github.com/pepdex-ai/pepdex/internal/domain"
)

// Apology is the fixed user-safe answer returned when generation fails.
// Generation failure must degrade to a visible answer, never an error
// surfaced to the caller.
const Apology = "I apologize, but I ran into a problem generating a response. Please try again."

// Generation call settings, fixed for every request.
const (
	Temperature float32 = 0.7
	MaxTokens           = 2000
)

// Invoker issues the generation call and absorbs its failures.
type Invoker struct {
	completer Completer
	logger    *zap.Logger
}

// New creates a generation invoker.
func New(completer Completer, logger *zap.Logger) *Invoker {
	return &Invoker{completer: completer, logger: logger}
}

// Generate returns the completion text, or the fixed apology on any failure
// (timeout, provider error, empty completion).
func (i *Invoker) Generate(ctx context.Context, messages []domain.Message) string {
	text, err := i.completer.Complete(ctx, messages, Temperature, MaxTokens)
	if err != nil {
		i.logger.Error("generation failed, returning apology", zap.Error(err))
		return Apology
	}
	if text == "" {
		i.logger.Error("generation returned empty text, returning apology")
		return Apology
	}
	return text
}
