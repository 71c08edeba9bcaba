package generate

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/pepdex-ai/pepdex/internal/domain"
)

type stubCompleter struct {
	text            string
	err             error
	lastTemperature float32
	lastMaxTokens   int
}

func (s *stubCompleter) Complete(
	_ context.Context, _ []domain.Message, temperature float32, maxTokens int,
) (string, error) {
	s.lastTemperature = temperature
	s.lastMaxTokens = maxTokens
	return s.text, s.err
}

func TestGenerate_ReturnsCompletion(t *testing.T) {
	completer := &stubCompleter{text: "Peptides are short chains of amino acids."}
	inv := New(completer, zap.NewNop())

	got := inv.Generate(context.Background(), nil)

	if got != "Peptides are short chains of amino acids." {
		t.Errorf("got %q", got)
	}
	if completer.lastTemperature != Temperature {
		t.Errorf("temperature: got %v, want %v", completer.lastTemperature, Temperature)
	}
	if completer.lastMaxTokens != MaxTokens {
		t.Errorf("max tokens: got %d, want %d", completer.lastMaxTokens, MaxTokens)
	}
}

func TestGenerate_ErrorReturnsApology(t *testing.T) {
	inv := New(&stubCompleter{err: errors.New("provider timeout")}, zap.NewNop())

	if got := inv.Generate(context.Background(), nil); got != Apology {
		t.Errorf("got %q, want apology", got)
	}
}

func TestGenerate_EmptyCompletionReturnsApology(t *testing.T) {
	inv := New(&stubCompleter{text: ""}, zap.NewNop())

	if got := inv.Generate(context.Background(), nil); got != Apology {
		t.Errorf("got %q, want apology", got)
	}
}
