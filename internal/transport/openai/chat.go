// Package openai holds the OpenAI-compatible API clients for generation and
// query embedding.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/pepdex-ai/pepdex/internal/domain"
	"github.com/pepdex-ai/pepdex/internal/metrics"
)

// Chat is the generation backend client.
type Chat struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// ChatConfig holds the generation provider settings.
type ChatConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Logger  *zap.Logger
}

// NewChat creates a chat completion client against an OpenAI-compatible API.
func NewChat(cfg *ChatConfig) *Chat {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &Chat{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		logger: cfg.Logger,
	}
}

// Model returns the configured model identifier.
func (c *Chat) Model() string { return c.model }

// Complete returns the text of the top completion with transport-level metrics.
func (c *Chat) Complete(
	ctx context.Context, messages []domain.Message, temperature float32, maxTokens int,
) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    toChatMessages(messages),
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, req)
	duration := time.Since(start)

	if err != nil {
		metrics.GenerationRequestsTotal.WithLabelValues(c.model, "error").Inc()
		return "", parseAPIError(err, domain.ErrGenerationProviderError)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		metrics.GenerationRequestsTotal.WithLabelValues(c.model, "error").Inc()
		return "", domain.ErrEmptyCompletion
	}

	metrics.GenerationRequestsTotal.WithLabelValues(c.model, "success").Inc()
	metrics.GenerationRequestDuration.WithLabelValues(c.model).Observe(duration.Seconds())
	if resp.Usage.TotalTokens > 0 {
		metrics.GenerationTokensTotal.WithLabelValues(c.model, "prompt").
			Add(float64(resp.Usage.PromptTokens))
		metrics.GenerationTokensTotal.WithLabelValues(c.model, "completion").
			Add(float64(resp.Usage.CompletionTokens))
	}

	return resp.Choices[0].Message.Content, nil
}

// CompleteStream streams completion chunks to onDelta in append order.
// The pipeline core does not require streaming; this keeps the transport
// compatible with callers that do.
func (c *Chat) CompleteStream(
	ctx context.Context, messages []domain.Message, temperature float32, maxTokens int,
	onDelta func(chunk string) error,
) error {
	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    toChatMessages(messages),
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Stream:      true,
	}

	stream, err := c.client.CreateChatCompletionStream(ctx, req)
	if err != nil {
		metrics.GenerationRequestsTotal.WithLabelValues(c.model, "error").Inc()
		return parseAPIError(err, domain.ErrGenerationProviderError)
	}
	defer stream.Close()

	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			metrics.GenerationRequestsTotal.WithLabelValues(c.model, "success").Inc()
			return nil
		}
		if err != nil {
			metrics.GenerationRequestsTotal.WithLabelValues(c.model, "error").Inc()
			return parseAPIError(err, domain.ErrGenerationProviderError)
		}
		if len(resp.Choices) == 0 {
			continue
		}
		if delta := resp.Choices[0].Delta.Content; delta != "" {
			if err := onDelta(delta); err != nil {
				return err
			}
		}
	}
}

func toChatMessages(messages []domain.Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, len(messages))
	for i, m := range messages {
		out[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}
	return out
}

// parseAPIError extracts a readable message from the API response and wraps
// it with the given sentinel for boundary mapping.
func parseAPIError(err error, sentinel error) error {
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if detail := extractDetail(reqErr.Body); detail != "" {
			return fmt.Errorf("api error %d: %s: %w", reqErr.HTTPStatusCode, detail, sentinel)
		}
		return fmt.Errorf("api error %d: %s: %w", reqErr.HTTPStatusCode, string(reqErr.Body), sentinel)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("api error %d: %s: %w", apiErr.HTTPStatusCode, apiErr.Message, sentinel)
	}

	return fmt.Errorf("%v: %w", err, sentinel)
}

// extractDetail extracts the "detail" field from a JSON error body.
func extractDetail(body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &parsed) == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	return ""
}
