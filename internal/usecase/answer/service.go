// Package answer orchestrates one query through the full pipeline:
// classify, retrieve, assemble prompt, generate, filter, annotate.
package answer

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/pepdex-ai/pepdex/internal/domain"
	"github.com/pepdex-ai/pepdex/internal/metrics"
)

// Refusal is the fixed safe-refusal answer for blocked queries. A blocked
// query is an intentional terminal state, not a failure.
const Refusal = "I'm not able to help with this topic. If you are experiencing a medical emergency, contact emergency services or a healthcare provider immediately."

// blockedDisclaimer annotates the refusal envelope.
const blockedDisclaimer = "This query cannot be answered by this platform."

// maxSources caps how many retrieved documents become envelope citations.
const maxSources = 5

// Service sequences the pipeline stages and assembles the response envelope.
// It holds no cross-request state; independent requests run fully
// concurrently without coordination.
type Service struct {
	classifier Classifier
	retriever  Retriever
	prompter   PromptBuilder
	generator  Generator
	filter     SafetyFilter
	annotator  Annotator
	profiles   ProfileReader
	model      string
	logger     *zap.Logger
}

// New creates the pipeline orchestrator. profiles may be nil when no
// profile provider is configured.
func New(
	classifier Classifier,
	retriever Retriever,
	prompter PromptBuilder,
	generator Generator,
	filter SafetyFilter,
	annotator Annotator,
	profiles ProfileReader,
	model string,
	logger *zap.Logger,
) *Service {
	return &Service{
		classifier: classifier,
		retriever:  retriever,
		prompter:   prompter,
		generator:  generator,
		filter:     filter,
		annotator:  annotator,
		profiles:   profiles,
		model:      model,
		logger:     logger,
	}
}

// Respond answers one query. It never returns an error: every dependency
// boundary degrades per its own contract, so the caller always receives a
// complete envelope.
func (s *Service) Respond(
	ctx context.Context, query, userID string, history []domain.Message,
) domain.Envelope {
	start := time.Now()

	c := s.classifier.Classify(query)
	s.logger.Info("query classified",
		zap.String("topic", string(c.Topic)),
		zap.String("risk", string(c.Risk)),
		zap.String("intent", c.Intent),
		zap.Float64("confidence", c.Confidence),
		zap.Strings("entities", c.Entities),
	)
	metrics.QueriesTotal.WithLabelValues(string(c.Topic), string(c.Risk)).Inc()

	if c.Risk == domain.RiskBlocked {
		metrics.BlockedQueriesTotal.Inc()
		return s.blockedEnvelope(c, start)
	}

	docs := s.retriever.Retrieve(ctx, c, query)

	messages := s.prompter.Build(c, docs, s.loadProfile(ctx, userID), history, query)

	text := s.generator.Generate(ctx, messages)

	text, redactions := s.filter.Apply(text)
	if redactions > 0 {
		metrics.RedactionsTotal.Add(float64(redactions))
		s.logger.Warn("vendor content redacted from answer",
			zap.Int("redactions", redactions))
	}

	env := domain.Envelope{
		Answer:         text,
		Sources:        formatSources(docs),
		Disclaimers:    s.annotator.Disclaimers(c.DisclaimerTags),
		FollowUps:      s.annotator.FollowUps(c),
		Classification: c,
		Metadata: domain.Metadata{
			Model:         s.model,
			ContextChunks: len(docs),
			ElapsedMS:     time.Since(start).Milliseconds(),
		},
	}
	metrics.PipelineDuration.WithLabelValues(string(c.Topic)).Observe(time.Since(start).Seconds())
	return env
}

// loadProfile fetches the user snapshot best-effort. No user id, a missing
// profile, or a provider failure all mean answering without one.
func (s *Service) loadProfile(ctx context.Context, userID string) *domain.Profile {
	if s.profiles == nil || userID == "" {
		return nil
	}
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("profile fetch failed, answering without profile",
				zap.String("user_id", userID), zap.Error(err))
		}
		return nil
	}
	return p
}

// blockedEnvelope is the fixed refusal: no retrieval, no generation.
func (s *Service) blockedEnvelope(c domain.Classification, start time.Time) domain.Envelope {
	return domain.Envelope{
		Answer:         Refusal,
		Disclaimers:    []string{blockedDisclaimer},
		Classification: c,
		Metadata: domain.Metadata{
			Model:     s.model,
			Blocked:   true,
			ElapsedMS: time.Since(start).Milliseconds(),
		},
	}
}

// formatSources turns the top retrieved documents into citations.
func formatSources(docs []domain.RetrievedDocument) []domain.Source {
	n := min(len(docs), maxSources)
	sources := make([]domain.Source, 0, n)
	for _, doc := range docs[:n] {
		title := doc.Property("title")
		if title == "" {
			title = "Untitled"
		}
		sourceType := doc.Property("source_type")
		if sourceType == "" {
			sourceType = "unknown"
		}
		sources = append(sources, domain.Source{
			Title:      title,
			Citation:   doc.Property("citation"),
			URL:        doc.Property("url"),
			SourceType: sourceType,
		})
	}
	return sources
}
