// Package corpus implements the hybrid search backend over the Redis Query
// Engine: a KNN vector leg and a BM25 text leg per collection, fused by a
// blend-weighted reciprocal rank score.
package corpus

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/rueidis"
	"go.uber.org/zap"

	"github.com/pepdex-ai/pepdex/internal/domain"
	"github.com/pepdex-ai/pepdex/internal/metrics"
	"github.com/pepdex-ai/pepdex/internal/usecase/retrieve"
)

// Embedder vectorizes query text for the KNN leg.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Collection hash field names returned per collection.
var (
	referenceFields = []string{"title", "source_type", "citation", "content", "url", "peptide"}
	outcomeFields   = []string{"peptide", "duration_weeks", "overall_efficacy", "outcome_narrative"}
)

// Repo is the rueidis-backed hybrid index.
type Repo struct {
	client rueidis.Client
	embed  Embedder
	prefix string
	logger *zap.Logger
}

// New creates the corpus repository.
func New(client rueidis.Client, embed Embedder, keyPrefix string, logger *zap.Logger) *Repo {
	if keyPrefix == "" {
		keyPrefix = "pepdex:"
	}
	return &Repo{client: client, embed: embed, prefix: keyPrefix, logger: logger}
}

var _ retrieve.Index = (*Repo)(nil)

// HybridSearch implements retrieve.Index. The reference collection is always
// searched; the outcome collection joins when requested. The entity filter is
// advisory: if the filtered query fails, the search is retried unfiltered.
// An error is returned only when every leg failed.
func (r *Repo) HybridSearch(
	ctx context.Context, params retrieve.SearchParams,
) ([]domain.RetrievedDocument, error) {
	collections := []domain.Collection{domain.CollectionReference}
	if params.IncludeOutcomes {
		collections = append(collections, domain.CollectionOutcomes)
	}

	vector := r.embedQuery(ctx, params.Query)

	var docs []domain.RetrievedDocument
	var lastErr error
	for _, col := range collections {
		hits, err := r.searchCollection(ctx, col, params, vector)
		if err != nil {
			lastErr = err
			metrics.SearchRequestsTotal.WithLabelValues(string(col), "error").Inc()
			r.logger.Warn("collection search failed",
				zap.String("collection", string(col)), zap.Error(err))
			continue
		}
		metrics.SearchRequestsTotal.WithLabelValues(string(col), "success").Inc()
		docs = append(docs, hitsToDocuments(hits, col)...)
	}

	if len(docs) == 0 && lastErr != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSearchProviderError, lastErr)
	}
	return docs, nil
}

// embedQuery vectorizes the query best-effort. Without a vector the search
// degrades to its lexical leg only.
func (r *Repo) embedQuery(ctx context.Context, query string) []float32 {
	vector, err := r.embed.Embed(ctx, query)
	if err != nil {
		r.logger.Warn("query embedding failed, lexical search only", zap.Error(err))
		return nil
	}
	return vector
}

// searchCollection runs both legs against one collection and fuses them.
func (r *Repo) searchCollection(
	ctx context.Context, col domain.Collection,
	params retrieve.SearchParams, vector []float32,
) ([]hit, error) {
	start := time.Now()
	defer func() {
		metrics.SearchRequestDuration.WithLabelValues(string(col)).Observe(time.Since(start).Seconds())
	}()

	filter := entityFilter(params.Entities)

	var knnHits, bm25Hits []hit
	var knnErr, bm25Err error

	if len(vector) > 0 {
		knnHits, knnErr = r.searchKNN(ctx, col, vector, filter, params.Limit)
		if knnErr != nil && filter != "" {
			// Advisory filter: retry without it rather than failing.
			knnHits, knnErr = r.searchKNN(ctx, col, vector, "", params.Limit)
		}
	}

	bm25Hits, bm25Err = r.searchBM25(ctx, col, params.Query, filter, params.Limit)
	if bm25Err != nil && filter != "" {
		bm25Hits, bm25Err = r.searchBM25(ctx, col, params.Query, "", params.Limit)
	}

	if knnErr != nil && bm25Err != nil {
		return nil, fmt.Errorf("knn: %v; bm25: %w", knnErr, bm25Err)
	}

	return fuseWeighted(knnHits, bm25Hits, params.Alpha, params.Limit), nil
}

// searchKNN runs the vector leg via FT.SEARCH.
func (r *Repo) searchKNN(
	ctx context.Context, col domain.Collection,
	vector []float32, filter string, topK int,
) ([]hit, error) {
	knnPart := fmt.Sprintf("[KNN %d @vector $BLOB]", topK)
	queryStr := "*=>" + knnPart
	if filter != "" {
		queryStr = fmt.Sprintf("(%s)=>%s", filter, knnPart)
	}

	fields := append(collectionFields(col), "__vector_score")
	args := []string{r.indexName(col), queryStr,
		"RETURN", fmt.Sprint(len(fields))}
	args = append(args, fields...)
	args = append(args, "PARAMS", "2", "BLOB", vectorToBytes(vector), "DIALECT", "2")

	cmd := r.client.B().Arbitrary("FT.SEARCH").Args(args...).Build()
	raw, err := r.client.Do(ctx, cmd).ToArray()
	if err != nil {
		return nil, fmt.Errorf("knn search %s: %w", col, err)
	}

	return parseKNNReply(raw, r.keyPrefix(col)), nil
}

// searchBM25 runs the text leg via FT.SEARCH.
func (r *Repo) searchBM25(
	ctx context.Context, col domain.Collection,
	query, filter string, topK int,
) ([]hit, error) {
	textPart := fmt.Sprintf("@content:(%s)", escapeQuery(query))
	if col == domain.CollectionOutcomes {
		textPart = fmt.Sprintf("@outcome_narrative:(%s)", escapeQuery(query))
	}
	queryStr := textPart
	if filter != "" {
		queryStr = filter + " " + textPart
	}

	fields := collectionFields(col)
	args := []string{r.indexName(col), queryStr,
		"RETURN", fmt.Sprint(len(fields))}
	args = append(args, fields...)
	args = append(args, "WITHSCORES", "LIMIT", "0", fmt.Sprint(topK), "DIALECT", "2")

	cmd := r.client.B().Arbitrary("FT.SEARCH").Args(args...).Build()
	raw, err := r.client.Do(ctx, cmd).ToArray()
	if err != nil {
		return nil, fmt.Errorf("bm25 search %s: %w", col, err)
	}

	return parseBM25Reply(raw, r.keyPrefix(col)), nil
}

func (r *Repo) indexName(col domain.Collection) string {
	return fmt.Sprintf("%s%s:idx", r.prefix, col)
}

func (r *Repo) keyPrefix(col domain.Collection) string {
	return fmt.Sprintf("%s%s:", r.prefix, col)
}

func collectionFields(col domain.Collection) []string {
	if col == domain.CollectionOutcomes {
		return outcomeFields
	}
	return referenceFields
}

// entityFilter builds the tag pre-filter for detected compounds.
func entityFilter(entities []string) string {
	if len(entities) == 0 {
		return ""
	}
	escaped := make([]string, len(entities))
	for i, e := range entities {
		escaped[i] = tagEscaper.Replace(e)
	}
	return fmt.Sprintf("@peptide:{%s}", strings.Join(escaped, "|"))
}
