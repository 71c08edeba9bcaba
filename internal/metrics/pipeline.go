package metrics

import "github.com/prometheus/client_golang/prometheus"

// Pipeline Prometheus metrics.
var (
	QueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pepdex",
			Name:      "queries_total",
			Help:      "Total classified queries",
		},
		[]string{"topic", "risk"},
	)

	BlockedQueriesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pepdex",
			Name:      "blocked_queries_total",
			Help:      "Total queries refused at classification",
		},
	)

	PipelineDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pepdex",
			Name:      "pipeline_duration_seconds",
			Help:      "End-to-end pipeline duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		},
		[]string{"topic"},
	)

	RedactionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pepdex",
			Name:      "redactions_total",
			Help:      "Total vendor redactions applied to generated text",
		},
	)

	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pepdex",
			Name:      "search_requests_total",
			Help:      "Total hybrid search backend requests",
		},
		[]string{"collection", "status"},
	)

	SearchRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pepdex",
			Name:      "search_request_duration_seconds",
			Help:      "Hybrid search request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"collection"},
	)

	GenerationRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pepdex",
			Name:      "generation_requests_total",
			Help:      "Total generation backend requests",
		},
		[]string{"model", "status"},
	)

	GenerationRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pepdex",
			Name:      "generation_request_duration_seconds",
			Help:      "Generation request duration in seconds",
			Buckets:   []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 30},
		},
		[]string{"model"},
	)

	GenerationTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pepdex",
			Name:      "generation_tokens_total",
			Help:      "Total generation tokens consumed",
		},
		[]string{"model", "type"},
	)

	EmbeddingRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pepdex",
			Name:      "embedding_requests_total",
			Help:      "Total query embedding requests",
		},
		[]string{"model", "status"},
	)
)

var pipelineMetricsRegistered bool

// RegisterPipelineMetrics registers pipeline metrics. Must be called once from main.
func RegisterPipelineMetrics() {
	if pipelineMetricsRegistered {
		return
	}
	prometheus.MustRegister(QueriesTotal)
	prometheus.MustRegister(BlockedQueriesTotal)
	prometheus.MustRegister(PipelineDuration)
	prometheus.MustRegister(RedactionsTotal)
	prometheus.MustRegister(SearchRequestsTotal)
	prometheus.MustRegister(SearchRequestDuration)
	prometheus.MustRegister(GenerationRequestsTotal)
	prometheus.MustRegister(GenerationRequestDuration)
	prometheus.MustRegister(GenerationTokensTotal)
	prometheus.MustRegister(EmbeddingRequestsTotal)
	pipelineMetricsRegistered = true
}
