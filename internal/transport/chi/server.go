// Package chi holds the HTTP transport: the chat route, health, metrics,
// and the bearer-auth middleware.
package chi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/pepdex-ai/pepdex/internal/domain"
)

const maxHistoryMessages = 50

// Responder is the pipeline entry point the transport calls.
type Responder interface {
	Respond(ctx context.Context, query, userID string, history []domain.Message) domain.Envelope
}

// HealthChecker reports readiness of one dependency.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Server exposes the pipeline over HTTP.
type Server struct {
	pipeline Responder
	checks   map[string]HealthChecker
	logger   *zap.Logger
}

// NewServer creates the HTTP API server. checks maps dependency names to
// their readiness probes.
func NewServer(pipeline Responder, checks map[string]HealthChecker, logger *zap.Logger) *Server {
	return &Server{pipeline: pipeline, checks: checks, logger: logger}
}

// Mount registers all routes on the router.
func (s *Server) Mount(r chi.Router) {
	r.Post("/v1/chat", s.Chat)
	r.Get("/health", s.HealthCheck)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

type chatRequest struct {
	Query   string        `json:"query"`
	UserID  string        `json:"user_id,omitempty"`
	History []chatMessage `json:"conversation_history,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Response          string            `json:"response"`
	Sources           []sourceItem      `json:"sources"`
	Disclaimers       []string          `json:"disclaimers"`
	FollowUpQuestions []string          `json:"follow_up_questions"`
	Classification    classificationOut `json:"classification"`
	Metadata          metadataOut       `json:"metadata"`
}

type sourceItem struct {
	Title    string `json:"title"`
	Citation string `json:"citation,omitempty"`
	URL      string `json:"url,omitempty"`
	Type     string `json:"type"`
}

type classificationOut struct {
	Type       string   `json:"type"`
	RiskLevel  string   `json:"risk_level"`
	Peptides   []string `json:"peptides"`
	Confidence float64  `json:"confidence"`
}

type metadataOut struct {
	Model         string `json:"model"`
	ContextChunks int    `json:"context_chunks"`
	ElapsedMS     int64  `json:"elapsed_ms"`
	Blocked       bool   `json:"blocked"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Chat handles POST /v1/chat.
func (s *Server) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid request body: "+err.Error())
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", "query is required")
		return
	}
	if len(req.History) > maxHistoryMessages {
		req.History = req.History[len(req.History)-maxHistoryMessages:]
	}

	history := make([]domain.Message, 0, len(req.History))
	for _, m := range req.History {
		role := m.Role
		if role != domain.RoleAssistant {
			role = domain.RoleUser
		}
		history = append(history, domain.Message{Role: role, Content: m.Content})
	}

	env := s.pipeline.Respond(r.Context(), req.Query, req.UserID, history)

	writeJSON(w, http.StatusOK, envelopeToResponse(env))
}

// HealthCheck handles GET /health. Returns 503 when any dependency is down.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	httpStatus := http.StatusOK

	checks := make(map[string]string, len(s.checks))
	for name, probe := range s.checks {
		if err := probe.HealthCheck(r.Context()); err != nil {
			s.logger.Warn("health check failed", zap.String("dependency", name), zap.Error(err))
			checks[name] = "down"
			status = "degraded"
			httpStatus = http.StatusServiceUnavailable
			continue
		}
		checks[name] = "up"
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": status,
		"checks": checks,
	})
}

func envelopeToResponse(env domain.Envelope) chatResponse {
	sources := make([]sourceItem, 0, len(env.Sources))
	for _, src := range env.Sources {
		sources = append(sources, sourceItem{
			Title:    src.Title,
			Citation: src.Citation,
			URL:      src.URL,
			Type:     src.SourceType,
		})
	}

	return chatResponse{
		Response:          env.Answer,
		Sources:           sources,
		Disclaimers:       orEmpty(env.Disclaimers),
		FollowUpQuestions: orEmpty(env.FollowUps),
		Classification: classificationOut{
			Type:       string(env.Classification.Topic),
			RiskLevel:  string(env.Classification.Risk),
			Peptides:   orEmpty(env.Classification.Entities),
			Confidence: env.Classification.Confidence,
		},
		Metadata: metadataOut{
			Model:         env.Metadata.Model,
			ContextChunks: env.Metadata.ContextChunks,
			ElapsedMS:     env.Metadata.ElapsedMS,
			Blocked:       env.Metadata.Blocked,
		},
	}
}

// orEmpty keeps list fields as [] in JSON rather than null.
func orEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}
