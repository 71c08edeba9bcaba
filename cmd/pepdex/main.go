package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/rueidis"
	"go.uber.org/zap"

	"github.com/pepdex-ai/pepdex/internal/config"
	"github.com/pepdex-ai/pepdex/internal/lexicon"
	logpkg "github.com/pepdex-ai/pepdex/internal/logger"
	"github.com/pepdex-ai/pepdex/internal/metrics"
	corpusrepo "github.com/pepdex-ai/pepdex/internal/repository/corpus"
	profilerepo "github.com/pepdex-ai/pepdex/internal/repository/profile"
	"github.com/pepdex-ai/pepdex/internal/safety"
	chiTransport "github.com/pepdex-ai/pepdex/internal/transport/chi"
	openaiTransport "github.com/pepdex-ai/pepdex/internal/transport/openai"
	"github.com/pepdex-ai/pepdex/internal/usecase/answer"
	"github.com/pepdex-ai/pepdex/internal/usecase/classify"
	"github.com/pepdex-ai/pepdex/internal/usecase/followup"
	"github.com/pepdex-ai/pepdex/internal/usecase/generate"
	"github.com/pepdex-ai/pepdex/internal/usecase/prompt"
	"github.com/pepdex-ai/pepdex/internal/usecase/retrieve"
	"github.com/pepdex-ai/pepdex/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting pepdex API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("db_addrs", cfg.Database.Addrs),
		zap.String("generation_model", cfg.Generation.Model),
	)

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress: cfg.Database.Addrs,
		Password:    cfg.Database.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create database client", zap.Error(err))
	}
	defer client.Close()

	ctx := context.Background()
	readiness := time.Duration(cfg.Database.ReadinessTimeout) * time.Second
	if err := waitForReady(ctx, client, readiness); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register pipeline metrics explicitly (no init())
	metrics.RegisterPipelineMetrics()

	// Transport clients
	chat := openaiTransport.NewChat(&openaiTransport.ChatConfig{
		APIKey:  cfg.Generation.APIKey,
		BaseURL: cfg.Generation.BaseURL,
		Model:   cfg.Generation.Model,
		Logger:  logger,
	})
	embedder := openaiTransport.NewEmbedder(&openaiTransport.EmbedderConfig{
		APIKey:     cfg.Embedding.APIKey,
		BaseURL:    cfg.Embedding.BaseURL,
		Model:      cfg.Embedding.Model,
		Dimensions: cfg.Embedding.Dimensions,
		Logger:     logger,
	})

	// Repositories
	corpus := corpusrepo.New(client, embedder, cfg.Retrieval.KeyPrefix, logger)
	profiles := profilerepo.New(client, cfg.Retrieval.KeyPrefix)

	// Pipeline stages — composition root
	lex := lexicon.New()
	classifier := classify.New(lex, logger)
	retriever := retrieve.New(corpus, logger).WithLimit(cfg.Retrieval.Limit)
	prompter := prompt.New()
	generator := generate.New(chat, logger)
	filter := safety.New()
	annotator := followup.New(lex)

	pipeline := answer.New(
		classifier, retriever, prompter, generator,
		filter, annotator, profiles, chat.Model(), logger,
	)

	checks := map[string]chiTransport.HealthChecker{
		"valkey":    dbHealthChecker{client: client},
		"embedding": embedder,
	}
	server := chiTransport.NewServer(pipeline, checks, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Mount(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// waitForReady pings the database until it responds or the timeout elapses.
func waitForReady(ctx context.Context, client rueidis.Client, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	var lastErr error
	for time.Now().Before(deadline) {
		pingCtx, cancel := context.WithTimeout(ctx, time.Second)
		lastErr = client.Do(pingCtx, client.B().Ping().Build()).Error()
		cancel()
		if lastErr == nil {
			return nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return fmt.Errorf("database not ready after %s: %w", timeout, lastErr)
}

// dbHealthChecker probes the database with PING.
type dbHealthChecker struct {
	client rueidis.Client
}

func (h dbHealthChecker) HealthCheck(ctx context.Context) error {
	if err := h.client.Do(ctx, h.client.B().Ping().Build()).Error(); err != nil {
		return fmt.Errorf("db health check: %w", err)
	}
	return nil
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
