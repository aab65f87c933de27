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
	"go.uber.org/zap"

	"github.com/kailas-cloud/skillgap/internal/config"
	"github.com/kailas-cloud/skillgap/internal/db"
	dbRedis "github.com/kailas-cloud/skillgap/internal/db/redis"
	"github.com/kailas-cloud/skillgap/internal/domain"
	logpkg "github.com/kailas-cloud/skillgap/internal/logger"
	"github.com/kailas-cloud/skillgap/internal/metrics"
	"github.com/kailas-cloud/skillgap/internal/ontology"
	"github.com/kailas-cloud/skillgap/internal/repository/embcache"
	chiTransport "github.com/kailas-cloud/skillgap/internal/transport/chi"
	openaiEmb "github.com/kailas-cloud/skillgap/internal/transport/openai"
	"github.com/kailas-cloud/skillgap/internal/usecase/analyze"
	embeddinguc "github.com/kailas-cloud/skillgap/internal/usecase/embedding"
	"github.com/kailas-cloud/skillgap/internal/usecase/normalize"
	"github.com/kailas-cloud/skillgap/internal/usecase/retrieval"
	"github.com/kailas-cloud/skillgap/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting skillgap API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Bool("cache_enabled", cfg.Cache.Enabled()),
	)

	ctx := context.Background()

	// Optional embedding cache backend
	var cache db.Store
	if cfg.Cache.Enabled() {
		cache, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Cache.Addrs,
			Password: cfg.Cache.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create cache store", zap.Error(err))
		}
		defer cache.Close()

		timeout := time.Duration(cfg.Cache.ReadinessTimeout) * time.Second
		if err := cache.WaitForReady(ctx, timeout); err != nil {
			logger.Fatal("Cache not ready", zap.Error(err))
		}
		logger.Info("Connected to embedding cache")
	}

	// Register metrics explicitly (no init())
	metrics.RegisterEmbeddingMetrics()
	metrics.RegisterEngineMetrics()

	// Build the ontology. A duplicate alias or keyword in the skill table
	// makes lookups ambiguous, so startup must fail.
	store, err := ontology.Default()
	if err != nil {
		logger.Fatal("Failed to build ontology", zap.Error(err))
	}
	logger.Info("Ontology built", zap.Int("skills", store.Len()))

	norm := normalize.New(store)
	gaps := analyze.New(store, norm)

	// Embedder chain — composition root
	vecName := cfg.Embedding.Vectorizer
	vecCfg := cfg.Embedding.Vectorizers[vecName]
	provCfg := cfg.Embedding.Providers[vecCfg.Provider]

	docEmbedder := buildEmbedder(vecCfg.Provider, provCfg, vecCfg, vecCfg.DocumentInstruction, cache, cfg.Cache, logger)
	queryEmbedder := buildEmbedder(vecCfg.Provider, provCfg, vecCfg, vecCfg.QueryInstruction, cache, cfg.Cache, logger)
	logger.Info("Embedders created",
		zap.String("provider", vecCfg.Provider),
		zap.String("model", vecCfg.Model),
		zap.Int("dimensions", vecCfg.Dimensions),
	)

	retriever := retrieval.New(docEmbedder, queryEmbedder, store, logger)

	// Index the knowledge corpus in the background; the rest of the API
	// works while it builds, searches just come back empty.
	go func() {
		initCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Retrieval.InitTimeoutSec)*time.Second)
		defer cancel()

		if err := retriever.Initialize(initCtx); err != nil {
			logger.Error("Knowledge index build failed", zap.Error(err))
			return
		}
		metrics.KnowledgeIndexDocuments.Set(float64(retriever.Size()))
	}()

	server := chiTransport.NewServer(store, norm, gaps, retriever, cfg.Retrieval.MaxTopK, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

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

// buildEmbedder assembles the decorator chain: OpenAI -> Cached -> Instrumented -> Instruction
func buildEmbedder(
	provName string,
	provCfg config.ProviderConfig,
	vecCfg config.VectorizerConfig,
	instruction string,
	cache db.Store,
	cacheCfg config.CacheConfig,
	logger *zap.Logger,
) domain.Embedder {
	// Base provider (with transport metrics built-in)
	base := openaiEmb.NewEmbedder(&openaiEmb.Config{
		APIKey:     provCfg.APIKey,
		BaseURL:    provCfg.BaseURL,
		Model:      vecCfg.Model,
		Dimensions: vecCfg.Dimensions,
		Provider:   provName,
		Logger:     logger,
	})

	// Cached
	var embedder domain.Embedder = base
	if cache != nil {
		ttl := time.Duration(cacheCfg.TTLSec) * time.Second
		embedder = embcache.New(base, cache, cacheCfg.KeyPrefix, ttl, metrics.EmbeddingCacheTotal, logger)
	}

	// Instrumented
	embedder = embeddinguc.NewInstrumentedEmbedder(embedder, provName, vecCfg.Model, logger)

	// Instruction prefix (outermost — cache key includes instruction)
	if instruction != "" {
		return domain.NewInstructionEmbedder(embedder, instruction)
	}

	return embedder
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

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.WithContext(r.Context(), reqLogger)

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
