package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"

	"github.com/itamar11/portfolio-chat/internal/ai"
	"github.com/itamar11/portfolio-chat/internal/chat"
	"github.com/itamar11/portfolio-chat/internal/config"
	"github.com/itamar11/portfolio-chat/internal/middleware"
	"github.com/itamar11/portfolio-chat/internal/ratelimit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config", "err", err)
	}
	setupLogging(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Router ---
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(log.WithPrefix("http")))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	}))

	// --- Chat module wiring ---
	classifier, err := chat.NewClassifier()
	if err != nil {
		log.Fatal("classifier", "err", err)
	}

	var (
		aiClient ai.Completer
		budget   chat.HistoryBudget
	)
	if cfg.LLM.Configured() {
		client := ai.NewOpenAIClient(cfg.LLM)
		aiClient = client
		budget = historyBudget(cfg.LLM)
		log.Info("live mode", "model", client.Model(), "base_url", cfg.LLM.BaseURL)
	} else {
		log.Warn("GROQ_API_KEY not set, serving canned replies")
	}

	chatService := chat.NewService(aiClient, classifier, budget)
	chatHandler := chat.NewHandler(chatService)

	var guards []func(http.Handler) http.Handler
	if cfg.RateLimit.Enabled() {
		limiter, closeLimiter := newLimiter(ctx, cfg.RateLimit)
		defer closeLimiter()
		guards = append(guards, ratelimit.Middleware(limiter))
	}

	chat.RegisterRoutes(r, chatHandler, guards...)

	// --- health ---
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})

	server := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown", "err", err)
		}
	}()

	log.Info("listening", "port", cfg.HTTP.Port, "mode", chatService.Mode())
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server error", "err", err)
	}
}

func setupLogging(cfg config.Log) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		log.Warn("unknown log level, using info", "level", cfg.Level)
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetReportTimestamp(true)
	if cfg.Format == "json" {
		log.SetFormatter(log.JSONFormatter)
	}
}

// historyBudget disables trimming when the tokenizer cannot be loaded.
func historyBudget(cfg config.LLM) chat.HistoryBudget {
	counter, err := ai.NewTiktokenCounter()
	if err != nil {
		log.Warn("token counter unavailable, history is not trimmed", "err", err)
		return chat.HistoryBudget{}
	}
	return chat.HistoryBudget{Counter: counter, MaxTokens: cfg.MaxHistoryTokens}
}

func newLimiter(ctx context.Context, cfg config.RateLimit) (ratelimit.Limiter, func()) {
	if cfg.RedisURL == "" {
		limiter := ratelimit.NewMemoryLimiter(cfg.PerMinute, time.Minute)
		go limiter.Cleanup(ctx)
		log.Info("rate limit", "per_minute", cfg.PerMinute, "store", "memory")
		return limiter, func() {}
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatal("redis url", "err", err)
	}
	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Warn("redis ping failed, limiter will fail open until it recovers", "err", err)
	}

	log.Info("rate limit", "per_minute", cfg.PerMinute, "store", "redis")
	return ratelimit.NewRedisLimiter(rdb, cfg.PerMinute, time.Minute), func() { _ = rdb.Close() }
}
