// Package server provides the HTTP API for the sales report generator.
package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bbuckner99/ai-sales-report-generator/internal/chat"
	appconfig "github.com/bbuckner99/ai-sales-report-generator/internal/config"
	"github.com/bbuckner99/ai-sales-report-generator/internal/llm"
	"github.com/bbuckner99/ai-sales-report-generator/internal/models/anthropic"
	"github.com/bbuckner99/ai-sales-report-generator/internal/models/openai"
	"github.com/bbuckner99/ai-sales-report-generator/internal/persistence"
	"github.com/bbuckner99/ai-sales-report-generator/pkg/health"
	"github.com/bbuckner99/ai-sales-report-generator/pkg/health/checkers"
	"github.com/bbuckner99/ai-sales-report-generator/pkg/httpmiddleware"
	"github.com/bbuckner99/ai-sales-report-generator/pkg/logger"
	"github.com/bbuckner99/ai-sales-report-generator/pkg/metrics"
)

// Server wires the chat service, persistence and HTTP surface together and
// manages their lifecycle.
type Server struct {
	cfg     *appconfig.AppConfig
	log     logger.Logger
	pool    *pgxpool.Pool
	chat    *chat.Service
	metrics metrics.Metrics
	health  *health.HealthChecker
	server  *http.Server
}

// New creates a new Server instance with all components initialized. It
// connects to the database and applies pending migrations before returning.
func New(ctx context.Context, cfg *appconfig.AppConfig, log logger.Logger) (*Server, error) {
	s := &Server{
		cfg: cfg,
		log: log,
	}

	pool, err := createPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}
	s.pool = pool

	migrationManager := persistence.NewMigrationManager(pool, log)
	if err := migrationManager.RunMigrations(); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := migrationManager.Close(); err != nil {
		log.Warn("Failed to close migration connection", logger.ErrorField(err))
	}

	model, err := createLLMModel(cfg, log)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create LLM model: %w", err)
	}

	repository := persistence.NewMessageRepository(pool, log)
	s.chat = chat.NewService(repository, model, log)

	s.metrics = metrics.NewMetrics(cfg.Monitoring.MetricsEnabled, log)

	s.health = health.New(
		health.WithLogger(log),
		health.WithTimeout(cfg.Monitoring.HealthCheckTimeout),
	)
	s.health.AddReadinessCheck(checkers.NewPostgresChecker(pool, "postgres"))
	if apiURL := providerBaseURL(cfg); apiURL != "" {
		s.health.AddReadinessCheck(checkers.NewHTTPChecker(apiURL, "llm_api"))
	}

	router := s.createRouter()
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.RequestTimeout,
		WriteTimeout:      cfg.RequestTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	log.Info("HTTP server initialized",
		logger.IntField("port", cfg.Port),
		logger.StringField("model", model.Name()))

	return s, nil
}

// createRouter sets up all routes and middleware
func (s *Server) createRouter() http.Handler {
	r := chi.NewRouter()

	mwConfig := httpmiddleware.DefaultConfig()
	mwConfig.Logger = s.log
	mwConfig.EnableLogging = true
	mwConfig.Timeout = s.cfg.RequestTimeout
	corsConfig := httpmiddleware.DefaultCORSConfig()
	corsConfig.AllowedOrigins = s.cfg.Security.CORSAllowedOrigins
	mwConfig.CORS = &corsConfig
	httpmiddleware.ApplyToRouter(r, mwConfig)

	r.Use(s.metrics.HTTPMiddleware())

	r.Route("/api", func(r chi.Router) {
		r.Get("/", s.rootHandler)
		r.Post("/chat", s.chatHandler)
		r.Get("/chat/history/{session_id}", s.historyHandler)
		r.Post("/generate-command", s.generateCommandHandler)
	})

	r.Get("/health/live", s.health.LivenessHandler())
	r.Get("/health/ready", s.health.ReadinessHandler())

	return r
}

// Listen starts the HTTP server and returns channels for error handling
func (s *Server) Listen() (chan error, func(), func(), error) {
	errChan := make(chan error, 1)

	go func() {
		s.log.Info("Starting HTTP server", logger.StringField("addr", s.server.Addr))
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	if s.cfg.Monitoring.MetricsEnabled {
		s.metrics.Listen(s.cfg.Monitoring.MetricsPort)
	}

	closer := func() {
		s.log.Info("Forcefully closing HTTP server")
		if err := s.Close(); err != nil {
			s.log.Error("Error during forced shutdown", logger.ErrorField(err))
		}
	}

	gracefulCloser := func() {
		s.log.Info("Gracefully closing HTTP server")
		if err := s.GracefulShutdown(); err != nil {
			s.log.Error("Error during graceful shutdown", logger.ErrorField(err))
		}
	}

	return errChan, closer, gracefulCloser, nil
}

// GracefulShutdown gracefully shuts down the HTTP server and closes the
// database pool.
func (s *Server) GracefulShutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.pool.Close()
	return nil
}

// Close forcefully shuts down the server
func (s *Server) Close() error {
	if s.server != nil {
		if err := s.server.Close(); err != nil {
			return err
		}
	}
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}

// createPool builds a pgx connection pool from the database configuration.
func createPool(ctx context.Context, cfg *appconfig.AppConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.Database.MaxConnections)
	poolConfig.MaxConnLifetime = cfg.Database.ConnMaxLifetime
	poolConfig.MaxConnIdleTime = cfg.Database.ConnMaxIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	return pool, nil
}

// providerBaseURL returns the API base URL of the active provider, used for
// the outbound readiness probe.
func providerBaseURL(cfg *appconfig.AppConfig) string {
	switch strings.ToLower(cfg.LLM.Provider) {
	case appconfig.ProviderAnthropic:
		return cfg.Anthropic.APIBaseURL
	default:
		return cfg.OpenAI.APIBaseURL
	}
}

// createLLMModel creates an LLM model instance based on the configured provider
func createLLMModel(cfg *appconfig.AppConfig, log logger.Logger) (llm.CompletionClient, error) {
	provider := strings.ToLower(cfg.LLM.Provider)

	switch provider {
	case appconfig.ProviderOpenAI:
		log.Info("Initializing OpenAI model", logger.StringField("model", cfg.OpenAI.Model))
		return openai.New(cfg.OpenAI, log)

	case appconfig.ProviderAnthropic:
		log.Info("Initializing Claude model", logger.StringField("model", cfg.Anthropic.Model))
		return anthropic.NewClaudeModel(cfg.Anthropic, log)

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", provider)
	}
}
