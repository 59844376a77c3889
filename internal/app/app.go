// Package app assembles the dashboard data service: configuration,
// logging, tracing, metrics, the dataset service and the HTTP server.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campusboard/internal/config"
	"campusboard/internal/infrastructure"
	"campusboard/internal/metrics"
	custommw "campusboard/internal/middleware"
	"campusboard/internal/services"
	handlers "campusboard/internal/transport/http"
	ws "campusboard/internal/websocket"
	"campusboard/pkg/contracts/domain"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Application is the composed service.
type Application struct {
	Config   *config.Config
	Logger   *slog.Logger
	Router   *chi.Mux
	Server   *http.Server
	Hub      *ws.Hub
	Datasets *services.DatasetService

	logCloser    io.Closer
	traceCleanup func(context.Context) error
}

// New builds the application from configuration.
func New(cfg *config.Config) (*Application, error) {
	logger, logCloser, err := infrastructure.NewLogger(infrastructure.LoggerOptions{
		Level:    cfg.Logging.Level,
		Format:   cfg.Logging.Format,
		Output:   cfg.Logging.Output,
		FilePath: cfg.Logging.FilePath,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	slog.SetDefault(logger)

	traceCleanup, err := infrastructure.InitTracing(context.Background(), infrastructure.TracingOptions{
		ServiceName:    "campusboard",
		ServiceVersion: Version,
		Enabled:        true,
	})
	if err != nil {
		logger.Warn("tracing disabled", slog.String("error", err.Error()))
		traceCleanup = func(context.Context) error { return nil }
	}

	if err := cfg.EnsureDataDir(); err != nil {
		return nil, fmt.Errorf("ensure data directory: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	hub := ws.NewHub(logger, originChecker(cfg.Security.AllowedOrigins))
	datasets := services.NewDatasetService(cfg.Data, cfg.DataDir(), logger, m, hub)

	app := &Application{
		Config:       cfg,
		Logger:       logger,
		Hub:          hub,
		Datasets:     datasets,
		logCloser:    logCloser,
		traceCleanup: traceCleanup,
	}
	app.Router = app.buildRouter(registry)
	app.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      app.Router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	return app, nil
}

func (a *Application) buildRouter(registry *prometheus.Registry) *chi.Mux {
	r := chi.NewRouter()

	r.Use(custommw.RequestID)
	r.Use(custommw.Recoverer(a.Logger))
	r.Use(custommw.StructuredLogger(a.Logger))
	r.Use(custommw.SecurityHeaders)
	r.Use(chimiddleware.Compress(5))
	if a.Config.Security.EnableCORS {
		r.Use(custommw.CORS(a.Config.Security.AllowedOrigins))
	}
	if rl := a.Config.Security.RateLimit; rl.Enabled {
		r.Use(custommw.RateLimiter(rl.RPS, rl.Burst))
	}

	r.Mount("/api/health", handlers.NewHealthHandler(Version, a.Config.DataDir()).Routes())
	r.Mount("/api/datasets", handlers.NewDatasetHandler(a.Datasets, a.Logger).Routes())
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	r.Get("/ws", a.Hub.ServeHTTP)

	return r
}

// Run starts the HTTP server and blocks until SIGINT/SIGTERM, then shuts
// down gracefully.
func (a *Application) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("server listening",
			slog.String("addr", a.Server.Addr),
			slog.String("version", Version))
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-stop:
		a.Logger.Info("shutdown signal received", slog.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
	defer cancel()
	return a.Shutdown(ctx)
}

// Shutdown stops the server and flushes telemetry.
func (a *Application) Shutdown(ctx context.Context) error {
	err := a.Server.Shutdown(ctx)
	if terr := a.traceCleanup(ctx); terr != nil && err == nil {
		err = terr
	}
	if a.logCloser != nil {
		a.logCloser.Close()
	}
	a.Logger.Info("server stopped")
	return err
}

// originChecker allows websocket upgrades from the configured origins.
func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]bool, len(allowed))
	allowAll := false
	for _, o := range allowed {
		if o == "*" {
			allowAll = true
		}
		set[o] = true
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		return allowAll || set[origin]
	}
}

// PreloadDatasets resolves every domain once so the first dashboard hit is
// served from memory. Failures are logged and do not abort startup.
func (a *Application) PreloadDatasets(ctx context.Context) {
	start := time.Now()
	for _, d := range domain.AllDomains() {
		if _, err := a.Datasets.Dataset(ctx, d); err != nil {
			a.Logger.Warn("preload failed",
				slog.String("domain", d.String()),
				slog.String("error", err.Error()))
		}
	}
	a.Logger.Info("datasets preloaded", slog.Duration("duration", time.Since(start)))
}
