package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gramsetu/carefinder/internal/advise"
	"github.com/gramsetu/carefinder/internal/config"
	"github.com/gramsetu/carefinder/internal/enrich"
	"github.com/gramsetu/carefinder/internal/genai"
	"github.com/gramsetu/carefinder/internal/geocoding"
	"github.com/gramsetu/carefinder/internal/metrics"
	"github.com/gramsetu/carefinder/internal/places"
	"github.com/gramsetu/carefinder/internal/repository"
	"github.com/gramsetu/carefinder/internal/search"
	"github.com/gramsetu/carefinder/internal/server"
	"github.com/gramsetu/carefinder/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	// Create a context that will be canceled when an interrupt signal is received.
	// This allows for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load application configuration.
	cfg := config.MustLoad()

	// Set up the logger based on the environment.
	logger := setupLogger(cfg.Env)

	// Create a separate registry for application metrics.
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	// Initialize the database connection.
	dtb, err := repository.NewDatabase(
		ctx, cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name,
	)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer dtb.Close()

	repo := repository.NewRepository(dtb, logger)

	// Create geocoding provider using factory pattern based on configuration.
	geoProvider, err := geocoding.NewProvider(geocoding.ProviderConfig{
		Type:   geocoding.ProviderType(cfg.GeocoderProvider),
		APIKey: cfg.GeocoderAPIKey,
		Logger: logger,
	})
	if err != nil {
		log.Fatalf("Failed to create geocoding provider: %v", err)
	}
	logger.InfoContext(ctx, "Geocoding provider initialized", "type", cfg.GeocoderProvider)

	placesClient := places.NewClient(cfg.PlacesAPIKey, cfg.PlacesRateLimit, logger)

	rotator, err := genai.NewKeyRotator(cfg.GenAIKeys)
	if err != nil {
		log.Fatalf("Failed to create key rotator: %v", err)
	}
	generator := genai.NewClient(rotator, cfg.GenAIModel, logger)

	engine := search.NewEngine(logger, placesClient, appMetrics, search.DefaultQueryDelay)
	pipeline := enrich.NewPipeline(logger, generator, appMetrics, enrich.DefaultCallDelay)
	advisor := advise.NewAdvisor(logger, generator, appMetrics)

	finder := service.NewFinder(
		logger,
		repo,
		geoProvider,
		engine,
		pipeline,
		advisor,
		appMetrics,
		service.BuildProfiles(service.ProfileConfig{
			HospitalCeiling: cfg.Search.HospitalCeiling,
			PharmacyCeiling: cfg.Search.PharmacyCeiling,
			HospitalMaxKm:   cfg.Search.HospitalMaxKm,
			PharmacyMaxKm:   cfg.Search.PharmacyMaxKm,
			PerQueryLimit:   cfg.Search.PerQueryLimit,
		}),
	)

	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      server.New(logger, finder).Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 120 * time.Second, // enrichment paces generation calls per facility
	}

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.", "port", cfg.Port)

	// Start the monitoring server in a goroutine to allow main to listen for signals.
	go startMonitoringServer(ctx, logger, reg, dtb, cfg.HealthPort)

	go func() {
		if err := apiServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "API server failed", "error", err)
			stop()
		}
	}()

	// Wait for the context to be canceled (e.g., by Ctrl+C).
	<-ctx.Done()

	logger.InfoContext(ctx, "Shutdown signal received. Stopping application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down API server cleanly", "error", err)
	}

	logger.InfoContext(ctx, "Application stopped gracefully.")
}

// startMonitoringServer starts an HTTP server that provides health check and
// metrics endpoints. It listens on the specified port and logs the server's
// status and any errors encountered.
func startMonitoringServer(
	ctx context.Context,
	log *slog.Logger,
	reg *prometheus.Registry,
	dtb *pgxpool.Pool,
	port int,
) {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(writer http.ResponseWriter, _ *http.Request) {
		log.DebugContext(ctx, "Performing health checks...")
		status, body := http.StatusOK, "OK"
		if err := dtb.Ping(ctx); err != nil {
			status, body = http.StatusServiceUnavailable, "DB ping failed"
		}
		writer.WriteHeader(status)
		if _, err := writer.Write([]byte(body)); err != nil {
			log.ErrorContext(ctx, "failed to write reply", "error", err)
		}
	})
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	log.InfoContext(ctx, "Starting monitoring server", "port", port)
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := server.ListenAndServe(); err != nil {
		log.ErrorContext(ctx, "Monitoring server failed", "error", err)
	}
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelWarn,
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelError,
			}),
		)

		log.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}
