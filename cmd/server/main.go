package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/shopfront/catalog-service/internal/pkg/clock"
	"github.com/shopfront/catalog-service/internal/services"
	transporthttp "github.com/shopfront/catalog-service/internal/transport/http"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func run(logger *zap.Logger) error {
	ctx := context.Background()

	// .env is for local development only; absence is not an error.
	_ = godotenv.Load()

	cfg, httpPort := loadConfig()

	logger.Info("starting catalog query service",
		zap.String("spanner_database", cfg.SpannerDB),
		zap.String("http_port", httpPort),
		zap.String("redis_addr", cfg.RedisAddr),
	)

	serviceOpts, err := services.NewServiceOptions(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("initialize service: %w", err)
	}
	defer serviceOpts.Close()

	router := transporthttp.NewRouter(serviceOpts.CatalogHandler, logger, clock.NewRealClock())

	httpServer := &http.Server{
		Addr:              ":" + httpPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case sig := <-sigCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	return nil
}

// loadConfig loads configuration from environment variables with defaults.
func loadConfig() (services.Config, string) {
	cfg := services.Config{
		SpannerDB:        envOrDefault("SPANNER_DATABASE", "projects/test-project/instances/dev-instance/databases/catalog-db"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		FacetCacheTTL:    envDuration("FACET_CACHE_TTL", 5*time.Minute),
		MaxPageLimit:     envInt("MAX_PAGE_LIMIT", 100),
		MaxSuggestions:   envInt("MAX_SUGGESTIONS", 10),
		SuggestionWindow: int64(envInt("SUGGESTION_WINDOW", 10)),
	}

	return cfg, envOrDefault("HTTP_PORT", "8080")
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
