package services

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/shopfront/catalog-service/internal/app/catalog/contracts"
	"github.com/shopfront/catalog-service/internal/app/catalog/queries/catalog_stats"
	"github.com/shopfront/catalog-service/internal/app/catalog/queries/get_product"
	"github.com/shopfront/catalog-service/internal/app/catalog/queries/list_facets"
	"github.com/shopfront/catalog-service/internal/app/catalog/queries/search_products"
	"github.com/shopfront/catalog-service/internal/app/catalog/queries/suggest_products"
	"github.com/shopfront/catalog-service/internal/app/catalog/repo"
	transporthttp "github.com/shopfront/catalog-service/internal/transport/http"
)

// Config holds the engine's tunables. Everything beyond the store and
// cache endpoints is per-request-independent configuration: the page size
// ceiling, the suggestion cap, and the facet cache TTL.
type Config struct {
	SpannerDB        string
	RedisAddr        string
	RedisPassword    string
	FacetCacheTTL    time.Duration
	MaxPageLimit     int
	MaxSuggestions   int
	SuggestionWindow int64
}

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient  *spanner.Client
	RedisClient    *redis.Client
	CatalogHandler *transporthttp.CatalogHandler
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg Config, logger *zap.Logger) (*ServiceOptions, error) {
	spannerClient, err := spanner.NewClient(ctx, cfg.SpannerDB)
	if err != nil {
		return nil, fmt.Errorf("create Spanner client: %w", err)
	}

	var readModel contracts.ReadModel = repo.NewReadModel(spannerClient)

	// The facet cache is optional; without Redis the facet endpoints hit
	// the store on every request.
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		readModel = repo.NewCachedReadModel(readModel, redisClient, cfg.FacetCacheTTL, logger)
	}

	searchQuery := search_products.NewQuery(readModel)
	detailQuery := get_product.NewQuery(readModel)
	facetsQuery := list_facets.NewQuery(readModel)
	statsQuery := catalog_stats.NewQuery(readModel)
	suggestQuery := suggest_products.NewQuery(readModel, cfg.SuggestionWindow)

	catalogHandler := transporthttp.NewCatalogHandler(
		searchQuery,
		detailQuery,
		facetsQuery,
		statsQuery,
		suggestQuery,
		cfg.MaxPageLimit,
		cfg.MaxSuggestions,
		logger,
	)

	return &ServiceOptions{
		SpannerClient:  spannerClient,
		RedisClient:    redisClient,
		CatalogHandler: catalogHandler,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
	if s.RedisClient != nil {
		_ = s.RedisClient.Close()
	}
}
