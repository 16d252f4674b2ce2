package repo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/shopfront/catalog-service/internal/app/catalog/contracts"
	"github.com/shopfront/catalog-service/internal/app/catalog/domain"
)

// Cache keys for the unfiltered reference-data lists the storefront UI
// derives its category/brand menus from.
const (
	categoriesCacheKey = "catalog:categories"
	brandsCacheKey     = "catalog:brands"
)

// CachedReadModel decorates a ReadModel with a Redis read-through cache
// for the unfiltered facet lists. Filtered facet queries bypass the cache,
// and any cache failure degrades to the store with a warning; the cache is
// never a source of errors for callers. Freshness is TTL-based since this
// engine never observes catalog writes.
type CachedReadModel struct {
	contracts.ReadModel

	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedReadModel creates a caching decorator around inner.
func NewCachedReadModel(inner contracts.ReadModel, rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedReadModel {
	return &CachedReadModel{
		ReadModel: inner,
		rdb:       rdb,
		ttl:       ttl,
		logger:    logger,
	}
}

// DistinctCategories serves the unfiltered category list from cache when possible.
func (c *CachedReadModel) DistinctCategories(ctx context.Context, filter *domain.FilterSpec) ([]string, error) {
	return c.cachedFacet(ctx, categoriesCacheKey, filter, c.ReadModel.DistinctCategories)
}

// DistinctBrands serves the unfiltered brand list from cache when possible.
func (c *CachedReadModel) DistinctBrands(ctx context.Context, filter *domain.FilterSpec) ([]string, error) {
	return c.cachedFacet(ctx, brandsCacheKey, filter, c.ReadModel.DistinctBrands)
}

func (c *CachedReadModel) cachedFacet(
	ctx context.Context,
	key string,
	filter *domain.FilterSpec,
	load func(context.Context, *domain.FilterSpec) ([]string, error),
) ([]string, error) {
	// Only the unfiltered lists are reference data worth caching.
	if filter != nil {
		return load(ctx, filter)
	}

	if data, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var values []string
		uerr := json.Unmarshal(data, &values)
		if uerr == nil {
			return values, nil
		}
		c.logger.Warn("facet cache entry corrupt", zap.String("key", key), zap.Error(uerr))
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("facet cache read failed", zap.String("key", key), zap.Error(err))
	}

	values, err := load(ctx, nil)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(values); err == nil {
		if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.logger.Warn("facet cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return values, nil
}
