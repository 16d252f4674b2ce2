package catalog_stats

import (
	"context"
	"fmt"

	"github.com/shopfront/catalog-service/internal/app/catalog/contracts"
	"github.com/shopfront/catalog-service/internal/app/catalog/domain"
)

// Query handles the catalog statistics use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new catalog statistics query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute computes the summary statistics over the active (optionally
// filtered) product set. The read model performs this as a single
// aggregation statement; if that statement fails, the whole call fails
// rather than returning a partially filled statistics object, since
// zeroes would be indistinguishable from "no products".
func (q *Query) Execute(ctx context.Context, filter *domain.FilterSpec) (*contracts.CatalogStats, error) {
	stats, err := q.readModel.AggregateStats(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("aggregate stats: %w", err)
	}
	return stats, nil
}
