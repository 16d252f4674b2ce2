package list_facets

import (
	"context"
	"fmt"

	"github.com/shopfront/catalog-service/internal/app/catalog/contracts"
	"github.com/shopfront/catalog-service/internal/app/catalog/domain"
)

// Query handles the facet listing use case: the distinct category and
// brand values available among active products. A filter narrows the
// facet lists to "values available given the current selection"; a nil
// filter lists everything.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new facet listing query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Categories lists distinct non-empty categories, sorted case-insensitively.
func (q *Query) Categories(ctx context.Context, filter *domain.FilterSpec) ([]string, error) {
	categories, err := q.readModel.DistinctCategories(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("distinct categories: %w", err)
	}
	return categories, nil
}

// Brands lists distinct non-empty brands, sorted case-insensitively.
func (q *Query) Brands(ctx context.Context, filter *domain.FilterSpec) ([]string, error) {
	brands, err := q.readModel.DistinctBrands(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("distinct brands: %w", err)
	}
	return brands, nil
}
