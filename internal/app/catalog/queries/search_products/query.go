package search_products

import (
	"context"
	"fmt"

	"github.com/shopfront/catalog-service/internal/app/catalog/contracts"
	"github.com/shopfront/catalog-service/internal/app/catalog/domain"
	"github.com/shopfront/catalog-service/internal/pkg/paging"
)

// Query handles the catalog search query use case: it turns a validated
// FilterSpec into one sorted, bounded page of products plus pagination
// metadata.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new catalog search query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute counts the products matching the filter, computes page metadata
// from the total, and fetches the requested page. The count and the fetch
// are two separate store round-trips sharing one predicate; under
// concurrent catalog writes the total and the fetched rows can reflect
// slightly different moments, which is accepted for browsing. A page past
// the end returns an empty product list with accurate metadata.
func (q *Query) Execute(ctx context.Context, filter *domain.FilterSpec) (*contracts.PageResult, error) {
	if filter == nil {
		filter = domain.DefaultFilter()
	}

	total, err := q.readModel.CountProducts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	page := paging.New(filter.Page, filter.Limit, total)

	products := make([]*contracts.ProductDTO, 0, filter.Limit)
	if page.InRange() {
		products, err = q.readModel.FetchProducts(ctx, filter, page.Limit(), page.Offset())
		if err != nil {
			return nil, fmt.Errorf("fetch products: %w", err)
		}
	}

	return &contracts.PageResult{
		Products:   products,
		Pagination: page,
	}, nil
}
