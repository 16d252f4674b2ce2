package get_product

import (
	"context"

	"github.com/shopfront/catalog-service/internal/app/catalog/contracts"
)

// Query handles the product detail query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new product detail query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves one active product by id. Inactive products are
// reported as not found.
func (q *Query) Execute(ctx context.Context, productID string) (*contracts.ProductDTO, error) {
	return q.readModel.GetProductByID(ctx, productID)
}
