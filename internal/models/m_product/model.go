package m_product

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the products table.
// The query engine itself never writes; mutations exist for the seeder and
// test fixtures, mirroring what the catalog-management service would do.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// Columns returns the full column list in Data field order.
func (m *Model) Columns() []string {
	return []string{
		ProductID,
		Name,
		Description,
		Category,
		Brand,
		SKU,
		Price,
		Stock,
		ImageURLs,
		Tags,
		Weight,
		RatingAverage,
		RatingCount,
		IsActive,
		CreatedAt,
		UpdatedAt,
	}
}

// InsertMut creates a Spanner mutation for inserting a product.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		m.Columns(),
		[]interface{}{
			data.ProductID,
			data.Name,
			data.Description,
			data.Category,
			data.Brand,
			data.SKU,
			data.Price,
			data.Stock,
			data.ImageURLs,
			data.Tags,
			data.Weight,
			data.RatingAverage,
			data.RatingCount,
			data.IsActive,
			data.CreatedAt,
			data.UpdatedAt,
		},
	)
}

// DeleteAllMut creates a mutation that clears the products table.
// Used by tests for isolation.
func (m *Model) DeleteAllMut() *spanner.Mutation {
	return spanner.Delete(TableName, spanner.AllKeys())
}
