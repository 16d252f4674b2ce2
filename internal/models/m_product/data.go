package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the products table.
type Data struct {
	ProductID     string              `spanner:"product_id"`
	Name          string              `spanner:"name"`
	Description   string              `spanner:"description"`
	Category      string              `spanner:"category"`
	Brand         string              `spanner:"brand"`
	SKU           spanner.NullString  `spanner:"sku"`
	Price         float64             `spanner:"price"`
	Stock         int64               `spanner:"stock"`
	ImageURLs     []string            `spanner:"image_urls"`
	Tags          []string            `spanner:"tags"`
	Weight        spanner.NullFloat64 `spanner:"weight"`
	RatingAverage float64             `spanner:"rating_average"`
	RatingCount   int64               `spanner:"rating_count"`
	IsActive      bool                `spanner:"is_active"`
	CreatedAt     time.Time           `spanner:"created_at"`
	UpdatedAt     time.Time           `spanner:"updated_at"`
}
