// Package fixture holds the sample catalog used by the seeder and the
// integration tests. Ids and timestamps are fixed so orderings asserted
// against this data are reproducible.
package fixture

import (
	"time"

	"cloud.google.com/go/spanner"

	"github.com/shopfront/catalog-service/internal/models/m_product"
)

var baseTime = time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)

// SampleCatalog returns the ten-product sample catalog. Later entries have
// later created_at values, so the default "most recent first" ordering is
// the reverse of this list.
func SampleCatalog() []m_product.Data {
	products := []m_product.Data{
		{
			ProductID:   "prod-001",
			Name:        "iPhone 15 Pro",
			Description: "Apple flagship with titanium frame and A17 chip",
			Category:    "Smartphones",
			Brand:       "Apple",
			SKU:         spanner.NullString{StringVal: "APL-IP15P-128", Valid: true},
			Price:       999.99,
			Stock:       50,
			ImageURLs:   []string{"https://cdn.shopfront.dev/products/prod-001/main.jpg"},
			Tags:        []string{"smartphone", "5g", "titanium"},
			Weight:      spanner.NullFloat64{Float64: 0.187, Valid: true},
			RatingAverage: 4.7,
			RatingCount:   312,
		},
		{
			ProductID:   "prod-002",
			Name:        "Samsung Galaxy S24 Ultra",
			Description: "Large-format Android flagship with S Pen",
			Category:    "Smartphones",
			Brand:       "Samsung",
			SKU:         spanner.NullString{StringVal: "SMS-GS24U-256", Valid: true},
			Price:       1199.99,
			Stock:       35,
			ImageURLs:   []string{"https://cdn.shopfront.dev/products/prod-002/main.jpg"},
			Tags:        []string{"smartphone", "5g", "stylus"},
			Weight:      spanner.NullFloat64{Float64: 0.232, Valid: true},
			RatingAverage: 4.5,
			RatingCount:   204,
		},
		{
			ProductID:   "prod-003",
			Name:        "MacBook Pro 16-inch",
			Description: "Apple silicon laptop for creative workloads",
			Category:    "Computers",
			Brand:       "Apple",
			SKU:         spanner.NullString{StringVal: "APL-MBP16-1TB", Valid: true},
			Price:       2499.99,
			Stock:       20,
			ImageURLs:   []string{"https://cdn.shopfront.dev/products/prod-003/main.jpg"},
			Tags:        []string{"laptop", "apple-silicon"},
			Weight:      spanner.NullFloat64{Float64: 2.15, Valid: true},
			RatingAverage: 4.8,
			RatingCount:   158,
		},
		{
			ProductID:   "prod-004",
			Name:        "LG OLED C3 65-inch",
			Description: "Self-lit OLED television with 120Hz panel",
			Category:    "Home Appliances",
			Brand:       "LG",
			Price:       2499.99,
			Stock:       8,
			ImageURLs:   []string{"https://cdn.shopfront.dev/products/prod-004/main.jpg"},
			Tags:        []string{"tv", "oled", "4k"},
			RatingAverage: 4.6,
			RatingCount:   97,
		},
		{
			ProductID:   "prod-005",
			Name:        "Sony WH-1000XM5",
			Description: "Noise cancelling wireless headphones",
			Category:    "Audio",
			Brand:       "Sony",
			SKU:         spanner.NullString{StringVal: "SNY-WH1KX5-BLK", Valid: true},
			Price:       399.99,
			Stock:       120,
			ImageURLs:   []string{"https://cdn.shopfront.dev/products/prod-005/main.jpg"},
			Tags:        []string{"headphones", "wireless", "anc"},
			Weight:      spanner.NullFloat64{Float64: 0.25, Valid: true},
			RatingAverage: 4.4,
			RatingCount:   521,
		},
		{
			ProductID:   "prod-006",
			Name:        "Dell XPS 13",
			Description: "Compact ultrabook with edge-to-edge display",
			Category:    "Computers",
			Brand:       "Dell",
			Price:       1299.99,
			Stock:       0,
			ImageURLs:   []string{"https://cdn.shopfront.dev/products/prod-006/main.jpg"},
			Tags:        []string{"laptop", "ultrabook"},
			Weight:      spanner.NullFloat64{Float64: 1.19, Valid: true},
			RatingAverage: 4.2,
			RatingCount:   76,
		},
		{
			ProductID:   "prod-007",
			Name:        "Nintendo Switch OLED",
			Description: "Hybrid games console with OLED screen",
			Category:    "Gaming",
			Brand:       "Nintendo",
			Price:       349.99,
			Stock:       75,
			ImageURLs:   []string{"https://cdn.shopfront.dev/products/prod-007/main.jpg"},
			Tags:        []string{"console", "portable"},
			RatingAverage: 4.7,
			RatingCount:   433,
		},
		{
			ProductID:   "prod-008",
			Name:        "Dyson V15 Detect",
			Description: "Cordless vacuum with particle sensing",
			Category:    "Home Appliances",
			Brand:       "Dyson",
			Price:       749.99,
			Stock:       15,
			ImageURLs:   []string{"https://cdn.shopfront.dev/products/prod-008/main.jpg"},
			Tags:        []string{"vacuum", "cordless"},
			Weight:      spanner.NullFloat64{Float64: 3.1, Valid: true},
			RatingAverage: 4.5,
			RatingCount:   189,
		},
		{
			ProductID:   "prod-009",
			Name:        "Canon EOS R6 Mark II",
			Description: "Full-frame mirrorless camera body",
			Category:    "Cameras",
			Brand:       "Canon",
			SKU:         spanner.NullString{StringVal: "CAN-R6M2-BODY", Valid: true},
			Price:       2299.99,
			Stock:       5,
			ImageURLs:   []string{"https://cdn.shopfront.dev/products/prod-009/main.jpg"},
			Tags:        []string{"camera", "mirrorless", "full-frame"},
			Weight:      spanner.NullFloat64{Float64: 0.67, Valid: true},
			RatingAverage: 4.8,
			RatingCount:   64,
		},
		{
			ProductID:   "prod-010",
			Name:        "Bose QuietComfort Ultra",
			Description: "Premium noise cancelling earbuds",
			Category:    "Audio",
			Brand:       "Bose",
			Price:       429.99,
			Stock:       40,
			ImageURLs:   []string{"https://cdn.shopfront.dev/products/prod-010/main.jpg"},
			Tags:        []string{"earbuds", "wireless", "anc"},
			RatingAverage: 4.3,
			RatingCount:   142,
		},
	}

	for i := range products {
		products[i].IsActive = true
		products[i].CreatedAt = baseTime.Add(time.Duration(i) * 24 * time.Hour)
		products[i].UpdatedAt = products[i].CreatedAt
	}

	return products
}

// InactiveProduct returns a product that must never surface through the
// query engine.
func InactiveProduct() m_product.Data {
	return m_product.Data{
		ProductID:     "prod-900",
		Name:          "Discontinued Projector",
		Description:   "No longer sold",
		Category:      "Home Appliances",
		Brand:         "Epson",
		Price:         599.99,
		Stock:         3,
		RatingAverage: 3.9,
		RatingCount:   12,
		IsActive:      false,
		CreatedAt:     baseTime.Add(30 * 24 * time.Hour),
		UpdatedAt:     baseTime.Add(30 * 24 * time.Hour),
	}
}
