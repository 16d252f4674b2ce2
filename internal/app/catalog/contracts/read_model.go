package contracts

import (
	"context"
	"time"

	"github.com/shopfront/catalog-service/internal/app/catalog/domain"
	"github.com/shopfront/catalog-service/internal/pkg/paging"
)

// ProductDTO is a data transfer object for product queries.
type ProductDTO struct {
	ProductID     string
	Name          string
	Description   string
	Category      string
	Brand         string
	SKU           *string
	Price         float64
	Stock         int64
	ImageURLs     []string
	Tags          []string
	Weight        *float64
	RatingAverage float64
	RatingCount   int64
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PageResult is one page of products plus its pagination metadata.
type PageResult struct {
	Products   []*ProductDTO
	Pagination paging.Page
}

// CatalogStats is the summary aggregation over the active (optionally
// filtered) product set. All counters come from a single aggregation
// statement, so InStockCount + OutOfStockCount always equals TotalProducts.
type CatalogStats struct {
	TotalProducts   int64
	TotalValue      float64
	AvgPrice        float64
	MinPrice        float64
	MaxPrice        float64
	TotalStock      int64
	InStockCount    int64
	OutOfStockCount int64
}

// SuggestionType distinguishes which source field produced a suggestion.
type SuggestionType string

const (
	SuggestionProduct  SuggestionType = "product"
	SuggestionBrand    SuggestionType = "brand"
	SuggestionCategory SuggestionType = "category"
)

// Suggestion is one autocomplete entry, unique by (Type, Value).
type Suggestion struct {
	Type  SuggestionType
	Value string
}

// SuggestionRow is the raw projection the suggestion query scans.
type SuggestionRow struct {
	ProductID string
	Name      string
	Brand     string
	Category  string
}

// ReadModel defines the store-facing interface for catalog queries.
// Every method is a single store round-trip; a nil FilterSpec means
// "all active products". Implementations must honor ctx cancellation.
type ReadModel interface {
	// GetProductByID retrieves one active product by id.
	GetProductByID(ctx context.Context, productID string) (*ProductDTO, error)

	// CountProducts counts products matching the filter predicate.
	CountProducts(ctx context.Context, filter *domain.FilterSpec) (int64, error)

	// FetchProducts retrieves one sorted, bounded page of matching products.
	FetchProducts(ctx context.Context, filter *domain.FilterSpec, limit, offset int64) ([]*ProductDTO, error)

	// DistinctCategories lists the distinct non-empty categories among
	// matching products, sorted case-insensitively.
	DistinctCategories(ctx context.Context, filter *domain.FilterSpec) ([]string, error)

	// DistinctBrands lists the distinct non-empty brands among matching
	// products, sorted case-insensitively.
	DistinctBrands(ctx context.Context, filter *domain.FilterSpec) ([]string, error)

	// AggregateStats computes CatalogStats in one aggregation pass.
	AggregateStats(ctx context.Context, filter *domain.FilterSpec) (*CatalogStats, error)

	// SuggestRows runs the substring predicate for term over name, brand,
	// and category, returning at most window rows in deterministic order.
	SuggestRows(ctx context.Context, term string, window int64) ([]SuggestionRow, error)
}
