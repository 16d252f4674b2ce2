package repo

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/shopfront/catalog-service/internal/app/catalog/contracts"
	"github.com/shopfront/catalog-service/internal/app/catalog/domain"
	"github.com/shopfront/catalog-service/internal/models/m_product"
	"github.com/shopfront/catalog-service/internal/pkg/query"
)

// ReadModelImpl implements contracts.ReadModel for Spanner.
// Every method issues exactly one single-use read-only query; there is no
// cross-call snapshot, so a count and the page fetched right after it can
// reflect slightly different moments under concurrent catalog writes.
type ReadModelImpl struct {
	client *spanner.Client
	model  *m_product.Model
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{
		client: client,
		model:  m_product.NewModel(),
	}
}

// base returns a builder scoped to the filter predicate (active-only plus
// the filter's clauses).
func (rm *ReadModelImpl) base(filter *domain.FilterSpec) *query.Builder {
	return query.From(m_product.TableName).Where(filter.Conditions()...)
}

// GetProductByID retrieves one active product by id.
func (rm *ReadModelImpl) GetProductByID(ctx context.Context, productID string) (*contracts.ProductDTO, error) {
	stmt := query.From(m_product.TableName).
		Select(rm.model.Columns()...).
		Where(query.Eq(m_product.ProductID, productID)).
		Where(query.Eq(m_product.IsActive, true)).
		Limit(1).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read product: %w", err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("parse product: %w", err)
	}

	return dataToDTO(&data), nil
}

// CountProducts counts products matching the filter predicate.
func (rm *ReadModelImpl) CountProducts(ctx context.Context, filter *domain.FilterSpec) (int64, error) {
	stmt := rm.base(filter).Count().Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}

	var count int64
	if err := row.Columns(&count); err != nil {
		return 0, fmt.Errorf("parse count: %w", err)
	}

	return count, nil
}

// FetchProducts retrieves one sorted, bounded page of matching products.
// The filter's order terms always end with the product id, keeping the
// ordering deterministic across pages.
func (rm *ReadModelImpl) FetchProducts(ctx context.Context, filter *domain.FilterSpec, limit, offset int64) ([]*contracts.ProductDTO, error) {
	stmt := rm.base(filter).
		Select(rm.model.Columns()...).
		OrderByTerms(filter.OrderTerms()...).
		Limit(limit).
		Offset(offset).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	products := make([]*contracts.ProductDTO, 0, limit)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate products: %w", err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("parse product: %w", err)
		}

		products = append(products, dataToDTO(&data))
	}

	return products, nil
}

// DistinctCategories lists distinct non-empty categories among matching products.
func (rm *ReadModelImpl) DistinctCategories(ctx context.Context, filter *domain.FilterSpec) ([]string, error) {
	return rm.distinctValues(ctx, m_product.Category, filter)
}

// DistinctBrands lists distinct non-empty brands among matching products.
func (rm *ReadModelImpl) DistinctBrands(ctx context.Context, filter *domain.FilterSpec) ([]string, error) {
	return rm.distinctValues(ctx, m_product.Brand, filter)
}

func (rm *ReadModelImpl) distinctValues(ctx context.Context, column string, filter *domain.FilterSpec) ([]string, error) {
	stmt := rm.base(filter).
		Select(column).
		Distinct().
		Where(query.Neq(column, "")).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	values := make([]string, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate %s values: %w", column, err)
		}

		var value string
		if err := row.Columns(&value); err != nil {
			return nil, fmt.Errorf("parse %s value: %w", column, err)
		}
		values = append(values, value)
	}

	sortFold(values)
	return values, nil
}

// sortFold sorts case-insensitively, falling back to a byte comparison so
// values differing only by case still sort deterministically.
func sortFold(values []string) {
	sort.Slice(values, func(i, j int) bool {
		li, lj := strings.ToLower(values[i]), strings.ToLower(values[j])
		if li != lj {
			return li < lj
		}
		return values[i] < values[j]
	})
}

// AggregateStats computes the catalog summary statistics in a single
// aggregation statement. One statement means one snapshot: the stock
// counters always partition the total, instead of drifting apart the way
// separately issued counts could.
func (rm *ReadModelImpl) AggregateStats(ctx context.Context, filter *domain.FilterSpec) (*contracts.CatalogStats, error) {
	stmt := rm.base(filter).
		Select(
			"COUNT(*)",
			"IFNULL(SUM(price), 0.0)",
			"IFNULL(AVG(price), 0.0)",
			"IFNULL(MIN(price), 0.0)",
			"IFNULL(MAX(price), 0.0)",
			"IFNULL(SUM(stock), 0)",
			"COUNTIF(stock > 0)",
			"COUNTIF(stock <= 0)",
		).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return nil, fmt.Errorf("aggregate stats: %w", err)
	}

	var stats contracts.CatalogStats
	if err := row.Columns(
		&stats.TotalProducts,
		&stats.TotalValue,
		&stats.AvgPrice,
		&stats.MinPrice,
		&stats.MaxPrice,
		&stats.TotalStock,
		&stats.InStockCount,
		&stats.OutOfStockCount,
	); err != nil {
		return nil, fmt.Errorf("parse stats: %w", err)
	}

	return &stats, nil
}

// SuggestRows runs the substring predicate for term over name, brand, and
// category, projecting only the suggestion source fields. The window query
// carries the same id tie-break as the page queries so the raw order, and
// therefore the suggestion list, is stable across calls.
func (rm *ReadModelImpl) SuggestRows(ctx context.Context, term string, window int64) ([]contracts.SuggestionRow, error) {
	stmt := query.From(m_product.TableName).
		Select(m_product.ProductID, m_product.Name, m_product.Brand, m_product.Category).
		Where(query.Eq(m_product.IsActive, true)).
		Where(query.Or(
			query.ContainsFold(m_product.Name, term),
			query.ContainsFold(m_product.Brand, term),
			query.ContainsFold(m_product.Category, term),
		)).
		OrderBy(m_product.CreatedAt, query.Desc).
		OrderBy(m_product.ProductID, query.Asc).
		Limit(window).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	rows := make([]contracts.SuggestionRow, 0, window)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate suggestions: %w", err)
		}

		var sr contracts.SuggestionRow
		if err := row.Columns(&sr.ProductID, &sr.Name, &sr.Brand, &sr.Category); err != nil {
			return nil, fmt.Errorf("parse suggestion row: %w", err)
		}
		rows = append(rows, sr)
	}

	return rows, nil
}

// dataToDTO converts a database row to a ProductDTO.
func dataToDTO(data *m_product.Data) *contracts.ProductDTO {
	dto := &contracts.ProductDTO{
		ProductID:     data.ProductID,
		Name:          data.Name,
		Description:   data.Description,
		Category:      data.Category,
		Brand:         data.Brand,
		Price:         data.Price,
		Stock:         data.Stock,
		ImageURLs:     data.ImageURLs,
		Tags:          data.Tags,
		RatingAverage: data.RatingAverage,
		RatingCount:   data.RatingCount,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}

	if data.SKU.Valid {
		sku := data.SKU.StringVal
		dto.SKU = &sku
	}
	if data.Weight.Valid {
		weight := data.Weight.Float64
		dto.Weight = &weight
	}

	return dto
}
