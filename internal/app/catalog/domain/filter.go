package domain

import (
	"strings"

	"github.com/shopfront/catalog-service/internal/models/m_product"
	"github.com/shopfront/catalog-service/internal/pkg/query"
)

// SortField enumerates the sortable product fields.
type SortField string

const (
	SortByName      SortField = "name"
	SortByPrice     SortField = "price"
	SortByStock     SortField = "stock"
	SortByCreatedAt SortField = "createdAt"
)

// SortOrder enumerates sort directions.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// FilterSpec is the validated, typed representation of a catalog query:
// free-text search, facet selections, sorting, and pagination. A nil
// FilterSpec means "all active products".
type FilterSpec struct {
	Search   string
	Category string
	Brand    string
	PriceMin *float64
	PriceMax *float64
	StockMin *int64
	StockMax *int64
	InStock  *bool
	SortBy   SortField
	SortOrder SortOrder
	Page     int
	Limit    int
}

// DefaultFilter returns a FilterSpec with no facet selections and
// default sorting/pagination (most recent first, first page).
func DefaultFilter() *FilterSpec {
	return &FilterSpec{
		SortBy:    SortByCreatedAt,
		SortOrder: SortDesc,
		Page:      1,
		Limit:     DefaultLimit,
	}
}

// Conditions builds the store predicate for this filter as a conjunction
// of the active clauses. Absent fields contribute no clause. Only active
// products are ever visible, so is_active = true is always the first clause.
// Safe on a nil receiver.
func (f *FilterSpec) Conditions() []query.Condition {
	conds := []query.Condition{query.Eq(m_product.IsActive, true)}
	if f == nil {
		return conds
	}

	if term := strings.TrimSpace(f.Search); term != "" {
		// Plain substring containment across three fields; matches are
		// not ranked, only filtered.
		conds = append(conds, query.Or(
			query.ContainsFold(m_product.Name, term),
			query.ContainsFold(m_product.Description, term),
			query.ContainsFold(m_product.Brand, term),
		))
	}

	if f.Category != "" {
		conds = append(conds, query.EqFold(m_product.Category, f.Category))
	}
	if f.Brand != "" {
		conds = append(conds, query.EqFold(m_product.Brand, f.Brand))
	}

	if f.PriceMin != nil {
		conds = append(conds, query.Gte(m_product.Price, *f.PriceMin))
	}
	if f.PriceMax != nil {
		conds = append(conds, query.Lte(m_product.Price, *f.PriceMax))
	}

	if f.StockMin != nil {
		conds = append(conds, query.Gte(m_product.Stock, *f.StockMin))
	}
	if f.StockMax != nil {
		conds = append(conds, query.Lte(m_product.Stock, *f.StockMax))
	}

	if f.InStock != nil {
		if *f.InStock {
			conds = append(conds, query.Gt(m_product.Stock, int64(0)))
		} else {
			conds = append(conds, query.Lte(m_product.Stock, int64(0)))
		}
	}

	return conds
}

// OrderTerms resolves the requested sort into a deterministic ordering.
// The product id is always appended as the final ascending term: without
// that tie-break, rows sharing the same primary sort value could change
// relative order between pages. Safe on a nil receiver.
func (f *FilterSpec) OrderTerms() []query.OrderTerm {
	column := m_product.CreatedAt
	direction := query.Desc

	if f != nil {
		switch f.SortBy {
		case SortByName:
			column = m_product.Name
		case SortByPrice:
			column = m_product.Price
		case SortByStock:
			column = m_product.Stock
		case SortByCreatedAt:
			column = m_product.CreatedAt
		}
		if f.SortOrder == SortAsc {
			direction = query.Asc
		}
	}

	return []query.OrderTerm{
		{Column: column, Direction: direction},
		{Column: m_product.ProductID, Direction: query.Asc},
	}
}
