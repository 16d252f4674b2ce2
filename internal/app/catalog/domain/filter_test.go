package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopfront/catalog-service/internal/models/m_product"
	"github.com/shopfront/catalog-service/internal/pkg/query"
)

func ptrFloat(v float64) *float64 { return &v }
func ptrInt64(v int64) *int64     { return &v }
func ptrBool(v bool) *bool        { return &v }

func buildSQL(f *FilterSpec) (string, map[string]interface{}) {
	stmt := query.From(m_product.TableName).
		Where(f.Conditions()...).
		OrderByTerms(f.OrderTerms()...).
		Build()
	return stmt.SQL, stmt.Params
}

func TestFilterSpec_NilReceiverSelectsActiveOnly(t *testing.T) {
	var f *FilterSpec

	sql, params := buildSQL(f)

	assert.Equal(t,
		"SELECT * FROM products WHERE is_active = @p0 ORDER BY created_at DESC, product_id ASC",
		sql)
	assert.Equal(t, map[string]interface{}{"p0": true}, params)
}

func TestFilterSpec_SearchSpansNameDescriptionBrand(t *testing.T) {
	f := &FilterSpec{Search: "iPhone"}

	sql, params := buildSQL(f)

	assert.Contains(t, sql,
		"(LOWER(name) LIKE '%' || @p1 || '%' OR LOWER(description) LIKE '%' || @p2 || '%' OR LOWER(brand) LIKE '%' || @p3 || '%')")
	assert.Equal(t, "iphone", params["p1"])
	assert.Equal(t, "iphone", params["p2"])
	assert.Equal(t, "iphone", params["p3"])
}

func TestFilterSpec_SearchWhitespaceOnlyIsIgnored(t *testing.T) {
	f := &FilterSpec{Search: "   "}

	sql, _ := buildSQL(f)

	assert.NotContains(t, sql, "LIKE")
}

func TestFilterSpec_FacetsAreCaseInsensitiveEquality(t *testing.T) {
	f := &FilterSpec{Category: "Smartphones", Brand: "Apple"}

	sql, params := buildSQL(f)

	assert.Contains(t, sql, "LOWER(category) = @p1")
	assert.Contains(t, sql, "LOWER(brand) = @p2")
	assert.Equal(t, "smartphones", params["p1"])
	assert.Equal(t, "apple", params["p2"])
}

func TestFilterSpec_RangeBoundsAreInclusive(t *testing.T) {
	f := &FilterSpec{
		PriceMin: ptrFloat(500),
		PriceMax: ptrFloat(1500),
		StockMin: ptrInt64(1),
		StockMax: ptrInt64(99),
	}

	sql, params := buildSQL(f)

	assert.Contains(t, sql, "price >= @p1")
	assert.Contains(t, sql, "price <= @p2")
	assert.Contains(t, sql, "stock >= @p3")
	assert.Contains(t, sql, "stock <= @p4")
	assert.Equal(t, 500.0, params["p1"])
	assert.Equal(t, int64(99), params["p4"])
}

func TestFilterSpec_InStockTranslation(t *testing.T) {
	sql, params := buildSQL(&FilterSpec{InStock: ptrBool(true)})
	assert.Contains(t, sql, "stock > @p1")
	assert.Equal(t, int64(0), params["p1"])

	sql, params = buildSQL(&FilterSpec{InStock: ptrBool(false)})
	assert.Contains(t, sql, "stock <= @p1")
	assert.Equal(t, int64(0), params["p1"])
}

func TestFilterSpec_ConjunctionOrder(t *testing.T) {
	f := &FilterSpec{
		Search:   "pro",
		Category: "Computers",
		PriceMin: ptrFloat(1000),
	}

	sql, _ := buildSQL(f)

	assert.Equal(t,
		"SELECT * FROM products"+
			" WHERE is_active = @p0"+
			" AND (LOWER(name) LIKE '%' || @p1 || '%' OR LOWER(description) LIKE '%' || @p2 || '%' OR LOWER(brand) LIKE '%' || @p3 || '%')"+
			" AND LOWER(category) = @p4"+
			" AND price >= @p5"+
			" ORDER BY created_at DESC, product_id ASC",
		sql)
}

func TestFilterSpec_OrderTermsResolution(t *testing.T) {
	cases := []struct {
		name   string
		sortBy SortField
		order  SortOrder
		want   []query.OrderTerm
	}{
		{
			name:   "price ascending",
			sortBy: SortByPrice,
			order:  SortAsc,
			want: []query.OrderTerm{
				{Column: m_product.Price, Direction: query.Asc},
				{Column: m_product.ProductID, Direction: query.Asc},
			},
		},
		{
			name:   "name descending",
			sortBy: SortByName,
			order:  SortDesc,
			want: []query.OrderTerm{
				{Column: m_product.Name, Direction: query.Desc},
				{Column: m_product.ProductID, Direction: query.Asc},
			},
		},
		{
			name:   "stock ascending",
			sortBy: SortByStock,
			order:  SortAsc,
			want: []query.OrderTerm{
				{Column: m_product.Stock, Direction: query.Asc},
				{Column: m_product.ProductID, Direction: query.Asc},
			},
		},
		{
			name:   "created at descending is the default",
			sortBy: SortByCreatedAt,
			order:  SortDesc,
			want: []query.OrderTerm{
				{Column: m_product.CreatedAt, Direction: query.Desc},
				{Column: m_product.ProductID, Direction: query.Asc},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := &FilterSpec{SortBy: tc.sortBy, SortOrder: tc.order}
			assert.Equal(t, tc.want, f.OrderTerms())
		})
	}
}

func TestFilterSpec_DefaultFilter(t *testing.T) {
	f := DefaultFilter()

	require.NotNil(t, f)
	assert.Equal(t, SortByCreatedAt, f.SortBy)
	assert.Equal(t, SortDesc, f.SortOrder)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, DefaultLimit, f.Limit)
	assert.Len(t, f.Conditions(), 1)
}
