//go:build integration

package repo

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopfront/catalog-service/internal/app/catalog/contracts"
	"github.com/shopfront/catalog-service/internal/app/catalog/domain"
	"github.com/shopfront/catalog-service/internal/models/m_product"
	"github.com/shopfront/catalog-service/internal/testutil"
)

func setupReadModel(t *testing.T) (contracts.ReadModel, *spanner.Client) {
	t.Helper()

	client, cleanup := testutil.SetupSpannerTest(t)
	t.Cleanup(cleanup)

	return NewReadModel(client), client
}

func productIDs(products []*contracts.ProductDTO) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ProductID)
	}
	return ids
}

func TestReadModel_GetProductByID(t *testing.T) {
	rm, client := setupReadModel(t)
	testutil.SeedSampleCatalog(t, client)
	ctx := context.Background()

	t.Run("returns full product", func(t *testing.T) {
		dto, err := rm.GetProductByID(ctx, "prod-001")
		require.NoError(t, err)

		assert.Equal(t, "iPhone 15 Pro", dto.Name)
		assert.Equal(t, "Smartphones", dto.Category)
		assert.Equal(t, "Apple", dto.Brand)
		assert.Equal(t, 999.99, dto.Price)
		assert.Equal(t, int64(50), dto.Stock)
		require.NotNil(t, dto.SKU)
		assert.Equal(t, "APL-IP15P-128", *dto.SKU)
		require.NotNil(t, dto.Weight)
		assert.True(t, dto.IsActive)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := rm.GetProductByID(ctx, "no-such-product")
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("inactive product is invisible", func(t *testing.T) {
		_, err := rm.GetProductByID(ctx, "prod-900")
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestReadModel_CountAndFetch_Filtering(t *testing.T) {
	rm, client := setupReadModel(t)
	testutil.SeedSampleCatalog(t, client)
	ctx := context.Background()

	fetchAll := func(t *testing.T, filter *domain.FilterSpec) []*contracts.ProductDTO {
		t.Helper()
		products, err := rm.FetchProducts(ctx, filter, 100, 0)
		require.NoError(t, err)
		return products
	}

	t.Run("no filter counts all active products", func(t *testing.T) {
		count, err := rm.CountProducts(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(10), count)

		assert.NotContains(t, productIDs(fetchAll(t, nil)), "prod-900")
	})

	t.Run("search matches name case-insensitively", func(t *testing.T) {
		products := fetchAll(t, &domain.FilterSpec{Search: "iphone"})
		assert.Equal(t, []string{"prod-001"}, productIDs(products))
	})

	t.Run("search matches description and brand too", func(t *testing.T) {
		// "titanium" appears only in the iPhone description.
		products := fetchAll(t, &domain.FilterSpec{Search: "titanium"})
		assert.Equal(t, []string{"prod-001"}, productIDs(products))

		// "dyson" matches by brand (and name).
		products = fetchAll(t, &domain.FilterSpec{Search: "DYSON"})
		assert.Equal(t, []string{"prod-008"}, productIDs(products))
	})

	t.Run("category facet", func(t *testing.T) {
		products := fetchAll(t, &domain.FilterSpec{Category: "smartphones"})
		assert.ElementsMatch(t, []string{"prod-001", "prod-002"}, productIDs(products))
	})

	t.Run("price range is inclusive", func(t *testing.T) {
		min, max := 500.0, 1500.0
		products := fetchAll(t, &domain.FilterSpec{PriceMin: &min, PriceMax: &max})

		ids := productIDs(products)
		assert.ElementsMatch(t, []string{"prod-001", "prod-002", "prod-006", "prod-008"}, ids)
	})

	t.Run("combined facets narrow conjunctively", func(t *testing.T) {
		min := 800.0
		filter := &domain.FilterSpec{Brand: "Apple", Category: "Smartphones", PriceMin: &min}

		count, err := rm.CountProducts(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
		assert.Equal(t, []string{"prod-001"}, productIDs(fetchAll(t, filter)))
	})

	t.Run("inStock filter", func(t *testing.T) {
		inStock := true
		count, err := rm.CountProducts(ctx, &domain.FilterSpec{InStock: &inStock})
		require.NoError(t, err)
		assert.Equal(t, int64(9), count)

		inStock = false
		products := fetchAll(t, &domain.FilterSpec{InStock: &inStock})
		assert.Equal(t, []string{"prod-006"}, productIDs(products))
	})

	t.Run("no matches yields empty slice", func(t *testing.T) {
		products := fetchAll(t, &domain.FilterSpec{Search: "zzz-not-in-catalog"})
		assert.NotNil(t, products)
		assert.Empty(t, products)
	})
}

func TestReadModel_FetchProducts_Ordering(t *testing.T) {
	rm, client := setupReadModel(t)
	testutil.SeedSampleCatalog(t, client)
	ctx := context.Background()

	t.Run("price descending breaks ties by id", func(t *testing.T) {
		// prod-003 and prod-004 share price 2499.99; the id tie-break
		// must put prod-003 first, every time.
		products, err := rm.FetchProducts(ctx,
			&domain.FilterSpec{SortBy: domain.SortByPrice, SortOrder: domain.SortDesc}, 5, 0)
		require.NoError(t, err)

		assert.Equal(t,
			[]string{"prod-003", "prod-004", "prod-009", "prod-006", "prod-002"},
			productIDs(products))
	})

	t.Run("default ordering is most recent first", func(t *testing.T) {
		products, err := rm.FetchProducts(ctx, nil, 3, 0)
		require.NoError(t, err)

		assert.Equal(t, []string{"prod-010", "prod-009", "prod-008"}, productIDs(products))
	})

	t.Run("name ascending", func(t *testing.T) {
		products, err := rm.FetchProducts(ctx,
			&domain.FilterSpec{SortBy: domain.SortByName, SortOrder: domain.SortAsc}, 2, 0)
		require.NoError(t, err)

		assert.Equal(t, []string{"prod-010", "prod-009"}, productIDs(products))
	})
}

func TestReadModel_FetchProducts_PaginationCompleteness(t *testing.T) {
	rm, client := setupReadModel(t)
	testutil.SeedSampleCatalog(t, client)
	ctx := context.Background()

	// Walking every page must visit each product exactly once.
	seen := make(map[string]int)
	for offset := int64(0); offset < 12; offset += 3 {
		products, err := rm.FetchProducts(ctx, nil, 3, offset)
		require.NoError(t, err)
		for _, p := range products {
			seen[p.ProductID]++
		}
	}

	assert.Len(t, seen, 10)
	for id, n := range seen {
		assert.Equal(t, 1, n, "product %s seen %d times", id, n)
	}
}

func TestReadModel_DistinctFacets(t *testing.T) {
	rm, client := setupReadModel(t)
	testutil.SeedSampleCatalog(t, client)
	ctx := context.Background()

	t.Run("categories deduplicated and sorted", func(t *testing.T) {
		categories, err := rm.DistinctCategories(ctx, nil)
		require.NoError(t, err)

		assert.Equal(t,
			[]string{"Audio", "Cameras", "Computers", "Gaming", "Home Appliances", "Smartphones"},
			categories)
	})

	t.Run("brands deduplicated and sorted", func(t *testing.T) {
		brands, err := rm.DistinctBrands(ctx, nil)
		require.NoError(t, err)

		assert.Equal(t,
			[]string{"Apple", "Bose", "Canon", "Dell", "Dyson", "LG", "Nintendo", "Samsung", "Sony"},
			brands)
	})

	t.Run("filtered facet lists narrow to the selection", func(t *testing.T) {
		brands, err := rm.DistinctBrands(ctx, &domain.FilterSpec{Category: "Computers"})
		require.NoError(t, err)

		assert.Equal(t, []string{"Apple", "Dell"}, brands)
	})

	t.Run("empty category values are excluded", func(t *testing.T) {
		testutil.CreateProduct(t, client, func(d *m_product.Data) {
			d.Category = ""
			d.Brand = "Blankware"
		})

		categories, err := rm.DistinctCategories(ctx, nil)
		require.NoError(t, err)
		assert.NotContains(t, categories, "")
	})
}

func TestReadModel_AggregateStats(t *testing.T) {
	rm, client := setupReadModel(t)
	ctx := context.Background()

	t.Run("empty catalog yields zeroes", func(t *testing.T) {
		stats, err := rm.AggregateStats(ctx, nil)
		require.NoError(t, err)

		assert.Equal(t, &contracts.CatalogStats{}, stats)
	})

	t.Run("seeded catalog", func(t *testing.T) {
		testutil.SeedSampleCatalog(t, client)

		stats, err := rm.AggregateStats(ctx, nil)
		require.NoError(t, err)

		assert.Equal(t, int64(10), stats.TotalProducts)
		assert.InDelta(t, 12729.90, stats.TotalValue, 0.01)
		assert.InDelta(t, 1272.99, stats.AvgPrice, 0.01)
		assert.Equal(t, 349.99, stats.MinPrice)
		assert.Equal(t, 2499.99, stats.MaxPrice)
		assert.Equal(t, int64(368), stats.TotalStock)
		assert.Equal(t, int64(9), stats.InStockCount)
		assert.Equal(t, int64(1), stats.OutOfStockCount)
		assert.Equal(t, stats.TotalProducts, stats.InStockCount+stats.OutOfStockCount)
	})

	t.Run("filtered stats", func(t *testing.T) {
		stats, err := rm.AggregateStats(ctx, &domain.FilterSpec{Category: "Smartphones"})
		require.NoError(t, err)

		assert.Equal(t, int64(2), stats.TotalProducts)
		assert.Equal(t, 999.99, stats.MinPrice)
		assert.Equal(t, 1199.99, stats.MaxPrice)
	})
}

func TestReadModel_SuggestRows(t *testing.T) {
	rm, client := setupReadModel(t)
	testutil.SeedSampleCatalog(t, client)
	ctx := context.Background()

	t.Run("matches across name brand and category", func(t *testing.T) {
		rows, err := rm.SuggestRows(ctx, "apple", 10)
		require.NoError(t, err)

		// Both Apple products, most recent first.
		require.Len(t, rows, 2)
		assert.Equal(t, "prod-003", rows[0].ProductID)
		assert.Equal(t, "prod-001", rows[1].ProductID)
	})

	t.Run("window bounds the scan", func(t *testing.T) {
		rows, err := rm.SuggestRows(ctx, "o", 3)
		require.NoError(t, err)
		assert.Len(t, rows, 3)
	})

	t.Run("order is stable across calls", func(t *testing.T) {
		first, err := rm.SuggestRows(ctx, "s", 10)
		require.NoError(t, err)
		second, err := rm.SuggestRows(ctx, "s", 10)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("like metacharacters match literally", func(t *testing.T) {
		testutil.CreateProduct(t, client, func(d *m_product.Data) {
			d.Name = "100% Cotton Tote"
			d.Category = "Accessories"
		})

		rows, err := rm.SuggestRows(ctx, "100%", 10)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "100% Cotton Tote", rows[0].Name)
	})
}
