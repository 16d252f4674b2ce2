// Package testutil provides Spanner emulator setup and catalog fixtures
// for integration tests.
package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/shopfront/catalog-service/internal/fixture"
	"github.com/shopfront/catalog-service/internal/models/m_product"
)

// SetupSpannerTest creates a test Spanner client and returns a cleanup function.
func SetupSpannerTest(t *testing.T) (*spanner.Client, func()) {
	t.Helper()

	ctx := context.Background()

	client, err := spanner.NewClient(ctx, TestSpannerDB())
	require.NoError(t, err, "failed to create Spanner client")

	// Clean database before test
	CleanDatabase(t, client)

	cleanup := func() {
		CleanDatabase(t, client)
		client.Close()
	}

	return client, cleanup
}

// TestSpannerDB returns the test Spanner database path.
func TestSpannerDB() string {
	if db := os.Getenv("SPANNER_TEST_DATABASE"); db != "" {
		return db
	}
	return "projects/test-project/instances/test-instance/databases/catalog-test"
}

// CleanDatabase truncates the products table for test isolation.
func CleanDatabase(t *testing.T, client *spanner.Client) {
	t.Helper()

	ctx := context.Background()
	_, err := client.Apply(ctx, []*spanner.Mutation{m_product.NewModel().DeleteAllMut()})
	require.NoError(t, err, "failed to clean database")
}

// SeedSampleCatalog loads the ten-product sample catalog plus one inactive
// product, and returns the active products in insertion order.
func SeedSampleCatalog(t *testing.T, client *spanner.Client) []m_product.Data {
	t.Helper()

	ctx := context.Background()
	model := m_product.NewModel()
	sample := fixture.SampleCatalog()

	mutations := make([]*spanner.Mutation, 0, len(sample)+1)
	for i := range sample {
		mutations = append(mutations, model.InsertMut(&sample[i]))
	}
	inactive := fixture.InactiveProduct()
	mutations = append(mutations, model.InsertMut(&inactive))

	_, err := client.Apply(ctx, mutations)
	require.NoError(t, err, "failed to seed sample catalog")

	return sample
}

// CreateProduct inserts one active product with sensible defaults, applies
// the given overrides, and returns its id.
func CreateProduct(t *testing.T, client *spanner.Client, override func(*m_product.Data)) string {
	t.Helper()

	ctx := context.Background()
	now := time.Now().UTC()

	data := m_product.Data{
		ProductID:     uuid.NewString(),
		Name:          "Test Product",
		Description:   "Test product description",
		Category:      "Test Category",
		Brand:         "Test Brand",
		Price:         100.0,
		Stock:         10,
		RatingAverage: 4.0,
		RatingCount:   1,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if override != nil {
		override(&data)
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{m_product.NewModel().InsertMut(&data)})
	require.NoError(t, err, "failed to create test product")

	return data.ProductID
}
