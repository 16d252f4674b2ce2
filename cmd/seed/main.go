package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	"github.com/shopfront/catalog-service/internal/fixture"
	"github.com/shopfront/catalog-service/internal/models/m_product"
)

var (
	spannerDB = flag.String("database", envOrDefault("SPANNER_DATABASE",
		"projects/test-project/instances/dev-instance/databases/catalog-db"), "Spanner database path")
	extra = flag.Int("extra", 0, "Number of extra synthetic products to generate")
)

var (
	categories = []string{"Smartphones", "Computers", "Audio", "Gaming", "Cameras", "Home Appliances"}
	brands     = []string{"Apple", "Samsung", "Sony", "Dell", "LG", "Canon", "Bose"}

	// Stable namespace so synthetic ids are deterministic per index.
	syntheticNamespace = uuid.MustParse("7b0d5a48-4c6e-43d2-9c43-0a11bfc45eed")
)

func main() {
	flag.Parse()

	ctx := context.Background()
	if err := run(ctx); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}

func run(ctx context.Context) error {
	client, err := spanner.NewClient(ctx, *spannerDB)
	if err != nil {
		return fmt.Errorf("create Spanner client: %w", err)
	}
	defer client.Close()

	model := m_product.NewModel()

	mutations := make([]*spanner.Mutation, 0, len(fixture.SampleCatalog())+*extra+1)
	for _, data := range fixture.SampleCatalog() {
		mutations = append(mutations, model.InsertMut(&data))
	}
	inactive := fixture.InactiveProduct()
	mutations = append(mutations, model.InsertMut(&inactive))

	for i := 0; i < *extra; i++ {
		data := syntheticProduct(i)
		mutations = append(mutations, model.InsertMut(&data))
	}

	if _, err := client.Apply(ctx, mutations); err != nil {
		return fmt.Errorf("apply seed mutations: %w", err)
	}

	log.Printf("Seeded %d products into %s", len(mutations), *spannerDB)
	return nil
}

// syntheticProduct generates filler inventory for load and pagination
// experiments. Prices and stock are random; everything else is derived
// from the index so reruns update rather than duplicate.
func syntheticProduct(i int) m_product.Data {
	now := time.Now().UTC()
	return m_product.Data{
		ProductID:     uuid.NewSHA1(syntheticNamespace, []byte(fmt.Sprintf("synthetic-%d", i))).String(),
		Name:          fmt.Sprintf("Synthetic Product %04d", i),
		Description:   "Generated catalog filler",
		Category:      categories[i%len(categories)],
		Brand:         brands[i%len(brands)],
		Price:         float64(rand.Intn(250000)) / 100,
		Stock:         int64(rand.Intn(200)),
		Tags:          []string{"synthetic"},
		RatingAverage: float64(rand.Intn(51)) / 10,
		RatingCount:   int64(rand.Intn(500)),
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
