package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/shopfront/catalog-service/internal/pkg/clock"
)

// NewRouter builds the catalog service router. The surface is read-only;
// product writes belong to the catalog-management service.
func NewRouter(h *CatalogHandler, logger *zap.Logger, clk clock.Clock) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger, clk))

	r.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.listProducts)
		pr.Get("/categories", h.listCategories)
		pr.Get("/brands", h.listBrands)
		pr.Get("/stats", h.getStats)
		pr.Get("/suggestions", h.getSuggestions)
		pr.Get("/{productID}", h.getProduct)
	})

	return r
}
