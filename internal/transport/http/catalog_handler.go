package http

import (
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/shopfront/catalog-service/internal/app/catalog/contracts"
	"github.com/shopfront/catalog-service/internal/app/catalog/domain"
	"github.com/shopfront/catalog-service/internal/app/catalog/queries/catalog_stats"
	"github.com/shopfront/catalog-service/internal/app/catalog/queries/get_product"
	"github.com/shopfront/catalog-service/internal/app/catalog/queries/list_facets"
	"github.com/shopfront/catalog-service/internal/app/catalog/queries/search_products"
	"github.com/shopfront/catalog-service/internal/app/catalog/queries/suggest_products"
)

// CatalogHandler serves the read-only catalog HTTP surface.
type CatalogHandler struct {
	search  *search_products.Query
	detail  *get_product.Query
	facets  *list_facets.Query
	stats   *catalog_stats.Query
	suggest *suggest_products.Query

	maxLimit       int
	maxSuggestions int
	logger         *zap.Logger
}

// NewCatalogHandler creates a new catalog HTTP handler.
func NewCatalogHandler(
	search *search_products.Query,
	detail *get_product.Query,
	facets *list_facets.Query,
	stats *catalog_stats.Query,
	suggest *suggest_products.Query,
	maxLimit int,
	maxSuggestions int,
	logger *zap.Logger,
) *CatalogHandler {
	if maxLimit <= 0 {
		maxLimit = domain.DefaultMaxLimit
	}
	if maxSuggestions <= 0 {
		maxSuggestions = suggest_products.DefaultWindow
	}
	return &CatalogHandler{
		search:         search,
		detail:         detail,
		facets:         facets,
		stats:          stats,
		suggest:        suggest,
		maxLimit:       maxLimit,
		maxSuggestions: maxSuggestions,
		logger:         logger,
	}
}

type ratingsPayload struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

type productPayload struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	Category    string         `json:"category"`
	Brand       string         `json:"brand"`
	SKU         *string        `json:"sku,omitempty"`
	Stock       int64          `json:"stock"`
	Images      []string       `json:"images"`
	Tags        []string       `json:"tags"`
	Weight      *float64       `json:"weight,omitempty"`
	Ratings     ratingsPayload `json:"ratings"`
	IsActive    bool           `json:"isActive"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// paginationPayload uses the field names the storefront callers rely on.
// NextPage/PrevPage serialize as null when there is no such page.
type paginationPayload struct {
	CurrentPage   int   `json:"currentPage"`
	TotalPages    int   `json:"totalPages"`
	TotalProducts int64 `json:"totalProducts"`
	HasNextPage   bool  `json:"hasNextPage"`
	HasPrevPage   bool  `json:"hasPrevPage"`
	NextPage      *int  `json:"nextPage"`
	PrevPage      *int  `json:"prevPage"`
}

type pageResponse struct {
	Products   []productPayload  `json:"products"`
	Pagination paginationPayload `json:"pagination"`
}

type statsPayload struct {
	TotalProducts   int64   `json:"totalProducts"`
	TotalValue      float64 `json:"totalValue"`
	AvgPrice        float64 `json:"avgPrice"`
	MinPrice        float64 `json:"minPrice"`
	MaxPrice        float64 `json:"maxPrice"`
	TotalStock      int64   `json:"totalStock"`
	InStockCount    int64   `json:"inStockCount"`
	OutOfStockCount int64   `json:"outOfStockCount"`
}

type suggestionPayload struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// listProducts handles GET /products.
func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	filter, err := domain.ParseFilter(r.URL.Query(), h.maxLimit)
	if err != nil {
		h.writeError(w, err)
		return
	}

	result, err := h.search.Execute(r.Context(), filter)
	if err != nil {
		h.writeError(w, err)
		return
	}

	products := make([]productPayload, 0, len(result.Products))
	for _, dto := range result.Products {
		products = append(products, toProductPayload(dto))
	}

	h.writeJSON(w, http.StatusOK, pageResponse{
		Products: products,
		Pagination: paginationPayload{
			CurrentPage:   result.Pagination.CurrentPage,
			TotalPages:    result.Pagination.TotalPages,
			TotalProducts: result.Pagination.TotalItems,
			HasNextPage:   result.Pagination.HasNext,
			HasPrevPage:   result.Pagination.HasPrev,
			NextPage:      result.Pagination.NextPage,
			PrevPage:      result.Pagination.PrevPage,
		},
	})
}

// getProduct handles GET /products/{productID}.
func (h *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	dto, err := h.detail.Execute(r.Context(), productID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toProductPayload(dto))
}

// listCategories handles GET /products/categories.
func (h *CatalogHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	filter, err := facetFilter(r.URL.Query(), h.maxLimit)
	if err != nil {
		h.writeError(w, err)
		return
	}

	categories, err := h.facets.Categories(r.Context(), filter)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, categories)
}

// listBrands handles GET /products/brands.
func (h *CatalogHandler) listBrands(w http.ResponseWriter, r *http.Request) {
	filter, err := facetFilter(r.URL.Query(), h.maxLimit)
	if err != nil {
		h.writeError(w, err)
		return
	}

	brands, err := h.facets.Brands(r.Context(), filter)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, brands)
}

// getStats handles GET /products/stats.
func (h *CatalogHandler) getStats(w http.ResponseWriter, r *http.Request) {
	filter, err := facetFilter(r.URL.Query(), h.maxLimit)
	if err != nil {
		h.writeError(w, err)
		return
	}

	stats, err := h.stats.Execute(r.Context(), filter)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, statsPayload{
		TotalProducts:   stats.TotalProducts,
		TotalValue:      stats.TotalValue,
		AvgPrice:        stats.AvgPrice,
		MinPrice:        stats.MinPrice,
		MaxPrice:        stats.MaxPrice,
		TotalStock:      stats.TotalStock,
		InStockCount:    stats.InStockCount,
		OutOfStockCount: stats.OutOfStockCount,
	})
}

// getSuggestions handles GET /products/suggestions?q=.
func (h *CatalogHandler) getSuggestions(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.suggest.Execute(r.Context(), r.URL.Query().Get("q"), h.maxSuggestions)
	if err != nil {
		h.writeError(w, err)
		return
	}

	payload := make([]suggestionPayload, 0, len(suggestions))
	for _, s := range suggestions {
		payload = append(payload, suggestionPayload{Type: string(s.Type), Value: s.Value})
	}

	h.writeJSON(w, http.StatusOK, payload)
}

// facetFilter parses the optional filter for the facet/stats endpoints.
// With no filter parameters present it returns nil, which both means
// "all active products" and lets the unfiltered lists come from the
// reference-data cache.
func facetFilter(values url.Values, maxLimit int) (*domain.FilterSpec, error) {
	filterParams := []string{
		"search", "category", "brand",
		"minPrice", "maxPrice", "minStock", "maxStock", "inStock",
	}
	for _, p := range filterParams {
		if values.Get(p) != "" {
			return domain.ParseFilter(values, maxLimit)
		}
	}
	return nil, nil
}

func toProductPayload(dto *contracts.ProductDTO) productPayload {
	images := dto.ImageURLs
	if images == nil {
		images = []string{}
	}
	tags := dto.Tags
	if tags == nil {
		tags = []string{}
	}

	return productPayload{
		ID:          dto.ProductID,
		Name:        dto.Name,
		Description: dto.Description,
		Price:       dto.Price,
		Category:    dto.Category,
		Brand:       dto.Brand,
		SKU:         dto.SKU,
		Stock:       dto.Stock,
		Images:      images,
		Tags:        tags,
		Weight:      dto.Weight,
		Ratings: ratingsPayload{
			Average: dto.RatingAverage,
			Count:   dto.RatingCount,
		},
		IsActive:  dto.IsActive,
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	}
}
