package domain

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	// DefaultLimit is the page size when the caller does not supply one.
	DefaultLimit = 20
	// DefaultMaxLimit bounds the page size when no ceiling is configured.
	DefaultMaxLimit = 100
)

// FieldError describes one invalid filter parameter.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every invalid field in a filter request, so
// callers can correct all of them at once instead of one per round-trip.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "invalid filter parameters: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// ParseFilter turns raw query parameters into a validated FilterSpec.
// Unparseable numbers and contradictory ranges are reported per field via
// *ValidationError; nothing is silently dropped or swapped. Unknown sortBy
// and sortOrder values fall back to the default ordering since they only
// affect presentation, and limit is clamped to maxLimit rather than
// rejected. maxLimit <= 0 selects DefaultMaxLimit.
func ParseFilter(values url.Values, maxLimit int) (*FilterSpec, error) {
	if maxLimit <= 0 {
		maxLimit = DefaultMaxLimit
	}

	verr := &ValidationError{}
	f := DefaultFilter()

	f.Search = strings.TrimSpace(values.Get("search"))
	f.Category = strings.TrimSpace(values.Get("category"))
	f.Brand = strings.TrimSpace(values.Get("brand"))

	f.PriceMin = parsePrice(values, "minPrice", verr)
	f.PriceMax = parsePrice(values, "maxPrice", verr)
	if f.PriceMin != nil && f.PriceMax != nil && *f.PriceMin > *f.PriceMax {
		verr.add("minPrice", "minPrice cannot exceed maxPrice")
	}

	f.StockMin = parseStock(values, "minStock", verr)
	f.StockMax = parseStock(values, "maxStock", verr)
	if f.StockMin != nil && f.StockMax != nil && *f.StockMin > *f.StockMax {
		verr.add("minStock", "minStock cannot exceed maxStock")
	}

	if raw := values.Get("inStock"); raw != "" {
		inStock, err := strconv.ParseBool(raw)
		if err != nil {
			verr.add("inStock", "must be true or false")
		} else {
			f.InStock = &inStock
		}
	}

	switch SortField(values.Get("sortBy")) {
	case SortByName:
		f.SortBy = SortByName
	case SortByPrice:
		f.SortBy = SortByPrice
	case SortByStock:
		f.SortBy = SortByStock
	default:
		f.SortBy = SortByCreatedAt
	}
	if SortOrder(values.Get("sortOrder")) == SortAsc {
		f.SortOrder = SortAsc
	}

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			verr.add("page", "must be an integer")
		case page < 1:
			verr.add("page", "must be greater than or equal to 1")
		default:
			f.Page = page
		}
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			verr.add("limit", "must be an integer")
		case limit < 1:
			verr.add("limit", "must be greater than or equal to 1")
		default:
			f.Limit = limit
		}
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}

	if len(verr.Fields) > 0 {
		return nil, verr
	}
	return f, nil
}

func parsePrice(values url.Values, field string, verr *ValidationError) *float64 {
	raw := values.Get(field)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		verr.add(field, "must be a number")
		return nil
	}
	if v < 0 {
		verr.add(field, "must be non-negative")
		return nil
	}
	return &v
}

func parseStock(values url.Values, field string, verr *ValidationError) *int64 {
	raw := values.Get(field)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		verr.add(field, "must be an integer")
		return nil
	}
	if v < 0 {
		verr.add(field, "must be non-negative")
		return nil
	}
	return &v
}
