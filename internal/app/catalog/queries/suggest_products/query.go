package suggest_products

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopfront/catalog-service/internal/app/catalog/contracts"
)

// DefaultWindow is how many raw rows the suggestion query scans. The
// window is intentionally small: suggestions are a hint, not a result set.
const DefaultWindow = 10

// Query handles the autocomplete suggestion use case.
type Query struct {
	readModel contracts.ReadModel
	window    int64
}

// NewQuery creates a new suggestion query. window <= 0 selects DefaultWindow.
func NewQuery(readModel contracts.ReadModel, window int64) *Query {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Query{
		readModel: readModel,
		window:    window,
	}
}

// Execute returns up to maxResults deduplicated suggestions for a partial
// term. A blank term yields an empty list without touching the store. The
// raw query is deterministically ordered, so for fixed data the suggestion
// list and its order are identical across calls.
func (q *Query) Execute(ctx context.Context, term string, maxResults int) ([]contracts.Suggestion, error) {
	term = strings.TrimSpace(term)
	if term == "" || maxResults <= 0 {
		return []contracts.Suggestion{}, nil
	}

	rows, err := q.readModel.SuggestRows(ctx, term, q.window)
	if err != nil {
		return nil, fmt.Errorf("suggest rows: %w", err)
	}

	return collect(rows, maxResults), nil
}

// collect scans raw rows in order, appending the (product, name),
// (brand, brand), and (category, category) pairs the first time each
// (type, value) pair is seen, stopping once maxResults are gathered.
func collect(rows []contracts.SuggestionRow, maxResults int) []contracts.Suggestion {
	type key struct {
		t contracts.SuggestionType
		v string
	}

	seen := make(map[key]struct{})
	out := make([]contracts.Suggestion, 0, maxResults)

	add := func(t contracts.SuggestionType, value string) {
		if len(out) >= maxResults || value == "" {
			return
		}
		k := key{t: t, v: value}
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		out = append(out, contracts.Suggestion{Type: t, Value: value})
	}

	for _, row := range rows {
		add(contracts.SuggestionProduct, row.Name)
		add(contracts.SuggestionBrand, row.Brand)
		add(contracts.SuggestionCategory, row.Category)
		if len(out) >= maxResults {
			break
		}
	}

	return out
}
