package suggest_products

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopfront/catalog-service/internal/app/catalog/contracts"
)

type fakeReadModel struct {
	contracts.ReadModel

	rows []contracts.SuggestionRow
	err  error

	calls      int
	lastTerm   string
	lastWindow int64
}

func (f *fakeReadModel) SuggestRows(_ context.Context, term string, window int64) ([]contracts.SuggestionRow, error) {
	f.calls++
	f.lastTerm = term
	f.lastWindow = window
	return f.rows, f.err
}

func TestQuery_Execute_DeduplicatesAcrossRows(t *testing.T) {
	rm := &fakeReadModel{rows: []contracts.SuggestionRow{
		{ProductID: "prod-001", Name: "iPhone 15 Pro", Brand: "Apple", Category: "Smartphones"},
		{ProductID: "prod-003", Name: "MacBook Pro 16-inch", Brand: "Apple", Category: "Computers"},
	}}
	q := NewQuery(rm, 0)

	got, err := q.Execute(context.Background(), "apple", 10)
	require.NoError(t, err)

	// Brand "Apple" repeats on the second row and must not reappear.
	assert.Equal(t, []contracts.Suggestion{
		{Type: contracts.SuggestionProduct, Value: "iPhone 15 Pro"},
		{Type: contracts.SuggestionBrand, Value: "Apple"},
		{Type: contracts.SuggestionCategory, Value: "Smartphones"},
		{Type: contracts.SuggestionProduct, Value: "MacBook Pro 16-inch"},
		{Type: contracts.SuggestionCategory, Value: "Computers"},
	}, got)
}

func TestQuery_Execute_SameValueDifferentTypesBothKept(t *testing.T) {
	rm := &fakeReadModel{rows: []contracts.SuggestionRow{
		{ProductID: "prod-010", Name: "Sony", Brand: "Sony", Category: "Audio"},
	}}
	q := NewQuery(rm, 0)

	got, err := q.Execute(context.Background(), "sony", 10)
	require.NoError(t, err)

	assert.Equal(t, []contracts.Suggestion{
		{Type: contracts.SuggestionProduct, Value: "Sony"},
		{Type: contracts.SuggestionBrand, Value: "Sony"},
		{Type: contracts.SuggestionCategory, Value: "Audio"},
	}, got)
}

func TestQuery_Execute_CapsAtMaxResults(t *testing.T) {
	rm := &fakeReadModel{rows: []contracts.SuggestionRow{
		{ProductID: "prod-001", Name: "iPhone 15 Pro", Brand: "Apple", Category: "Smartphones"},
		{ProductID: "prod-002", Name: "Samsung Galaxy S24 Ultra", Brand: "Samsung", Category: "Smartphones"},
	}}
	q := NewQuery(rm, 0)

	got, err := q.Execute(context.Background(), "phone", 4)
	require.NoError(t, err)

	require.Len(t, got, 4)
	assert.Equal(t, contracts.Suggestion{Type: contracts.SuggestionProduct, Value: "Samsung Galaxy S24 Ultra"}, got[3])
}

func TestQuery_Execute_SkipsEmptyFieldValues(t *testing.T) {
	rm := &fakeReadModel{rows: []contracts.SuggestionRow{
		{ProductID: "prod-050", Name: "Generic Cable", Brand: "", Category: ""},
	}}
	q := NewQuery(rm, 0)

	got, err := q.Execute(context.Background(), "cable", 10)
	require.NoError(t, err)

	assert.Equal(t, []contracts.Suggestion{
		{Type: contracts.SuggestionProduct, Value: "Generic Cable"},
	}, got)
}

func TestQuery_Execute_BlankTermSkipsStore(t *testing.T) {
	rm := &fakeReadModel{}
	q := NewQuery(rm, 0)

	for _, term := range []string{"", "   ", "\t"} {
		got, err := q.Execute(context.Background(), term, 10)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
	assert.Zero(t, rm.calls)
}

func TestQuery_Execute_TrimsTermBeforeQuerying(t *testing.T) {
	rm := &fakeReadModel{}
	q := NewQuery(rm, 25)

	_, err := q.Execute(context.Background(), "  iphone  ", 10)
	require.NoError(t, err)

	assert.Equal(t, "iphone", rm.lastTerm)
	assert.Equal(t, int64(25), rm.lastWindow)
}

func TestQuery_Execute_StoreErrorWrapped(t *testing.T) {
	sentinel := errors.New("kaboom")
	q := NewQuery(&fakeReadModel{err: sentinel}, 0)

	_, err := q.Execute(context.Background(), "iphone", 10)
	require.ErrorIs(t, err, sentinel)
}
