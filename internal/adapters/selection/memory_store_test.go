package selection_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primelogicsol/artstay-booking/internal/adapters/selection"
	"github.com/primelogicsol/artstay-booking/internal/domain/entities"
)

func strPtr(s string) *string { return &s }

func TestMemoryStore_GetReturnsEmptySelection(t *testing.T) {
	store := selection.NewMemoryStore()

	sel, err := store.Get(context.Background(), "sess-1", entities.VerticalArtisan)
	require.NoError(t, err)
	require.NotNil(t, sel)
	assert.True(t, sel.IsEmpty())
	assert.Equal(t, entities.VerticalArtisan, sel.Vertical)
	assert.Empty(t, sel.StartDate)
	assert.Empty(t, sel.EndDate)
}

func TestMemoryStore_MergeIsShallow(t *testing.T) {
	ctx := context.Background()
	store := selection.NewMemoryStore()

	item := &entities.ChosenItem{
		ID:           "pkg-1",
		Title:        "Pashmina Weaving Immersion",
		DurationDays: 3,
		Fee:          decimal.NewFromInt(120),
		Currency:     "USD",
	}

	_, err := store.Merge(ctx, "sess-1", entities.VerticalArtisan, entities.SelectionPatch{ChosenItem: item})
	require.NoError(t, err)

	// Writing only the dates leaves the chosen item untouched.
	sel, err := store.Merge(ctx, "sess-1", entities.VerticalArtisan, entities.SelectionPatch{
		StartDate: strPtr("2026-09-01"),
		EndDate:   strPtr("2026-09-03"),
	})
	require.NoError(t, err)
	require.NotNil(t, sel.ChosenItem)
	assert.Equal(t, "pkg-1", sel.ChosenItem.ID)
	assert.Equal(t, "2026-09-01", sel.StartDate)
	assert.Equal(t, "2026-09-03", sel.EndDate)
	assert.True(t, sel.DatesComplete())
}

func TestMemoryStore_EmptySelectionCarriesNoDates(t *testing.T) {
	ctx := context.Background()
	store := selection.NewMemoryStore()

	// Dates written before any item is chosen are discarded by the
	// empty-selection invariant.
	sel, err := store.Merge(ctx, "sess-1", entities.VerticalSafari, entities.SelectionPatch{
		StartDate: strPtr("2026-09-01"),
	})
	require.NoError(t, err)
	assert.True(t, sel.IsEmpty())
	assert.Empty(t, sel.StartDate)
}

func TestMemoryStore_NoCrossVerticalOrSessionLeakage(t *testing.T) {
	ctx := context.Background()
	store := selection.NewMemoryStore()

	item := &entities.ChosenItem{ID: "tour-9", Title: "Saffron Trail", DurationDays: 2}
	_, err := store.Merge(ctx, "sess-1", entities.VerticalSafari, entities.SelectionPatch{ChosenItem: item})
	require.NoError(t, err)

	other, err := store.Get(ctx, "sess-1", entities.VerticalArtisan)
	require.NoError(t, err)
	assert.True(t, other.IsEmpty(), "another vertical of the same session stays empty")

	other, err = store.Get(ctx, "sess-2", entities.VerticalSafari)
	require.NoError(t, err)
	assert.True(t, other.IsEmpty(), "the same vertical of another session stays empty")
}

func TestMemoryStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := selection.NewMemoryStore()

	item := &entities.ChosenItem{ID: "plan-2", Title: "Vale Circuit", DurationDays: 5}
	_, err := store.Merge(ctx, "sess-1", entities.VerticalTravel, entities.SelectionPatch{
		ChosenItem: item,
		StartDate:  strPtr("2026-10-01"),
		EndDate:    strPtr("2026-10-05"),
	})
	require.NoError(t, err)

	require.NoError(t, store.Clear(ctx, "sess-1", entities.VerticalTravel))

	sel, err := store.Get(ctx, "sess-1", entities.VerticalTravel)
	require.NoError(t, err)
	assert.True(t, sel.IsEmpty())
}

func TestMemoryStore_GetHandsOutCopies(t *testing.T) {
	ctx := context.Background()
	store := selection.NewMemoryStore()

	item := &entities.ChosenItem{ID: "pkg-1", Title: "Walnut Carving", DurationDays: 2}
	_, err := store.Merge(ctx, "sess-1", entities.VerticalArtisan, entities.SelectionPatch{ChosenItem: item})
	require.NoError(t, err)

	sel, err := store.Get(ctx, "sess-1", entities.VerticalArtisan)
	require.NoError(t, err)
	sel.ChosenItem.ID = "mutated"
	sel.StartDate = "2030-01-01"

	again, err := store.Get(ctx, "sess-1", entities.VerticalArtisan)
	require.NoError(t, err)
	assert.Equal(t, "pkg-1", again.ChosenItem.ID)
	assert.Empty(t, again.StartDate)
}
