package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primelogicsol/artstay-booking/internal/adapters/selection"
	"github.com/primelogicsol/artstay-booking/internal/application/services"
	"github.com/primelogicsol/artstay-booking/internal/calendar"
	"github.com/primelogicsol/artstay-booking/internal/domain/entities"
	"github.com/primelogicsol/artstay-booking/internal/domain/providers"
	apperrors "github.com/primelogicsol/artstay-booking/pkg/errors"
)

func chooseArtisanPackage(t *testing.T, store providers.SelectionStore, sessionID string, durationDays int, windowStart, windowEnd string) {
	t.Helper()
	_, err := store.Merge(context.Background(), sessionID, entities.VerticalArtisan, entities.SelectionPatch{
		ChosenItem: &entities.ChosenItem{
			ID:           "pkg-1",
			Title:        "Papier-Mache Atelier",
			DurationDays: durationDays,
			Fee:          decimal.NewFromInt(90),
			Currency:     "USD",
			WindowStart:  windowStart,
			WindowEnd:    windowEnd,
		},
	})
	require.NoError(t, err)
}

func TestMonthView_RequiresChosenItem(t *testing.T) {
	store := selection.NewMemoryStore()
	svc := services.NewCalendarService(store, fixedClock("2026-08-29"))

	_, err := svc.MonthView(context.Background(), "sess-1", entities.VerticalArtisan, "", 2)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypePrecondition, appErr.Type)
}

func TestMonthView_BuildsTwoConsecutiveGrids(t *testing.T) {
	store := selection.NewMemoryStore()
	svc := services.NewCalendarService(store, fixedClock("2026-08-29"))
	chooseArtisanPackage(t, store, "sess-1", 3, "", "")

	view, err := svc.MonthView(context.Background(), "sess-1", entities.VerticalArtisan, "2026-09", 2)
	require.NoError(t, err)

	require.Len(t, view.Months, 2)
	assert.Equal(t, "2026-09", view.Months[0].Month)
	assert.Equal(t, "2026-10", view.Months[1].Month)
	assert.Len(t, view.Months[0].Days, calendar.GridSize)
	assert.Len(t, view.Months[1].Days, calendar.GridSize)
	assert.Equal(t, entities.ModeRangeAnchor, view.Mode)
	assert.False(t, view.CanContinue)

	// Month navigation is read-only: the stored selection is untouched.
	sel, err := store.Get(context.Background(), "sess-1", entities.VerticalArtisan)
	require.NoError(t, err)
	assert.Empty(t, sel.StartDate)
}

func TestMonthView_WindowFromChosenItemDisablesOutsideDays(t *testing.T) {
	store := selection.NewMemoryStore()
	svc := services.NewCalendarService(store, fixedClock("2026-09-01"))
	chooseArtisanPackage(t, store, "sess-1", 3, "2026-09-10", "2026-09-20")

	view, err := svc.MonthView(context.Background(), "sess-1", entities.VerticalArtisan, "2026-09", 1)
	require.NoError(t, err)

	for _, d := range view.Months[0].Days {
		if !d.InCurrentMonth {
			assert.True(t, d.Disabled, "filler %s", d.Date)
			continue
		}
		inside := d.Date >= "2026-09-10" && d.Date <= "2026-09-20"
		assert.Equal(t, !inside, d.Disabled, "day %s", d.Date)
	}
}

func TestSelectDate_DerivesEndDateFromDuration(t *testing.T) {
	store := selection.NewMemoryStore()
	svc := services.NewCalendarService(store, fixedClock("2026-08-29"))
	chooseArtisanPackage(t, store, "sess-1", 4, "", "")

	res, err := svc.SelectDate(context.Background(), "sess-1", entities.VerticalArtisan, "2026-09-02")
	require.NoError(t, err)

	assert.True(t, res.Changed)
	assert.True(t, res.CanContinue)
	assert.Equal(t, "2026-09-02", res.Selection.StartDate)
	assert.Equal(t, "2026-09-05", res.Selection.EndDate)

	// Both dates land in the store atomically.
	sel, err := store.Get(context.Background(), "sess-1", entities.VerticalArtisan)
	require.NoError(t, err)
	assert.Equal(t, "2026-09-02", sel.StartDate)
	assert.Equal(t, "2026-09-05", sel.EndDate)
}

func TestSelectDate_OverwritesPriorSelection(t *testing.T) {
	store := selection.NewMemoryStore()
	svc := services.NewCalendarService(store, fixedClock("2026-08-29"))
	chooseArtisanPackage(t, store, "sess-1", 2, "", "")

	_, err := svc.SelectDate(context.Background(), "sess-1", entities.VerticalArtisan, "2026-09-02")
	require.NoError(t, err)

	res, err := svc.SelectDate(context.Background(), "sess-1", entities.VerticalArtisan, "2026-09-10")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-10", res.Selection.StartDate)
	assert.Equal(t, "2026-09-11", res.Selection.EndDate)
}

func TestSelectDate_DisabledDayIsSilentNoOp(t *testing.T) {
	store := selection.NewMemoryStore()
	svc := services.NewCalendarService(store, fixedClock("2026-08-29"))
	chooseArtisanPackage(t, store, "sess-1", 3, "2026-09-10", "2026-09-20")

	_, err := svc.SelectDate(context.Background(), "sess-1", entities.VerticalArtisan, "2026-09-12")
	require.NoError(t, err)

	before, err := store.Get(context.Background(), "sess-1", entities.VerticalArtisan)
	require.NoError(t, err)

	// Past day and outside-window day: both ignored without error.
	for _, date := range []string{"2026-08-01", "2026-09-25"} {
		res, err := svc.SelectDate(context.Background(), "sess-1", entities.VerticalArtisan, date)
		require.NoError(t, err)
		assert.False(t, res.Changed, "click on %s", date)

		after, err := store.Get(context.Background(), "sess-1", entities.VerticalArtisan)
		require.NoError(t, err)
		assert.Equal(t, before, after, "selection must be untouched after clicking %s", date)
	}
}

func TestSelectDate_MalformedDateRejected(t *testing.T) {
	store := selection.NewMemoryStore()
	svc := services.NewCalendarService(store, fixedClock("2026-08-29"))
	chooseArtisanPackage(t, store, "sess-1", 3, "", "")

	_, err := svc.SelectDate(context.Background(), "sess-1", entities.VerticalArtisan, "02/09/2026")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}

func TestMonthView_AnnotatesSelectionRange(t *testing.T) {
	store := selection.NewMemoryStore()
	svc := services.NewCalendarService(store, fixedClock("2026-08-29"))
	chooseArtisanPackage(t, store, "sess-1", 3, "", "")

	_, err := svc.SelectDate(context.Background(), "sess-1", entities.VerticalArtisan, "2026-09-10")
	require.NoError(t, err)

	view, err := svc.MonthView(context.Background(), "sess-1", entities.VerticalArtisan, "2026-09", 1)
	require.NoError(t, err)
	assert.True(t, view.CanContinue)

	byDate := map[string]services.GridDay{}
	for _, d := range view.Months[0].Days {
		byDate[d.Date] = d
	}

	// Anchors get the strong highlight; the middle day only the range band.
	assert.True(t, byDate["2026-09-10"].Selected)
	assert.True(t, byDate["2026-09-12"].Selected)
	assert.True(t, byDate["2026-09-11"].InRange)
	assert.False(t, byDate["2026-09-11"].Selected)
	assert.False(t, byDate["2026-09-09"].InRange)
	assert.False(t, byDate["2026-09-13"].InRange)
}

func TestCalendar_RejectsNonBookableVertical(t *testing.T) {
	store := selection.NewMemoryStore()
	svc := services.NewCalendarService(store, fixedClock("2026-08-29"))

	_, err := svc.MonthView(context.Background(), "sess-1", entities.VerticalDining, "", 1)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}
