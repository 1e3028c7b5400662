package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primelogicsol/artstay-booking/internal/adapters/selection"
	"github.com/primelogicsol/artstay-booking/internal/api/handlers"
	"github.com/primelogicsol/artstay-booking/internal/application/services"
	"github.com/primelogicsol/artstay-booking/internal/domain/entities"
	"github.com/primelogicsol/artstay-booking/internal/domain/providers"
)

// stubCatalog serves a single artisan package for the selection flow.
type stubCatalog struct{}

func (stubCatalog) ListArtisanPackages(ctx context.Context) ([]entities.ArtisanPackage, error) {
	return nil, nil
}

func (stubCatalog) GetArtisanPackage(ctx context.Context, id string) (*entities.ArtisanPackage, error) {
	return &entities.ArtisanPackage{
		ID:           id,
		Title:        "Papier-Mache Atelier",
		DurationDays: 3,
		Fee:          decimal.NewFromInt(90),
		Currency:     "USD",
	}, nil
}

func (stubCatalog) ListSafariTours(ctx context.Context) ([]entities.SafariTour, error) {
	return nil, nil
}

func (stubCatalog) GetSafariTour(ctx context.Context, id string) (*entities.SafariTour, error) {
	return nil, nil
}

func (stubCatalog) ListTransitOptions(ctx context.Context) ([]entities.TransitOption, error) {
	return nil, nil
}

func (stubCatalog) GetTransitOption(ctx context.Context, id string) (*entities.TransitOption, error) {
	return nil, nil
}

func (stubCatalog) ListTravelPlans(ctx context.Context) ([]entities.TravelPlan, error) {
	return nil, nil
}

func (stubCatalog) GetTravelPlan(ctx context.Context, id string) (*entities.TravelPlan, error) {
	return nil, nil
}

func (stubCatalog) ListRestaurants(ctx context.Context) ([]entities.Restaurant, error) {
	return nil, nil
}

func (stubCatalog) ListCraftShops(ctx context.Context) ([]entities.CraftShop, error) {
	return nil, nil
}

func (stubCatalog) ListLanguageServices(ctx context.Context) ([]entities.LanguageService, error) {
	return nil, nil
}

func chooseItem(t *testing.T, store providers.SelectionStore, sessionID string) {
	t.Helper()
	svc := services.NewSelectionService(stubCatalog{}, store)
	_, err := svc.ChooseItem(context.Background(), sessionID, entities.VerticalArtisan, "pkg-1")
	require.NoError(t, err)
}

func TestCalendarHandler_GetMonthView_PreconditionBlocks(t *testing.T) {
	store := selection.NewMemoryStore()
	handler := handlers.NewCalendarHandler(services.NewCalendarService(store, nil))

	req := httptest.NewRequest("GET", "/api/calendar/artisan?month=2099-01", nil)
	req.SetPathValue("vertical", "artisan")
	w := httptest.NewRecorder()

	handler.GetMonthView(w, req)

	assert.Equal(t, http.StatusPreconditionFailed, w.Code)

	var response map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "PRECONDITION", response["type"])
	assert.NotEmpty(t, response["error"])
}

func TestCalendarHandler_GetMonthView_Success(t *testing.T) {
	store := selection.NewMemoryStore()
	chooseItem(t, store, "")
	handler := handlers.NewCalendarHandler(services.NewCalendarService(store, nil))

	req := httptest.NewRequest("GET", "/api/calendar/artisan?month=2099-01&months=2", nil)
	req.SetPathValue("vertical", "artisan")
	w := httptest.NewRecorder()

	handler.GetMonthView(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var view services.MonthView
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	require.Len(t, view.Months, 2)
	assert.Equal(t, "2099-01", view.Months[0].Month)
	assert.Len(t, view.Months[0].Days, 42)
	assert.False(t, view.CanContinue)
}

func TestCalendarHandler_SelectDate_RoundTrip(t *testing.T) {
	store := selection.NewMemoryStore()
	chooseItem(t, store, "")
	handler := handlers.NewCalendarHandler(services.NewCalendarService(store, nil))

	req := httptest.NewRequest("POST", "/api/calendar/artisan/select", strings.NewReader(`{"date":"2099-01-10"}`))
	req.SetPathValue("vertical", "artisan")
	w := httptest.NewRecorder()

	handler.SelectDate(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result services.SelectResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
	assert.True(t, result.Changed)
	assert.True(t, result.CanContinue)
	assert.Equal(t, "2099-01-10", result.Selection.StartDate)
	assert.Equal(t, "2099-01-12", result.Selection.EndDate)
}

func TestCalendarHandler_SelectDate_PastDayIgnored(t *testing.T) {
	store := selection.NewMemoryStore()
	chooseItem(t, store, "")
	handler := handlers.NewCalendarHandler(services.NewCalendarService(store, nil))

	req := httptest.NewRequest("POST", "/api/calendar/artisan/select", strings.NewReader(`{"date":"2000-01-10"}`))
	req.SetPathValue("vertical", "artisan")
	w := httptest.NewRecorder()

	handler.SelectDate(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result services.SelectResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
	assert.False(t, result.Changed)
	assert.Empty(t, result.Selection.StartDate)
}

func TestCalendarHandler_SelectDate_MissingDate(t *testing.T) {
	store := selection.NewMemoryStore()
	chooseItem(t, store, "")
	handler := handlers.NewCalendarHandler(services.NewCalendarService(store, nil))

	req := httptest.NewRequest("POST", "/api/calendar/artisan/select", strings.NewReader(`{}`))
	req.SetPathValue("vertical", "artisan")
	w := httptest.NewRecorder()

	handler.SelectDate(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
