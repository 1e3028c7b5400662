package handlers

import (
	"net/http"

	"github.com/primelogicsol/artstay-booking/internal/application/services"
)

// CatalogHandler serves the browse-and-filter catalog endpoints. Filter
// criteria arrive as documented query parameters; the response carries the
// filtered items and their count.
type CatalogHandler struct {
	catalog *services.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListArtisanPackages handles GET /api/artisan/items
func (h *CatalogHandler) ListArtisanPackages(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListArtisanPackages(r.Context(), r.URL.Query())
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
		"count": len(items),
	})
}

// GetArtisanPackage handles GET /api/artisan/items/{id}
func (h *CatalogHandler) GetArtisanPackage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "item ID is required")
		return
	}

	item, err := h.catalog.GetArtisanPackage(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, item)
}

// ListSafariTours handles GET /api/safari/items
func (h *CatalogHandler) ListSafariTours(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListSafariTours(r.Context(), r.URL.Query())
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
		"count": len(items),
	})
}

// GetSafariTour handles GET /api/safari/items/{id}
func (h *CatalogHandler) GetSafariTour(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "item ID is required")
		return
	}

	item, err := h.catalog.GetSafariTour(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, item)
}

// ListTransitOptions handles GET /api/transit/items
func (h *CatalogHandler) ListTransitOptions(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListTransitOptions(r.Context(), r.URL.Query())
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
		"count": len(items),
	})
}

// GetTransitOption handles GET /api/transit/items/{id}
func (h *CatalogHandler) GetTransitOption(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "item ID is required")
		return
	}

	item, err := h.catalog.GetTransitOption(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, item)
}

// ListTravelPlans handles GET /api/travel/items
func (h *CatalogHandler) ListTravelPlans(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListTravelPlans(r.Context(), r.URL.Query())
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
		"count": len(items),
	})
}

// GetTravelPlan handles GET /api/travel/items/{id}
func (h *CatalogHandler) GetTravelPlan(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "item ID is required")
		return
	}

	item, err := h.catalog.GetTravelPlan(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, item)
}

// ListRestaurants handles GET /api/dining/items
func (h *CatalogHandler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListRestaurants(r.Context(), r.URL.Query())
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
		"count": len(items),
	})
}

// ListCraftShops handles GET /api/shop/items
func (h *CatalogHandler) ListCraftShops(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListCraftShops(r.Context(), r.URL.Query())
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
		"count": len(items),
	})
}

// ListLanguageServices handles GET /api/language/items
func (h *CatalogHandler) ListLanguageServices(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListLanguageServices(r.Context(), r.URL.Query())
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
		"count": len(items),
	})
}
