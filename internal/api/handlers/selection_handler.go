package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/primelogicsol/artstay-booking/internal/api/middleware"
	"github.com/primelogicsol/artstay-booking/internal/application/services"
	"github.com/primelogicsol/artstay-booking/internal/domain/entities"
)

// SelectionHandler manages the session's per-vertical booking selection
type SelectionHandler struct {
	selections *services.SelectionService
}

// NewSelectionHandler creates a new selection handler
func NewSelectionHandler(selections *services.SelectionService) *SelectionHandler {
	return &SelectionHandler{selections: selections}
}

// GetSelection handles GET /api/selection/{vertical}
func (h *SelectionHandler) GetSelection(w http.ResponseWriter, r *http.Request) {
	vertical := entities.Vertical(r.PathValue("vertical"))
	sessionID := middleware.SessionID(r.Context())

	sel, err := h.selections.Get(r.Context(), sessionID, vertical)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, sel)
}

// ChooseItem handles POST /api/selection/{vertical}/item
func (h *SelectionHandler) ChooseItem(w http.ResponseWriter, r *http.Request) {
	vertical := entities.Vertical(r.PathValue("vertical"))
	sessionID := middleware.SessionID(r.Context())

	var body struct {
		ItemID string `json:"item_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sel, err := h.selections.ChooseItem(r.Context(), sessionID, vertical, body.ItemID)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, sel)
}

// ClearSelection handles DELETE /api/selection/{vertical}
func (h *SelectionHandler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	vertical := entities.Vertical(r.PathValue("vertical"))
	sessionID := middleware.SessionID(r.Context())

	if err := h.selections.Clear(r.Context(), sessionID, vertical); err != nil {
		respondWithAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
