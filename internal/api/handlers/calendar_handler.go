package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/primelogicsol/artstay-booking/internal/api/middleware"
	"github.com/primelogicsol/artstay-booking/internal/application/services"
	"github.com/primelogicsol/artstay-booking/internal/domain/entities"
)

// CalendarHandler serves the availability calendar for bookable verticals
type CalendarHandler struct {
	calendars *services.CalendarService
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(calendars *services.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendars: calendars}
}

// GetMonthView handles GET /api/calendar/{vertical}?month=YYYY-MM&months=N
func (h *CalendarHandler) GetMonthView(w http.ResponseWriter, r *http.Request) {
	vertical := entities.Vertical(r.PathValue("vertical"))
	sessionID := middleware.SessionID(r.Context())

	months := 0
	if raw := r.URL.Query().Get("months"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "months must be a number")
			return
		}
		months = n
	}

	view, err := h.calendars.MonthView(r.Context(), sessionID, vertical, r.URL.Query().Get("month"), months)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, view)
}

// SelectDate handles POST /api/calendar/{vertical}/select
func (h *CalendarHandler) SelectDate(w http.ResponseWriter, r *http.Request) {
	vertical := entities.Vertical(r.PathValue("vertical"))
	sessionID := middleware.SessionID(r.Context())

	var body struct {
		Date string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Date == "" {
		respondWithError(w, http.StatusBadRequest, "date is required")
		return
	}

	result, err := h.calendars.SelectDate(r.Context(), sessionID, vertical, body.Date)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}
