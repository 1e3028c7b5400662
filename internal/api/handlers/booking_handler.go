package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/primelogicsol/artstay-booking/internal/api/middleware"
	"github.com/primelogicsol/artstay-booking/internal/application/services"
	"github.com/primelogicsol/artstay-booking/internal/domain/entities"
)

// BookingHandler submits completed selections to the upstream booking API
type BookingHandler struct {
	bookings *services.BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookings *services.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// SubmitBooking handles POST /api/booking/{vertical}
func (h *BookingHandler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	vertical := entities.Vertical(r.PathValue("vertical"))
	sessionID := middleware.SessionID(r.Context())

	var guest services.GuestDetails
	if err := json.NewDecoder(r.Body).Decode(&guest); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ack, err := h.bookings.Submit(r.Context(), sessionID, vertical, guest)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, ack)
}
