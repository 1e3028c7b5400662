package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/primelogicsol/artstay-booking/internal/domain/entities"
	"github.com/primelogicsol/artstay-booking/internal/domain/providers"
	"github.com/primelogicsol/artstay-booking/internal/infrastructure/observability"
	apperrors "github.com/primelogicsol/artstay-booking/pkg/errors"
)

// GuestDetails is the booking-form payload submitted with a completed
// selection.
type GuestDetails struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone,omitempty"`
	Guests int    `json:"guests"`
	Notes  string `json:"notes,omitempty"`
}

// BookingService hands a completed selection off to the upstream booking
// API and clears it on success.
type BookingService struct {
	store    providers.SelectionStore
	bookings providers.BookingProvider
}

// NewBookingService creates a new booking service.
func NewBookingService(store providers.SelectionStore, bookings providers.BookingProvider) *BookingService {
	return &BookingService{
		store:    store,
		bookings: bookings,
	}
}

// Submit builds the booking request from the session's selection and guest
// details and submits it upstream. The selection is cleared only after the
// upstream write succeeds, so a failed submission can simply be retried.
func (s *BookingService) Submit(ctx context.Context, sessionID string, vertical entities.Vertical, guest GuestDetails) (*entities.BookingAck, error) {
	if err := requireBookable(vertical); err != nil {
		return nil, err
	}

	sel, err := s.store.Get(ctx, sessionID, vertical)
	if err != nil {
		return nil, err
	}
	if sel.IsEmpty() {
		return nil, apperrors.NewPreconditionError("choose a package before booking")
	}
	if !sel.DatesComplete() {
		return nil, apperrors.NewPreconditionError("pick your dates before booking")
	}

	if strings.TrimSpace(guest.Name) == "" {
		return nil, apperrors.NewValidationError("guest name is required")
	}
	if strings.TrimSpace(guest.Email) == "" {
		return nil, apperrors.NewValidationError("guest email is required")
	}
	if guest.Guests < 1 {
		guest.Guests = 1
	}

	req := &entities.BookingRequest{
		ID:         uuid.New().String(),
		Vertical:   vertical,
		ItemID:     sel.ChosenItem.ID,
		ItemTitle:  sel.ChosenItem.Title,
		StartDate:  sel.StartDate,
		EndDate:    sel.EndDate,
		Fee:        sel.ChosenItem.Fee,
		Currency:   sel.ChosenItem.Currency,
		GuestName:  guest.Name,
		GuestEmail: guest.Email,
		GuestPhone: guest.Phone,
		Guests:     guest.Guests,
		Notes:      guest.Notes,
		CreatedAt:  time.Now().UTC(),
	}

	ack, err := s.bookings.CreateBooking(ctx, req)
	if err != nil {
		return nil, err
	}

	logger := observability.LoggerFromContext(ctx)
	if err := s.store.Clear(ctx, sessionID, vertical); err != nil {
		// The booking went through; a stale selection only lingers until
		// its TTL.
		logger.Warn().Err(err).
			Str("vertical", string(vertical)).
			Msg("failed to clear selection after booking")
	}

	logger.Info().
		Str("vertical", string(vertical)).
		Str("item_id", req.ItemID).
		Str("reference", ack.Reference).
		Msg("booking submitted")

	return ack, nil
}
