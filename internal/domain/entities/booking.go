package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingRequest is the write handed to the upstream booking API once a
// selection is complete and the guest form is submitted.
type BookingRequest struct {
	ID         string          `json:"id"`
	Vertical   Vertical        `json:"vertical"`
	ItemID     string          `json:"item_id"`
	ItemTitle  string          `json:"item_title"`
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
	Fee        decimal.Decimal `json:"fee"`
	Currency   string          `json:"currency"`
	GuestName  string          `json:"guest_name"`
	GuestEmail string          `json:"guest_email"`
	GuestPhone string          `json:"guest_phone,omitempty"`
	Guests     int             `json:"guests"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// BookingAck is the upstream acknowledgement of a successful booking write.
type BookingAck struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
}
