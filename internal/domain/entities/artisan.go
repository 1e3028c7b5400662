package entities

import (
	"github.com/shopspring/decimal"
)

// ArtisanPackage is a craft-immersion package offered by a Kashmiri artisan.
// Fetched read-only from the upstream catalog API.
type ArtisanPackage struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Craft        string          `json:"craft"`
	ArtisanName  string          `json:"artisan_name"`
	Location     string          `json:"location"`
	DurationDays int             `json:"duration_days"`
	Fee          decimal.Decimal `json:"fee"`
	Currency     string          `json:"currency"`
	Features     []string        `json:"features,omitempty"`
	Languages    []string        `json:"languages,omitempty"`
	// Optional event validity window; when set, only days within
	// [EventStart, EventEnd] are selectable on the calendar.
	EventStart string `json:"event_start,omitempty"`
	EventEnd   string `json:"event_end,omitempty"`
}
