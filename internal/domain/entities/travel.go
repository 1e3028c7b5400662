package entities

import (
	"github.com/shopspring/decimal"
)

// TravelPlan is a multi-day itinerary assembled by a local travel planner.
type TravelPlan struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	DurationDays int             `json:"duration_days"`
	Fee          decimal.Decimal `json:"fee"`
	Currency     string          `json:"currency"`
	Destinations []string        `json:"destinations,omitempty"`
	Themes       []string        `json:"themes,omitempty"`
}
