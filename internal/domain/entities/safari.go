package entities

import (
	"github.com/shopspring/decimal"
)

// SafariTour is a guided craft-safari tour through artisan workshops.
type SafariTour struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Region       string          `json:"region"`
	DurationDays int             `json:"duration_days"`
	Fee          decimal.Decimal `json:"fee"`
	Currency     string          `json:"currency"`
	Highlights   []string        `json:"highlights,omitempty"`
	GroupSizeMax int             `json:"group_size_max"`
	SeasonStart  string          `json:"season_start,omitempty"`
	SeasonEnd    string          `json:"season_end,omitempty"`
}
