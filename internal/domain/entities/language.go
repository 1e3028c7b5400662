package entities

import (
	"github.com/shopspring/decimal"
)

// LanguageService is an interpreter/translator listing.
type LanguageService struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Languages       []string        `json:"languages,omitempty"`
	Specializations []string        `json:"specializations,omitempty"`
	HourlyRate      decimal.Decimal `json:"hourly_rate"`
	Currency        string          `json:"currency"`
	Location        string          `json:"location"`
	AvailableNow    bool            `json:"available_now"`
}
