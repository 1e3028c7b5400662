package entities

import (
	"github.com/shopspring/decimal"
)

// TransitOption is an eco-transit ride (shikara, electric shuttle, cycle
// tour) bookable for a single day.
type TransitOption struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Mode        string          `json:"mode"`
	Route       string          `json:"route"`
	Fee         decimal.Decimal `json:"fee"`
	Currency    string          `json:"currency"`
	SeatsTotal  int             `json:"seats_total"`
	Operational bool            `json:"operational"`
}
