package entities

// Restaurant is a dining-vertical catalog entry. Browse-and-filter only; no
// calendar flow.
type Restaurant struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Cuisines    []string `json:"cuisines,omitempty"`
	PriceRange  string   `json:"price_range"`
	Location    string   `json:"location"`
	Rating      float64  `json:"rating"`
	OpenNow     bool     `json:"open_now"`
}
