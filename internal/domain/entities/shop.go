package entities

// CraftShop is a verified handicraft shop listing.
type CraftShop struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Specialties []string `json:"specialties,omitempty"`
	Location    string   `json:"location"`
	Rating      float64  `json:"rating"`
	Certified   bool     `json:"certified"`
}
