package entities

// Vertical is one product category of the site, with its own catalog, filter
// schema and booking flow.
type Vertical string

const (
	VerticalArtisan  Vertical = "artisan"
	VerticalSafari   Vertical = "safari"
	VerticalTransit  Vertical = "transit"
	VerticalDining   Vertical = "dining"
	VerticalTravel   Vertical = "travel"
	VerticalShop     Vertical = "shop"
	VerticalLanguage Vertical = "language"
)

// SelectionMode describes how the calendar reports a chosen date.
type SelectionMode string

const (
	// ModeSingleDate: clicking an enabled day sets the start date; the end
	// date is derived from the package duration.
	ModeSingleDate SelectionMode = "single"

	// ModeRangeAnchor: same write semantics, but days between start and end
	// render as an explicit range with the anchor dates highlighted.
	ModeRangeAnchor SelectionMode = "range"
)

var verticals = map[Vertical]struct {
	bookable bool
	mode     SelectionMode
}{
	VerticalArtisan:  {bookable: true, mode: ModeRangeAnchor},
	VerticalSafari:   {bookable: true, mode: ModeSingleDate},
	VerticalTransit:  {bookable: true, mode: ModeSingleDate},
	VerticalTravel:   {bookable: true, mode: ModeSingleDate},
	VerticalDining:   {bookable: false, mode: ModeSingleDate},
	VerticalShop:     {bookable: false, mode: ModeSingleDate},
	VerticalLanguage: {bookable: false, mode: ModeSingleDate},
}

// Valid reports whether v names a known vertical.
func (v Vertical) Valid() bool {
	_, ok := verticals[v]
	return ok
}

// Bookable reports whether the vertical has a calendar/booking flow.
// Dining, shop and language are browse-and-filter catalogs only.
func (v Vertical) Bookable() bool {
	return verticals[v].bookable
}

// Mode returns the calendar selection mode of the vertical.
func (v Vertical) Mode() SelectionMode {
	return verticals[v].mode
}
