package services

import (
	"github.com/primelogicsol/artstay-booking/internal/domain/entities"
	"github.com/primelogicsol/artstay-booking/internal/filter"
)

// Per-vertical filter schemas. Each schema is the single source of truth for
// the vertical's documented query parameters: it parses them, serializes
// them back for shareable URLs, and evaluates them in memory.

// ArtisanSchema filters artisan craft packages.
func ArtisanSchema() filter.Schema[entities.ArtisanPackage] {
	return filter.Schema[entities.ArtisanPackage]{
		{
			Name: "search",
			Kind: filter.KindText,
			Strings: func(p entities.ArtisanPackage) []string {
				return []string{p.Title, p.Description, p.ArtisanName}
			},
		},
		{
			Name: "craft",
			Kind: filter.KindEnum,
			Strings: func(p entities.ArtisanPackage) []string {
				return []string{p.Craft}
			},
		},
		{
			Name: "location",
			Kind: filter.KindEnum,
			Strings: func(p entities.ArtisanPackage) []string {
				return []string{p.Location}
			},
		},
		{
			Name: "language",
			Kind: filter.KindSet,
			Strings: func(p entities.ArtisanPackage) []string {
				return p.Languages
			},
		},
		{
			Name:     "duration",
			Kind:     filter.KindRange,
			ParamMin: "minDays",
			ParamMax: "maxDays",
			Number: func(p entities.ArtisanPackage) float64 {
				return float64(p.DurationDays)
			},
		},
		{
			Name:     "fee",
			Kind:     filter.KindRange,
			ParamMin: "minFee",
			ParamMax: "maxFee",
			Number: func(p entities.ArtisanPackage) float64 {
				return p.Fee.InexactFloat64()
			},
		},
	}
}

// SafariSchema filters craft-safari tours.
func SafariSchema() filter.Schema[entities.SafariTour] {
	return filter.Schema[entities.SafariTour]{
		{
			Name: "search",
			Kind: filter.KindText,
			Strings: func(t entities.SafariTour) []string {
				return []string{t.Title, t.Description}
			},
		},
		{
			Name: "region",
			Kind: filter.KindEnum,
			Strings: func(t entities.SafariTour) []string {
				return []string{t.Region}
			},
		},
		{
			Name:     "fee",
			Kind:     filter.KindRange,
			ParamMin: "minFee",
			ParamMax: "maxFee",
			Number: func(t entities.SafariTour) float64 {
				return t.Fee.InexactFloat64()
			},
		},
	}
}

// TransitSchema filters eco-transit options.
func TransitSchema() filter.Schema[entities.TransitOption] {
	return filter.Schema[entities.TransitOption]{
		{
			Name: "search",
			Kind: filter.KindText,
			Strings: func(o entities.TransitOption) []string {
				return []string{o.Title, o.Description, o.Route}
			},
		},
		{
			Name: "mode",
			Kind: filter.KindEnum,
			Strings: func(o entities.TransitOption) []string {
				return []string{o.Mode}
			},
		},
		{
			Name: "operational",
			Kind: filter.KindFlag,
			Flag: func(o entities.TransitOption) bool {
				return o.Operational
			},
		},
	}
}

// TravelSchema filters travel plans.
func TravelSchema() filter.Schema[entities.TravelPlan] {
	return filter.Schema[entities.TravelPlan]{
		{
			Name: "search",
			Kind: filter.KindText,
			Strings: func(p entities.TravelPlan) []string {
				return []string{p.Title, p.Description}
			},
		},
		{
			Name: "destination",
			Kind: filter.KindSet,
			Strings: func(p entities.TravelPlan) []string {
				return p.Destinations
			},
		},
		{
			Name: "theme",
			Kind: filter.KindSet,
			Strings: func(p entities.TravelPlan) []string {
				return p.Themes
			},
		},
		{
			Name:     "duration",
			Kind:     filter.KindRange,
			ParamMin: "minDays",
			ParamMax: "maxDays",
			Number: func(p entities.TravelPlan) float64 {
				return float64(p.DurationDays)
			},
		},
	}
}

// DiningSchema filters restaurants.
func DiningSchema() filter.Schema[entities.Restaurant] {
	return filter.Schema[entities.Restaurant]{
		{
			Name: "search",
			Kind: filter.KindText,
			Strings: func(r entities.Restaurant) []string {
				return []string{r.Name, r.Description}
			},
		},
		{
			Name: "cuisine",
			Kind: filter.KindSet,
			Strings: func(r entities.Restaurant) []string {
				return r.Cuisines
			},
		},
		{
			Name: "priceRange",
			Kind: filter.KindEnum,
			Strings: func(r entities.Restaurant) []string {
				return []string{r.PriceRange}
			},
		},
		{
			Name: "location",
			Kind: filter.KindEnum,
			Strings: func(r entities.Restaurant) []string {
				return []string{r.Location}
			},
		},
		{
			Name:     "rating",
			Kind:     filter.KindRange,
			ParamMin: "minRating",
			ParamMax: "maxRating",
			Number: func(r entities.Restaurant) float64 {
				return r.Rating
			},
		},
		{
			Name: "openNow",
			Kind: filter.KindFlag,
			Flag: func(r entities.Restaurant) bool {
				return r.OpenNow
			},
		},
	}
}

// ShopSchema filters craft shops.
func ShopSchema() filter.Schema[entities.CraftShop] {
	return filter.Schema[entities.CraftShop]{
		{
			Name: "search",
			Kind: filter.KindText,
			Strings: func(s entities.CraftShop) []string {
				return []string{s.Name, s.Description}
			},
		},
		{
			Name: "specialty",
			Kind: filter.KindSet,
			Strings: func(s entities.CraftShop) []string {
				return s.Specialties
			},
		},
		{
			Name: "location",
			Kind: filter.KindEnum,
			Strings: func(s entities.CraftShop) []string {
				return []string{s.Location}
			},
		},
		{
			Name:     "rating",
			Kind:     filter.KindRange,
			ParamMin: "minRating",
			ParamMax: "maxRating",
			Number: func(s entities.CraftShop) float64 {
				return s.Rating
			},
		},
		{
			Name: "certified",
			Kind: filter.KindFlag,
			Flag: func(s entities.CraftShop) bool {
				return s.Certified
			},
		},
	}
}

// LanguageSchema filters interpreter/translator listings.
func LanguageSchema() filter.Schema[entities.LanguageService] {
	return filter.Schema[entities.LanguageService]{
		{
			Name: "search",
			Kind: filter.KindText,
			Strings: func(l entities.LanguageService) []string {
				return []string{l.Name, l.Description}
			},
		},
		{
			Name: "language",
			Kind: filter.KindSet,
			Strings: func(l entities.LanguageService) []string {
				return l.Languages
			},
		},
		{
			Name: "specialization",
			Kind: filter.KindSet,
			Strings: func(l entities.LanguageService) []string {
				return l.Specializations
			},
		},
		{
			Name:     "rate",
			Kind:     filter.KindRange,
			ParamMin: "minRate",
			ParamMax: "maxRate",
			Number: func(l entities.LanguageService) float64 {
				return l.HourlyRate.InexactFloat64()
			},
		},
		{
			Name: "available",
			Kind: filter.KindFlag,
			Flag: func(l entities.LanguageService) bool {
				return l.AvailableNow
			},
		},
	}
}
