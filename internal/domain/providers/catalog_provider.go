package providers

import (
	"context"

	"github.com/primelogicsol/artstay-booking/internal/domain/entities"
)

// CatalogProvider reads catalog collections from the upstream API. Each list
// returns the full unfiltered collection for a vertical; filtering happens
// in memory on our side.
type CatalogProvider interface {
	ListArtisanPackages(ctx context.Context) ([]entities.ArtisanPackage, error)
	GetArtisanPackage(ctx context.Context, id string) (*entities.ArtisanPackage, error)

	ListSafariTours(ctx context.Context) ([]entities.SafariTour, error)
	GetSafariTour(ctx context.Context, id string) (*entities.SafariTour, error)

	ListTransitOptions(ctx context.Context) ([]entities.TransitOption, error)
	GetTransitOption(ctx context.Context, id string) (*entities.TransitOption, error)

	ListTravelPlans(ctx context.Context) ([]entities.TravelPlan, error)
	GetTravelPlan(ctx context.Context, id string) (*entities.TravelPlan, error)

	ListRestaurants(ctx context.Context) ([]entities.Restaurant, error)
	ListCraftShops(ctx context.Context) ([]entities.CraftShop, error)
	ListLanguageServices(ctx context.Context) ([]entities.LanguageService, error)
}

// BookingProvider performs booking writes against the upstream API.
type BookingProvider interface {
	// CreateBooking submits a booking. Upstream failures come back as an
	// AppError of type EXTERNAL carrying the first structured error string
	// from the response.
	CreateBooking(ctx context.Context, req *entities.BookingRequest) (*entities.BookingAck, error)
}
