package services_test

import (
	"context"
	"time"

	"github.com/primelogicsol/artstay-booking/internal/domain/entities"
)

// fakeCatalog is a hand-rolled CatalogProvider: each hook defaults to an
// empty result so tests only wire what they use.
type fakeCatalog struct {
	artisanPackages  []entities.ArtisanPackage
	safariTours      []entities.SafariTour
	transitOptions   []entities.TransitOption
	travelPlans      []entities.TravelPlan
	restaurants      []entities.Restaurant
	craftShops       []entities.CraftShop
	languageServices []entities.LanguageService

	listCalls map[string]int

	getArtisanPackage func(ctx context.Context, id string) (*entities.ArtisanPackage, error)
	getSafariTour     func(ctx context.Context, id string) (*entities.SafariTour, error)
	getTransitOption  func(ctx context.Context, id string) (*entities.TransitOption, error)
	getTravelPlan     func(ctx context.Context, id string) (*entities.TravelPlan, error)
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{listCalls: map[string]int{}}
}

func (f *fakeCatalog) ListArtisanPackages(ctx context.Context) ([]entities.ArtisanPackage, error) {
	f.listCalls["artisan"]++
	return f.artisanPackages, nil
}

func (f *fakeCatalog) GetArtisanPackage(ctx context.Context, id string) (*entities.ArtisanPackage, error) {
	return f.getArtisanPackage(ctx, id)
}

func (f *fakeCatalog) ListSafariTours(ctx context.Context) ([]entities.SafariTour, error) {
	f.listCalls["safari"]++
	return f.safariTours, nil
}

func (f *fakeCatalog) GetSafariTour(ctx context.Context, id string) (*entities.SafariTour, error) {
	return f.getSafariTour(ctx, id)
}

func (f *fakeCatalog) ListTransitOptions(ctx context.Context) ([]entities.TransitOption, error) {
	f.listCalls["transit"]++
	return f.transitOptions, nil
}

func (f *fakeCatalog) GetTransitOption(ctx context.Context, id string) (*entities.TransitOption, error) {
	return f.getTransitOption(ctx, id)
}

func (f *fakeCatalog) ListTravelPlans(ctx context.Context) ([]entities.TravelPlan, error) {
	f.listCalls["travel"]++
	return f.travelPlans, nil
}

func (f *fakeCatalog) GetTravelPlan(ctx context.Context, id string) (*entities.TravelPlan, error) {
	return f.getTravelPlan(ctx, id)
}

func (f *fakeCatalog) ListRestaurants(ctx context.Context) ([]entities.Restaurant, error) {
	f.listCalls["dining"]++
	return f.restaurants, nil
}

func (f *fakeCatalog) ListCraftShops(ctx context.Context) ([]entities.CraftShop, error) {
	f.listCalls["shop"]++
	return f.craftShops, nil
}

func (f *fakeCatalog) ListLanguageServices(ctx context.Context) ([]entities.LanguageService, error) {
	f.listCalls["language"]++
	return f.languageServices, nil
}

// fakeBookings is a hand-rolled BookingProvider.
type fakeBookings struct {
	createBooking func(ctx context.Context, req *entities.BookingRequest) (*entities.BookingAck, error)
	requests      []*entities.BookingRequest
}

func (f *fakeBookings) CreateBooking(ctx context.Context, req *entities.BookingRequest) (*entities.BookingAck, error) {
	f.requests = append(f.requests, req)
	return f.createBooking(ctx, req)
}

// fixedClock pins "today" for calendar assertions.
func fixedClock(date string) func() time.Time {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t.UTC() }
}
