package routes

import (
	"net/http"

	"github.com/primelogicsol/artstay-booking/internal/api/handlers"
	"github.com/primelogicsol/artstay-booking/internal/api/middleware"
	"github.com/primelogicsol/artstay-booking/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	catalogHandler   *handlers.CatalogHandler
	selectionHandler *handlers.SelectionHandler
	calendarHandler  *handlers.CalendarHandler
	bookingHandler   *handlers.BookingHandler

	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	catalogHandler *handlers.CatalogHandler,
	selectionHandler *handlers.SelectionHandler,
	calendarHandler *handlers.CalendarHandler,
	bookingHandler *handlers.BookingHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		catalogHandler:   catalogHandler,
		selectionHandler: selectionHandler,
		calendarHandler:  calendarHandler,
		bookingHandler:   bookingHandler,

		cacheMiddleware: cacheMiddleware,
		metrics:         metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Catalog endpoints

	r.mux.HandleFunc("GET /api/artisan/items", r.catalogHandler.ListArtisanPackages)
	r.mux.HandleFunc("GET /api/artisan/items/{id}", r.catalogHandler.GetArtisanPackage)

	r.mux.HandleFunc("GET /api/safari/items", r.catalogHandler.ListSafariTours)
	r.mux.HandleFunc("GET /api/safari/items/{id}", r.catalogHandler.GetSafariTour)

	r.mux.HandleFunc("GET /api/transit/items", r.catalogHandler.ListTransitOptions)
	r.mux.HandleFunc("GET /api/transit/items/{id}", r.catalogHandler.GetTransitOption)

	r.mux.HandleFunc("GET /api/travel/items", r.catalogHandler.ListTravelPlans)
	r.mux.HandleFunc("GET /api/travel/items/{id}", r.catalogHandler.GetTravelPlan)

	r.mux.HandleFunc("GET /api/dining/items", r.catalogHandler.ListRestaurants)
	r.mux.HandleFunc("GET /api/shop/items", r.catalogHandler.ListCraftShops)
	r.mux.HandleFunc("GET /api/language/items", r.catalogHandler.ListLanguageServices)

	// Selection endpoints

	r.mux.HandleFunc("GET /api/selection/{vertical}", r.selectionHandler.GetSelection)
	r.mux.HandleFunc("POST /api/selection/{vertical}/item", r.selectionHandler.ChooseItem)
	r.mux.HandleFunc("DELETE /api/selection/{vertical}", r.selectionHandler.ClearSelection)

	// Calendar endpoints

	r.mux.HandleFunc("GET /api/calendar/{vertical}", r.calendarHandler.GetMonthView)
	r.mux.HandleFunc("POST /api/calendar/{vertical}/select", r.calendarHandler.SelectDate)

	// Booking endpoint

	r.mux.HandleFunc("POST /api/booking/{vertical}", r.bookingHandler.SubmitBooking)

	// Apply middleware in reverse order (last middleware wraps first)
	// Logging sits outside the cache so cache HITs are request-logged too.

	var handler http.Handler = r.mux

	// Apply cache middleware if available
	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.SessionMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORSMiddleware(handler)

	return handler
}
