// Package artstayapi is the client for the external catalog/booking API.
// Every response arrives in one envelope shape; a single unwrap adapter
// turns upstream failures into EXTERNAL AppErrors carrying the first
// structured error string, so no endpoint repeats error plumbing.
package artstayapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/primelogicsol/artstay-booking/internal/domain/entities"
	"github.com/primelogicsol/artstay-booking/internal/infrastructure/observability"
	apperrors "github.com/primelogicsol/artstay-booking/pkg/errors"
	"github.com/primelogicsol/artstay-booking/pkg/retry"
)

// Client is the upstream API surface consumed by the services: catalog reads
// plus the booking write.
type Client interface {
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
	CreateBooking(ctx context.Context, req *entities.BookingRequest) (*entities.BookingAck, error)
}

// HTTPClient implements Client over HTTP.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	retryCfg   retry.Config
	metrics    *observability.Metrics
}

// fallbackMessage is surfaced when the upstream error shape is unrecognized.
const fallbackMessage = "the booking service is temporarily unavailable"

// NewClient creates a client for the upstream catalog/booking API.
func NewClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		retryCfg: retry.DefaultConfig(),
	}
}

// SetMetrics enables upstream call-duration metrics. Each attempt is recorded
// separately, so retries show up as individual data points.
func (c *HTTPClient) SetMetrics(metrics *observability.Metrics) {
	c.metrics = metrics
}

// envelope is the upstream response shape: either data or a list of
// human-readable error strings.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []string        `json:"error,omitempty"`
}

func (c *HTTPClient) ListArtisanPackages(ctx context.Context) ([]entities.ArtisanPackage, error) {
	var out []entities.ArtisanPackage
	if err := c.getJSON(ctx, "/artisan/packages", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetArtisanPackage(ctx context.Context, id string) (*entities.ArtisanPackage, error) {
	out := &entities.ArtisanPackage{}
	if err := c.getByID(ctx, "/artisan/packages", id, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListSafariTours(ctx context.Context) ([]entities.SafariTour, error) {
	var out []entities.SafariTour
	if err := c.getJSON(ctx, "/safari/tours", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetSafariTour(ctx context.Context, id string) (*entities.SafariTour, error) {
	out := &entities.SafariTour{}
	if err := c.getByID(ctx, "/safari/tours", id, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListTransitOptions(ctx context.Context) ([]entities.TransitOption, error) {
	var out []entities.TransitOption
	if err := c.getJSON(ctx, "/ecotransit/options", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetTransitOption(ctx context.Context, id string) (*entities.TransitOption, error) {
	out := &entities.TransitOption{}
	if err := c.getByID(ctx, "/ecotransit/options", id, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListTravelPlans(ctx context.Context) ([]entities.TravelPlan, error) {
	var out []entities.TravelPlan
	if err := c.getJSON(ctx, "/travel/plans", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetTravelPlan(ctx context.Context, id string) (*entities.TravelPlan, error) {
	out := &entities.TravelPlan{}
	if err := c.getByID(ctx, "/travel/plans", id, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListRestaurants(ctx context.Context) ([]entities.Restaurant, error) {
	var out []entities.Restaurant
	if err := c.getJSON(ctx, "/dining/restaurants", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListCraftShops(ctx context.Context) ([]entities.CraftShop, error) {
	var out []entities.CraftShop
	if err := c.getJSON(ctx, "/shop/listings", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListLanguageServices(ctx context.Context) ([]entities.LanguageService, error) {
	var out []entities.LanguageService
	if err := c.getJSON(ctx, "/language/services", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateBooking submits a booking write. Writes are not retried: the
// upstream API owns idempotency and a failed attempt is recovered by the
// user retrying the action.
func (c *HTTPClient) CreateBooking(ctx context.Context, req *entities.BookingRequest) (*entities.BookingAck, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to encode booking request", err)
	}

	out := &entities.BookingAck{}
	if err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/bookings", bytes.NewReader(body), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) getByID(ctx context.Context, path, id string, out any) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.NewValidationError("item id is required")
	}
	return c.getJSON(ctx, fmt.Sprintf("%s/%s", path, url.PathEscape(id)), out)
}

// getJSON performs a GET with retry; reads are idempotent.
func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) error {
	return retry.Do(ctx, c.retryCfg, func() error {
		return c.doJSON(ctx, http.MethodGet, c.baseURL+path, nil, out)
	})
}

// doJSON performs one request and unwraps the response envelope.
func (c *HTTPClient) doJSON(ctx context.Context, method, endpoint string, body io.Reader, out any) error {
	if c.metrics != nil {
		start := time.Now()
		defer func() {
			operation := method + " " + strings.TrimPrefix(endpoint, c.baseURL)
			observability.RecordUpstreamMetric(ctx, c.metrics, operation, time.Since(start))
		}()
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return apperrors.NewInternalError("failed to build upstream request", err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return apperrors.NewExternalError(fallbackMessage, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NewExternalError(fallbackMessage, err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode == http.StatusNotFound {
		return apperrors.NewNotFoundError(firstError(env, "item not found"))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || len(env.Errors) > 0 {
		statusErr := fmt.Errorf("upstream returned status %d", resp.StatusCode)
		return apperrors.NewExternalError(firstError(env, fallbackMessage), statusErr)
	}

	if decodeErr != nil {
		return apperrors.NewExternalError(fallbackMessage, decodeErr)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return apperrors.NewExternalError(fallbackMessage, err)
		}
	}
	return nil
}

// firstError returns the first structured error string, or the fallback when
// the error shape is unrecognized.
func firstError(env envelope, fallback string) string {
	for _, msg := range env.Errors {
		if msg = strings.TrimSpace(msg); msg != "" {
			return msg
		}
	}
	return fallback
}
