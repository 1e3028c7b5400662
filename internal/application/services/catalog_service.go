package services

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/primelogicsol/artstay-booking/internal/domain/entities"
	"github.com/primelogicsol/artstay-booking/internal/domain/providers"
	"github.com/primelogicsol/artstay-booking/internal/infrastructure/observability"
)

// collectionTTLSeconds bounds how long a fetched catalog collection is reused
// before the upstream API is asked again. Filter changes never refetch; only
// TTL expiry does.
const collectionTTLSeconds = 300

// CatalogService serves filtered catalog views. Each collection is fetched
// from the upstream API once per TTL and cached; filtering runs in memory
// against the cached collection, so a filter change costs zero upstream
// round-trips.
type CatalogService struct {
	catalog providers.CatalogProvider
	cache   providers.CacheProvider // nil disables collection caching
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(catalog providers.CatalogProvider, cache providers.CacheProvider) *CatalogService {
	return &CatalogService{
		catalog: catalog,
		cache:   cache,
	}
}

// ListArtisanPackages returns artisan packages matching the query criteria.
func (s *CatalogService) ListArtisanPackages(ctx context.Context, query url.Values) ([]entities.ArtisanPackage, error) {
	items, err := listCollection(ctx, s.cache, "catalog:artisan", s.catalog.ListArtisanPackages)
	if err != nil {
		return nil, err
	}
	schema := ArtisanSchema()
	return schema.Apply(items, schema.Parse(query)), nil
}

// GetArtisanPackage returns one artisan package by id.
func (s *CatalogService) GetArtisanPackage(ctx context.Context, id string) (*entities.ArtisanPackage, error) {
	return s.catalog.GetArtisanPackage(ctx, id)
}

// ListSafariTours returns safari tours matching the query criteria.
func (s *CatalogService) ListSafariTours(ctx context.Context, query url.Values) ([]entities.SafariTour, error) {
	items, err := listCollection(ctx, s.cache, "catalog:safari", s.catalog.ListSafariTours)
	if err != nil {
		return nil, err
	}
	schema := SafariSchema()
	return schema.Apply(items, schema.Parse(query)), nil
}

// GetSafariTour returns one safari tour by id.
func (s *CatalogService) GetSafariTour(ctx context.Context, id string) (*entities.SafariTour, error) {
	return s.catalog.GetSafariTour(ctx, id)
}

// ListTransitOptions returns eco-transit options matching the query criteria.
func (s *CatalogService) ListTransitOptions(ctx context.Context, query url.Values) ([]entities.TransitOption, error) {
	items, err := listCollection(ctx, s.cache, "catalog:transit", s.catalog.ListTransitOptions)
	if err != nil {
		return nil, err
	}
	schema := TransitSchema()
	return schema.Apply(items, schema.Parse(query)), nil
}

// GetTransitOption returns one eco-transit option by id.
func (s *CatalogService) GetTransitOption(ctx context.Context, id string) (*entities.TransitOption, error) {
	return s.catalog.GetTransitOption(ctx, id)
}

// ListTravelPlans returns travel plans matching the query criteria.
func (s *CatalogService) ListTravelPlans(ctx context.Context, query url.Values) ([]entities.TravelPlan, error) {
	items, err := listCollection(ctx, s.cache, "catalog:travel", s.catalog.ListTravelPlans)
	if err != nil {
		return nil, err
	}
	schema := TravelSchema()
	return schema.Apply(items, schema.Parse(query)), nil
}

// GetTravelPlan returns one travel plan by id.
func (s *CatalogService) GetTravelPlan(ctx context.Context, id string) (*entities.TravelPlan, error) {
	return s.catalog.GetTravelPlan(ctx, id)
}

// ListRestaurants returns restaurants matching the query criteria.
func (s *CatalogService) ListRestaurants(ctx context.Context, query url.Values) ([]entities.Restaurant, error) {
	items, err := listCollection(ctx, s.cache, "catalog:dining", s.catalog.ListRestaurants)
	if err != nil {
		return nil, err
	}
	schema := DiningSchema()
	return schema.Apply(items, schema.Parse(query)), nil
}

// ListCraftShops returns craft shops matching the query criteria.
func (s *CatalogService) ListCraftShops(ctx context.Context, query url.Values) ([]entities.CraftShop, error) {
	items, err := listCollection(ctx, s.cache, "catalog:shop", s.catalog.ListCraftShops)
	if err != nil {
		return nil, err
	}
	schema := ShopSchema()
	return schema.Apply(items, schema.Parse(query)), nil
}

// ListLanguageServices returns language services matching the query criteria.
func (s *CatalogService) ListLanguageServices(ctx context.Context, query url.Values) ([]entities.LanguageService, error) {
	items, err := listCollection(ctx, s.cache, "catalog:language", s.catalog.ListLanguageServices)
	if err != nil {
		return nil, err
	}
	schema := LanguageSchema()
	return schema.Apply(items, schema.Parse(query)), nil
}

// listCollection fetches a collection through the cache. Cache failures are
// never fatal: a broken cache degrades to fetching upstream.
func listCollection[T any](ctx context.Context, cache providers.CacheProvider, key string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	logger := observability.LoggerFromContext(ctx)

	if cache != nil {
		if raw, err := cache.Get(ctx, key); err == nil {
			var items []T
			if err := json.Unmarshal(raw, &items); err == nil {
				return items, nil
			}
			// Evict the bad entry so it is not re-read until its TTL.
			logger.Warn().Str("key", key).Msg("discarding undecodable cached collection")
			if err := cache.Delete(ctx, key); err != nil {
				logger.Warn().Err(err).Str("key", key).Msg("failed to evict cached collection")
			}
		}
	}

	items, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	if cache != nil {
		if raw, err := json.Marshal(items); err == nil {
			if err := cache.Set(ctx, key, raw, collectionTTLSeconds); err != nil {
				logger.Warn().Err(err).Str("key", key).Msg("failed to cache collection")
			}
		}
	}

	return items, nil
}
