package domain

import "context"

// UpstreamClient is the hotel-inventory and pricing API. Methods return the
// raw `data` records so the normalizer owns all field extraction and defaults.
type UpstreamClient interface {
	HotelsByGeocode(ctx context.Context, lat, lon float64) ([]map[string]any, error)
	HotelsByCity(ctx context.Context, cityCode string) ([]map[string]any, error)
	HotelOffers(ctx context.Context, hotelIDs []string, adults int, checkIn, checkOut string) ([]map[string]any, error)
}

// Geocoder resolves free-text place queries to candidate locations.
type Geocoder interface {
	Search(ctx context.Context, query string) ([]Place, error)
}

// SelectionStore persists the comparison selection set. Callers treat writes
// as best-effort: a failing store must not break selection for the session.
type SelectionStore interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
