package app

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"stayfinder/internal/adapters/observability"
	"stayfinder/internal/domain"
)

const defaultPageSize = 10

// SearchService is the public search entry point. It resolves the endpoint,
// runs the fallback tiers, paginates in memory, and enriches only the
// returned page.
type SearchService struct {
	api domain.UpstreamClient
}

func NewSearchService(api domain.UpstreamClient) *SearchService {
	return &SearchService{api: api}
}

// resolved is the outcome of the primary fetch plus any fallback tier.
type resolved struct {
	hotels  []domain.Hotel
	outcome fallbackOutcome
	city    string
}

func (s *SearchService) Search(ctx context.Context, p domain.SearchParams) (domain.SearchResultEnvelope, error) {
	page := p.Page
	if page < 1 {
		page = 1
	}
	pageSize := p.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	adults := p.Adults
	if adults < 1 {
		adults = 1
	}

	res, err := s.resolve(ctx, p)
	if err != nil {
		return domain.SearchResultEnvelope{}, err
	}

	offset := (page - 1) * pageSize
	paginated := paginate(res.hotels, offset, pageSize)

	// Enrich the page slice only; the full list is never priced.
	s.enrichOffers(ctx, paginated, adults, p.CheckInDate, p.CheckOutDate)
	fillPlaceholders(paginated)

	env := domain.SearchResultEnvelope{
		Data:  paginated,
		Total: len(res.hotels),
	}
	if offset+len(paginated) < len(res.hotels) {
		next := page + 1
		env.NextPage = &next
	}
	if res.outcome == fallbackNearby && res.city != "" {
		env.IsFallback = true
		env.BannerMessage = bannerNearby
		env.FallbackCityName = res.city
	}
	return env, nil
}

// resolve runs the primary query and the error- and empty-result fallback
// tiers, returning the full (unpaginated) hotel list.
func (s *SearchService) resolve(ctx context.Context, p domain.SearchParams) (resolved, error) {
	byGeocode := p.Location.HasGeocode()

	var raw []map[string]any
	var err error
	if byGeocode {
		raw, err = s.api.HotelsByGeocode(ctx, *p.Location.Latitude, *p.Location.Longitude)
	} else {
		code := strings.ToUpper(strings.TrimSpace(p.CityCode))
		if code == "" {
			code = defaultCityCode
		}
		raw, err = s.api.HotelsByCity(ctx, code)
	}

	if err != nil {
		return s.recoverFromError(ctx, p, byGeocode, err)
	}

	hotels := normalizeHotels(raw, p.CheckInDate, p.CheckOutDate)

	// Empty-result tier: primary succeeded with zero hotels. This path never
	// fails; it degrades to "no hotels found".
	if len(hotels) == 0 && p.Location != nil && p.Location.Name != "" {
		if ref, ok := fallbackForLocation(p.Location.Name); ok {
			sub, serr := s.api.HotelsByCity(ctx, ref.IATA)
			if serr != nil {
				log.Debug().Err(serr).Str("city", ref.City).Msg("empty-result fallback failed, keeping empty result")
				return resolved{hotels: hotels}, nil
			}
			observability.ObserveFallback("nearby")
			return resolved{
				hotels:  normalizeHotels(sub, p.CheckInDate, p.CheckOutDate),
				outcome: fallbackNearby,
				city:    ref.City,
			}, nil
		}
	}
	return resolved{hotels: hotels}, nil
}

// recoverFromError handles the error-triggered fallback tier. Auth failures
// are a distinct fatal path; only geocode queries that fail with an upstream
// HTTP error are eligible for substitution.
func (s *SearchService) recoverFromError(ctx context.Context, p domain.SearchParams, byGeocode bool, err error) (resolved, error) {
	if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrNotConfigured) {
		return resolved{}, err
	}

	var ue *domain.UpstreamError
	if !errors.As(err, &ue) {
		// transport-level failure: nothing to recover from
		return resolved{}, err
	}

	if !byGeocode {
		return resolved{}, &domain.SearchError{Detail: ue.Detail}
	}

	if ref, ok := fallbackForLocation(p.Location.Name); ok {
		sub, serr := s.api.HotelsByCity(ctx, ref.IATA)
		if serr != nil {
			return resolved{}, &domain.SearchError{Detail: ue.Detail}
		}
		observability.ObserveFallback("nearby")
		return resolved{
			hotels:  normalizeHotels(sub, p.CheckInDate, p.CheckOutDate),
			outcome: fallbackNearby,
			city:    ref.City,
		}, nil
	}

	// No curated substitute: retry the fixed default city, unflagged.
	sub, serr := s.api.HotelsByCity(ctx, defaultCityCode)
	if serr != nil {
		return resolved{}, &domain.SearchError{Detail: ue.Detail}
	}
	observability.ObserveFallback("default")
	return resolved{hotels: normalizeHotels(sub, p.CheckInDate, p.CheckOutDate)}, nil
}

func paginate(hotels []domain.Hotel, offset, pageSize int) []domain.Hotel {
	if offset >= len(hotels) {
		return []domain.Hotel{}
	}
	end := offset + pageSize
	if end > len(hotels) {
		end = len(hotels)
	}
	out := make([]domain.Hotel, end-offset)
	copy(out, hotels[offset:end])
	return out
}
