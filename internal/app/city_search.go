package app

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"stayfinder/internal/adapters/observability"
	"stayfinder/internal/domain"
	"stayfinder/internal/shared"
)

// SearchByCity is the structured city/country path: try the requested city
// when its IATA code is known, then fall back to the country's capital from
// the static map. The capital substitution is flagged distinctly from the
// nearby-city substitution used by the geocode path.
func (s *SearchService) SearchByCity(ctx context.Context, city, country string, opts domain.CitySearchParams) (domain.CityResult, error) {
	cityNorm := strings.TrimSpace(city)
	countryNorm := strings.TrimSpace(country)

	if code, ok := iataForCity(cityNorm); ok {
		hotels, err := s.fetchCity(ctx, code, opts)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrNotConfigured) {
				return domain.CityResult{}, err
			}
			log.Debug().Err(err).Str("city", cityNorm).Msg("primary city search failed, trying capital")
		} else if len(hotels) > 0 {
			for i := range hotels {
				hotels[i].City = cityNorm
			}
			return domain.CityResult{Hotels: hotels}, nil
		}
	}

	capital, ok := shared.CountryCapitalMap[countryNorm]
	if !ok {
		return domain.CityResult{
			Hotels: []domain.Hotel{},
			Error:  msgNoCapitalFallback,
		}, nil
	}

	hotels, err := s.fetchCity(ctx, capital.IATA, opts)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrNotConfigured) {
			return domain.CityResult{}, err
		}
		detail := msgCapitalFailed
		var ue *domain.UpstreamError
		if errors.As(err, &ue) && ue.Detail != "" {
			detail = ue.Detail
		}
		return domain.CityResult{Hotels: []domain.Hotel{}, Error: detail}, nil
	}

	observability.ObserveFallback("capital")
	for i := range hotels {
		hotels[i].City = capital.City
	}
	return domain.CityResult{
		Hotels:        hotels,
		IsFallback:    true,
		FallbackType:  "capital",
		FallbackCity:  capital.City,
		BannerMessage: bannerCapital,
	}, nil
}

// fetchCity lists a city's hotels fully enriched; unlike the paginated path
// the whole list is priced (placeholders included).
func (s *SearchService) fetchCity(ctx context.Context, code string, opts domain.CitySearchParams) ([]domain.Hotel, error) {
	raw, err := s.api.HotelsByCity(ctx, code)
	if err != nil {
		return nil, err
	}
	hotels := normalizeHotels(raw, opts.CheckInDate, opts.CheckOutDate)
	adults := opts.Adults
	if adults < 1 {
		adults = 1
	}
	s.enrichOffers(ctx, hotels, adults, opts.CheckInDate, opts.CheckOutDate)
	fillPlaceholders(hotels)
	return hotels, nil
}
