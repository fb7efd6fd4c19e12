package app

import (
	"strings"

	"stayfinder/internal/shared"
)

// Fallback tiers. Threading an explicit outcome through the resolver keeps
// the keep-going-on-failure policy visible instead of burying it in error
// suppression.
type fallbackOutcome int

const (
	fallbackNone fallbackOutcome = iota
	fallbackNearby
	fallbackCapital
)

const (
	bannerNearby  = "Limited availability for this city. Showing popular / recommended stays nearby."
	bannerCapital = "Limited availability for this city. Showing popular stays in the capital."

	msgNoCapitalFallback = "No capital fallback for this country. Try another city or country."
	msgCapitalFailed     = "Failed to load hotels for the capital."

	defaultCityCode = "PAR"
)

// fallbackForLocation resolves a location display name against the curated
// nearby-city map: the full trimmed string first, then its leading
// comma-separated segment.
func fallbackForLocation(name string) (shared.CityRef, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return shared.CityRef{}, false
	}
	if ref, ok := shared.FallbackCityMap[trimmed]; ok {
		return ref, true
	}
	cityPart := strings.TrimSpace(strings.SplitN(trimmed, ",", 2)[0])
	ref, ok := shared.FallbackCityMap[cityPart]
	return ref, ok
}

// iataForCity resolves a requested city name to its IATA code, trying the
// full trimmed name before its leading comma-separated segment.
func iataForCity(city string) (string, bool) {
	trimmed := strings.TrimSpace(city)
	if trimmed == "" {
		return "", false
	}
	if code, ok := shared.CityToIATA[trimmed]; ok {
		return code, true
	}
	cityPart := strings.TrimSpace(strings.SplitN(trimmed, ",", 2)[0])
	code, ok := shared.CityToIATA[cityPart]
	return code, ok
}
