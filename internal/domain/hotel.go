package domain

// Hotel is the canonical, post-normalization shape served to clients.
// Price and Rating stay nil until the offer enricher has run; after a search
// completes every hotel in the returned page carries non-nil values for both
// (live offer data or a positional placeholder).
type Hotel struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	HotelID             string   `json:"hotelId"`
	Address             string   `json:"address"`
	City                string   `json:"city,omitempty"`
	Distance            *float64 `json:"distance,omitempty"`
	DistanceFromAirport *float64 `json:"distanceFromAirport,omitempty"`
	Price               *float64 `json:"price"`
	Rating              *float64 `json:"rating"`
	ReviewCount         *int     `json:"reviewCount,omitempty"`
	CheckInDate         string   `json:"checkInDate,omitempty"`
	CheckOutDate        string   `json:"checkOutDate,omitempty"`
}

// SearchLocation describes where to search. Geocode search is used when both
// coordinates are present; Name is the free-text display name from the
// geocoding collaborator and drives the nearby-city fallback lookup.
type SearchLocation struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Name      string   `json:"name,omitempty"`
}

// HasGeocode reports whether both coordinates are set.
func (l *SearchLocation) HasGeocode() bool {
	return l != nil && l.Latitude != nil && l.Longitude != nil
}

type SearchParams struct {
	Location     *SearchLocation
	CityCode     string
	Adults       int
	CheckInDate  string
	CheckOutDate string
	Page         int
	PageSize     int
}

// SearchResultEnvelope is one page of search results plus fallback metadata.
type SearchResultEnvelope struct {
	Data             []Hotel `json:"data"`
	NextPage         *int    `json:"nextPage"`
	Total            int     `json:"total"`
	IsFallback       bool    `json:"isFallback,omitempty"`
	BannerMessage    string  `json:"bannerMessage,omitempty"`
	FallbackCityName string  `json:"fallbackCityName,omitempty"`
}

// CitySearchParams are the options for the city/country search path.
type CitySearchParams struct {
	Adults       int
	CheckInDate  string
	CheckOutDate string
}

// CityResult is the envelope for city/country search with capital fallback.
// Error is set (with zero hotels) when no fallback tier could recover.
type CityResult struct {
	Hotels        []Hotel `json:"hotels"`
	IsFallback    bool    `json:"isFallback"`
	FallbackType  string  `json:"fallbackType,omitempty"`
	FallbackCity  string  `json:"fallbackCity,omitempty"`
	BannerMessage string  `json:"bannerMessage,omitempty"`
	Error         string  `json:"error,omitempty"`
}

// ScoredHotel is a Hotel plus its combined comparison score in [0,1].
// Exactly one hotel in a non-empty scored set has IsSuggested true.
type ScoredHotel struct {
	Hotel
	Score       float64 `json:"score"`
	IsSuggested bool    `json:"isSuggested"`
}

// Place is a candidate from the free-text geocoding collaborator.
type Place struct {
	DisplayName string  `json:"displayName"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
}
