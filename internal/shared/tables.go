package shared

// CityRef pairs a display city name with its IATA city code.
type CityRef struct {
	City string
	IATA string
}

// CityToIATA maps requested city names to IATA codes for the primary
// city/country search. Curated, exact-match only.
var CityToIATA = map[string]string{
	"Patna":     "PAT",
	"New Delhi": "DEL",
	"Paris":     "PAR",
	"Tokyo":     "TYO",
	"Kolkata":   "CCU",
	"Mumbai":    "BOM",
	"Gaya":      "GAY",
	"Varanasi":  "VNS",
}

// FallbackCityMap maps locations with poor upstream coverage to a nearby
// supported city. Keys include both bare city names and "City, Country"
// display names from the geocoder.
var FallbackCityMap = map[string]CityRef{
	"Patna":        {City: "Kolkata", IATA: "CCU"},
	"Patna, India": {City: "Kolkata", IATA: "CCU"},
	"Gaya":         {City: "Varanasi", IATA: "VNS"},
	"Gaya, India":  {City: "Varanasi", IATA: "VNS"},
}

// CountryCapitalMap maps a country to its capital for the last fallback tier
// of the city/country search. Static map only, no geolocation.
var CountryCapitalMap = map[string]CityRef{
	"India":  {City: "New Delhi", IATA: "DEL"},
	"France": {City: "Paris", IATA: "PAR"},
	"Japan":  {City: "Tokyo", IATA: "TYO"},
}
