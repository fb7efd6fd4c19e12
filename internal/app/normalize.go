package app

import (
	"fmt"
	"strconv"
	"strings"

	"stayfinder/internal/domain"
)

// Normalization default table (applied in normalizeHotels):
//
//	id       hotelId, else iataCode, else "hotel-<index>"
//	name     "Hotel" when absent
//	hotelId  hotelId, else iataCode
//	address  address.lines joined with ", ", else ""
//	distance distance.value, else distance, else absent
//	price    nil until enriched
//	rating   nil until enriched
//	dates    echoed from the request, never from the payload
//
// A nil or malformed record list normalizes to an empty slice.
func normalizeHotels(raw []map[string]any, checkIn, checkOut string) []domain.Hotel {
	out := make([]domain.Hotel, 0, len(raw))
	for i, rec := range raw {
		if rec == nil {
			rec = map[string]any{}
		}
		hotelID := lookupStr(rec, "hotelId")
		if hotelID == "" {
			hotelID = lookupStr(rec, "iataCode")
		}
		id := hotelID
		if id == "" {
			id = fmt.Sprintf("hotel-%d", i)
		}
		name := lookupStr(rec, "name")
		if name == "" {
			name = "Hotel"
		}
		out = append(out, domain.Hotel{
			ID:           id,
			Name:         name,
			HotelID:      hotelID,
			Address:      joinAddressLines(rec),
			Distance:     lookupFloat(rec, "distance.value", "distance"),
			CheckInDate:  checkIn,
			CheckOutDate: checkOut,
		})
	}
	return out
}

// lookupAny walks a dot path through nested maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

func lookupStr(m map[string]any, path string) string {
	if s, ok := lookupAny(m, path).(string); ok {
		return s
	}
	return ""
}

// lookupFloat returns the first numeric value found at the given paths,
// accepting float64, int, and numeric strings.
func lookupFloat(m map[string]any, paths ...string) *float64 {
	for _, p := range paths {
		switch v := lookupAny(m, p).(type) {
		case float64:
			f := v
			return &f
		case int:
			f := float64(v)
			return &f
		case string:
			s := strings.TrimSpace(v)
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return &f
			}
		}
	}
	return nil
}

func joinAddressLines(rec map[string]any) string {
	lines, ok := lookupAny(rec, "address.lines").([]any)
	if !ok {
		return ""
	}
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		if s, ok := l.(string); ok && strings.TrimSpace(s) != "" {
			parts = append(parts, strings.TrimSpace(s))
		}
	}
	return strings.Join(parts, ", ")
}
