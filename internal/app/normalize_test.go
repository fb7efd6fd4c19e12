package app

import (
	"testing"
)

func TestNormalizeHotels_Defaults(t *testing.T) {
	raw := []map[string]any{
		{
			"hotelId": "HLPAR123",
			"name":    "Hotel Etoile",
			"address": map[string]any{"lines": []any{"12 Rue X", "75001 Paris"}},
			"distance": map[string]any{
				"value": 1.2,
				"unit":  "KM",
			},
		},
		{"iataCode": "PAR"}, // no hotelId, no name, no address
		{},                  // nothing at all
	}

	hotels := normalizeHotels(raw, "2026-10-01", "2026-10-03")
	if len(hotels) != 3 {
		t.Fatalf("expected 3 hotels, got %d", len(hotels))
	}

	h := hotels[0]
	if h.ID != "HLPAR123" || h.HotelID != "HLPAR123" {
		t.Fatalf("unexpected ids: %+v", h)
	}
	if h.Address != "12 Rue X, 75001 Paris" {
		t.Fatalf("unexpected address: %q", h.Address)
	}
	if h.Distance == nil || *h.Distance != 1.2 {
		t.Fatalf("unexpected distance: %v", h.Distance)
	}
	if h.Price != nil || h.Rating != nil {
		t.Fatalf("price/rating must start nil")
	}
	if h.CheckInDate != "2026-10-01" || h.CheckOutDate != "2026-10-03" {
		t.Fatalf("dates not echoed: %+v", h)
	}

	if hotels[1].ID != "PAR" || hotels[1].HotelID != "PAR" || hotels[1].Name != "Hotel" {
		t.Fatalf("iataCode fallback broken: %+v", hotels[1])
	}
	if hotels[2].ID != "hotel-2" || hotels[2].HotelID != "" || hotels[2].Address != "" {
		t.Fatalf("positional fallback broken: %+v", hotels[2])
	}
}

func TestNormalizeHotels_UniqueNonEmptyIDs(t *testing.T) {
	raw := []map[string]any{{}, {}, {}, {"name": 42.0}, {"address": "not a map"}}
	hotels := normalizeHotels(raw, "", "")

	seen := map[string]bool{}
	for _, h := range hotels {
		if h.ID == "" {
			t.Fatalf("empty id in %+v", h)
		}
		if seen[h.ID] {
			t.Fatalf("duplicate id %q", h.ID)
		}
		seen[h.ID] = true
	}
}

func TestNormalizeHotels_MalformedInput(t *testing.T) {
	if got := normalizeHotels(nil, "", ""); len(got) != 0 {
		t.Fatalf("nil input should normalize to empty, got %d", len(got))
	}
	// a nil record must not panic
	if got := normalizeHotels([]map[string]any{nil}, "", ""); len(got) != 1 || got[0].ID != "hotel-0" {
		t.Fatalf("nil record not handled: %+v", got)
	}
}

func TestFallbackForLocation_SegmentOrderAndIdempotence(t *testing.T) {
	ref, ok := fallbackForLocation("Patna, India")
	if !ok || ref.City != "Kolkata" || ref.IATA != "CCU" {
		t.Fatalf("full-string lookup failed: %+v %v", ref, ok)
	}
	// leading comma segment after trimming
	ref2, ok := fallbackForLocation("  Gaya, Bihar, India ")
	if !ok || ref2.IATA != "VNS" {
		t.Fatalf("segment lookup failed: %+v %v", ref2, ok)
	}
	// idempotent: same input, same substitute
	again, _ := fallbackForLocation("Patna, India")
	if again != ref {
		t.Fatalf("lookup not idempotent: %+v vs %+v", again, ref)
	}
	if _, ok := fallbackForLocation("Atlantis"); ok {
		t.Fatalf("unexpected match for unmapped location")
	}
	if _, ok := fallbackForLocation(""); ok {
		t.Fatalf("unexpected match for empty location")
	}
}
