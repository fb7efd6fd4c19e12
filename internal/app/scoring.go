package app

import (
	"math"
	"sort"

	"stayfinder/internal/domain"
)

// Comparison weights. They sum to 1.0 so a combined score of clamped
// components stays in [0,1].
const (
	weightPrice    = 0.35
	weightRating   = 0.30
	weightDistance = 0.20
	weightReviews  = 0.15
)

// RankedHotels is the scored comparison set, ordered best first.
type RankedHotels struct {
	Ranked      []domain.ScoredHotel `json:"ranked"`
	SuggestedID string               `json:"suggestedId,omitempty"`
}

type scoreStats struct {
	minPrice    float64
	maxPrice    float64
	maxDistance float64
	maxReviews  float64
}

// ScoreHotels computes per-hotel normalized sub-scores, combines them with
// fixed weights, ranks descending, and flags exactly one suggestion. Pure and
// total: missing or non-numeric fields count as zero, never as an error.
func ScoreHotels(hotels []domain.Hotel) RankedHotels {
	if len(hotels) == 0 {
		return RankedHotels{Ranked: []domain.ScoredHotel{}}
	}
	// A single hotel is definitionally the best choice; skipping the stats
	// pass also avoids a zero-width normalization range.
	if len(hotels) == 1 {
		return RankedHotels{
			Ranked:      []domain.ScoredHotel{{Hotel: hotels[0], Score: 1, IsSuggested: true}},
			SuggestedID: hotels[0].ID,
		}
	}

	stats := computeStats(hotels)
	ranked := make([]domain.ScoredHotel, len(hotels))
	for i, h := range hotels {
		ranked[i] = domain.ScoredHotel{Hotel: h, Score: scoreOne(h, stats)}
	}
	// Stable: ties keep input order, no secondary key.
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })

	ranked[0].IsSuggested = true
	return RankedHotels{Ranked: ranked, SuggestedID: ranked[0].ID}
}

func computeStats(hotels []domain.Hotel) scoreStats {
	st := scoreStats{minPrice: math.Inf(1), maxPrice: math.Inf(-1)}
	for _, h := range hotels {
		if p := priceOf(h); p > 0 {
			st.minPrice = math.Min(st.minPrice, p)
			st.maxPrice = math.Max(st.maxPrice, p)
		}
		st.maxDistance = math.Max(st.maxDistance, distanceOf(h))
		st.maxReviews = math.Max(st.maxReviews, reviewsOf(h))
	}
	// Floors against zero-width ranges and division by zero.
	if math.IsInf(st.minPrice, 1) {
		st.minPrice = 0
	}
	if st.maxPrice <= st.minPrice {
		st.maxPrice = st.minPrice + 1
	}
	if st.maxDistance == 0 {
		st.maxDistance = 1
	}
	if st.maxReviews == 0 {
		st.maxReviews = 1
	}
	return st
}

func scoreOne(h domain.Hotel, st scoreStats) float64 {
	priceNorm := 1.0
	if st.maxPrice > st.minPrice {
		priceNorm = 1 - (priceOf(h)-st.minPrice)/(st.maxPrice-st.minPrice)
	}
	ratingNorm := clamp01(ratingOf(h) / 5)
	distanceNorm := 1 - distanceOf(h)/st.maxDistance
	reviewsNorm := reviewsOf(h) / st.maxReviews

	return weightPrice*priceNorm +
		weightRating*ratingNorm +
		weightDistance*distanceNorm +
		weightReviews*reviewsNorm
}

func priceOf(h domain.Hotel) float64 {
	if h.Price == nil {
		return 0
	}
	return *h.Price
}

func ratingOf(h domain.Hotel) float64 {
	if h.Rating == nil {
		return 0
	}
	return *h.Rating
}

// distanceOf prefers the dedicated airport distance, falling back to the
// plain search-point distance.
func distanceOf(h domain.Hotel) float64 {
	if h.DistanceFromAirport != nil {
		return *h.DistanceFromAirport
	}
	if h.Distance != nil {
		return *h.Distance
	}
	return 0
}

func reviewsOf(h domain.Hotel) float64 {
	if h.ReviewCount == nil || *h.ReviewCount < 0 {
		return 0
	}
	return float64(*h.ReviewCount)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
