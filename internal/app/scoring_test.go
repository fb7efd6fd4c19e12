package app_test

import (
	"testing"

	"stayfinder/internal/app"
	"stayfinder/internal/domain"
)

func hotel(id string, price, rating, distance float64, reviews int) domain.Hotel {
	return domain.Hotel{
		ID:          id,
		Name:        "Hotel " + id,
		Price:       ptr(price),
		Rating:      ptr(rating),
		Distance:    ptr(distance),
		ReviewCount: &reviews,
	}
}

func ptr[T any](v T) *T { return &v }

func TestScoreHotels_Empty(t *testing.T) {
	out := app.ScoreHotels(nil)
	if len(out.Ranked) != 0 || out.SuggestedID != "" {
		t.Fatalf("unexpected output for empty input: %+v", out)
	}
}

func TestScoreHotels_Single(t *testing.T) {
	out := app.ScoreHotels([]domain.Hotel{hotel("a", 120, 4.1, 2, 40)})
	if len(out.Ranked) != 1 {
		t.Fatalf("expected 1 ranked hotel, got %d", len(out.Ranked))
	}
	if out.Ranked[0].Score != 1 || !out.Ranked[0].IsSuggested || out.SuggestedID != "a" {
		t.Fatalf("single hotel must score 1 and be suggested: %+v", out.Ranked[0])
	}
}

func TestScoreHotels_ExactlyOneSuggested(t *testing.T) {
	hotels := []domain.Hotel{
		hotel("cheap", 80, 3.5, 5, 10),
		hotel("best", 90, 4.9, 1, 500),
		hotel("far", 300, 4.0, 9, 50),
		hotel("plain", 150, 3.8, 4, 20),
	}
	out := app.ScoreHotels(hotels)

	suggested := 0
	top := out.Ranked[0]
	for _, h := range out.Ranked {
		if h.IsSuggested {
			suggested++
		}
		if h.Score < 0 || h.Score > 1 {
			t.Fatalf("score out of [0,1]: %s = %f", h.ID, h.Score)
		}
		if h.Score > top.Score {
			t.Fatalf("ranking not descending: %s above %s", h.ID, top.ID)
		}
	}
	if suggested != 1 {
		t.Fatalf("expected exactly one suggested, got %d", suggested)
	}
	if !top.IsSuggested || out.SuggestedID != top.ID {
		t.Fatalf("suggested must be the top-ranked hotel: %+v", top)
	}
	if top.ID != "best" {
		t.Fatalf("expected best to win, got %s", top.ID)
	}
}

func TestScoreHotels_TiesKeepInputOrder(t *testing.T) {
	// identical hotels tie on every component; stable sort keeps input order
	hotels := []domain.Hotel{
		hotel("first", 100, 4.0, 2, 30),
		hotel("second", 100, 4.0, 2, 30),
		hotel("third", 100, 4.0, 2, 30),
	}
	out := app.ScoreHotels(hotels)
	for i, want := range []string{"first", "second", "third"} {
		if out.Ranked[i].ID != want {
			t.Fatalf("tie order broken at %d: got %s", i, out.Ranked[i].ID)
		}
	}
	if out.SuggestedID != "first" {
		t.Fatalf("tie must suggest the earliest hotel, got %s", out.SuggestedID)
	}
}

func TestScoreHotels_MissingFieldsAreZero(t *testing.T) {
	// no hotel has a price: the degenerate range scores everyone 1 on price
	reviews := 100
	hotels := []domain.Hotel{
		{ID: "bare"},
		{ID: "bare2"},
		{ID: "rated", Rating: ptr(5.0), ReviewCount: &reviews},
	}
	out := app.ScoreHotels(hotels)
	for _, h := range out.Ranked {
		if h.Score < 0 || h.Score > 1 {
			t.Fatalf("score out of bounds for %s: %f", h.ID, h.Score)
		}
	}
	if out.SuggestedID != "rated" {
		t.Fatalf("expected rated to be suggested, got %s", out.SuggestedID)
	}
}

func TestScoreHotels_AirportDistancePreferred(t *testing.T) {
	near := hotel("near", 100, 4.0, 9, 10)
	near.DistanceFromAirport = ptr(0.5)
	far := hotel("far", 100, 4.0, 0.1, 10)
	far.DistanceFromAirport = ptr(8.0)

	out := app.ScoreHotels([]domain.Hotel{far, near})
	if out.SuggestedID != "near" {
		t.Fatalf("airport distance should dominate plain distance, got %s", out.SuggestedID)
	}
}
