package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"stayfinder/internal/domain"
)

// MaxCompare caps the comparison selection set.
const MaxCompare = 5

// CompareService manages a client's comparison selection. The store is
// best-effort: read/write failures are logged and ignored so selection keeps
// working in memory for the request.
type CompareService struct {
	store domain.SelectionStore
}

func NewCompareService(store domain.SelectionStore) *CompareService {
	return &CompareService{store: store}
}

func selectionKey(clientID string) string {
	return fmt.Sprintf("compare:%s", clientID)
}

func (s *CompareService) List(ctx context.Context, clientID string) []domain.Hotel {
	var selected []domain.Hotel
	ok, err := s.store.Get(ctx, selectionKey(clientID), &selected)
	if err != nil {
		log.Warn().Err(err).Str("client", clientID).Msg("selection read failed")
		return []domain.Hotel{}
	}
	if !ok || selected == nil {
		return []domain.Hotel{}
	}
	return selected
}

// Add appends the hotel unless it is already selected or the set is full.
func (s *CompareService) Add(ctx context.Context, clientID string, h domain.Hotel) []domain.Hotel {
	if h.ID == "" {
		return s.List(ctx, clientID)
	}
	selected := s.List(ctx, clientID)
	for _, cur := range selected {
		if cur.ID == h.ID {
			return selected
		}
	}
	if len(selected) >= MaxCompare {
		return selected
	}
	selected = append(selected, h)
	s.save(ctx, clientID, selected)
	return selected
}

func (s *CompareService) Remove(ctx context.Context, clientID, id string) []domain.Hotel {
	selected := s.List(ctx, clientID)
	out := selected[:0]
	for _, cur := range selected {
		if cur.ID != id {
			out = append(out, cur)
		}
	}
	s.save(ctx, clientID, out)
	return out
}

// Toggle removes the hotel when present, otherwise adds it (subject to the
// capacity cap).
func (s *CompareService) Toggle(ctx context.Context, clientID string, h domain.Hotel) []domain.Hotel {
	if h.ID == "" {
		return s.List(ctx, clientID)
	}
	selected := s.List(ctx, clientID)
	for _, cur := range selected {
		if cur.ID == h.ID {
			return s.Remove(ctx, clientID, h.ID)
		}
	}
	if len(selected) >= MaxCompare {
		return selected
	}
	selected = append(selected, h)
	s.save(ctx, clientID, selected)
	return selected
}

func (s *CompareService) Clear(ctx context.Context, clientID string) {
	if err := s.store.Del(ctx, selectionKey(clientID)); err != nil {
		log.Warn().Err(err).Str("client", clientID).Msg("selection clear failed")
	}
}

// Ranked scores the current selection and flags the suggested hotel.
func (s *CompareService) Ranked(ctx context.Context, clientID string) RankedHotels {
	return ScoreHotels(s.List(ctx, clientID))
}

func (s *CompareService) save(ctx context.Context, clientID string, selected []domain.Hotel) {
	if err := s.store.Set(ctx, selectionKey(clientID), selected, 0); err != nil {
		log.Warn().Err(err).Str("client", clientID).Msg("selection write failed")
	}
}
