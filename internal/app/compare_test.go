package app_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"stayfinder/internal/app"
	"stayfinder/internal/domain"
)

// fakeStore keeps selections in memory; failing simulates a broken backend.
type fakeStore struct {
	store   map[string][]domain.Hotel
	failing bool
}

func (f *fakeStore) Get(ctx context.Context, key string, dst any) (bool, error) {
	if f.failing {
		return false, errors.New("store down")
	}
	v, ok := f.store[key]
	if !ok {
		return false, nil
	}
	*(dst.(*[]domain.Hotel)) = v
	return true, nil
}

func (f *fakeStore) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if f.failing {
		return errors.New("store down")
	}
	if f.store == nil {
		f.store = map[string][]domain.Hotel{}
	}
	f.store[key] = append([]domain.Hotel(nil), v.([]domain.Hotel)...)
	return nil
}

func (f *fakeStore) Del(ctx context.Context, key string) error {
	if f.failing {
		return errors.New("store down")
	}
	delete(f.store, key)
	return nil
}

func TestCompare_AddListRemove(t *testing.T) {
	svc := app.NewCompareService(&fakeStore{})
	ctx := context.Background()

	svc.Add(ctx, "c1", hotel("a", 100, 4, 1, 10))
	svc.Add(ctx, "c1", hotel("b", 120, 4.2, 2, 20))
	svc.Add(ctx, "c1", hotel("a", 100, 4, 1, 10)) // duplicate, ignored

	got := svc.List(ctx, "c1")
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("unexpected selection: %+v", got)
	}

	got = svc.Remove(ctx, "c1", "a")
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("remove failed: %+v", got)
	}
}

func TestCompare_CapacityCap(t *testing.T) {
	svc := app.NewCompareService(&fakeStore{})
	ctx := context.Background()

	for i := 0; i < app.MaxCompare+3; i++ {
		svc.Add(ctx, "c1", hotel(fmt.Sprintf("h%d", i), 100, 4, 1, 10))
	}
	if got := svc.List(ctx, "c1"); len(got) != app.MaxCompare {
		t.Fatalf("selection must cap at %d, got %d", app.MaxCompare, len(got))
	}
}

func TestCompare_Toggle(t *testing.T) {
	svc := app.NewCompareService(&fakeStore{})
	ctx := context.Background()

	h := hotel("a", 100, 4, 1, 10)
	if got := svc.Toggle(ctx, "c1", h); len(got) != 1 {
		t.Fatalf("toggle on failed: %+v", got)
	}
	if got := svc.Toggle(ctx, "c1", h); len(got) != 0 {
		t.Fatalf("toggle off failed: %+v", got)
	}
}

func TestCompare_ClearAndRanked(t *testing.T) {
	svc := app.NewCompareService(&fakeStore{})
	ctx := context.Background()

	svc.Add(ctx, "c1", hotel("pricy", 300, 4.0, 3, 10))
	svc.Add(ctx, "c1", hotel("value", 90, 4.5, 1, 200))

	ranked := svc.Ranked(ctx, "c1")
	if len(ranked.Ranked) != 2 || ranked.SuggestedID != "value" {
		t.Fatalf("unexpected ranking: %+v", ranked)
	}

	svc.Clear(ctx, "c1")
	if got := svc.List(ctx, "c1"); len(got) != 0 {
		t.Fatalf("clear failed: %+v", got)
	}
}

func TestCompare_StoreFailuresAreIgnored(t *testing.T) {
	svc := app.NewCompareService(&fakeStore{failing: true})
	ctx := context.Background()

	// no panics, no errors; selection just behaves as empty
	got := svc.Add(ctx, "c1", hotel("a", 100, 4, 1, 10))
	if len(got) != 1 {
		t.Fatalf("add must still return the in-memory result: %+v", got)
	}
	if got := svc.List(ctx, "c1"); len(got) != 0 {
		t.Fatalf("broken store reads as empty: %+v", got)
	}
	svc.Clear(ctx, "c1")
}
