package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	redisad "stayfinder/internal/adapters/redis"
	"stayfinder/internal/domain"
)

func newStore(t *testing.T) *redisad.Store {
	t.Helper()
	mr := miniredis.RunT(t)
	return redisad.New(mr.Addr(), "", 0)
}

func TestStore_RoundTrip(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	price := 120.0
	in := []domain.Hotel{{ID: "a", Name: "Hotel A", Price: &price}}
	if err := store.Set(ctx, "compare:c1", in, 0); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out []domain.Hotel
	ok, err := store.Get(ctx, "compare:c1", &out)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if len(out) != 1 || out[0].ID != "a" || out[0].Price == nil || *out[0].Price != 120 {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestStore_MissAndDelete(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	var out []domain.Hotel
	ok, err := store.Get(ctx, "compare:absent", &out)
	if err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}

	if err := store.Set(ctx, "compare:c1", []domain.Hotel{{ID: "a"}}, 0); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Del(ctx, "compare:c1"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if ok, _ := store.Get(ctx, "compare:c1", &out); ok {
		t.Fatalf("expected miss after delete")
	}
}
