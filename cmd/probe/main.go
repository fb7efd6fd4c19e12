// Command probe walks the curated city tables and reports how many hotels
// the upstream actually lists per IATA code, so the fallback maps can be
// reviewed against real coverage.
package main

import (
	"context"
	"sort"
	"sync"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"stayfinder/internal/adapters/amadeus"
	"stayfinder/internal/adapters/observability"
	"stayfinder/internal/shared"
)

func main() {
	ctx := context.Background()
	_ = godotenv.Load()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("base", cfg.AmadeusBase).
		Int("workers", cfg.ProbeWorkers).
		Msg("coverage probe starting")

	tokens := amadeus.NewTokenSource(cfg.AmadeusBase, cfg.AmadeusKey, cfg.AmadeusSecret)
	api := amadeus.New(cfg.AmadeusBase, tokens, cfg.AmadeusRPS)

	codes := map[string]string{}
	for city, code := range shared.CityToIATA {
		codes[code] = city
	}
	for _, ref := range shared.FallbackCityMap {
		codes[ref.IATA] = ref.City
	}
	for _, ref := range shared.CountryCapitalMap {
		codes[ref.IATA] = ref.City
	}
	ordered := make([]string, 0, len(codes))
	for code := range codes {
		ordered = append(ordered, code)
	}
	sort.Strings(ordered)

	sem := semaphore.NewWeighted(int64(cfg.ProbeWorkers))
	var wg sync.WaitGroup

	for _, code := range ordered {
		code, city := code, codes[code]

		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			hotels, err := api.HotelsByCity(ctx, code)
			if err != nil {
				log.Warn().Str("code", code).Str("city", city).Err(err).Msg("probe failed")
				return
			}
			log.Info().Str("code", code).Str("city", city).Int("hotels", len(hotels)).Msg("probe ok")
		}()
	}

	wg.Wait()
	log.Info().Msg("coverage probe completed")
}
