package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"stayfinder/internal/adapters/amadeus"
	"stayfinder/internal/adapters/geocode"
	server "stayfinder/internal/adapters/http_server"
	"stayfinder/internal/adapters/observability"
	redisad "stayfinder/internal/adapters/redis"
	"stayfinder/internal/app"
	"stayfinder/internal/shared"
)

func main() {
	_ = godotenv.Load()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// deps
	tokens := amadeus.NewTokenSource(cfg.AmadeusBase, cfg.AmadeusKey, cfg.AmadeusSecret)
	api := amadeus.New(cfg.AmadeusBase, tokens, cfg.AmadeusRPS)
	geo := geocode.New(cfg.GeocoderBase)
	store := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	search := app.NewSearchService(api)
	compare := app.NewCompareService(store)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Search: search, Compare: compare, Geo: geo})

	log.Info().Str("addr", cfg.HTTPAddr).Str("upstream", cfg.AmadeusBase).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
