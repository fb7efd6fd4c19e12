package shared

import (
	"os"
	"strconv"
)

type Config struct {
	AppEnv        string
	HTTPAddr      string
	MetricsAddr   string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	AmadeusBase   string
	AmadeusKey    string
	AmadeusSecret string
	AmadeusRPS    int
	GeocoderBase  string
	PageSize      int
	ProbeWorkers  int
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	return Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		AmadeusBase: env("AMADEUS_BASE_URL", "https://test.api.amadeus.com"),
		// Missing credentials are not fatal here; the first token request
		// reports the configuration error.
		AmadeusKey:    env("AMADEUS_API_KEY", ""),
		AmadeusSecret: env("AMADEUS_API_SECRET", ""),
		AmadeusRPS:    atoi("AMADEUS_RPS", 5),
		GeocoderBase:  env("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org"),
		PageSize:      atoi("PAGE_SIZE", 10),
		ProbeWorkers:  atoi("PROBE_WORKERS", 4),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
