package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first when present;
// real environment variables win over .env entries.
//
// Recognized variables:
//
//	TEAMUP_API_BASE_URL
//	TEAMUP_REQUEST_TIMEOUT   (duration string, e.g. "10s")
//	TEAMUP_SESSION_DB
//	TEAMUP_SEARCH_DEBOUNCE   (duration string, e.g. "300ms")
//	TEAMUP_MIN_QUERY_LEN     (integer)
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("TEAMUP_API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("TEAMUP_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("TEAMUP_SESSION_DB"); v != "" {
		cfg.SessionDBPath = v
	}
	if v := os.Getenv("TEAMUP_SEARCH_DEBOUNCE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SearchDebounce = d
		}
	}
	if v := os.Getenv("TEAMUP_MIN_QUERY_LEN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MinQueryLength = n
		}
	}
}
