package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first, if present;
// variables already exported win over the file.
//
// Recognized variables:
//
//	NEWSLINE_API_URL     : API base URL
//	NEWSLINE_PAGE_LIMIT  : page size (positive integer)
//	NEWSLINE_TIMEOUT     : request timeout, Go duration syntax ("10s")
//	NEWSLINE_STATE_DB    : state database path
//	NEWSLINE_LOG_LEVEL   : slog level name
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("NEWSLINE_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("NEWSLINE_PAGE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageLimit = n
		}
	}
	if v := os.Getenv("NEWSLINE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("NEWSLINE_STATE_DB"); v != "" {
		cfg.StateDBPath = v
	}
	if v := os.Getenv("NEWSLINE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
