// Package config assembles the runtime settings of the newsline CLI from
// (in increasing precedence) defaults, environment variables (with optional
// .env file), a JSON config file, and command-line flags.
package config

import "time"

// Config holds runtime settings for the newsline CLI.
//
// Fields:
//   - APIBaseURL: root of the remote REST API, including any path prefix.
//   - PageLimit: fixed page size used by every paginated fetch.
//   - RequestTimeout: upper bound for a single API request.
//   - StateDBPath: path of the local SQLite database holding the credential.
//   - LogLevel: slog level name ("debug", "info", "warn", "error").
type Config struct {
	APIBaseURL     string
	PageLimit      int
	RequestTimeout time.Duration
	StateDBPath    string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000/api"
	c.PageLimit = 10
	c.RequestTimeout = 10 * time.Second
	c.StateDBPath = "newsline.db"
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, JSON (if present), and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
