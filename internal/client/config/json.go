package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dkorolev84/newsline/internal/flagx"
	"github.com/dkorolev84/newsline/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "10s" or as integer nanoseconds. Zero values mean "not set" and leave the
// corresponding Config field untouched.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	PageLimit      int            `json:"page_limit"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	StateDBPath    string         `json:"state_db_path"`
	LogLevel       string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flags. No flag, no JSON. Read or unmarshal errors panic;
// a broken config file should stop the program before it talks to anything.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.PageLimit > 0 {
		cfg.PageLimit = jc.PageLimit
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.StateDBPath != "" {
		cfg.StateDBPath = jc.StateDBPath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
