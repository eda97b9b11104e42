package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"newsline"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetArgs(t)

	cfg := LoadConfig()

	assert.Equal(t, "http://localhost:3000/api", cfg.APIBaseURL)
	assert.Equal(t, 10, cfg.PageLimit)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "newsline.db", cfg.StateDBPath)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv("NEWSLINE_API_URL", "https://news.example.com/api")
	t.Setenv("NEWSLINE_PAGE_LIMIT", "25")
	t.Setenv("NEWSLINE_TIMEOUT", "3s")
	t.Setenv("NEWSLINE_LOG_LEVEL", "debug")

	cfg := LoadConfig()

	assert.Equal(t, "https://news.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, 25, cfg.PageLimit)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_EnvIgnoresMalformedValues(t *testing.T) {
	resetArgs(t)
	t.Setenv("NEWSLINE_PAGE_LIMIT", "lots")
	t.Setenv("NEWSLINE_TIMEOUT", "soon")

	cfg := LoadConfig()

	assert.Equal(t, 10, cfg.PageLimit)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_JsonOverridesEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"api_base_url": "https://json.example.com/api",
		"page_limit": 5,
		"request_timeout": "7s"
	}`), 0o600))

	resetArgs(t, "-c", path)
	t.Setenv("NEWSLINE_API_URL", "https://env.example.com/api")

	cfg := LoadConfig()

	assert.Equal(t, "https://json.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, 5, cfg.PageLimit)
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_FlagsWinOverEverything(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_base_url": "https://json.example.com/api"}`), 0o600))

	resetArgs(t, "-c", path, "-a", "https://flag.example.com/api", "-l", "30", "-t", "2", "-d", "alt.db")

	cfg := LoadConfig()

	assert.Equal(t, "https://flag.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, 30, cfg.PageLimit)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "alt.db", cfg.StateDBPath)
}

func TestParseJson_MissingFilePanics(t *testing.T) {
	resetArgs(t, "-c", "does-not-exist.json")

	assert.Panics(t, func() { LoadConfig() })
}
