package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"teamup"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8000", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "teamup.db", cfg.SessionDBPath)
	assert.Equal(t, 300*time.Millisecond, cfg.SearchDebounce)
	assert.Equal(t, 2, cfg.MinQueryLength)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	resetArgs(t, "-a", "http://backend:9000", "-t", "5", "-d", "other.db")

	cfg := LoadConfig()

	assert.Equal(t, "http://backend:9000", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "other.db", cfg.SessionDBPath)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv("TEAMUP_API_BASE_URL", "http://env-host:8000")
	t.Setenv("TEAMUP_SEARCH_DEBOUNCE", "150ms")
	t.Setenv("TEAMUP_MIN_QUERY_LEN", "3")

	cfg := LoadConfig()

	assert.Equal(t, "http://env-host:8000", cfg.APIBaseURL)
	assert.Equal(t, 150*time.Millisecond, cfg.SearchDebounce)
	assert.Equal(t, 3, cfg.MinQueryLength)
}

func TestLoadConfig_EnvIgnoresMalformedValues(t *testing.T) {
	resetArgs(t)
	t.Setenv("TEAMUP_REQUEST_TIMEOUT", "not-a-duration")
	t.Setenv("TEAMUP_MIN_QUERY_LEN", "-1")

	cfg := LoadConfig()

	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 2, cfg.MinQueryLength)
}
