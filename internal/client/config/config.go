package config

import "time"

// Config holds runtime settings for the TeamUp CLI.
//
// Fields:
//   - APIBaseURL: scheme://host:port of the TeamUp backend; the client
//     appends the fixed /api prefix itself.
//   - RequestTimeout: per-request HTTP timeout.
//   - SessionDBPath: path of the local sqlite file holding the persisted
//     session (token + cached user).
//   - SearchDebounce: delay applied to keystroke-driven course search.
//   - MinQueryLength: queries shorter than this never hit the network.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	SessionDBPath  string
	SearchDebounce time.Duration
	MinQueryLength int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000"
	c.RequestTimeout = 10 * time.Second
	c.SessionDBPath = "teamup.db"
	c.SearchDebounce = 300 * time.Millisecond
	c.MinQueryLength = 2
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (.env included), JSON (if present) and command-line
// flags (if present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
