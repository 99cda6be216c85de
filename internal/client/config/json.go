package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/teamup-uiuc/teamup-cli/internal/flagx"
	"github.com/teamup-uiuc/teamup-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "3s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	SessionDBPath  string         `json:"session_db_path"`
	SearchDebounce timex.Duration `json:"search_debounce"`
	MinQueryLength int            `json:"min_query_length"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags via
// flagx.JsonConfigFlags(); when neither is set, nothing is loaded.
// Only fields present in the file override the current values.
// Panics on read or unmarshal errors (caller should recover if desired).
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
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.SessionDBPath != "" {
		cfg.SessionDBPath = jc.SessionDBPath
	}
	if jc.SearchDebounce.Duration != 0 {
		cfg.SearchDebounce = time.Duration(jc.SearchDebounce.Duration)
	}
	if jc.MinQueryLength > 0 {
		cfg.MinQueryLength = jc.MinQueryLength
	}
}
