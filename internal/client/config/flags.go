package config

import (
	"flag"
	"os"
	"time"

	"github.com/teamup-uiuc/teamup-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the TeamUp backend (default from Config)
//	-t int      request timeout in seconds (default from Config)
//	-d string   path of the local session database
//
// Note: the function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other stages.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the TeamUp backend")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.SessionDBPath, "d", cfg.SessionDBPath, "path of the local session database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
