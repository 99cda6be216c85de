package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/teamup-uiuc/teamup-cli/internal/client/cli"
	"github.com/teamup-uiuc/teamup-cli/internal/client/config"
	"github.com/teamup-uiuc/teamup-cli/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
