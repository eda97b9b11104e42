package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dkorolev84/newsline/internal/client/cli"
	"github.com/dkorolev84/newsline/internal/client/config"
	"github.com/dkorolev84/newsline/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelWarn
	}
	log := logging.NewTextLogger(os.Stderr, level)

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "newsline: %v\n", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
