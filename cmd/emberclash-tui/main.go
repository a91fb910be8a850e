// Package main starts the TUI game.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/louisbranch/emberclash.quest/internal/platform/config"

	tuicmd "github.com/louisbranch/emberclash.quest/internal/cmd/tui"
)

func main() {
	_ = godotenv.Load()

	cfg, err := tuicmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := tuicmd.Run(ctx, cfg); err != nil {
		config.Exitf("run game: %v", err)
	}
}
