package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/openfacet/openfacet/cmd/facet/commands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Version information (set via ldflags during build)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	// Human-readable console output; the level is set per invocation by
	// the --log-level flag on the root command.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Cancel the command context on interrupt so watch sessions and
	// in-flight loads shut down cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.Execute(ctx, Version, Commit, BuildDate); err != nil {
		log.Error().Err(err).Msg("Command execution failed")
		os.Exit(1)
	}
}
