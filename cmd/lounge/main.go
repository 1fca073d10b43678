package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rmcgill/medialounge/internal/cli"
	"github.com/rmcgill/medialounge/internal/config"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	c := config.Load()
	ctx := context.Background()

	app, cleanup, err := cli.NewApp(ctx, c)
	if err != nil {
		log.Fatal().Err(err).Msg("Error starting terminal client")
	}
	defer cleanup()

	app.Run(ctx)
}
