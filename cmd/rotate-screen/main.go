package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/rotate-screen/rotate-screen/internal/app"
	"github.com/rotate-screen/rotate-screen/internal/config"
)

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		config.SetupLogging("info")
		log.Error().Err(err).Msg("load settings")
		os.Exit(app.ExitConfigError)
	}
	config.SetupLogging(settings.LogLevel)
	log.Logger = log.With().Str("run", uuid.NewString()).Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err = app.New(settings).Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("rotate screen")
	}
	code := app.ExitCode(err)
	stop()
	os.Exit(code)
}
