package app

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rotate-screen/rotate-screen/internal/command"
	"github.com/rotate-screen/rotate-screen/internal/config"
	"github.com/rotate-screen/rotate-screen/internal/engine"
	"github.com/rotate-screen/rotate-screen/internal/observability"
	"github.com/rotate-screen/rotate-screen/internal/xinput"
	"github.com/rotate-screen/rotate-screen/internal/xrandr"
)

const (
	ExitSuccess           = 0
	ExitFailure           = 1
	ExitConfigError       = 2
	ExitNoScreenConnected = 3
)

// App wires settings, configuration, the display and input adapters and the
// rotator for one run.
type App struct {
	settings config.Settings
	display  engine.Display
	input    engine.Input
	metrics  *observability.Metrics
	now      func() time.Time
}

// New builds an App backed by xrandr and xinput.
func New(s config.Settings) *App {
	run := command.Exec{}
	return NewWithAdapters(s, xrandr.New(run, s.Xrandr), xinput.New(run, s.Xinput))
}

func NewWithAdapters(s config.Settings, display engine.Display, input engine.Input) *App {
	return &App{
		settings: s,
		display:  display,
		input:    input,
		metrics:  observability.New(),
		now:      time.Now,
	}
}

// Run loads the configuration and rotates every connected screen once.
func (a *App) Run(ctx context.Context) (*engine.Result, error) {
	res, err := a.run(ctx)

	a.metrics.Finish(err, a.now())
	if path := a.settings.MetricsTextfile; path != "" {
		if werr := a.metrics.WriteTextfile(path); werr != nil {
			log.Warn().Err(werr).Str("path", path).Msg("write metrics textfile")
		}
	}
	if err != nil {
		return nil, err
	}

	if warn := res.Warnings(); warn != nil {
		log.Warn().Int("tolerated", len(res.Tolerated)).Msg("rotation finished with tolerated mapping failures")
	} else {
		log.Info().Str("orientation", res.Next.String()).Int("screens", len(res.Screens)).
			Int("devices", len(res.Mapped)).Msg("rotation finished")
	}
	return res, nil
}

func (a *App) run(ctx context.Context) (*engine.Result, error) {
	cfg, err := config.Load(a.settings)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("config", cfg.Path).Strs("screens", cfg.ScreenNames()).Msg("configuration loaded")

	rot := engine.NewRotator(a.display, a.input, engine.WithObserver(a.metrics))
	return rot.RotateClockwise(ctx, cfg.Screens)
}

// ExitCode maps a run error to the process exit status.
func ExitCode(err error) int {
	var (
		ce *config.Error
		re *engine.ResolutionError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &ce), errors.As(err, &re):
		return ExitConfigError
	case errors.Is(err, engine.ErrNoScreensConnected):
		return ExitNoScreenConnected
	default:
		return ExitFailure
	}
}
