package engine

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.uber.org/multierr"
)

// OutcomeKind classifies a single apply step.
type OutcomeKind int

const (
	Applied OutcomeKind = iota
	Tolerated
	Fatal
)

func (k OutcomeKind) String() string {
	switch k {
	case Applied:
		return "applied"
	case Tolerated:
		return "tolerated"
	default:
		return "fatal"
	}
}

// Outcome is the result of mapping one device to its screen.
type Outcome struct {
	Kind   OutcomeKind
	Screen string
	Device ResolvedDevice
	Err    error
}

// Result describes a completed run. It is only returned on success.
type Result struct {
	Previous  Orientation
	Next      Orientation
	Screens   []Screen // connected screens, configuration order
	Mapped    []Outcome
	Tolerated []Outcome
}

// Warnings combines every tolerated mapping failure, nil when there were none.
func (r *Result) Warnings() error {
	var err error
	for _, o := range r.Tolerated {
		err = multierr.Append(err, o.Err)
	}
	return err
}

// Rotator rotates the configured screens one step clockwise and remaps their
// input devices.
type Rotator struct {
	display  Display
	input    Input
	observer Observer
}

type Option func(*Rotator)

// WithObserver registers o for apply progress notifications.
func WithObserver(o Observer) Option {
	return func(r *Rotator) {
		if o != nil {
			r.observer = o
		}
	}
}

func NewRotator(display Display, input Input, opts ...Option) *Rotator {
	r := &Rotator{display: display, input: input, observer: nopObserver{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RotateClockwise filters, resolves, computes and applies in that order.
//
// The input device list is fetched once and shared by every screen. Only
// connected screens have their rules resolved, so an unplugged display's
// devices do not fail the run. The
// current orientation is read from the first connected screen only. All
// connected screens are rotated before any device is mapped. A mapping failure
// is skipped when the device is FailOk and aborts the run otherwise; nothing
// already applied is rolled back.
func (r *Rotator) RotateClockwise(ctx context.Context, screens []ScreenConfig) (*Result, error) {
	live, err := r.input.ListDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("list input devices: %w", err)
	}
	log.Debug().Int("devices", len(live)).Msg("input devices listed")

	connected, err := r.connected(ctx, screens)
	if err != nil {
		return nil, err
	}
	if len(connected) == 0 {
		return nil, ErrNoScreensConnected
	}

	resolved := make([]Screen, 0, len(connected))
	for _, sc := range connected {
		s, err := sc.Resolve(live)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, s)
	}

	first := resolved[0].Name
	token, err := r.display.CurrentOrientation(ctx, first)
	if err != nil {
		return nil, fmt.Errorf("query orientation of %s: %w", first, err)
	}
	current, err := ParseOrientation(token)
	if err != nil {
		return nil, fmt.Errorf("screen %s: %w", first, err)
	}
	next, err := Next(current)
	if err != nil {
		return nil, err
	}
	log.Info().Str("from", current.String()).Str("to", next.String()).Msg("rotating clockwise")

	for _, s := range resolved {
		if err := r.display.Rotate(ctx, s.Name, next); err != nil {
			return nil, &ApplyError{Op: "rotate", Screen: s.Name, Err: err}
		}
		r.observer.ScreenRotated(s.Name, next)
	}

	res := &Result{Previous: current, Next: next, Screens: resolved}
	for _, s := range resolved {
		for _, d := range s.Devices {
			out := r.mapDevice(ctx, d, s.Name)
			switch out.Kind {
			case Applied:
				res.Mapped = append(res.Mapped, out)
				r.observer.DeviceMapped(d, s.Name)
			case Tolerated:
				log.Warn().Err(out.Err).Int("id", d.ID).Str("device", d.Name).Str("screen", s.Name).
					Msg("device mapping failed, continuing")
				res.Tolerated = append(res.Tolerated, out)
				r.observer.DeviceTolerated(d, s.Name, out.Err)
			case Fatal:
				return nil, out.Err
			}
		}
	}
	return res, nil
}

func (r *Rotator) connected(ctx context.Context, screens []ScreenConfig) ([]ScreenConfig, error) {
	var out []ScreenConfig
	for _, s := range screens {
		ok, err := r.display.IsConnected(ctx, s.Name)
		if err != nil {
			return nil, fmt.Errorf("query connection of %s: %w", s.Name, err)
		}
		if !ok {
			log.Debug().Str("screen", s.Name).Msg("screen not connected, skipping")
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *Rotator) mapDevice(ctx context.Context, d ResolvedDevice, screen string) Outcome {
	err := r.input.MapToOutput(ctx, d, screen)
	switch {
	case err == nil:
		return Outcome{Kind: Applied, Screen: screen, Device: d}
	case d.FailOk:
		return Outcome{Kind: Tolerated, Screen: screen, Device: d, Err: &ApplyError{Op: "map", Screen: screen, Device: &d, Err: err}}
	default:
		return Outcome{Kind: Fatal, Screen: screen, Device: d, Err: &ApplyError{Op: "map", Screen: screen, Device: &d, Err: err}}
	}
}
