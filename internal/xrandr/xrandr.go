// Package xrandr queries and rotates X11 display outputs through the xrandr tool.
package xrandr

import (
	"context"
	"fmt"
	"regexp"

	"github.com/rotate-screen/rotate-screen/internal/cache"
	"github.com/rotate-screen/rotate-screen/internal/command"
	"github.com/rotate-screen/rotate-screen/internal/engine"
)

// Client implements engine.Display.
//
// The verbose query output is kept for the run and dropped after a rotation,
// so repeated connection and orientation checks cost one xrandr call.
type Client struct {
	bin   string
	run   command.Runner
	query cache.Snapshot[string]
}

var _ engine.Display = (*Client)(nil)

func New(run command.Runner, bin string) *Client {
	if bin == "" {
		bin = "xrandr"
	}
	return &Client{bin: bin, run: run}
}

func (c *Client) IsConnected(ctx context.Context, name string) (bool, error) {
	out, err := c.verbose(ctx)
	if err != nil {
		return false, err
	}
	return connectedPattern(name).MatchString(out), nil
}

// CurrentOrientation returns the token following the mode id on the output's
// line, e.g. "normal" in
//
//	eDP-1 connected 1920x1280+0+0 (0x46) normal (normal left inverted right x axis y axis) 222mm x 148mm
func (c *Client) CurrentOrientation(ctx context.Context, name string) (string, error) {
	out, err := c.verbose(ctx)
	if err != nil {
		return "", err
	}
	m := orientationPattern(name).FindStringSubmatch(out)
	if m == nil {
		return "", fmt.Errorf("no active mode for output %s in xrandr output:\n%s", name, out)
	}
	return m[1], nil
}

func (c *Client) Rotate(ctx context.Context, name string, o engine.Orientation) error {
	defer c.query.Reset()
	_, err := c.run.Run(ctx, c.bin, "--output", name, "--rotate", o.String())
	return err
}

func (c *Client) verbose(ctx context.Context) (string, error) {
	return c.query.LoadOrFill(func() (string, error) {
		return c.run.Run(ctx, c.bin, "--query", "--verbose")
	})
}

func connectedPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(name) + `\s+connected\s`)
}

func orientationPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(name) + ` connected [^(\n]*\(0x[0-9a-fA-F]+\) (\S+)`)
}
