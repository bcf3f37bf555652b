// Package xinput lists X11 input devices and maps them onto outputs through
// the xinput tool.
package xinput

import (
	"bufio"
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/rotate-screen/rotate-screen/internal/command"
	"github.com/rotate-screen/rotate-screen/internal/engine"
)

// Client implements engine.Input.
type Client struct {
	bin string
	run command.Runner
}

var _ engine.Input = (*Client)(nil)

func New(run command.Runner, bin string) *Client {
	if bin == "" {
		bin = "xinput"
	}
	return &Client{bin: bin, run: run}
}

// ListDevices returns slave and floating devices in the order xinput prints
// them. Master devices cannot be mapped and are left out.
func (c *Client) ListDevices(ctx context.Context) ([]engine.LiveInputDevice, error) {
	out, err := c.run.Run(ctx, c.bin, "list")
	if err != nil {
		return nil, err
	}
	return parseList(out), nil
}

// MapToOutput binds by id since device names are not unique.
func (c *Client) MapToOutput(ctx context.Context, device engine.ResolvedDevice, screen string) error {
	_, err := c.run.Run(ctx, c.bin, "--map-to-output", strconv.Itoa(device.ID), screen)
	return err
}

// ⎜   ↳ ELAN9038:00 04F3:2A1C                   	id=10	[slave  pointer  (2)]
var listLine = regexp.MustCompile(`^(.*?)\s+id=(\d+)\s+\[(\w+)`)

func parseList(out string) []engine.LiveInputDevice {
	var devices []engine.LiveInputDevice
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		line := strings.TrimLeft(sc.Text(), "⎡⎜⎣↳∼ \t")
		m := listLine.FindStringSubmatch(line)
		if m == nil || m[3] == "master" {
			continue
		}
		id, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		devices = append(devices, engine.LiveInputDevice{ID: id, Name: m[1]})
	}
	return devices
}
