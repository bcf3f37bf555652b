package observability

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotate-screen/rotate-screen/internal/engine"
)

func TestMetrics_Observer(t *testing.T) {
	m := New()
	dev := engine.ResolvedDevice{Name: "ELAN9038:00", ID: 1}

	m.ScreenRotated("eDP-1", engine.Left)
	m.ScreenRotated("HDMI-1", engine.Left)
	m.DeviceMapped(dev, "eDP-1")
	m.DeviceTolerated(dev, "eDP-1", errors.New("BadMatch"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Rotations))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Mappings.WithLabelValues("applied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Mappings.WithLabelValues("tolerated")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Orientation.WithLabelValues("left")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Orientation.WithLabelValues("normal")))
}

func TestMetrics_Finish(t *testing.T) {
	m := New()
	at := time.Unix(1700000000, 0)

	m.Finish(nil, at)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Success))
	assert.Equal(t, 1700000000.0, testutil.ToFloat64(m.Timestamp))

	m.Finish(errors.New("no screens"), at)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Success))
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := New()
	m.ScreenRotated("eDP-1", engine.Right)
	m.Finish(nil, time.Now())

	path := filepath.Join(t.TempDir(), "rotate_screen.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "rotate_screen_rotations_total 1")
	assert.Contains(t, string(data), `rotate_screen_orientation{orientation="right"} 1`)
	assert.Contains(t, string(data), "rotate_screen_last_run_success 1")
}

func TestMetrics_Gatherer(t *testing.T) {
	m := New()
	m.ScreenRotated("eDP-1", engine.Inverted)
	m.ScreenRotated("HDMI-1", engine.Inverted)

	expected := `
# HELP rotate_screen_rotations_total Screens rotated by the last run
# TYPE rotate_screen_rotations_total counter
rotate_screen_rotations_total 2
`
	err := testutil.GatherAndCompare(m.Gatherer(), strings.NewReader(expected), "rotate_screen_rotations_total")
	assert.NoError(t, err)
}
