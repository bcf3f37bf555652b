package config

import (
	"fmt"

	"github.com/caarlos0/env/v9"
)

// Settings are process-level knobs read from the environment. The screen and
// device layout lives in the configuration file loaded by Load.
type Settings struct {
	ConfigFile      string   `env:"ROTATE_SCREEN_CONFIG"`
	SearchPaths     []string `env:"ROTATE_SCREEN_SEARCH_PATHS" envSeparator:":" envDefault:"/etc:."`
	LogLevel        string   `env:"ROTATE_SCREEN_LOG_LEVEL" envDefault:"info"`
	Xrandr          string   `env:"ROTATE_SCREEN_XRANDR" envDefault:"xrandr"`
	Xinput          string   `env:"ROTATE_SCREEN_XINPUT" envDefault:"xinput"`
	MetricsTextfile string   `env:"ROTATE_SCREEN_METRICS_TEXTFILE"`
}

// LoadSettings reads Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parsing settings: %w", err)
	}
	return s, nil
}
