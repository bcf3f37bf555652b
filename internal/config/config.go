package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/rotate-screen/rotate-screen/internal/engine"
)

// Name is the configuration file base name; the extension picks the format.
const Name = "rotate-screen"

// Extensions accepted in the search paths, in lookup order within a directory.
var Extensions = []string{"json", "yaml", "yml", "toml"}

// Config is the validated screen and device layout. It is immutable after Load.
type Config struct {
	Path    string
	Screens []engine.ScreenConfig
}

// ScreenNames returns the configured screens in order.
func (c Config) ScreenNames() []string {
	out := make([]string, len(c.Screens))
	for i, s := range c.Screens {
		out[i] = s.Name
	}
	return out
}

// Load reads the configuration named by s.ConfigFile, or else the first
// rotate-screen.* found in s.SearchPaths. The document is fully validated
// before it is returned.
func Load(s Settings) (Config, error) {
	path := s.ConfigFile
	if path == "" {
		found, ok := find(s.SearchPaths)
		if !ok {
			return Config{}, &Error{Kind: ErrSourceNotFound, Msg: fmt.Sprintf("searched %v", searched(s))}
		}
		path = found
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return Config{}, &Error{Kind: ErrSourceNotFound, Path: s.ConfigFile, Msg: fmt.Sprintf("searched %v", searched(s))}
		}
		return Config{}, &Error{Kind: ErrMalformed, Path: v.ConfigFileUsed(), Msg: err.Error()}
	}
	return decode(v)
}

// find returns the first regular file named Name.<ext> over paths x Extensions.
// Files with other extensions are ignored.
func find(paths []string) (string, bool) {
	for _, dir := range paths {
		for _, ext := range Extensions {
			p := filepath.Join(dir, Name+"."+ext)
			if fi, err := os.Stat(p); err == nil && fi.Mode().IsRegular() {
				return p, true
			}
		}
	}
	return "", false
}

func searched(s Settings) []string {
	if s.ConfigFile != "" {
		return []string{s.ConfigFile}
	}
	return s.SearchPaths
}

func decode(v *viper.Viper) (Config, error) {
	path := v.ConfigFileUsed()
	for _, key := range []string{"screens", "devices"} {
		if !v.IsSet(key) {
			return Config{}, errorf(ErrMissingField, path, "%q", key)
		}
	}

	names, err := screenNames(v.Get("screens"))
	if err != nil {
		return Config{}, errorf(ErrInvalidScreens, path, "%v", err)
	}

	cfg := Config{Path: path, Screens: make([]engine.ScreenConfig, len(names))}
	index := make(map[string]int, len(names))
	for i, n := range names {
		cfg.Screens[i] = engine.ScreenConfig{Name: n}
		index[n] = i
	}

	devices, ok := v.Get("devices").([]any)
	if !ok {
		return Config{}, errorf(ErrMalformed, path, "devices must be a list")
	}
	for i, raw := range devices {
		screen, rule, err := parseRule(raw)
		if err != nil {
			var ce *Error
			if errors.As(err, &ce) {
				ce.Path = path
				ce.Msg = fmt.Sprintf("devices[%d]: %s", i, ce.Msg)
			}
			return Config{}, err
		}
		at, ok := index[screen]
		if !ok {
			return Config{}, errorf(ErrInvalidRule, path, "devices[%d]: screen %q is not listed in screens", i, screen)
		}
		cfg.Screens[at].Rules = append(cfg.Screens[at].Rules, rule)
	}
	return cfg, nil
}

func screenNames(raw any) ([]string, error) {
	var names []string
	switch t := raw.(type) {
	case []string:
		names = t
	case []any:
		for _, x := range t {
			n, ok := x.(string)
			if !ok {
				return nil, fmt.Errorf("screen name %v is not a string", x)
			}
			names = append(names, n)
		}
	default:
		return nil, fmt.Errorf("screens must be a list of names")
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("screens must not be empty")
	}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if n == "" {
			return nil, fmt.Errorf("screen name must not be empty")
		}
		if seen[n] {
			return nil, fmt.Errorf("duplicate screen %q", n)
		}
		seen[n] = true
	}
	return names, nil
}

// parseRule turns one devices entry into a tagged rule.
func parseRule(raw any) (string, engine.DeviceRule, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return "", engine.DeviceRule{}, &Error{Kind: ErrInvalidRule, Msg: "must be an object"}
	}

	screen, err := stringField(obj, "screen")
	if err != nil {
		return "", engine.DeviceRule{}, err
	}
	if screen == "" {
		return "", engine.DeviceRule{}, &Error{Kind: ErrInvalidRule, Msg: `"screen" is required`}
	}
	name, err := stringField(obj, "name")
	if err != nil {
		return "", engine.DeviceRule{}, err
	}
	fragment, err := stringField(obj, "name_contains")
	if err != nil {
		return "", engine.DeviceRule{}, err
	}

	failOk := false
	if x, ok := obj["fail_ok"]; ok {
		b, ok := x.(bool)
		if !ok {
			return "", engine.DeviceRule{}, &Error{Kind: ErrInvalidRule, Msg: fmt.Sprintf(`"fail_ok" must be a boolean, got %v`, x)}
		}
		failOk = b
	}

	_, hasName := obj["name"]
	_, hasFragment := obj["name_contains"]
	switch {
	case hasName && hasFragment:
		return "", engine.DeviceRule{}, &Error{Kind: ErrInvalidRule, Msg: `"name" and "name_contains" are mutually exclusive`}
	case hasName:
		if name == "" {
			return "", engine.DeviceRule{}, &Error{Kind: ErrInvalidRule, Msg: `"name" must not be empty`}
		}
		return screen, engine.ExactName(name, failOk), nil
	case hasFragment:
		if fragment == "" {
			return "", engine.DeviceRule{}, &Error{Kind: ErrInvalidRule, Msg: `"name_contains" must not be empty`}
		}
		return screen, engine.SubstringMatch(fragment, failOk), nil
	default:
		return "", engine.DeviceRule{}, &Error{Kind: ErrMissingMatcher, Msg: fmt.Sprintf("screen %s", screen)}
	}
}

func stringField(obj map[string]any, key string) (string, error) {
	x, ok := obj[key]
	if !ok {
		return "", nil
	}
	s, ok := x.(string)
	if !ok {
		return "", &Error{Kind: ErrInvalidRule, Msg: fmt.Sprintf("%q must be a string, got %v", key, x)}
	}
	return s, nil
}
