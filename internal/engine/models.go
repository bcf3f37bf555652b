package engine

import (
	"errors"
	"fmt"
)

// Input device as currently reported by the input subsystem.
// Names are not unique.
type LiveInputDevice struct {
	ID   int
	Name string
}

// MatchMode selects how a DeviceRule pattern is compared to live device names.
type MatchMode int

const (
	MatchExact MatchMode = iota
	MatchSubstring
)

func (m MatchMode) String() string {
	switch m {
	case MatchExact:
		return "name"
	case MatchSubstring:
		return "name_contains"
	default:
		return fmt.Sprintf("MatchMode(%d)", int(m))
	}
}

// DeviceRule is a configured device binding. Exactly one matching mode per rule,
// decided when the configuration is loaded.
type DeviceRule struct {
	Mode    MatchMode
	Pattern string // exact name or substring fragment
	FailOk  bool
}

// ExactName builds a rule matching a device whose name equals name.
func ExactName(name string, failOk bool) DeviceRule {
	return DeviceRule{Mode: MatchExact, Pattern: name, FailOk: failOk}
}

// SubstringMatch builds a rule matching every device whose name contains fragment.
func SubstringMatch(fragment string, failOk bool) DeviceRule {
	return DeviceRule{Mode: MatchSubstring, Pattern: fragment, FailOk: failOk}
}

// ScreenConfig is one configured display and its rules, in configuration order.
type ScreenConfig struct {
	Name  string
	Rules []DeviceRule
}

// Resolve binds the screen's rules against a live device snapshot.
func (sc ScreenConfig) Resolve(live []LiveInputDevice) (Screen, error) {
	devices, err := Resolve(sc.Rules, live)
	if err != nil {
		var re *ResolutionError
		if errors.As(err, &re) {
			re.Screen = sc.Name
		}
		return Screen{}, err
	}
	return Screen{Name: sc.Name, Devices: devices}, nil
}

// ResolvedDevice is the binding actually used when mapping input to a screen.
type ResolvedDevice struct {
	Name   string
	ID     int
	FailOk bool
}

// Screen is a configured display with its devices resolved for this run.
type Screen struct {
	Name    string
	Devices []ResolvedDevice
}
