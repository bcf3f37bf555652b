package engine

import (
	"errors"
	"fmt"
)

var (
	ErrExactNameNotFound       = errors.New("no input device with exact name")
	ErrSubstringNoMatch        = errors.New("no input device name contains fragment")
	ErrUnrecognizedOrientation = errors.New("unrecognized orientation")
	ErrNoScreensConnected      = errors.New("none of the configured screens are connected")
	ErrApplyFailed             = errors.New("apply failed")
)

// ResolutionError reports a device rule that matched no live device.
type ResolutionError struct {
	Kind       error // ErrExactNameNotFound or ErrSubstringNoMatch
	Screen     string
	Pattern    string
	Suggestion string // closest live device name, exact rules only
}

func (e *ResolutionError) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("%s: %q", e.Kind.Error(), e.Pattern)
	if e.Screen != "" {
		msg = fmt.Sprintf("screen %s: %s", e.Screen, msg)
	}
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

func (e *ResolutionError) Unwrap() error { return e.Kind }

// OrientationError reports an orientation token outside the known cycle.
type OrientationError struct {
	Token string
}

func (e *OrientationError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnrecognizedOrientation.Error(), e.Token)
}

func (e *OrientationError) Unwrap() error { return ErrUnrecognizedOrientation }

// ApplyError wraps an adapter failure during the apply phase.
// errors.Is(err, ErrApplyFailed) holds for every ApplyError.
type ApplyError struct {
	Op     string // "rotate" or "map"
	Screen string
	Device *ResolvedDevice
	Err    error
}

func (e *ApplyError) Error() string {
	if e.Device != nil {
		return fmt.Sprintf("%s device %q (id=%d) to %s: %v", e.Op, e.Device.Name, e.Device.ID, e.Screen, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Screen, e.Err)
}

func (e *ApplyError) Unwrap() error { return e.Err }

func (e *ApplyError) Is(target error) bool { return target == ErrApplyFailed }
