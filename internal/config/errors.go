package config

import (
	"errors"
	"fmt"
)

var (
	ErrSourceNotFound = errors.New("no configuration file found")
	ErrMalformed      = errors.New("malformed configuration")
	ErrMissingField   = errors.New("missing required field")
	ErrInvalidScreens = errors.New("invalid screens")
	ErrMissingMatcher = errors.New("device rule has neither name nor name_contains")
	ErrInvalidRule    = errors.New("invalid device rule")
)

// Error is a configuration failure detected at load time.
type Error struct {
	Kind error
	Path string // configuration file, if known
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Kind.Error()
	if e.Msg != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Msg)
	}
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", e.Path, msg)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Kind }

func errorf(kind error, path, format string, args ...any) error {
	return &Error{Kind: kind, Path: path, Msg: fmt.Sprintf(format, args...)}
}
