package engine

import "context"

// DisplayQuerier reports display state. CurrentOrientation returns the raw token
// as printed by the display subsystem; its precondition is IsConnected(name).
type DisplayQuerier interface {
	IsConnected(ctx context.Context, name string) (bool, error)
	CurrentOrientation(ctx context.Context, name string) (string, error)
}

type DisplayRotator interface {
	Rotate(ctx context.Context, name string, o Orientation) error
}

// Display is the display subsystem seen by the Rotator.
type Display interface {
	DisplayQuerier
	DisplayRotator
}

type InputLister interface {
	ListDevices(ctx context.Context) ([]LiveInputDevice, error)
}

type InputMapper interface {
	MapToOutput(ctx context.Context, device ResolvedDevice, screen string) error
}

// Input is the input subsystem seen by the Rotator.
type Input interface {
	InputLister
	InputMapper
}

// Observer is notified as the apply phase progresses.
type Observer interface {
	ScreenRotated(screen string, o Orientation)
	DeviceMapped(device ResolvedDevice, screen string)
	DeviceTolerated(device ResolvedDevice, screen string, err error)
}

type nopObserver struct{}

func (nopObserver) ScreenRotated(string, Orientation)             {}
func (nopObserver) DeviceMapped(ResolvedDevice, string)           {}
func (nopObserver) DeviceTolerated(ResolvedDevice, string, error) {}
