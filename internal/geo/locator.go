// Package geo is the device geolocation provider the location screen asks
// for "Use Current Location". A lookup is single-shot with no cancellation
// or retry exposed to callers.
package geo

import (
	"context"
	"errors"

	"anglermatch/internal/config"
	"anglermatch/internal/logging"
)

var (
	// ErrUnsupported means the device has no position source.
	ErrUnsupported = errors.New("geolocation not supported")
	// ErrPermissionDenied means the user refused location access.
	ErrPermissionDenied = errors.New("geolocation permission denied")
)

// Position is a latitude/longitude pair in decimal degrees.
type Position struct {
	Latitude  float64
	Longitude float64
}

// Locator reports the device's current position.
type Locator interface {
	CurrentPosition(ctx context.Context) (Position, error)
}

// StaticLocator always reports the same position.
type StaticLocator struct {
	Position Position
}

// CurrentPosition returns the fixed position unless ctx is done.
func (s StaticLocator) CurrentPosition(ctx context.Context) (Position, error) {
	if err := ctx.Err(); err != nil {
		return Position{}, err
	}
	return s.Position, nil
}

// Unsupported is a locator for devices without any position source.
type Unsupported struct{}

// CurrentPosition always fails with ErrUnsupported.
func (Unsupported) CurrentPosition(context.Context) (Position, error) {
	return Position{}, ErrUnsupported
}

// Denied is a locator whose permission prompt was refused.
type Denied struct{}

// CurrentPosition always fails with ErrPermissionDenied.
func (Denied) CurrentPosition(context.Context) (Position, error) {
	return Position{}, ErrPermissionDenied
}

// LocatorFunc adapts a function to Locator.
type LocatorFunc func(ctx context.Context) (Position, error)

// CurrentPosition calls f.
func (f LocatorFunc) CurrentPosition(ctx context.Context) (Position, error) {
	return f(ctx)
}

// FromConfig picks the locator described by the device section.
func FromConfig(d config.DeviceConfig) Locator {
	switch {
	case d.Deny:
		logging.GeoDebug("device locator: permission denied")
		return Denied{}
	case d.HasPosition():
		logging.GeoDebug("device locator: static %.4f, %.4f", *d.Latitude, *d.Longitude)
		return StaticLocator{Position: Position{Latitude: *d.Latitude, Longitude: *d.Longitude}}
	default:
		logging.GeoDebug("device locator: unsupported")
		return Unsupported{}
	}
}
