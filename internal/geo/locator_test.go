package geo

import (
	"context"
	"errors"
	"testing"

	"anglermatch/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticLocator(t *testing.T) {
	loc := StaticLocator{Position: Position{Latitude: 41.8781, Longitude: -87.6298}}

	pos, err := loc.CurrentPosition(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 41.8781, pos.Latitude)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = loc.CurrentPosition(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFailingLocators(t *testing.T) {
	_, err := Unsupported{}.CurrentPosition(context.Background())
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = Denied{}.CurrentPosition(context.Background())
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestLocatorFunc(t *testing.T) {
	boom := errors.New("gps offline")
	loc := LocatorFunc(func(context.Context) (Position, error) { return Position{}, boom })

	_, err := loc.CurrentPosition(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestFromConfig(t *testing.T) {
	lat, lon := 27.95, -82.46

	assert.IsType(t, Unsupported{}, FromConfig(config.DeviceConfig{}))
	assert.IsType(t, Unsupported{}, FromConfig(config.DeviceConfig{Latitude: &lat}))
	assert.IsType(t, Denied{}, FromConfig(config.DeviceConfig{Latitude: &lat, Longitude: &lon, Deny: true}))

	loc := FromConfig(config.DeviceConfig{Latitude: &lat, Longitude: &lon})
	require.IsType(t, StaticLocator{}, loc)
	pos, err := loc.CurrentPosition(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Position{Latitude: lat, Longitude: lon}, pos)
}
