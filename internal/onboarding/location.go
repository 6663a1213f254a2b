package onboarding

import (
	"fmt"
	"strings"
)

// Search radius bounds in miles.
const (
	MinRadius     = 1
	MaxRadius     = 100
	DefaultRadius = 25
)

// Coordinates is a device-reported position.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// String formats the pair with four decimals, "41.8781, -87.6298".
func (c Coordinates) String() string {
	return fmt.Sprintf("%.4f, %.4f", c.Latitude, c.Longitude)
}

// LocationSelection is a submitted location. Coordinates is set only when
// the address came from device geolocation.
type LocationSelection struct {
	Address     string
	Radius      int
	Coordinates *Coordinates
}

// Complete reports whether an address is present.
func (l LocationSelection) Complete() bool {
	return strings.TrimSpace(l.Address) != ""
}

func (l LocationSelection) clone() LocationSelection {
	if l.Coordinates != nil {
		c := *l.Coordinates
		l.Coordinates = &c
	}
	return l
}

// ClampRadius forces r into [MinRadius, MaxRadius].
func ClampRadius(r int) int {
	switch {
	case r < MinRadius:
		return MinRadius
	case r > MaxRadius:
		return MaxRadius
	default:
		return r
	}
}

// LocationDraft is the location screen's in-progress state.
type LocationDraft struct {
	Address string
	radius  int
}

// NewLocationDraft starts a draft at the given radius.
func NewLocationDraft(initialRadius int) *LocationDraft {
	return &LocationDraft{radius: ClampRadius(initialRadius)}
}

// SetAddress overwrites the typed address.
func (d *LocationDraft) SetAddress(v string) { d.Address = v }

// Radius returns the current search radius.
func (d *LocationDraft) Radius() int {
	if d.radius == 0 {
		return DefaultRadius
	}
	return d.radius
}

// SetRadius sets the radius, clamped to the slider bounds.
func (d *LocationDraft) SetRadius(r int) { d.radius = ClampRadius(r) }

// AdjustRadius moves the slider by delta miles.
func (d *LocationDraft) AdjustRadius(delta int) { d.SetRadius(d.Radius() + delta) }

// PickPopular fills the address from one of the suggested spots.
func (d *LocationDraft) PickPopular(name string) { d.Address = name }

// Complete reports whether the trimmed address is non-empty.
func (d *LocationDraft) Complete() bool {
	return strings.TrimSpace(d.Address) != ""
}

// Submit returns the manual-entry selection when the address is filled in.
func (d *LocationDraft) Submit() (LocationSelection, bool) {
	if !d.Complete() {
		return LocationSelection{}, false
	}
	return LocationSelection{
		Address: strings.TrimSpace(d.Address),
		Radius:  d.Radius(),
	}, true
}

// FromPosition is the geolocation success path. The draft's address field
// shows the raw pair and the returned selection carries a synthesized
// "Current Location (...)" label plus the coordinates.
func (d *LocationDraft) FromPosition(c Coordinates) LocationSelection {
	d.Address = c.String()
	coords := c
	return LocationSelection{
		Address:     fmt.Sprintf("Current Location (%s)", c),
		Radius:      d.Radius(),
		Coordinates: &coords,
	}
}
