package config

import "time"

// UIConfig holds terminal interface configuration.
type UIConfig struct {
	// DarkMode forces the dark palette instead of auto-detection.
	DarkMode bool `yaml:"dark_mode"`

	// ToastDuration is how long transient notifications stay visible.
	ToastDuration string `yaml:"toast_duration"`
}

// DefaultUIConfig returns sensible UI defaults.
func DefaultUIConfig() UIConfig {
	return UIConfig{
		DarkMode:      false,
		ToastDuration: "3s",
	}
}

// GetToastDuration parses ToastDuration, falling back to 3s.
func (c UIConfig) GetToastDuration() time.Duration {
	d, err := time.ParseDuration(c.ToastDuration)
	if err != nil || d <= 0 {
		return 3 * time.Second
	}
	return d
}

// LocationConfig holds location screen defaults.
type LocationConfig struct {
	// DefaultRadius is where the radius slider starts, in miles.
	DefaultRadius int `yaml:"default_radius"`
}

// DeviceConfig describes what the device geolocation provider reports.
// With no coordinates set, "Use Current Location" fails silently.
type DeviceConfig struct {
	Latitude  *float64 `yaml:"latitude,omitempty"`
	Longitude *float64 `yaml:"longitude,omitempty"`
	// Deny simulates the user refusing the location permission.
	Deny bool `yaml:"deny"`
}

// HasPosition reports whether both coordinates are configured.
func (d DeviceConfig) HasPosition() bool {
	return d.Latitude != nil && d.Longitude != nil
}

// DeckConfig selects the candidate catalog.
type DeckConfig struct {
	// File is a YAML deck; empty uses the built-in anglers.
	File string `yaml:"file"`
}
