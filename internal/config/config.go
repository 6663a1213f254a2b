package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"anglermatch/internal/logging"
	"anglermatch/internal/onboarding"

	"gopkg.in/yaml.v3"
)

// Config holds all anglermatch configuration.
type Config struct {
	Name string `yaml:"name"`

	Location LocationConfig `yaml:"location"`
	Device   DeviceConfig   `yaml:"device"`
	Deck     DeckConfig     `yaml:"deck"`
	UI       UIConfig       `yaml:"ui"`
	Logging  LoggingConfig  `yaml:"logging"`

	// Set by Load. Logging is not up yet, so callers report these later.
	envApplied []string
	envIgnored []string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name: "Angler Match",
		Location: LocationConfig{
			DefaultRadius: onboarding.DefaultRadius,
		},
		UI: DefaultUIConfig(),
		Logging: LoggingConfig{
			Level:     "info",
			DebugMode: false,
		},
	}
}

// DefaultConfigDir returns ~/.angler, or .angler when no home is known.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".angler"
	}
	return filepath.Join(home, ".angler")
}

// DefaultConfigPath returns the config file inside DefaultConfigDir.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case os.IsNotExist(err):
		// defaults
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if cfg.Logging.Dir == "" {
		cfg.Logging.Dir = filepath.Join(filepath.Dir(path), "logs")
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// EnvOverrides returns the ANGLER_* variables Load applied and the ones it
// ignored because their values did not parse.
func (c *Config) EnvOverrides() (applied, ignored []string) {
	return c.envApplied, c.envIgnored
}

// applyEnvOverrides applies environment variable overrides.
// Unparseable numeric or boolean values are ignored.
func (c *Config) applyEnvOverrides() {
	c.envApplied, c.envIgnored = nil, nil
	note := func(key string, ok bool) {
		if ok {
			c.envApplied = append(c.envApplied, key)
		} else {
			c.envIgnored = append(c.envIgnored, key)
		}
	}

	if v := os.Getenv("ANGLER_DEVICE_LAT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			c.Device.Latitude = &f
		}
		note("ANGLER_DEVICE_LAT", err == nil)
	}
	if v := os.Getenv("ANGLER_DEVICE_LON"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			c.Device.Longitude = &f
		}
		note("ANGLER_DEVICE_LON", err == nil)
	}
	if v := os.Getenv("ANGLER_DECK_FILE"); v != "" {
		c.Deck.File = v
		note("ANGLER_DECK_FILE", true)
	}
	if v := os.Getenv("ANGLER_DARK_MODE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			c.UI.DarkMode = b
		}
		note("ANGLER_DARK_MODE", err == nil)
	}
	if v := os.Getenv("ANGLER_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
		note("ANGLER_LOG_LEVEL", true)
	}
	if v := os.Getenv("ANGLER_DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			c.Logging.DebugMode = b
		}
		note("ANGLER_DEBUG", err == nil)
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	r := c.Location.DefaultRadius
	if r < onboarding.MinRadius || r > onboarding.MaxRadius {
		return fmt.Errorf("location.default_radius %d out of range [%d, %d]", r, onboarding.MinRadius, onboarding.MaxRadius)
	}

	if (c.Device.Latitude == nil) != (c.Device.Longitude == nil) {
		return fmt.Errorf("device latitude and longitude must be set together")
	}
	if c.Device.HasPosition() {
		if lat := *c.Device.Latitude; lat < -90 || lat > 90 {
			return fmt.Errorf("device.latitude %v out of range [-90, 90]", lat)
		}
		if lon := *c.Device.Longitude; lon < -180 || lon > 180 {
			return fmt.Errorf("device.longitude %v out of range [-180, 180]", lon)
		}
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}

	return nil
}
