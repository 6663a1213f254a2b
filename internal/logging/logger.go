// Package logging provides config-driven categorized file logging for
// anglermatch on top of zap.
//
// The interactive UI owns the terminal, so nothing is ever written to
// stdout or stderr. When debug mode is enabled, every category writes to a
// single dated file under the configured directory with the category as
// the zap logger name. When debug mode is off, Get returns a no-op logger.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot         Category = "boot"         // Startup, config loading
	CategoryConfig       Category = "config"       // Config parsing and overrides
	CategoryWizard       Category = "wizard"       // Stage transitions, rejected events
	CategoryProfile      Category = "profile"      // Profile screen
	CategoryLocation     Category = "location"     // Location screen
	CategoryAvailability Category = "availability" // Date/time screen
	CategoryMatching     Category = "matching"     // Deck like/pass
	CategoryGeo          Category = "geo"          // Device geolocation lookups
)

// Categories lists every known category.
var Categories = []Category{
	CategoryBoot, CategoryConfig, CategoryWizard, CategoryProfile,
	CategoryLocation, CategoryAvailability, CategoryMatching, CategoryGeo,
}

// Options mirrors config.LoggingConfig to avoid an import cycle.
type Options struct {
	DebugMode  bool
	Level      string // debug, info, warn, error
	Dir        string
	JSONFormat bool
	// Categories filters output; a category missing from the map is enabled.
	Categories map[string]bool
}

var (
	mu      sync.RWMutex
	root    *zap.Logger
	file    *os.File
	opts    Options
	logPath string
)

// Initialize builds the shared logger. It is a no-op unless DebugMode is
// set. Calling it again replaces the previous logger.
func Initialize(o Options) error {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	opts = o

	if !o.DebugMode {
		return nil
	}
	if o.Dir == "" {
		return fmt.Errorf("log directory required in debug mode")
	}

	level, err := ParseLevel(o.Level)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(o.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	path := filepath.Join(o.Dir, fmt.Sprintf("%s_angler.log", time.Now().Format("2006-01-02")))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	if o.JSONFormat {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(f), level)
	root = zap.New(core)
	file = f
	logPath = path

	root.Named(string(CategoryBoot)).Info("logging initialized",
		zap.String("path", path),
		zap.String("level", level.String()))
	return nil
}

// ParseLevel maps a config level string to a zap level. Empty means info.
func ParseLevel(s string) (zapcore.Level, error) {
	switch s {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// IsDebugMode returns whether file logging is active.
func IsDebugMode() bool {
	mu.RLock()
	defer mu.RUnlock()
	return root != nil
}

// IsCategoryEnabled returns whether a specific category is enabled
func IsCategoryEnabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabledLocked(category)
}

func enabledLocked(category Category) bool {
	if root == nil {
		return false
	}
	if opts.Categories == nil {
		return true
	}
	enabled, ok := opts.Categories[string(category)]
	return !ok || enabled
}

// Get returns a named logger for the category, or a no-op logger when the
// category is disabled.
func Get(category Category) *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if !enabledLocked(category) {
		return zap.NewNop()
	}
	return root.Named(string(category))
}

// Path returns the active log file, or "" when logging is off.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

// CloseAll flushes and closes the log file (call at shutdown).
func CloseAll() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
}

func closeLocked() {
	if root != nil {
		_ = root.Sync()
	}
	if file != nil {
		_ = file.Close()
	}
	root = nil
	file = nil
	logPath = ""
}

// =============================================================================
// CONVENIENCE FUNCTIONS
// =============================================================================

// GeoDebug logs debug to the geo category
func GeoDebug(format string, args ...interface{}) {
	Get(CategoryGeo).Sugar().Debugf(format, args...)
}
