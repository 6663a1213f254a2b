// Package ui layout constants for consistent spacing and dimensions
package ui

// Layout constants
const (
	// Minimum terminal dimensions before content is clamped.
	MinimumTerminalWidth  = 60
	MinimumTerminalHeight = 20

	// Content widths
	MinContentWidth = 56
	MaxContentWidth = 84
	CardWidth       = 60
	SliderWidth     = 40

	// Grid columns for chips and buttons.
	DateColumns     = 7
	InterestColumns = 5
)

// LayoutConfig provides computed layout dimensions based on terminal size
type LayoutConfig struct {
	TerminalWidth  int
	TerminalHeight int
	IsCompact      bool
}

// NewLayoutConfig creates a layout configuration for the given terminal size
func NewLayoutConfig(width, height int) LayoutConfig {
	return LayoutConfig{
		TerminalWidth:  width,
		TerminalHeight: height,
		IsCompact:      width > 0 && width < MinContentWidth+8,
	}
}

// ContentWidth is the usable width for a screen body, clamped to
// [MinContentWidth, MaxContentWidth]. Zero size (before the first
// WindowSizeMsg) yields MinContentWidth.
func (lc LayoutConfig) ContentWidth() int {
	w := lc.TerminalWidth - 4
	switch {
	case w < MinContentWidth:
		return MinContentWidth
	case w > MaxContentWidth:
		return MaxContentWidth
	default:
		return w
	}
}

// Columns returns how many cells of cellWidth fit in the content width, at
// least 1 and at most max.
func (lc LayoutConfig) Columns(cellWidth, max int) int {
	if cellWidth <= 0 {
		return max
	}
	n := lc.ContentWidth() / cellWidth
	if n < 1 {
		n = 1
	}
	if max > 0 && n > max {
		n = max
	}
	return n
}
