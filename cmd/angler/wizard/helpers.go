package wizard

import (
	"anglermatch/cmd/angler/ui"

	"github.com/charmbracelet/lipgloss"
)

// cycle steps through options by delta, wrapping at both ends. An unset
// value (not in options) moves to the first option going forward and the
// last going back.
func cycle[T comparable](options []T, cur T, delta int) T {
	if len(options) == 0 {
		return cur
	}
	idx := -1
	for i, o := range options {
		if o == cur {
			idx = i
			break
		}
	}
	if idx < 0 {
		if delta < 0 {
			return options[len(options)-1]
		}
		return options[0]
	}
	n := len(options)
	return options[((idx+delta)%n+n)%n]
}

// clampIndex moves i by delta and keeps it within [0, n).
func clampIndex(i, delta, n int) int {
	if n == 0 {
		return 0
	}
	i += delta
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// chip describes one toggleable cell in a grid.
type chip struct {
	label    string
	selected bool
	focused  bool
}

// renderChips lays chips out in rows of cols.
func renderChips(s ui.Styles, chips []chip, cols int) string {
	if cols < 1 {
		cols = 1
	}
	var rows []string
	var row []string
	for i, c := range chips {
		style := s.Chip
		label := c.label
		switch {
		case c.selected:
			style = s.ChipSelected
			label = "✓ " + label
		case c.focused:
			style = s.ChipFocused
		}
		if c.focused {
			style = style.BorderForeground(s.Theme.Primary)
			label = "› " + label
		}
		row = append(row, style.Render(label))
		if (i+1)%cols == 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderButton draws the submit control, greyed out while disabled.
func renderButton(s ui.Styles, label string, focused, enabled bool) string {
	switch {
	case !enabled:
		return s.ButtonDisabled.Render(label)
	case focused:
		return s.ButtonFocused.Render(label)
	default:
		return s.Button.Render(label)
	}
}

// fieldLabel prefixes the focused field with a marker.
func fieldLabel(s ui.Styles, label string, focused bool) string {
	if focused {
		return s.Label.Foreground(s.Theme.Primary).Render("› " + label)
	}
	return s.Label.Render("  " + label)
}
