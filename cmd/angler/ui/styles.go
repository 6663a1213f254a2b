// Package ui provides the visual styling for the Angler Match terminal app.
// Lake-and-pine palette with light/dark mode support.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Light Mode Colors (Default)
	LightBackground = lipgloss.Color("#f3f7f9")
	LightForeground = lipgloss.Color("#0f2a3d") // Deep water
	LightPrimary    = lipgloss.Color("#0b6e99") // Lake blue
	LightAccent     = lipgloss.Color("#2e8b57") // Pine green
	LightSecondary  = lipgloss.Color("#e2ecf1")
	LightMuted      = lipgloss.Color("#7b8d99")
	LightBorder     = lipgloss.Color("#cfdde5")
	LightCard       = lipgloss.Color("#ffffff")

	// Dark Mode Colors
	DarkBackground = lipgloss.Color("#0d1b24")
	DarkForeground = lipgloss.Color("#eef4f7")
	DarkPrimary    = lipgloss.Color("#4fb3e0")
	DarkAccent     = lipgloss.Color("#5ccf8a")
	DarkSecondary  = lipgloss.Color("#16313f")
	DarkMuted      = lipgloss.Color("#8aa2b0")
	DarkBorder     = lipgloss.Color("#24475a")
	DarkCard       = lipgloss.Color("#132833")

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#e53935")
	Success     = lipgloss.Color("#43a047")
	Warning     = lipgloss.Color("#ffb300")
	Info        = lipgloss.Color("#1e88e5")

	// Experience badge colours, beginner through expert.
	ExperienceBeginner     = lipgloss.Color("#43a047")
	ExperienceIntermediate = lipgloss.Color("#1e88e5")
	ExperienceExperienced  = lipgloss.Color("#8e24aa")
	ExperienceExpert       = lipgloss.Color("#fb8c00")
)

// Theme holds the current color scheme
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Secondary:  LightSecondary,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Secondary:  DarkSecondary,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// DetectTheme picks dark mode when forced, when COLORFGBG reports a dark
// background, or when ANGLER_DARK_MODE=1. Light otherwise.
func DetectTheme(forceDark bool) Theme {
	if forceDark || os.Getenv("ANGLER_DARK_MODE") == "1" {
		return DarkTheme()
	}

	// Format is "foreground;background"; ANSI 0-6 and 8 are dark.
	if parts := strings.Split(os.Getenv("COLORFGBG"), ";"); len(parts) == 2 {
		if bg, err := strconv.Atoi(parts[1]); err == nil && ((bg >= 0 && bg <= 6) || bg == 8) {
			return DarkTheme()
		}
	}

	return LightTheme()
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Layout
	App     lipgloss.Style
	Header  lipgloss.Style
	Footer  lipgloss.Style
	Content lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style
	Label    lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Components
	Card           lipgloss.Style
	FeatureCard    lipgloss.Style
	Toast          lipgloss.Style
	Spinner        lipgloss.Style
	Badge          lipgloss.Style
	OutlineBadge   lipgloss.Style
	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	ButtonDisabled lipgloss.Style
	Chip           lipgloss.Style
	ChipSelected   lipgloss.Style
	ChipFocused    lipgloss.Style
	SliderFill     lipgloss.Style
	SliderTrack    lipgloss.Style
	Divider        lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	chip := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.Foreground)

	button := lipgloss.NewStyle().
		Padding(0, 3).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Foreground(theme.Primary).
		Bold(true)

	return Styles{
		Theme: theme,

		App: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Header: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		Content: lipgloss.NewStyle().
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true).
			MarginTop(1),

		Success: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(Info),

		Card: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),

		FeatureCard: lipgloss.NewStyle().
			Width(24).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),

		Toast: lipgloss.NewStyle().
			Padding(0, 2).
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(Success).
			Foreground(theme.Foreground),

		Spinner: lipgloss.NewStyle().
			Foreground(theme.Accent),

		Badge: lipgloss.NewStyle().
			Background(theme.Accent).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),

		OutlineBadge: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Padding(0, 1),

		Button: button,

		ButtonFocused: button.
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")),

		ButtonDisabled: button.
			BorderForeground(theme.Border).
			Foreground(theme.Muted).
			Bold(false),

		Chip: chip,

		ChipSelected: chip.
			BorderForeground(theme.Accent).
			Foreground(theme.Accent).
			Bold(true),

		ChipFocused: chip.
			BorderForeground(theme.Primary).
			Foreground(theme.Primary),

		SliderFill: lipgloss.NewStyle().
			Foreground(theme.Accent),

		SliderTrack: lipgloss.NewStyle().
			Foreground(theme.Border),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),
	}
}

// DefaultStyles returns styles for the detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme(false))
}

// ExperienceBadge renders an experience level badge coloured by level.
func (s Styles) ExperienceBadge(level, label string) string {
	var bg lipgloss.Color
	switch level {
	case "beginner":
		bg = ExperienceBeginner
	case "intermediate":
		bg = ExperienceIntermediate
	case "experienced":
		bg = ExperienceExperienced
	case "expert":
		bg = ExperienceExpert
	default:
		bg = s.Theme.Muted
	}
	return s.Badge.Background(bg).Render(label)
}

// Badges renders items as a wrapped row of outline badges.
func (s Styles) Badges(items []string) string {
	if len(items) == 0 {
		return ""
	}
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = s.OutlineBadge.Render("[" + it + "]")
	}
	return strings.Join(out, " ")
}

// RenderDivider returns a horizontal divider
func (s Styles) RenderDivider(width int) string {
	if width <= 0 {
		width = MinContentWidth
	}
	return s.Divider.Render(strings.Repeat("─", width))
}

// Slider draws a fixed-width slider for value in [min, max].
func (s Styles) Slider(value, min, max, width int) string {
	if width <= 0 {
		width = SliderWidth
	}
	if max <= min {
		return s.SliderTrack.Render(strings.Repeat("─", width))
	}
	filled := (value - min) * width / (max - min)
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return s.SliderFill.Render(strings.Repeat("━", filled)) +
		s.SliderFill.Render("●") +
		s.SliderTrack.Render(strings.Repeat("─", width-filled))
}
