package wizard

import (
	"testing"
	"time"

	"anglermatch/cmd/angler/ui"
	"anglermatch/internal/catalog"
	"anglermatch/internal/geo"
	"anglermatch/internal/onboarding"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var (
	testStyles = ui.NewStyles(ui.LightTheme())
	testNow    = time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)
)

func testAnglers() []catalog.Angler {
	return []catalog.Angler{
		{ID: "1", Name: "Mike Johnson", Age: 34, Experience: "experienced", FishingStyle: "serious", Interests: []string{"Bass Fishing"}, Availability: "Tomorrow, 6:00 AM", Rating: 4.8, DistanceMiles: 2.3, Location: "Lake Michigan"},
		{ID: "2", Name: "Sarah Chen", Age: 28, Experience: "intermediate", FishingStyle: "casual", Availability: "This Weekend", Rating: 4.6},
		{ID: "3", Name: "David Rodriguez", Age: 42, Experience: "expert", FishingStyle: "competitive", Availability: "Next Tuesday", Rating: 4.9},
	}
}

func testLayout() ui.LayoutConfig {
	return ui.NewLayoutConfig(100, 40)
}

func newTestModel(locator geo.Locator, anglers []catalog.Angler) Model {
	return New(Options{
		Styles:     &testStyles,
		Controller: onboarding.NewController(onboarding.WithLogger(zap.NewNop())),
		Locator:    locator,
		Anglers:    anglers,
		Now:        func() time.Time { return testNow },
	})
}

// key builds the KeyMsg bubbletea delivers for a key name.
func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "pgup":
		return tea.KeyMsg{Type: tea.KeyPgUp}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// press sends keys to the root model, discarding commands.
func press(m Model, keys ...string) Model {
	for _, k := range keys {
		m, _ = update(m, key(k))
	}
	return m
}

// submit presses k and feeds the single message its command produces back
// into the model. Only use it for keys that emit a submission directly.
func submit(t *testing.T, m Model, k string) Model {
	t.Helper()
	m, cmd := update(m, key(k))
	if cmd == nil {
		t.Fatalf("expected %q to produce a command in stage %s", k, m.Stage())
	}
	m, _ = update(m, cmd())
	return m
}

// findMsg runs cmd, descending into batches, and returns the first message
// of type T. Only use it on commands that resolve immediately.
func findMsg[T tea.Msg](t *testing.T, cmd tea.Cmd) T {
	t.Helper()
	var zero T
	if cmd == nil {
		t.Fatalf("expected a command producing %T, got nil", zero)
	}
	switch msg := cmd().(type) {
	case T:
		return msg
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			if out, ok := c().(T); ok {
				return out
			}
		}
	}
	t.Fatalf("no %T produced", zero)
	return zero
}

func typeText(m Model, text string) Model {
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}
