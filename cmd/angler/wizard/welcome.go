package wizard

import (
	"fmt"
	"strings"

	"anglermatch/cmd/angler/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const welcomeMarkdown = `# %s

Connect with fellow anglers in your area. Find fishing buddies who share
your passion for the perfect catch.
`

type feature struct {
	title string
	blurb string
}

var features = []feature{
	{"Location Matching", "Find anglers within your preferred radius"},
	{"Time Sync", "Match with anglers available when you are"},
	{"Perfect Partners", "Connect with like-minded fishing enthusiasts"},
}

// welcomeScreen is the landing page. Enter starts the wizard.
type welcomeScreen struct {
	title    string
	renderer *glamour.TermRenderer
}

func newWelcomeScreen(title string, styles ui.Styles, width int) welcomeScreen {
	style := "light"
	if styles.Theme.IsDark {
		style = "dark"
	}
	// A nil renderer falls back to plain text.
	renderer, _ := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	return welcomeScreen{title: title, renderer: renderer}
}

func (w welcomeScreen) Update(msg tea.Msg) (welcomeScreen, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		return w, emit(startedMsg{})
	}
	return w, nil
}

func (w welcomeScreen) View(s ui.Styles, layout ui.LayoutConfig) string {
	var sb strings.Builder

	md := fmt.Sprintf(welcomeMarkdown, w.title)
	rendered := ""
	if w.renderer != nil {
		if out, err := w.renderer.Render(md); err == nil {
			rendered = out
		}
	}
	if rendered == "" {
		rendered = s.Title.Render("🎣 "+w.title) + "\n" +
			s.Body.Render("Connect with fellow anglers in your area. Find fishing buddies who share your passion for the perfect catch.") + "\n"
	}
	sb.WriteString(rendered)
	sb.WriteString("\n")

	cards := make([]string, 0, len(features))
	for _, f := range features {
		cards = append(cards, s.FeatureCard.Render(s.Bold.Render(f.title)+"\n"+s.Muted.Render(f.blurb)))
	}
	if layout.IsCompact {
		sb.WriteString(lipgloss.JoinVertical(lipgloss.Left, cards...))
	} else {
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	sb.WriteString("\n\n")

	sb.WriteString(renderButton(s, "Start Fishing Together", true, true))
	sb.WriteString("\n\n")
	sb.WriteString(s.Muted.Render("♥ 1,247 matches made    🏆 Active anglers"))
	sb.WriteString("\n")
	return sb.String()
}
