package wizard

import (
	"fmt"
	"strings"

	"anglermatch/cmd/angler/ui"
	"anglermatch/internal/catalog"
	"anglermatch/internal/deck"
	"anglermatch/internal/onboarding"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// matchingScreen shows one angler card at a time. The cursor wraps, so a
// non-empty deck never runs out of cards.
type matchingScreen struct {
	cursor  *deck.Cursor
	matches int
	log     *zap.Logger
}

func newMatchingScreen(anglers []catalog.Angler, log *zap.Logger) matchingScreen {
	if log == nil {
		log = zap.NewNop()
	}
	return matchingScreen{cursor: deck.New(anglers), log: log}
}

func (m matchingScreen) Update(msg tea.Msg) (matchingScreen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	pos, total := m.cursor.Position()
	var out tea.Msg
	switch key.String() {
	case "x", "left", "h":
		m.cursor.Pass(func(id string) {
			m.log.Debug("pass", zap.String("angler", id), zap.Int("card", pos), zap.Int("deck", total))
			out = passedMsg{anglerID: id}
		})
	case "enter", "right", "l", "m":
		m.cursor.Like(func(id string) {
			m.log.Debug("like", zap.String("angler", id), zap.Int("card", pos), zap.Int("deck", total))
			out = likedMsg{anglerID: id}
		})
	}
	if out == nil {
		return m, nil
	}
	return m, emit(out)
}

func (m matchingScreen) View(s ui.Styles, layout ui.LayoutConfig) string {
	var sb strings.Builder

	sb.WriteString(s.Title.Render("Find Your Fishing Buddy"))
	sb.WriteString("\n")
	if m.matches > 0 {
		sb.WriteString(s.Badge.Render(fmt.Sprintf("♥ %d matches found!", m.matches)))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	angler, ok := m.cursor.Current()
	if !ok {
		empty := s.Bold.Render("No more anglers nearby") + "\n" +
			s.Muted.Render("Try expanding your search radius or check back later!")
		sb.WriteString(s.Card.Render(empty))
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString(renderAnglerCard(s, angler, ui.CardWidth))
	sb.WriteString("\n\n")
	sb.WriteString(s.Error.Render("[x] Pass") + "    " + s.Success.Render("[enter] Match"))
	sb.WriteString("\n\n")

	pos, total := m.cursor.Position()
	sb.WriteString(s.Muted.Render(fmt.Sprintf("%d of %d anglers", pos, total)))
	sb.WriteString("\n")
	return sb.String()
}

func renderAnglerCard(s ui.Styles, a catalog.Angler, width int) string {
	var sb strings.Builder

	sb.WriteString(s.Bold.Render(fmt.Sprintf("%s, %d", a.Name, a.Age)))
	sb.WriteString("  ")
	sb.WriteString(s.Warning.Render(fmt.Sprintf("★ %.1f", a.Rating)))
	sb.WriteString("\n")
	sb.WriteString(s.Muted.Render(fmt.Sprintf("⌖ %.1f miles away", a.DistanceMiles)))
	sb.WriteString("\n\n")

	sb.WriteString(s.Body.Width(width - 6).Render(a.Bio))
	sb.WriteString("\n\n")

	level := onboarding.Experience(a.Experience)
	label := level.Label()
	if label == "" {
		label = a.Experience
	}
	style := onboarding.FishingStyle(a.FishingStyle).Label()
	if style == "" {
		style = a.FishingStyle
	}
	sb.WriteString(s.ExperienceBadge(a.Experience, label))
	sb.WriteString("  ")
	sb.WriteString(s.Muted.Render(style))
	sb.WriteString("\n")
	sb.WriteString(s.Muted.Render(fmt.Sprintf("🐟 %d catches", a.TotalCatches)))
	sb.WriteString("\n\n")

	if len(a.Interests) > 0 {
		sb.WriteString(s.Badges(a.Interests))
		sb.WriteString("\n")
	}
	sb.WriteString(s.Info.Render("🗓  Available: " + a.Availability))
	sb.WriteString("\n")
	sb.WriteString(s.Muted.Render("⌖ " + a.Location))

	return s.Card.Width(width).Render(sb.String())
}
