package wizard

import (
	"strings"

	"anglermatch/cmd/angler/ui"
	"anglermatch/internal/catalog"
	"anglermatch/internal/logging"
	"anglermatch/internal/onboarding"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type profileField int

const (
	profileName profileField = iota
	profileLocation
	profileBio
	profileStyle
	profileExperience
	profileInterests
	profileSubmit
	profileFieldCount
)

// profileScreen collects the user's profile. It owns its draft until the
// submit control fires.
type profileScreen struct {
	draft     onboarding.ProfileDraft
	interests []string

	name     textinput.Model
	location textinput.Model
	bio      textarea.Model

	focus       profileField
	interestIdx int
	log         *zap.Logger
}

func newProfileScreen(styles ui.Styles, width int) profileScreen {
	name := textinput.New()
	name.Placeholder = "Enter your name"
	name.CharLimit = 64
	name.Width = width - 6
	name.PromptStyle = styles.Info

	location := textinput.New()
	location.Placeholder = "City, State"
	location.CharLimit = 96
	location.Width = width - 6
	location.PromptStyle = styles.Info

	bio := textarea.New()
	bio.Placeholder = "Tell other anglers about yourself and your fishing experience..."
	bio.ShowLineNumbers = false
	bio.SetWidth(width - 4)
	bio.SetHeight(3)

	p := profileScreen{
		interests: catalog.Interests(),
		name:      name,
		location:  location,
		bio:       bio,
		log:       logging.Get(logging.CategoryProfile),
	}
	p.name.Focus()
	return p
}

func (p profileScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (p profileScreen) Update(msg tea.Msg) (profileScreen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p.updateInput(msg)
	}

	switch key.String() {
	case "tab":
		return p.setFocus(p.focus + 1)
	case "shift+tab":
		return p.setFocus(p.focus - 1)
	}

	switch p.focus {
	case profileName, profileLocation:
		if key.String() == "enter" {
			return p.setFocus(p.focus + 1)
		}
		return p.updateInput(msg)

	case profileBio:
		return p.updateInput(msg)

	case profileStyle:
		if d := direction(key); d != 0 {
			p.draft.SetFishingStyle(cycle(onboarding.FishingStyles, p.draft.FishingStyle, d))
		} else if key.String() == "enter" {
			return p.setFocus(p.focus + 1)
		}

	case profileExperience:
		if d := direction(key); d != 0 {
			p.draft.SetExperience(cycle(onboarding.Experiences, p.draft.Experience, d))
		} else if key.String() == "enter" {
			return p.setFocus(p.focus + 1)
		}

	case profileInterests:
		if d := direction(key); d != 0 {
			p.interestIdx = clampIndex(p.interestIdx, d, len(p.interests))
		} else if isToggle(key) && len(p.interests) > 0 {
			p.draft.ToggleInterest(p.interests[p.interestIdx])
		}

	case profileSubmit:
		if key.String() == "enter" {
			profile, ok := p.draft.Submit()
			if !ok {
				return p, nil
			}
			p.log.Debug("profile submitted", zap.String("name", profile.Name), zap.Int("interests", len(profile.Interests)))
			return p, emit(profileSubmittedMsg{profile: profile})
		}
	}
	return p, nil
}

// updateInput forwards msg to the focused text control and copies its
// value into the draft.
func (p profileScreen) updateInput(msg tea.Msg) (profileScreen, tea.Cmd) {
	var cmd tea.Cmd
	switch p.focus {
	case profileName:
		p.name, cmd = p.name.Update(msg)
		p.draft.SetName(p.name.Value())
	case profileLocation:
		p.location, cmd = p.location.Update(msg)
		p.draft.SetLocation(p.location.Value())
	case profileBio:
		p.bio, cmd = p.bio.Update(msg)
		p.draft.SetBio(p.bio.Value())
	}
	return p, cmd
}

func (p profileScreen) setFocus(f profileField) (profileScreen, tea.Cmd) {
	p.focus = (f%profileFieldCount + profileFieldCount) % profileFieldCount
	p.name.Blur()
	p.location.Blur()
	p.bio.Blur()

	switch p.focus {
	case profileName:
		return p, p.name.Focus()
	case profileLocation:
		return p, p.location.Focus()
	case profileBio:
		return p, p.bio.Focus()
	}
	return p, nil
}

func (p profileScreen) View(s ui.Styles, layout ui.LayoutConfig) string {
	var sb strings.Builder

	sb.WriteString(s.Title.Render("Create Your Angler Profile"))
	sb.WriteString("\n")
	sb.WriteString(s.Subtitle.Render("Tell us about your fishing style and experience"))
	sb.WriteString("\n")

	sb.WriteString(fieldLabel(s, "Name *", p.focus == profileName) + "\n")
	sb.WriteString(p.name.View() + "\n")
	sb.WriteString(fieldLabel(s, "Location *", p.focus == profileLocation) + "\n")
	sb.WriteString(p.location.View() + "\n")
	sb.WriteString(fieldLabel(s, "Bio", p.focus == profileBio) + "\n")
	sb.WriteString(p.bio.View() + "\n")

	sb.WriteString(fieldLabel(s, "Fishing Style *", p.focus == profileStyle) + "\n")
	sb.WriteString("  " + pickerValue(s, p.draft.FishingStyle.Label(), "Select your style") + "\n")
	sb.WriteString(fieldLabel(s, "Experience Level *", p.focus == profileExperience) + "\n")
	sb.WriteString("  " + pickerValue(s, p.draft.Experience.Label(), "Select experience") + "\n")

	sb.WriteString(fieldLabel(s, "Fishing Interests", p.focus == profileInterests) + "\n")
	chips := make([]chip, len(p.interests))
	for i, tag := range p.interests {
		chips[i] = chip{
			label:    tag,
			selected: p.draft.HasInterest(tag),
			focused:  p.focus == profileInterests && i == p.interestIdx,
		}
	}
	sb.WriteString(renderChips(s, chips, layout.Columns(18, ui.InterestColumns)))
	sb.WriteString("\n\n")

	sb.WriteString(renderButton(s, "Create Profile", p.focus == profileSubmit, p.draft.Complete()))
	sb.WriteString("\n")
	sb.WriteString(s.Muted.Render("tab/shift+tab move • ←/→ choose • space toggles an interest"))
	sb.WriteString("\n")
	return sb.String()
}

func pickerValue(s ui.Styles, label, placeholder string) string {
	if label == "" {
		return s.Muted.Render("◂ " + placeholder + " ▸")
	}
	return s.Bold.Render("◂ " + label + " ▸")
}

// direction maps arrow and vim keys to -1/+1, 0 for anything else.
func direction(key tea.KeyMsg) int {
	switch key.String() {
	case "left", "h", "up", "k":
		return -1
	case "right", "l", "down", "j":
		return 1
	}
	return 0
}

func isToggle(key tea.KeyMsg) bool {
	switch key.String() {
	case " ", "enter":
		return true
	}
	return false
}
