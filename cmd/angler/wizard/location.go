package wizard

import (
	"context"
	"fmt"
	"strings"

	"anglermatch/cmd/angler/ui"
	"anglermatch/internal/catalog"
	"anglermatch/internal/geo"
	"anglermatch/internal/logging"
	"anglermatch/internal/onboarding"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type locationField int

const (
	locationCurrent locationField = iota
	locationAddress
	locationPopular
	locationRadius
	locationSubmit
	locationFieldCount
)

// radiusStep is how far pgup/pgdown move the slider.
const radiusStep = 10

// locationScreen picks where to fish. It has two submission paths: a
// successful device lookup submits immediately, typed or picked addresses
// need the submit control.
type locationScreen struct {
	ctx     context.Context
	locator geo.Locator

	draft    *onboarding.LocationDraft
	popular  []string
	address  textinput.Model
	spinner  spinner.Model
	locating bool

	focus      locationField
	popularIdx int
	log        *zap.Logger
}

func newLocationScreen(ctx context.Context, locator geo.Locator, radius int, styles ui.Styles, width int) locationScreen {
	if locator == nil {
		locator = geo.Unsupported{}
	}

	address := textinput.New()
	address.Placeholder = "Enter city, lake, or fishing spot"
	address.CharLimit = 128
	address.Width = width - 6
	address.PromptStyle = styles.Info

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	return locationScreen{
		ctx:     ctx,
		locator: locator,
		draft:   onboarding.NewLocationDraft(radius),
		popular: catalog.PopularLocations(),
		address: address,
		spinner: sp,
		log:     logging.Get(logging.CategoryLocation),
	}
}

func (l locationScreen) Update(msg tea.Msg) (locationScreen, tea.Cmd) {
	switch msg := msg.(type) {
	case positionMsg:
		return l.handlePosition(msg)

	case spinner.TickMsg:
		if !l.locating {
			return l, nil
		}
		var cmd tea.Cmd
		l.spinner, cmd = l.spinner.Update(msg)
		return l, cmd

	case tea.KeyMsg:
		return l.handleKey(msg)
	}

	if l.focus == locationAddress {
		return l.updateAddress(msg)
	}
	return l, nil
}

func (l locationScreen) handleKey(key tea.KeyMsg) (locationScreen, tea.Cmd) {
	switch key.String() {
	case "tab":
		return l.setFocus(l.focus + 1)
	case "shift+tab":
		return l.setFocus(l.focus - 1)
	}

	switch l.focus {
	case locationCurrent:
		if key.String() == "enter" && !l.locating {
			l.locating = true
			l.log.Debug("requesting device position")
			return l, tea.Batch(l.spinner.Tick, l.locate())
		}

	case locationAddress:
		if key.String() == "enter" {
			return l.setFocus(l.focus + 1)
		}
		return l.updateAddress(key)

	case locationPopular:
		if d := direction(key); d != 0 {
			l.popularIdx = clampIndex(l.popularIdx, d, len(l.popular))
		} else if isToggle(key) && len(l.popular) > 0 {
			name := l.popular[l.popularIdx]
			l.draft.PickPopular(name)
			l.address.SetValue(name)
		}

	case locationRadius:
		switch key.String() {
		case "left", "h", "down", "j":
			l.draft.AdjustRadius(-1)
		case "right", "l", "up", "k":
			l.draft.AdjustRadius(1)
		case "pgdown":
			l.draft.AdjustRadius(-radiusStep)
		case "pgup":
			l.draft.AdjustRadius(radiusStep)
		case "enter":
			return l.setFocus(l.focus + 1)
		}

	case locationSubmit:
		if key.String() == "enter" {
			loc, ok := l.draft.Submit()
			if !ok {
				return l, nil
			}
			l.log.Debug("location submitted", zap.String("address", loc.Address), zap.Int("radius", loc.Radius))
			return l, emit(locationSubmittedMsg{location: loc})
		}
	}
	return l, nil
}

// locate runs the single-shot device lookup off the event loop. No timeout
// is applied here; the provider's own behaviour decides how long it takes.
func (l locationScreen) locate() tea.Cmd {
	ctx, locator := l.ctx, l.locator
	return func() tea.Msg {
		pos, err := locator.CurrentPosition(ctx)
		return positionMsg{pos: pos, err: err}
	}
}

// handlePosition finishes a lookup. Failures only clear the loading flag:
// the user stays on the manual-entry path with nothing shown and no retry.
func (l locationScreen) handlePosition(msg positionMsg) (locationScreen, tea.Cmd) {
	if !l.locating {
		return l, nil
	}
	l.locating = false

	if msg.err != nil {
		l.log.Debug("device position unavailable", zap.Error(msg.err))
		return l, nil
	}

	loc := l.draft.FromPosition(onboarding.Coordinates{
		Latitude:  msg.pos.Latitude,
		Longitude: msg.pos.Longitude,
	})
	l.address.SetValue(l.draft.Address)
	l.log.Debug("device position resolved", zap.String("address", loc.Address))
	return l, emit(locationSubmittedMsg{location: loc})
}

func (l locationScreen) updateAddress(msg tea.Msg) (locationScreen, tea.Cmd) {
	var cmd tea.Cmd
	l.address, cmd = l.address.Update(msg)
	l.draft.SetAddress(l.address.Value())
	return l, cmd
}

func (l locationScreen) setFocus(f locationField) (locationScreen, tea.Cmd) {
	l.focus = (f%locationFieldCount + locationFieldCount) % locationFieldCount
	if l.focus == locationAddress {
		return l, l.address.Focus()
	}
	l.address.Blur()
	return l, nil
}

func (l locationScreen) View(s ui.Styles, layout ui.LayoutConfig) string {
	var sb strings.Builder

	sb.WriteString(s.Title.Render("Where Do You Fish?"))
	sb.WriteString("\n")
	sb.WriteString(s.Subtitle.Render("Set your fishing location to find nearby anglers"))
	sb.WriteString("\n\n")

	if l.locating {
		sb.WriteString(s.ButtonDisabled.Render(l.spinner.View() + " Getting location..."))
	} else {
		sb.WriteString(renderButton(s, "⌖ Use Current Location", l.focus == locationCurrent, true))
	}
	sb.WriteString("\n")
	sb.WriteString(s.Muted.Render("  ── or enter manually ──"))
	sb.WriteString("\n")

	sb.WriteString(fieldLabel(s, "Fishing Location", l.focus == locationAddress) + "\n")
	sb.WriteString(l.address.View() + "\n")

	sb.WriteString(fieldLabel(s, "Popular Fishing Spots", l.focus == locationPopular) + "\n")
	chips := make([]chip, len(l.popular))
	for i, name := range l.popular {
		chips[i] = chip{
			label:    name,
			selected: strings.TrimSpace(l.draft.Address) == name,
			focused:  l.focus == locationPopular && i == l.popularIdx,
		}
	}
	sb.WriteString(renderChips(s, chips, layout.Columns(30, 2)))
	sb.WriteString("\n")

	radius := l.draft.Radius()
	sb.WriteString(fieldLabel(s, fmt.Sprintf("Search Radius: %d miles", radius), l.focus == locationRadius) + "\n")
	sb.WriteString(fmt.Sprintf("  %d %s %d\n",
		onboarding.MinRadius,
		s.Slider(radius, onboarding.MinRadius, onboarding.MaxRadius, ui.SliderWidth),
		onboarding.MaxRadius))

	if addr := strings.TrimSpace(l.draft.Address); addr != "" {
		preview := s.Bold.Render(addr) + "\n" + s.Muted.Render(fmt.Sprintf("Within %d miles", radius))
		sb.WriteString(s.Card.Render(preview))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(renderButton(s, "Set Location", l.focus == locationSubmit, l.draft.Complete()))
	sb.WriteString("\n")
	sb.WriteString(s.Muted.Render("tab/shift+tab move • ←/→ adjust • pgup/pgdown ±10 miles"))
	sb.WriteString("\n")
	return sb.String()
}
