// Package wizard is the terminal front end for the onboarding flow.
//
// Model owns the onboarding.Controller and mounts exactly one screen for
// the controller's current stage. Screens own their drafts and report
// submissions as typed messages; Model.Update turns each one into a
// controller event, mounts the next screen on success and raises the
// returned toast.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"anglermatch/cmd/angler/ui"
	"anglermatch/internal/catalog"
	"anglermatch/internal/geo"
	"anglermatch/internal/logging"
	"anglermatch/internal/onboarding"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Options configures a Model. Zero values fall back to defaults.
type Options struct {
	Title         string
	Styles        *ui.Styles
	Controller    *onboarding.Controller
	Locator       geo.Locator
	Anglers       []catalog.Angler
	DefaultRadius int
	ToastDuration time.Duration
	Now           func() time.Time
	Context       context.Context
}

// Model is the root bubbletea model.
type Model struct {
	opts   Options
	ctrl   *onboarding.Controller
	styles ui.Styles
	layout ui.LayoutConfig

	welcome  welcomeScreen
	profile  profileScreen
	location locationScreen
	dateTime dateTimeScreen
	matching matchingScreen

	toast    onboarding.Notification
	toastSeq int

	quitting bool
	log      *zap.Logger
}

// New builds the root model at the controller's current stage.
func New(opts Options) Model {
	if opts.Title == "" {
		opts.Title = "Angler Match"
	}
	if opts.Controller == nil {
		opts.Controller = onboarding.NewController()
	}
	if opts.Locator == nil {
		opts.Locator = geo.Unsupported{}
	}
	if opts.DefaultRadius == 0 {
		opts.DefaultRadius = onboarding.DefaultRadius
	}
	if opts.ToastDuration <= 0 {
		opts.ToastDuration = 3 * time.Second
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}

	styles := ui.DefaultStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}

	m := Model{
		opts:   opts,
		ctrl:   opts.Controller,
		styles: styles,
		layout: ui.NewLayoutConfig(0, 0),
		log:    logging.Get(logging.CategoryWizard),
	}
	m, _ = m.mount()
	return m
}

// Controller exposes the state machine, mainly for tests and for the
// summary printed after the program exits.
func (m Model) Controller() *onboarding.Controller { return m.ctrl }

// Stage is shorthand for Controller().Stage().
func (m Model) Stage() onboarding.Stage { return m.ctrl.Stage() }

// Toast returns the notification currently on screen, if any.
func (m Model) Toast() onboarding.Notification { return m.toast }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayoutConfig(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = onboarding.Notification{}
		}
		return m, nil
	}

	if ev, ok := event(msg); ok {
		return m.apply(ev)
	}
	return m.updateScreen(msg)
}

// apply feeds one event to the controller. Rejected events are logged and
// dropped; the screens already disable submission while incomplete.
func (m Model) apply(ev onboarding.Event) (tea.Model, tea.Cmd) {
	before := m.ctrl.Stage()
	note, err := m.ctrl.Apply(ev)
	if err != nil {
		level := zap.WarnLevel
		if errors.Is(err, onboarding.ErrWrongStage) || errors.Is(err, onboarding.ErrIncomplete) {
			level = zap.DebugLevel
		}
		m.log.Check(level, "event rejected").Write(zap.Error(err))
		return m, nil
	}

	var cmds []tea.Cmd
	if m.ctrl.Stage() != before {
		var cmd tea.Cmd
		m, cmd = m.mount()
		cmds = append(cmds, cmd)
	}
	if m.ctrl.Stage() == onboarding.StageMatching {
		m.matching.matches = len(m.ctrl.Matches())
	}
	if !note.Empty() {
		cmds = append(cmds, m.showToast(note))
	}
	return m, tea.Batch(cmds...)
}

// mount builds a fresh screen for the current stage.
func (m Model) mount() (Model, tea.Cmd) {
	width := m.layout.ContentWidth()
	switch m.ctrl.Stage() {
	case onboarding.StageWelcome:
		m.welcome = newWelcomeScreen(m.opts.Title, m.styles, width)
	case onboarding.StageProfile:
		m.profile = newProfileScreen(m.styles, width)
		return m, m.profile.Init()
	case onboarding.StageLocation:
		m.location = newLocationScreen(m.opts.Context, m.opts.Locator, m.opts.DefaultRadius, m.styles, width)
	case onboarding.StageDateTime:
		m.dateTime = newDateTimeScreen(m.opts.Now())
	case onboarding.StageMatching:
		m.matching = newMatchingScreen(m.opts.Anglers, logging.Get(logging.CategoryMatching))
	}
	return m, nil
}

func (m *Model) showToast(note onboarding.Notification) tea.Cmd {
	m.toast = note
	m.toastSeq++
	seq := m.toastSeq
	return tea.Tick(m.opts.ToastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func (m Model) updateScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.ctrl.Stage() {
	case onboarding.StageWelcome:
		m.welcome, cmd = m.welcome.Update(msg)
	case onboarding.StageProfile:
		m.profile, cmd = m.profile.Update(msg)
	case onboarding.StageLocation:
		m.location, cmd = m.location.Update(msg)
	case onboarding.StageDateTime:
		m.dateTime, cmd = m.dateTime.Update(msg)
	case onboarding.StageMatching:
		m.matching, cmd = m.matching.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.ctrl.Stage() {
	case onboarding.StageWelcome:
		body = m.welcome.View(m.styles, m.layout)
	case onboarding.StageProfile:
		body = m.profile.View(m.styles, m.layout)
	case onboarding.StageLocation:
		body = m.location.View(m.styles, m.layout)
	case onboarding.StageDateTime:
		body = m.dateTime.View(m.styles, m.layout)
	case onboarding.StageMatching:
		body = m.matching.View(m.styles, m.layout)
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render("🎣 " + m.opts.Title))
	sb.WriteString(" ")
	sb.WriteString(m.styles.Muted.Render(stepLabel(m.ctrl.Stage())))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Content.Render(body))
	sb.WriteString("\n")

	if !m.toast.Empty() {
		text := m.styles.Bold.Render(m.toast.Title)
		if m.toast.Description != "" {
			text += "\n" + m.styles.Muted.Render(m.toast.Description)
		}
		sb.WriteString(m.styles.Toast.Render(text))
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.RenderDivider(m.layout.ContentWidth()))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Footer.Render("ctrl+c quit"))
	return m.styles.App.Render(sb.String())
}

func stepLabel(stage onboarding.Stage) string {
	for i, s := range onboarding.Stages {
		if s == stage && i > 0 && i < len(onboarding.Stages)-1 {
			return fmt.Sprintf("Step %d of %d", i, len(onboarding.Stages)-2)
		}
	}
	return ""
}
