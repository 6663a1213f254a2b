package wizard

import (
	"anglermatch/internal/geo"
	"anglermatch/internal/onboarding"

	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// SCREEN -> ROOT MESSAGES
// =============================================================================
// Screens never touch the controller. Each submission is wrapped in one of
// these messages and consumed exactly once by Model.Update.

type startedMsg struct{}

type profileSubmittedMsg struct {
	profile onboarding.UserProfile
}

type locationSubmittedMsg struct {
	location onboarding.LocationSelection
}

type availabilitySubmittedMsg struct {
	availability onboarding.AvailabilitySelection
}

type likedMsg struct {
	anglerID string
}

type passedMsg struct {
	anglerID string
}

// positionMsg carries the result of a device geolocation lookup.
type positionMsg struct {
	pos geo.Position
	err error
}

// toastExpiredMsg dismisses the toast raised with the same sequence number.
type toastExpiredMsg struct {
	seq int
}

// emit wraps a message in a command.
func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// event converts a submission message into a controller event.
func event(msg tea.Msg) (onboarding.Event, bool) {
	switch m := msg.(type) {
	case startedMsg:
		return onboarding.Started{}, true
	case profileSubmittedMsg:
		return onboarding.ProfileSubmitted{Profile: m.profile}, true
	case locationSubmittedMsg:
		return onboarding.LocationSubmitted{Location: m.location}, true
	case availabilitySubmittedMsg:
		return onboarding.AvailabilitySubmitted{Availability: m.availability}, true
	case likedMsg:
		return onboarding.Liked{AnglerID: m.anglerID}, true
	case passedMsg:
		return onboarding.Passed{AnglerID: m.anglerID}, true
	}
	return nil, false
}
