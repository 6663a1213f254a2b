package wizard

import (
	"strings"
	"testing"

	"anglermatch/internal/geo"
	"anglermatch/internal/onboarding"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelWelcome(t *testing.T) {
	m := newTestModel(nil, testAnglers())
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	view := m.View()
	assert.Contains(t, view, "Location Matching")
	assert.Contains(t, view, "Start Fishing Together")
	assert.Contains(t, view, "1,247 matches made")
	assert.Contains(t, view, strings.Repeat("─", m.layout.ContentWidth()), "divider spans the content width")
	assert.Contains(t, view, "ctrl+c quit")

	m = submit(t, m, "enter")
	assert.Equal(t, onboarding.StageProfile, m.Stage())
	assert.True(t, m.Toast().Empty(), "starting raises no toast")
	assert.Contains(t, m.View(), "Create Your Angler Profile")
	assert.Contains(t, m.View(), "Step 1 of 3")
}

func TestModelKeyDrivenFlow(t *testing.T) {
	m := newTestModel(nil, testAnglers())

	m = submit(t, m, "enter")

	// Profile: name, location, skip bio, style, experience, skip interests.
	m = typeText(m, "Al")
	m = press(m, "tab")
	m = typeText(m, "Lake X")
	m = press(m, "tab", "tab", "right", "tab", "right", "tab", "tab")
	m = submit(t, m, "enter")
	require.Equal(t, onboarding.StageLocation, m.Stage())
	assert.Equal(t, "Profile created! Now let's set your location.", m.Toast().Title)

	// Location: typed address, default radius.
	m = press(m, "tab")
	m = typeText(m, "Lake X")
	m = press(m, "tab", "tab", "tab")
	m = submit(t, m, "enter")
	require.Equal(t, onboarding.StageDateTime, m.Stage())

	// Availability: today, early morning.
	m = press(m, " ", "tab", " ", "tab")
	m = submit(t, m, "enter")
	require.Equal(t, onboarding.StageMatching, m.Stage())

	s := m.Controller().Session()
	require.NotNil(t, s.Profile)
	assert.Equal(t, "Al", s.Profile.Name)
	assert.Equal(t, onboarding.StyleCasual, s.Profile.FishingStyle)
	assert.Equal(t, onboarding.ExperienceBeginner, s.Profile.Experience)
	assert.Equal(t, onboarding.LocationSelection{Address: "Lake X", Radius: onboarding.DefaultRadius}, *s.Location)
	assert.Equal(t, []string{"2024-01-01"}, s.Availability.Dates)
	assert.Equal(t, []string{"early-morning"}, s.Availability.TimeSlots)
}

func TestModelDeviceLocationAdvances(t *testing.T) {
	locator := geo.StaticLocator{Position: geo.Position{Latitude: 27.95, Longitude: -82.46}}
	m := advanceToLocation(t, newTestModel(locator, testAnglers()))

	m, cmd := update(m, key("enter"))
	m, cmd = update(m, findMsg[positionMsg](t, cmd))
	m, _ = update(m, findMsg[locationSubmittedMsg](t, cmd))

	require.Equal(t, onboarding.StageDateTime, m.Stage())
	loc := m.Controller().Session().Location
	require.NotNil(t, loc)
	assert.Equal(t, "Current Location (27.9500, -82.4600)", loc.Address)
	assert.Equal(t, onboarding.DefaultRadius, loc.Radius)
	assert.Equal(t, "Location set! When are you available to fish?", m.Toast().Title)
}

func TestModelDeviceLocationFailureStaysPut(t *testing.T) {
	m := advanceToLocation(t, newTestModel(geo.Denied{}, testAnglers()))
	toast := m.Toast()

	m, cmd := update(m, key("enter"))
	m, cmd = update(m, findMsg[positionMsg](t, cmd))

	assert.Nil(t, cmd)
	assert.Equal(t, onboarding.StageLocation, m.Stage())
	assert.Equal(t, toast, m.Toast(), "no error toast")
	assert.Nil(t, m.Controller().Session().Location)
}

// The scenario from end to end, fed as submission messages.
func TestModelEndToEnd(t *testing.T) {
	m := newTestModel(nil, testAnglers())

	profile := onboarding.UserProfile{Name: "Al", Location: "Lake X", FishingStyle: onboarding.StyleCasual, Experience: onboarding.ExperienceBeginner, Interests: []string{}}
	location := onboarding.LocationSelection{Address: "Lake X", Radius: 25}
	availability := onboarding.AvailabilitySelection{Dates: []string{"2024-01-01"}, TimeSlots: []string{"morning"}}

	steps := []struct {
		msg  tea.Msg
		want onboarding.Stage
	}{
		{startedMsg{}, onboarding.StageProfile},
		{profileSubmittedMsg{profile: profile}, onboarding.StageLocation},
		{locationSubmittedMsg{location: location}, onboarding.StageDateTime},
		{availabilitySubmittedMsg{availability: availability}, onboarding.StageMatching},
	}
	for _, step := range steps {
		m, _ = update(m, step.msg)
		require.Equal(t, step.want, m.Stage(), "after %T", step.msg)
	}
	assert.Equal(t, "Perfect! Let's find your fishing buddies.", m.Toast().Title)

	s := m.Controller().Session()
	if diff := cmp.Diff(&profile, s.Profile); diff != "" {
		t.Errorf("profile mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(&location, s.Location); diff != "" {
		t.Errorf("location mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(&availability, s.Availability); diff != "" {
		t.Errorf("availability mismatch (-want +got):\n%s", diff)
	}
}

func TestModelRejectsOutOfOrderSubmission(t *testing.T) {
	m := newTestModel(nil, testAnglers())

	m, cmd := update(m, locationSubmittedMsg{location: onboarding.LocationSelection{Address: "x", Radius: 5}})
	assert.Nil(t, cmd)
	assert.Equal(t, onboarding.StageWelcome, m.Stage())

	m, _ = update(m, startedMsg{})
	m, cmd = update(m, profileSubmittedMsg{profile: onboarding.UserProfile{Name: "Al"}})
	assert.Nil(t, cmd)
	assert.Equal(t, onboarding.StageProfile, m.Stage())
}

func TestModelMatching(t *testing.T) {
	m := advanceToMatching(t, newTestModel(nil, testAnglers()))
	assert.Contains(t, m.View(), "Mike Johnson")

	m = submit(t, m, "enter")
	assert.Equal(t, "It's a match! 🎣", m.Toast().Title)
	assert.Equal(t, "You both want to fish together!", m.Toast().Description)
	seq := m.toastSeq

	m = submit(t, m, "x")
	assert.Equal(t, seq, m.toastSeq, "passing raises no toast")

	m = submit(t, m, "right")
	assert.Equal(t, []string{"1", "3"}, m.Controller().Matches())

	view := m.View()
	assert.Contains(t, view, "2 matches found!")
	assert.Contains(t, view, "1 of 3 anglers", "deck wrapped to the first card")
	assert.Contains(t, view, "Mike Johnson")
}

func TestModelEmptyDeck(t *testing.T) {
	m := advanceToMatching(t, newTestModel(nil, nil))

	m, cmd := update(m, key("enter"))
	assert.Nil(t, cmd)
	assert.Empty(t, m.Controller().Matches())
	assert.Contains(t, m.View(), "No more anglers nearby")
}

func TestModelToastExpiry(t *testing.T) {
	m := advanceToLocation(t, newTestModel(nil, testAnglers()))
	require.False(t, m.Toast().Empty())

	m, _ = update(m, toastExpiredMsg{seq: m.toastSeq - 1})
	assert.False(t, m.Toast().Empty(), "a stale expiry leaves the newer toast up")

	m, _ = update(m, toastExpiredMsg{seq: m.toastSeq})
	assert.True(t, m.Toast().Empty())
	assert.NotContains(t, m.View(), "Profile created!")
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(nil, testAnglers())
	m, cmd := update(m, key("ctrl+c"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func advanceToLocation(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(m, startedMsg{})
	m, _ = update(m, profileSubmittedMsg{profile: onboarding.UserProfile{
		Name: "Al", Location: "Lake X", FishingStyle: onboarding.StyleCasual, Experience: onboarding.ExperienceBeginner,
	}})
	require.Equal(t, onboarding.StageLocation, m.Stage())
	return m
}

func advanceToMatching(t *testing.T, m Model) Model {
	t.Helper()
	m = advanceToLocation(t, m)
	m, _ = update(m, locationSubmittedMsg{location: onboarding.LocationSelection{Address: "Lake X", Radius: 25}})
	m, _ = update(m, availabilitySubmittedMsg{availability: onboarding.AvailabilitySelection{
		Dates: []string{"2024-01-01"}, TimeSlots: []string{"morning"},
	}})
	require.Equal(t, onboarding.StageMatching, m.Stage())
	return m
}
