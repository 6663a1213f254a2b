package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"anglermatch/internal/catalog"
	"anglermatch/internal/onboarding"

	"github.com/fatih/color"
)

// experienceColor mirrors the badge colours used on the matching cards.
func experienceColor(level string) *color.Color {
	switch onboarding.Experience(level) {
	case onboarding.ExperienceBeginner:
		return color.New(color.FgGreen)
	case onboarding.ExperienceIntermediate:
		return color.New(color.FgBlue)
	case onboarding.ExperienceExperienced:
		return color.New(color.FgMagenta)
	case onboarding.ExperienceExpert:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgHiBlack)
	}
}

// printDeck lists every angler on the deck, in deck order.
func printDeck(w io.Writer, anglers []catalog.Angler) {
	muted := color.New(color.FgHiBlack)
	if len(anglers) == 0 {
		muted.Fprintln(w, "No more anglers nearby")
		return
	}

	name := color.New(color.FgCyan, color.Bold)
	rating := color.New(color.FgYellow)

	for i, a := range anglers {
		if i > 0 {
			fmt.Fprintln(w)
		}
		name.Fprintf(w, "%s, %d", a.Name, a.Age)
		fmt.Fprint(w, "  ")
		rating.Fprintf(w, "★ %.1f", a.Rating)
		muted.Fprintf(w, "  %.1f miles · %s\n", a.DistanceMiles, a.Location)

		label := onboarding.Experience(a.Experience).Label()
		if label == "" {
			label = a.Experience
		}
		experienceColor(a.Experience).Fprint(w, "  "+label)
		if style := onboarding.FishingStyle(a.FishingStyle).Label(); style != "" {
			fmt.Fprintf(w, " · %s", style)
		}
		fmt.Fprintf(w, " · %d catches\n", a.TotalCatches)

		if len(a.Interests) > 0 {
			fmt.Fprintf(w, "  %s\n", strings.Join(a.Interests, ", "))
		}
		muted.Fprintf(w, "  Available: %s\n", a.Availability)
	}
}

// printCalendar shows the date window starting at now and the time slots.
func printCalendar(w io.Writer, now time.Time) {
	header := color.New(color.Bold)
	highlight := color.New(color.FgGreen)
	muted := color.New(color.FgHiBlack)

	header.Fprintln(w, "Dates")
	for i, d := range catalog.GenerateDates(now) {
		label := fmt.Sprintf("  %-12s %s", d.Label, d.ISODate)
		if i < 2 {
			highlight.Fprintln(w, label)
		} else {
			fmt.Fprintln(w, label)
		}
	}

	fmt.Fprintln(w)
	header.Fprintln(w, "Time slots")
	for _, s := range catalog.TimeSlots() {
		fmt.Fprintf(w, "  %-14s %-18s", s.Label, s.Time)
		muted.Fprintln(w, s.Description)
	}
}

// printSummary reports what the session produced after the UI exits.
func printSummary(w io.Writer, s onboarding.Session, anglers []catalog.Angler) {
	if s.Stage != onboarding.StageMatching {
		color.New(color.FgHiBlack).Fprintf(w, "Onboarding stopped at the %s step.\n", s.Stage)
		return
	}

	names := make(map[string]string, len(anglers))
	for _, a := range anglers {
		names[a.ID] = a.Name
	}

	if len(s.Matches) == 0 {
		fmt.Fprintln(w, "No matches this time. Tight lines!")
		return
	}

	color.New(color.FgGreen, color.Bold).Fprintf(w, "%d matches found!\n", len(s.Matches))
	for _, id := range s.Matches {
		name, ok := names[id]
		if !ok {
			name = id
		}
		fmt.Fprintf(w, "  ♥ %s\n", name)
	}
}
