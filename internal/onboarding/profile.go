package onboarding

import (
	"slices"
	"strings"

	"anglermatch/internal/selection"
)

// FishingStyle is how an angler prefers to fish.
type FishingStyle string

const (
	StyleCasual      FishingStyle = "casual"
	StyleSerious     FishingStyle = "serious"
	StyleCompetitive FishingStyle = "competitive"
	StylePhotography FishingStyle = "photography"
)

// FishingStyles lists the selectable styles in display order.
var FishingStyles = []FishingStyle{StyleCasual, StyleSerious, StyleCompetitive, StylePhotography}

// Label returns the long form shown in the style picker.
func (s FishingStyle) Label() string {
	switch s {
	case StyleCasual:
		return "Casual/Recreational"
	case StyleSerious:
		return "Serious Sport Fishing"
	case StyleCompetitive:
		return "Tournament/Competitive"
	case StylePhotography:
		return "Catch & Release/Photography"
	default:
		return ""
	}
}

// Experience is how long an angler has been fishing.
type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceExperienced  Experience = "experienced"
	ExperienceExpert       Experience = "expert"
)

// Experiences lists the selectable levels in display order.
var Experiences = []Experience{ExperienceBeginner, ExperienceIntermediate, ExperienceExperienced, ExperienceExpert}

// Label returns the long form shown in the experience picker.
func (e Experience) Label() string {
	switch e {
	case ExperienceBeginner:
		return "Beginner (0-2 years)"
	case ExperienceIntermediate:
		return "Intermediate (2-5 years)"
	case ExperienceExperienced:
		return "Experienced (5-10 years)"
	case ExperienceExpert:
		return "Expert (10+ years)"
	default:
		return ""
	}
}

// UserProfile is a submitted profile. Treat it as read-only.
type UserProfile struct {
	Name         string
	Bio          string
	FishingStyle FishingStyle
	Experience   Experience
	Location     string
	Interests    []string
}

// Complete reports whether every required field is filled in. Name and
// location must be non-blank after trimming.
func (p UserProfile) Complete() bool {
	return strings.TrimSpace(p.Name) != "" && strings.TrimSpace(p.Location) != "" &&
		p.FishingStyle != "" && p.Experience != ""
}

func (p UserProfile) clone() UserProfile {
	p.Interests = slices.Clone(p.Interests)
	return p
}

// ProfileDraft is the profile screen's in-progress state.
type ProfileDraft struct {
	Name         string
	Bio          string
	FishingStyle FishingStyle
	Experience   Experience
	Location     string
	interests    selection.Set[string]
}

// SetName overwrites the name.
func (d *ProfileDraft) SetName(v string) { d.Name = v }

// SetBio overwrites the bio.
func (d *ProfileDraft) SetBio(v string) { d.Bio = v }

// SetLocation overwrites the home location.
func (d *ProfileDraft) SetLocation(v string) { d.Location = v }

// SetFishingStyle overwrites the style.
func (d *ProfileDraft) SetFishingStyle(v FishingStyle) { d.FishingStyle = v }

// SetExperience overwrites the experience level.
func (d *ProfileDraft) SetExperience(v Experience) { d.Experience = v }

// ToggleInterest adds or removes an interest tag.
func (d *ProfileDraft) ToggleInterest(tag string) {
	d.interests = selection.Toggle(d.interests, tag)
}

// HasInterest reports whether tag is selected.
func (d *ProfileDraft) HasInterest(tag string) bool {
	return d.interests.Contains(tag)
}

// Interests returns the selected tags in selection order.
func (d *ProfileDraft) Interests() []string {
	return d.interests.Items()
}

// Snapshot copies the draft into a UserProfile regardless of completeness.
func (d *ProfileDraft) Snapshot() UserProfile {
	return UserProfile{
		Name:         d.Name,
		Bio:          d.Bio,
		FishingStyle: d.FishingStyle,
		Experience:   d.Experience,
		Location:     d.Location,
		Interests:    d.interests.Items(),
	}
}

// Complete reports whether name, location, style and experience are set.
func (d *ProfileDraft) Complete() bool {
	return d.Snapshot().Complete()
}

// Submit returns a trimmed snapshot when the draft is complete and false
// otherwise.
func (d *ProfileDraft) Submit() (UserProfile, bool) {
	if !d.Complete() {
		return UserProfile{}, false
	}
	p := d.Snapshot()
	p.Name = strings.TrimSpace(p.Name)
	p.Location = strings.TrimSpace(p.Location)
	return p, true
}
