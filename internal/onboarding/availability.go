package onboarding

import "anglermatch/internal/selection"

// AvailabilityHint is shown under the disabled submit control.
const AvailabilityHint = "Please select at least one date and one time slot"

// AvailabilitySelection is a submitted set of ISO dates and time-slot ids.
type AvailabilitySelection struct {
	Dates     []string
	TimeSlots []string
}

// Complete reports whether both sets are non-empty.
func (a AvailabilitySelection) Complete() bool {
	return len(a.Dates) > 0 && len(a.TimeSlots) > 0
}

func (a AvailabilitySelection) clone() AvailabilitySelection {
	return AvailabilitySelection{
		Dates:     append([]string(nil), a.Dates...),
		TimeSlots: append([]string(nil), a.TimeSlots...),
	}
}

// AvailabilityDraft is the date/time screen's in-progress state.
type AvailabilityDraft struct {
	dates     selection.Set[string]
	timeSlots selection.Set[string]
}

// ToggleDate adds or removes an ISO date.
func (d *AvailabilityDraft) ToggleDate(iso string) {
	d.dates = selection.Toggle(d.dates, iso)
}

// ToggleTimeSlot adds or removes a time-slot id.
func (d *AvailabilityDraft) ToggleTimeSlot(id string) {
	d.timeSlots = selection.Toggle(d.timeSlots, id)
}

// HasDate reports whether iso is selected.
func (d *AvailabilityDraft) HasDate(iso string) bool { return d.dates.Contains(iso) }

// HasTimeSlot reports whether id is selected.
func (d *AvailabilityDraft) HasTimeSlot(id string) bool { return d.timeSlots.Contains(id) }

// Dates returns the selected dates in selection order.
func (d *AvailabilityDraft) Dates() []string { return d.dates.Items() }

// TimeSlots returns the selected slot ids in selection order.
func (d *AvailabilityDraft) TimeSlots() []string { return d.timeSlots.Items() }

// Complete reports whether at least one date and one slot are selected.
func (d *AvailabilityDraft) Complete() bool {
	return !d.dates.Empty() && !d.timeSlots.Empty()
}

// Submit returns a snapshot when the draft is complete.
func (d *AvailabilityDraft) Submit() (AvailabilitySelection, bool) {
	if !d.Complete() {
		return AvailabilitySelection{}, false
	}
	return AvailabilitySelection{
		Dates:     d.dates.Items(),
		TimeSlots: d.timeSlots.Items(),
	}, true
}
