package wizard

import (
	"strings"
	"time"

	"anglermatch/cmd/angler/ui"
	"anglermatch/internal/catalog"
	"anglermatch/internal/logging"
	"anglermatch/internal/onboarding"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type dateTimeField int

const (
	dateTimeDates dateTimeField = iota
	dateTimeSlots
	dateTimeSubmit
	dateTimeFieldCount
)

// dateTimeScreen picks the days and times the user can fish. The date
// window is generated when the screen mounts.
type dateTimeScreen struct {
	draft onboarding.AvailabilityDraft
	dates []catalog.DateOption
	slots []catalog.TimeSlot

	focus   dateTimeField
	dateIdx int
	slotIdx int
	log     *zap.Logger
}

func newDateTimeScreen(now time.Time) dateTimeScreen {
	return dateTimeScreen{
		dates: catalog.GenerateDates(now),
		slots: catalog.TimeSlots(),
		log:   logging.Get(logging.CategoryAvailability),
	}
}

func (d dateTimeScreen) Update(msg tea.Msg) (dateTimeScreen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch key.String() {
	case "tab":
		d.focus = (d.focus + 1) % dateTimeFieldCount
		return d, nil
	case "shift+tab":
		d.focus = (d.focus + dateTimeFieldCount - 1) % dateTimeFieldCount
		return d, nil
	}

	switch d.focus {
	case dateTimeDates:
		switch key.String() {
		case "left", "h":
			d.dateIdx = clampIndex(d.dateIdx, -1, len(d.dates))
		case "right", "l":
			d.dateIdx = clampIndex(d.dateIdx, 1, len(d.dates))
		case "up", "k":
			d.dateIdx = clampIndex(d.dateIdx, -ui.DateColumns, len(d.dates))
		case "down", "j":
			d.dateIdx = clampIndex(d.dateIdx, ui.DateColumns, len(d.dates))
		case " ", "enter":
			if len(d.dates) > 0 {
				d.draft.ToggleDate(d.dates[d.dateIdx].ISODate)
			}
		}

	case dateTimeSlots:
		if dir := direction(key); dir != 0 {
			d.slotIdx = clampIndex(d.slotIdx, dir, len(d.slots))
		} else if isToggle(key) && len(d.slots) > 0 {
			d.draft.ToggleTimeSlot(d.slots[d.slotIdx].ID)
		}

	case dateTimeSubmit:
		if key.String() == "enter" {
			avail, ok := d.draft.Submit()
			if !ok {
				return d, nil
			}
			d.log.Debug("availability submitted",
				zap.Strings("dates", avail.Dates),
				zap.Strings("time_slots", avail.TimeSlots))
			return d, emit(availabilitySubmittedMsg{availability: avail})
		}
	}
	return d, nil
}

func (d dateTimeScreen) View(s ui.Styles, layout ui.LayoutConfig) string {
	var sb strings.Builder

	sb.WriteString(s.Title.Render("When Can You Fish?"))
	sb.WriteString("\n")
	sb.WriteString(s.Subtitle.Render("Select your available dates and preferred times"))
	sb.WriteString("\n")

	sb.WriteString(fieldLabel(s, "Select Dates", d.focus == dateTimeDates) + "\n")
	chips := make([]chip, len(d.dates))
	for i, opt := range d.dates {
		label := opt.Short
		if i < 2 {
			label = opt.Label
		}
		chips[i] = chip{
			label:    label,
			selected: d.draft.HasDate(opt.ISODate),
			focused:  d.focus == dateTimeDates && i == d.dateIdx,
		}
	}
	sb.WriteString(renderChips(s, chips, layout.Columns(10, ui.DateColumns)))
	sb.WriteString("\n")
	if d.focus == dateTimeDates && len(d.dates) > 0 {
		sb.WriteString(s.Muted.Render("  " + d.dates[d.dateIdx].Label))
		sb.WriteString("\n")
	}

	if selected := d.draft.Dates(); len(selected) > 0 {
		labels := make([]string, 0, len(selected))
		for _, iso := range selected {
			if label, ok := catalog.LabelFor(d.dates, iso); ok {
				labels = append(labels, label)
			} else {
				labels = append(labels, iso)
			}
		}
		sb.WriteString(s.Muted.Render("  Selected dates: ") + s.Badges(labels) + "\n")
	}

	sb.WriteString(fieldLabel(s, "Preferred Times", d.focus == dateTimeSlots) + "\n")
	for i, slot := range d.slots {
		marker := "○"
		style := s.Body
		if d.draft.HasTimeSlot(slot.ID) {
			marker = "●"
			style = s.Success
		}
		cursor := "  "
		if d.focus == dateTimeSlots && i == d.slotIdx {
			cursor = "› "
		}
		sb.WriteString(cursor + style.Render(marker+" "+slot.Label) + " " +
			s.Muted.Render(slot.Time+" · "+slot.Description) + "\n")
	}

	if selected := d.draft.TimeSlots(); len(selected) > 0 {
		labels := make([]string, 0, len(selected))
		for _, id := range selected {
			if slot, ok := catalog.TimeSlotByID(id); ok {
				labels = append(labels, slot.Label)
			}
		}
		sb.WriteString(s.Muted.Render("  Selected times: ") + s.Badges(labels) + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(renderButton(s, "Find Fishing Partners", d.focus == dateTimeSubmit, d.draft.Complete()))
	sb.WriteString("\n")
	if !d.draft.Complete() {
		sb.WriteString(s.Muted.Render(onboarding.AvailabilityHint))
		sb.WriteString("\n")
	}
	return sb.String()
}
