package catalog

import "time"

// DateWindow is how many consecutive days the availability screen offers.
const DateWindow = 14

// ISODateLayout is the key format for selected dates.
const ISODateLayout = "2006-01-02"

// DateOption is one selectable calendar day.
type DateOption struct {
	ISODate string // 2024-01-02
	Label   string // Today, Tomorrow, Tue, Jan 2
	Short   string // 1/2
}

// GenerateDates returns DateWindow consecutive days starting at today's
// calendar date in today's location. The result depends only on the
// argument, so callers that re-run it after midnight get a shifted window.
func GenerateDates(today time.Time) []DateOption {
	y, m, d := today.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, today.Location())

	out := make([]DateOption, 0, DateWindow)
	for i := 0; i < DateWindow; i++ {
		day := start.AddDate(0, 0, i)
		label := day.Format("Mon, Jan 2")
		switch i {
		case 0:
			label = "Today"
		case 1:
			label = "Tomorrow"
		}
		out = append(out, DateOption{
			ISODate: day.Format(ISODateLayout),
			Label:   label,
			Short:   day.Format("1/2"),
		})
	}
	return out
}

// LabelFor finds the display label of iso within dates.
func LabelFor(dates []DateOption, iso string) (string, bool) {
	for _, d := range dates {
		if d.ISODate == iso {
			return d.Label, true
		}
	}
	return "", false
}
