// Package catalog holds the static data the onboarding screens choose from:
// time-of-day buckets, the rolling two-week calendar, interest tags,
// popular fishing spots and the angler deck.
package catalog

// TimeSlot is one time-of-day bucket a user can be available in.
type TimeSlot struct {
	ID          string
	Label       string
	Time        string
	Description string
}

var timeSlots = []TimeSlot{
	{ID: "early-morning", Label: "Early Morning", Time: "5:00 AM - 8:00 AM", Description: "Best for bass and trout"},
	{ID: "morning", Label: "Morning", Time: "8:00 AM - 12:00 PM", Description: "Great for most fish"},
	{ID: "afternoon", Label: "Afternoon", Time: "12:00 PM - 5:00 PM", Description: "Warmer water fishing"},
	{ID: "evening", Label: "Evening", Time: "5:00 PM - 8:00 PM", Description: "Perfect for sunset fishing"},
	{ID: "night", Label: "Night", Time: "8:00 PM - 11:00 PM", Description: "Night fishing adventures"},
}

// TimeSlots returns the five buckets in display order.
func TimeSlots() []TimeSlot {
	out := make([]TimeSlot, len(timeSlots))
	copy(out, timeSlots)
	return out
}

// TimeSlotByID looks up a bucket by its identifier.
func TimeSlotByID(id string) (TimeSlot, bool) {
	for _, s := range timeSlots {
		if s.ID == id {
			return s, true
		}
	}
	return TimeSlot{}, false
}

var interests = []string{
	"Bass Fishing", "Fly Fishing", "Ice Fishing", "Deep Sea",
	"Saltwater", "Freshwater", "Trout", "Salmon", "Shore Fishing", "Boat Fishing",
}

// Interests returns the selectable interest tags.
func Interests() []string {
	out := make([]string, len(interests))
	copy(out, interests)
	return out
}

var popularLocations = []string{
	"Lake Michigan, Chicago",
	"Tampa Bay, Florida",
	"Colorado River, Colorado",
	"Chesapeake Bay, Maryland",
	"Lake Tahoe, California",
	"Thousand Islands, New York",
}

// PopularLocations returns the quick-pick fishing spots.
func PopularLocations() []string {
	out := make([]string, len(popularLocations))
	copy(out, popularLocations)
	return out
}
