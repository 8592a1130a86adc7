// Package schedule validates recurring weekly caregiver commitments.
//
// The model is deliberately caregiver-local, wall-clock, and timezone-naive:
// a commitment is a day of week plus a start and end time of day, and the
// only rule is that one caregiver never holds two overlapping windows.
// Overlap is tested on half-open minute intervals, so a window ending at
// 17:00 and one starting at 17:00 do not conflict.
package schedule

import "regexp"

// Days of the week, Monday-first, matching the ordinals stored with each
// window.
const (
	Monday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// DayName returns the English name for a Monday-first day ordinal, or
// "invalid day" when out of range.
func DayName(day int) string {
	if day < Monday || day > Sunday {
		return "invalid day"
	}
	return dayNames[day]
}

// Window is one recurring weekly time slice: a day of week (0-6,
// Monday-first) and zero-padded 24h "HH:MM" start and end times. Windows do
// not span midnight; End must be strictly after Start within the same day.
type Window struct {
	Day   int    `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// CommitmentSet is the collection of windows attached to one active
// assignment of a caregiver.
type CommitmentSet struct {
	AssignmentID string   `json:"assignment_id"`
	Windows      []Window `json:"windows"`
}

// timeOfDay is the strict HH:MM shape: zero-padded, 24h, minute granularity.
var timeOfDay = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// minutesOfDay converts a validated HH:MM string to minutes since midnight.
func minutesOfDay(s string) int {
	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	minutes := int(s[3]-'0')*10 + int(s[4]-'0')
	return hours*60 + minutes
}

// interval is a window reduced to a half-open minute range within its day.
type interval struct {
	day   int
	start int
	end   int
}

// overlaps reports whether two half-open intervals on the same day
// intersect. Touching endpoints do not overlap.
func (a interval) overlaps(b interval) bool {
	return a.day == b.day && a.start < b.end && a.end > b.start
}
