package timeutil

import "time"

// DisplayLayout is the human-readable date used on news items (e.g. "Oct 10, 2024").
const DisplayLayout = "Jan 2, 2006"

// ParseDisplayDate parses a date in DisplayLayout.
func ParseDisplayDate(value string) (time.Time, error) {
	return time.Parse(DisplayLayout, value)
}

// FormatDisplayDate formats a time in DisplayLayout in its current location.
func FormatDisplayDate(t time.Time) string {
	return t.Format(DisplayLayout)
}
