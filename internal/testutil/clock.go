package testutil

import "time"

// FixedNow is the reference instant used across tests: Oct 10, 2024 12:00 UTC.
var FixedNow = time.Date(2024, 10, 10, 12, 0, 0, 0, time.UTC)

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
