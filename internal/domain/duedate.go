package domain

import "time"

// NextDueDate returns the next occurrence of payment due day dueDay on or
// after ref. The rule is "nearest valid day-D instant, clamped": if the
// target month has fewer days than dueDay (D=31 in a 30-day month, D=29..31
// in February) the due date clamps to the last day of that month, and the
// date rolls to the next month only when ref has already passed this
// month's (clamped) due day. A due date equal to ref's day counts as not
// yet passed.
//
// The returned time is midnight UTC of the due date.
func NextDueDate(dueDay int, ref time.Time) time.Time {
	ref = ref.UTC()
	year, month, day := ref.Date()

	due := clampedDay(year, month, dueDay)
	if day <= due {
		return time.Date(year, month, due, 0, 0, 0, 0, time.UTC)
	}

	// Passed this month: roll to the next one.
	next := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	year, month, _ = next.Date()
	due = clampedDay(year, month, dueDay)
	return time.Date(year, month, due, 0, 0, 0, 0, time.UTC)
}

// clampedDay returns dueDay clamped to the number of days in the month.
func clampedDay(year int, month time.Month, dueDay int) int {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if dueDay > last {
		return last
	}
	return dueDay
}
