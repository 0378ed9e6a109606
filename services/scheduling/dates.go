package scheduling

import "time"

const (
	monthKeyLayout = "2006-01"
	dayKeyLayout   = "2006-01-02"
)

// dateOnly truncates t to midnight in its own location.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func monthKey(t time.Time) string {
	return t.Format(monthKeyLayout)
}

func dayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// StartOfWeek returns midnight of the Sunday on or before t. Weekly bookings
// always cover whole Sunday-to-Saturday weeks.
func StartOfWeek(t time.Time) time.Time {
	d := dateOnly(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}
