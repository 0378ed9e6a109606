package recurring

import (
	"time"

	"fleetly/models"
)

// GenerateDates expands a recurring booking into its concrete occurrence
// dates. Starting at the booking's start date, the current date is appended
// and then advanced by the pattern's step function until any bound is hit:
// the booking window end, the pattern's own end date, or the occurrence
// count. The loop always terminates; every step function moves strictly
// forward even for degenerate patterns.
func GenerateDates(booking models.RecurringBooking) []time.Time {
	var dates []time.Time
	current := booking.StartDate

	for {
		if current.After(booking.EndDate) {
			break
		}
		if booking.Pattern.Occurrences != nil && len(dates) >= *booking.Pattern.Occurrences {
			break
		}
		if booking.Pattern.EndDate != nil && current.After(*booking.Pattern.EndDate) {
			break
		}
		dates = append(dates, current)
		current = advance(current, booking.Pattern)
	}
	return dates
}

// advance applies one step of the pattern. A non-positive interval is treated
// as one so the expansion can never stall.
func advance(current time.Time, p models.RecurringPattern) time.Time {
	interval := p.Interval
	if interval < 1 {
		interval = 1
	}

	switch p.Type {
	case models.RecurWeekly:
		allowed := make(map[time.Weekday]struct{}, len(p.DaysOfWeek))
		for _, d := range p.DaysOfWeek {
			if d >= 0 && d <= 6 {
				allowed[time.Weekday(d)] = struct{}{}
			}
		}
		if len(allowed) > 0 {
			// Walk day by day to the next selected weekday. This intentionally
			// ignores the interval: "every other week on Mon/Wed" collapses to
			// every Mon/Wed, matching the shipped behavior the UI depends on.
			next := current.AddDate(0, 0, 1)
			for {
				if _, ok := allowed[next.Weekday()]; ok {
					return next
				}
				next = next.AddDate(0, 0, 1)
			}
		}
		// No usable weekdays: step whole weeks from the same weekday.
		return current.AddDate(0, 0, 7*interval)

	case models.RecurMonthly:
		next := current.AddDate(0, interval, 0)
		if p.DayOfMonth != nil {
			// Pin the day of month after advancing. No clamping for short
			// months: day 31 in February normalizes into early March.
			next = time.Date(next.Year(), next.Month(), *p.DayOfMonth,
				current.Hour(), current.Minute(), 0, 0, current.Location())
		}
		return next

	default:
		// daily, custom, and anything unrecognized step by interval days.
		return current.AddDate(0, 0, interval)
	}
}
