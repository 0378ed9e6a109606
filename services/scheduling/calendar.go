package scheduling

import (
	"time"

	"fleetly/models"
)

// BuildCalendarGrid produces the day cells for a month view of the given
// reference month. The grid starts on the Sunday on or before the 1st and is
// extended one day at a time until the cell count is a multiple of seven and
// at least 42, so every month renders as a stable six-week block. Pure; the
// same reference month always yields the same grid.
func BuildCalendarGrid(month time.Time) []models.CalendarDay {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	start := first.AddDate(0, 0, -int(first.Weekday()))

	var cells []models.CalendarDay
	for d := start; len(cells) < 42 || len(cells)%7 != 0; d = d.AddDate(0, 0, 1) {
		cells = append(cells, models.CalendarDay{
			Date:           d,
			InCurrentMonth: d.Month() == first.Month() && d.Year() == first.Year(),
		})
	}
	return cells
}
