package recurring

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"fleetly/models"
)

const summaryDateLayout = "Jan 2, 2006"

// Summary produces the one-line description shown next to a configured
// recurring booking.
func Summary(booking models.RecurringBooking) string {
	dates := GenerateDates(booking)
	if len(dates) == 0 {
		return "No dates generated for this pattern"
	}
	return fmt.Sprintf("%d occurrences from %s to %s",
		len(dates),
		dates[0].Format(summaryDateLayout),
		dates[len(dates)-1].Format(summaryDateLayout))
}

// ExportSchedule renders the generated series as CSV for download. Each row
// carries the occurrence date, its start time of day, the end time after
// adding the booking duration, the duration in hours, and the booking type.
func ExportSchedule(booking models.RecurringBooking) (string, error) {
	dates := GenerateDates(booking)

	var sb strings.Builder
	w := csv.NewWriter(&sb)

	header := []string{"Date", "Start Time", "End Time", "Duration (hours)", "Booking Type"}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("failed to write export header: %w", err)
	}

	for _, d := range dates {
		end := d.Add(time.Duration(booking.DurationHours) * time.Hour)
		row := []string{
			d.Format("2006-01-02"),
			d.Format("15:04"),
			end.Format("15:04"),
			strconv.Itoa(booking.DurationHours),
			string(booking.BookingType),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write export row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush export: %w", err)
	}
	return sb.String(), nil
}
