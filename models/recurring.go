package models

import "time"

// RecurrenceType selects the step function used when expanding a pattern.
type RecurrenceType string

const (
	RecurDaily   RecurrenceType = "daily"
	RecurWeekly  RecurrenceType = "weekly"
	RecurMonthly RecurrenceType = "monthly"
	RecurCustom  RecurrenceType = "custom"
)

// RecurringPattern describes how a booking repeats.
//
// DaysOfWeek uses 0 for Sunday through 6 for Saturday and only applies to
// weekly patterns. DayOfMonth only applies to monthly patterns. EndDate and
// Occurrences bound the expansion and are mutually exclusive; a nil pointer
// means unset.
type RecurringPattern struct {
	Type        RecurrenceType `json:"type"`
	Interval    int            `json:"interval"`
	DaysOfWeek  []int          `json:"daysOfWeek,omitempty"`
	DayOfMonth  *int           `json:"dayOfMonth,omitempty"`
	EndDate     *time.Time     `json:"endDate,omitempty"`
	Occurrences *int           `json:"occurrences,omitempty"`
}

// RecurringBooking is the input envelope for series generation: a pattern
// plus the overall date window and the per-occurrence duration.
type RecurringBooking struct {
	Pattern       RecurringPattern `json:"pattern"`
	StartDate     time.Time        `json:"startDate"`
	EndDate       time.Time        `json:"endDate"`
	DurationHours int              `json:"durationHours"`
	BookingType   BookingType      `json:"bookingType"`
}
