package models

import "time"

// SlotReason explains why a slot is committed and cannot be booked.
type SlotReason string

const (
	SlotReserved    SlotReason = "reserved"
	SlotMaintenance SlotReason = "maintenance"
	SlotUnavailable SlotReason = "unavailable"
)

// UnavailableSlot is a contiguous interval already committed for a vehicle,
// as reported by the availability provider. The scheduling engine only reads
// these; it never creates or mutates them.
type UnavailableSlot struct {
	ID        string      `bson:"id" json:"id"`
	VehicleID string      `bson:"vehicleId" json:"vehicleId"`
	StartDate time.Time   `bson:"startDate" json:"startDate"`
	EndDate   time.Time   `bson:"endDate" json:"endDate"`
	Reason    SlotReason  `bson:"reason" json:"reason"`
	SlotType  BookingType `bson:"slotType" json:"slotType"`
}

// DateSelection is the snapshot emitted whenever a renter completes a range
// selection. StartMinute/EndMinute are minutes from midnight (e.g. 420 for
// 7:00 AM) and are only set for time-of-day aware bookings.
type DateSelection struct {
	StartDate     time.Time   `json:"startDate"`
	EndDate       time.Time   `json:"endDate"`
	StartMinute   *int        `json:"startMinute,omitempty"`
	EndMinute     *int        `json:"endMinute,omitempty"`
	DurationHours int         `json:"durationHours"`
	BookingType   BookingType `json:"bookingType"`
}

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	Date           time.Time `json:"date"`
	InCurrentMonth bool      `json:"inCurrentMonth"`
}
