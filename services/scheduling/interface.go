package scheduling

import (
	"context"
	"time"

	"fleetly/models"
)

// AvailabilityProvider supplies the committed slots for a vehicle over a date
// range. Implementations live outside the engine (the default one is the
// mongo-backed repository); the engine never mutates what they return.
type AvailabilityProvider interface {
	GetUnavailableSlots(ctx context.Context, vehicleID string, start, end time.Time, bookingType models.BookingType) ([]models.UnavailableSlot, error)
}

// BookingConsumer receives the engine's outbound notifications: a selection
// snapshot on every completed transition, and booking-type changes. Both are
// fire-and-forget; the engine expects no reply and performs no other outbound
// calls.
type BookingConsumer interface {
	SelectionCompleted(sel models.DateSelection)
	BookingTypeChanged(bt models.BookingType)
}
