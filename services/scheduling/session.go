package scheduling

import (
	"context"
	"time"

	"fleetly/models"
	"fleetly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SchedulingSession ties the calendar grid, availability cache and selection
// machine together for one vehicle. A session is created when the renter
// opens the booking calendar and replaced wholesale when they switch
// vehicles, so no availability state ever leaks between vehicles.
type SchedulingSession struct {
	id        string
	vehicleID string
	provider  AvailabilityProvider
	consumer  BookingConsumer
	fallback  []time.Time

	cache   *AvailabilityCache
	machine *SelectionMachine
}

// SessionOptions collects the optional knobs for NewSchedulingSession.
type SessionOptions struct {
	// InitialBookingType defaults to daily when unset.
	InitialBookingType models.BookingType
	// FallbackDisabledDates answers IsDateDisabled for months whose
	// availability has not loaded yet.
	FallbackDisabledDates []time.Time
}

// NewSchedulingSession constructs a session for one vehicle.
func NewSchedulingSession(provider AvailabilityProvider, consumer BookingConsumer, vehicleID string, opts SessionOptions) (*SchedulingSession, error) {
	if provider == nil {
		return nil, NewSchedulingError("availability provider is required")
	}
	if vehicleID == "" {
		return nil, NewSchedulingError("vehicleID is required")
	}

	bt := opts.InitialBookingType
	if !bt.IsValid() {
		bt = models.BookingDaily
	}

	s := &SchedulingSession{
		id:        uuid.New().String(),
		vehicleID: vehicleID,
		provider:  provider,
		consumer:  consumer,
		fallback:  opts.FallbackDisabledDates,
	}
	s.cache = NewAvailabilityCache(provider, vehicleID)
	s.machine = NewSelectionMachine(s.cache, consumer, bt, opts.FallbackDisabledDates)

	utils.GetLogger().Debug("scheduling session started",
		zap.String("sessionID", s.id), zap.String("vehicleID", vehicleID))
	return s, nil
}

// ID returns the session identifier.
func (s *SchedulingSession) ID() string { return s.id }

// VehicleID returns the vehicle this session schedules for.
func (s *SchedulingSession) VehicleID() string { return s.vehicleID }

// Machine exposes the selection state machine.
func (s *SchedulingSession) Machine() *SelectionMachine { return s.machine }

// Cache exposes the availability cache for read-only queries by the renderer.
func (s *SchedulingSession) Cache() *AvailabilityCache { return s.cache }

// Grid builds the month grid for the given reference month.
func (s *SchedulingSession) Grid(month time.Time) []models.CalendarDay {
	return BuildCalendarGrid(month)
}

// LoadMonth lazily populates day-level availability for a month.
func (s *SchedulingSession) LoadMonth(ctx context.Context, month time.Time) {
	s.cache.EnsureMonthLoaded(ctx, month)
}

// LoadHours lazily populates hour-level availability for a date.
func (s *SchedulingSession) LoadHours(ctx context.Context, date time.Time) {
	s.cache.EnsureHoursLoaded(ctx, date)
}

// Click forwards a calendar cell interaction to the state machine.
func (s *SchedulingSession) Click(date time.Time) {
	s.machine.ClickDate(date)
}

// IsDateDisabled answers for the renderer, applying the session's fallback
// list while a month load is still pending.
func (s *SchedulingSession) IsDateDisabled(date time.Time) bool {
	return s.cache.IsDateDisabled(date, s.fallback)
}

// IsHourDisabled answers hour-level availability for the renderer.
func (s *SchedulingSession) IsHourDisabled(date time.Time, hour int) bool {
	return s.cache.IsHourDisabled(date, hour)
}

// SetVehicle switches the session to another vehicle. The cache and all
// selection state are discarded; the booking type survives the switch.
func (s *SchedulingSession) SetVehicle(vehicleID string) error {
	if vehicleID == "" {
		return NewSchedulingError("vehicleID is required")
	}
	if vehicleID == s.vehicleID {
		return nil
	}
	bt := s.machine.BookingType()
	s.vehicleID = vehicleID
	s.cache = NewAvailabilityCache(s.provider, vehicleID)
	s.machine = NewSelectionMachine(s.cache, s.consumer, bt, s.fallback)

	utils.GetLogger().Debug("scheduling session switched vehicle",
		zap.String("sessionID", s.id), zap.String("vehicleID", vehicleID))
	return nil
}

// Reset clears the current selection without touching cached availability.
func (s *SchedulingSession) Reset() {
	s.machine.Reset()
}
