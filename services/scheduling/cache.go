package scheduling

import (
	"context"
	"sync"
	"time"

	"fleetly/models"
	"fleetly/utils"

	"go.uber.org/zap"
)

// AvailabilityCache is a per-vehicle memoized view over the availability
// provider. It keeps two keyed sets: disabled days per "YYYY-MM" month and
// disabled hours per "YYYY-MM-DD" day. Entries are populated lazily on first
// access and live for the session; a new cache is constructed whenever the
// renter switches vehicles.
//
// Loads are fail-open: if the provider errors, the key is cached as an empty
// set so availability problems never block calendar navigation.
type AvailabilityCache struct {
	provider  AvailabilityProvider
	vehicleID string
	now       func() time.Time

	mu            sync.Mutex
	disabledDays  map[string]map[string]struct{}
	disabledHours map[string]map[int]struct{}
	loadingMonths map[string]struct{}
	loadingDays   map[string]struct{}
}

// NewAvailabilityCache constructs an empty cache for one vehicle.
func NewAvailabilityCache(provider AvailabilityProvider, vehicleID string) *AvailabilityCache {
	return &AvailabilityCache{
		provider:      provider,
		vehicleID:     vehicleID,
		now:           time.Now,
		disabledDays:  make(map[string]map[string]struct{}),
		disabledHours: make(map[string]map[int]struct{}),
		loadingMonths: make(map[string]struct{}),
		loadingDays:   make(map[string]struct{}),
	}
}

// EnsureMonthLoaded populates the disabled-day set for the month containing
// ref. The provider is queried over the month padded by seven days on each
// side so slots overlapping the month edges are caught. Calling it again for
// a cached or in-flight month is a no-op.
func (c *AvailabilityCache) EnsureMonthLoaded(ctx context.Context, ref time.Time) {
	key := monthKey(ref)

	c.mu.Lock()
	if _, ok := c.disabledDays[key]; ok {
		c.mu.Unlock()
		return
	}
	if _, ok := c.loadingMonths[key]; ok {
		c.mu.Unlock()
		return
	}
	c.loadingMonths[key] = struct{}{}
	c.mu.Unlock()

	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	rangeStart := first.AddDate(0, 0, -7)
	rangeEnd := first.AddDate(0, 1, 7)

	days := make(map[string]struct{})
	slots, err := c.provider.GetUnavailableSlots(ctx, c.vehicleID, rangeStart, rangeEnd, models.BookingDaily)
	if err != nil {
		utils.GetLogger().Warn("availability month load failed, treating month as open",
			zap.String("vehicleID", c.vehicleID), zap.String("month", key), zap.Error(err))
	} else {
		for _, slot := range slots {
			if slot.SlotType != models.BookingDaily && slot.SlotType != models.BookingWeekly {
				continue
			}
			last := dateOnly(slot.EndDate)
			for d := dateOnly(slot.StartDate); !d.After(last); d = d.AddDate(0, 0, 1) {
				days[dayKey(d)] = struct{}{}
			}
		}
	}

	// Last write wins: a late result for an abandoned month simply replaces
	// nothing newer, since loads for one key never run concurrently.
	c.mu.Lock()
	c.disabledDays[key] = days
	delete(c.loadingMonths, key)
	c.mu.Unlock()
}

// EnsureHoursLoaded populates the disabled-hour set for a single date from
// the provider's hourly slots. Same memoization and fail-open rules as
// EnsureMonthLoaded.
func (c *AvailabilityCache) EnsureHoursLoaded(ctx context.Context, date time.Time) {
	key := dayKey(date)

	c.mu.Lock()
	if _, ok := c.disabledHours[key]; ok {
		c.mu.Unlock()
		return
	}
	if _, ok := c.loadingDays[key]; ok {
		c.mu.Unlock()
		return
	}
	c.loadingDays[key] = struct{}{}
	c.mu.Unlock()

	dayStart := dateOnly(date)
	dayEnd := dayStart.AddDate(0, 0, 1)

	hours := make(map[int]struct{})
	slots, err := c.provider.GetUnavailableSlots(ctx, c.vehicleID, dayStart, dayEnd, models.BookingHourly)
	if err != nil {
		utils.GetLogger().Warn("availability hour load failed, treating day as open",
			zap.String("vehicleID", c.vehicleID), zap.String("date", key), zap.Error(err))
	} else {
		for _, slot := range slots {
			if slot.SlotType != models.BookingHourly {
				continue
			}
			for h := slot.StartDate.Hour(); h < slot.EndDate.Hour(); h++ {
				hours[h] = struct{}{}
			}
		}
	}

	c.mu.Lock()
	c.disabledHours[key] = hours
	delete(c.loadingDays, key)
	c.mu.Unlock()
}

// IsDateDisabled reports whether a calendar day cannot be selected. Days
// strictly before today are always disabled. Once the day's month is loaded
// the cached set is authoritative; until then the caller-supplied fallback
// list answers, so the grid degrades gracefully while a load is in flight.
func (c *AvailabilityCache) IsDateDisabled(date time.Time, fallback []time.Time) bool {
	day := dateOnly(date)
	if day.Before(dateOnly(c.now())) {
		return true
	}

	c.mu.Lock()
	set, loaded := c.disabledDays[monthKey(day)]
	c.mu.Unlock()

	if loaded {
		_, disabled := set[dayKey(day)]
		return disabled
	}
	for _, f := range fallback {
		if dateOnly(f).Equal(day) {
			return true
		}
	}
	return false
}

// IsHourDisabled reports whether an hour of a day is committed. An unloaded
// day reads as fully available.
func (c *AvailabilityCache) IsHourDisabled(date time.Time, hour int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	set, ok := c.disabledHours[dayKey(date)]
	if !ok {
		return false
	}
	_, disabled := set[hour]
	return disabled
}
