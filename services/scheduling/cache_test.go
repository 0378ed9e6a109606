package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"fleetly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider is an in-memory AvailabilityProvider for tests.
type stubProvider struct {
	slots []models.UnavailableSlot
	err   error
	calls int
}

func (p *stubProvider) GetUnavailableSlots(_ context.Context, _ string, _, _ time.Time, _ models.BookingType) ([]models.UnavailableSlot, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.slots, nil
}

func fixedNow() time.Time {
	return time.Date(2024, time.January, 1, 8, 0, 0, 0, time.UTC)
}

func newTestCache(p *stubProvider) *AvailabilityCache {
	c := NewAvailabilityCache(p, "veh-1")
	c.now = fixedNow
	return c
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEnsureMonthLoadedDisablesSlotRanges(t *testing.T) {
	p := &stubProvider{slots: []models.UnavailableSlot{
		{VehicleID: "veh-1", StartDate: day(2024, time.January, 10), EndDate: day(2024, time.January, 12), Reason: models.SlotReserved, SlotType: models.BookingDaily},
		{VehicleID: "veh-1", StartDate: day(2024, time.January, 21), EndDate: day(2024, time.January, 27), Reason: models.SlotMaintenance, SlotType: models.BookingWeekly},
		// Hourly commitments must not black out whole days.
		{VehicleID: "veh-1", StartDate: time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC), EndDate: time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC), Reason: models.SlotReserved, SlotType: models.BookingHourly},
	}}
	c := newTestCache(p)

	c.EnsureMonthLoaded(context.Background(), day(2024, time.January, 1))

	for d := 10; d <= 12; d++ {
		assert.True(t, c.IsDateDisabled(day(2024, time.January, d), nil), "day %d", d)
	}
	for d := 21; d <= 27; d++ {
		assert.True(t, c.IsDateDisabled(day(2024, time.January, d), nil), "day %d", d)
	}
	assert.False(t, c.IsDateDisabled(day(2024, time.January, 13), nil))
	assert.False(t, c.IsDateDisabled(day(2024, time.January, 15), nil))
}

func TestEnsureMonthLoadedIdempotent(t *testing.T) {
	p := &stubProvider{}
	c := newTestCache(p)

	ctx := context.Background()
	c.EnsureMonthLoaded(ctx, day(2024, time.February, 1))
	c.EnsureMonthLoaded(ctx, day(2024, time.February, 14))

	assert.Equal(t, 1, p.calls)
}

func TestEnsureMonthLoadedFailOpen(t *testing.T) {
	p := &stubProvider{err: errors.New("availability store down")}
	c := newTestCache(p)

	ctx := context.Background()
	c.EnsureMonthLoaded(ctx, day(2024, time.March, 1))

	// Error is swallowed, the month reads as fully open, and the empty set
	// is cached so navigation does not retry on every query.
	assert.False(t, c.IsDateDisabled(day(2024, time.March, 15), nil))
	c.EnsureMonthLoaded(ctx, day(2024, time.March, 1))
	assert.Equal(t, 1, p.calls)
}

func TestIsDateDisabledPastDates(t *testing.T) {
	c := newTestCache(&stubProvider{})

	assert.True(t, c.IsDateDisabled(day(2023, time.December, 31), nil))
	assert.True(t, c.IsDateDisabled(day(2020, time.June, 1), nil))
	// Today itself is selectable regardless of the clock's time of day.
	assert.False(t, c.IsDateDisabled(day(2024, time.January, 1), nil))
}

func TestIsDateDisabledFallbackBeforeLoad(t *testing.T) {
	p := &stubProvider{}
	c := newTestCache(p)
	fallback := []time.Time{day(2024, time.April, 10)}

	// Month not loaded yet: the fallback list answers.
	assert.True(t, c.IsDateDisabled(day(2024, time.April, 10), fallback))
	assert.False(t, c.IsDateDisabled(day(2024, time.April, 11), fallback))

	// Once loaded, the cached set is authoritative and the fallback is ignored.
	c.EnsureMonthLoaded(context.Background(), day(2024, time.April, 1))
	assert.False(t, c.IsDateDisabled(day(2024, time.April, 10), fallback))
}

func TestEnsureHoursLoaded(t *testing.T) {
	p := &stubProvider{slots: []models.UnavailableSlot{
		{VehicleID: "veh-1", StartDate: time.Date(2024, time.January, 5, 9, 0, 0, 0, time.UTC), EndDate: time.Date(2024, time.January, 5, 12, 0, 0, 0, time.UTC), Reason: models.SlotReserved, SlotType: models.BookingHourly},
	}}
	c := newTestCache(p)

	target := day(2024, time.January, 5)
	// Unloaded day reads as fully available.
	assert.False(t, c.IsHourDisabled(target, 9))

	c.EnsureHoursLoaded(context.Background(), target)

	require.Equal(t, 1, p.calls)
	for h := 9; h < 12; h++ {
		assert.True(t, c.IsHourDisabled(target, h), "hour %d", h)
	}
	assert.False(t, c.IsHourDisabled(target, 8))
	assert.False(t, c.IsHourDisabled(target, 12))

	c.EnsureHoursLoaded(context.Background(), target)
	assert.Equal(t, 1, p.calls)
}
