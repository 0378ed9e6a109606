package scheduling

import (
	"time"

	"fleetly/models"
)

type selectionPhase int

const (
	phaseIdle selectionPhase = iota
	phaseAnchorSet
	phaseComplete
)

// selectionState is a tagged value: anchor is only meaningful in
// phaseAnchorSet, start/end only in phaseComplete. Keeping the phases
// explicit makes a half-set range unrepresentable.
type selectionState struct {
	phase  selectionPhase
	anchor time.Time
	start  time.Time
	end    time.Time
}

// SelectionMachine tracks the renter's in-progress date selection for one
// vehicle. It consults the availability cache to ignore clicks on disabled
// cells and pushes a DateSelection snapshot to the consumer on every
// completed transition. All methods are synchronous.
type SelectionMachine struct {
	cache    *AvailabilityCache
	consumer BookingConsumer
	fallback []time.Time

	bookingType   models.BookingType
	durationHours int
	startMinute   *int
	endMinute     *int

	state         selectionState
	selectedWeeks map[string]struct{}
	selectedDays  map[string]struct{}
}

// NewSelectionMachine starts a machine in the idle state with the given
// booking type active. fallbackDisabled is the static disabled-date list used
// before a month's availability has loaded; nil is fine.
func NewSelectionMachine(cache *AvailabilityCache, consumer BookingConsumer, bt models.BookingType, fallbackDisabled []time.Time) *SelectionMachine {
	return &SelectionMachine{
		cache:         cache,
		consumer:      consumer,
		fallback:      fallbackDisabled,
		bookingType:   bt,
		durationHours: bt.MinDurationHours(),
		selectedWeeks: make(map[string]struct{}),
		selectedDays:  make(map[string]struct{}),
	}
}

// BookingType returns the active booking type.
func (m *SelectionMachine) BookingType() models.BookingType {
	return m.bookingType
}

// DurationHours returns the current duration choice.
func (m *SelectionMachine) DurationHours() int {
	return m.durationHours
}

// SetBookingType switches granularity. Any change clears all selection state
// and resets the duration to the new type's minimum; the consumer is
// notified. Setting the already-active type is a no-op.
func (m *SelectionMachine) SetBookingType(bt models.BookingType) {
	if bt == m.bookingType {
		return
	}
	m.bookingType = bt
	m.clearSelection()
	m.durationHours = bt.MinDurationHours()
	if m.consumer != nil {
		m.consumer.BookingTypeChanged(bt)
	}
}

// Reset returns the machine to idle, clearing every selection set and
// restoring the active type's minimum duration.
func (m *SelectionMachine) Reset() {
	m.clearSelection()
	m.durationHours = m.bookingType.MinDurationHours()
}

func (m *SelectionMachine) clearSelection() {
	m.state = selectionState{phase: phaseIdle}
	m.selectedWeeks = make(map[string]struct{})
	m.selectedDays = make(map[string]struct{})
	m.startMinute = nil
	m.endMinute = nil
}

// ClickDate is the single entry point for calendar cell interaction. Clicks
// on disabled cells are ignored entirely: no transition, no emission.
func (m *SelectionMachine) ClickDate(date time.Time) {
	day := dateOnly(date)
	if m.cache != nil && m.cache.IsDateDisabled(day, m.fallback) {
		return
	}

	if m.bookingType == models.BookingWeekly {
		m.toggleWeek(day)
		return
	}

	switch m.state.phase {
	case phaseAnchorSet:
		start, end := m.state.anchor, day
		if end.Before(start) {
			start, end = end, start
		}
		m.state = selectionState{phase: phaseComplete, start: start, end: end}
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			m.selectedDays[dayKey(d)] = struct{}{}
		}
		m.emit()
	default:
		// Idle, or a fresh range after a completed one.
		m.selectedDays = make(map[string]struct{})
		m.state = selectionState{phase: phaseAnchorSet, anchor: day}
	}
}

// toggleWeek implements the single-click weekly protocol: the click snaps to
// the surrounding Sunday-to-Saturday week and toggles that week's membership.
// Selecting a week is a completed transition and emits; deselecting only
// updates the set, falling back to idle when no weeks remain.
func (m *SelectionMachine) toggleWeek(day time.Time) {
	weekStart := StartOfWeek(day)
	key := dayKey(weekStart)

	if _, ok := m.selectedWeeks[key]; ok {
		delete(m.selectedWeeks, key)
		if len(m.selectedWeeks) == 0 {
			m.state = selectionState{phase: phaseIdle}
		}
		return
	}

	m.selectedWeeks[key] = struct{}{}
	m.state = selectionState{
		phase: phaseComplete,
		start: weekStart,
		end:   weekStart.AddDate(0, 0, 6),
	}
	m.emit()
}

// SetTimeRange records explicit start/end time picks in minutes from
// midnight and derives the duration from them: whole hours rounded up, never
// below one.
func (m *SelectionMachine) SetTimeRange(startMinute, endMinute int) {
	s, e := startMinute, endMinute
	m.startMinute = &s
	m.endMinute = &e
	m.durationHours = DurationFromMinutes(startMinute, endMinute)
}

// SetDurationPreset applies a manually chosen duration. The value is taken as
// given; validating it against the booking type's bounds is the caller's job.
func (m *SelectionMachine) SetDurationPreset(hours int) {
	m.durationHours = hours
}

// HasCompleteSelection reports whether a full range is currently selected.
func (m *SelectionMachine) HasCompleteSelection() bool {
	return m.state.phase == phaseComplete
}

// Selection returns the current completed selection, if any.
func (m *SelectionMachine) Selection() (models.DateSelection, bool) {
	if m.state.phase != phaseComplete {
		return models.DateSelection{}, false
	}
	return m.snapshot(), true
}

// IsWeekSelected reports whether the week containing date is selected.
func (m *SelectionMachine) IsWeekSelected(date time.Time) bool {
	_, ok := m.selectedWeeks[dayKey(StartOfWeek(date))]
	return ok
}

// IsDaySelected reports whether date is in the discrete selected-days set.
func (m *SelectionMachine) IsDaySelected(date time.Time) bool {
	_, ok := m.selectedDays[dayKey(dateOnly(date))]
	return ok
}

// SelectedWeekCount returns how many weeks are toggled on.
func (m *SelectionMachine) SelectedWeekCount() int {
	return len(m.selectedWeeks)
}

func (m *SelectionMachine) snapshot() models.DateSelection {
	sel := models.DateSelection{
		StartDate:     m.state.start,
		EndDate:       m.state.end,
		DurationHours: m.durationHours,
		BookingType:   m.bookingType,
	}
	if m.startMinute != nil {
		v := *m.startMinute
		sel.StartMinute = &v
	}
	if m.endMinute != nil {
		v := *m.endMinute
		sel.EndMinute = &v
	}
	return sel
}

func (m *SelectionMachine) emit() {
	if m.consumer == nil {
		return
	}
	m.consumer.SelectionCompleted(m.snapshot())
}

// DurationFromMinutes converts explicit time picks (minutes from midnight)
// into whole hours, rounding partial hours up. Malformed input, end at or
// before start, clamps to the one-hour minimum instead of erroring.
func DurationFromMinutes(startMinute, endMinute int) int {
	diff := endMinute - startMinute
	if diff <= 0 {
		return 1
	}
	hours := diff / 60
	if diff%60 != 0 {
		hours++
	}
	if hours < 1 {
		hours = 1
	}
	return hours
}
