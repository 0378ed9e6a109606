package models

// BookingType is the granularity of a reservation request. Each type carries
// its own valid duration range.
type BookingType string

const (
	BookingHourly BookingType = "hourly"
	BookingDaily  BookingType = "daily"
	BookingWeekly BookingType = "weekly"
	BookingCustom BookingType = "custom"
)

// DurationBounds holds the valid duration range, in hours, for a booking type.
type DurationBounds struct {
	MinHours int `json:"minHours"`
	MaxHours int `json:"maxHours"`
}

// bookingTypeBounds is the static duration table. It is never mutated.
var bookingTypeBounds = map[BookingType]DurationBounds{
	BookingHourly: {MinHours: 1, MaxHours: 23},
	BookingDaily:  {MinHours: 24, MaxHours: 168},
	BookingWeekly: {MinHours: 168, MaxHours: 720},
	BookingCustom: {MinHours: 1, MaxHours: 8760},
}

// durationPresets lists the duration choices offered per booking type, in
// hours. The UI renders these as quick-pick buttons.
var durationPresets = map[BookingType][]int{
	BookingHourly: {1, 2, 3, 4, 6, 8, 12},
	BookingDaily:  {24, 48, 72, 96, 120, 144, 168},
	BookingWeekly: {168, 336, 504, 720},
	BookingCustom: {1, 12, 24, 72, 168, 336, 720},
}

// IsValid reports whether bt is one of the four supported booking types.
func (bt BookingType) IsValid() bool {
	_, ok := bookingTypeBounds[bt]
	return ok
}

// Bounds returns the valid duration range for the booking type. Unknown types
// fall back to the custom bounds so callers always get a usable range.
func (bt BookingType) Bounds() DurationBounds {
	if b, ok := bookingTypeBounds[bt]; ok {
		return b
	}
	return bookingTypeBounds[BookingCustom]
}

// MinDurationHours is the shortest duration allowed for the booking type.
func (bt BookingType) MinDurationHours() int {
	return bt.Bounds().MinHours
}

// MaxDurationHours is the longest duration allowed for the booking type.
func (bt BookingType) MaxDurationHours() int {
	return bt.Bounds().MaxHours
}

// ContainsDuration reports whether hours is within the booking type's bounds.
func (bt BookingType) ContainsDuration(hours int) bool {
	b := bt.Bounds()
	return hours >= b.MinHours && hours <= b.MaxHours
}

// DurationPresets returns the duration quick-picks for the booking type.
// The returned slice is a copy; callers may reorder it freely.
func (bt BookingType) DurationPresets() []int {
	src, ok := durationPresets[bt]
	if !ok {
		src = durationPresets[BookingCustom]
	}
	out := make([]int, len(src))
	copy(out, src)
	return out
}
