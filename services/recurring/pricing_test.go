package recurring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDiscountMultiplierTiers(t *testing.T) {
	cases := []struct {
		count int
		want  float64
	}{
		{1, 1.0},
		{6, 1.0},
		{7, 0.95},
		{13, 0.95},
		{14, 0.90},
		{29, 0.90},
		{30, 0.85},
		{100, 0.85},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DiscountMultiplier(tc.count), "count %d", tc.count)
	}
}

func TestCalculatePriceFixtures(t *testing.T) {
	// Daily series of exactly N occurrences, base price 100.
	cases := []struct {
		days int
		want float64
	}{
		{7, 665},
		{6, 600},
		{30, 2550},
	}
	for _, tc := range cases {
		booking := dailyBooking(
			date(2024, time.January, 1),
			date(2024, time.January, tc.days),
			1,
		)
		assert.InDelta(t, tc.want, CalculatePrice(100, booking), 1e-9, "%d days", tc.days)
	}
}

func TestCalculatePriceEmptySeries(t *testing.T) {
	// End before start generates nothing and costs nothing.
	booking := dailyBooking(date(2024, time.February, 1), date(2024, time.January, 1), 1)
	assert.Zero(t, CalculatePrice(100, booking))
}
