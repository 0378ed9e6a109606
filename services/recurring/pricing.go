package recurring

import "fleetly/models"

// discountTiers are inclusive occurrence-count lower bounds, checked in
// descending order; the first match wins.
var discountTiers = []struct {
	minOccurrences int
	multiplier     float64
}{
	{30, 0.85},
	{14, 0.90},
	{7, 0.95},
}

// DiscountMultiplier returns the tier multiplier for an occurrence count.
// Counts below every tier pay full price.
func DiscountMultiplier(count int) float64 {
	for _, tier := range discountTiers {
		if count >= tier.minOccurrences {
			return tier.multiplier
		}
	}
	return 1.0
}

// CalculatePrice computes the total price for a recurring booking:
// basePrice per occurrence, times the tiered discount for the series length.
func CalculatePrice(basePrice float64, booking models.RecurringBooking) float64 {
	count := len(GenerateDates(booking))
	return basePrice * float64(count) * DiscountMultiplier(count)
}
