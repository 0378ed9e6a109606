package recurring

import "fleetly/models"

// ValidatePattern returns the list of rule violations found in a pattern.
// An empty list means the pattern is clean. Validation is advisory only:
// GenerateDates still runs on a non-valid pattern, and the caller decides
// whether to block, warn, or proceed.
func ValidatePattern(p models.RecurringPattern) []string {
	var violations []string

	if p.Interval < 1 {
		violations = append(violations, "interval must be at least 1")
	}
	if p.Type == models.RecurWeekly && p.DaysOfWeek != nil && len(p.DaysOfWeek) == 0 {
		violations = append(violations, "weekly patterns must specify at least one day of the week")
	}
	if p.Type == models.RecurMonthly && p.DayOfMonth != nil && (*p.DayOfMonth < 1 || *p.DayOfMonth > 31) {
		violations = append(violations, "day of month must be between 1 and 31")
	}
	if p.Occurrences != nil && *p.Occurrences < 1 {
		violations = append(violations, "occurrences must be at least 1")
	}
	if p.EndDate != nil && p.Occurrences != nil {
		violations = append(violations, "end date and occurrence count cannot both be set")
	}
	return violations
}
