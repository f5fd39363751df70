// Package periods maps named windows to concrete time bounds.
package periods

import (
	"time"

	"payout-analytics/internal/models"
)

// Resolve computes the inclusive lower bound for the given window relative to
// now, in UTC. It returns nil for the alltime window: callers must skip
// filtering entirely rather than compare against some dawn-of-time bound.
//
// Filtering semantics are order_date >= bound.
func Resolve(now time.Time, window models.Window) *time.Time {
	utc := now.UTC()
	dayStart := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)

	var bound time.Time
	switch window {
	case models.WindowToday:
		bound = dayStart
	case models.WindowWeek:
		// ISO week: Monday is day 0.
		bound = dayStart.AddDate(0, 0, -((int(dayStart.Weekday()) + 6) % 7))
	case models.WindowMonth:
		bound = time.Date(utc.Year(), utc.Month(), 1, 0, 0, 0, 0, time.UTC)
	case models.WindowYear:
		bound = time.Date(utc.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	default: // models.WindowAllTime
		return nil
	}
	return &bound
}
