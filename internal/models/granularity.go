package models

import (
	"fmt"
	"strings"
	"time"
)

// Granularity is the bucket size used when building a gap-filled time series.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// ParseGranularity validates a granularity name strictly.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(strings.ToLower(strings.TrimSpace(s))) {
	case GranularityDay:
		return GranularityDay, nil
	case GranularityWeek:
		return GranularityWeek, nil
	case GranularityMonth:
		return GranularityMonth, nil
	default:
		return "", fmt.Errorf("invalid granularity %q: must be one of day, week, month", s)
	}
}

// PeriodStart maps a timestamp to the start of its period in UTC. Weeks are
// ISO weeks: Monday is day 0.
func (g Granularity) PeriodStart(t time.Time) time.Time {
	utc := t.UTC()
	day := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)

	switch g {
	case GranularityDay:
		return day
	case GranularityWeek:
		return day.AddDate(0, 0, -((int(day.Weekday()) + 6) % 7))
	case GranularityMonth:
		return time.Date(utc.Year(), utc.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		panic(fmt.Sprintf("invalid Granularity: %q", g))
	}
}

// NextPeriod returns the start of the period following the one starting at t.
// t must already be a period start.
func (g Granularity) NextPeriod(t time.Time) time.Time {
	switch g {
	case GranularityDay:
		return t.AddDate(0, 0, 1)
	case GranularityWeek:
		return t.AddDate(0, 0, 7)
	case GranularityMonth:
		return t.AddDate(0, 1, 0)
	default:
		panic(fmt.Sprintf("invalid Granularity: %q", g))
	}
}

// Label formats a period start as the series label: day 2006-01-02,
// week ISO year and week number, month 2006-01.
func (g Granularity) Label(t time.Time) string {
	utc := t.UTC()
	switch g {
	case GranularityDay:
		return utc.Format("2006-01-02")
	case GranularityWeek:
		year, week := utc.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case GranularityMonth:
		return utc.Format("2006-01")
	default:
		panic(fmt.Sprintf("invalid Granularity: %q", g))
	}
}
