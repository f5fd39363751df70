package models

import (
	"fmt"
	"strings"
)

// Window is a named relative time range used to filter orders before
// aggregation.
type Window string

const (
	WindowToday   Window = "today"
	WindowWeek    Window = "week"
	WindowMonth   Window = "month"
	WindowYear    Window = "year"
	WindowAllTime Window = "alltime"
)

// AllWindows lists the windows in the order summaries report them.
func AllWindows() []Window {
	return []Window{WindowToday, WindowWeek, WindowMonth, WindowYear, WindowAllTime}
}

// ParseWindow validates a window name strictly. The error message lists the
// allowed values so callers can surface it to clients as-is.
func ParseWindow(s string) (Window, error) {
	switch Window(strings.ToLower(strings.TrimSpace(s))) {
	case WindowToday:
		return WindowToday, nil
	case WindowWeek:
		return WindowWeek, nil
	case WindowMonth:
		return WindowMonth, nil
	case WindowYear:
		return WindowYear, nil
	case WindowAllTime:
		return WindowAllTime, nil
	default:
		return "", fmt.Errorf("invalid window %q: must be one of today, week, month, year, alltime", s)
	}
}
