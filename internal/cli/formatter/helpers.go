package formatter

import (
	"fmt"
	"time"
)

// FormatMinutes renders a minute count as "1h 30m", "45m", etc.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatClock renders a wall-clock time as "15:04".
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}

// FormatRange renders an interval as "09:00–10:30".
func FormatRange(start, end time.Time) string {
	return FormatClock(start) + "–" + FormatClock(end)
}

// DayHeading renders a day column heading as "Mon 12".
func DayHeading(t time.Time) string {
	return t.Format("Mon 2")
}

// HumanDate renders a date as "Mon, Jan 2".
func HumanDate(t time.Time) string {
	return t.Format("Mon, Jan 2")
}

// Truncate cuts s to at most n runes, appending an ellipsis when cut.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n <= 1 {
		if len(r) <= n {
			return s
		}
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
