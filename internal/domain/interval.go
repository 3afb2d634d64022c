package domain

import "time"

// TimeInterval is a half-open time range [Start, End).
// A valid interval always has End strictly after Start.
type TimeInterval struct {
	Start time.Time
	End   time.Time
}

// Duration returns End − Start. Non-positive for degenerate intervals.
func (iv TimeInterval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// IsValid reports whether the interval has positive duration.
func (iv TimeInterval) IsValid() bool {
	return iv.End.After(iv.Start)
}

// Overlaps reports whether two intervals share any time.
// Touching endpoints (a.End == b.Start) do not overlap.
func (iv TimeInterval) Overlaps(other TimeInterval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// OverlapDuration returns the length of the shared portion of two
// intervals, or zero when they do not overlap.
func (iv TimeInterval) OverlapDuration(other TimeInterval) time.Duration {
	start := iv.Start
	if other.Start.After(start) {
		start = other.Start
	}
	end := iv.End
	if other.End.Before(end) {
		end = other.End
	}
	if !end.After(start) {
		return 0
	}
	return end.Sub(start)
}

// allDayMinDuration marks events that span essentially a whole day.
const allDayMinDuration = 23 * time.Hour

// midnightSlack is how close to a local midnight an endpoint may fall
// for the interval to still count as all-day.
const midnightSlack = time.Hour

// IsAllDay reports whether the interval should be treated as an all-day
// event in the given location: either it lasts 23h or more, or it starts
// within an hour after a local midnight and ends within an hour of the
// following midnight.
func (iv TimeInterval) IsAllDay(loc *time.Location) bool {
	if iv.Duration() >= allDayMinDuration {
		return true
	}
	start := iv.Start.In(loc)
	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	if start.Sub(dayStart) > midnightSlack {
		return false
	}
	nextMidnight := dayStart.AddDate(0, 0, 1)
	gap := nextMidnight.Sub(iv.End.In(loc))
	if gap < 0 {
		gap = -gap
	}
	return gap <= midnightSlack
}
