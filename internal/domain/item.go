package domain

import "strings"

type ItemKind string

const (
	// KindPlanned is a read-only, externally sourced calendar event
	// shown for context.
	KindPlanned ItemKind = "planned"

	// KindLogged is a user-confirmed time record, the canonical data.
	KindLogged ItemKind = "logged"
)

// OverflowID is the reserved item ID of the synthetic placeholder that
// stands in for items suppressed beyond the column cap.
const OverflowID = "_more"

// CalendarItem is an ephemeral view object rebuilt on every render pass.
// It is a tagged variant over the two item kinds; rendering and color
// logic must switch on Kind rather than sniffing field presence.
type CalendarItem struct {
	ID       string
	Kind     ItemKind
	Interval TimeInterval
	Title    string

	// Category is the display category name. It drives block color and
	// overlap priority (logged sleep sorts first).
	Category string

	// Planned-only fields.
	Summary           string
	SuggestedCategory string

	// Logged-only fields.
	CategoryID     string
	Tags           []string
	PlannedEventID string

	// Unconfirmed marks an optimistic entry that has not yet been
	// replaced by a server-confirmed one.
	Unconfirmed bool

	// Tooltip is only set on overflow placeholders and lists the
	// suppressed titles.
	Tooltip string
}

// IsOverflow reports whether the item is the synthetic overflow placeholder.
// Placeholders are never individually editable.
func (c CalendarItem) IsOverflow() bool {
	return c.ID == OverflowID
}

// SortPriority returns the overlap-layout tiebreak priority (lower sorts
// first). Logged sleep entries take the leftmost lanes so a night of sleep
// does not get pushed aside by short overlapping events.
func (c CalendarItem) SortPriority() int {
	if c.Kind == KindLogged && strings.EqualFold(c.Category, "sleep") {
		return 0
	}
	return 1
}

// LoggedEntrySnapshot holds enough of a logged entry to recreate an
// equivalent one after a delete. The recreated entry necessarily receives
// a new server ID.
type LoggedEntrySnapshot struct {
	Title      string
	CategoryID string
	Category   string
	Tags       []string
	Interval   TimeInterval
}

// Snapshot captures the fields needed to recreate a logged entry.
func (c CalendarItem) Snapshot() LoggedEntrySnapshot {
	tags := make([]string, len(c.Tags))
	copy(tags, c.Tags)
	return LoggedEntrySnapshot{
		Title:      c.Title,
		CategoryID: c.CategoryID,
		Category:   c.Category,
		Tags:       tags,
		Interval:   c.Interval,
	}
}
