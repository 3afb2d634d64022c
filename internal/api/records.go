package api

import "time"

// PlannedEventRecord is one externally sourced calendar event, already
// normalized by the server (native companions upsert into it through a
// separate sync endpoint; the client never sees raw calendar data).
type PlannedEventRecord struct {
	ID                string    `json:"id"`
	Day               string    `json:"day"` // local date YYYY-MM-DD
	Title             string    `json:"title"`
	StartAt           time.Time `json:"start_at"`
	EndAt             time.Time `json:"end_at"`
	SuggestedCategory string    `json:"suggested_category,omitempty"`
}

// LoggedEntryRecord is one recorded time entry. Entries spanning local
// midnight arrive pre-split into per-day segments sharing the same ID.
type LoggedEntryRecord struct {
	ID             string    `json:"id"`
	Day            string    `json:"day"`
	Title          string    `json:"title"`
	CategoryID     string    `json:"category_id"`
	CategoryName   string    `json:"category_name"`
	Tags           []string  `json:"tags"`
	Source         string    `json:"source"`
	Device         string    `json:"device"`
	PlannedEventID string    `json:"planned_event_id,omitempty"`
	StartAt        time.Time `json:"start_at"`
	EndAt          time.Time `json:"end_at"`
}

// QuickLogRequest creates one logged entry. Nil StartAt anchors the entry
// at the server's last logged boundary; nil EndAt means now. When
// PlannedEventID is set the created log supersedes the planned item in
// rendering only — the event itself is not deleted server-side.
type QuickLogRequest struct {
	CategoryID     string     `json:"category_id"`
	Title          string     `json:"title"`
	Tags           []string   `json:"tags"`
	Device         string     `json:"device"`
	Source         string     `json:"source"`
	StartAt        *time.Time `json:"start_at,omitempty"`
	EndAt          *time.Time `json:"end_at,omitempty"`
	PlannedEventID string     `json:"planned_event_id,omitempty"`
}

// TimeEntry is the server's representation of a created or updated entry.
type TimeEntry struct {
	ID           string    `json:"id"`
	StartAt      time.Time `json:"start_at"`
	EndAt        time.Time `json:"end_at"`
	Title        string    `json:"title"`
	CategoryID   string    `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Tags         []string  `json:"tags"`
	Source       string    `json:"source"`
	Device       string    `json:"device"`
}

// UpdateEntryRequest patches an existing entry; nil fields are untouched.
type UpdateEntryRequest struct {
	Title      *string    `json:"title,omitempty"`
	CategoryID *string    `json:"category_id,omitempty"`
	StartAt    *time.Time `json:"start_at,omitempty"`
	EndAt      *time.Time `json:"end_at,omitempty"`
}

// CategoryRecord is one selectable logging category.
type CategoryRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}
