package testutil

import (
	"time"

	"github.com/alexanderramin/weekgrid/internal/api"
	"github.com/alexanderramin/weekgrid/internal/domain"
	"github.com/google/uuid"
)

// Day returns local midnight of 2026-03-02 (a Monday) plus a day offset.
// Most tests anchor their intervals here so clock math stays readable.
func Day(offset int) time.Time {
	base := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	return base.AddDate(0, 0, offset)
}

// At returns a clock time on Day(0).
func At(hour, min int) time.Time {
	return Day(0).Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

// CalendarItem options
type ItemOption func(*domain.CalendarItem)

func WithKind(k domain.ItemKind) ItemOption {
	return func(it *domain.CalendarItem) {
		it.Kind = k
	}
}

func WithCategory(name string) ItemOption {
	return func(it *domain.CalendarItem) {
		it.Category = name
	}
}

func WithCategoryID(id string) ItemOption {
	return func(it *domain.CalendarItem) {
		it.CategoryID = id
	}
}

func WithPlannedEventID(id string) ItemOption {
	return func(it *domain.CalendarItem) {
		it.PlannedEventID = id
	}
}

func WithUnconfirmed() ItemOption {
	return func(it *domain.CalendarItem) {
		it.Unconfirmed = true
	}
}

func WithID(id string) ItemOption {
	return func(it *domain.CalendarItem) {
		it.ID = id
	}
}

// NewLoggedItem builds a logged entry spanning [start, end).
func NewLoggedItem(title string, start, end time.Time, opts ...ItemOption) domain.CalendarItem {
	it := domain.CalendarItem{
		ID:       uuid.New().String(),
		Kind:     domain.KindLogged,
		Interval: domain.TimeInterval{Start: start, End: end},
		Title:    title,
		Category: "Work",
	}
	for _, opt := range opts {
		opt(&it)
	}
	return it
}

// NewPlannedItem builds a planned event spanning [start, end).
func NewPlannedItem(title string, start, end time.Time, opts ...ItemOption) domain.CalendarItem {
	it := domain.CalendarItem{
		ID:       uuid.New().String(),
		Kind:     domain.KindPlanned,
		Interval: domain.TimeInterval{Start: start, End: end},
		Title:    title,
		Category: "Work",
	}
	for _, opt := range opts {
		opt(&it)
	}
	return it
}

// Record options
type PlannedRecordOption func(*api.PlannedEventRecord)

func WithSuggestedCategory(name string) PlannedRecordOption {
	return func(r *api.PlannedEventRecord) {
		r.SuggestedCategory = name
	}
}

// NewPlannedRecord builds a wire-format planned event.
func NewPlannedRecord(title string, start, end time.Time, opts ...PlannedRecordOption) api.PlannedEventRecord {
	r := api.PlannedEventRecord{
		ID:      uuid.New().String(),
		Day:     start.Format("2006-01-02"),
		Title:   title,
		StartAt: start,
		EndAt:   end,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

type LoggedRecordOption func(*api.LoggedEntryRecord)

func WithLoggedRecordCategory(id, name string) LoggedRecordOption {
	return func(r *api.LoggedEntryRecord) {
		r.CategoryID = id
		r.CategoryName = name
	}
}

func WithLoggedRecordPlannedEvent(id string) LoggedRecordOption {
	return func(r *api.LoggedEntryRecord) {
		r.PlannedEventID = id
	}
}

// NewLoggedRecord builds a wire-format logged entry.
func NewLoggedRecord(title string, start, end time.Time, opts ...LoggedRecordOption) api.LoggedEntryRecord {
	r := api.LoggedEntryRecord{
		ID:           uuid.New().String(),
		Day:          start.Format("2006-01-02"),
		Title:        title,
		CategoryID:   "cat_work",
		CategoryName: "Work",
		StartAt:      start,
		EndAt:        end,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// NewCategoryRecord builds a selectable category.
func NewCategoryRecord(id, name string) api.CategoryRecord {
	return api.CategoryRecord{ID: id, Name: name}
}
