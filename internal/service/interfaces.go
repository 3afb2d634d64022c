package service

import (
	"context"
	"time"

	"github.com/alexanderramin/weekgrid/internal/api"
	"github.com/alexanderramin/weekgrid/internal/domain"
	"github.com/alexanderramin/weekgrid/internal/store"
)

// WeekData is one fetched week, already normalized for rendering:
// superseded planned events are hidden, all-day items are pulled out of
// the timed pool, and every remaining item fits within a single local day.
type WeekData struct {
	StartDay time.Time // local midnight of the first day
	Days     int
	Location *time.Location

	Planned []domain.CalendarItem
	Logged  []domain.CalendarItem

	// AllDay items render once, in the first day column they touch, in a
	// separate strip. They never enter the overlap layout.
	AllDay []domain.CalendarItem
}

// DayStart returns the local midnight of day index i.
func (w *WeekData) DayStart(i int) time.Time {
	return w.StartDay.AddDate(0, 0, i)
}

// ItemsForDay returns the timed items intersecting day index i, merged
// into one pool so planned and logged blocks never visually collide.
func (w *WeekData) ItemsForDay(i int) []domain.CalendarItem {
	dayIv := domain.TimeInterval{Start: w.DayStart(i), End: w.DayStart(i + 1)}
	var out []domain.CalendarItem
	for _, it := range w.Planned {
		if it.Interval.Overlaps(dayIv) {
			out = append(out, it)
		}
	}
	for _, it := range w.Logged {
		if it.Interval.Overlaps(dayIv) {
			out = append(out, it)
		}
	}
	return out
}

type TimelineService interface {
	// BuildWeek fetches and merges the planned and logged lists for a
	// local date range starting at startDay.
	BuildWeek(ctx context.Context, startDay time.Time, days int) (*WeekData, error)
}

type CategoryService interface {
	List(ctx context.Context) ([]api.CategoryRecord, error)
}

// LogInput carries everything needed to create one logged entry.
type LogInput struct {
	Interval       domain.TimeInterval
	CategoryID     string
	Category       string
	Title          string
	Tags           []string
	PlannedEventID string
}

// LogService orchestrates entry mutations over the store, the undo slot,
// and the API client. Methods that touch local state (CommitOptimistic,
// RecordCreate, TakeUndo, Update, Delete) belong on the UI event loop;
// Create and PerformUndo are pure network I/O and may run on command
// goroutines.
type LogService interface {
	// CommitOptimistic synchronously inserts a speculative entry into the
	// rendered set. The network create is issued separately via Create.
	CommitOptimistic(in LogInput) domain.CalendarItem

	// Create issues the backing request for a committed entry and returns
	// the authoritative server ID. It touches no local state; record the
	// ID with RecordCreate once the result lands back on the event loop.
	Create(ctx context.Context, in LogInput) (string, error)

	// RecordCreate arms the undo slot with a committed create.
	RecordCreate(committedID string)

	// Update patches an existing entry, applying the new values locally
	// first so they render before the confirming refresh.
	Update(ctx context.Context, id string, req api.UpdateEntryRequest) error

	// Delete removes an entry, snapshotting it for undo.
	Delete(ctx context.Context, id string) error

	// TakeUndo consumes the undo slot and applies the local half of the
	// reversal: undoing a create drops the committed entry from the
	// rendered set. It reports false when there is nothing to undo.
	TakeUndo() (store.UndoAction, bool)

	// PerformUndo issues the reversing request for a consumed action: a
	// DELETE for a create, a recreate from the snapshot for a delete. The
	// action stays consumed when the request fails.
	PerformUndo(ctx context.Context, action store.UndoAction) (string, error)
}
