package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/weekgrid/internal/api"
	"github.com/alexanderramin/weekgrid/internal/domain"
)

// supersedeOverlapRatio is how much of a planned event's duration must be
// covered by a logged entry for the log to visually replace it.
const supersedeOverlapRatio = 0.5

type timelineService struct {
	client         api.Client
	loc            *time.Location
	includeGoogle  bool
	includeOutlook bool
}

// NewTimelineService creates a TimelineService fetching from the given
// client. loc is the user's timezone; day boundaries follow it.
func NewTimelineService(client api.Client, loc *time.Location, includeGoogle, includeOutlook bool) TimelineService {
	return &timelineService{
		client:         client,
		loc:            loc,
		includeGoogle:  includeGoogle,
		includeOutlook: includeOutlook,
	}
}

func (s *timelineService) BuildWeek(ctx context.Context, startDay time.Time, days int) (*WeekData, error) {
	if days < 1 || days > 31 {
		return nil, fmt.Errorf("days must be between 1 and 31, got %d", days)
	}
	startDay = time.Date(startDay.Year(), startDay.Month(), startDay.Day(), 0, 0, 0, 0, s.loc)
	dayArg := startDay.Format("2006-01-02")

	plannedRecs, err := s.client.PlannedEventsRange(ctx, dayArg, days, s.includeGoogle, s.includeOutlook)
	if err != nil {
		return nil, fmt.Errorf("fetching planned events: %w", err)
	}
	loggedRecs, err := s.client.TimeEntriesRange(ctx, dayArg, days)
	if err != nil {
		return nil, fmt.Errorf("fetching time entries: %w", err)
	}

	logged := make([]domain.CalendarItem, 0, len(loggedRecs))
	for _, rec := range loggedRecs {
		logged = append(logged, itemFromLogged(rec))
	}

	week := &WeekData{
		StartDay: startDay,
		Days:     days,
		Location: s.loc,
		Logged:   logged,
	}

	// Planned events already claimed by a categorized log show at most one
	// block: the categorized one. All-day events go to the strip instead
	// of the overlap layout.
	for _, rec := range plannedRecs {
		item := itemFromPlanned(rec)
		if !item.Interval.IsValid() {
			continue
		}
		if supersededByLog(item, logged) {
			continue
		}
		if item.Interval.IsAllDay(s.loc) {
			week.AllDay = append(week.AllDay, item)
			continue
		}
		week.Planned = append(week.Planned, item)
	}

	return week, nil
}

// supersededByLog reports whether a planned event is visually replaced by
// a logged entry: an explicit planned_event_id claim, or a log covering at
// least half of the event's duration.
func supersededByLog(planned domain.CalendarItem, logged []domain.CalendarItem) bool {
	dur := planned.Interval.Duration()
	for _, entry := range logged {
		if entry.PlannedEventID != "" && entry.PlannedEventID == planned.ID {
			return true
		}
		if dur <= 0 {
			continue
		}
		overlap := planned.Interval.OverlapDuration(entry.Interval)
		if float64(overlap) >= supersedeOverlapRatio*float64(dur) {
			return true
		}
	}
	return false
}
