package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/weekgrid/internal/api"
	"github.com/alexanderramin/weekgrid/internal/domain"
	"github.com/alexanderramin/weekgrid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildWeek(t *testing.T, client *fakeClient) *WeekData {
	t.Helper()
	svc := NewTimelineService(client, time.Local, true, true)
	week, err := svc.BuildWeek(context.Background(), testutil.Day(0), 7)
	require.NoError(t, err)
	return week
}

func TestBuildWeek_MapsRecordsToItems(t *testing.T) {
	client := &fakeClient{
		planned: []api.PlannedEventRecord{
			testutil.NewPlannedRecord("Standup", testutil.At(9, 0), testutil.At(9, 30),
				testutil.WithSuggestedCategory("Work")),
		},
		logged: []api.LoggedEntryRecord{
			testutil.NewLoggedRecord("Deep work", testutil.At(10, 0), testutil.At(12, 0)),
		},
	}

	week := buildWeek(t, client)

	require.Len(t, week.Planned, 1)
	assert.Equal(t, domain.KindPlanned, week.Planned[0].Kind)
	assert.Equal(t, "Work", week.Planned[0].Category, "suggested category drives color")

	require.Len(t, week.Logged, 1)
	assert.Equal(t, domain.KindLogged, week.Logged[0].Kind)
	assert.Equal(t, "Work", week.Logged[0].Category)
}

func TestBuildWeek_SupersededByExplicitClaim(t *testing.T) {
	planned := testutil.NewPlannedRecord("Gym class", testutil.At(18, 0), testutil.At(19, 0))
	client := &fakeClient{
		planned: []api.PlannedEventRecord{planned},
		logged: []api.LoggedEntryRecord{
			// The log barely touches the event but claims it explicitly.
			testutil.NewLoggedRecord("Gym", testutil.At(18, 50), testutil.At(19, 5),
				testutil.WithLoggedRecordPlannedEvent(planned.ID)),
		},
	}

	week := buildWeek(t, client)
	assert.Empty(t, week.Planned, "claimed event shows only its categorized log")
	assert.Len(t, week.Logged, 1)
}

func TestBuildWeek_SupersededByMajorityOverlap(t *testing.T) {
	client := &fakeClient{
		planned: []api.PlannedEventRecord{
			testutil.NewPlannedRecord("Focus block", testutil.At(9, 0), testutil.At(11, 0)),
		},
		logged: []api.LoggedEntryRecord{
			// Exactly half the event's duration: at the threshold, hidden.
			testutil.NewLoggedRecord("Deep work", testutil.At(9, 0), testutil.At(10, 0)),
		},
	}

	week := buildWeek(t, client)
	assert.Empty(t, week.Planned)
}

func TestBuildWeek_MinorOverlapKeepsPlanned(t *testing.T) {
	client := &fakeClient{
		planned: []api.PlannedEventRecord{
			testutil.NewPlannedRecord("Focus block", testutil.At(9, 0), testutil.At(11, 0)),
		},
		logged: []api.LoggedEntryRecord{
			testutil.NewLoggedRecord("Email", testutil.At(9, 0), testutil.At(9, 30)),
		},
	}

	week := buildWeek(t, client)
	assert.Len(t, week.Planned, 1, "a quarter of the duration does not supersede")
}

func TestBuildWeek_AllDayExtracted(t *testing.T) {
	client := &fakeClient{
		planned: []api.PlannedEventRecord{
			testutil.NewPlannedRecord("Conference", testutil.Day(1), testutil.Day(2)),
			testutil.NewPlannedRecord("Standup", testutil.At(9, 0), testutil.At(9, 30)),
		},
	}

	week := buildWeek(t, client)
	require.Len(t, week.AllDay, 1)
	assert.Equal(t, "Conference", week.AllDay[0].Title)
	require.Len(t, week.Planned, 1)
	assert.Equal(t, "Standup", week.Planned[0].Title)
}

func TestBuildWeek_DropsDegeneratePlanned(t *testing.T) {
	client := &fakeClient{
		planned: []api.PlannedEventRecord{
			testutil.NewPlannedRecord("Broken", testutil.At(10, 0), testutil.At(10, 0)),
		},
	}

	week := buildWeek(t, client)
	assert.Empty(t, week.Planned)
	assert.Empty(t, week.AllDay)
}

func TestBuildWeek_ValidatesDayCount(t *testing.T) {
	svc := NewTimelineService(&fakeClient{}, time.Local, true, true)

	_, err := svc.BuildWeek(context.Background(), testutil.Day(0), 0)
	assert.Error(t, err)
	_, err = svc.BuildWeek(context.Background(), testutil.Day(0), 32)
	assert.Error(t, err)
}

func TestBuildWeek_PropagatesFetchErrors(t *testing.T) {
	boom := errors.New("boom")

	svc := NewTimelineService(&fakeClient{plannedErr: boom}, time.Local, true, true)
	_, err := svc.BuildWeek(context.Background(), testutil.Day(0), 7)
	assert.ErrorIs(t, err, boom)

	svc = NewTimelineService(&fakeClient{loggedErr: boom}, time.Local, true, true)
	_, err = svc.BuildWeek(context.Background(), testutil.Day(0), 7)
	assert.ErrorIs(t, err, boom)
}

func TestWeekData_ItemsForDay(t *testing.T) {
	week := &WeekData{
		StartDay: testutil.Day(0),
		Days:     7,
		Location: time.Local,
		Planned: []domain.CalendarItem{
			testutil.NewPlannedItem("day0", testutil.At(9, 0), testutil.At(10, 0)),
		},
		Logged: []domain.CalendarItem{
			testutil.NewLoggedItem("day1", testutil.Day(1).Add(9*time.Hour), testutil.Day(1).Add(10*time.Hour)),
			// Midnight-spanning segment, belongs to both day 0 and day 1.
			testutil.NewLoggedItem("overnight", testutil.At(23, 0), testutil.Day(1).Add(time.Hour)),
		},
	}

	day0 := week.ItemsForDay(0)
	require.Len(t, day0, 2)

	day1 := week.ItemsForDay(1)
	require.Len(t, day1, 2)

	assert.Equal(t, testutil.Day(1), week.DayStart(1))
}
