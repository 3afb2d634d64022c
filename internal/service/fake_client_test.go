package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/weekgrid/internal/api"
)

// fakeClient is an in-memory api.Client with scriptable failures.
type fakeClient struct {
	planned    []api.PlannedEventRecord
	logged     []api.LoggedEntryRecord
	categories []api.CategoryRecord

	plannedErr error
	loggedErr  error
	quickErr   error
	deleteErr  error

	quickCalls  []api.QuickLogRequest
	updateCalls []struct {
		ID  string
		Req api.UpdateEntryRequest
	}
	deleteCalls []string

	nextID int
}

func (f *fakeClient) PlannedEventsRange(ctx context.Context, startDay string, days int, includeGoogle, includeOutlook bool) ([]api.PlannedEventRecord, error) {
	if f.plannedErr != nil {
		return nil, f.plannedErr
	}
	return f.planned, nil
}

func (f *fakeClient) TimeEntriesRange(ctx context.Context, startDay string, days int) ([]api.LoggedEntryRecord, error) {
	if f.loggedErr != nil {
		return nil, f.loggedErr
	}
	return f.logged, nil
}

func (f *fakeClient) QuickLog(ctx context.Context, req api.QuickLogRequest) (*api.TimeEntry, error) {
	if f.quickErr != nil {
		return nil, f.quickErr
	}
	f.quickCalls = append(f.quickCalls, req)
	f.nextID++
	entry := &api.TimeEntry{
		ID:         fmt.Sprintf("entry_%d", f.nextID),
		Title:      req.Title,
		CategoryID: req.CategoryID,
	}
	if req.StartAt != nil {
		entry.StartAt = *req.StartAt
	}
	if req.EndAt != nil {
		entry.EndAt = *req.EndAt
	}
	return entry, nil
}

func (f *fakeClient) UpdateEntry(ctx context.Context, id string, req api.UpdateEntryRequest) error {
	f.updateCalls = append(f.updateCalls, struct {
		ID  string
		Req api.UpdateEntryRequest
	}{id, req})
	return nil
}

func (f *fakeClient) DeleteEntry(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleteCalls = append(f.deleteCalls, id)
	return nil
}

func (f *fakeClient) Categories(ctx context.Context) ([]api.CategoryRecord, error) {
	return f.categories, nil
}

func (f *fakeClient) Available(ctx context.Context) bool {
	return true
}
