package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/weekgrid/internal/api"
	"github.com/alexanderramin/weekgrid/internal/domain"
	"github.com/alexanderramin/weekgrid/internal/store"
	"github.com/alexanderramin/weekgrid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogFixture(client *fakeClient) (LogService, *store.Store, *store.UndoSlot) {
	st := store.New()
	undo := &store.UndoSlot{}
	return NewLogService(client, st, undo, "cli", "weekgrid"), st, undo
}

func workInput() LogInput {
	return LogInput{
		Interval:   domain.TimeInterval{Start: testutil.At(9, 0), End: testutil.At(10, 0)},
		CategoryID: "cat_work",
		Category:   "Work",
		Title:      "Deep work",
	}
}

func TestCommitOptimistic_RendersImmediately(t *testing.T) {
	svc, st, _ := newLogFixture(&fakeClient{})

	entry := svc.CommitOptimistic(workInput())

	assert.True(t, entry.Unconfirmed)
	assert.True(t, st.HasOptimistic())
	require.Len(t, st.Logged(), 1)
	assert.Equal(t, "Deep work", st.Logged()[0].Title)
}

func TestCreate_SendsRequest(t *testing.T) {
	client := &fakeClient{}
	svc, _, undo := newLogFixture(client)

	id, err := svc.Create(context.Background(), workInput())
	require.NoError(t, err)
	assert.Equal(t, "entry_1", id)

	require.Len(t, client.quickCalls, 1)
	req := client.quickCalls[0]
	assert.Equal(t, "cat_work", req.CategoryID)
	assert.Equal(t, "cli", req.Device)
	assert.Equal(t, "weekgrid", req.Source)
	require.NotNil(t, req.StartAt)
	assert.True(t, req.StartAt.Equal(testutil.At(9, 0)))
	assert.NotNil(t, req.Tags, "tags serialize as an empty list, not null")

	assert.True(t, undo.Empty(), "the slot is armed separately, on the event loop")
}

func TestRecordCreate_ArmsUndo(t *testing.T) {
	svc, _, undo := newLogFixture(&fakeClient{})

	svc.RecordCreate("entry_1")

	action, ok := undo.Pop()
	require.True(t, ok)
	assert.Equal(t, store.UndoCreate, action.Kind)
	assert.Equal(t, "entry_1", action.CommittedID)
}

func TestCreate_FailureLeavesUndoEmpty(t *testing.T) {
	client := &fakeClient{quickErr: errors.New("boom")}
	svc, _, undo := newLogFixture(client)

	_, err := svc.Create(context.Background(), workInput())
	assert.Error(t, err)
	assert.True(t, undo.Empty())
}

func TestUpdate_AppliesLocallyAndClearsUndo(t *testing.T) {
	client := &fakeClient{}
	svc, st, undo := newLogFixture(client)

	entry := testutil.NewLoggedItem("Old title", testutil.At(9, 0), testutil.At(10, 0))
	st.ApplyRefresh(nil, []domain.CalendarItem{entry})
	undo.Push(store.UndoAction{Kind: store.UndoCreate, CommittedID: "stale"})

	title := "New title"
	err := svc.Update(context.Background(), entry.ID, api.UpdateEntryRequest{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "New title", st.Logged()[0].Title, "edit renders before the refresh")
	assert.True(t, undo.Empty(), "edits invalidate the undo slot")
	require.Len(t, client.updateCalls, 1)
	assert.Equal(t, entry.ID, client.updateCalls[0].ID)
}

func TestDelete_SnapshotsForUndo(t *testing.T) {
	client := &fakeClient{}
	svc, st, undo := newLogFixture(client)

	entry := testutil.NewLoggedItem("Gym", testutil.At(18, 0), testutil.At(19, 0),
		testutil.WithCategoryID("cat_exercise"))
	st.ApplyRefresh(nil, []domain.CalendarItem{entry})

	require.NoError(t, svc.Delete(context.Background(), entry.ID))

	assert.Empty(t, st.Logged(), "removed locally ahead of the refresh")
	assert.Equal(t, []string{entry.ID}, client.deleteCalls)

	action, ok := undo.Pop()
	require.True(t, ok)
	assert.Equal(t, store.UndoDelete, action.Kind)
	assert.Equal(t, "Gym", action.Snapshot.Title)
	assert.Equal(t, "cat_exercise", action.Snapshot.CategoryID)
}

func TestDelete_ServerErrorPropagates(t *testing.T) {
	client := &fakeClient{deleteErr: api.ErrNotFound}
	svc, st, undo := newLogFixture(client)

	entry := testutil.NewLoggedItem("Gym", testutil.At(18, 0), testutil.At(19, 0))
	st.ApplyRefresh(nil, []domain.CalendarItem{entry})

	err := svc.Delete(context.Background(), entry.ID)
	assert.ErrorIs(t, err, api.ErrNotFound)
	assert.True(t, undo.Empty(), "failed delete records no undo")
}

func TestUndo_OfCreateDeletesCommittedEntry(t *testing.T) {
	client := &fakeClient{}
	svc, st, _ := newLogFixture(client)

	id, err := svc.Create(context.Background(), workInput())
	require.NoError(t, err)
	svc.RecordCreate(id)
	st.ApplyRefresh(nil, []domain.CalendarItem{
		testutil.NewLoggedItem("Deep work", testutil.At(9, 0), testutil.At(10, 0), testutil.WithID(id)),
	})

	action, ok := svc.TakeUndo()
	require.True(t, ok)
	assert.Empty(t, st.Logged(), "the committed entry drops locally before the request")

	summary, err := svc.PerformUndo(context.Background(), action)
	require.NoError(t, err)
	assert.NotEmpty(t, summary)
	assert.Equal(t, []string{id}, client.deleteCalls, "undo issues a DELETE for the committed ID")

	// Second consecutive undo: the slot is empty.
	_, ok = svc.TakeUndo()
	assert.False(t, ok)
}

func TestUndo_OfDeleteRecreatesFromSnapshot(t *testing.T) {
	client := &fakeClient{}
	svc, st, _ := newLogFixture(client)

	entry := testutil.NewLoggedItem("Gym", testutil.At(18, 0), testutil.At(19, 0),
		testutil.WithCategoryID("cat_exercise"))
	st.ApplyRefresh(nil, []domain.CalendarItem{entry})
	require.NoError(t, svc.Delete(context.Background(), entry.ID))

	action, ok := svc.TakeUndo()
	require.True(t, ok)
	summary, err := svc.PerformUndo(context.Background(), action)
	require.NoError(t, err)
	assert.Contains(t, summary, "Gym")

	require.Len(t, client.quickCalls, 1)
	req := client.quickCalls[0]
	assert.Equal(t, "cat_exercise", req.CategoryID)
	assert.Equal(t, "Gym", req.Title)
	require.NotNil(t, req.StartAt)
	assert.True(t, req.StartAt.Equal(testutil.At(18, 0)), "recreated with the original times, new ID")
}

func TestUndo_FailureStillConsumesAction(t *testing.T) {
	client := &fakeClient{}
	svc, _, undo := newLogFixture(client)

	id, err := svc.Create(context.Background(), workInput())
	require.NoError(t, err)
	svc.RecordCreate(id)

	action, ok := svc.TakeUndo()
	require.True(t, ok)

	client.deleteErr = errors.New("boom")
	_, err = svc.PerformUndo(context.Background(), action)
	assert.Error(t, err)
	assert.True(t, undo.Empty(), "consumed either way, no retry")
}

func TestCategoryService_List(t *testing.T) {
	client := &fakeClient{categories: []api.CategoryRecord{
		testutil.NewCategoryRecord("cat_work", "Work"),
	}}
	svc := NewCategoryService(client)

	cats, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Work", cats[0].Name)
}
