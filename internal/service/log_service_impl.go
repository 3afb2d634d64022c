package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/weekgrid/internal/api"
	"github.com/alexanderramin/weekgrid/internal/domain"
	"github.com/alexanderramin/weekgrid/internal/store"
)

type logService struct {
	client api.Client
	store  *store.Store
	undo   *store.UndoSlot
	device string
	source string
}

// NewLogService creates a LogService mutating the given store and undo
// slot. device and source tag created entries (e.g. "cli", "weekgrid").
func NewLogService(client api.Client, st *store.Store, undo *store.UndoSlot, device, source string) LogService {
	return &logService{
		client: client,
		store:  st,
		undo:   undo,
		device: device,
		source: source,
	}
}

func (s *logService) CommitOptimistic(in LogInput) domain.CalendarItem {
	return s.store.Commit(domain.CalendarItem{
		Interval:       in.Interval,
		Title:          in.Title,
		Category:       in.Category,
		CategoryID:     in.CategoryID,
		Tags:           in.Tags,
		PlannedEventID: in.PlannedEventID,
	})
}

func (s *logService) Create(ctx context.Context, in LogInput) (string, error) {
	start := in.Interval.Start
	end := in.Interval.End
	entry, err := s.client.QuickLog(ctx, api.QuickLogRequest{
		CategoryID:     in.CategoryID,
		Title:          in.Title,
		Tags:           tagsOrEmpty(in.Tags),
		Device:         s.device,
		Source:         s.source,
		StartAt:        &start,
		EndAt:          &end,
		PlannedEventID: in.PlannedEventID,
	})
	if err != nil {
		return "", err
	}
	return entry.ID, nil
}

// RecordCreate arms the undo slot once a create has committed. Any new
// mutation replaces whatever the slot held.
func (s *logService) RecordCreate(committedID string) {
	s.undo.Push(store.UndoAction{Kind: store.UndoCreate, CommittedID: committedID})
}

func (s *logService) Update(ctx context.Context, id string, req api.UpdateEntryRequest) error {
	s.store.ApplyEdit(id, func(it *domain.CalendarItem) {
		if req.Title != nil {
			it.Title = *req.Title
		}
		if req.CategoryID != nil {
			it.CategoryID = *req.CategoryID
		}
		if req.StartAt != nil {
			it.Interval.Start = *req.StartAt
		}
		if req.EndAt != nil {
			it.Interval.End = *req.EndAt
		}
	})
	// Edits are not undoable; they still invalidate the slot.
	s.undo.Clear()
	return s.client.UpdateEntry(ctx, id, req)
}

func (s *logService) Delete(ctx context.Context, id string) error {
	removed, found := s.store.RemoveLocal(id)
	if err := s.client.DeleteEntry(ctx, id); err != nil {
		return err
	}
	if found {
		s.undo.Push(store.UndoAction{Kind: store.UndoDelete, Snapshot: removed.Snapshot()})
	} else {
		s.undo.Clear()
	}
	return nil
}

// TakeUndo consumes the slot and applies the local half of the reversal
// ahead of the network call in PerformUndo.
func (s *logService) TakeUndo() (store.UndoAction, bool) {
	action, ok := s.undo.Pop()
	if !ok {
		return store.UndoAction{}, false
	}
	if action.Kind == store.UndoCreate {
		s.store.RemoveLocal(action.CommittedID)
	}
	return action, true
}

// PerformUndo touches no local state. The action is consumed either way:
// a failed reversal leaves the system in whatever state the request
// produced, with no compensation.
func (s *logService) PerformUndo(ctx context.Context, action store.UndoAction) (string, error) {
	switch action.Kind {
	case store.UndoCreate:
		if err := s.client.DeleteEntry(ctx, action.CommittedID); err != nil {
			return "", fmt.Errorf("undoing create: %w", err)
		}
		return "removed last logged entry", nil

	case store.UndoDelete:
		snap := action.Snapshot
		start := snap.Interval.Start
		end := snap.Interval.End
		_, err := s.client.QuickLog(ctx, api.QuickLogRequest{
			CategoryID: snap.CategoryID,
			Title:      snap.Title,
			Tags:       tagsOrEmpty(snap.Tags),
			Device:     s.device,
			Source:     s.source,
			StartAt:    &start,
			EndAt:      &end,
		})
		if err != nil {
			return "", fmt.Errorf("undoing delete: %w", err)
		}
		return fmt.Sprintf("restored %q (%s–%s)",
			entryLabel(snap),
			start.Local().Format("15:04"),
			end.Local().Format("15:04")), nil

	default:
		return "", fmt.Errorf("unknown undo action %q", action.Kind)
	}
}

func entryLabel(snap domain.LoggedEntrySnapshot) string {
	if snap.Title != "" {
		return snap.Title
	}
	return snap.Category
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

// NewCategoryService creates a CategoryService over the API client.
func NewCategoryService(client api.Client) CategoryService {
	return &categoryService{client: client}
}

type categoryService struct {
	client api.Client
}

func (s *categoryService) List(ctx context.Context) ([]api.CategoryRecord, error) {
	return s.client.Categories(ctx)
}
