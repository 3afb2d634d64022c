// Package store holds the single authoritative in-memory item lists the
// renderer and the mutation logic both read from. It is mutated only on
// the UI event loop; refreshes are full snapshot replaces, so an
// out-of-order response can only cause staleness, never corruption.
package store

import (
	"fmt"
	"time"

	"github.com/alexanderramin/weekgrid/internal/domain"
	"github.com/google/uuid"
)

// Store keeps the server-confirmed planned and logged lists plus any
// optimistic entries awaiting confirmation.
type Store struct {
	planned    []domain.CalendarItem
	logged     []domain.CalendarItem
	optimistic []domain.CalendarItem
}

func New() *Store {
	return &Store{}
}

// Commit synchronously inserts an optimistic entry so the user sees the
// result with no perceptible latency. The entry gets a locally generated
// placeholder ID and is flagged unconfirmed; it is never sent to the
// server with that ID.
func (s *Store) Commit(entry domain.CalendarItem) domain.CalendarItem {
	entry.Kind = domain.KindLogged
	if entry.ID == "" {
		entry.ID = NewOptimisticID(time.Now())
	}
	entry.Unconfirmed = true
	s.optimistic = append(s.optimistic, entry)
	return entry
}

// ApplyRefresh replaces both lists with a fresh server snapshot and drops
// every optimistic entry. Reconciliation is a full replace, not a merge:
// no ID matching is attempted, which also makes the rollback path on a
// failed create identical to the success path.
func (s *Store) ApplyRefresh(planned, logged []domain.CalendarItem) {
	s.planned = append(s.planned[:0:0], planned...)
	s.logged = append(s.logged[:0:0], logged...)
	s.optimistic = nil
}

// ApplyEdit updates a logged entry in place so the edited values render
// before the confirming refresh lands.
func (s *Store) ApplyEdit(id string, mutate func(*domain.CalendarItem)) bool {
	for i := range s.logged {
		if s.logged[i].ID == id {
			mutate(&s.logged[i])
			return true
		}
	}
	for i := range s.optimistic {
		if s.optimistic[i].ID == id {
			mutate(&s.optimistic[i])
			return true
		}
	}
	return false
}

// RemoveLocal drops an entry from the rendered set ahead of the
// confirming refresh. It returns the removed entry for snapshotting.
func (s *Store) RemoveLocal(id string) (domain.CalendarItem, bool) {
	for i, it := range s.logged {
		if it.ID == id {
			s.logged = append(s.logged[:i], s.logged[i+1:]...)
			return it, true
		}
	}
	for i, it := range s.optimistic {
		if it.ID == id {
			s.optimistic = append(s.optimistic[:i], s.optimistic[i+1:]...)
			return it, true
		}
	}
	return domain.CalendarItem{}, false
}

// Planned returns the current planned items.
func (s *Store) Planned() []domain.CalendarItem {
	return s.planned
}

// Logged returns the confirmed logged entries plus optimistic ones.
func (s *Store) Logged() []domain.CalendarItem {
	out := make([]domain.CalendarItem, 0, len(s.logged)+len(s.optimistic))
	out = append(out, s.logged...)
	out = append(out, s.optimistic...)
	return out
}

// Items returns the merged render pool: planned and logged together, so
// the combined layout call guarantees the two collections never collide.
func (s *Store) Items() []domain.CalendarItem {
	out := make([]domain.CalendarItem, 0, len(s.planned)+len(s.logged)+len(s.optimistic))
	out = append(out, s.planned...)
	out = append(out, s.logged...)
	out = append(out, s.optimistic...)
	return out
}

// HasOptimistic reports whether unconfirmed entries are being rendered.
func (s *Store) HasOptimistic() bool {
	return len(s.optimistic) > 0
}

// NewOptimisticID generates a timestamp-prefixed placeholder token for an
// optimistic entry.
func NewOptimisticID(now time.Time) string {
	return fmt.Sprintf("tmp_%d_%s", now.UnixMilli(), uuid.NewString()[:8])
}
