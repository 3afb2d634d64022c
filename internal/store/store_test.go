package store

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/weekgrid/internal/domain"
	"github.com/alexanderramin/weekgrid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommit_InsertsUnconfirmedEntry(t *testing.T) {
	s := New()

	entry := s.Commit(domain.CalendarItem{
		Title:    "Deep work",
		Category: "Work",
		Interval: domain.TimeInterval{Start: testutil.At(9, 0), End: testutil.At(10, 0)},
	})

	assert.True(t, entry.Unconfirmed)
	assert.Equal(t, domain.KindLogged, entry.Kind)
	assert.True(t, strings.HasPrefix(entry.ID, "tmp_"), "placeholder ID, never a server one")

	require.Len(t, s.Logged(), 1)
	assert.True(t, s.HasOptimistic())
}

func TestCommit_KeepsCallerProvidedID(t *testing.T) {
	s := New()
	entry := s.Commit(testutil.NewLoggedItem("x", testutil.At(9, 0), testutil.At(10, 0), testutil.WithID("tmp_fixed")))
	assert.Equal(t, "tmp_fixed", entry.ID)
}

func TestApplyRefresh_DropsAllOptimisticEntries(t *testing.T) {
	s := New()
	s.Commit(testutil.NewLoggedItem("pending", testutil.At(9, 0), testutil.At(10, 0)))

	confirmed := testutil.NewLoggedItem("confirmed", testutil.At(9, 0), testutil.At(10, 0))
	planned := testutil.NewPlannedItem("meeting", testutil.At(11, 0), testutil.At(12, 0))
	s.ApplyRefresh([]domain.CalendarItem{planned}, []domain.CalendarItem{confirmed})

	require.Len(t, s.Logged(), 1)
	assert.Equal(t, "confirmed", s.Logged()[0].Title)
	assert.False(t, s.HasOptimistic(), "refresh is a full replace, success or failure alike")
	require.Len(t, s.Planned(), 1)
}

func TestApplyRefresh_CopiesSnapshotSlices(t *testing.T) {
	s := New()
	logged := []domain.CalendarItem{testutil.NewLoggedItem("a", testutil.At(9, 0), testutil.At(10, 0))}
	s.ApplyRefresh(nil, logged)

	logged[0].Title = "mutated"
	assert.Equal(t, "a", s.Logged()[0].Title, "store must not alias the caller's slice")
}

func TestApplyEdit_MutatesConfirmedAndOptimistic(t *testing.T) {
	s := New()
	confirmed := testutil.NewLoggedItem("a", testutil.At(9, 0), testutil.At(10, 0))
	s.ApplyRefresh(nil, []domain.CalendarItem{confirmed})
	pending := s.Commit(testutil.NewLoggedItem("b", testutil.At(10, 0), testutil.At(11, 0)))

	assert.True(t, s.ApplyEdit(confirmed.ID, func(it *domain.CalendarItem) { it.Title = "edited" }))
	assert.True(t, s.ApplyEdit(pending.ID, func(it *domain.CalendarItem) { it.Title = "edited too" }))
	assert.False(t, s.ApplyEdit("missing", func(it *domain.CalendarItem) { t.Fatal("must not be called") }))

	titles := []string{s.Logged()[0].Title, s.Logged()[1].Title}
	assert.ElementsMatch(t, []string{"edited", "edited too"}, titles)
}

func TestRemoveLocal_ReturnsRemovedEntry(t *testing.T) {
	s := New()
	entry := testutil.NewLoggedItem("gone", testutil.At(9, 0), testutil.At(10, 0))
	s.ApplyRefresh(nil, []domain.CalendarItem{entry})

	removed, ok := s.RemoveLocal(entry.ID)
	require.True(t, ok)
	assert.Equal(t, "gone", removed.Title)
	assert.Empty(t, s.Logged())

	_, ok = s.RemoveLocal(entry.ID)
	assert.False(t, ok, "second removal finds nothing")
}

func TestItems_MergesAllPools(t *testing.T) {
	s := New()
	s.ApplyRefresh(
		[]domain.CalendarItem{testutil.NewPlannedItem("p", testutil.At(9, 0), testutil.At(10, 0))},
		[]domain.CalendarItem{testutil.NewLoggedItem("l", testutil.At(10, 0), testutil.At(11, 0))},
	)
	s.Commit(testutil.NewLoggedItem("o", testutil.At(11, 0), testutil.At(12, 0)))

	assert.Len(t, s.Items(), 3)
}

func TestNewOptimisticID_Format(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	id := NewOptimisticID(now)

	assert.True(t, strings.HasPrefix(id, "tmp_1772452800000_"), id)
	parts := strings.SplitN(id, "_", 3)
	require.Len(t, parts, 3)
	assert.Len(t, parts[2], 8, "uuid prefix suffix")
}
