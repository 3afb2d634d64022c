package store

import (
	"testing"

	"github.com/alexanderramin/weekgrid/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndoSlot_HoldsAtMostOneAction(t *testing.T) {
	var slot UndoSlot
	assert.True(t, slot.Empty())

	slot.Push(UndoAction{Kind: UndoCreate, CommittedID: "e1"})
	slot.Push(UndoAction{Kind: UndoCreate, CommittedID: "e2"})

	action, ok := slot.Pop()
	require.True(t, ok)
	assert.Equal(t, "e2", action.CommittedID, "a new action overwrites the old one")
	assert.True(t, slot.Empty())
}

func TestUndoSlot_PopConsumes(t *testing.T) {
	var slot UndoSlot
	slot.Push(UndoAction{Kind: UndoCreate, CommittedID: "e1"})

	_, ok := slot.Pop()
	require.True(t, ok)

	_, ok = slot.Pop()
	assert.False(t, ok, "the slot holds one level of undo")
}

func TestUndoSlot_Clear(t *testing.T) {
	var slot UndoSlot
	slot.Push(UndoAction{Kind: UndoDelete, Snapshot: domain.LoggedEntrySnapshot{Title: "x"}})

	slot.Clear()
	assert.True(t, slot.Empty())
}

func TestUndoSlot_PushCopiesAction(t *testing.T) {
	var slot UndoSlot
	action := UndoAction{Kind: UndoCreate, CommittedID: "e1"}
	slot.Push(action)

	action.CommittedID = "mutated"
	held, ok := slot.Pop()
	require.True(t, ok)
	assert.Equal(t, "e1", held.CommittedID)
}
