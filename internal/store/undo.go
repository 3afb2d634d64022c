package store

import "github.com/alexanderramin/weekgrid/internal/domain"

// UndoKind tags the two reversible mutations.
type UndoKind string

const (
	UndoCreate UndoKind = "create"
	UndoDelete UndoKind = "delete"
)

// UndoAction records the last create or delete.
//
// Undoing a create deletes the committed ID. Undoing a delete recreates
// the entry from the snapshot — the recreated entry receives a new server
// ID, so a second undo cannot restore the original identity. That is a
// known, accepted limitation.
type UndoAction struct {
	Kind UndoKind

	// CommittedID is set for UndoCreate: the authoritative server ID.
	CommittedID string

	// Snapshot is set for UndoDelete.
	Snapshot domain.LoggedEntrySnapshot
}

// UndoSlot holds at most one action. Any new mutating action overwrites
// it; performing an undo consumes it either way, even on failure.
type UndoSlot struct {
	action *UndoAction
}

// Push records an action, replacing whatever was held before.
func (u *UndoSlot) Push(a UndoAction) {
	copied := a
	u.action = &copied
}

// Pop consumes and returns the held action.
func (u *UndoSlot) Pop() (UndoAction, bool) {
	if u.action == nil {
		return UndoAction{}, false
	}
	a := *u.action
	u.action = nil
	return a, true
}

// Clear empties the slot.
func (u *UndoSlot) Clear() {
	u.action = nil
}

// Empty reports whether there is nothing to undo.
func (u *UndoSlot) Empty() bool {
	return u.action == nil
}
