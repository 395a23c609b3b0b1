package ui

import "github.com/piwi3910/DecoraPuertas/internal/model"

const defaultMaxDepth = 50

// Snapshot captures the placement and artwork choice at a point in time.
// Door dimensions are form input and are not part of the history.
type Snapshot struct {
	Placement model.PlacementState
	Artwork   model.ArtworkSelection
	Label     string // Human-readable description (e.g. "Escala")
}

// History manages undo/redo stacks of design snapshots.
type History struct {
	undoStack []Snapshot
	redoStack []Snapshot
	maxDepth  int
}

// NewHistory creates a History with the default max depth of 50.
func NewHistory() *History {
	return &History{
		maxDepth: defaultMaxDepth,
	}
}

// Push saves a snapshot onto the undo stack and clears the redo stack.
// This should be called before the modification is applied.
func (h *History) Push(s Snapshot) {
	h.undoStack = append(h.undoStack, s)
	if len(h.undoStack) > h.maxDepth {
		h.undoStack = h.undoStack[len(h.undoStack)-h.maxDepth:]
	}
	h.redoStack = nil
}

// Undo pops the most recent snapshot from the undo stack and pushes
// the current state onto the redo stack. Returns the snapshot to restore
// and true, or an empty snapshot and false if nothing to undo.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	if len(h.undoStack) == 0 {
		return Snapshot{}, false
	}
	last := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, current)
	return last, true
}

// Redo pops the most recent snapshot from the redo stack and pushes
// the current state onto the undo stack. Returns the snapshot to restore
// and true, or an empty snapshot and false if nothing to redo.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	if len(h.redoStack) == 0 {
		return Snapshot{}, false
	}
	last := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, current)
	return last, true
}

// CanUndo returns true if there is at least one snapshot to undo.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo returns true if there is at least one snapshot to redo.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// Uploads returns every upload some undo or redo snapshot still refers to.
func (h *History) Uploads() map[*model.Upload]bool {
	refs := make(map[*model.Upload]bool)
	for _, stack := range [][]Snapshot{h.undoStack, h.redoStack} {
		for _, s := range stack {
			if s.Artwork.Upload != nil {
				refs[s.Artwork.Upload] = true
			}
		}
	}
	return refs
}

// Clear removes all undo and redo history.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}

// MakeSnapshot captures the session's design state with a label.
// Uploads are never mutated after creation, so sharing the pointer is safe.
func MakeSnapshot(s *model.Session, label string) Snapshot {
	return Snapshot{
		Placement: s.Placement,
		Artwork:   s.Artwork,
		Label:     label,
	}
}

// Apply restores the snapshot into the session.
func (snap Snapshot) Apply(s *model.Session) {
	s.Placement = snap.Placement.Normalized()
	s.Artwork = snap.Artwork
}

// SameState reports whether two snapshots hold the same design, ignoring labels.
func (snap Snapshot) SameState(other Snapshot) bool {
	return snap.Placement == other.Placement && snap.Artwork == other.Artwork
}
