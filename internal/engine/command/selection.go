package command

import (
	"fmt"

	"github.com/dshills/inkwell/internal/engine/document"
)

// idSet is shorthand for a set of shape identifiers.
type idSet = map[document.ShapeID]struct{}

// SetSelection replaces the selection set wholesale.
// Selecting the already-selected set is a no-op.
type SetSelection struct {
	IDs []document.ShapeID
}

// Apply replaces the selection with the instruction's identifiers.
func (c SetSelection) Apply(doc *document.Document) (Record, bool, error) {
	next := make(idSet, len(c.IDs))
	for _, id := range c.IDs {
		next[id] = struct{}{}
	}
	return applySelection(doc, next, "Select shapes")
}

// Description returns a human-readable description of the command.
func (c SetSelection) Description() string {
	return fmt.Sprintf("Select %d shapes", len(c.IDs))
}

// SelectAll selects every shape in the document.
type SelectAll struct{}

// Apply replaces the selection with all shape identifiers.
func (SelectAll) Apply(doc *document.Document) (Record, bool, error) {
	next := make(idSet, doc.Len())
	for _, s := range doc.Shapes() {
		next[s.ID] = struct{}{}
	}
	return applySelection(doc, next, "Select all")
}

// Description returns a human-readable description of the command.
func (SelectAll) Description() string {
	return "Select all"
}

// ToggleSelection flips one identifier's membership in the selection set.
type ToggleSelection struct {
	ID document.ShapeID
}

// Apply toggles the identifier. Toggling always has an effect.
func (c ToggleSelection) Apply(doc *document.Document) (Record, bool, error) {
	next := doc.SelectedIDs()
	if _, ok := next[c.ID]; ok {
		delete(next, c.ID)
	} else {
		next[c.ID] = struct{}{}
	}
	return applySelection(doc, next, "Toggle selection")
}

// Description returns a human-readable description of the command.
func (c ToggleSelection) Description() string {
	return "Toggle selection"
}

// applySelection swaps in the next selection set, recording the previous
// one. Returns a no-op when the set is unchanged.
func applySelection(doc *document.Document, next idSet, desc string) (Record, bool, error) {
	prev := doc.SelectedIDs()
	if setsEqual(prev, next) {
		return nil, false, nil
	}

	doc.SetSelection(next)
	return &selectionRecord{before: prev, after: next, desc: desc}, true, nil
}

func setsEqual(a, b idSet) bool {
	if len(a) != len(b) {
		return false
	}
	for id := range a {
		if _, ok := b[id]; !ok {
			return false
		}
	}
	return true
}

// selectionRecord remembers the previous and next selection sets.
type selectionRecord struct {
	before idSet
	after  idSet
	desc   string
}

func (r *selectionRecord) Undo(doc *document.Document) error {
	doc.SetSelection(r.before)
	return nil
}

func (r *selectionRecord) Redo(doc *document.Document) error {
	doc.SetSelection(r.after)
	return nil
}

func (r *selectionRecord) Description() string {
	return r.desc
}
