package command

import (
	"fmt"

	"github.com/dshills/inkwell/internal/engine/document"
)

// DeleteShape removes a shape by identifier.
// Deleting an identifier that is not present is a no-op, not an error.
//
// The deleted identifier is intentionally left in the selection set;
// selection consumers tolerate dangling identifiers.
type DeleteShape struct {
	ID document.ShapeID
}

// Apply removes the shape, capturing its value and index for exact
// re-insertion on undo.
func (c DeleteShape) Apply(doc *document.Document) (Record, bool, error) {
	i, ok := doc.IndexOf(c.ID)
	if !ok {
		return nil, false, nil
	}

	s, err := doc.RemoveAt(i)
	if err != nil {
		return nil, false, err
	}
	return &deleteRecord{shape: s, index: i}, true, nil
}

// Description returns a human-readable description of the command.
func (c DeleteShape) Description() string {
	return "Delete shape"
}

// deleteRecord remembers the removed shape and its position.
type deleteRecord struct {
	shape document.Shape
	index int
}

func (r *deleteRecord) Undo(doc *document.Document) error {
	if err := doc.InsertAt(r.index, r.shape); err != nil {
		return fmt.Errorf("undo delete: %w", err)
	}
	return nil
}

func (r *deleteRecord) Redo(doc *document.Document) error {
	if _, err := doc.RemoveAt(r.index); err != nil {
		return fmt.Errorf("redo delete: %w", err)
	}
	return nil
}

func (r *deleteRecord) Description() string {
	return fmt.Sprintf("Delete %s", r.shape.Kind)
}
