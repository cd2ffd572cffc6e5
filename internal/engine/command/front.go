package command

import (
	"fmt"

	"github.com/dshills/inkwell/internal/engine/document"
)

// BringToFront moves a shape to the top of the z-order and bumps the
// document's z-counter. A shape already on top is a no-op.
type BringToFront struct {
	ID document.ShapeID
}

// Apply moves the shape to the end of the shape list.
func (c BringToFront) Apply(doc *document.Document) (Record, bool, error) {
	i, ok := doc.IndexOf(c.ID)
	if !ok {
		return nil, false, fmt.Errorf("%w: %s", ErrShapeNotFound, c.ID)
	}
	if i == doc.Len()-1 {
		return nil, false, nil
	}

	s, err := doc.RemoveAt(i)
	if err != nil {
		return nil, false, err
	}
	doc.Append(s)

	// Advisory bookkeeping; monotonic, never rewound by undo.
	doc.BumpZ()

	return &frontRecord{id: c.ID, from: i}, true, nil
}

// Description returns a human-readable description of the command.
func (c BringToFront) Description() string {
	return "Bring to front"
}

// frontRecord remembers the shape's prior index so undo restores the
// exact z-position, not merely "not on top".
type frontRecord struct {
	id   document.ShapeID
	from int
}

func (r *frontRecord) Undo(doc *document.Document) error {
	i, ok := doc.IndexOf(r.id)
	if !ok {
		return fmt.Errorf("undo bring to front: %w: %s", ErrShapeNotFound, r.id)
	}
	s, err := doc.RemoveAt(i)
	if err != nil {
		return fmt.Errorf("undo bring to front: %w", err)
	}
	if err := doc.InsertAt(r.from, s); err != nil {
		return fmt.Errorf("undo bring to front: %w", err)
	}
	return nil
}

func (r *frontRecord) Redo(doc *document.Document) error {
	i, ok := doc.IndexOf(r.id)
	if !ok {
		return fmt.Errorf("redo bring to front: %w: %s", ErrShapeNotFound, r.id)
	}
	s, err := doc.RemoveAt(i)
	if err != nil {
		return fmt.Errorf("redo bring to front: %w", err)
	}
	doc.Append(s)
	doc.BumpZ()
	return nil
}

func (r *frontRecord) Description() string {
	return "Bring to front"
}
