package command

import (
	"fmt"

	"github.com/dshills/inkwell/internal/engine/document"
	"github.com/dshills/inkwell/internal/engine/geometry"
)

// MoveShape adds an offset to a shape's origin (rectangles) or center
// (circles). Moving by an offset that produces a geometrically identical
// shape is a no-op.
type MoveShape struct {
	ID    document.ShapeID
	Delta geometry.Point
}

// Apply translates the shape by the delta.
func (c MoveShape) Apply(doc *document.Document) (Record, bool, error) {
	moved, err := translate(doc, c.ID, c.Delta)
	if err != nil {
		return nil, false, err
	}
	if !moved {
		return nil, false, nil
	}
	return &moveRecord{id: c.ID, delta: c.Delta}, true, nil
}

// Description returns a human-readable description of the command.
func (c MoveShape) Description() string {
	return fmt.Sprintf("Move shape by %s", c.Delta)
}

// translate applies a delta to the identified shape. It returns false if
// the translation leaves the shape geometrically identical. Both the
// command and its record go through this path so undo (the negated delta)
// reuses the same no-op and not-found semantics.
func translate(doc *document.Document, id document.ShapeID, delta geometry.Point) (bool, error) {
	i, ok := doc.IndexOf(id)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrShapeNotFound, id)
	}

	s, err := doc.ShapeAt(i)
	if err != nil {
		return false, err
	}

	moved := s.Translate(delta)
	if moved == s {
		return false, nil
	}

	if err := doc.ReplaceAt(i, moved); err != nil {
		return false, err
	}
	return true, nil
}

// moveRecord replays the move as a translation rather than a snapshot.
type moveRecord struct {
	id    document.ShapeID
	delta geometry.Point
}

func (r *moveRecord) Undo(doc *document.Document) error {
	if _, err := translate(doc, r.id, r.delta.Neg()); err != nil {
		return fmt.Errorf("undo move: %w", err)
	}
	return nil
}

func (r *moveRecord) Redo(doc *document.Document) error {
	if _, err := translate(doc, r.id, r.delta); err != nil {
		return fmt.Errorf("redo move: %w", err)
	}
	return nil
}

func (r *moveRecord) Description() string {
	return fmt.Sprintf("Move shape by %s", r.delta)
}
