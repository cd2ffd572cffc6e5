package command

import (
	"fmt"

	"github.com/dshills/inkwell/internal/engine/document"
)

// AddShape inserts a shape at the top of the z-order.
// If the shape's identifier collides with an existing shape (or is empty),
// a fresh identifier is minted before inserting; collisions never error.
type AddShape struct {
	Shape document.Shape
}

// Apply validates the shape and appends it to the document.
func (c AddShape) Apply(doc *document.Document) (Record, bool, error) {
	if err := validateShape(c.Shape); err != nil {
		return nil, false, err
	}

	s := c.Shape
	if s.ID == "" || doc.Contains(s.ID) {
		s.ID = document.NewShapeID()
	}

	doc.Append(s)
	return &addRecord{shape: s, index: doc.Len() - 1}, true, nil
}

// Description returns a human-readable description of the command.
func (c AddShape) Description() string {
	return fmt.Sprintf("Add %s", c.Shape.Kind)
}

func validateShape(s document.Shape) error {
	if !s.Kind.Valid() {
		return fmt.Errorf("%w: unknown shape kind %d", ErrInvalidOperation, s.Kind)
	}
	switch s.Kind {
	case document.KindRectangle:
		if s.Width < 0 || s.Height < 0 {
			return fmt.Errorf("%w: negative rectangle size %gx%g", ErrInvalidOperation, s.Width, s.Height)
		}
	case document.KindCircle:
		if s.Radius < 0 {
			return fmt.Errorf("%w: negative circle radius %g", ErrInvalidOperation, s.Radius)
		}
	}
	return nil
}

// addRecord remembers the inserted shape and its position.
type addRecord struct {
	shape document.Shape
	index int
}

func (r *addRecord) Undo(doc *document.Document) error {
	if _, err := doc.RemoveAt(r.index); err != nil {
		return fmt.Errorf("undo add: %w", err)
	}
	return nil
}

func (r *addRecord) Redo(doc *document.Document) error {
	if err := doc.InsertAt(r.index, r.shape); err != nil {
		return fmt.Errorf("redo add: %w", err)
	}
	return nil
}

func (r *addRecord) Description() string {
	return fmt.Sprintf("Add %s", r.shape.Kind)
}
