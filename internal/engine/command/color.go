package command

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/inkwell/internal/engine/document"
)

// SetColor replaces a shape's color.
// Setting the color already in effect is a no-op.
type SetColor struct {
	ID    document.ShapeID
	Color colorful.Color
}

// Apply recolors the shape, recording the previous color for undo.
func (c SetColor) Apply(doc *document.Document) (Record, bool, error) {
	i, ok := doc.IndexOf(c.ID)
	if !ok {
		return nil, false, fmt.Errorf("%w: %s", ErrShapeNotFound, c.ID)
	}

	s, err := doc.ShapeAt(i)
	if err != nil {
		return nil, false, err
	}
	if s.Color == c.Color {
		return nil, false, nil
	}

	old := s.Color
	s.Color = c.Color
	if err := doc.ReplaceAt(i, s); err != nil {
		return nil, false, err
	}
	return &colorRecord{id: c.ID, old: old, new: c.Color}, true, nil
}

// Description returns a human-readable description of the command.
func (c SetColor) Description() string {
	return fmt.Sprintf("Set color to %s", c.Color.Hex())
}

// colorRecord remembers the previous and next color.
type colorRecord struct {
	id  document.ShapeID
	old colorful.Color
	new colorful.Color
}

func (r *colorRecord) Undo(doc *document.Document) error {
	return recolor(doc, r.id, r.old)
}

func (r *colorRecord) Redo(doc *document.Document) error {
	return recolor(doc, r.id, r.new)
}

func (r *colorRecord) Description() string {
	return fmt.Sprintf("Set color to %s", r.new.Hex())
}

func recolor(doc *document.Document, id document.ShapeID, col colorful.Color) error {
	i, ok := doc.IndexOf(id)
	if !ok {
		return fmt.Errorf("recolor: %w: %s", ErrShapeNotFound, id)
	}
	s, err := doc.ShapeAt(i)
	if err != nil {
		return err
	}
	s.Color = col
	return doc.ReplaceAt(i, s)
}
