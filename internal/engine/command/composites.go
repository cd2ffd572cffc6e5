package command

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/inkwell/internal/engine/document"
	"github.com/dshills/inkwell/internal/engine/geometry"
)

// Built-in composites. Each sequences primitive commands through the
// executor; none carries bespoke undo logic.

// duplicate adds a copy of the identified shape with a fresh identifier
// and reports the copy's identifier through out.
func duplicate(id document.ShapeID, out *document.ShapeID) Step {
	return func(x *Executor) error {
		src, ok := x.Doc().Lookup(id)
		if !ok {
			return fmt.Errorf("duplicate: %w: %s", ErrShapeNotFound, id)
		}
		dup := src
		dup.ID = document.NewShapeID()
		*out = dup.ID
		return x.Run(AddShape{Shape: dup})
	}
}

// DuplicateAndMove copies a shape and offsets the copy.
func DuplicateAndMove(id document.ShapeID, delta geometry.Point) *Composite {
	var dup document.ShapeID
	return NewComposite("Duplicate and move",
		duplicate(id, &dup),
		func(x *Executor) error {
			return x.Run(MoveShape{ID: dup, Delta: delta})
		},
	)
}

// DuplicateMoveSelect copies a shape, offsets the copy, and selects it.
func DuplicateMoveSelect(id document.ShapeID, delta geometry.Point) *Composite {
	var dup document.ShapeID
	return NewComposite("Duplicate, move and select",
		duplicate(id, &dup),
		func(x *Executor) error {
			return x.Run(MoveShape{ID: dup, Delta: delta})
		},
		func(x *Executor) error {
			return x.Run(SetSelection{IDs: []document.ShapeID{dup}})
		},
	)
}

// Triplicate makes two copies of a shape, offset by delta and 2*delta.
func Triplicate(id document.ShapeID, delta geometry.Point) *Composite {
	c := NewComposite("Triplicate")
	for i := 1; i <= 2; i++ {
		var dup document.ShapeID
		offset := geometry.Point{X: delta.X * float64(i), Y: delta.Y * float64(i)}
		c.Add(duplicate(id, &dup))
		c.Add(func(x *Executor) error {
			return x.Run(MoveShape{ID: dup, Delta: offset})
		})
	}
	return c
}

// MoveShapes offsets several shapes as one unit.
func MoveShapes(ids []document.ShapeID, delta geometry.Point) *Composite {
	c := NewComposite("Move shapes")
	for _, id := range ids {
		id := id
		c.Add(func(x *Executor) error {
			return x.Run(MoveShape{ID: id, Delta: delta})
		})
	}
	return c
}

// DeleteShapes removes several shapes as one unit.
// Identifiers that are absent are skipped, matching DeleteShape.
func DeleteShapes(ids []document.ShapeID) *Composite {
	c := NewComposite("Delete shapes")
	for _, id := range ids {
		id := id
		c.Add(func(x *Executor) error {
			return x.Run(DeleteShape{ID: id})
		})
	}
	return c
}

// RecolorShapes sets the color of several shapes as one unit.
func RecolorShapes(ids []document.ShapeID, col colorful.Color) *Composite {
	c := NewComposite("Recolor shapes")
	for _, id := range ids {
		id := id
		c.Add(func(x *Executor) error {
			return x.Run(SetColor{ID: id, Color: col})
		})
	}
	return c
}

// DuplicateShapes copies several shapes, offsetting each copy.
func DuplicateShapes(ids []document.ShapeID, delta geometry.Point) *Composite {
	c := NewComposite("Duplicate shapes")
	for _, id := range ids {
		var dup document.ShapeID
		c.Add(duplicate(id, &dup))
		c.Add(func(x *Executor) error {
			return x.Run(MoveShape{ID: dup, Delta: delta})
		})
	}
	return c
}

// BringToFrontSelect raises a shape to the top and selects it.
func BringToFrontSelect(id document.ShapeID) *Composite {
	return NewComposite("Bring to front and select",
		func(x *Executor) error {
			return x.Run(BringToFront{ID: id})
		},
		func(x *Executor) error {
			return x.Run(SetSelection{IDs: []document.ShapeID{id}})
		},
	)
}

// BringToFrontToggle raises a shape to the top and toggles its selection.
func BringToFrontToggle(id document.ShapeID) *Composite {
	return NewComposite("Bring to front and toggle",
		func(x *Executor) error {
			return x.Run(BringToFront{ID: id})
		},
		func(x *Executor) error {
			return x.Run(ToggleSelection{ID: id})
		},
	)
}
