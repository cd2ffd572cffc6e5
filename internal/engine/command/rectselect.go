package command

import (
	"github.com/dshills/inkwell/internal/engine/document"
	"github.com/dshills/inkwell/internal/engine/geometry"
)

// RectSelect selects the shapes intersecting an axis-aligned rectangle.
// The rectangle may be denormalized (dragged in any direction).
//
// In replace mode the selection becomes exactly the intersecting set. In
// toggle mode the selection becomes the symmetric difference between the
// current selection and the intersecting set: shapes inside the rectangle
// are deselected if already selected, selected if not. Applying the same
// toggle twice with no document changes in between restores the original
// selection.
type RectSelect struct {
	Area   geometry.Rect
	Toggle bool
}

// Apply computes the next selection set from the rectangle.
func (c RectSelect) Apply(doc *document.Document) (Record, bool, error) {
	hit := doc.IntersectingIDs(c.Area)

	var next idSet
	if c.Toggle {
		next = symmetricDifference(doc.SelectedIDs(), hit)
	} else {
		next = hit
	}
	return applySelection(doc, next, c.Description())
}

// Description returns a human-readable description of the command.
func (c RectSelect) Description() string {
	if c.Toggle {
		return "Toggle rectangular selection"
	}
	return "Rectangular selection"
}

func symmetricDifference(a, b idSet) idSet {
	out := make(idSet)
	for id := range a {
		if _, ok := b[id]; !ok {
			out[id] = struct{}{}
		}
	}
	for id := range b {
		if _, ok := a[id]; !ok {
			out[id] = struct{}{}
		}
	}
	return out
}
