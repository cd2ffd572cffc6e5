package document

import (
	"errors"
	"sort"

	"github.com/dshills/inkwell/internal/engine/geometry"
)

// Errors returned by document operations.
var (
	ErrIndexOutOfRange = errors.New("shape index out of range")
)

// Document is the mutable drawing surface: an ordered collection of shapes
// (slice order is z-order, later entries render on top), a selection set,
// and a monotonic counter tracking the highest z-index ever assigned.
//
// A document is exclusively owned by its editing session. It is not safe
// for concurrent use.
type Document struct {
	shapes    []Shape
	selection map[ShapeID]struct{}
	topZ      uint64
}

// New creates an empty document.
func New() *Document {
	return &Document{
		selection: make(map[ShapeID]struct{}),
	}
}

// Len returns the number of shapes in the document.
func (d *Document) Len() int {
	return len(d.shapes)
}

// Shapes returns a copy of the shape list in z-order (bottom first).
func (d *Document) Shapes() []Shape {
	out := make([]Shape, len(d.shapes))
	copy(out, d.shapes)
	return out
}

// ShapeAt returns the shape at index i.
func (d *Document) ShapeAt(i int) (Shape, error) {
	if i < 0 || i >= len(d.shapes) {
		return Shape{}, ErrIndexOutOfRange
	}
	return d.shapes[i], nil
}

// IndexOf locates a shape by identifier.
// Returns -1 and false if the identifier is not present.
func (d *Document) IndexOf(id ShapeID) (int, bool) {
	for i := range d.shapes {
		if d.shapes[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// Lookup returns the shape with the given identifier.
func (d *Document) Lookup(id ShapeID) (Shape, bool) {
	if i, ok := d.IndexOf(id); ok {
		return d.shapes[i], true
	}
	return Shape{}, false
}

// Contains reports whether a shape with the given identifier exists.
func (d *Document) Contains(id ShapeID) bool {
	_, ok := d.IndexOf(id)
	return ok
}

// Append adds a shape at the end of the list (top of z-order).
func (d *Document) Append(s Shape) {
	d.shapes = append(d.shapes, s)
}

// InsertAt inserts a shape at index i, shifting later shapes up.
func (d *Document) InsertAt(i int, s Shape) error {
	if i < 0 || i > len(d.shapes) {
		return ErrIndexOutOfRange
	}
	d.shapes = append(d.shapes, Shape{})
	copy(d.shapes[i+1:], d.shapes[i:])
	d.shapes[i] = s
	return nil
}

// RemoveAt removes and returns the shape at index i.
func (d *Document) RemoveAt(i int) (Shape, error) {
	if i < 0 || i >= len(d.shapes) {
		return Shape{}, ErrIndexOutOfRange
	}
	s := d.shapes[i]
	d.shapes = append(d.shapes[:i], d.shapes[i+1:]...)
	return s, nil
}

// ReplaceAt replaces the shape at index i.
func (d *Document) ReplaceAt(i int, s Shape) error {
	if i < 0 || i >= len(d.shapes) {
		return ErrIndexOutOfRange
	}
	d.shapes[i] = s
	return nil
}

// HitTest returns the topmost shape containing p.
// Shapes are tested from last (topmost) to first so the result matches
// what the user sees rendered on top.
func (d *Document) HitTest(p geometry.Point) (Shape, bool) {
	for i := len(d.shapes) - 1; i >= 0; i-- {
		if d.shapes[i].Contains(p) {
			return d.shapes[i], true
		}
	}
	return Shape{}, false
}

// IntersectingIDs returns the identifiers of all shapes overlapping r.
// The rectangle is normalized before testing.
func (d *Document) IntersectingIDs(r geometry.Rect) map[ShapeID]struct{} {
	r = r.Normalize()
	ids := make(map[ShapeID]struct{})
	for i := range d.shapes {
		if d.shapes[i].IntersectsRect(r) {
			ids[d.shapes[i].ID] = struct{}{}
		}
	}
	return ids
}

// SelectedIDs returns a copy of the selection set.
// The set may contain identifiers of shapes that have since been deleted;
// consumers are expected to tolerate dangling entries.
func (d *Document) SelectedIDs() map[ShapeID]struct{} {
	out := make(map[ShapeID]struct{}, len(d.selection))
	for id := range d.selection {
		out[id] = struct{}{}
	}
	return out
}

// SelectedList returns the selection as a sorted slice, for stable output.
func (d *Document) SelectedList() []ShapeID {
	out := make([]ShapeID, 0, len(d.selection))
	for id := range d.selection {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SetSelection replaces the selection set wholesale.
func (d *Document) SetSelection(ids map[ShapeID]struct{}) {
	d.selection = make(map[ShapeID]struct{}, len(ids))
	for id := range ids {
		d.selection[id] = struct{}{}
	}
}

// IsSelected reports whether the identifier is in the selection set.
func (d *Document) IsSelected(id ShapeID) bool {
	_, ok := d.selection[id]
	return ok
}

// SelectionCount returns the size of the selection set.
func (d *Document) SelectionCount() int {
	return len(d.selection)
}

// ClearSelection empties the selection set.
func (d *Document) ClearSelection() {
	d.selection = make(map[ShapeID]struct{})
}

// TopZ returns the highest z-index ever assigned.
func (d *Document) TopZ() uint64 {
	return d.topZ
}

// BumpZ increments and returns the z-index counter.
// The counter is advisory bookkeeping; it is monotonic and never rewound.
func (d *Document) BumpZ() uint64 {
	d.topZ++
	return d.topZ
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	c := &Document{
		shapes:    make([]Shape, len(d.shapes)),
		selection: make(map[ShapeID]struct{}, len(d.selection)),
		topZ:      d.topZ,
	}
	copy(c.shapes, d.shapes)
	for id := range d.selection {
		c.selection[id] = struct{}{}
	}
	return c
}

// Equal reports whether two documents hold the same shapes in the same
// order and the same selection set. The z-counter is advisory and not
// compared.
func (d *Document) Equal(other *Document) bool {
	if len(d.shapes) != len(other.shapes) || len(d.selection) != len(other.selection) {
		return false
	}
	for i := range d.shapes {
		if d.shapes[i] != other.shapes[i] {
			return false
		}
	}
	for id := range d.selection {
		if _, ok := other.selection[id]; !ok {
			return false
		}
	}
	return true
}
