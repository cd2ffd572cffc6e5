package command

import (
	"errors"
	"testing"

	"github.com/dshills/inkwell/internal/engine/document"
	"github.com/dshills/inkwell/internal/engine/geometry"
)

func TestCompositeAtomicRollback(t *testing.T) {
	doc := document.New()
	s := addRect(t, doc, 0, 0, 10, 10)
	doc.SetSelection(map[document.ShapeID]struct{}{s.ID: {}})
	before := doc.Clone()

	boom := errors.New("boom")
	c := NewComposite("Failing edit",
		func(x *Executor) error {
			return x.Run(MoveShape{ID: s.ID, Delta: geometry.Point{X: 5}})
		},
		func(x *Executor) error {
			return x.Run(SetSelection{IDs: nil})
		},
		func(x *Executor) error {
			return boom
		},
	)

	_, effect, err := c.Apply(doc)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if effect {
		t.Error("failed composite must not report an effect")
	}
	if !doc.Equal(before) {
		t.Error("failed composite must leave the document exactly as it was")
	}
}

func TestCompositeAllNoopsHasNoEffect(t *testing.T) {
	doc := document.New()
	s := addRect(t, doc, 0, 0, 10, 10)

	c := NewComposite("Nothing",
		func(x *Executor) error {
			return x.Run(MoveShape{ID: s.ID}) // zero delta
		},
		func(x *Executor) error {
			return x.Run(SetColor{ID: s.ID, Color: red}) // current color
		},
	)

	rec, effect, err := c.Apply(doc)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if effect || rec != nil {
		t.Error("composite of no-ops should be a no-op")
	}
}

func TestDuplicateAndMove(t *testing.T) {
	doc := document.New()
	hist := newHistory()
	c := document.NewCircle(geometry.Point{X: 5, Y: 5}, 3, red)
	hist.Execute(doc, AddShape{Shape: c})

	changed, err := hist.Execute(doc, DuplicateAndMove(c.ID, geometry.Point{X: 10}))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !changed || doc.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", doc.Len())
	}

	shapes := doc.Shapes()
	dup := shapes[1]
	if dup.ID == c.ID {
		t.Error("duplicate should have a fresh identifier")
	}
	if dup.Origin != (geometry.Point{X: 15, Y: 5}) {
		t.Errorf("duplicate origin = %v, want (15,5)", dup.Origin)
	}

	// The composite undoes as one unit.
	if err := hist.Undo(doc); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if doc.Len() != 1 {
		t.Errorf("after undo Len() = %d, want 1", doc.Len())
	}

	if err := hist.Redo(doc); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if doc.Len() != 2 {
		t.Errorf("after redo Len() = %d, want 2", doc.Len())
	}
	redone := doc.Shapes()[1]
	if redone != dup {
		t.Error("redo should recreate the identical duplicate")
	}
}

func TestDuplicateAndMoveMissingIDRollsBack(t *testing.T) {
	doc := document.New()
	hist := newHistory()
	c := document.NewCircle(geometry.Point{X: 5, Y: 5}, 3, red)
	hist.Execute(doc, AddShape{Shape: c})
	hist.Execute(doc, DuplicateAndMove(c.ID, geometry.Point{X: 10}))

	before := doc.Clone()
	undoDepth := hist.UndoCount()

	_, err := hist.Execute(doc, DuplicateAndMove("missing", geometry.Point{X: 10}))
	if !errors.Is(err, ErrShapeNotFound) {
		t.Fatalf("err = %v, want ErrShapeNotFound", err)
	}
	if !doc.Equal(before) {
		t.Error("failed composite must leave the document unchanged")
	}
	if doc.Len() != 2 {
		t.Errorf("Len() = %d, want 2", doc.Len())
	}
	if hist.UndoCount() != undoDepth {
		t.Error("failed composite must not be pushed to the undo stack")
	}
}

func TestDuplicateMoveSelect(t *testing.T) {
	doc := document.New()
	hist := newHistory()
	s := document.NewRectangle(geometry.Point{}, 4, 4, red)
	hist.Execute(doc, AddShape{Shape: s})
	hist.Execute(doc, SetSelection{IDs: []document.ShapeID{s.ID}})

	if _, err := hist.Execute(doc, DuplicateMoveSelect(s.ID, geometry.Point{Y: 7})); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	dup := doc.Shapes()[1]
	if !doc.IsSelected(dup.ID) || doc.IsSelected(s.ID) {
		t.Error("only the duplicate should be selected")
	}

	// Undo restores the original selection along with removing the copy.
	if err := hist.Undo(doc); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if doc.Len() != 1 || !doc.IsSelected(s.ID) {
		t.Error("undo should restore the prior document and selection")
	}
}

func TestTriplicate(t *testing.T) {
	doc := document.New()
	hist := newHistory()
	s := document.NewRectangle(geometry.Point{X: 1, Y: 1}, 2, 2, red)
	hist.Execute(doc, AddShape{Shape: s})

	if _, err := hist.Execute(doc, Triplicate(s.ID, geometry.Point{X: 10})); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if doc.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", doc.Len())
	}

	shapes := doc.Shapes()
	if shapes[1].Origin != (geometry.Point{X: 11, Y: 1}) {
		t.Errorf("first copy at %v, want (11,1)", shapes[1].Origin)
	}
	if shapes[2].Origin != (geometry.Point{X: 21, Y: 1}) {
		t.Errorf("second copy at %v, want (21,1)", shapes[2].Origin)
	}

	if err := hist.Undo(doc); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if doc.Len() != 1 {
		t.Errorf("triplicate should undo as one unit, Len() = %d", doc.Len())
	}
}

func TestMoveShapesComposite(t *testing.T) {
	doc := document.New()
	hist := newHistory()
	a := addRect(t, doc, 0, 0, 1, 1)
	b := addRect(t, doc, 10, 0, 1, 1)

	ids := []document.ShapeID{a.ID, b.ID}
	if _, err := hist.Execute(doc, MoveShapes(ids, geometry.Point{Y: 5})); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	for _, id := range ids {
		s, _ := doc.Lookup(id)
		if s.Origin.Y != 5 {
			t.Errorf("shape %s at y=%g, want 5", id, s.Origin.Y)
		}
	}

	if err := hist.Undo(doc); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	for _, id := range ids {
		s, _ := doc.Lookup(id)
		if s.Origin.Y != 0 {
			t.Errorf("after undo shape %s at y=%g, want 0", id, s.Origin.Y)
		}
	}
}

func TestDeleteShapesSkipsAbsent(t *testing.T) {
	doc := document.New()
	hist := newHistory()
	a := addRect(t, doc, 0, 0, 1, 1)
	b := addRect(t, doc, 10, 0, 1, 1)

	changed, err := hist.Execute(doc, DeleteShapes([]document.ShapeID{a.ID, "missing", b.ID}))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !changed || doc.Len() != 0 {
		t.Errorf("Len() = %d, want 0", doc.Len())
	}

	if err := hist.Undo(doc); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if doc.Len() != 2 {
		t.Errorf("after undo Len() = %d, want 2", doc.Len())
	}
	if i, _ := doc.IndexOf(a.ID); i != 0 {
		t.Error("undo should restore original z-order")
	}
}

func TestRecolorShapes(t *testing.T) {
	doc := document.New()
	hist := newHistory()
	a := addRect(t, doc, 0, 0, 1, 1)
	b := addRect(t, doc, 10, 0, 1, 1)

	if _, err := hist.Execute(doc, RecolorShapes([]document.ShapeID{a.ID, b.ID}, green)); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for _, id := range []document.ShapeID{a.ID, b.ID} {
		s, _ := doc.Lookup(id)
		if s.Color != green {
			t.Errorf("shape %s color = %v, want green", id, s.Color)
		}
	}

	if err := hist.Undo(doc); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	for _, id := range []document.ShapeID{a.ID, b.ID} {
		s, _ := doc.Lookup(id)
		if s.Color != red {
			t.Errorf("after undo shape %s color = %v, want red", id, s.Color)
		}
	}
}

func TestDuplicateShapes(t *testing.T) {
	doc := document.New()
	hist := newHistory()
	a := addRect(t, doc, 0, 0, 1, 1)
	b := addRect(t, doc, 10, 0, 1, 1)

	if _, err := hist.Execute(doc, DuplicateShapes([]document.ShapeID{a.ID, b.ID}, geometry.Point{Y: 20})); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if doc.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", doc.Len())
	}

	if err := hist.Undo(doc); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if doc.Len() != 2 {
		t.Errorf("after undo Len() = %d, want 2", doc.Len())
	}
}

func TestBringToFrontSelect(t *testing.T) {
	doc := document.New()
	hist := newHistory()
	a := addRect(t, doc, 0, 0, 1, 1)
	addRect(t, doc, 10, 0, 1, 1)

	if _, err := hist.Execute(doc, BringToFrontSelect(a.ID)); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if i, _ := doc.IndexOf(a.ID); i != doc.Len()-1 {
		t.Error("shape should be on top")
	}
	if !doc.IsSelected(a.ID) {
		t.Error("shape should be selected")
	}

	if err := hist.Undo(doc); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if i, _ := doc.IndexOf(a.ID); i != 0 {
		t.Error("undo should restore z-order")
	}
	if doc.SelectionCount() != 0 {
		t.Error("undo should restore the empty selection")
	}
}

func TestBringToFrontToggleStillSelectsWhenAlreadyTop(t *testing.T) {
	// The bring-to-front child is a no-op but the toggle still has an
	// effect, so the composite as a whole is effectful.
	doc := document.New()
	hist := newHistory()
	addRect(t, doc, 0, 0, 1, 1)
	top := addRect(t, doc, 10, 0, 1, 1)

	changed, err := hist.Execute(doc, BringToFrontToggle(top.ID))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !changed {
		t.Error("composite with one effectful child should report an effect")
	}
	if !doc.IsSelected(top.ID) {
		t.Error("shape should be toggled into the selection")
	}
	if hist.UndoCount() != 1 {
		t.Errorf("UndoCount() = %d, want 1", hist.UndoCount())
	}
}
