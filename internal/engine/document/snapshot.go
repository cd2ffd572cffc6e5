package document

// Snapshot is a serializable point-in-time view of a document. It decouples
// the store's wire format from the document's internal representation.
type Snapshot struct {
	Shapes    []Shape   `json:"shapes"`
	Selection []ShapeID `json:"selection,omitempty"`
	TopZ      uint64    `json:"top_z,omitempty"`
}

// Snapshot captures the document's current shapes, selection and z-counter.
func (d *Document) Snapshot() Snapshot {
	return Snapshot{
		Shapes:    d.Shapes(),
		Selection: d.SelectedList(),
		TopZ:      d.topZ,
	}
}

// FromSnapshot builds a document from a snapshot.
func FromSnapshot(s Snapshot) *Document {
	d := New()
	d.shapes = make([]Shape, len(s.Shapes))
	copy(d.shapes, s.Shapes)
	for _, id := range s.Selection {
		d.selection[id] = struct{}{}
	}
	d.topZ = s.TopZ
	return d
}
