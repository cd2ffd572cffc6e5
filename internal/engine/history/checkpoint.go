package history

// Checkpoint represents a point in history that can be returned to.
type Checkpoint struct {
	undoDepth int
}

// CreateCheckpoint creates a checkpoint at the current history position.
func (h *History[D]) CreateCheckpoint() Checkpoint {
	h.mu.Lock()
	defer h.mu.Unlock()
	return Checkpoint{undoDepth: len(h.undoStack)}
}

// UndoToCheckpoint undoes all operations recorded since the checkpoint.
func (h *History[D]) UndoToCheckpoint(cp Checkpoint, doc D) error {
	for h.UndoCount() > cp.undoDepth {
		if err := h.Undo(doc); err != nil {
			return err
		}
	}
	return nil
}

// RedoToCheckpoint redoes operations up to the checkpoint depth.
// Note: This only works if the redo stack still has the operations.
func (h *History[D]) RedoToCheckpoint(cp Checkpoint, doc D) error {
	for h.UndoCount() < cp.undoDepth && h.CanRedo() {
		if err := h.Redo(doc); err != nil {
			return err
		}
	}
	return nil
}
