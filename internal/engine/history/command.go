package history

import "time"

// Command describes one reversible edit against a document of type D.
// A command value is a stateless descriptor: its fields are the instruction,
// and applying it produces a Record capturing everything needed to reverse
// or replay the effect.
type Command[D any] interface {
	// Apply performs the command against the document. It returns the record
	// of what was done and whether the document was actually changed. A
	// semantic no-op returns (nil, false, nil). On error the document is
	// left untouched.
	Apply(doc D) (Record[D], bool, error)

	// Description returns a human-readable description of the command.
	Description() string
}

// Record captures a completed edit. It is sufficient on its own to undo the
// effect exactly or to redo it, without re-reading the original instruction.
type Record[D any] interface {
	// Undo reverses the recorded edit, restoring the prior document state.
	Undo(doc D) error

	// Redo reapplies the recorded edit.
	Redo(doc D) error

	// Description returns a human-readable description of the edit.
	Description() string
}

// OperationInfo describes a history entry for UI display.
type OperationInfo struct {
	Description string
	Timestamp   time.Time
}
