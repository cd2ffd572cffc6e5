package command

import (
	"fmt"

	"github.com/dshills/inkwell/internal/engine/document"
)

// Executor accumulates the records of primitive commands applied while a
// composite command is being built. It exists only for the duration of one
// composite execution and must never be shared across invocations.
//
// If a step fails, Rollback undoes every already-applied child in reverse
// order, restoring the document to its exact pre-composite state.
type Executor struct {
	doc     *document.Document
	records []Record
}

func newExecutor(doc *document.Document) *Executor {
	return &Executor{doc: doc}
}

// Doc returns the document being edited, for steps that need to read
// current state (e.g. to look up the shape being duplicated).
func (x *Executor) Doc() *document.Document {
	return x.doc
}

// Run applies a primitive command. If the command had an effect its record
// is retained for the composite's group record; no-ops are dropped.
func (x *Executor) Run(cmd Command) error {
	rec, effect, err := cmd.Apply(x.doc)
	if err != nil {
		return err
	}
	if effect {
		x.records = append(x.records, rec)
	}
	return nil
}

// Rollback undoes all accumulated records in reverse order and discards
// them. Called by the composite engine when a step fails.
func (x *Executor) Rollback() error {
	var firstErr error
	for i := len(x.records) - 1; i >= 0; i-- {
		if err := x.records[i].Undo(x.doc); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("rollback step %d: %w", i, err)
		}
	}
	x.records = nil
	return firstErr
}
