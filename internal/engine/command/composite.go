package command

import (
	"fmt"

	"github.com/dshills/inkwell/internal/engine/document"
)

// Step is one stage of a composite command. Steps read the document and
// apply primitive commands through the executor; records of effectful
// children are accumulated for the composite's group record.
type Step func(x *Executor) error

// Composite runs a sequence of steps as one atomic, independently undoable
// unit. If any step fails, everything already applied is rolled back in
// reverse order and the error is propagated; the document is left exactly
// as it was before the composite started.
type Composite struct {
	Name  string
	Steps []Step
}

// NewComposite creates a composite command from a step sequence.
func NewComposite(name string, steps ...Step) *Composite {
	return &Composite{Name: name, Steps: steps}
}

// Add appends a step to the composite.
func (c *Composite) Add(step Step) {
	c.Steps = append(c.Steps, step)
}

// Apply runs the steps against the document with a fresh executor.
// The composite has an effect iff at least one child had an effect.
func (c *Composite) Apply(doc *document.Document) (Record, bool, error) {
	x := newExecutor(doc)

	for i, step := range c.Steps {
		if err := step(x); err != nil {
			if rbErr := x.Rollback(); rbErr != nil {
				return nil, false, fmt.Errorf("composite %q step %d: %w (rollback also failed: %v)", c.Name, i, err, rbErr)
			}
			return nil, false, fmt.Errorf("composite %q step %d: %w", c.Name, i, err)
		}
	}

	if len(x.records) == 0 {
		return nil, false, nil
	}
	return &groupRecord{name: c.Name, children: x.records}, true, nil
}

// Description returns the composite's name.
func (c *Composite) Description() string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("%d operations", len(c.Steps))
}

// groupRecord wraps the ordered child records of one composite execution.
// Undo replays children in reverse order; redo in original order.
type groupRecord struct {
	name     string
	children []Record
}

func (r *groupRecord) Undo(doc *document.Document) error {
	for i := len(r.children) - 1; i >= 0; i-- {
		if err := r.children[i].Undo(doc); err != nil {
			return fmt.Errorf("undo %q step %d: %w", r.name, i, err)
		}
	}
	return nil
}

func (r *groupRecord) Redo(doc *document.Document) error {
	for i, child := range r.children {
		if err := child.Redo(doc); err != nil {
			return fmt.Errorf("redo %q step %d: %w", r.name, i, err)
		}
	}
	return nil
}

func (r *groupRecord) Description() string {
	if r.name != "" {
		return r.name
	}
	return fmt.Sprintf("%d operations", len(r.children))
}
