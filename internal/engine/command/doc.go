// Package command implements the reversible editing operations of the
// drawing engine and the transactional composite mechanism that groups
// them.
//
// # Primitive commands
//
// Each primitive (AddShape, DeleteShape, MoveShape, SetColor, BringToFront
// and the selection commands) is a stateless value whose fields are the
// instruction. Applying one against a document yields a record that can
// undo or redo the edit exactly; semantic no-ops yield no record so they
// never enter history.
//
// Failure is always local: a command that returns an error has not touched
// the document. ErrShapeNotFound covers missing identifiers and
// ErrInvalidOperation everything else.
//
// # Composites
//
// A Composite is a named sequence of steps executed through a transient
// Executor. Children that had an effect are recorded; if a step fails the
// executor rolls the applied children back in reverse order before the
// error propagates, so a failed composite leaves the document untouched.
// The surviving record is a single group: undo replays children in reverse
// order, redo in original order, and history sees one atomic entry.
//
//	cmd := command.DuplicateAndMove(id, geometry.Point{X: 10})
//	changed, err := hist.Execute(doc, cmd)
package command
