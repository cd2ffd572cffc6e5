// Package history provides linear undo/redo management generic over the
// document type being edited.
//
// The package separates three ideas:
//
//   - Command: a stateless descriptor of one reversible edit. Applying a
//     command mutates the document and yields a Record.
//   - Record: the captured result of a successful application, sufficient
//     on its own to undo or redo the edit exactly.
//   - History: the undo and redo stacks of records, with the linear-history
//     rule that any new effectful edit discards the redo stack.
//
// A command application that reports no effect (moving by a zero offset,
// recoloring with the current color) is never recorded, so no-ops cannot
// pollute the stacks or invalidate an existing redo future.
//
// # Usage
//
//	hist := history.New[*document.Document](1000)
//
//	changed, err := hist.Execute(doc, cmd)
//
//	hist.Undo(doc)
//	hist.Redo(doc)
//
// # Checkpoints
//
// A Checkpoint marks a stack depth to return to later:
//
//	cp := hist.CreateCheckpoint()
//	// ... several edits ...
//	hist.UndoToCheckpoint(cp, doc)
package history
