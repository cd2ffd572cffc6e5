package command

import "errors"

// Errors returned by command execution. Both are local and recoverable:
// a command returning either leaves the document unchanged.
var (
	// ErrShapeNotFound indicates the instruction referenced a shape
	// identifier absent from the document.
	ErrShapeNotFound = errors.New("shape not found")

	// ErrInvalidOperation indicates a semantically malformed instruction.
	ErrInvalidOperation = errors.New("invalid operation")
)
