package errs

import "errors"

// Sentinel errors for the command history; shared between the executor and
// the HTTP layer so both sides agree on undo/redo outcomes.
var (
	ErrUndoNotAvailable = errors.New("undo not available")
	ErrRedoNotAvailable = errors.New("redo not available")
	ErrUndoFailed       = errors.New("undo failed")
	ErrRedoFailed       = errors.New("redo failed")
)
