package engine

import (
	"errors"
	"fmt"
)

// ErrBusy is returned when an operation is invoked while another one is
// still in flight. The UI is expected to disable its triggers while the
// engine reports busy, so hitting this is a caller bug.
var ErrBusy = errors.New("engine: an operation is already in progress")

// ValidationError reports a local precondition failure: a bad amount, a
// missing field, an unresolvable reference. It is raised before any network
// call and carries the offending field so the UI can highlight it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}
