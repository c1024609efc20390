package booking

import (
	"errors"
	"fmt"
)

var ErrBookingNotFound = errors.New("booking not found")

// ErrNotAllowed covers both "not a party to this booking" and "a party,
// but the role lacks rights for the requested change". Callers get the
// same answer either way so the error never leaks which transition
// would have been accepted.
var ErrNotAllowed = errors.New("not allowed to perform this operation")

// ErrInvalidTransition means the requested edge does not exist in the
// status table, including any attempt to leave a terminal status.
var ErrInvalidTransition = errors.New("invalid booking status transition")

// ErrNoValidUpdate means neither requested field represents a change.
var ErrNoValidUpdate = errors.New("no valid update provided")

// ErrUpdateConflict means a concurrent writer changed the booking
// between our read and our conditional write. The caller should reload
// and retry rather than resubmit as-is.
var ErrUpdateConflict = errors.New("booking was modified concurrently")

var ErrValidation = errors.New("validation failed")

func newValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
