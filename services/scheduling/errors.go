package scheduling

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSlotUnavailable signals a business-level conflict: the requested interval
// collides with an existing blocking reservation. Permanent for that interval;
// the caller must pick another.
var ErrSlotUnavailable = errors.New("requested time is no longer available")

// errLockTimeout is surfaced wrapped in a TransientError so callers retry.
var errLockTimeout = errors.New("timed out waiting for the date lock")

// Violation is a single validation failure.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violation found in a request, not just the
// first, so the caller can report them all at once.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Field + ": " + v.Message
	}
	return "invalid reservation request: " + strings.Join(msgs, "; ")
}

// TransientError marks an infrastructure failure (store hiccup or lock
// timeout) that is safe to retry with backoff.
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient failure during %s: %v", e.Op, e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// IsTransient reports whether err is retryable.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}
