package booking

import (
	"fmt"

	"taskhive/models"
)

// ValidationError signals malformed input, e.g. an unknown service id or an
// estimate outside the service's declared range.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// InvalidTransitionError signals a lifecycle rule violation, including any
// attempt to move out of a terminal state.
type InvalidTransitionError struct {
	From models.BookingStatus
	To   models.BookingStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot change status from %s to %s", e.From, e.To)
}

// PreconditionFailedError signals a transition missing a required field,
// e.g. completing without a final price.
type PreconditionFailedError struct {
	Message string
}

func (e *PreconditionFailedError) Error() string {
	return fmt.Sprintf("precondition failed: %s", e.Message)
}

// UpstreamError wraps a persistence or notification collaborator failure.
// Upstream failures are surfaced to the caller, never retried here.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream failure during %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
