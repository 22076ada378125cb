package errors

import "fmt"

// ErrInvalidStateTransition reports an attempt to move the checkout workflow
// between two states the state machine does not connect.
type ErrInvalidStateTransition struct {
	From string
	To   string
}

func (e *ErrInvalidStateTransition) Error() string {
	return fmt.Sprintf("invalid state transition from %s to %s", e.From, e.To)
}
