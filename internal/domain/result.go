package domain

import "fmt"

// CheckoutOutcome tags the terminal result of one checkout attempt
type CheckoutOutcome string

const (
	// OutcomeCompleted: order committed and delivery scheduled.
	OutcomeCompleted CheckoutOutcome = "COMPLETED"
	// OutcomeValidationFailed: form rejected before any remote call.
	OutcomeValidationFailed CheckoutOutcome = "VALIDATION_FAILED"
	// OutcomeOrderFailed: order creation failed; nothing committed.
	OutcomeOrderFailed CheckoutOutcome = "ORDER_FAILED"
	// OutcomeDeliveryFailed: order committed but delivery creation failed.
	// The order exists server-side and must not be silently dropped.
	OutcomeDeliveryFailed CheckoutOutcome = "DELIVERY_FAILED"
)

// CheckoutResult is the tagged outcome handed back to the caller. OrderID is
// set when an order was committed (OutcomeCompleted and OutcomeDeliveryFailed),
// Reason on validation failures, Cause on remote failures.
type CheckoutResult struct {
	Outcome CheckoutOutcome
	OrderID string
	Reason  string
	Cause   error
}

// CompletedResult reports full success
func CompletedResult(orderID string) CheckoutResult {
	return CheckoutResult{Outcome: OutcomeCompleted, OrderID: orderID}
}

// ValidationFailedResult reports a form rejected before any I/O
func ValidationFailedResult(reason string) CheckoutResult {
	return CheckoutResult{Outcome: OutcomeValidationFailed, Reason: reason}
}

// OrderFailedResult reports a failed order commit; cart and form are untouched
func OrderFailedResult(cause error) CheckoutResult {
	return CheckoutResult{Outcome: OutcomeOrderFailed, Cause: cause}
}

// DeliveryFailedResult reports the partial-completion case: the order with the
// given id is committed, delivery is not.
func DeliveryFailedResult(orderID string, cause error) CheckoutResult {
	return CheckoutResult{Outcome: OutcomeDeliveryFailed, OrderID: orderID, Cause: cause}
}

// Message returns the single human-readable line shown to the user for this
// outcome.
func (r CheckoutResult) Message() string {
	switch r.Outcome {
	case OutcomeCompleted:
		return "order placed and delivery scheduled"
	case OutcomeValidationFailed:
		return r.Reason
	case OutcomeOrderFailed:
		return "failed to place order"
	case OutcomeDeliveryFailed:
		return fmt.Sprintf("order %s was placed but delivery scheduling failed; retry delivery without re-ordering", r.OrderID)
	default:
		return "checkout did not complete"
	}
}
