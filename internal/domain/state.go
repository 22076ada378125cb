package domain

// CheckoutState tracks where a checkout attempt is in its lifecycle
type CheckoutState string

const (
	CheckoutStateIdle               CheckoutState = "IDLE"
	CheckoutStateFormOpen           CheckoutState = "FORM_OPEN"
	CheckoutStateValidating         CheckoutState = "VALIDATING"
	CheckoutStateSubmittingOrder    CheckoutState = "SUBMITTING_ORDER"
	CheckoutStateSubmittingDelivery CheckoutState = "SUBMITTING_DELIVERY"
	CheckoutStateCompleted          CheckoutState = "COMPLETED"
	CheckoutStatePartiallyCompleted CheckoutState = "PARTIALLY_COMPLETED"
	CheckoutStateAborted            CheckoutState = "ABORTED"
)

// IsValid checks if the checkout state is a known state
func (s CheckoutState) IsValid() bool {
	switch s {
	case CheckoutStateIdle,
		CheckoutStateFormOpen,
		CheckoutStateValidating,
		CheckoutStateSubmittingOrder,
		CheckoutStateSubmittingDelivery,
		CheckoutStateCompleted,
		CheckoutStatePartiallyCompleted,
		CheckoutStateAborted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the state ends one checkout attempt
func (s CheckoutState) IsTerminal() bool {
	return s == CheckoutStateCompleted ||
		s == CheckoutStatePartiallyCompleted ||
		s == CheckoutStateAborted
}

// CanTransitionTo checks if a state transition is legal. Terminal states only
// transition back to FORM_OPEN, which is the retry boundary; the cart and any
// known order id survive that reset. FORM_OPEN -> SUBMITTING_DELIVERY is the
// delivery-only resubmission path after a partial completion.
func (s CheckoutState) CanTransitionTo(next CheckoutState) bool {
	switch s {
	case CheckoutStateIdle:
		return next == CheckoutStateFormOpen
	case CheckoutStateFormOpen:
		return next == CheckoutStateValidating ||
			next == CheckoutStateSubmittingDelivery
	case CheckoutStateValidating:
		return next == CheckoutStateSubmittingOrder ||
			next == CheckoutStateAborted
	case CheckoutStateSubmittingOrder:
		return next == CheckoutStateSubmittingDelivery ||
			next == CheckoutStateAborted
	case CheckoutStateSubmittingDelivery:
		return next == CheckoutStateCompleted ||
			next == CheckoutStatePartiallyCompleted
	case CheckoutStateCompleted, CheckoutStatePartiallyCompleted, CheckoutStateAborted:
		return next == CheckoutStateFormOpen
	default:
		return false
	}
}

// String representation (for logging)
func (s CheckoutState) String() string {
	return string(s)
}
