package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckoutState_HappyPathTransitions(t *testing.T) {
	path := []CheckoutState{
		CheckoutStateIdle,
		CheckoutStateFormOpen,
		CheckoutStateValidating,
		CheckoutStateSubmittingOrder,
		CheckoutStateSubmittingDelivery,
		CheckoutStateCompleted,
	}
	for i := 0; i < len(path)-1; i++ {
		assert.True(t, path[i].CanTransitionTo(path[i+1]),
			"%s -> %s should be legal", path[i], path[i+1])
	}
}

func TestCheckoutState_FailureSinks(t *testing.T) {
	assert.True(t, CheckoutStateValidating.CanTransitionTo(CheckoutStateAborted))
	assert.True(t, CheckoutStateSubmittingOrder.CanTransitionTo(CheckoutStateAborted))
	assert.True(t, CheckoutStateSubmittingDelivery.CanTransitionTo(CheckoutStatePartiallyCompleted))

	// A failed delivery never aborts: the order is already committed.
	assert.False(t, CheckoutStateSubmittingDelivery.CanTransitionTo(CheckoutStateAborted))
}

func TestCheckoutState_TerminalStatesResetToFormOpen(t *testing.T) {
	for _, s := range []CheckoutState{CheckoutStateCompleted, CheckoutStatePartiallyCompleted, CheckoutStateAborted} {
		assert.True(t, s.IsTerminal())
		assert.True(t, s.CanTransitionTo(CheckoutStateFormOpen))
		assert.False(t, s.CanTransitionTo(CheckoutStateSubmittingOrder))
	}
}

func TestCheckoutState_NoReentryIntoSubmission(t *testing.T) {
	assert.False(t, CheckoutStateSubmittingOrder.CanTransitionTo(CheckoutStateSubmittingOrder))
	assert.False(t, CheckoutStateSubmittingDelivery.CanTransitionTo(CheckoutStateSubmittingOrder))
	assert.False(t, CheckoutStateSubmittingOrder.CanTransitionTo(CheckoutStateValidating))
}

func TestCheckoutState_DeliveryResubmissionPath(t *testing.T) {
	assert.True(t, CheckoutStateFormOpen.CanTransitionTo(CheckoutStateSubmittingDelivery))
}

func TestCheckoutState_IsValid(t *testing.T) {
	assert.True(t, CheckoutStateFormOpen.IsValid())
	assert.False(t, CheckoutState("BOGUS").IsValid())
	assert.False(t, CheckoutState("BOGUS").CanTransitionTo(CheckoutStateFormOpen))
}
