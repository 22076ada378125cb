package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/govipola/storefront/internal/client/delivery"
	"github.com/govipola/storefront/internal/client/orders"
	"github.com/govipola/storefront/internal/domain"
	"github.com/govipola/storefront/pkg/errors"
)

// OrderClient commits an order with the order service
type OrderClient interface {
	Create(ctx context.Context, req orders.OrderRequest, idempotencyKey string) (*orders.OrderResult, error)
}

// DeliveryClient schedules a delivery with the delivery service
type DeliveryClient interface {
	Create(ctx context.Context, req delivery.DeliveryRequest) error
}

// Cart is the workflow's view of the session cart. The HTTP layer passes a
// lock-guarded view so the snapshot read and the success-path clear serialize
// with concurrent cart requests; the bare aggregate satisfies the interface
// where no concurrency exists.
type Cart interface {
	Snapshot() domain.CartSnapshot
	Clear()
}

// CheckoutService drives one session's checkout workflow: validate the
// delivery form, commit the order, then schedule the delivery. The two remote
// calls are strictly sequential because the delivery references an order id
// that does not exist before the first call returns. There is no
// cross-service transaction; when the delivery leg fails after the order
// committed, the workflow reports a partial completion instead of pretending
// to roll back.
//
// One instance serves one session. The state field is the busy guard: a
// second Checkout while one is in flight is rejected before any request is
// built.
type CheckoutService struct {
	orders   OrderClient
	delivery DeliveryClient
	journal  *ReconciliationJournal
	logger   *zap.Logger

	mu          sync.Mutex
	state       domain.CheckoutState
	lastOrderID string
}

// NewCheckoutService creates a checkout workflow for one session
func NewCheckoutService(orderClient OrderClient, deliveryClient DeliveryClient, journal *ReconciliationJournal, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		orders:   orderClient,
		delivery: deliveryClient,
		journal:  journal,
		logger:   logger,
		state:    domain.CheckoutStateIdle,
	}
}

// State returns the current workflow state
func (s *CheckoutService) State() domain.CheckoutState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastOrderID returns the order id retained from a partial completion, empty
// when no delivery is pending.
func (s *CheckoutService) LastOrderID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastOrderID
}

// Checkout runs one attempt end to end. The cart is cleared if and only if
// both remote calls succeed; on a delivery failure after order success the
// cart and the committed order id are retained so the delivery can be
// resubmitted without firing a duplicate order. Each remote call is attempted
// exactly once per invocation.
func (s *CheckoutService) Checkout(ctx context.Context, customerID string, cart Cart, details domain.DeliveryDetails) (domain.CheckoutResult, error) {
	// One guarded read: emptiness is judged from the same snapshot the
	// payloads are built from, and cart edits made after this point belong
	// to the next attempt.
	snapshot := cart.Snapshot()
	if len(snapshot.Lines) == 0 {
		return domain.CheckoutResult{}, ErrEmptyCart
	}
	if err := s.begin(domain.CheckoutStateValidating); err != nil {
		return domain.CheckoutResult{}, err
	}

	// Validate fully before any network I/O: never create an order for input
	// that cannot produce a valid delivery request.
	if err := ValidateDeliveryDetails(details, time.Now()); err != nil {
		s.finish(domain.CheckoutStateAborted)
		return domain.ValidationFailedResult(err.Error()), nil
	}

	if err := s.transition(domain.CheckoutStateSubmittingOrder); err != nil {
		return domain.CheckoutResult{}, err
	}
	idempotencyKey := uuid.NewString()
	orderReq := orders.NewOrderRequest(customerID, snapshot, details.Payment)
	orderResult, err := s.orders.Create(ctx, orderReq, idempotencyKey)
	if err != nil {
		s.logger.Error("order submission failed",
			zap.String("customer_id", customerID),
			zap.Float64("total_amount", snapshot.Total),
			zap.Error(err),
		)
		s.finish(domain.CheckoutStateAborted)
		return domain.OrderFailedResult(err), nil
	}

	orderID := orderResult.OrderID
	if orderID == "" {
		// The order is committed server-side either way; losing it over a
		// missing id in the response would be worse than a synthetic one.
		orderID = fmt.Sprintf("ORD%d", time.Now().UnixMilli())
		s.logger.Warn("order response carried no identifier, synthesized fallback",
			zap.String("order_id", orderID),
			zap.String("idempotency_key", idempotencyKey),
		)
		s.journal.Record(JournalFallbackOrderID, orderID, "order response had neither id nor orderNumber")
	}

	if err := s.transition(domain.CheckoutStateSubmittingDelivery); err != nil {
		return domain.CheckoutResult{}, err
	}
	deliveryReq := delivery.NewDeliveryRequest(orderID, snapshot, details)
	if err := s.delivery.Create(ctx, deliveryReq); err != nil {
		return s.partiallyComplete(orderID, err), nil
	}

	// Both commits succeeded; this is the only checkout path that clears the
	// cart.
	cart.Clear()
	s.complete()
	s.logger.Info("checkout completed",
		zap.String("order_id", orderID),
		zap.Float64("total_amount", snapshot.Total),
	)
	return domain.CompletedResult(orderID), nil
}

// ResubmitDelivery retries the delivery leg alone for the order retained from
// a partial completion. The order is not resubmitted.
func (s *CheckoutService) ResubmitDelivery(ctx context.Context, cart Cart, details domain.DeliveryDetails) (domain.CheckoutResult, error) {
	orderID := s.LastOrderID()
	if orderID == "" {
		return domain.CheckoutResult{}, ErrNoPendingDelivery
	}
	if err := ValidateDeliveryDetails(details, time.Now()); err != nil {
		return domain.ValidationFailedResult(err.Error()), nil
	}
	if err := s.begin(domain.CheckoutStateSubmittingDelivery); err != nil {
		return domain.CheckoutResult{}, err
	}

	snapshot := cart.Snapshot()
	deliveryReq := delivery.NewDeliveryRequest(orderID, snapshot, details)
	if err := s.delivery.Create(ctx, deliveryReq); err != nil {
		return s.partiallyComplete(orderID, err), nil
	}

	cart.Clear()
	s.complete()
	s.journal.Record(JournalDeliveryRecovered, orderID, "delivery scheduled on resubmission")
	s.logger.Info("delivery resubmission succeeded", zap.String("order_id", orderID))
	return domain.CompletedResult(orderID), nil
}

// begin gates entry into an attempt. Idle and the terminal states collapse to
// FORM_OPEN first (the retry boundary); anything else means an attempt is in
// flight and the call fails fast instead of firing a duplicate request.
func (s *CheckoutService) begin(next domain.CheckoutState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == domain.CheckoutStateIdle || s.state.IsTerminal() {
		s.state = domain.CheckoutStateFormOpen
	}
	if !s.state.CanTransitionTo(next) {
		return ErrCheckoutInFlight
	}
	s.state = next
	return nil
}

// transition moves between in-flight states
func (s *CheckoutService) transition(next domain.CheckoutState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.CanTransitionTo(next) {
		return &errors.ErrInvalidStateTransition{From: s.state.String(), To: next.String()}
	}
	s.state = next
	return nil
}

// finish parks the workflow in a terminal state for this attempt
func (s *CheckoutService) finish(sink domain.CheckoutState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = sink
}

func (s *CheckoutService) complete() {
	s.mu.Lock()
	s.lastOrderID = ""
	s.state = domain.CheckoutStateCompleted
	s.mu.Unlock()
}

// partiallyComplete records the order-committed-delivery-missing outcome: the
// order id is retained for resubmission and the gap is journaled for
// reconciliation.
func (s *CheckoutService) partiallyComplete(orderID string, cause error) domain.CheckoutResult {
	s.mu.Lock()
	s.lastOrderID = orderID
	s.state = domain.CheckoutStatePartiallyCompleted
	s.mu.Unlock()

	s.journal.Record(JournalPartialCompletion, orderID, cause.Error())
	s.logger.Error("delivery submission failed after order commit",
		zap.String("order_id", orderID),
		zap.Error(cause),
	)
	return domain.DeliveryFailedResult(orderID, cause)
}
