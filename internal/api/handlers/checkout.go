package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/govipola/storefront/internal/api/middleware"
	"github.com/govipola/storefront/internal/domain"
	"github.com/govipola/storefront/internal/service"
)

// CheckoutRequest is the delivery form posted to start a checkout attempt
type CheckoutRequest struct {
	Customer      string       `json:"customer"`
	Address       string       `json:"address"`
	ScheduledDate string       `json:"scheduledDate"`
	PaymentMethod string       `json:"paymentMethod" binding:"required,oneof=card cash"`
	CardDetails   *CardDetails `json:"cardDetails,omitempty"`
}

type CardDetails struct {
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
}

// CheckoutResponse reports a terminal checkout outcome. OrderID is present
// whenever an order was committed, including partial completions.
type CheckoutResponse struct {
	Status  string `json:"status"`
	OrderID string `json:"orderId,omitempty"`
	Message string `json:"message"`
}

func (r CheckoutRequest) deliveryDetails() domain.DeliveryDetails {
	details := domain.DeliveryDetails{
		Customer:      r.Customer,
		Address:       r.Address,
		ScheduledDate: r.ScheduledDate,
	}
	if r.PaymentMethod == string(domain.PaymentMethodCard) {
		card := domain.CardPayment{}
		if r.CardDetails != nil {
			card.CardNumber = r.CardDetails.CardNumber
			card.ExpiryDate = r.CardDetails.ExpiryDate
			card.CVV = r.CardDetails.CVV
		}
		details.Payment = card
	} else {
		details.Payment = domain.CashPayment{}
	}
	return details
}

// HandleCheckout handles POST /v1/checkout
func HandleCheckout(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := middleware.GetSessionFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		result, err := sess.Checkout.Checkout(c.Request.Context(), sess.ID, sess.CartView(), req.deliveryDetails())
		if err != nil {
			writeCheckoutError(c, logger, err)
			return
		}

		writeCheckoutResult(c, result)
	}
}

// HandleResubmitDelivery handles POST /v1/checkout/delivery: retry the
// delivery leg for a partially completed order without re-placing the order.
func HandleResubmitDelivery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := middleware.GetSessionFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		result, err := sess.Checkout.ResubmitDelivery(c.Request.Context(), sess.CartView(), req.deliveryDetails())
		if err != nil {
			writeCheckoutError(c, logger, err)
			return
		}

		writeCheckoutResult(c, result)
	}
}

func writeCheckoutError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrCheckoutInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNoPendingDelivery):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Checkout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func writeCheckoutResult(c *gin.Context, result domain.CheckoutResult) {
	switch result.Outcome {
	case domain.OutcomeCompleted:
		c.JSON(http.StatusOK, CheckoutResponse{
			Status:  "completed",
			OrderID: result.OrderID,
			Message: result.Message(),
		})
	case domain.OutcomeValidationFailed:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": result.Message()})
	case domain.OutcomeOrderFailed:
		c.JSON(http.StatusBadGateway, CheckoutResponse{
			Status:  "order_failed",
			Message: result.Message(),
		})
	case domain.OutcomeDeliveryFailed:
		c.JSON(http.StatusBadGateway, CheckoutResponse{
			Status:  "partially_completed",
			OrderID: result.OrderID,
			Message: result.Message(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
