package service

import (
	"time"

	"github.com/govipola/storefront/internal/domain"
)

// ValidationError is a delivery form rejection. It is reported to the user
// verbatim, so the reason strings name the offending field.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// scheduledDateLayouts accepts the datetime-local value the delivery form
// produces, with and without seconds, plus RFC 3339 for API callers.
var scheduledDateLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ValidateDeliveryDetails checks the delivery form before any remote call is
// made. Checks run in order and the first failure wins. The function is pure;
// now is passed in so the past-date rule stays deterministic.
func ValidateDeliveryDetails(details domain.DeliveryDetails, now time.Time) error {
	if details.Customer == "" {
		return &ValidationError{Reason: "customer name is required"}
	}
	if details.Address == "" {
		return &ValidationError{Reason: "delivery address is required"}
	}
	if details.ScheduledDate == "" {
		return &ValidationError{Reason: "scheduled delivery date is required"}
	}
	scheduled, ok := parseScheduledDate(details.ScheduledDate, now.Location())
	if !ok {
		return &ValidationError{Reason: "scheduled delivery date is not a valid date"}
	}
	if scheduled.Before(now) {
		return &ValidationError{Reason: "scheduled delivery date must not be in the past"}
	}
	if card, isCard := details.Payment.(domain.CardPayment); isCard {
		if card.CardNumber == "" {
			return &ValidationError{Reason: "card number is required"}
		}
		if card.ExpiryDate == "" {
			return &ValidationError{Reason: "card expiry date is required"}
		}
		if card.CVV == "" {
			return &ValidationError{Reason: "card cvv is required"}
		}
	}
	return nil
}

// parseScheduledDate parses zone-less datetime-local values in loc so the
// past-date comparison happens in the caller's zone, not UTC.
func parseScheduledDate(value string, loc *time.Location) (time.Time, bool) {
	for _, layout := range scheduledDateLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
