package domain

// PaymentMethod distinguishes the two supported payment flows
type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodCash PaymentMethod = "cash"
)

// PaymentDetails is the payment leg of a checkout attempt. It is a closed
// union: CardPayment and CashPayment are the only implementations, so a type
// switch over both arms covers every case. Card data is an opaque
// pass-through; it is never validated beyond presence or stored.
type PaymentDetails interface {
	Method() PaymentMethod
	sealed()
}

// CardPayment pays by credit or debit card
type CardPayment struct {
	CardNumber string
	ExpiryDate string
	CVV        string
}

func (CardPayment) Method() PaymentMethod { return PaymentMethodCard }
func (CardPayment) sealed()               {}

// CashPayment pays cash on delivery and carries no further fields
type CashPayment struct{}

func (CashPayment) Method() PaymentMethod { return PaymentMethodCash }
func (CashPayment) sealed()               {}

// DeliveryDetails is the user-supplied fulfillment form for one checkout
// attempt. ScheduledDate is kept as the raw form value; the validator checks
// that it parses.
type DeliveryDetails struct {
	Customer      string
	Address       string
	ScheduledDate string
	Payment       PaymentDetails
}
