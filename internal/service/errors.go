package service

import "errors"

var (
	ErrEmptyCart         = errors.New("cart is empty, nothing to checkout")
	ErrCheckoutInFlight  = errors.New("a checkout attempt is already in flight")
	ErrNoPendingDelivery = errors.New("no partially completed order is awaiting delivery")
)
