// Package payments models the payment processor as an opaque checkout link.
// There is no verified callback; purchase confirmation is user-asserted.
package payments

import "mindtrackerd/internal/structures"

type CheckoutProvider interface {
	CheckoutURL() string
}

type StripeCheckout struct {
	url string
}

func NewCheckoutProvider(conf *structures.Config) CheckoutProvider {
	return &StripeCheckout{url: conf.Payment.CheckoutURL}
}

func (s *StripeCheckout) CheckoutURL() string {
	return s.url
}
