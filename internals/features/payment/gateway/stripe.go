package gateway

import (
	"context"
	"strings"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"
)

// StripeClient wraps the pieces of the Stripe API the card-payment path
// uses. Wrapping keeps handlers mockable in tests.
type StripeClient struct {
	cl *client.API
}

var Stripe *StripeClient

// InitStripe is called once at bootstrap.
func InitStripe(secretKey string) {
	api := &client.API{}
	api.Init(secretKey, nil)
	Stripe = &StripeClient{cl: api}
}

// CreatePaymentIntent opens a card payment for the given amount in the
// smallest currency unit and returns the client secret the SPA confirms
// with.
func (s *StripeClient) CreatePaymentIntent(_ context.Context, amount int64, currency string) (*stripe.PaymentIntent, error) {
	if strings.TrimSpace(currency) == "" {
		currency = "usd"
	}
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(strings.ToLower(currency)),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
	}
	return s.cl.PaymentIntents.New(params)
}
