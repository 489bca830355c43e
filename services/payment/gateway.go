package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// IntentGateway creates remote payment intents.
type IntentGateway interface {
	// CreateIntent creates a card payment intent for amount (in cents) and
	// returns its client secret.
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// StripeGateway creates payment intents through the Stripe API. The API key is
// taken from stripe.Key.
type StripeGateway struct{}

func (StripeGateway) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe: failed to create payment intent: %w", err)
	}
	return pi.ClientSecret, nil
}
