package payments

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

// IntentCreator asks the payment provider for a client secret the caller can
// use to complete a charge out of band. Completion is never observed here;
// the caller separately marks the registration paid and records the payment.
type IntentCreator interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
}

// StripeIntents is the Stripe-backed IntentCreator.
type StripeIntents struct {
	api *client.API
}

func NewStripeIntents(secretKey string) *StripeIntents {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeIntents{api: api}
}

func (s *StripeIntents) CreateIntent(ctx context.Context, price float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(MinorUnits(price)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}

// MinorUnits converts a major-unit price to integer minor units, truncating
// toward zero: 19.995 becomes 1999, not 2000. The epsilon compensates for
// two-decimal prices like 19.99 that have no exact float64 representation.
func MinorUnits(price float64) int64 {
	return int64(math.Trunc(price*100 + 1e-9))
}
