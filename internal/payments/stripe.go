// internal/payments/stripe.go
package payments

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/checkout/session"

	"github.com/hautevault/boutique-backend/internal/config"
)

// Stripe creates hosted Checkout sessions in GBP.
type Stripe struct{}

func NewStripe(cfg config.PaymentConfig) *Stripe {
	// Initialize Stripe
	stripe.Key = cfg.StripeSecretKey
	return &Stripe{}
}

func (s *Stripe) Configured() bool { return true }

func (s *Stripe) CreateSession(ctx context.Context, origin string, lines []Line) (*Session, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(lines))
	for _, line := range lines {
		qty := line.Qty
		if qty < 1 {
			qty = 1
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(int64(qty)),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String("gbp"),
				UnitAmount: stripe.Int64(int64(math.Round(line.PriceGBP * 100))),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:     stripe.String(line.Title),
					Metadata: map[string]string{"item_id": line.ID},
				},
			},
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:                stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:          stripe.String(origin + "/#/checkout/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:           stripe.String(origin + "/#/checkout/cancel"),
		LineItems:           lineItems,
		AllowPromotionCodes: stripe.Bool(true),
		CustomerCreation:    stripe.String(string(stripe.CheckoutSessionCustomerCreationIfRequired)),
	}
	params.Context = ctx

	checkoutSession, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return &Session{
		Configured: true,
		URL:        checkoutSession.URL,
		ID:         checkoutSession.ID,
	}, nil
}
