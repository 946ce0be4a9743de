// internal/payments/checkout.go
package payments

import (
	"context"

	"github.com/hautevault/boutique-backend/internal/config"
)

// Line is one shopping-bag entry submitted at checkout. The bag itself
// lives in the browser; the server only ever sees these lines.
type Line struct {
	ID       string  `json:"id" validate:"required"`
	Title    string  `json:"title" validate:"required"`
	PriceGBP float64 `json:"priceGbp" validate:"min=0"`
	Qty      int     `json:"qty"`
}

// Session is the outcome of a checkout attempt. Configured=false means
// no payment provider is set up and the caller should fall back to a
// simulated checkout.
type Session struct {
	Configured bool   `json:"configured"`
	URL        string `json:"url,omitempty"`
	ID         string `json:"id,omitempty"`
}

// Provider creates hosted payment sessions. Stripe when credentials
// exist, a no-op variant otherwise.
type Provider interface {
	Configured() bool
	CreateSession(ctx context.Context, origin string, lines []Line) (*Session, error)
}

func New(cfg config.PaymentConfig) Provider {
	if cfg.Configured() {
		return NewStripe(cfg)
	}
	return Unconfigured{}
}

// Unconfigured reports that no payment provider is available.
type Unconfigured struct{}

func (Unconfigured) Configured() bool { return false }

func (Unconfigured) CreateSession(context.Context, string, []Line) (*Session, error) {
	return &Session{Configured: false}, nil
}
