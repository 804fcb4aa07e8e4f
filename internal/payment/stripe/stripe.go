// Package stripe creates Stripe Checkout sessions for the single product.
package stripe

import (
	"context"
	"fmt"
	"strings"

	gerr "github.com/pcc1news/pcc1-manager/internal/errors"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
)

const defaultOrigin = "http://localhost:3000"

type Config struct {
	SecretKey    string `mapstructure:"secret_key"`
	PriceId      string `mapstructure:"price_id"`
	AutomaticTax bool   `mapstructure:"automatic_tax"`
}

// sessions is the part of the checkout session client we use.
type sessions interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type Processor struct {
	c        *Config
	sessions sessions
}

// New returns a processor. Without a secret key or price id every session
// request fails with gerr.ErrCheckoutDisabled.
func New(c *Config) *Processor {
	p := &Processor{c: c}
	if c.SecretKey != "" {
		p.sessions = &session.Client{B: stripe.GetBackend(stripe.APIBackend), Key: c.SecretKey}
	}
	return p
}

// CreateCheckoutSession returns the hosted checkout URL. Success and cancel
// pages are resolved against origin.
func (p *Processor) CreateCheckoutSession(ctx context.Context, origin string) (string, error) {
	if p.sessions == nil || p.c.PriceId == "" {
		return "", gerr.ErrCheckoutDisabled
	}

	origin = strings.TrimRight(origin, "/")
	if origin == "" {
		origin = defaultOrigin
	}

	params := &stripe.CheckoutSessionParams{
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(p.c.PriceId),
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(origin + "/shop/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(origin + "/shop?canceled=true"),
		AutomaticTax: &stripe.CheckoutSessionAutomaticTaxParams{
			Enabled: stripe.Bool(p.c.AutomaticTax),
		},
	}
	params.Context = ctx

	s, err := p.sessions.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	return s.URL, nil
}
