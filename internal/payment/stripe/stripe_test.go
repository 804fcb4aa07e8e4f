package stripe

import (
	"context"
	"errors"
	"testing"

	gerr "github.com/pcc1news/pcc1-manager/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"
)

type fakeSessions struct {
	params *stripe.CheckoutSessionParams
	err    error
}

func (f *fakeSessions) New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	return &stripe.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.stripe.com/c/pay/cs_test_1"}, nil
}

func TestCreateCheckoutSession(t *testing.T) {
	fs := &fakeSessions{}
	p := &Processor{c: &Config{PriceId: "price_123", AutomaticTax: true}, sessions: fs}

	url, err := p.CreateCheckoutSession(context.Background(), "https://pcc1.news/")
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", url)

	require.Len(t, fs.params.LineItems, 1)
	assert.Equal(t, "price_123", *fs.params.LineItems[0].Price)
	assert.Equal(t, int64(1), *fs.params.LineItems[0].Quantity)
	assert.Equal(t, "payment", *fs.params.Mode)
	assert.Equal(t, "https://pcc1.news/shop/success?session_id={CHECKOUT_SESSION_ID}", *fs.params.SuccessURL)
	assert.Equal(t, "https://pcc1.news/shop?canceled=true", *fs.params.CancelURL)
	assert.True(t, *fs.params.AutomaticTax.Enabled)
	assert.NotNil(t, fs.params.Context)
}

func TestCreateCheckoutSessionDefaultOrigin(t *testing.T) {
	fs := &fakeSessions{}
	p := &Processor{c: &Config{PriceId: "price_123"}, sessions: fs}

	_, err := p.CreateCheckoutSession(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/shop?canceled=true", *fs.params.CancelURL)
}

func TestCreateCheckoutSessionError(t *testing.T) {
	p := &Processor{c: &Config{PriceId: "price_123"}, sessions: &fakeSessions{err: errors.New("card_declined")}}
	_, err := p.CreateCheckoutSession(context.Background(), "https://pcc1.news")
	assert.Error(t, err)
}

func TestCreateCheckoutSessionDisabled(t *testing.T) {
	p := New(&Config{PriceId: "price_123"})
	_, err := p.CreateCheckoutSession(context.Background(), "https://pcc1.news")
	assert.ErrorIs(t, err, gerr.ErrCheckoutDisabled)

	p = New(&Config{SecretKey: "sk_test_123"})
	_, err = p.CreateCheckoutSession(context.Background(), "https://pcc1.news")
	assert.ErrorIs(t, err, gerr.ErrCheckoutDisabled)
}
