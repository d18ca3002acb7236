package payments

import (
	"errors"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
)

// LineItem mirrors a cart entry into the hosted checkout page
type LineItem struct {
	Name       string
	Image      string
	UnitAmount int64 // smallest currency unit
	Quantity   int64
}

type CheckoutParams struct {
	LineItems  []LineItem
	SuccessURL string
	CancelURL  string
	Metadata   map[string]string
}

// Session is the subset of a provider checkout session the API needs
type Session struct {
	ID  string
	URL string
}

// Client creates hosted payment sessions. Handlers depend on this
// interface so tests can substitute a stub.
type Client interface {
	CreateCheckoutSession(p CheckoutParams) (*Session, error)
}

// StripeClient implements Client against Stripe Checkout
type StripeClient struct{}

func NewStripeClient(secretKey string) *StripeClient {
	stripe.Key = secretKey
	return &StripeClient{}
}

func (sc *StripeClient) CreateCheckoutSession(p CheckoutParams) (*Session, error) {
	var items []*stripe.CheckoutSessionLineItemParams
	for _, li := range p.LineItems {
		item := &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String("inr"),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:   stripe.String(li.Name),
					Images: stripe.StringSlice([]string{li.Image}),
				},
				UnitAmount: stripe.Int64(li.UnitAmount),
			},
			Quantity: stripe.Int64(li.Quantity),
		}
		items = append(items, item)
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		ShippingAddressCollection: &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice([]string{"GB", "US", "CA"}),
		},
		LineItems:  items,
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(p.SuccessURL),
		CancelURL:  stripe.String(p.CancelURL),
	}
	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}

	s, err := session.New(params)
	if err != nil {
		return nil, err
	}
	if s.URL == "" {
		return nil, errors.New("error while creating session")
	}
	return &Session{ID: s.ID, URL: s.URL}, nil
}
