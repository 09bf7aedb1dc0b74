package stripepay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	stripe "github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/checkout/session"
	"github.com/stripe/stripe-go/v72/webhook"

	"github.com/fchanaud/tennis-camp-api/internal/config"
	"github.com/fchanaud/tennis-camp-api/internal/service"
)

var (
	ErrMissingWebhookSecret = errors.New("stripe webhook secret is not configured")
	ErrInvalidSignature     = errors.New("invalid stripe webhook signature")
)

// eventCheckoutCompleted is the only event type acted upon; everything
// else is acknowledged and ignored.
const eventCheckoutCompleted = "checkout.session.completed"

// WebhookEvent is the provider event reduced to what the handlers need.
type WebhookEvent struct {
	Type      string
	SessionID string
}

// IsCheckoutCompleted reports whether the event should trigger the
// confirmation transition.
func (e WebhookEvent) IsCheckoutCompleted() bool {
	return e.Type == eventCheckoutCompleted
}

// Provider implements service.CheckoutProvider against Stripe.
type Provider struct {
	conf *config.StripeConfig
}

func New(conf *config.StripeConfig) *Provider {
	stripe.Key = conf.SecretKey

	return &Provider{
		conf: conf,
	}
}

func (p *Provider) CreateCheckoutSession(ctx context.Context, params service.CheckoutParams) (service.CheckoutSession, error) {
	sessionParams := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(params.SuccessURL),
		CancelURL:          stripe.String(params.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(params.Currency),
					UnitAmount: stripe.Int64(params.AmountCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(params.Description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	sessionParams.Context = ctx
	for k, v := range params.Metadata {
		sessionParams.AddMetadata(k, v)
	}

	s, err := session.New(sessionParams)
	if err != nil {
		return service.CheckoutSession{}, fmt.Errorf("session.New -> %w", err)
	}

	return service.CheckoutSession{
		ID:   s.ID,
		URL:  s.URL,
		Paid: s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
	}, nil
}

func (p *Provider) GetCheckoutSession(ctx context.Context, sessionID string) (service.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := session.Get(sessionID, params)
	if err != nil {
		return service.CheckoutSession{}, fmt.Errorf("session.Get -> %w", err)
	}

	return service.CheckoutSession{
		ID:   s.ID,
		URL:  s.URL,
		Paid: s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
	}, nil
}

// ParseWebhookEvent verifies the signature against the shared secret
// and extracts the session id for completion events.
func (p *Provider) ParseWebhookEvent(payload []byte, signatureHeader string) (WebhookEvent, error) {
	if p.conf.WebhookSecret == "" {
		return WebhookEvent{}, ErrMissingWebhookSecret
	}

	event, err := webhook.ConstructEvent(payload, signatureHeader, p.conf.WebhookSecret)
	if err != nil {
		return WebhookEvent{}, fmt.Errorf("%w -> %v", ErrInvalidSignature, err)
	}

	parsed := WebhookEvent{Type: event.Type}

	if parsed.IsCheckoutCompleted() {
		var s stripe.CheckoutSession
		if err = json.Unmarshal(event.Data.Raw, &s); err != nil {
			return WebhookEvent{}, fmt.Errorf("json.Unmarshal checkout session -> %w", err)
		}
		parsed.SessionID = s.ID
	}

	return parsed, nil
}
