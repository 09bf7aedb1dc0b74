package response

import "github.com/fchanaud/tennis-camp-api/internal/domain"

type CreatePayment struct {
	Payment              domain.Payment `json:"payment"`
	RedirectURL          string         `json:"redirect_url,omitempty"`
	RequiresVerification bool           `json:"requires_verification"`
}

type VerifySession struct {
	Paid         bool                 `json:"paid"`
	Registration *domain.Registration `json:"registration,omitempty"`
}

type WebhookReceived struct {
	Received bool `json:"received"`
}
