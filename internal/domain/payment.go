package domain

import "time"

type PaymentMethod string

const (
	PaymentMethodCard           PaymentMethod = "card"
	PaymentMethodManualTransfer PaymentMethod = "manual_transfer"
)

type PaymentType string

const (
	PaymentTypeDeposit PaymentType = "deposit"
	PaymentTypeFull    PaymentType = "full"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

type Payment struct {
	ID                uint          `json:"id"`
	RegistrationID    uint          `json:"registration_id"`
	Method            PaymentMethod `json:"method"`
	Type              PaymentType   `json:"type"`
	Amount            int           `json:"amount"`
	Currency          string        `json:"currency"`
	ProviderSessionID string        `json:"provider_session_id,omitempty"`
	Reference         string        `json:"reference,omitempty"`
	Status            PaymentStatus `json:"status"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}
