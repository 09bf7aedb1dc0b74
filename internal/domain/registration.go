package domain

import (
	"fmt"
	"time"
)

type RegistrationStatus string

const (
	RegistrationPending             RegistrationStatus = "pending"
	RegistrationAwaitingManualCheck RegistrationStatus = "awaiting_manual_verification"
	RegistrationConfirmed           RegistrationStatus = "confirmed"
	RegistrationCancelled           RegistrationStatus = "cancelled"
)

type BedroomType string

const (
	BedroomShared        BedroomType = "shared"
	BedroomPrivateDouble BedroomType = "private_double"
)

// StatusError reports an illegal registration state transition,
// naming the status the row actually holds.
type StatusError struct {
	Action  string
	Current RegistrationStatus
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("cannot %v from status %v", e.Action, e.Current)
}

type Registration struct {
	ID             uint                 `json:"id"`
	CampID         uint                 `json:"camp_id"`
	Name           string               `json:"name"`
	Email          string               `json:"email"`
	WhatsApp       string               `json:"whatsapp"`
	Experience     string               `json:"experience"`
	PlayFrequency  string               `json:"play_frequency"`
	BedroomType    BedroomType          `json:"bedroom_type"`
	PolicyAccepted bool                 `json:"policy_accepted"`
	Status         RegistrationStatus   `json:"status"`
	Options        []RegistrationOption `json:"options"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

type RegistrationOption struct {
	ID             uint       `json:"id"`
	RegistrationID uint       `json:"registration_id"`
	Type           OptionType `json:"type"`
	Price          int        `json:"price"`
}

// SubmitManualPayment is the optimistic transition taken when a
// manual-transfer payment is recorded, before any verification happens.
func (r *Registration) SubmitManualPayment() error {
	if r.Status != RegistrationPending {
		return &StatusError{Action: "submit manual payment", Current: r.Status}
	}
	r.Status = RegistrationAwaitingManualCheck
	return nil
}

// Confirm moves the registration to confirmed. Confirming an already
// confirmed registration succeeds so reconciliation stays idempotent.
func (r *Registration) Confirm() error {
	switch r.Status {
	case RegistrationPending, RegistrationAwaitingManualCheck, RegistrationConfirmed:
		r.Status = RegistrationConfirmed
		return nil
	default:
		return &StatusError{Action: "confirm", Current: r.Status}
	}
}

// ConfirmManual is the admin path and is only legal from
// awaiting_manual_verification.
func (r *Registration) ConfirmManual() error {
	if r.Status != RegistrationAwaitingManualCheck {
		return &StatusError{Action: "confirm manual payment", Current: r.Status}
	}
	r.Status = RegistrationConfirmed
	return nil
}

func (r *Registration) Cancel() error {
	switch r.Status {
	case RegistrationPending, RegistrationAwaitingManualCheck:
		r.Status = RegistrationCancelled
		return nil
	default:
		return &StatusError{Action: "cancel", Current: r.Status}
	}
}

// Editable reports whether participant fields and options may still be
// changed. Edits are only allowed before any payment has been started.
func (r *Registration) Editable() bool {
	return r.Status == RegistrationPending
}
