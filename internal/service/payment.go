package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fchanaud/tennis-camp-api/internal/config"
	"github.com/fchanaud/tennis-camp-api/internal/domain"
	"github.com/fchanaud/tennis-camp-api/internal/repository"
)

var (
	ErrPaymentNotFound      = repository.ErrPaymentNotFound
	ErrCheckoutCreateFailed = errors.New("failed to create checkout session")
	ErrSessionNotPaid       = errors.New("checkout session is not paid")
	ErrPaymentStatusFinal   = errors.New("payment already has a final status")
)

type CheckoutParams struct {
	AmountCents int64
	Currency    string
	Description string
	SuccessURL  string
	CancelURL   string
	Metadata    map[string]string
}

type CheckoutSession struct {
	ID   string
	URL  string
	Paid bool
}

// CheckoutProvider is the external hosted-checkout integration
// (Stripe in production).
type CheckoutProvider interface {
	CreateCheckoutSession(ctx context.Context, params CheckoutParams) (CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (CheckoutSession, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment domain.Payment) (domain.Payment, error)
	FindByID(ctx context.Context, id uint) (domain.Payment, error)
	FindByProviderSessionID(ctx context.Context, sessionID string) (domain.Payment, error)
	FindByRegistrationID(ctx context.Context, registrationID uint) ([]domain.Payment, error)
	UpdateStatus(ctx context.Context, id uint, status domain.PaymentStatus) error
}

type PaymentService struct {
	payments      PaymentRepository
	registrations RegistrationRepository
	provider      CheckoutProvider
	conf          *config.StripeConfig
}

func NewPaymentService(payments PaymentRepository, registrations RegistrationRepository, provider CheckoutProvider, conf *config.StripeConfig) *PaymentService {
	return &PaymentService{
		payments:      payments,
		registrations: registrations,
		provider:      provider,
		conf:          conf,
	}
}

type CreatePaymentResult struct {
	Payment              domain.Payment
	RedirectURL          string
	RequiresVerification bool
}

// CreatePayment computes the amount due and starts either a hosted
// card checkout or a manual bank transfer.
func (s *PaymentService) CreatePayment(ctx context.Context, campID, registrationID uint, method domain.PaymentMethod, paymentType domain.PaymentType) (CreatePaymentResult, error) {
	registration, err := s.registrations.FindByID(ctx, registrationID)
	if err != nil {
		return CreatePaymentResult{}, fmt.Errorf("s.registrations.FindByID -> %w", err)
	}
	if registration.CampID != campID {
		return CreatePaymentResult{}, ErrRegistrationNotFound
	}

	quote := domain.PriceRegistration(registration.BedroomType, registration.Options, paymentType)

	switch method {
	case domain.PaymentMethodCard:
		return s.createCardPayment(ctx, registration, paymentType, quote)
	case domain.PaymentMethodManualTransfer:
		return s.createManualPayment(ctx, registration, paymentType, quote)
	default:
		return CreatePaymentResult{}, fmt.Errorf("unsupported payment method %q", method)
	}
}

func (s *PaymentService) createCardPayment(ctx context.Context, registration domain.Registration, paymentType domain.PaymentType, quote domain.Quote) (CreatePaymentResult, error) {
	session, err := s.provider.CreateCheckoutSession(ctx, CheckoutParams{
		AmountCents: int64(quote.AmountDue) * 100,
		Currency:    s.conf.Currency,
		Description: fmt.Sprintf("Tennis camp registration #%v (%v)", registration.ID, paymentType),
		SuccessURL:  s.conf.SuccessURL,
		CancelURL:   s.conf.CancelURL,
		Metadata: map[string]string{
			"registration_id": strconv.FormatUint(uint64(registration.ID), 10),
			"camp_id":         strconv.FormatUint(uint64(registration.CampID), 10),
		},
	})
	if err != nil {
		return CreatePaymentResult{}, fmt.Errorf("%w -> %v", ErrCheckoutCreateFailed, err)
	}

	payment, err := s.payments.Create(ctx, domain.Payment{
		RegistrationID:    registration.ID,
		Method:            domain.PaymentMethodCard,
		Type:              paymentType,
		Amount:            quote.AmountDue,
		Currency:          s.conf.Currency,
		ProviderSessionID: session.ID,
		Status:            domain.PaymentPending,
	})
	if err != nil {
		// The hosted session already exists at the provider; it is
		// orphaned from here on and expires on its own.
		zap.L().Error("payment row insert failed after checkout session creation",
			zap.String("session_id", session.ID),
			zap.Uint("registration_id", registration.ID),
			zap.Error(err))
		return CreatePaymentResult{}, fmt.Errorf("s.payments.Create -> %w", err)
	}

	return CreatePaymentResult{
		Payment:     payment,
		RedirectURL: session.URL,
	}, nil
}

func (s *PaymentService) createManualPayment(ctx context.Context, registration domain.Registration, paymentType domain.PaymentType, quote domain.Quote) (CreatePaymentResult, error) {
	// The transition is checked before any write so an already paid or
	// cancelled registration cannot restart the manual flow.
	if err := registration.SubmitManualPayment(); err != nil {
		return CreatePaymentResult{}, err
	}

	payment, err := s.payments.Create(ctx, domain.Payment{
		RegistrationID: registration.ID,
		Method:         domain.PaymentMethodManualTransfer,
		Type:           paymentType,
		Amount:         quote.AmountDue,
		Currency:       s.conf.Currency,
		Reference:      uuid.NewString(),
		Status:         domain.PaymentPending,
	})
	if err != nil {
		return CreatePaymentResult{}, fmt.Errorf("s.payments.Create -> %w", err)
	}

	// Optimistic transition: the registration awaits verification from
	// the moment the transfer is announced, before any money moved.
	if err = s.registrations.UpdateStatus(ctx, registration.ID, domain.RegistrationAwaitingManualCheck); err != nil {
		return CreatePaymentResult{}, fmt.Errorf("s.registrations.UpdateStatus -> %w", err)
	}

	return CreatePaymentResult{
		Payment:              payment,
		RequiresVerification: true,
	}, nil
}

// ConfirmCheckoutSession applies the completed-checkout transition:
// payment -> completed, registration -> confirmed. Both updates are
// independently idempotent, so webhook and client verification can race
// or repeat safely; the intermediate state (payment completed,
// registration not yet confirmed) is observable and harmless. A payment
// already marked failed is final and cannot be completed afterwards.
func (s *PaymentService) ConfirmCheckoutSession(ctx context.Context, sessionID string) (domain.Registration, error) {
	payment, err := s.payments.FindByProviderSessionID(ctx, sessionID)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("s.payments.FindByProviderSessionID -> %w", err)
	}

	if payment.Status == domain.PaymentFailed {
		return domain.Registration{}, fmt.Errorf("payment %v is %v: %w", payment.ID, payment.Status, ErrPaymentStatusFinal)
	}

	registration, err := s.registrations.FindByID(ctx, payment.RegistrationID)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("s.registrations.FindByID -> %w", err)
	}

	if payment.Status != domain.PaymentCompleted {
		if err = s.payments.UpdateStatus(ctx, payment.ID, domain.PaymentCompleted); err != nil {
			return domain.Registration{}, fmt.Errorf("s.payments.UpdateStatus -> %w", err)
		}
	}

	if registration.Status != domain.RegistrationConfirmed {
		if err = registration.Confirm(); err != nil {
			return domain.Registration{}, err
		}
		if err = s.registrations.UpdateStatus(ctx, registration.ID, domain.RegistrationConfirmed); err != nil {
			return domain.Registration{}, fmt.Errorf("s.registrations.UpdateStatus -> %w", err)
		}
	}

	return registration, nil
}

// VerifyCheckoutSession is the client-side fallback for missed
// webhooks: it asks the provider for the session state and, if paid,
// performs the same transition as the webhook.
func (s *PaymentService) VerifyCheckoutSession(ctx context.Context, sessionID string) (domain.Registration, bool, error) {
	session, err := s.provider.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		return domain.Registration{}, false, fmt.Errorf("s.provider.GetCheckoutSession -> %w", err)
	}

	if !session.Paid {
		return domain.Registration{}, false, nil
	}

	registration, err := s.ConfirmCheckoutSession(ctx, sessionID)
	if err != nil {
		return domain.Registration{}, false, err
	}

	return registration, true, nil
}

// SyncPaymentStatus reconciles a payment row against a provider-side
// status by session id (the non-webhook sync path).
func (s *PaymentService) SyncPaymentStatus(ctx context.Context, sessionID string, status domain.PaymentStatus) (domain.Payment, error) {
	payment, err := s.payments.FindByProviderSessionID(ctx, sessionID)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("s.payments.FindByProviderSessionID -> %w", err)
	}

	if payment.Status != status {
		// completed and failed are terminal; only same-status syncs are
		// accepted once a payment reached either of them.
		if payment.Status != domain.PaymentPending {
			return domain.Payment{}, fmt.Errorf("cannot move payment %v from %v to %v: %w",
				payment.ID, payment.Status, status, ErrPaymentStatusFinal)
		}
		if err = s.payments.UpdateStatus(ctx, payment.ID, status); err != nil {
			return domain.Payment{}, fmt.Errorf("s.payments.UpdateStatus -> %w", err)
		}
		payment.Status = status
	}

	if status == domain.PaymentCompleted {
		if _, err = s.ConfirmCheckoutSession(ctx, sessionID); err != nil {
			return domain.Payment{}, err
		}
	}

	return payment, nil
}

// ConfirmManualPayment is the admin action on a manual transfer. It is
// only legal when the registration is exactly awaiting_manual_verification.
func (s *PaymentService) ConfirmManualPayment(ctx context.Context, registrationID uint) (domain.Registration, error) {
	registration, err := s.registrations.FindByID(ctx, registrationID)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("s.registrations.FindByID -> %w", err)
	}

	if err = registration.ConfirmManual(); err != nil {
		return domain.Registration{}, err
	}

	if err = s.registrations.UpdateStatus(ctx, registration.ID, domain.RegistrationConfirmed); err != nil {
		return domain.Registration{}, fmt.Errorf("s.registrations.UpdateStatus -> %w", err)
	}

	s.completeLatestManualPayment(ctx, registrationID)

	return registration, nil
}

// completeLatestManualPayment marks the pending manual payment row
// completed. Best-effort: the registration transition already happened
// and a missing row only loses bookkeeping, not correctness.
func (s *PaymentService) completeLatestManualPayment(ctx context.Context, registrationID uint) {
	payments, err := s.payments.FindByRegistrationID(ctx, registrationID)
	if err != nil {
		zap.L().Error("failed to load payments for manual confirmation",
			zap.Uint("registration_id", registrationID),
			zap.Error(err))
		return
	}

	for i := len(payments) - 1; i >= 0; i-- {
		p := payments[i]
		if p.Method == domain.PaymentMethodManualTransfer && p.Status == domain.PaymentPending {
			if err = s.payments.UpdateStatus(ctx, p.ID, domain.PaymentCompleted); err != nil {
				zap.L().Error("failed to complete manual payment",
					zap.Uint("payment_id", p.ID),
					zap.Error(err))
			}
			return
		}
	}

	zap.L().Warn("no pending manual payment found on confirmation",
		zap.Uint("registration_id", registrationID))
}

// CancelRegistration is the explicit admin cancellation transition.
func (s *PaymentService) CancelRegistration(ctx context.Context, registrationID uint) (domain.Registration, error) {
	registration, err := s.registrations.FindByID(ctx, registrationID)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("s.registrations.FindByID -> %w", err)
	}

	if err = registration.Cancel(); err != nil {
		return domain.Registration{}, err
	}

	if err = s.registrations.UpdateStatus(ctx, registration.ID, domain.RegistrationCancelled); err != nil {
		return domain.Registration{}, fmt.Errorf("s.registrations.UpdateStatus -> %w", err)
	}

	return registration, nil
}
