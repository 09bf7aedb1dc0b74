package repository

import (
	"context"
	"fmt"

	"github.com/fchanaud/tennis-camp-api/internal/domain"
	"github.com/fchanaud/tennis-camp-api/internal/repository/dao"
)

var ErrPaymentNotFound = dao.ErrPaymentNotFound

type PaymentDAO interface {
	Insert(ctx context.Context, payment dao.Payment) (dao.Payment, error)
	FindByID(ctx context.Context, id uint) (dao.Payment, error)
	FindByProviderSessionID(ctx context.Context, sessionID string) (dao.Payment, error)
	FindByRegistrationID(ctx context.Context, registrationID uint) ([]dao.Payment, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

type PaymentRepository struct {
	dao PaymentDAO
}

func NewPaymentRepository(dao PaymentDAO) *PaymentRepository {
	return &PaymentRepository{
		dao: dao,
	}
}

func (r *PaymentRepository) domainToDao(p domain.Payment) dao.Payment {
	return dao.Payment{
		ID:                p.ID,
		RegistrationID:    p.RegistrationID,
		Method:            string(p.Method),
		Type:              string(p.Type),
		Amount:            p.Amount,
		Currency:          p.Currency,
		ProviderSessionID: p.ProviderSessionID,
		Reference:         p.Reference,
		Status:            string(p.Status),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (r *PaymentRepository) daoToDomain(p dao.Payment) domain.Payment {
	return domain.Payment{
		ID:                p.ID,
		RegistrationID:    p.RegistrationID,
		Method:            domain.PaymentMethod(p.Method),
		Type:              domain.PaymentType(p.Type),
		Amount:            p.Amount,
		Currency:          p.Currency,
		ProviderSessionID: p.ProviderSessionID,
		Reference:         p.Reference,
		Status:            domain.PaymentStatus(p.Status),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(payment))
	if err != nil {
		return domain.Payment{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id uint) (domain.Payment, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *PaymentRepository) FindByProviderSessionID(ctx context.Context, sessionID string) (domain.Payment, error) {
	found, err := r.dao.FindByProviderSessionID(ctx, sessionID)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("r.dao.FindByProviderSessionID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *PaymentRepository) FindByRegistrationID(ctx context.Context, registrationID uint) ([]domain.Payment, error) {
	found, err := r.dao.FindByRegistrationID(ctx, registrationID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByRegistrationID -> %w", err)
	}

	payments := make([]domain.Payment, len(found))
	for i, p := range found {
		payments[i] = r.daoToDomain(p)
	}

	return payments, nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, id uint, status domain.PaymentStatus) error {
	if err := r.dao.UpdateStatus(ctx, id, string(status)); err != nil {
		return fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	return nil
}
