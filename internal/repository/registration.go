package repository

import (
	"context"
	"fmt"

	"github.com/fchanaud/tennis-camp-api/internal/domain"
	"github.com/fchanaud/tennis-camp-api/internal/repository/dao"
)

var (
	ErrRegistrationNotFound = dao.ErrRegistrationNotFound
	ErrCampFull             = dao.ErrCampFull
)

type RegistrationDAO interface {
	Insert(ctx context.Context, registration dao.Registration, options []dao.RegistrationOption) (dao.Registration, error)
	FindByID(ctx context.Context, id uint) (dao.Registration, error)
	Update(ctx context.Context, registration dao.Registration, options []dao.RegistrationOption) (dao.Registration, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

type RegistrationRepository struct {
	dao RegistrationDAO
}

func NewRegistrationRepository(dao RegistrationDAO) *RegistrationRepository {
	return &RegistrationRepository{
		dao: dao,
	}
}

func (r *RegistrationRepository) domainToDao(reg domain.Registration) dao.Registration {
	return dao.Registration{
		ID:             reg.ID,
		CampID:         reg.CampID,
		Name:           reg.Name,
		Email:          reg.Email,
		WhatsApp:       reg.WhatsApp,
		Experience:     reg.Experience,
		PlayFrequency:  reg.PlayFrequency,
		BedroomType:    string(reg.BedroomType),
		PolicyAccepted: reg.PolicyAccepted,
		Status:         string(reg.Status),
		CreatedAt:      reg.CreatedAt,
		UpdatedAt:      reg.UpdatedAt,
	}
}

func (r *RegistrationRepository) daoToDomain(reg dao.Registration) domain.Registration {
	options := make([]domain.RegistrationOption, len(reg.Options))
	for i, opt := range reg.Options {
		options[i] = domain.RegistrationOption{
			ID:             opt.ID,
			RegistrationID: opt.RegistrationID,
			Type:           domain.OptionType(opt.Type),
			Price:          opt.Price,
		}
	}

	return domain.Registration{
		ID:             reg.ID,
		CampID:         reg.CampID,
		Name:           reg.Name,
		Email:          reg.Email,
		WhatsApp:       reg.WhatsApp,
		Experience:     reg.Experience,
		PlayFrequency:  reg.PlayFrequency,
		BedroomType:    domain.BedroomType(reg.BedroomType),
		PolicyAccepted: reg.PolicyAccepted,
		Status:         domain.RegistrationStatus(reg.Status),
		Options:        options,
		CreatedAt:      reg.CreatedAt,
		UpdatedAt:      reg.UpdatedAt,
	}
}

func (r *RegistrationRepository) optionsDomainToDao(options []domain.RegistrationOption) []dao.RegistrationOption {
	daoOptions := make([]dao.RegistrationOption, len(options))
	for i, opt := range options {
		daoOptions[i] = dao.RegistrationOption{
			ID:             opt.ID,
			RegistrationID: opt.RegistrationID,
			Type:           string(opt.Type),
			Price:          opt.Price,
		}
	}
	return daoOptions
}

func (r *RegistrationRepository) Create(ctx context.Context, registration domain.Registration, options []domain.RegistrationOption) (domain.Registration, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(registration), r.optionsDomainToDao(options))
	if err != nil {
		return domain.Registration{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *RegistrationRepository) FindByID(ctx context.Context, id uint) (domain.Registration, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *RegistrationRepository) Update(ctx context.Context, registration domain.Registration, options []domain.RegistrationOption) (domain.Registration, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(registration), r.optionsDomainToDao(options))
	if err != nil {
		return domain.Registration{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *RegistrationRepository) UpdateStatus(ctx context.Context, id uint, status domain.RegistrationStatus) error {
	if err := r.dao.UpdateStatus(ctx, id, string(status)); err != nil {
		return fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	return nil
}
