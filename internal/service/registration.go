package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fchanaud/tennis-camp-api/internal/domain"
	"github.com/fchanaud/tennis-camp-api/internal/repository"
)

var (
	ErrRegistrationNotFound = repository.ErrRegistrationNotFound
	ErrCampFull             = repository.ErrCampFull
	ErrUnknownOption        = errors.New("unknown registration option")
)

type RegistrationRepository interface {
	Create(ctx context.Context, registration domain.Registration, options []domain.RegistrationOption) (domain.Registration, error)
	FindByID(ctx context.Context, id uint) (domain.Registration, error)
	Update(ctx context.Context, registration domain.Registration, options []domain.RegistrationOption) (domain.Registration, error)
	UpdateStatus(ctx context.Context, id uint, status domain.RegistrationStatus) error
}

type RegistrationService struct {
	repo     RegistrationRepository
	campRepo CampRepository
}

func NewRegistrationService(repo RegistrationRepository, campRepo CampRepository) *RegistrationService {
	return &RegistrationService{
		repo:     repo,
		campRepo: campRepo,
	}
}

// buildOptions resolves option types against the fixed price table.
func buildOptions(types []domain.OptionType) ([]domain.RegistrationOption, error) {
	options := make([]domain.RegistrationOption, len(types))
	for i, t := range types {
		price, err := domain.OptionPrice(t)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnknownOption, t)
		}
		options[i] = domain.RegistrationOption{
			Type:  t,
			Price: price,
		}
	}
	return options, nil
}

// CreateRegistration persists a pending registration plus its add-ons.
// The capacity check happens atomically inside the insert, so the
// sequential invariant confirmedCount <= capacity holds at write time.
func (s *RegistrationService) CreateRegistration(ctx context.Context, registration domain.Registration, optionTypes []domain.OptionType) (domain.Registration, error) {
	if _, err := s.campRepo.FindByID(ctx, registration.CampID); err != nil {
		if errors.Is(err, ErrCampNotFound) {
			return domain.Registration{}, ErrCampNotFound
		}
		return domain.Registration{}, fmt.Errorf("s.campRepo.FindByID -> %w", err)
	}

	options, err := buildOptions(optionTypes)
	if err != nil {
		return domain.Registration{}, err
	}

	registration.Status = domain.RegistrationPending

	created, err := s.repo.Create(ctx, registration, options)
	if err != nil {
		if errors.Is(err, ErrCampFull) {
			return domain.Registration{}, ErrCampFull
		}
		return domain.Registration{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *RegistrationService) GetRegistration(ctx context.Context, campID, registrationID uint) (domain.Registration, error) {
	registration, err := s.repo.FindByID(ctx, registrationID)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if registration.CampID != campID {
		return domain.Registration{}, ErrRegistrationNotFound
	}

	return registration, nil
}

// UpdateRegistration edits participant fields and fully replaces the
// option set. Only pending registrations are editable; the caller can
// never set the status.
func (s *RegistrationService) UpdateRegistration(ctx context.Context, campID, registrationID uint, updated domain.Registration, optionTypes []domain.OptionType) (domain.Registration, error) {
	existing, err := s.repo.FindByID(ctx, registrationID)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if existing.CampID != campID {
		return domain.Registration{}, ErrRegistrationNotFound
	}
	if !existing.Editable() {
		return domain.Registration{}, &domain.StatusError{Action: "edit registration", Current: existing.Status}
	}

	options, err := buildOptions(optionTypes)
	if err != nil {
		return domain.Registration{}, err
	}

	existing.Name = updated.Name
	existing.Email = updated.Email
	existing.WhatsApp = updated.WhatsApp
	existing.Experience = updated.Experience
	existing.PlayFrequency = updated.PlayFrequency
	existing.BedroomType = updated.BedroomType

	saved, err := s.repo.Update(ctx, existing, options)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return saved, nil
}
