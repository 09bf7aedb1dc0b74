package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fchanaud/tennis-camp-api/internal/domain"
	"github.com/fchanaud/tennis-camp-api/internal/repository"
)

var (
	ErrCampNotFound     = repository.ErrCampNotFound
	ErrInvalidDateRange = errors.New("camp end date must be after its start date")
)

type CampRepository interface {
	Create(ctx context.Context, camp domain.Camp) (domain.Camp, error)
	FindByID(ctx context.Context, id uint) (domain.Camp, error)
	FindAll(ctx context.Context) ([]domain.Camp, error)
	CountConfirmed(ctx context.Context, campID uint) (int, error)
}

type CampService struct {
	repo CampRepository
}

func NewCampService(repo CampRepository) *CampService {
	return &CampService{
		repo: repo,
	}
}

func (s *CampService) CreateCamp(ctx context.Context, camp domain.Camp) (domain.Camp, error) {
	if !camp.EndDate.After(camp.StartDate) {
		return domain.Camp{}, ErrInvalidDateRange
	}

	created, err := s.repo.Create(ctx, camp)
	if err != nil {
		return domain.Camp{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *CampService) GetCamps(ctx context.Context) ([]domain.Camp, error) {
	camps, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return camps, nil
}

func (s *CampService) GetCamp(ctx context.Context, campID uint) (domain.Camp, error) {
	camp, err := s.repo.FindByID(ctx, campID)
	if err != nil {
		return domain.Camp{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return camp, nil
}

// CheckAvailability compares the camp's confirmed-registration count
// against its capacity. It has no side effects; the registration DAO
// re-checks capacity at write time.
func (s *CampService) CheckAvailability(ctx context.Context, campID uint) (domain.Availability, error) {
	camp, err := s.repo.FindByID(ctx, campID)
	if err != nil {
		return domain.Availability{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	confirmed, err := s.repo.CountConfirmed(ctx, campID)
	if err != nil {
		return domain.Availability{}, fmt.Errorf("s.repo.CountConfirmed -> %w", err)
	}

	capacity := camp.Capacity()
	spots := capacity - confirmed
	if spots < 0 {
		spots = 0
	}

	return domain.Availability{
		IsFull:         confirmed >= capacity,
		AvailableSpots: spots,
		ConfirmedCount: confirmed,
		MaxPlayers:     capacity,
	}, nil
}
