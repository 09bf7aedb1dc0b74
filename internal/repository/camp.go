package repository

import (
	"context"
	"fmt"

	"github.com/fchanaud/tennis-camp-api/internal/domain"
	"github.com/fchanaud/tennis-camp-api/internal/repository/dao"
)

var ErrCampNotFound = dao.ErrCampNotFound

type CampDAO interface {
	Insert(ctx context.Context, camp dao.Camp) (dao.Camp, error)
	FindByID(ctx context.Context, id uint) (dao.Camp, error)
	FindAll(ctx context.Context) ([]dao.Camp, error)
	CountConfirmed(ctx context.Context, campID uint) (int, error)
}

type CampRepository struct {
	dao CampDAO
}

func NewCampRepository(dao CampDAO) *CampRepository {
	return &CampRepository{
		dao: dao,
	}
}

func (r *CampRepository) domainToDao(c domain.Camp) dao.Camp {
	return dao.Camp{
		ID:          c.ID,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		PackageType: string(c.PackageType),
		MaxPlayers:  c.MaxPlayers,
		CoachID:     c.CoachID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (r *CampRepository) daoToDomain(c dao.Camp) domain.Camp {
	return domain.Camp{
		ID:          c.ID,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		PackageType: domain.PackageType(c.PackageType),
		MaxPlayers:  c.MaxPlayers,
		CoachID:     c.CoachID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (r *CampRepository) Create(ctx context.Context, camp domain.Camp) (domain.Camp, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(camp))
	if err != nil {
		return domain.Camp{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *CampRepository) FindByID(ctx context.Context, id uint) (domain.Camp, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Camp{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *CampRepository) FindAll(ctx context.Context) ([]domain.Camp, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	camps := make([]domain.Camp, len(found))
	for i, c := range found {
		camps[i] = r.daoToDomain(c)
	}

	return camps, nil
}

func (r *CampRepository) CountConfirmed(ctx context.Context, campID uint) (int, error) {
	count, err := r.dao.CountConfirmed(ctx, campID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountConfirmed -> %w", err)
	}

	return count, nil
}
