package repository

import (
	"context"
	"fmt"

	"github.com/fchanaud/tennis-camp-api/internal/domain"
	"github.com/fchanaud/tennis-camp-api/internal/repository/dao"
)

var ErrFeedbackExists = dao.ErrFeedbackExists

type FeedbackDAO interface {
	Insert(ctx context.Context, feedback dao.Feedback) (dao.Feedback, error)
	FindByCampID(ctx context.Context, campID uint) ([]dao.Feedback, error)
}

type FeedbackRepository struct {
	dao FeedbackDAO
}

func NewFeedbackRepository(dao FeedbackDAO) *FeedbackRepository {
	return &FeedbackRepository{
		dao: dao,
	}
}

func (r *FeedbackRepository) domainToDao(f domain.Feedback) dao.Feedback {
	return dao.Feedback{
		ID:                  f.ID,
		CampID:              f.CampID,
		PlayerID:            f.PlayerID,
		CoachingRating:      f.CoachingRating,
		FacilitiesRating:    f.FacilitiesRating,
		AccommodationRating: f.AccommodationRating,
		FoodRating:          f.FoodRating,
		OverallRating:       f.OverallRating,
		Comment:             f.Comment,
		PhotoURLs:           f.PhotoURLs,
		ConsentGiven:        f.ConsentGiven,
		CreatedAt:           f.CreatedAt,
		UpdatedAt:           f.UpdatedAt,
	}
}

func (r *FeedbackRepository) daoToDomain(f dao.Feedback) domain.Feedback {
	return domain.Feedback{
		ID:                  f.ID,
		CampID:              f.CampID,
		PlayerID:            f.PlayerID,
		CoachingRating:      f.CoachingRating,
		FacilitiesRating:    f.FacilitiesRating,
		AccommodationRating: f.AccommodationRating,
		FoodRating:          f.FoodRating,
		OverallRating:       f.OverallRating,
		Comment:             f.Comment,
		PhotoURLs:           f.PhotoURLs,
		ConsentGiven:        f.ConsentGiven,
		CreatedAt:           f.CreatedAt,
		UpdatedAt:           f.UpdatedAt,
	}
}

func (r *FeedbackRepository) Create(ctx context.Context, feedback domain.Feedback) (domain.Feedback, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(feedback))
	if err != nil {
		return domain.Feedback{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *FeedbackRepository) FindByCampID(ctx context.Context, campID uint) ([]domain.Feedback, error) {
	found, err := r.dao.FindByCampID(ctx, campID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByCampID -> %w", err)
	}

	feedbacks := make([]domain.Feedback, len(found))
	for i, f := range found {
		feedbacks[i] = r.daoToDomain(f)
	}

	return feedbacks, nil
}
