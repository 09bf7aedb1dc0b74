package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fchanaud/tennis-camp-api/internal/domain"
	"github.com/fchanaud/tennis-camp-api/internal/repository"
)

var (
	ErrFeedbackExists  = repository.ErrFeedbackExists
	ErrConsentRequired = errors.New("consent is required before feedback can be stored")
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback domain.Feedback) (domain.Feedback, error)
	FindByCampID(ctx context.Context, campID uint) ([]domain.Feedback, error)
}

type FeedbackService struct {
	repo     FeedbackRepository
	campRepo CampRepository
}

func NewFeedbackService(repo FeedbackRepository, campRepo CampRepository) *FeedbackService {
	return &FeedbackService{
		repo:     repo,
		campRepo: campRepo,
	}
}

func (s *FeedbackService) SubmitFeedback(ctx context.Context, feedback domain.Feedback) (domain.Feedback, error) {
	if !feedback.ConsentGiven {
		return domain.Feedback{}, ErrConsentRequired
	}

	if _, err := s.campRepo.FindByID(ctx, feedback.CampID); err != nil {
		if errors.Is(err, ErrCampNotFound) {
			return domain.Feedback{}, ErrCampNotFound
		}
		return domain.Feedback{}, fmt.Errorf("s.campRepo.FindByID -> %w", err)
	}

	created, err := s.repo.Create(ctx, feedback)
	if err != nil {
		if errors.Is(err, ErrFeedbackExists) {
			return domain.Feedback{}, ErrFeedbackExists
		}
		return domain.Feedback{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *FeedbackService) GetCampFeedback(ctx context.Context, campID uint) ([]domain.Feedback, error) {
	if _, err := s.campRepo.FindByID(ctx, campID); err != nil {
		if errors.Is(err, ErrCampNotFound) {
			return nil, ErrCampNotFound
		}
		return nil, fmt.Errorf("s.campRepo.FindByID -> %w", err)
	}

	feedbacks, err := s.repo.FindByCampID(ctx, campID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByCampID -> %w", err)
	}

	return feedbacks, nil
}
