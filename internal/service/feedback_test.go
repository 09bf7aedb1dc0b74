package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fchanaud/tennis-camp-api/internal/domain"
	"github.com/fchanaud/tennis-camp-api/internal/repository"
)

type fakeFeedbackRepo struct {
	feedbacks map[uint][]domain.Feedback
	nextID    uint
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{feedbacks: make(map[uint][]domain.Feedback)}
}

func (f *fakeFeedbackRepo) Create(_ context.Context, feedback domain.Feedback) (domain.Feedback, error) {
	for _, existing := range f.feedbacks[feedback.CampID] {
		if existing.PlayerID == feedback.PlayerID {
			return domain.Feedback{}, repository.ErrFeedbackExists
		}
	}

	f.nextID++
	feedback.ID = f.nextID
	f.feedbacks[feedback.CampID] = append(f.feedbacks[feedback.CampID], feedback)
	return feedback, nil
}

func (f *fakeFeedbackRepo) FindByCampID(_ context.Context, campID uint) ([]domain.Feedback, error) {
	return f.feedbacks[campID], nil
}

func newFeedbackFixture() (*fakeFeedbackRepo, *fakeCampRepo, *FeedbackService) {
	repo := newFakeFeedbackRepo()
	campRepo := newFakeCampRepo()
	campRepo.camps[1] = domain.Camp{ID: 1}

	return repo, campRepo, NewFeedbackService(repo, campRepo)
}

func TestFeedbackService_SubmitFeedback(t *testing.T) {
	_, _, svc := newFeedbackFixture()

	feedback, err := svc.SubmitFeedback(context.Background(), domain.Feedback{
		CampID:         1,
		PlayerID:       2,
		CoachingRating: 5,
		OverallRating:  4,
		Comment:        "Great week",
		ConsentGiven:   true,
	})

	require.NoError(t, err)
	assert.NotZero(t, feedback.ID)
}

func TestFeedbackService_SubmitFeedback_NoConsent(t *testing.T) {
	_, _, svc := newFeedbackFixture()

	_, err := svc.SubmitFeedback(context.Background(), domain.Feedback{
		CampID:   1,
		PlayerID: 2,
	})

	assert.ErrorIs(t, err, ErrConsentRequired)
}

func TestFeedbackService_SubmitFeedback_Duplicate(t *testing.T) {
	_, _, svc := newFeedbackFixture()

	_, err := svc.SubmitFeedback(context.Background(), domain.Feedback{CampID: 1, PlayerID: 2, ConsentGiven: true})
	require.NoError(t, err)

	_, err = svc.SubmitFeedback(context.Background(), domain.Feedback{CampID: 1, PlayerID: 2, ConsentGiven: true})
	assert.ErrorIs(t, err, ErrFeedbackExists)
}

func TestFeedbackService_SubmitFeedback_CampNotFound(t *testing.T) {
	_, _, svc := newFeedbackFixture()

	_, err := svc.SubmitFeedback(context.Background(), domain.Feedback{CampID: 9, PlayerID: 2, ConsentGiven: true})

	assert.ErrorIs(t, err, ErrCampNotFound)
}

func TestFeedbackService_GetCampFeedback(t *testing.T) {
	repo, _, svc := newFeedbackFixture()
	repo.feedbacks[1] = []domain.Feedback{
		{ID: 1, CampID: 1, PlayerID: 2, OverallRating: 5},
		{ID: 2, CampID: 1, PlayerID: 3, OverallRating: 4},
	}

	feedbacks, err := svc.GetCampFeedback(context.Background(), 1)

	require.NoError(t, err)
	assert.Len(t, feedbacks, 2)
}
