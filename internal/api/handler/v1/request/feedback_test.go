package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmitFeedbackRequest() SubmitFeedbackRequest {
	return SubmitFeedbackRequest{
		CoachingRating:      5,
		FacilitiesRating:    4,
		AccommodationRating: 4,
		FoodRating:          5,
		OverallRating:       5,
		Comment:             "Great week, the coaching was excellent.",
		ConsentGiven:        true,
	}
}

func TestSubmitFeedbackRequest_Validate(t *testing.T) {
	req := validSubmitFeedbackRequest()
	require.NoError(t, req.Validate())
}

func TestSubmitFeedbackRequest_Validate_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SubmitFeedbackRequest)
	}{
		{"consent not given", func(r *SubmitFeedbackRequest) { r.ConsentGiven = false }},
		{"rating below range", func(r *SubmitFeedbackRequest) { r.CoachingRating = 0 }},
		{"rating above range", func(r *SubmitFeedbackRequest) { r.OverallRating = 6 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSubmitFeedbackRequest()
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}
