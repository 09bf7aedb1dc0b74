package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
)

var errConsentNotGiven = errors.New("consent is required before feedback can be stored")

type SubmitFeedbackRequest struct {
	CoachingRating      int      `json:"coaching_rating" binding:"required,min=1,max=5"`
	FacilitiesRating    int      `json:"facilities_rating" binding:"required,min=1,max=5"`
	AccommodationRating int      `json:"accommodation_rating" binding:"required,min=1,max=5"`
	FoodRating          int      `json:"food_rating" binding:"required,min=1,max=5"`
	OverallRating       int      `json:"overall_rating" binding:"required,min=1,max=5"`
	Comment             string   `json:"comment"`
	PhotoURLs           []string `json:"photo_urls"`
	ConsentGiven        bool     `json:"consent_given"`
}

func (req *SubmitFeedbackRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.CoachingRating, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&req.FacilitiesRating, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&req.AccommodationRating, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&req.FoodRating, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&req.OverallRating, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&req.Comment, validation.Length(0, 2000)),
	)
	if err != nil {
		return err
	}

	if !req.ConsentGiven {
		return errConsentNotGiven
	}

	return nil
}
