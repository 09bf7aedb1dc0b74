package domain

import "time"

type Feedback struct {
	ID                  uint      `json:"id"`
	CampID              uint      `json:"camp_id"`
	PlayerID            uint      `json:"player_id"`
	CoachingRating      int       `json:"coaching_rating"`
	FacilitiesRating    int       `json:"facilities_rating"`
	AccommodationRating int       `json:"accommodation_rating"`
	FoodRating          int       `json:"food_rating"`
	OverallRating       int       `json:"overall_rating"`
	Comment             string    `json:"comment"`
	PhotoURLs           []string  `json:"photo_urls"`
	ConsentGiven        bool      `json:"consent_given"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
