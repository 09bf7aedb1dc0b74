package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateCampRequest struct {
	StartDate   string `json:"start_date" binding:"required" format:"DD/MM/YYYY"`
	EndDate     string `json:"end_date" binding:"required" format:"DD/MM/YYYY"`
	PackageType string `json:"package_type" binding:"required"`
	MaxPlayers  int    `json:"max_players"`
	CoachID     *uint  `json:"coach_id"`
}

func (req *CreateCampRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StartDate, validation.Required),
		validation.Field(&req.EndDate, validation.Required),
		validation.Field(&req.PackageType, validation.Required,
			validation.In("tennis_only", "stay_and_play", "luxury_stay_and_play", "no_tennis")),
		validation.Field(&req.MaxPlayers, validation.Min(0)),
	)
}
