package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

var errPolicyNotAccepted = errors.New("the cancellation policy must be accepted")

type CreateRegistrationRequest struct {
	Name           string   `json:"name" binding:"required"`
	Email          string   `json:"email" binding:"required"`
	WhatsApp       string   `json:"whatsapp" binding:"required"`
	Experience     string   `json:"experience" binding:"required"`
	PlayFrequency  string   `json:"play_frequency" binding:"required"`
	BedroomType    string   `json:"bedroom_type" binding:"required"`
	PolicyAccepted bool     `json:"policy_accepted"`
	Options        []string `json:"options"`
}

func (req *CreateRegistrationRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.WhatsApp, validation.Required, validation.Length(6, 20)),
		validation.Field(&req.Experience, validation.Required,
			validation.In("beginner", "intermediate", "advanced", "competitive")),
		validation.Field(&req.PlayFrequency, validation.Required,
			validation.In("rarely", "monthly", "weekly", "several_times_a_week")),
		validation.Field(&req.BedroomType, validation.Required,
			validation.In("shared", "private_double")),
	)
	if err != nil {
		return err
	}

	if !req.PolicyAccepted {
		return errPolicyNotAccepted
	}

	return nil
}

type UpdateRegistrationRequest struct {
	Name          string   `json:"name" binding:"required"`
	Email         string   `json:"email" binding:"required"`
	WhatsApp      string   `json:"whatsapp" binding:"required"`
	Experience    string   `json:"experience" binding:"required"`
	PlayFrequency string   `json:"play_frequency" binding:"required"`
	BedroomType   string   `json:"bedroom_type" binding:"required"`
	Options       []string `json:"options"`
}

func (req *UpdateRegistrationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.WhatsApp, validation.Required, validation.Length(6, 20)),
		validation.Field(&req.Experience, validation.Required,
			validation.In("beginner", "intermediate", "advanced", "competitive")),
		validation.Field(&req.PlayFrequency, validation.Required,
			validation.In("rarely", "monthly", "weekly", "several_times_a_week")),
		validation.Field(&req.BedroomType, validation.Required,
			validation.In("shared", "private_double")),
	)
}
