package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRegistrationRequest() CreateRegistrationRequest {
	return CreateRegistrationRequest{
		Name:           "Alice Martin",
		Email:          "alice@example.com",
		WhatsApp:       "+33612345678",
		Experience:     "intermediate",
		PlayFrequency:  "weekly",
		BedroomType:    "shared",
		PolicyAccepted: true,
		Options:        []string{"hammam"},
	}
}

func TestCreateRegistrationRequest_Validate(t *testing.T) {
	req := validCreateRegistrationRequest()
	require.NoError(t, req.Validate())
}

func TestCreateRegistrationRequest_Validate_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateRegistrationRequest)
	}{
		{"bad email", func(r *CreateRegistrationRequest) { r.Email = "not-an-email" }},
		{"unknown experience", func(r *CreateRegistrationRequest) { r.Experience = "legendary" }},
		{"unknown play frequency", func(r *CreateRegistrationRequest) { r.PlayFrequency = "daily" }},
		{"unknown bedroom type", func(r *CreateRegistrationRequest) { r.BedroomType = "suite" }},
		{"policy not accepted", func(r *CreateRegistrationRequest) { r.PolicyAccepted = false }},
		{"name too short", func(r *CreateRegistrationRequest) { r.Name = "A" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRegistrationRequest()
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestSignupRequest_Validate_Password(t *testing.T) {
	req := SignupRequest{
		Email:    "alice@example.com",
		Name:     "Alice Martin",
		Role:     "player",
		Password: "secret1234",
	}
	require.NoError(t, req.Validate())

	req.Password = "short1"
	assert.Error(t, req.Validate(), "too short")

	req.Password = "onlyletters"
	assert.Error(t, req.Validate(), "no digit")

	req.Password = "12345678901"
	assert.Error(t, req.Validate(), "no letter")
}
