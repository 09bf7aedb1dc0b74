package response

import "github.com/fchanaud/tennis-camp-api/internal/domain"

type Auth struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}
