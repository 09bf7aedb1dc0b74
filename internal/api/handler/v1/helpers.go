package v1

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/fchanaud/tennis-camp-api/internal/api/handler/v1/response"
	"github.com/fchanaud/tennis-camp-api/internal/api/middleware"
	"github.com/fchanaud/tennis-camp-api/internal/domain"
)

// UserService fetches the authenticated user behind a request.
type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
}

// getUserFromContext resolves the user set by the JWT middleware.
func getUserFromContext(ctx *gin.Context, svc UserService) (domain.User, *response.Err) {
	userID, ok := ctx.Get(middleware.ContextKeyUserID)
	if !ok {
		return domain.User{}, response.ErrUnauthorized(errors.New("missing user in request context"))
	}

	id, ok := userID.(uint)
	if !ok {
		return domain.User{}, response.ErrUnauthorized(errors.New("invalid user in request context"))
	}

	user, err := svc.GetUser(ctx, id)
	if err != nil {
		return domain.User{}, response.ErrUnauthorized(errors.New("unknown user"))
	}

	return user, nil
}
