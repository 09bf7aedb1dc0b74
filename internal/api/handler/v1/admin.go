package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fchanaud/tennis-camp-api/internal/api/handler/v1/response"
	"github.com/fchanaud/tennis-camp-api/internal/domain"
	"github.com/fchanaud/tennis-camp-api/internal/service"
)

type AdminRegistrationService interface {
	ConfirmManualPayment(ctx context.Context, registrationID uint) (domain.Registration, error)
	CancelRegistration(ctx context.Context, registrationID uint) (domain.Registration, error)
}

type AdminHandler struct {
	svc  AdminRegistrationService
	uSvc UserService
}

func NewAdminHandler(svc AdminRegistrationService, uSvc UserService) *AdminHandler {
	return &AdminHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

func (h *AdminHandler) requireAdmin(ctx *gin.Context) *response.Err {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		return respErr
	}

	if user.Role != "admin" {
		return response.ErrPermissionDenied(fmt.Errorf("user %v is not an admin", user.ID))
	}

	return nil
}

// HandleConfirmManualPayment godoc
// @Summary      Confirm a manual transfer
// @Description  Marks a manual bank transfer as verified and confirms the registration. Admin only.
// @Tags         admin
// @Produce      json
// @Param        registrationID  path      int  true  "registration ID"
// @Success      200             {object}  domain.Registration
// @Failure      400             {object}  response.Err
// @Failure      401             {object}  response.Err
// @Failure      403             {object}  response.Err
// @Failure      404             {object}  response.Err
// @Failure      500             {object}  response.Err
// @Router       /admin/registrations/{registrationID}/confirm-payment [post]
// @Security BearerAuth
func (h *AdminHandler) HandleConfirmManualPayment(ctx *gin.Context) {
	if respErr := h.requireAdmin(ctx); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	registrationID, err := strconv.ParseUint(ctx.Param("registrationID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid registration ID")))
		return
	}

	registration, err := h.svc.ConfirmManualPayment(ctx, uint(registrationID))
	if err != nil {
		var statusErr *domain.StatusError
		switch {
		case errors.Is(err, service.ErrRegistrationNotFound):
			response.RenderErr(ctx, response.ErrNotFound("registration", "ID", registrationID))
		case errors.As(err, &statusErr):
			response.RenderErr(ctx, response.ErrBadRequest(statusErr))
		default:
			err = fmt.Errorf("HandleConfirmManualPayment -> h.svc.ConfirmManualPayment -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, registration)
}

// HandleCancelRegistration godoc
// @Summary      Cancel a registration
// @Description  Cancels a registration that has not been confirmed yet. Admin only.
// @Tags         admin
// @Produce      json
// @Param        registrationID  path      int  true  "registration ID"
// @Success      200             {object}  domain.Registration
// @Failure      400             {object}  response.Err
// @Failure      401             {object}  response.Err
// @Failure      403             {object}  response.Err
// @Failure      404             {object}  response.Err
// @Failure      500             {object}  response.Err
// @Router       /admin/registrations/{registrationID}/cancel [post]
// @Security BearerAuth
func (h *AdminHandler) HandleCancelRegistration(ctx *gin.Context) {
	if respErr := h.requireAdmin(ctx); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	registrationID, err := strconv.ParseUint(ctx.Param("registrationID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid registration ID")))
		return
	}

	registration, err := h.svc.CancelRegistration(ctx, uint(registrationID))
	if err != nil {
		var statusErr *domain.StatusError
		switch {
		case errors.Is(err, service.ErrRegistrationNotFound):
			response.RenderErr(ctx, response.ErrNotFound("registration", "ID", registrationID))
		case errors.As(err, &statusErr):
			response.RenderErr(ctx, response.ErrBadRequest(statusErr))
		default:
			err = fmt.Errorf("HandleCancelRegistration -> h.svc.CancelRegistration -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, registration)
}
