package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fchanaud/tennis-camp-api/internal/api/handler/v1/request"
	"github.com/fchanaud/tennis-camp-api/internal/api/handler/v1/response"
	"github.com/fchanaud/tennis-camp-api/internal/domain"
	"github.com/fchanaud/tennis-camp-api/internal/service"
)

type RegistrationService interface {
	CreateRegistration(ctx context.Context, registration domain.Registration, optionTypes []domain.OptionType) (domain.Registration, error)
	GetRegistration(ctx context.Context, campID, registrationID uint) (domain.Registration, error)
	UpdateRegistration(ctx context.Context, campID, registrationID uint, updated domain.Registration, optionTypes []domain.OptionType) (domain.Registration, error)
}

type RegistrationHandler struct {
	svc         RegistrationService
	waitlistURL string
}

func NewRegistrationHandler(svc RegistrationService, waitlistURL string) *RegistrationHandler {
	return &RegistrationHandler{
		svc:         svc,
		waitlistURL: waitlistURL,
	}
}

func toOptionTypes(options []string) []domain.OptionType {
	types := make([]domain.OptionType, 0, len(options))
	for _, o := range options {
		types = append(types, domain.OptionType(o))
	}
	return types
}

// HandleCreateRegistration godoc
// @Summary      Register for a camp
// @Description  Creates a pending registration when the camp has spots left
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Param        campID  path      int                                true  "camp ID"
// @Param        input   body      request.CreateRegistrationRequest  true  "registration details"
// @Success      200     {object}  domain.Registration
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /camps/{campID}/registrations [post]
func (h *RegistrationHandler) HandleCreateRegistration(ctx *gin.Context) {
	campID, err := strconv.ParseUint(ctx.Param("campID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid camp ID")))
		return
	}

	var input request.CreateRegistrationRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	registration, err := h.svc.CreateRegistration(ctx, domain.Registration{
		CampID:         uint(campID),
		Name:           input.Name,
		Email:          input.Email,
		WhatsApp:       input.WhatsApp,
		Experience:     input.Experience,
		PlayFrequency:  input.PlayFrequency,
		BedroomType:    domain.BedroomType(input.BedroomType),
		PolicyAccepted: input.PolicyAccepted,
	}, toOptionTypes(input.Options))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCampNotFound):
			response.RenderErr(ctx, response.ErrNotFound("camp", "ID", campID))
		case errors.Is(err, service.ErrCampFull):
			response.RenderErr(ctx, response.ErrCampFull(h.waitlistURL))
		case errors.Is(err, service.ErrUnknownOption):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("HandleCreateRegistration -> h.svc.CreateRegistration -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, registration)
}

// HandleGetRegistration godoc
// @Summary      Get a registration
// @Description  Retrieves a registration with its options
// @Tags         registrations
// @Produce      json
// @Param        campID          path      int  true  "camp ID"
// @Param        registrationID  path      int  true  "registration ID"
// @Success      200             {object}  domain.Registration
// @Failure      400             {object}  response.Err
// @Failure      404             {object}  response.Err
// @Failure      500             {object}  response.Err
// @Router       /camps/{campID}/registrations/{registrationID} [get]
func (h *RegistrationHandler) HandleGetRegistration(ctx *gin.Context) {
	campID, registrationID, respErr := registrationPath(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	registration, err := h.svc.GetRegistration(ctx, campID, registrationID)
	if err != nil {
		if errors.Is(err, service.ErrRegistrationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("registration", "ID", registrationID))
			return
		}

		err = fmt.Errorf("HandleGetRegistration -> h.svc.GetRegistration -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, registration)
}

// HandleUpdateRegistration godoc
// @Summary      Update a registration
// @Description  Replaces participant details and options while the registration is still pending
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Param        campID          path      int                                true  "camp ID"
// @Param        registrationID  path      int                                true  "registration ID"
// @Param        input           body      request.UpdateRegistrationRequest  true  "updated details"
// @Success      200             {object}  domain.Registration
// @Failure      400             {object}  response.Err
// @Failure      404             {object}  response.Err
// @Failure      500             {object}  response.Err
// @Router       /camps/{campID}/registrations/{registrationID} [patch]
func (h *RegistrationHandler) HandleUpdateRegistration(ctx *gin.Context) {
	campID, registrationID, respErr := registrationPath(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var input request.UpdateRegistrationRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	registration, err := h.svc.UpdateRegistration(ctx, campID, registrationID, domain.Registration{
		Name:          input.Name,
		Email:         input.Email,
		WhatsApp:      input.WhatsApp,
		Experience:    input.Experience,
		PlayFrequency: input.PlayFrequency,
		BedroomType:   domain.BedroomType(input.BedroomType),
	}, toOptionTypes(input.Options))
	if err != nil {
		var statusErr *domain.StatusError
		switch {
		case errors.Is(err, service.ErrRegistrationNotFound):
			response.RenderErr(ctx, response.ErrNotFound("registration", "ID", registrationID))
		case errors.As(err, &statusErr):
			response.RenderErr(ctx, response.ErrBadRequest(statusErr))
		case errors.Is(err, service.ErrUnknownOption):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("HandleUpdateRegistration -> h.svc.UpdateRegistration -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, registration)
}

func registrationPath(ctx *gin.Context) (uint, uint, *response.Err) {
	campID, err := strconv.ParseUint(ctx.Param("campID"), 10, 64)
	if err != nil {
		return 0, 0, response.ErrBadRequest(errors.New("invalid camp ID"))
	}

	registrationID, err := strconv.ParseUint(ctx.Param("registrationID"), 10, 64)
	if err != nil {
		return 0, 0, response.ErrBadRequest(errors.New("invalid registration ID"))
	}

	return uint(campID), uint(registrationID), nil
}
