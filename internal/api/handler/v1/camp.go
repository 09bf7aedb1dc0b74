package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fchanaud/tennis-camp-api/internal/api/handler/v1/request"
	"github.com/fchanaud/tennis-camp-api/internal/api/handler/v1/response"
	"github.com/fchanaud/tennis-camp-api/internal/domain"
	"github.com/fchanaud/tennis-camp-api/internal/service"
)

type CampService interface {
	CreateCamp(ctx context.Context, camp domain.Camp) (domain.Camp, error)
	GetCamps(ctx context.Context) ([]domain.Camp, error)
	GetCamp(ctx context.Context, campID uint) (domain.Camp, error)
	CheckAvailability(ctx context.Context, campID uint) (domain.Availability, error)
}

type CampHandler struct {
	svc  CampService
	uSvc UserService
}

func NewCampHandler(svc CampService, uSvc UserService) *CampHandler {
	return &CampHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleGetCamps godoc
// @Summary      List camps
// @Description  Retrieves all camps ordered by start date
// @Tags         camps
// @Produce      json
// @Success      200  {array}   domain.Camp
// @Failure      500  {object}  response.Err
// @Router       /camps [get]
func (h *CampHandler) HandleGetCamps(ctx *gin.Context) {
	camps, err := h.svc.GetCamps(ctx)
	if err != nil {
		err = fmt.Errorf("HandleGetCamps -> h.svc.GetCamps -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, camps)
}

// HandleGetCamp godoc
// @Summary      Get a camp
// @Description  Retrieves a single camp by ID
// @Tags         camps
// @Produce      json
// @Param        campID  path      int  true  "camp ID"
// @Success      200     {object}  domain.Camp
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /camps/{campID} [get]
func (h *CampHandler) HandleGetCamp(ctx *gin.Context) {
	campID, err := strconv.ParseUint(ctx.Param("campID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid camp ID")))
		return
	}

	camp, err := h.svc.GetCamp(ctx, uint(campID))
	if err != nil {
		if errors.Is(err, service.ErrCampNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("camp", "ID", campID))
			return
		}

		err = fmt.Errorf("HandleGetCamp -> h.svc.GetCamp -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, camp)
}

// HandleCheckAvailability godoc
// @Summary      Check camp availability
// @Description  Reports confirmed headcount against the camp's capacity
// @Tags         camps
// @Produce      json
// @Param        campID  path      int  true  "camp ID"
// @Success      200     {object}  domain.Availability
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /camps/{campID}/availability [get]
func (h *CampHandler) HandleCheckAvailability(ctx *gin.Context) {
	campID, err := strconv.ParseUint(ctx.Param("campID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid camp ID")))
		return
	}

	availability, err := h.svc.CheckAvailability(ctx, uint(campID))
	if err != nil {
		if errors.Is(err, service.ErrCampNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("camp", "ID", campID))
			return
		}

		err = fmt.Errorf("HandleCheckAvailability -> h.svc.CheckAvailability -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, availability)
}

// HandleCreateCamp godoc
// @Summary      Create a camp
// @Description  Creates a new camp. Admin only.
// @Tags         camps
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateCampRequest  true  "camp details"
// @Success      201    {object}  domain.Camp
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      403    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /admin/camps [post]
// @Security BearerAuth
func (h *CampHandler) HandleCreateCamp(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if user.Role != "admin" {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not an admin", user.ID)))
		return
	}

	var input request.CreateCampRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	startDate, err := time.Parse("02/01/2006", input.StartDate)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("start_date must be in DD/MM/YYYY format")))
		return
	}

	endDate, err := time.Parse("02/01/2006", input.EndDate)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("end_date must be in DD/MM/YYYY format")))
		return
	}

	camp, err := h.svc.CreateCamp(ctx, domain.Camp{
		StartDate:   startDate,
		EndDate:     endDate,
		PackageType: domain.PackageType(input.PackageType),
		MaxPlayers:  input.MaxPlayers,
		CoachID:     input.CoachID,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidDateRange) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("HandleCreateCamp -> h.svc.CreateCamp -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, camp)
}
