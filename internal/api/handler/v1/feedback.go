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

type FeedbackService interface {
	SubmitFeedback(ctx context.Context, feedback domain.Feedback) (domain.Feedback, error)
	GetCampFeedback(ctx context.Context, campID uint) ([]domain.Feedback, error)
}

type FeedbackHandler struct {
	svc  FeedbackService
	uSvc UserService
}

func NewFeedbackHandler(svc FeedbackService, uSvc UserService) *FeedbackHandler {
	return &FeedbackHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleSubmitFeedback godoc
// @Summary      Submit camp feedback
// @Description  Stores one feedback entry per player per camp, with explicit consent
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        campID  path      int                            true  "camp ID"
// @Param        input   body      request.SubmitFeedbackRequest  true  "feedback details"
// @Success      201     {object}  domain.Feedback
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /camps/{campID}/feedback [post]
// @Security BearerAuth
func (h *FeedbackHandler) HandleSubmitFeedback(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	campID, err := strconv.ParseUint(ctx.Param("campID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid camp ID")))
		return
	}

	var input request.SubmitFeedbackRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	feedback, err := h.svc.SubmitFeedback(ctx, domain.Feedback{
		CampID:              uint(campID),
		PlayerID:            user.ID,
		CoachingRating:      input.CoachingRating,
		FacilitiesRating:    input.FacilitiesRating,
		AccommodationRating: input.AccommodationRating,
		FoodRating:          input.FoodRating,
		OverallRating:       input.OverallRating,
		Comment:             input.Comment,
		PhotoURLs:           input.PhotoURLs,
		ConsentGiven:        input.ConsentGiven,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCampNotFound):
			response.RenderErr(ctx, response.ErrNotFound("camp", "ID", campID))
		case errors.Is(err, service.ErrConsentRequired), errors.Is(err, service.ErrFeedbackExists):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("HandleSubmitFeedback -> h.svc.SubmitFeedback -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, feedback)
}

// HandleGetCampFeedback godoc
// @Summary      List camp feedback
// @Description  Retrieves all feedback entries for a camp
// @Tags         feedback
// @Produce      json
// @Param        campID  path      int  true  "camp ID"
// @Success      200     {array}   domain.Feedback
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /camps/{campID}/feedback [get]
// @Security BearerAuth
func (h *FeedbackHandler) HandleGetCampFeedback(ctx *gin.Context) {
	if _, respErr := getUserFromContext(ctx, h.uSvc); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	campID, err := strconv.ParseUint(ctx.Param("campID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid camp ID")))
		return
	}

	feedback, err := h.svc.GetCampFeedback(ctx, uint(campID))
	if err != nil {
		if errors.Is(err, service.ErrCampNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("camp", "ID", campID))
			return
		}

		err = fmt.Errorf("HandleGetCampFeedback -> h.svc.GetCampFeedback -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, feedback)
}
