package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fchanaud/tennis-camp-api/internal/api/handler/v1/request"
	"github.com/fchanaud/tennis-camp-api/internal/api/handler/v1/response"
	"github.com/fchanaud/tennis-camp-api/internal/domain"
	"github.com/fchanaud/tennis-camp-api/internal/pkg/stripepay"
	"github.com/fchanaud/tennis-camp-api/internal/service"
)

type PaymentService interface {
	CreatePayment(ctx context.Context, campID, registrationID uint, method domain.PaymentMethod, paymentType domain.PaymentType) (service.CreatePaymentResult, error)
	ConfirmCheckoutSession(ctx context.Context, sessionID string) (domain.Registration, error)
	VerifyCheckoutSession(ctx context.Context, sessionID string) (domain.Registration, bool, error)
	SyncPaymentStatus(ctx context.Context, sessionID string, status domain.PaymentStatus) (domain.Payment, error)
}

// WebhookParser verifies and decodes provider webhook payloads.
type WebhookParser interface {
	ParseWebhookEvent(payload []byte, signatureHeader string) (stripepay.WebhookEvent, error)
}

type PaymentHandler struct {
	svc    PaymentService
	parser WebhookParser
}

func NewPaymentHandler(svc PaymentService, parser WebhookParser) *PaymentHandler {
	return &PaymentHandler{
		svc:    svc,
		parser: parser,
	}
}

// HandleCreatePayment godoc
// @Summary      Start a payment
// @Description  Starts a card checkout or records a manual bank transfer for a registration
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        campID          path      int                           true  "camp ID"
// @Param        registrationID  path      int                           true  "registration ID"
// @Param        input           body      request.CreatePaymentRequest  true  "payment details"
// @Success      200             {object}  response.CreatePayment
// @Failure      400             {object}  response.Err
// @Failure      404             {object}  response.Err
// @Failure      500             {object}  response.Err
// @Failure      502             {object}  response.Err
// @Router       /camps/{campID}/registrations/{registrationID}/payments [post]
func (h *PaymentHandler) HandleCreatePayment(ctx *gin.Context) {
	campID, registrationID, respErr := registrationPath(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var input request.CreatePaymentRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	result, err := h.svc.CreatePayment(ctx, campID, registrationID,
		domain.PaymentMethod(input.Method), domain.PaymentType(input.PaymentType))
	if err != nil {
		var statusErr *domain.StatusError
		switch {
		case errors.Is(err, service.ErrRegistrationNotFound):
			response.RenderErr(ctx, response.ErrNotFound("registration", "ID", registrationID))
		case errors.As(err, &statusErr):
			response.RenderErr(ctx, response.ErrBadRequest(statusErr))
		case errors.Is(err, service.ErrCheckoutCreateFailed):
			response.RenderErr(ctx, response.ErrBadGateway(err))
		default:
			err = fmt.Errorf("HandleCreatePayment -> h.svc.CreatePayment -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.CreatePayment{
		Payment:              result.Payment,
		RedirectURL:          result.RedirectURL,
		RequiresVerification: result.RequiresVerification,
	})
}

// HandleWebhook godoc
// @Summary      Stripe webhook
// @Description  Receives provider events and confirms registrations on checkout completion
// @Tags         payments
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.WebhookReceived
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /payments/webhook [post]
func (h *PaymentHandler) HandleWebhook(ctx *gin.Context) {
	payload, err := ctx.GetRawData()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event, err := h.parser.ParseWebhookEvent(payload, ctx.GetHeader("Stripe-Signature"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if !event.IsCheckoutCompleted() {
		// Other event types are acknowledged and ignored.
		ctx.JSON(http.StatusOK, response.WebhookReceived{Received: true})
		return
	}

	if _, err = h.svc.ConfirmCheckoutSession(ctx, event.SessionID); err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("payment", "sessionID", event.SessionID))
			return
		}
		if errors.Is(err, service.ErrPaymentStatusFinal) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("HandleWebhook -> h.svc.ConfirmCheckoutSession -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.WebhookReceived{Received: true})
}

// HandleVerifySession godoc
// @Summary      Verify a checkout session
// @Description  Client-side fallback that checks the session with the provider and confirms the registration when paid
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        input  body      request.VerifySessionRequest  true  "checkout session ID"
// @Success      200    {object}  response.VerifySession
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /payments/verify-session [post]
func (h *PaymentHandler) HandleVerifySession(ctx *gin.Context) {
	var input request.VerifySessionRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	registration, paid, err := h.svc.VerifyCheckoutSession(ctx, input.SessionID)
	if err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("payment", "sessionID", input.SessionID))
			return
		}
		if errors.Is(err, service.ErrPaymentStatusFinal) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("HandleVerifySession -> h.svc.VerifyCheckoutSession -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	resp := response.VerifySession{Paid: paid}
	if paid {
		resp.Registration = &registration
	}

	ctx.JSON(http.StatusOK, resp)
}

// HandleSyncPaymentStatus godoc
// @Summary      Sync a payment status
// @Description  Reconciles a payment row against a provider-reported status by session ID
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string                            true  "checkout session ID"
// @Param        input      body      request.SyncPaymentStatusRequest  true  "provider-reported status"
// @Success      200        {object}  domain.Payment
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /payments/{sessionID}/status [put]
func (h *PaymentHandler) HandleSyncPaymentStatus(ctx *gin.Context) {
	sessionID := ctx.Param("sessionID")
	if sessionID == "" {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("missing session ID")))
		return
	}

	var input request.SyncPaymentStatusRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	payment, err := h.svc.SyncPaymentStatus(ctx, sessionID, domain.PaymentStatus(input.Status))
	if err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("payment", "sessionID", sessionID))
			return
		}
		if errors.Is(err, service.ErrPaymentStatusFinal) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("HandleSyncPaymentStatus -> h.svc.SyncPaymentStatus -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, payment)
}
