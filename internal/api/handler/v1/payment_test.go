package v1

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fchanaud/tennis-camp-api/internal/domain"
	"github.com/fchanaud/tennis-camp-api/internal/pkg/stripepay"
	"github.com/fchanaud/tennis-camp-api/internal/service"
)

type fakePaymentService struct {
	createFn  func(ctx context.Context, campID, registrationID uint, method domain.PaymentMethod, paymentType domain.PaymentType) (service.CreatePaymentResult, error)
	confirmFn func(ctx context.Context, sessionID string) (domain.Registration, error)
	verifyFn  func(ctx context.Context, sessionID string) (domain.Registration, bool, error)
	syncFn    func(ctx context.Context, sessionID string, status domain.PaymentStatus) (domain.Payment, error)
}

func (f *fakePaymentService) CreatePayment(ctx context.Context, campID, registrationID uint, method domain.PaymentMethod, paymentType domain.PaymentType) (service.CreatePaymentResult, error) {
	return f.createFn(ctx, campID, registrationID, method, paymentType)
}

func (f *fakePaymentService) ConfirmCheckoutSession(ctx context.Context, sessionID string) (domain.Registration, error) {
	return f.confirmFn(ctx, sessionID)
}

func (f *fakePaymentService) VerifyCheckoutSession(ctx context.Context, sessionID string) (domain.Registration, bool, error) {
	return f.verifyFn(ctx, sessionID)
}

func (f *fakePaymentService) SyncPaymentStatus(ctx context.Context, sessionID string, status domain.PaymentStatus) (domain.Payment, error) {
	return f.syncFn(ctx, sessionID, status)
}

type fakeWebhookParser struct {
	event stripepay.WebhookEvent
	err   error
}

func (f *fakeWebhookParser) ParseWebhookEvent(_ []byte, _ string) (stripepay.WebhookEvent, error) {
	return f.event, f.err
}

func newPaymentRouter(svc PaymentService, parser WebhookParser) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewPaymentHandler(svc, parser)

	router := gin.New()
	router.POST("/api/v1/camps/:campID/registrations/:registrationID/payments", handler.HandleCreatePayment)
	router.POST("/api/v1/payments/webhook", handler.HandleWebhook)
	router.POST("/api/v1/payments/verify-session", handler.HandleVerifySession)
	router.PUT("/api/v1/payments/:sessionID/status", handler.HandleSyncPaymentStatus)
	return router
}

func TestHandleCreatePayment_Card(t *testing.T) {
	svc := &fakePaymentService{
		createFn: func(_ context.Context, campID, registrationID uint, method domain.PaymentMethod, paymentType domain.PaymentType) (service.CreatePaymentResult, error) {
			assert.Equal(t, uint(3), campID)
			assert.Equal(t, uint(7), registrationID)
			assert.Equal(t, domain.PaymentMethodCard, method)
			assert.Equal(t, domain.PaymentTypeDeposit, paymentType)

			return service.CreatePaymentResult{
				Payment:     domain.Payment{ID: 1, Amount: 200, Status: domain.PaymentPending},
				RedirectURL: "https://checkout.example.com/pay/cs_test_1",
			}, nil
		},
	}
	router := newPaymentRouter(svc, &fakeWebhookParser{})

	body := `{"method": "card", "payment_type": "deposit"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/camps/3/registrations/7/payments", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, "https://checkout.example.com/pay/cs_test_1", got["redirect_url"])
	assert.Equal(t, false, got["requires_verification"])
}

func TestHandleCreatePayment_UnknownMethod(t *testing.T) {
	router := newPaymentRouter(&fakePaymentService{}, &fakeWebhookParser{})

	body := `{"method": "cheque", "payment_type": "full"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/camps/3/registrations/7/payments", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandleCreatePayment_ProviderDown(t *testing.T) {
	svc := &fakePaymentService{
		createFn: func(_ context.Context, _, _ uint, _ domain.PaymentMethod, _ domain.PaymentType) (service.CreatePaymentResult, error) {
			return service.CreatePaymentResult{}, service.ErrCheckoutCreateFailed
		},
	}
	router := newPaymentRouter(svc, &fakeWebhookParser{})

	body := `{"method": "card", "payment_type": "full"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/camps/3/registrations/7/payments", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadGateway, resp.Code)
}

func TestHandleWebhook_CheckoutCompleted(t *testing.T) {
	confirmed := false
	svc := &fakePaymentService{
		confirmFn: func(_ context.Context, sessionID string) (domain.Registration, error) {
			confirmed = true
			assert.Equal(t, "cs_test_1", sessionID)
			return domain.Registration{ID: 7, Status: domain.RegistrationConfirmed}, nil
		},
	}
	parser := &fakeWebhookParser{
		event: stripepay.WebhookEvent{Type: "checkout.session.completed", SessionID: "cs_test_1"},
	}
	router := newPaymentRouter(svc, parser)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/webhook", strings.NewReader(`{}`))
	req.Header.Set("Stripe-Signature", "t=1,v1=abc")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, confirmed)
	assert.Contains(t, resp.Body.String(), `"received":true`)
}

func TestHandleWebhook_BadSignature(t *testing.T) {
	svc := &fakePaymentService{
		confirmFn: func(_ context.Context, _ string) (domain.Registration, error) {
			t.Fatal("confirm must not run on a bad signature")
			return domain.Registration{}, nil
		},
	}
	parser := &fakeWebhookParser{err: errors.New("signature verification failed")}
	router := newPaymentRouter(svc, parser)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/webhook", strings.NewReader(`{}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandleWebhook_FinalPaymentStatus(t *testing.T) {
	svc := &fakePaymentService{
		confirmFn: func(_ context.Context, _ string) (domain.Registration, error) {
			return domain.Registration{}, service.ErrPaymentStatusFinal
		},
	}
	parser := &fakeWebhookParser{
		event: stripepay.WebhookEvent{Type: "checkout.session.completed", SessionID: "cs_test_1"},
	}
	router := newPaymentRouter(svc, parser)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/webhook", strings.NewReader(`{}`))
	req.Header.Set("Stripe-Signature", "t=1,v1=abc")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandleWebhook_IgnoresOtherEvents(t *testing.T) {
	svc := &fakePaymentService{
		confirmFn: func(_ context.Context, _ string) (domain.Registration, error) {
			t.Fatal("confirm must not run for unrelated events")
			return domain.Registration{}, nil
		},
	}
	parser := &fakeWebhookParser{
		event: stripepay.WebhookEvent{Type: "payment_intent.created"},
	}
	router := newPaymentRouter(svc, parser)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/webhook", strings.NewReader(`{}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestHandleVerifySession(t *testing.T) {
	svc := &fakePaymentService{
		verifyFn: func(_ context.Context, sessionID string) (domain.Registration, bool, error) {
			assert.Equal(t, "cs_test_1", sessionID)
			return domain.Registration{ID: 7, Status: domain.RegistrationConfirmed}, true, nil
		},
	}
	router := newPaymentRouter(svc, &fakeWebhookParser{})

	body := `{"session_id": "cs_test_1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/verify-session", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, true, got["paid"])
	assert.NotNil(t, got["registration"])
}

func TestHandleVerifySession_MissingSessionID(t *testing.T) {
	router := newPaymentRouter(&fakePaymentService{}, &fakeWebhookParser{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/verify-session", strings.NewReader(`{}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandleSyncPaymentStatus(t *testing.T) {
	svc := &fakePaymentService{
		syncFn: func(_ context.Context, sessionID string, status domain.PaymentStatus) (domain.Payment, error) {
			assert.Equal(t, "cs_test_1", sessionID)
			assert.Equal(t, domain.PaymentCompleted, status)
			return domain.Payment{ID: 1, Status: status}, nil
		},
	}
	router := newPaymentRouter(svc, &fakeWebhookParser{})

	body := `{"status": "completed"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/payments/cs_test_1/status", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"completed"`)
}

func TestHandleSyncPaymentStatus_UnknownSession(t *testing.T) {
	svc := &fakePaymentService{
		syncFn: func(_ context.Context, _ string, _ domain.PaymentStatus) (domain.Payment, error) {
			return domain.Payment{}, service.ErrPaymentNotFound
		},
	}
	router := newPaymentRouter(svc, &fakeWebhookParser{})

	body := `{"status": "completed"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/payments/cs_missing/status", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
