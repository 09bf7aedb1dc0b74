package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fchanaud/tennis-camp-api/internal/api/middleware"
	"github.com/fchanaud/tennis-camp-api/internal/domain"
)

type fakeAdminService struct {
	confirmFn func(ctx context.Context, registrationID uint) (domain.Registration, error)
	cancelFn  func(ctx context.Context, registrationID uint) (domain.Registration, error)
}

func (f *fakeAdminService) ConfirmManualPayment(ctx context.Context, registrationID uint) (domain.Registration, error) {
	return f.confirmFn(ctx, registrationID)
}

func (f *fakeAdminService) CancelRegistration(ctx context.Context, registrationID uint) (domain.Registration, error) {
	return f.cancelFn(ctx, registrationID)
}

func newAdminRouter(svc AdminRegistrationService, user domain.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewAdminHandler(svc, &fakeUserService{user: user})

	router := gin.New()
	router.Use(func(ctx *gin.Context) {
		ctx.Set(middleware.ContextKeyUserID, user.ID)
	})
	router.POST("/api/v1/admin/registrations/:registrationID/confirm-payment", handler.HandleConfirmManualPayment)
	router.POST("/api/v1/admin/registrations/:registrationID/cancel", handler.HandleCancelRegistration)
	return router
}

func TestHandleConfirmManualPayment(t *testing.T) {
	svc := &fakeAdminService{
		confirmFn: func(_ context.Context, registrationID uint) (domain.Registration, error) {
			assert.Equal(t, uint(7), registrationID)
			return domain.Registration{ID: 7, Status: domain.RegistrationConfirmed}, nil
		},
	}
	router := newAdminRouter(svc, domain.User{ID: 1, Role: "admin"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/registrations/7/confirm-payment", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"confirmed"`)
}

func TestHandleConfirmManualPayment_WrongStatus(t *testing.T) {
	svc := &fakeAdminService{
		confirmFn: func(_ context.Context, _ uint) (domain.Registration, error) {
			return domain.Registration{}, &domain.StatusError{
				Action:  "confirm manual payment",
				Current: domain.RegistrationConfirmed,
			}
		},
	}
	router := newAdminRouter(svc, domain.User{ID: 1, Role: "admin"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/registrations/7/confirm-payment", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)
	// The error names the status the registration actually holds.
	assert.Contains(t, resp.Body.String(), "confirmed")
}

func TestHandleConfirmManualPayment_NotAdmin(t *testing.T) {
	svc := &fakeAdminService{
		confirmFn: func(_ context.Context, _ uint) (domain.Registration, error) {
			t.Fatal("service must not be called for a non-admin")
			return domain.Registration{}, nil
		},
	}
	router := newAdminRouter(svc, domain.User{ID: 2, Role: "player"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/registrations/7/confirm-payment", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestHandleCancelRegistration(t *testing.T) {
	svc := &fakeAdminService{
		cancelFn: func(_ context.Context, registrationID uint) (domain.Registration, error) {
			assert.Equal(t, uint(7), registrationID)
			return domain.Registration{ID: 7, Status: domain.RegistrationCancelled}, nil
		},
	}
	router := newAdminRouter(svc, domain.User{ID: 1, Role: "admin"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/registrations/7/cancel", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"cancelled"`)
}
