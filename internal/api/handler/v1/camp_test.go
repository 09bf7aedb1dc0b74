package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fchanaud/tennis-camp-api/internal/domain"
	"github.com/fchanaud/tennis-camp-api/internal/service"
)

type fakeCampService struct {
	createFn       func(ctx context.Context, camp domain.Camp) (domain.Camp, error)
	getAllFn       func(ctx context.Context) ([]domain.Camp, error)
	getFn          func(ctx context.Context, campID uint) (domain.Camp, error)
	availabilityFn func(ctx context.Context, campID uint) (domain.Availability, error)
}

func (f *fakeCampService) CreateCamp(ctx context.Context, camp domain.Camp) (domain.Camp, error) {
	return f.createFn(ctx, camp)
}

func (f *fakeCampService) GetCamps(ctx context.Context) ([]domain.Camp, error) {
	return f.getAllFn(ctx)
}

func (f *fakeCampService) GetCamp(ctx context.Context, campID uint) (domain.Camp, error) {
	return f.getFn(ctx, campID)
}

func (f *fakeCampService) CheckAvailability(ctx context.Context, campID uint) (domain.Availability, error) {
	return f.availabilityFn(ctx, campID)
}

type fakeUserService struct {
	user domain.User
}

func (f *fakeUserService) GetUser(_ context.Context, _ uint) (domain.User, error) {
	return f.user, nil
}

func newCampRouter(svc CampService, uSvc UserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewCampHandler(svc, uSvc)

	router := gin.New()
	router.GET("/api/v1/camps/:campID/availability", handler.HandleCheckAvailability)
	return router
}

func TestHandleCheckAvailability(t *testing.T) {
	svc := &fakeCampService{
		availabilityFn: func(_ context.Context, campID uint) (domain.Availability, error) {
			assert.Equal(t, uint(3), campID)
			return domain.Availability{
				IsFull:         false,
				AvailableSpots: 4,
				ConfirmedCount: 3,
				MaxPlayers:     7,
			}, nil
		},
	}
	router := newCampRouter(svc, &fakeUserService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/camps/3/availability", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, false, got["isFull"])
	assert.Equal(t, float64(4), got["availableSpots"])
	assert.Equal(t, float64(3), got["confirmedCount"])
	assert.Equal(t, float64(7), got["maxPlayers"])
}

func TestHandleCheckAvailability_CampNotFound(t *testing.T) {
	svc := &fakeCampService{
		availabilityFn: func(_ context.Context, _ uint) (domain.Availability, error) {
			return domain.Availability{}, service.ErrCampNotFound
		},
	}
	router := newCampRouter(svc, &fakeUserService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/camps/99/availability", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHandleCheckAvailability_InvalidID(t *testing.T) {
	router := newCampRouter(&fakeCampService{}, &fakeUserService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/camps/abc/availability", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
