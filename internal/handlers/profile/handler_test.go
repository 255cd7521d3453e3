package profile_test

import (
	"context"
	"errors"
	"eventzone/infras/otel/mocks"
	"eventzone/internal/domains/profile/model/dto"
	serviceMocks "eventzone/internal/domains/profile/service/mocks"
	"eventzone/internal/handlers/profile"
	gDto "eventzone/shared/dto"
	"eventzone/shared/failure"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*chi.Mux, *serviceMocks.MockProfile) {
	t.Helper()

	svc := serviceMocks.NewMockProfile(gomock.NewController(t))
	handler := profile.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func TestCreateProfile(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *serviceMocks.MockProfile)
		wantCode  int
	}{
		{
			name: "created",
			body: `{"name":"Alice","timezone":"Asia/Tokyo"}`,
			setupMock: func(svc *serviceMocks.MockProfile) {
				svc.EXPECT().
					Create(gomock.Any(), dto.CreateProfileRequest{Name: "Alice", Timezone: "Asia/Tokyo"}).
					Return(dto.ProfileResponse{ID: "p1", Name: "Alice", Timezone: "Asia/Tokyo"}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "invalid timezone rejected by validation",
			body:      `{"name":"Alice","timezone":"Mars/Olympus"}`,
			setupMock: func(*serviceMocks.MockProfile) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "missing name",
			body:      `{"timezone":"UTC"}`,
			setupMock: func(*serviceMocks.MockProfile) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "service error",
			body: `{"name":"Alice"}`,
			setupMock: func(svc *serviceMocks.MockProfile) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.ProfileResponse{}, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/profiles/", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestGetProfiles_NameFilterAndDefaults(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().
		GetAll(gomock.Any(), gDto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: "DESC"}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetProfilesResponse, error) {
			where, args := filter.GetWhereClause()
			assert.Contains(t, where, "profiles.name")
			assert.Equal(t, "%ali%", args["name"])

			return dto.GetProfilesResponse{TotalPage: 1}, nil
		})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profiles/?name=ali&sort_by=password", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetProfileByID_NotFound(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Get(gomock.Any(), "missing").Return(dto.ProfileResponse{}, failure.NotFound("Profile not found"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profiles/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Profile not found"}`, rec.Body.String())
}

func TestUpdateProfileTimezone(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().
		UpdateTimezone(gomock.Any(), dto.UpdateTimezoneRequest{Timezone: "Europe/Paris"}, "p1").
		Return(dto.ProfileResponse{ID: "p1", Timezone: "Europe/Paris"}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/profiles/p1/timezone", strings.NewReader(`{"timezone":"Europe/Paris"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"timezone":"Europe/Paris"`)
}
