package http_test

import (
	"eventzone/config"
	kafkaMocks "eventzone/infras/kafka/mocks"
	"eventzone/infras/otel/mocks"
	"eventzone/internal/handlers/health"
	"eventzone/internal/handlers/timezone"
	cacheMocks "eventzone/shared/cache/mocks"
	"eventzone/shared/clock"
	"eventzone/shared/metrics"
	tz "eventzone/shared/timezone"
	transport "eventzone/transport/http"
	"eventzone/transport/http/middleware"
	"eventzone/transport/http/router"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-kit/kit/metrics/discard"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T) *transport.HTTP {
	t.Helper()

	ctrl := gomock.NewController(t)
	cfg := &config.Config{}
	normalizer := tz.New(clock.NewFixed(time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC)))
	otl := mocks.NewOtel()

	appMiddleware := middleware.NewAppMiddleware(otl, cfg, cacheMocks.NewMockRedisCache(ctrl), metrics.Request{
		Counter: discard.NewCounter(),
		Latency: discard.NewHistogram(),
	})

	r := router.New(router.DomainHandlers{
		Health:   health.New(normalizer),
		Timezone: timezone.New(normalizer, otl),
	})

	return transport.New(cfg, r, appMiddleware, nil, otl, kafkaMocks.NewMockClient(ctrl))
}

func TestHandler_Routes(t *testing.T) {
	server := newServer(t)
	handler := server.Handler()

	tests := []struct {
		name     string
		target   string
		wantCode int
	}{
		{name: "health", target: "/health", wantCode: http.StatusOK},
		{name: "versioned timezone route", target: "/v1/timezones/now?tz=Asia/Tokyo", wantCode: http.StatusOK},
		{name: "metrics", target: "/metrics", wantCode: http.StatusOK},
		{name: "unknown route", target: "/v2/nothing", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}

	assert.Equal(t, transport.ServerStateReady, server.State())
}

func TestHandler_UnknownRouteBody(t *testing.T) {
	rec := httptest.NewRecorder()
	newServer(t).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.JSONEq(t, `{"error":"route not found"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("Content-Type"))
}
