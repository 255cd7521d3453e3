package middleware_test

import (
	"errors"
	"eventzone/config"
	"eventzone/infras/otel/mocks"
	cacheMocks "eventzone/shared/cache/mocks"
	"eventzone/shared/metrics"
	"eventzone/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	kitmetrics "github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type recordingCounter struct {
	labels *[]string
	lvs    []string
}

func (c recordingCounter) With(labelValues ...string) kitmetrics.Counter {
	return recordingCounter{labels: c.labels, lvs: append(append([]string{}, c.lvs...), labelValues...)}
}

func (c recordingCounter) Add(float64) {
	*c.labels = append(*c.labels, c.lvs[len(c.lvs)-1])
}

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func newMiddleware(t *testing.T, cfg *config.Config, labels *[]string) (middleware.AppMiddleware, *cacheMocks.MockRedisCache) {
	t.Helper()

	redisCache := cacheMocks.NewMockRedisCache(gomock.NewController(t))
	req := metrics.Request{Counter: recordingCounter{labels: labels}, Latency: discard.NewHistogram()}

	return middleware.NewAppMiddleware(mocks.NewOtel(), cfg, redisCache, req), redisCache
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name       string
		enable     bool
		trustProxy bool
		setupMock  func(c *cacheMocks.MockRedisCache)
		wantCode   int
		wantRemain string
	}{
		{
			name:      "disabled passes through",
			setupMock: func(*cacheMocks.MockRedisCache) {},
			wantCode:  http.StatusOK,
		},
		{
			name:   "first request opens the window",
			enable: true,
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Increment(gomock.Any(), "limiter:192.0.2.1:tester", 60).Return(int64(1), nil)
			},
			wantCode:   http.StatusOK,
			wantRemain: "1",
		},
		{
			name:       "forwarded client behind trusted proxy",
			enable:     true,
			trustProxy: true,
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Increment(gomock.Any(), "limiter:10.0.0.1:tester", 60).Return(int64(2), nil)
			},
			wantCode:   http.StatusOK,
			wantRemain: "0",
		},
		{
			name:   "limit exceeded",
			enable: true,
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(3), nil)
			},
			wantCode: http.StatusTooManyRequests,
		},
		{
			name:   "cache failure lets the request through",
			enable: true,
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Increment(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("connection refused"))
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.App.RateLimiter.Enable = tt.enable
			cfg.App.RateLimiter.TrustProxy = tt.trustProxy
			cfg.App.RateLimiter.MaxRequests = 2
			cfg.App.RateLimiter.WindowSeconds = 60

			labels := []string{}
			mw, redisCache := newMiddleware(t, cfg, &labels)
			tt.setupMock(redisCache)

			req := httptest.NewRequest(http.MethodGet, "/v1/events", nil)
			req.RemoteAddr = "192.0.2.1:41000"
			req.Header.Set("User-Agent", "tester")
			req.Header.Set("X-Forwarded-For", "10.0.0.1, 172.16.0.1")

			rec := httptest.NewRecorder()
			mw.RateLimit()(http.HandlerFunc(ok)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantRemain, rec.Header().Get("X-RateLimit-Remaining"))
		})
	}
}

func TestMetrics_LabelsByRoutePattern(t *testing.T) {
	labels := []string{}
	mw, _ := newMiddleware(t, &config.Config{}, &labels)

	router := chi.NewRouter()
	router.Use(mw.Metrics)
	router.Get("/v1/events/{id}", ok)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/events/abc", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/events/def", nil))

	assert.Equal(t, []string{"GET /v1/events/{id}", "GET /v1/events/{id}"}, labels)
}

func TestTracing_PassesThrough(t *testing.T) {
	labels := []string{}
	mw, _ := newMiddleware(t, &config.Config{}, &labels)

	router := chi.NewRouter()
	router.Use(mw.Tracing)
	router.Get("/health", ok)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"http://localhost:5173"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost}

	labels := []string{}
	mw, _ := newMiddleware(t, cfg, &labels)

	req := httptest.NewRequest(http.MethodGet, "/v1/timezones", nil)
	req.Header.Set("Origin", "http://localhost:5173")

	rec := httptest.NewRecorder()
	mw.CORS()(http.HandlerFunc(ok)).ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Disabled(t *testing.T) {
	labels := []string{}
	mw, _ := newMiddleware(t, &config.Config{}, &labels)

	req := httptest.NewRequest(http.MethodGet, "/v1/timezones", nil)
	req.Header.Set("Origin", "http://localhost:5173")

	rec := httptest.NewRecorder()
	mw.CORS()(http.HandlerFunc(ok)).ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
