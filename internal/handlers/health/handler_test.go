package health_test

import (
	"eventzone/internal/handlers/health"
	"eventzone/shared/clock"
	"eventzone/shared/timezone"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestHealth(t *testing.T) {
	handler := health.New(timezone.New(clock.NewFixed(time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC))))

	router := chi.NewRouter()
	handler.Router(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"status":"ok","timestamp":"2024-01-15T14:00:00Z"}}`, rec.Body.String())
}
