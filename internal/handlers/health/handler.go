package health

import (
	"eventzone/shared/constant"
	"eventzone/shared/timezone"
	"eventzone/transport/http/response"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

type Status struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type Handler struct {
	normalizer *timezone.Normalizer
}

func New(normalizer *timezone.Normalizer) Handler {
	return Handler{normalizer: normalizer}
}

func (h *Handler) Router(r chi.Router) {
	r.Get("/health", h.Health)
}

// Health reports liveness.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Data[Status]
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	response.WithJSON(w, http.StatusOK, Status{
		Status:    constant.ResponseStatusOK,
		Timestamp: h.normalizer.Now().Format(time.RFC3339),
	})
}
