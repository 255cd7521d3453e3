package timezone

import (
	"eventzone/infras/otel"
	"eventzone/shared/constant"
	"eventzone/shared/failure"
	"eventzone/shared/timezone"
	"eventzone/transport/http/response"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const requestParamLenient = "lenient"

type ValidateResponse struct {
	Timezone string `json:"timezone"`
	Valid    bool   `json:"valid"`
}

type NowResponse struct {
	Timezone    string `json:"timezone"`
	CurrentTime string `json:"current_time"`
}

type ConvertResponse struct {
	Instant   string `json:"instant"`
	Timezone  string `json:"timezone"`
	LocalTime string `json:"local_time"`
}

// Handler exposes the timezone normalizer to clients that need server-side rendering.
type Handler struct {
	normalizer *timezone.Normalizer
	otel       otel.Otel
}

func New(normalizer *timezone.Normalizer, otel otel.Otel) Handler {
	return Handler{
		normalizer: normalizer,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/timezones", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetTimezones)
		routerGroup.Get("/validate", handler.ValidateTimezone)
		routerGroup.Get("/now", handler.GetCurrentTime)
		routerGroup.Get("/convert", handler.ConvertInstant)
	})
}

// GetTimezones lists the curated timezones offered by pickers.
// @Summary List common timezones
// @Tags Timezone
// @Produce json
// @Success 200 {object} response.Data[[]timezone.Option]
// @Router /v1/timezones [get]
func (handler *Handler) GetTimezones(w http.ResponseWriter, _ *http.Request) {
	response.WithJSON(w, http.StatusOK, timezone.CommonTimezones())
}

// ValidateTimezone reports whether tz is a known IANA identifier.
// @Summary Validate a timezone
// @Tags Timezone
// @Produce json
// @Param tz query string true "IANA timezone"
// @Success 200 {object} response.Data[ValidateResponse]
// @Router /v1/timezones/validate [get]
func (handler *Handler) ValidateTimezone(w http.ResponseWriter, r *http.Request) {
	tz := strings.TrimSpace(r.URL.Query().Get(constant.RequestParamTimezone))

	response.WithJSON(w, http.StatusOK, ValidateResponse{Timezone: tz, Valid: timezone.IsValidTimezone(tz)})
}

// GetCurrentTime renders the current time in tz, UTC when omitted.
// @Summary Current time in a timezone
// @Tags Timezone
// @Produce json
// @Param tz query string false "IANA timezone" default(UTC)
// @Success 200 {object} response.Data[NowResponse]
// @Failure 400 {object} response.Error
// @Router /v1/timezones/now [get]
func (handler *Handler) GetCurrentTime(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCurrentTime")
	defer scope.End()

	tz := strings.TrimSpace(r.URL.Query().Get(constant.RequestParamTimezone))
	if tz == "" {
		tz = timezone.Default
	}

	current, err := handler.normalizer.CurrentTimestampIn(tz)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to render current time")

		response.WithError(w, failure.FromTimezone(err))

		return
	}

	response.WithJSON(w, http.StatusOK, NowResponse{Timezone: tz, CurrentTime: current})
}

// ConvertInstant renders an ISO-8601 instant in tz. With lenient=true an unusable input is echoed
// back instead of failing.
// @Summary Convert an instant to a timezone
// @Tags Timezone
// @Produce json
// @Param instant query string true "ISO-8601 date-time"
// @Param tz query string true "IANA timezone"
// @Param lenient query bool false "Return the input unchanged instead of an error"
// @Success 200 {object} response.Data[ConvertResponse]
// @Failure 400 {object} response.Error
// @Router /v1/timezones/convert [get]
func (handler *Handler) ConvertInstant(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConvertInstant")
	defer scope.End()

	query := r.URL.Query()
	instant := query.Get(constant.RequestParamInstant)
	tz := strings.TrimSpace(query.Get(constant.RequestParamTimezone))
	lenient, _ := strconv.ParseBool(query.Get(requestParamLenient))

	res := ConvertResponse{Instant: instant, Timezone: tz}

	if lenient {
		res.LocalTime = handler.normalizer.FormatInstantOrOriginal(instant, tz)

		response.WithJSON(w, http.StatusOK, res)

		return
	}

	local, err := handler.normalizer.FormatInstant(instant, tz)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to convert instant")

		response.WithError(w, failure.FromTimezone(err))

		return
	}

	res.LocalTime = local

	response.WithJSON(w, http.StatusOK, res)
}
