package event

import (
	"eventzone/infras/otel"
	"eventzone/internal/domains/event/model"
	"eventzone/internal/domains/event/model/dto"
	"eventzone/internal/domains/event/service"
	"eventzone/shared/constant"
	gDto "eventzone/shared/dto"
	"eventzone/shared/validator"
	"eventzone/transport/http/response"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

var sortableFields = []string{constant.FieldCreatedAt, constant.FieldModifiedAt, model.FieldStartAt, model.FieldTitle}

type Handler struct {
	service service.Event
	otel    otel.Otel
}

func New(service service.Event, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/events", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateEvent)
		routerGroup.Get("/", handler.GetEvents)
		routerGroup.Get("/{id}", handler.GetEventByID)
		routerGroup.Put("/{id}", handler.UpdateEvent)
		routerGroup.Delete("/{id}", handler.DeleteEvent)
		routerGroup.Get("/profile/{profileId}", handler.GetEventsByProfile)
		routerGroup.Get("/profile/{profileId}/calendar.ics", handler.ExportProfileCalendar)
	})
}

// CreateEvent handles the creation of a new event.
// @Summary Create an event
// @Description Create an event for one or more profiles. start_at and end_at are ISO-8601 instants; without an offset they are read as UTC.
// @Tags Event
// @Accept json
// @Produce json
// @Param request body dto.EventRequest true "Event Request"
// @Success 201 {object} response.Data[dto.EventResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/events [post]
func (handler *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEvent")
	defer scope.End()

	req := dto.EventRequest{}

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	event, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create event")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Event created successfully")

	response.WithJSON(w, http.StatusCreated, event)
}

// GetEvents lists events in their own timezone.
// @Summary Get all events
// @Description Paginated list of events, optionally filtered by title and by the range [from, to] they overlap.
// @Tags Event
// @Produce json
// @Param title query string false "Filter by title"
// @Param from query string false "Events ending at or after this ISO-8601 instant"
// @Param to query string false "Events starting at or before this ISO-8601 instant"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param sort_by query string false "Sort field" Enums(created_at, modified_at, start_at, title)
// @Param sort_dir query string false "Sort direction" Enums(ASC, DESC)
// @Success 200 {object} response.Data[dto.GetEventsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/events [get]
func (handler *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEvents")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.WithDefaultSort(constant.DefaultValueSortBy, constant.DefaultValueSortDir, sortableFields...)

	rangeFilter, err := dto.RangeFilter(r.URL.Query().Get(constant.RequestParamFrom), r.URL.Query().Get(constant.RequestParamTo))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid event range")

		response.WithError(w, err)

		return
	}

	filterGroup := gDto.And(rangeFilter)

	if title := strings.TrimSpace(r.URL.Query().Get(model.FieldTitle)); title != "" {
		filterGroup.Add(gDto.Filter{
			Field:    model.FieldTitle,
			Operator: gDto.FilterOperatorLike,
			Value:    title,
			Table:    model.TableName,
		})
	}

	events, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get events")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, events)
}

// GetEventByID retrieves an event.
// @Summary Get an event by ID
// @Tags Event
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} response.Data[dto.EventResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/events/{id} [get]
func (handler *Handler) GetEventByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEventByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	event, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get event by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, event)
}

// UpdateEvent replaces an event.
// @Summary Update an event
// @Description Replace every field of an event, its profiles included.
// @Tags Event
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.EventRequest true "Event Request"
// @Success 200 {object} response.Data[dto.EventResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/events/{id} [put]
func (handler *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEvent")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.EventRequest{}
	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	event, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update event")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Event updated successfully")

	response.WithJSON(w, http.StatusOK, event)
}

// DeleteEvent deletes an event.
// @Summary Delete an event
// @Tags Event
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} response.Message "Event deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/events/{id} [delete]
func (handler *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEvent")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete event")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Event deleted successfully")

	response.WithMessage(w, http.StatusOK, "Event deleted successfully")
}

// GetEventsByProfile lists the events of a profile.
// @Summary Get events of a profile
// @Description Events linked to the profile ordered by start, with every time shown in the profile's timezone.
// @Tags Event
// @Produce json
// @Param profileId path string true "Profile ID"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param from query string false "Events ending at or after this ISO-8601 instant"
// @Param to query string false "Events starting at or before this ISO-8601 instant"
// @Success 200 {object} response.Data[dto.GetEventsResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/events/profile/{profileId} [get]
func (handler *Handler) GetEventsByProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEventsByProfile")
	defer scope.End()

	profileID := chi.URLParam(r, constant.RequestParamProfileID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	rangeFilter, err := dto.RangeFilter(r.URL.Query().Get(constant.RequestParamFrom), r.URL.Query().Get(constant.RequestParamTo))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid event range")

		response.WithError(w, err)

		return
	}

	events, err := handler.service.GetByProfile(ctx, profileID, queryParams, rangeFilter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get events by profile")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, events)
}

// ExportProfileCalendar downloads the events of a profile as iCalendar.
// @Summary Export a profile calendar
// @Description iCalendar feed of the profile's events. DTSTART and DTEND are UTC; X-WR-TIMEZONE carries the profile timezone.
// @Tags Event
// @Produce text/calendar
// @Param profileId path string true "Profile ID"
// @Success 200 {string} string "iCalendar document"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/events/profile/{profileId}/calendar.ics [get]
func (handler *Handler) ExportProfileCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportProfileCalendar")
	defer scope.End()

	profileID := chi.URLParam(r, constant.RequestParamProfileID)

	export, err := handler.service.ExportCalendar(ctx, profileID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export profile calendar")

		response.WithError(w, err)

		return
	}

	response.WithCalendar(w, export.FileName, export.Content)
}
