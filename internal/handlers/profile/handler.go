package profile

import (
	"eventzone/infras/otel"
	"eventzone/internal/domains/profile/model"
	"eventzone/internal/domains/profile/model/dto"
	"eventzone/internal/domains/profile/service"
	"eventzone/shared/constant"
	gDto "eventzone/shared/dto"
	"eventzone/shared/validator"
	"eventzone/transport/http/response"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

var sortableFields = []string{constant.FieldCreatedAt, constant.FieldModifiedAt, model.FieldName}

type Handler struct {
	service service.Profile
	otel    otel.Otel
}

func New(service service.Profile, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/profiles", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateProfile)
		routerGroup.Get("/", handler.GetProfiles)
		routerGroup.Get("/{id}", handler.GetProfileByID)
		routerGroup.Put("/{id}/timezone", handler.UpdateProfileTimezone)
	})
}

// CreateProfile handles the creation of a new profile.
// @Summary Create a profile
// @Description Create a profile. The timezone defaults to the application timezone when omitted.
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body dto.CreateProfileRequest true "Create Profile Request"
// @Success 201 {object} response.Data[dto.ProfileResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/profiles [post]
func (handler *Handler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateProfile")
	defer scope.End()

	req := dto.CreateProfileRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	profile, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create profile")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Profile created successfully")

	response.WithJSON(w, http.StatusCreated, profile)
}

// GetProfiles lists profiles.
// @Summary Get all profiles
// @Description Paginated list of profiles, optionally filtered by name.
// @Tags Profile
// @Produce json
// @Param name query string false "Filter by name"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param sort_by query string false "Sort field" Enums(created_at, modified_at, name)
// @Param sort_dir query string false "Sort direction" Enums(ASC, DESC)
// @Success 200 {object} response.Data[dto.GetProfilesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/profiles [get]
func (handler *Handler) GetProfiles(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfiles")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.WithDefaultSort(constant.DefaultValueSortBy, constant.DefaultValueSortDir, sortableFields...)

	filterGroup := gDto.And()

	if name := strings.TrimSpace(r.URL.Query().Get(constant.RequestParamName)); name != "" {
		filterGroup.Add(gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	profiles, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get profiles")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, profiles)
}

// GetProfileByID retrieves a profile.
// @Summary Get a profile by ID
// @Description Get a profile with its current local time.
// @Tags Profile
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} response.Data[dto.ProfileResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/profiles/{id} [get]
func (handler *Handler) GetProfileByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfileByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	profile, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get profile by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, profile)
}

// UpdateProfileTimezone changes the timezone of a profile.
// @Summary Update a profile timezone
// @Description Change the timezone events and timestamps of the profile are shown in.
// @Tags Profile
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param request body dto.UpdateTimezoneRequest true "Update Timezone Request"
// @Success 200 {object} response.Data[dto.ProfileResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/profiles/{id}/timezone [put]
func (handler *Handler) UpdateProfileTimezone(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProfileTimezone")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateTimezoneRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	profile, err := handler.service.UpdateTimezone(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update profile timezone")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Profile timezone updated to " + req.Timezone)

	response.WithJSON(w, http.StatusOK, profile)
}
