package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"eventzone/config"
	"eventzone/infras/kafka"
	"eventzone/infras/otel"
	"eventzone/internal/domains/event/model"
	"eventzone/internal/domains/event/model/dto"
	"eventzone/internal/domains/event/repository"
	profileModel "eventzone/internal/domains/profile/model"
	profileRepository "eventzone/internal/domains/profile/repository"
	"eventzone/shared"
	"eventzone/shared/cache"
	"eventzone/shared/calendar"
	"eventzone/shared/constant"
	gDto "eventzone/shared/dto"
	"eventzone/shared/failure"
	"eventzone/shared/timezone"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetEvent    = "event:get"
	cacheGetAllEvent = "event:gets"
	cacheCountEvent  = "event:count"
)

const errProfileRemoved = "One or more profiles were removed while saving the event"

type Event interface {
	Create(ctx context.Context, req dto.EventRequest) (dto.EventResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetEventsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.EventResponse, error)
	GetByProfile(ctx context.Context, profileID string, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetEventsResponse, error)
	Update(ctx context.Context, req dto.EventRequest, id string) (dto.EventResponse, error)
	Delete(ctx context.Context, id string) error
	ExportCalendar(ctx context.Context, profileID string) (dto.CalendarExport, error)
}

type serviceImpl struct {
	repo        repository.Event
	profileRepo profileRepository.Profile
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	kafka       kafka.Client
	normalizer  *timezone.Normalizer
}

func New(
	repo repository.Event,
	profileRepo profileRepository.Profile,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafka kafka.Client,
	normalizer *timezone.Normalizer,
) Event {
	return &serviceImpl{
		repo:        repo,
		profileRepo: profileRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		kafka:       kafka,
		normalizer:  normalizer,
	}
}

// byStartAt orders the events of a profile chronologically.
func byStartAt(req gDto.QueryParams) gDto.QueryParams {
	req.SortBy = model.TableName + "." + model.FieldStartAt
	req.SortDir = gDto.SortDirAsc

	return req
}

func profileNotFound(id string) error {
	return failure.BadRequestFromString(fmt.Sprintf("Profile with id %s not found", id)) // nolint:wrapcheck
}

// verifyProfiles fails with a bad request naming the first id that has no profile.
func (s *serviceImpl) verifyProfiles(ctx context.Context, ids []string) error {
	for _, id := range ids {
		if !shared.IsValidID(id) {
			return profileNotFound(id)
		}
	}

	profiles, err := s.profileRepo.GetByIDs(ctx, ids)
	if err != nil {
		log.Error().Err(err).Msg("failed to load event profiles")

		return fmt.Errorf("failed to verify profiles: %w", err)
	}

	found := make(map[string]struct{}, len(profiles))
	for _, profile := range profiles {
		found[profile.ID] = struct{}{}
	}

	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return profileNotFound(id)
		}
	}

	return nil
}

func (s *serviceImpl) getProfile(ctx context.Context, id string) (profileModel.Profile, error) {
	if !shared.IsValidID(id) {
		return profileModel.Profile{}, failure.NotFound("Profile not found") // nolint:wrapcheck
	}

	profile, err := s.profileRepo.Get(ctx, shared.FilterByID(id, profileModel.FieldID, profileModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get profile")

		return profile, fmt.Errorf("failed to get profile: %w", err)
	}

	if profile.ID == constant.Empty {
		return profile, failure.NotFound("Profile not found") // nolint:wrapcheck
	}

	return profile, nil
}

func (s *serviceImpl) getEvent(ctx context.Context, id string) (model.Event, error) {
	if !shared.IsValidID(id) {
		return model.Event{}, failure.NotFound("Event not found") // nolint:wrapcheck
	}

	event, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get event")

		return event, fmt.Errorf("failed to get event: %w", err)
	}

	if event.ID == constant.Empty {
		return event, failure.NotFound("Event not found") // nolint:wrapcheck
	}

	return event, nil
}

// afterWrite drops every cached read the change can affect and announces it.
func (s *serviceImpl) afterWrite(ctx context.Context, action string, event model.Event) {
	go func() {
		c := context.WithoutCancel(ctx)

		if action != dto.ActionCreated {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetEvent, event.ID)); err != nil {
				log.Error().Err(err).Msg("failed to delete event cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllEvent)
		shared.InvalidateCaches(c, s.cache, cacheCountEvent)
		shared.InvalidateCaches(c, s.cache, constant.CacheGetEventsByProfile)

		msg := kafka.Message{Key: event.ID, Value: dto.NewEventChanged(action, event, s.normalizer.Now())}
		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.EventChanged, msg); err != nil {
			log.Error().Err(err).Str("eventID", event.ID).Str("action", action).Msg("failed to publish event change")
		}
	}()
}

func (s *serviceImpl) Create(ctx context.Context, req dto.EventRequest) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	schedule, err := req.Parse()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = s.verifyProfiles(ctx, schedule.ProfileIDs); err != nil {
		return res, err
	}

	event := schedule.ToModel(s.normalizer.Now())

	if err = s.repo.Create(ctx, event); err != nil {
		if shared.IsPqError(err, constant.PqErrorCodeFkViolation) {
			return res, failure.BadRequestFromString(errProfileRemoved) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create event")

		return res, fmt.Errorf("failed to create event: %w", err)
	}

	s.afterWrite(ctx, dto.ActionCreated, event)

	res.FromModel(event, constant.Empty)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetEventsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllEvent, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for events")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count events")

		return res, fmt.Errorf("failed to count events: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get events")

		return res, fmt.Errorf("failed to get events: %w", err)
	}

	res.FromModels(models, constant.Empty, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save events to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountEvent, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for event count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count events")

		return res, fmt.Errorf("failed to count events: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save event count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.IsValidID(id) {
		return res, failure.NotFound("Event not found") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetEvent, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for event")

		return res, nil
	}

	event, err := s.getEvent(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(event, constant.Empty)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save event to cache")
		}
	}()

	return res, nil
}

// GetByProfile lists the events of a profile by start time, rendered in the profile's timezone.
func (s *serviceImpl) GetByProfile(ctx context.Context, profileID string, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetEventsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.GetByProfile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.IsValidID(profileID) {
		return res, failure.NotFound("Profile not found") // nolint:wrapcheck
	}

	req = byStartAt(req)
	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(constant.CacheGetEventsByProfile, profileID), req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for profile events")

		return res, nil
	}

	profile, err := s.getProfile(ctx, profileID)
	if err != nil {
		return res, err
	}

	total, err := s.repo.CountByProfile(ctx, profileID, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count profile events")

		return res, fmt.Errorf("failed to count profile events: %w", err)
	}

	models, err := s.repo.GetByProfile(ctx, profileID, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get profile events")

		return res, fmt.Errorf("failed to get profile events: %w", err)
	}

	res.FromModels(models, profile.Timezone, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save profile events to cache")
		}
	}()

	return res, nil
}

// Update replaces every field of the event, its participants included.
func (s *serviceImpl) Update(ctx context.Context, req dto.EventRequest, id string) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	event, err := s.getEvent(ctx, id)
	if err != nil {
		return res, err
	}

	schedule, err := req.Parse()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = s.verifyProfiles(ctx, schedule.ProfileIDs); err != nil {
		return res, err
	}

	modifiedAt := s.normalizer.Now()

	if err = s.repo.Replace(ctx, id, schedule.UpdatedFields(modifiedAt), schedule.ProfileIDs); err != nil {
		if shared.IsPqError(err, constant.PqErrorCodeFkViolation) {
			return res, failure.BadRequestFromString(errProfileRemoved) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update event")

		return res, fmt.Errorf("failed to update event: %w", err)
	}

	event.Title = schedule.Title
	event.Timezone = schedule.Timezone
	event.StartAt = schedule.StartAt
	event.EndAt = schedule.EndAt
	event.ProfileIDs = schedule.ProfileIDs
	event.ModifiedAt = modifiedAt.UTC()

	s.afterWrite(ctx, dto.ActionUpdated, event)

	res.FromModel(event, constant.Empty)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	event, err := s.getEvent(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete event")

		return fmt.Errorf("failed to delete event: %w", err)
	}

	s.afterWrite(ctx, dto.ActionDeleted, event)

	return nil
}

// ExportCalendar renders every event of a profile as an iCalendar feed advertising the profile's timezone.
func (s *serviceImpl) ExportCalendar(ctx context.Context, profileID string) (res dto.CalendarExport, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.ExportCalendar")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	profile, err := s.getProfile(ctx, profileID)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetByProfile(ctx, profileID, byStartAt(gDto.QueryParams{}), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get profile events")

		return res, fmt.Errorf("failed to get profile events: %w", err)
	}

	feed := calendar.Feed{
		Name:     profile.Name,
		Timezone: profile.Timezone,
		Entries:  make([]calendar.Entry, len(models)),
	}

	for i, event := range models {
		feed.Entries[i] = calendar.Entry{
			UID:        event.ID,
			Title:      event.Title,
			Timezone:   event.Timezone,
			StartAt:    event.StartAt,
			EndAt:      event.EndAt,
			CreatedAt:  event.CreatedAt,
			ModifiedAt: event.ModifiedAt,
		}
	}

	res.FileName = fmt.Sprintf("%s.ics", profile.ID)
	res.Content = calendar.Render(feed, s.normalizer.Now())

	return res, nil
}
