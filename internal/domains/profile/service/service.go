package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"eventzone/config"
	"eventzone/infras/otel"
	"eventzone/internal/domains/profile/model"
	"eventzone/internal/domains/profile/model/dto"
	"eventzone/internal/domains/profile/repository"
	"eventzone/shared"
	"eventzone/shared/cache"
	"eventzone/shared/constant"
	gDto "eventzone/shared/dto"
	"eventzone/shared/failure"
	"eventzone/shared/timezone"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetProfile    = "profile:get"
	cacheGetAllProfile = "profile:gets"
	cacheCountProfile  = "profile:count"
)

type Profile interface {
	Create(ctx context.Context, req dto.CreateProfileRequest) (dto.ProfileResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetProfilesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ProfileResponse, error)
	UpdateTimezone(ctx context.Context, req dto.UpdateTimezoneRequest, id string) (dto.ProfileResponse, error)
}

type serviceImpl struct {
	repo       repository.Profile
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
	normalizer *timezone.Normalizer
}

func New(repo repository.Profile, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, normalizer *timezone.Normalizer) Profile {
	return &serviceImpl{
		repo:       repo,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
		normalizer: normalizer,
	}
}

// defaultTimezone is the configured application timezone, or UTC when that is missing or invalid.
func (s *serviceImpl) defaultTimezone() string {
	tz := s.cfg.App.Timezone
	if !timezone.IsValidTimezone(tz) {
		if tz != constant.Empty {
			log.Warn().Str("timezone", tz).Msg("invalid APP_TIMEZONE, falling back to UTC")
		}

		return timezone.Default
	}

	return tz
}

// withCurrentTime stamps the wall clock of the profile timezone. It is applied after the cache so the
// value is never stale.
func (s *serviceImpl) withCurrentTime(res dto.ProfileResponse) dto.ProfileResponse {
	current, err := s.normalizer.CurrentTimestampIn(res.Timezone)
	if err != nil {
		log.Warn().Err(err).Str("profileID", res.ID).Msg("failed to render current time for profile")

		return res
	}

	res.CurrentTime = current

	return res
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateProfileRequest) (res dto.ProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".profile.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize(s.defaultTimezone())

	if req.Name == constant.Empty {
		return res, failure.BadRequestFromString("Profile name is required") // nolint:wrapcheck
	}

	if !timezone.IsValidTimezone(req.Timezone) {
		return res, failure.BadRequestFromString(fmt.Sprintf("Invalid timezone: %s", req.Timezone)) // nolint:wrapcheck
	}

	profile := req.ToModel(s.normalizer.Now())

	if err = s.repo.Insert(ctx, profile); err != nil {
		log.Error().Err(err).Msg("failed to create profile")

		return res, fmt.Errorf("failed to create profile: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllProfile)
		shared.InvalidateCaches(c, s.cache, cacheCountProfile)
	}()

	res.FromModel(profile)

	return s.withCurrentTime(res), nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetProfilesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".profile.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllProfile, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for profiles")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count profiles")

		return res, fmt.Errorf("failed to count profiles: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get profiles")

		return res, fmt.Errorf("failed to get profiles: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save profiles to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".profile.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountProfile, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for profile count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count profiles")

		return res, fmt.Errorf("failed to count profiles: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save profile count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".profile.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.IsValidID(id) {
		return res, failure.NotFound("Profile not found") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetProfile, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for profile")

		return s.withCurrentTime(res), nil
	}

	profile, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get profile")

		return res, fmt.Errorf("failed to get profile: %w", err)
	}

	if profile.ID == constant.Empty {
		return res, failure.NotFound("Profile not found") // nolint:wrapcheck
	}

	res.FromModel(profile)

	go func(cached dto.ProfileResponse) {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, cached, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save profile to cache")
		}
	}(res)

	return s.withCurrentTime(res), nil
}

func (s *serviceImpl) UpdateTimezone(ctx context.Context, req dto.UpdateTimezoneRequest, id string) (res dto.ProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".profile.UpdateTimezone")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !timezone.IsValidTimezone(req.Timezone) {
		return res, failure.BadRequestFromString(fmt.Sprintf("Invalid timezone: %s", req.Timezone)) // nolint:wrapcheck
	}

	if !shared.IsValidID(id) {
		return res, failure.NotFound("Profile not found") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	profile, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check profile existence")

		return res, fmt.Errorf("failed to get profile: %w", err)
	}

	if profile.ID == constant.Empty {
		return res, failure.NotFound("Profile not found") // nolint:wrapcheck
	}

	modifiedAt := s.normalizer.Now()

	if err = s.repo.Update(ctx, shared.TransformFields(req, modifiedAt), filter); err != nil {
		log.Error().Err(err).Msg("failed to update profile timezone")

		return res, fmt.Errorf("failed to update profile timezone: %w", err)
	}

	profile.Timezone = req.Timezone
	profile.ModifiedAt = modifiedAt

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetProfile, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete profile cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllProfile)
		// events listed for this profile were rendered in the old timezone
		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(constant.CacheGetEventsByProfile, id))
	}()

	res.FromModel(profile)

	return s.withCurrentTime(res), nil
}
