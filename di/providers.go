package di

import (
	"eventzone/config"
	"eventzone/infras/kafka"
	"eventzone/infras/otel"
	eventRepository "eventzone/internal/domains/event/repository"
	eventService "eventzone/internal/domains/event/service"
	profileRepository "eventzone/internal/domains/profile/repository"
	profileService "eventzone/internal/domains/profile/service"
	"eventzone/shared/cache"
	"eventzone/shared/metrics"
	"eventzone/shared/timezone"
)

const (
	defaultMetricsNamespace = "eventzone"

	metricsSubsystemHTTP    = "http"
	metricsSubsystemProfile = "profile"
	metricsSubsystemEvent   = "event"
)

func metricsNamespace(cfg *config.Config) string {
	if cfg.App.Metrics.Namespace != "" {
		return cfg.App.Metrics.Namespace
	}

	return defaultMetricsNamespace
}

// ProvideHTTPMetrics registers the request instruments of the HTTP middleware.
func ProvideHTTPMetrics(cfg *config.Config) metrics.Request {
	return metrics.NewRequest(metricsNamespace(cfg), metricsSubsystemHTTP)
}

func ProvideProfileService(
	repo profileRepository.Profile,
	cfg *config.Config,
	redisCache cache.RedisCache,
	otl otel.Otel,
	normalizer *timezone.Normalizer,
) profileService.Profile {
	counter, latency := metrics.MakeMetrics(metricsNamespace(cfg), metricsSubsystemProfile)

	return profileService.NewMetrics(profileService.New(repo, cfg, redisCache, otl, normalizer), counter, latency)
}

func ProvideEventService(
	repo eventRepository.Event,
	profileRepo profileRepository.Profile,
	cfg *config.Config,
	redisCache cache.RedisCache,
	otl otel.Otel,
	kafkaClient kafka.Client,
	normalizer *timezone.Normalizer,
) eventService.Event {
	counter, latency := metrics.MakeMetrics(metricsNamespace(cfg), metricsSubsystemEvent)
	svc := eventService.New(repo, profileRepo, cfg, redisCache, otl, kafkaClient, normalizer)

	return eventService.NewMetrics(svc, counter, latency)
}
