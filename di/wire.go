//go:build wireinject
// +build wireinject

package di

import (
	"eventzone/config"
	"eventzone/infras/kafka"
	"eventzone/infras/otel"
	"eventzone/infras/postgres"
	"eventzone/infras/redis"
	eventRepository "eventzone/internal/domains/event/repository"
	profileRepository "eventzone/internal/domains/profile/repository"
	eventHandler "eventzone/internal/handlers/event"
	healthHandler "eventzone/internal/handlers/health"
	profileHandler "eventzone/internal/handlers/profile"
	timezoneHandler "eventzone/internal/handlers/timezone"
	"eventzone/shared/cache"
	"eventzone/shared/clock"
	"eventzone/shared/timezone"
	"eventzone/transport/http"
	"eventzone/transport/http/middleware"
	"eventzone/transport/http/router"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	ProvideHTTPMetrics,
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	clock.NewSystem,
	timezone.New,
)

var profileDomain = wire.NewSet(
	profileRepository.New,
	ProvideProfileService,
)

var eventDomain = wire.NewSet(
	eventRepository.New,
	ProvideEventService,
)

var domains = wire.NewSet(
	profileDomain,
	eventDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	profileHandler.New,
	eventHandler.New,
	timezoneHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
