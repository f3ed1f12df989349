//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"autocare/config"
	"autocare/infras/jwt"
	"autocare/infras/kafka"
	"autocare/infras/otel"
	"autocare/infras/postgres"
	"autocare/infras/redis"
	"autocare/permissions"
	"autocare/shared/cache"
	"autocare/transport/http"
	"autocare/transport/http/middleware"
	"autocare/transport/http/router"

	bookingRepository "autocare/internal/domains/booking/repository"
	bookingService "autocare/internal/domains/booking/service"
	catalogRepository "autocare/internal/domains/catalog/repository"
	notificationService "autocare/internal/domains/notification/service"
	vehicleRepository "autocare/internal/domains/vehicle/repository"

	adminHandler "autocare/internal/handlers/admin"
	bookingHandler "autocare/internal/handlers/booking"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var vehicleDomain = wire.NewSet(
	vehicleRepository.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.NewServiceCenter,
	catalogRepository.NewService,
	catalogRepository.NewCenterService,
)

var notificationDomain = wire.NewSet(
	notificationService.NewDispatcher,
)

var domains = wire.NewSet(
	bookingDomain,
	vehicleDomain,
	catalogDomain,
	notificationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	adminHandler.New,
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
