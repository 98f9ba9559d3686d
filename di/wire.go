//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"guesthouse/config"
	"guesthouse/infras/kafka"
	"guesthouse/infras/otel"
	"guesthouse/infras/postgres"
	"guesthouse/infras/redis"
	"guesthouse/infras/s3"
	"guesthouse/infras/token"
	"guesthouse/shared/cache"
	"guesthouse/transport/http"
	"guesthouse/transport/http/middleware"
	"guesthouse/transport/http/router"

	bookingRepository "guesthouse/internal/domains/booking/repository"
	bookingService "guesthouse/internal/domains/booking/service"
	categoryRepository "guesthouse/internal/domains/category/repository"
	categoryService "guesthouse/internal/domains/category/service"
	roomRepository "guesthouse/internal/domains/room/repository"
	roomService "guesthouse/internal/domains/room/service"
	staffRepository "guesthouse/internal/domains/staff/repository"
	staffService "guesthouse/internal/domains/staff/service"

	bookingHandler "guesthouse/internal/handlers/booking"
	healthHandler "guesthouse/internal/handlers/health"
	roomHandler "guesthouse/internal/handlers/room"
	staffHandler "guesthouse/internal/handlers/staff"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	s3.New,
	kafka.New,
	token.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var categoryDomain = wire.NewSet(
	categoryRepository.New,
	categoryService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var staffDomain = wire.NewSet(
	staffRepository.New,
	staffService.New,
)

var domains = wire.NewSet(
	categoryDomain,
	roomDomain,
	bookingDomain,
	staffDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	bookingHandler.New,
	staffHandler.New,
	healthHandler.New,
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
