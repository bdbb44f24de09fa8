//go:build wireinject
// +build wireinject

package di

import (
	"innkeeper/config"
	"innkeeper/infras/jwt"
	"innkeeper/infras/kafka"
	"innkeeper/infras/otel"
	"innkeeper/infras/postgres"
	"innkeeper/infras/redis"
	"innkeeper/infras/s3"
	"innkeeper/permissions"
	"innkeeper/shared/cache"
	"innkeeper/transport/http"
	"innkeeper/transport/http/middleware"
	"innkeeper/transport/http/router"

	"github.com/google/wire"

	authService "innkeeper/internal/domains/auth/service"
	bookingRepository "innkeeper/internal/domains/booking/repository"
	bookingService "innkeeper/internal/domains/booking/service"
	dealRepository "innkeeper/internal/domains/deal/repository"
	dealService "innkeeper/internal/domains/deal/service"
	guestRepository "innkeeper/internal/domains/guest/repository"
	guestService "innkeeper/internal/domains/guest/service"
	rateRepository "innkeeper/internal/domains/rate/repository"
	rateService "innkeeper/internal/domains/rate/service"
	roomRepository "innkeeper/internal/domains/room/repository"
	roomService "innkeeper/internal/domains/room/service"
	settingsRepository "innkeeper/internal/domains/settings/repository"
	settingsService "innkeeper/internal/domains/settings/service"
	userRepository "innkeeper/internal/domains/user/repository"

	authHandler "innkeeper/internal/handlers/auth"
	bookingHandler "innkeeper/internal/handlers/booking"
	dealHandler "innkeeper/internal/handlers/deal"
	guestHandler "innkeeper/internal/handlers/guest"
	rateHandler "innkeeper/internal/handlers/rate"
	roomHandler "innkeeper/internal/handlers/room"
	settingsHandler "innkeeper/internal/handlers/settings"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	permissions.Get,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var rateDomain = wire.NewSet(
	rateRepository.New,
	rateService.New,
)

var dealDomain = wire.NewSet(
	dealRepository.New,
	dealService.New,
)

var settingsDomain = wire.NewSet(
	settingsRepository.New,
	settingsService.New,
)

var domains = wire.NewSet(
	authDomain,
	roomDomain,
	bookingDomain,
	guestDomain,
	rateDomain,
	dealDomain,
	settingsDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	bookingHandler.New,
	guestHandler.New,
	rateHandler.New,
	dealHandler.New,
	settingsHandler.New,
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
