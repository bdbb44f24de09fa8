// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"github.com/google/wire"
	"innkeeper/config"
	"innkeeper/infras/jwt"
	"innkeeper/infras/kafka"
	"innkeeper/infras/otel"
	"innkeeper/infras/postgres"
	"innkeeper/infras/redis"
	"innkeeper/infras/s3"
	"innkeeper/internal/domains/auth/service"
	repository3 "innkeeper/internal/domains/booking/repository"
	service3 "innkeeper/internal/domains/booking/service"
	repository5 "innkeeper/internal/domains/deal/repository"
	service6 "innkeeper/internal/domains/deal/service"
	repository6 "innkeeper/internal/domains/guest/repository"
	service4 "innkeeper/internal/domains/guest/service"
	repository4 "innkeeper/internal/domains/rate/repository"
	service5 "innkeeper/internal/domains/rate/service"
	repository2 "innkeeper/internal/domains/room/repository"
	service2 "innkeeper/internal/domains/room/service"
	repository7 "innkeeper/internal/domains/settings/repository"
	service7 "innkeeper/internal/domains/settings/service"
	"innkeeper/internal/domains/user/repository"
	"innkeeper/internal/handlers/auth"
	"innkeeper/internal/handlers/booking"
	"innkeeper/internal/handlers/deal"
	"innkeeper/internal/handlers/guest"
	"innkeeper/internal/handlers/rate"
	"innkeeper/internal/handlers/room"
	"innkeeper/internal/handlers/settings"
	"innkeeper/permissions"
	"innkeeper/shared/cache"
	"innkeeper/transport/http"
	"innkeeper/transport/http/middleware"
	"innkeeper/transport/http/router"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	user := repository.New(connection, otelOtel)
	jwtJWT := jwt.New(configConfig)
	serviceAuth := service.New(user, configConfig, otelOtel, jwtJWT)
	handler := auth.New(serviceAuth, otelOtel)
	repositoryRoom := repository2.New(connection, otelOtel)
	repositoryBooking := repository3.New(connection, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	s3S3 := s3.New(configConfig, otelOtel)
	serviceRoom := service2.New(repositoryRoom, repositoryBooking, configConfig, redisCache, otelOtel, s3S3)
	roomHandler := room.New(serviceRoom, otelOtel)
	repositoryRate := repository4.New(connection, otelOtel)
	repositoryDeal := repository5.New(connection, otelOtel)
	repositoryGuest := repository6.New(connection, otelOtel)
	kafkaClient := kafka.New(configConfig)
	serviceBooking := service3.New(repositoryBooking, repositoryRoom, repositoryRate, repositoryDeal, repositoryGuest, configConfig, redisCache, otelOtel, kafkaClient)
	bookingHandler := booking.New(serviceBooking, otelOtel)
	serviceGuest := service4.New(repositoryGuest, serviceBooking, configConfig, otelOtel)
	guestHandler := guest.New(serviceGuest, otelOtel)
	serviceRate := service5.New(repositoryRate, repositoryDeal, configConfig, otelOtel)
	rateHandler := rate.New(serviceRate, otelOtel)
	serviceDeal := service6.New(repositoryDeal, configConfig, otelOtel)
	dealHandler := deal.New(serviceDeal, otelOtel)
	repositorySettings := repository7.New(connection, otelOtel)
	serviceSettings := service7.New(repositorySettings, configConfig, redisCache, otelOtel)
	settingsHandler := settings.New(serviceSettings, otelOtel)
	domainHandlers := router.DomainHandlers{
		Auth:     handler,
		Room:     roomHandler,
		Booking:  bookingHandler,
		Guest:    guestHandler,
		Rate:     rateHandler,
		Deal:     dealHandler,
		Settings: settingsHandler,
	}
	routerRouter := router.New(domainHandlers)
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	permissionData := permissions.Get()
	authRole := middleware.NewAuthRoleMiddleware(jwtJWT, otelOtel, permissionData, configConfig)
	httpHTTP := http.New(configConfig, routerRouter, connection, appMiddleware, authRole)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, jwt.New, s3.New, kafka.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware, middleware.NewAuthRoleMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache, permissions.Get)

var authDomain = wire.NewSet(repository.New, service.New)

var roomDomain = wire.NewSet(repository2.New, service2.New)

var bookingDomain = wire.NewSet(repository3.New, service3.New)

var guestDomain = wire.NewSet(repository6.New, service4.New)

var rateDomain = wire.NewSet(repository4.New, service5.New)

var dealDomain = wire.NewSet(repository5.New, service6.New)

var settingsDomain = wire.NewSet(repository7.New, service7.New)

var domains = wire.NewSet(
	authDomain,
	roomDomain,
	bookingDomain,
	guestDomain,
	rateDomain,
	dealDomain,
	settingsDomain,
)

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), auth.New, room.New, booking.New, guest.New, rate.New, deal.New, settings.New, router.New)
