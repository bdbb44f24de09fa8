package router

import (
	"github.com/go-chi/chi/v5"

	"innkeeper/internal/handlers/auth"
	"innkeeper/internal/handlers/booking"
	"innkeeper/internal/handlers/deal"
	"innkeeper/internal/handlers/guest"
	"innkeeper/internal/handlers/rate"
	"innkeeper/internal/handlers/room"
	"innkeeper/internal/handlers/settings"
)

type DomainHandlers struct {
	Auth     auth.Handler
	Room     room.Handler
	Booking  booking.Handler
	Guest    guest.Handler
	Rate     rate.Handler
	Deal     deal.Handler
	Settings settings.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Rate.Router(routerGroup)
		r.DomainHandlers.Deal.Router(routerGroup)
		r.DomainHandlers.Settings.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
