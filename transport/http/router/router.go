package router

import (
	"github.com/go-chi/chi/v5"

	"guesthouse/internal/handlers/booking"
	"guesthouse/internal/handlers/health"
	"guesthouse/internal/handlers/room"
	"guesthouse/internal/handlers/staff"
	"guesthouse/transport/http/middleware"
)

type DomainHandlers struct {
	Room    room.Handler
	Booking booking.Handler
	Staff   staff.Handler
	Health  health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.AppMiddleware.CORS())
	router.Use(r.AppMiddleware.Tracing)
	router.Use(r.AppMiddleware.RateLimit())

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Staff.Router(routerGroup)
		r.DomainHandlers.Health.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
	}
}
