package router

import (
	"aisle/internal/handlers/accommodation"
	"aisle/internal/handlers/auth"
	"aisle/internal/handlers/budget"
	"aisle/internal/handlers/checklist"
	"aisle/internal/handlers/employee"
	"aisle/internal/handlers/event"
	"aisle/internal/handlers/guest"
	"aisle/internal/handlers/menu"
	"aisle/internal/handlers/message"
	"aisle/internal/handlers/note"
	"aisle/internal/handlers/seating"
	"aisle/internal/handlers/timeline"
	"aisle/internal/handlers/vendors"
	"aisle/internal/handlers/website"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth          auth.Handler
	Employee      employee.Handler
	Event         event.Handler
	Guest         guest.Handler
	Seating       seating.Handler
	Menu          menu.Handler
	Timeline      timeline.Handler
	Budget        budget.Handler
	Vendor        vendor.Handler
	Checklist     checklist.Handler
	Note          note.Handler
	Accommodation accommodation.Handler
	Message       message.Handler
	Website       website.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Employee.Router(routerGroup)
		r.DomainHandlers.Event.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Seating.Router(routerGroup)
		r.DomainHandlers.Menu.Router(routerGroup)
		r.DomainHandlers.Timeline.Router(routerGroup)
		r.DomainHandlers.Budget.Router(routerGroup)
		r.DomainHandlers.Vendor.Router(routerGroup)
		r.DomainHandlers.Checklist.Router(routerGroup)
		r.DomainHandlers.Note.Router(routerGroup)
		r.DomainHandlers.Accommodation.Router(routerGroup)
		r.DomainHandlers.Message.Router(routerGroup)
		r.DomainHandlers.Website.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
