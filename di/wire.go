//go:build wireinject
// +build wireinject

package di

import (
	"aisle/config"
	"aisle/infras/jwt"
	"aisle/infras/kafka"
	"aisle/infras/otel"
	"aisle/infras/postgres"
	"aisle/infras/redis"
	"aisle/permissions"
	"aisle/shared/cache"
	"aisle/transport/http"
	"aisle/transport/http/middleware"
	"aisle/transport/http/router"

	"github.com/google/wire"

	accommodationRepository "aisle/internal/domains/accommodation/repository"
	accommodationService "aisle/internal/domains/accommodation/service"
	authService "aisle/internal/domains/auth/service"
	budgetRepository "aisle/internal/domains/budget/repository"
	budgetService "aisle/internal/domains/budget/service"
	checklistRepository "aisle/internal/domains/checklist/repository"
	checklistService "aisle/internal/domains/checklist/service"
	employeeRepository "aisle/internal/domains/employee/repository"
	employeeService "aisle/internal/domains/employee/service"
	eventRepository "aisle/internal/domains/event/repository"
	eventService "aisle/internal/domains/event/service"
	guestRepository "aisle/internal/domains/guest/repository"
	guestService "aisle/internal/domains/guest/service"
	menuRepository "aisle/internal/domains/menu/repository"
	menuService "aisle/internal/domains/menu/service"
	messageRepository "aisle/internal/domains/message/repository"
	messageService "aisle/internal/domains/message/service"
	noteRepository "aisle/internal/domains/note/repository"
	noteService "aisle/internal/domains/note/service"
	permissionRepository "aisle/internal/domains/permission/repository"
	permissionService "aisle/internal/domains/permission/service"
	seatingRepository "aisle/internal/domains/seating/repository"
	seatingService "aisle/internal/domains/seating/service"
	timelineRepository "aisle/internal/domains/timeline/repository"
	timelineService "aisle/internal/domains/timeline/service"
	vendorRepository "aisle/internal/domains/vendors/repository"
	vendorService "aisle/internal/domains/vendors/service"
	websiteRepository "aisle/internal/domains/website/repository"
	websiteService "aisle/internal/domains/website/service"

	accommodationHandler "aisle/internal/handlers/accommodation"
	authHandler "aisle/internal/handlers/auth"
	budgetHandler "aisle/internal/handlers/budget"
	checklistHandler "aisle/internal/handlers/checklist"
	employeeHandler "aisle/internal/handlers/employee"
	eventHandler "aisle/internal/handlers/event"
	guestHandler "aisle/internal/handlers/guest"
	menuHandler "aisle/internal/handlers/menu"
	messageHandler "aisle/internal/handlers/message"
	noteHandler "aisle/internal/handlers/note"
	seatingHandler "aisle/internal/handlers/seating"
	timelineHandler "aisle/internal/handlers/timeline"
	vendorHandler "aisle/internal/handlers/vendors"
	websiteHandler "aisle/internal/handlers/website"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	permissions.Get,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
	middleware.NewSectionMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var domains = wire.NewSet(
	employeeRepository.New,
	employeeService.New,
	eventRepository.New,
	eventService.New,
	permissionRepository.New,
	permissionService.New,
	authService.New,
	guestRepository.New,
	guestService.New,
	seatingRepository.New,
	seatingService.New,
	menuRepository.New,
	menuService.New,
	timelineRepository.New,
	timelineService.New,
	budgetRepository.New,
	budgetService.New,
	vendorRepository.New,
	vendorService.New,
	checklistRepository.New,
	checklistService.New,
	noteRepository.New,
	noteService.New,
	accommodationRepository.New,
	accommodationService.New,
	messageRepository.New,
	messageService.New,
	websiteRepository.New,
	websiteService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	employeeHandler.New,
	eventHandler.New,
	guestHandler.New,
	seatingHandler.New,
	menuHandler.New,
	timelineHandler.New,
	budgetHandler.New,
	vendorHandler.New,
	checklistHandler.New,
	noteHandler.New,
	accommodationHandler.New,
	messageHandler.New,
	websiteHandler.New,
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
