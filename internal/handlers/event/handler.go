package event

import (
	"net/http"

	"aisle/infras/otel"
	"aisle/internal/domains/event/model"
	"aisle/internal/domains/event/model/dto"
	"aisle/internal/domains/event/service"
	permissionDto "aisle/internal/domains/permission/model/dto"
	permissionService "aisle/internal/domains/permission/service"
	"aisle/shared/constant"
	gDto "aisle/shared/dto"
	"aisle/shared/validator"
	"aisle/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service       service.Event
	permissionSvc permissionService.Permission
	otel          otel.Otel
}

func New(service service.Event, permissionSvc permissionService.Permission, otel otel.Otel) Handler {
	return Handler{
		service:       service,
		permissionSvc: permissionSvc,
		otel:          otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/events", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateEvent)
		routerGroup.Get("/", handler.GetEvents)
		routerGroup.Get("/{id}", handler.GetEventByID)
		routerGroup.Patch("/{id}", handler.UpdateEvent)
		routerGroup.Delete("/{id}", handler.DeleteEvent)
		routerGroup.Get("/{id}/permissions", handler.GetPermissions)
		routerGroup.Put("/{id}/permissions", handler.SetPermissions)
	})
}

func (handler *Handler) CreateEvent(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEvent")
	defer scope.End()

	req := dto.CreateEventRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create event")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Event created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Event created successfully")
}

func (handler *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEvents")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	status := r.URL.Query().Get(model.FieldStatus)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	events, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get events")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, events)
}

func (handler *Handler) GetEventByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEventByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	event, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get event by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, event)
}

func (handler *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEvent")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateEventRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update event")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Event updated successfully")
}

func (handler *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEvent")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete event")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Event deleted successfully")
}

// GetPermissions returns the couple-portal section toggles for an event.
func (handler *Handler) GetPermissions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPermissions")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	// The event must be visible to the caller before its permissions are.
	if err := handler.service.Authorize(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to authorize event access")

		response.WithError(w, err)

		return
	}

	perms, err := handler.permissionSvc.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get permissions")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, perms)
}

// SetPermissions overwrites the full section set for an event.
func (handler *Handler) SetPermissions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetPermissions")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Authorize(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to authorize event access")

		response.WithError(w, err)

		return
	}

	req := permissionDto.SetPermissionsRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.permissionSvc.Set(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set permissions")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Permissions updated successfully")
}
