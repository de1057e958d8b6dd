package seating

import (
	"net/http"

	"aisle/infras/otel"
	"aisle/internal/domains/seating/model/dto"
	"aisle/internal/domains/seating/service"
	"aisle/shared/constant"
	gDto "aisle/shared/dto"
	"aisle/shared/failure"
	"aisle/shared/validator"
	"aisle/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Seating
	otel    otel.Otel
}

func New(service service.Seating, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/floor-plans", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateFloorPlan)
		routerGroup.Get("/", handler.GetFloorPlans)
		routerGroup.Get("/{id}", handler.GetFloorPlanByID)
		routerGroup.Patch("/{id}", handler.UpdateFloorPlan)
		routerGroup.Delete("/{id}", handler.DeleteFloorPlan)
		routerGroup.Get("/{id}/tables", handler.GetTables)
		routerGroup.Get("/{id}/seats", handler.GetSeats)
	})

	router.Route("/tables", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTable)
		routerGroup.Patch("/{id}", handler.UpdateTable)
		routerGroup.Delete("/{id}", handler.DeleteTable)
	})

	router.Route("/seats", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateSeat)
		routerGroup.Delete("/{id}", handler.DeleteSeat)
	})

	router.Route("/seating", func(routerGroup chi.Router) {
		routerGroup.Post("/assign-table", handler.AssignGuestToTable)
		routerGroup.Post("/assign-seat", handler.AssignGuestToSeat)
		routerGroup.Post("/unassign/{id}", handler.UnassignGuest)
	})
}

func (handler *Handler) CreateFloorPlan(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateFloorPlan")
	defer scope.End()

	req := dto.CreateFloorPlanRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.CreateFloorPlan(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create floor plan")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Floor plan created successfully")
}

func (handler *Handler) GetFloorPlans(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFloorPlans")
	defer scope.End()

	eventID := r.URL.Query().Get(constant.RequestParamEventID)
	if eventID == constant.Empty {
		err := failure.BadRequestFromString("eventId query parameter is required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	plans, err := handler.service.GetAllFloorPlans(ctx, eventID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get floor plans")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, plans)
}

func (handler *Handler) GetFloorPlanByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFloorPlanByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	plan, err := handler.service.GetFloorPlan(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get floor plan by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, plan)
}

func (handler *Handler) UpdateFloorPlan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateFloorPlan")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateFloorPlanRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateFloorPlan(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update floor plan")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Floor plan updated successfully")
}

// DeleteFloorPlan cascades: guests seated on the plan's tables are
// unassigned and the plan's tables and seats removed, one transaction.
func (handler *Handler) DeleteFloorPlan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteFloorPlan")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteFloorPlan(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete floor plan")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Floor plan deleted successfully")
}

func (handler *Handler) GetTables(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTables")
	defer scope.End()

	floorPlanID := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	tables, err := handler.service.GetAllTables(ctx, floorPlanID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tables")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, tables)
}

func (handler *Handler) GetSeats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSeats")
	defer scope.End()

	floorPlanID := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	seats, err := handler.service.GetAllSeats(ctx, floorPlanID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get seats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, seats)
}

func (handler *Handler) CreateTable(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTable")
	defer scope.End()

	req := dto.CreateTableRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.CreateTable(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create table")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Table created successfully")
}

func (handler *Handler) UpdateTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTable")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateTableRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateTable(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update table")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Table updated successfully")
}

// DeleteTable unassigns every guest at the table before removing it,
// inside a single transaction.
func (handler *Handler) DeleteTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTable")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteTable(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete table")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Table deleted successfully")
}

func (handler *Handler) CreateSeat(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSeat")
	defer scope.End()

	req := dto.CreateSeatRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.CreateSeat(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create seat")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Seat created successfully")
}

func (handler *Handler) DeleteSeat(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSeat")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteSeat(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete seat")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Seat deleted successfully")
}

// AssignGuestToTable seats a guest at a reception table. A guest seated
// elsewhere is moved atomically; a full table is a conflict.
func (handler *Handler) AssignGuestToTable(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AssignGuestToTable")
	defer scope.End()

	req := dto.AssignTableRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.AssignGuestToTable(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to assign guest to table")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Guest assigned to table successfully")
}

func (handler *Handler) AssignGuestToSeat(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AssignGuestToSeat")
	defer scope.End()

	req := dto.AssignSeatRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.AssignGuestToSeat(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to assign guest to seat")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Guest assigned to seat successfully")
}

func (handler *Handler) UnassignGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UnassignGuest")
	defer scope.End()

	guestID := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.UnassignGuest(ctx, guestID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to unassign guest")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Guest unassigned successfully")
}
