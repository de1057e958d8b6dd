package budget

import (
	"net/http"

	"aisle/infras/otel"
	"aisle/internal/domains/budget/model/dto"
	"aisle/internal/domains/budget/service"
	"aisle/shared/constant"
	gDto "aisle/shared/dto"
	"aisle/shared/failure"
	"aisle/shared/validator"
	"aisle/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Budget
	otel    otel.Otel
}

func New(service service.Budget, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/budget-items", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBudgetItem)
		routerGroup.Get("/", handler.GetBudgetItems)
		routerGroup.Get("/{id}", handler.GetBudgetItemByID)
		routerGroup.Patch("/{id}", handler.UpdateBudgetItem)
		routerGroup.Delete("/{id}", handler.DeleteBudgetItem)
	})
}

func (handler *Handler) CreateBudgetItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBudgetItem")
	defer scope.End()

	req := dto.CreateBudgetItemRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create budget item")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Budget item created successfully")
}

func (handler *Handler) GetBudgetItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBudgetItems")
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

	res, err := handler.service.GetAll(ctx, eventID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get budget items")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) GetBudgetItemByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBudgetItemByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get budget item by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) UpdateBudgetItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBudgetItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBudgetItemRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update budget item")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Budget item updated successfully")
}

func (handler *Handler) DeleteBudgetItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBudgetItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete budget item")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Budget item deleted successfully")
}
