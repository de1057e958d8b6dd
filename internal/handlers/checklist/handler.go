package checklist

import (
	"net/http"

	"aisle/infras/otel"
	"aisle/internal/domains/checklist/model/dto"
	"aisle/internal/domains/checklist/service"
	"aisle/shared/constant"
	gDto "aisle/shared/dto"
	"aisle/shared/failure"
	"aisle/shared/validator"
	"aisle/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Checklist
	otel    otel.Otel
}

func New(service service.Checklist, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/checklist-items", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateChecklistItem)
		routerGroup.Get("/", handler.GetChecklistItems)
		routerGroup.Get("/{id}", handler.GetChecklistItemByID)
		routerGroup.Patch("/{id}", handler.UpdateChecklistItem)
		routerGroup.Delete("/{id}", handler.DeleteChecklistItem)
	})
}

func (handler *Handler) CreateChecklistItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateChecklistItem")
	defer scope.End()

	req := dto.CreateChecklistItemRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create checklist item")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Checklist item created successfully")
}

func (handler *Handler) GetChecklistItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetChecklistItems")
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
		log.Error().Err(err).Msg("failed to get checklist items")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) GetChecklistItemByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetChecklistItemByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get checklist item by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) UpdateChecklistItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateChecklistItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateChecklistItemRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update checklist item")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Checklist item updated successfully")
}

func (handler *Handler) DeleteChecklistItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteChecklistItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete checklist item")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Checklist item deleted successfully")
}
