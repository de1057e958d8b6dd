package accommodation

import (
	"net/http"

	"aisle/infras/otel"
	"aisle/internal/domains/accommodation/model/dto"
	"aisle/internal/domains/accommodation/service"
	"aisle/shared/constant"
	gDto "aisle/shared/dto"
	"aisle/shared/failure"
	"aisle/shared/validator"
	"aisle/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Accommodation
	otel    otel.Otel
}

func New(service service.Accommodation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/accommodations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateAccommodation)
		routerGroup.Get("/", handler.GetAccommodations)
		routerGroup.Get("/{id}", handler.GetAccommodationByID)
		routerGroup.Patch("/{id}", handler.UpdateAccommodation)
		routerGroup.Delete("/{id}", handler.DeleteAccommodation)
	})
}

func (handler *Handler) CreateAccommodation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAccommodation")
	defer scope.End()

	req := dto.CreateAccommodationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create accommodation")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Accommodation created successfully")
}

func (handler *Handler) GetAccommodations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAccommodations")
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
		log.Error().Err(err).Msg("failed to get accommodations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) GetAccommodationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAccommodationByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get accommodation by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) UpdateAccommodation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAccommodation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateAccommodationRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update accommodation")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Accommodation updated successfully")
}

func (handler *Handler) DeleteAccommodation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAccommodation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete accommodation")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Accommodation deleted successfully")
}
