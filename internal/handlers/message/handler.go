package message

import (
	"net/http"

	"aisle/infras/otel"
	"aisle/internal/domains/message/model/dto"
	"aisle/internal/domains/message/service"
	"aisle/shared/constant"
	gDto "aisle/shared/dto"
	"aisle/shared/failure"
	"aisle/shared/validator"
	"aisle/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Message
	otel    otel.Otel
}

func New(service service.Message, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/messages", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateMessage)
		routerGroup.Get("/", handler.GetMessages)
		routerGroup.Patch("/{id}/read", handler.MarkRead)
		routerGroup.Delete("/{id}", handler.DeleteMessage)
	})
}

func (handler *Handler) CreateMessage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMessage")
	defer scope.End()

	req := dto.CreateMessageRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create message")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Message sent successfully")
}

func (handler *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMessages")
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

	messages, err := handler.service.GetAll(ctx, eventID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get messages")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, messages)
}

// MarkRead flags a message from the other party as read.
func (handler *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkRead")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.MarkRead(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark message as read")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Message marked as read")
}

func (handler *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMessage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete message")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Message deleted successfully")
}
