package guest

import (
	"net/http"

	"aisle/infras/otel"
	"aisle/internal/domains/guest/model"
	"aisle/internal/domains/guest/model/dto"
	"aisle/internal/domains/guest/service"
	"aisle/shared/constant"
	gDto "aisle/shared/dto"
	"aisle/shared/failure"
	"aisle/shared/validator"
	"aisle/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Guest
	otel    otel.Otel
}

func New(service service.Guest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/guests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateGuest)
		routerGroup.Post("/import", handler.ImportGuests)
		routerGroup.Get("/", handler.GetGuests)
		routerGroup.Get("/stats", handler.GetStats)
		routerGroup.Get("/{id}", handler.GetGuestByID)
		routerGroup.Patch("/{id}", handler.UpdateGuest)
		routerGroup.Delete("/{id}", handler.DeleteGuest)
		routerGroup.Post("/{id}/invitation", handler.SendInvitation)
		routerGroup.Post("/{id}/save-the-date", handler.RespondSaveTheDate)
	})

	// Token-gated RSVP endpoints; anonymous, skip-listed in permissions.
	router.Route("/public/rsvp", func(routerGroup chi.Router) {
		routerGroup.Get("/{token}", handler.GetByToken)
		routerGroup.Post("/{token}", handler.SubmitRSVP)
	})
}

func (handler *Handler) CreateGuest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGuest")
	defer scope.End()

	req := dto.CreateGuestRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create guest")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Guest created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Guest created successfully")
}

// ImportGuests bulk-creates guests from an uploaded CSV file. The whole
// file is validated before any row is written.
func (handler *Handler) ImportGuests(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ImportGuests")
	defer scope.End()

	eventID := request.URL.Query().Get(constant.RequestParamEventID)
	if eventID == constant.Empty {
		err := failure.BadRequestFromString("eventId query parameter is required")
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(writer, failure.BadRequestFromString("invalid multipart form"))

		return
	}

	file, _, err := request.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read uploaded file")

		response.WithError(writer, failure.BadRequestFromString("csv file is required"))

		return
	}
	defer file.Close()

	res, err := handler.service.ImportCSV(ctx, eventID, file)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to import guests")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

func (handler *Handler) GetGuests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuests")
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

	rsvpStatus := r.URL.Query().Get(model.FieldRSVPStatus)
	stage := r.URL.Query().Get(model.FieldStage)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if rsvpStatus != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRSVPStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    rsvpStatus,
			Table:    model.TableName,
		})
	}

	if stage != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStage,
			Operator: gDto.FilterOperatorEq,
			Value:    stage,
			Table:    model.TableName,
		})
	}

	guests, err := handler.service.GetAll(ctx, eventID, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, guests)
}

// GetStats returns RSVP counters for the event dashboard.
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	eventID := r.URL.Query().Get(constant.RequestParamEventID)
	if eventID == constant.Empty {
		err := failure.BadRequestFromString("eventId query parameter is required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	stats, err := handler.service.Stats(ctx, eventID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest stats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, stats)
}

func (handler *Handler) GetGuestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuestByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	guest, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, guest)
}

func (handler *Handler) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGuest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateGuestRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update guest")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Guest updated successfully")
}

func (handler *Handler) DeleteGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteGuest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete guest")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Guest deleted successfully")
}

// SendInvitation marks the invitation sent and promotes draft guests to
// invited. Outbound delivery belongs to the notification collaborator.
func (handler *Handler) SendInvitation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendInvitation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.SendInvitation(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send invitation")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Invitation marked as sent")
}

// RespondSaveTheDate records the guest's yes/no reply. A yes issues a
// fresh RSVP token which is returned to the caller.
func (handler *Handler) RespondSaveTheDate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RespondSaveTheDate")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.SaveTheDateRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.RespondSaveTheDate(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record save-the-date response")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetByToken is the anonymous RSVP lookup. Unknown and malformed tokens
// are indistinguishable to the caller.
func (handler *Handler) GetByToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetByToken")
	defer scope.End()

	token := chi.URLParam(r, constant.RequestParamToken)

	guest, err := handler.service.GetByToken(ctx, token)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("rsvp token lookup failed")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, guest)
}

func (handler *Handler) SubmitRSVP(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitRSVP")
	defer scope.End()

	token := chi.URLParam(r, constant.RequestParamToken)

	req := dto.SubmitRSVPRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SubmitRSVP(ctx, token, req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to submit rsvp")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "RSVP submitted successfully")
}
