package website

import (
	"net/http"

	"aisle/infras/otel"
	"aisle/internal/domains/website/model/dto"
	"aisle/internal/domains/website/service"
	"aisle/shared/constant"
	"aisle/shared/validator"
	"aisle/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Website
	otel    otel.Otel
}

func New(service service.Website, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/websites", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateWebsite)
		routerGroup.Get("/{eventId}", handler.GetWebsite)
		routerGroup.Patch("/{eventId}", handler.UpdateWebsite)
		routerGroup.Delete("/{eventId}", handler.DeleteWebsite)

		routerGroup.Post("/{eventId}/registry-links", handler.AddRegistryLink)
		routerGroup.Delete("/{eventId}/registry-links/{id}", handler.DeleteRegistryLink)
		routerGroup.Post("/{eventId}/faq-items", handler.AddFAQItem)
		routerGroup.Delete("/{eventId}/faq-items/{id}", handler.DeleteFAQItem)
		routerGroup.Post("/{eventId}/photos", handler.AddPhoto)
		routerGroup.Delete("/{eventId}/photos/{id}", handler.DeletePhoto)
	})

	// Published-site read; anonymous, skip-listed in permissions.
	router.Route("/public/websites", func(routerGroup chi.Router) {
		routerGroup.Get("/{slug}", handler.GetBySlug)
	})
}

func (handler *Handler) CreateWebsite(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateWebsite")
	defer scope.End()

	req := dto.CreateWebsiteRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create website")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Website created successfully")
}

func (handler *Handler) GetWebsite(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWebsite")
	defer scope.End()

	eventID := chi.URLParam(r, constant.RequestParamEventID)

	website, err := handler.service.GetByEvent(ctx, eventID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get website")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, website)
}

func (handler *Handler) UpdateWebsite(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateWebsite")
	defer scope.End()

	eventID := chi.URLParam(r, constant.RequestParamEventID)

	req := dto.UpdateWebsiteRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, eventID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update website")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Website updated successfully")
}

func (handler *Handler) DeleteWebsite(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteWebsite")
	defer scope.End()

	eventID := chi.URLParam(r, constant.RequestParamEventID)

	if err := handler.service.Delete(ctx, eventID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete website")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Website deleted successfully")
}

func (handler *Handler) AddRegistryLink(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddRegistryLink")
	defer scope.End()

	eventID := chi.URLParam(r, constant.RequestParamEventID)

	req := dto.AddRegistryLinkRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.AddRegistryLink(ctx, eventID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add registry link")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Registry link added successfully")
}

func (handler *Handler) DeleteRegistryLink(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRegistryLink")
	defer scope.End()

	eventID := chi.URLParam(r, constant.RequestParamEventID)
	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteRegistryLink(ctx, eventID, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete registry link")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Registry link deleted successfully")
}

func (handler *Handler) AddFAQItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddFAQItem")
	defer scope.End()

	eventID := chi.URLParam(r, constant.RequestParamEventID)

	req := dto.AddFAQItemRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.AddFAQItem(ctx, eventID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add FAQ item")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "FAQ item added successfully")
}

func (handler *Handler) DeleteFAQItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteFAQItem")
	defer scope.End()

	eventID := chi.URLParam(r, constant.RequestParamEventID)
	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteFAQItem(ctx, eventID, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete FAQ item")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "FAQ item deleted successfully")
}

func (handler *Handler) AddPhoto(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddPhoto")
	defer scope.End()

	eventID := chi.URLParam(r, constant.RequestParamEventID)

	req := dto.AddPhotoRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.AddPhoto(ctx, eventID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add photo")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Photo added successfully")
}

func (handler *Handler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePhoto")
	defer scope.End()

	eventID := chi.URLParam(r, constant.RequestParamEventID)
	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeletePhoto(ctx, eventID, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete photo")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Photo deleted successfully")
}

// GetBySlug serves the public wedding website. Unpublished and unknown
// slugs are both a plain not found.
func (handler *Handler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBySlug")
	defer scope.End()

	slug := chi.URLParam(r, constant.RequestParamSlug)

	website, err := handler.service.GetBySlug(ctx, slug)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("public website lookup failed")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, website)
}
