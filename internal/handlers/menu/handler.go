package menu

import (
	"net/http"

	"aisle/infras/otel"
	"aisle/internal/domains/menu/model/dto"
	"aisle/internal/domains/menu/service"
	"aisle/shared/constant"
	gDto "aisle/shared/dto"
	"aisle/shared/failure"
	"aisle/shared/validator"
	"aisle/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Menu
	otel    otel.Otel
}

func New(service service.Menu, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/menu-items", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateMenuItem)
		routerGroup.Get("/", handler.GetMenuItems)
		routerGroup.Get("/{id}", handler.GetMenuItemByID)
		routerGroup.Patch("/{id}", handler.UpdateMenuItem)
		routerGroup.Delete("/{id}", handler.DeleteMenuItem)
	})

	router.Route("/drinks", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateDrink)
		routerGroup.Get("/", handler.GetDrinks)
		routerGroup.Get("/{id}", handler.GetDrinkByID)
		routerGroup.Patch("/{id}", handler.UpdateDrink)
		routerGroup.Delete("/{id}", handler.DeleteDrink)
	})
}

func (handler *Handler) CreateMenuItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMenuItem")
	defer scope.End()

	req := dto.CreateMenuItemRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.CreateMenuItem(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create menu item")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Menu item created successfully")
}

func (handler *Handler) GetMenuItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMenuItems")
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

	items, err := handler.service.GetAllMenuItems(ctx, eventID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get menu items")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, items)
}

func (handler *Handler) GetMenuItemByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMenuItemByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	item, err := handler.service.GetMenuItem(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get menu item by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, item)
}

func (handler *Handler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMenuItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateMenuItemRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateMenuItem(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update menu item")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Menu item updated successfully")
}

func (handler *Handler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMenuItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteMenuItem(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete menu item")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Menu item deleted successfully")
}

func (handler *Handler) CreateDrink(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDrink")
	defer scope.End()

	req := dto.CreateDrinkRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.CreateDrink(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create drink")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Drink created successfully")
}

func (handler *Handler) GetDrinks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDrinks")
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

	drinks, err := handler.service.GetAllDrinks(ctx, eventID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get drinks")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, drinks)
}

func (handler *Handler) GetDrinkByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDrinkByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	drink, err := handler.service.GetDrink(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get drink by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, drink)
}

func (handler *Handler) UpdateDrink(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDrink")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateDrinkRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateDrink(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update drink")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Drink updated successfully")
}

func (handler *Handler) DeleteDrink(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteDrink")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteDrink(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete drink")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Drink deleted successfully")
}
