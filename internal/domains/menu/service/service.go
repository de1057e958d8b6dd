package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"aisle/config"
	"aisle/infras/otel"
	eventService "aisle/internal/domains/event/service"
	"aisle/internal/domains/menu/model"
	"aisle/internal/domains/menu/model/dto"
	"aisle/internal/domains/menu/repository"
	"aisle/shared"
	"aisle/shared/cache"
	"aisle/shared/constant"
	gDto "aisle/shared/dto"
	"aisle/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllMenuItems = "menu:item:gets"
	cacheGetAllDrinks    = "menu:drink:gets"
)

type Menu interface {
	CreateMenuItem(ctx context.Context, req dto.CreateMenuItemRequest) error
	GetAllMenuItems(ctx context.Context, eventID string, params gDto.QueryParams) (dto.GetMenuItemsResponse, error)
	GetMenuItem(ctx context.Context, id string) (dto.MenuItemResponse, error)
	UpdateMenuItem(ctx context.Context, req dto.UpdateMenuItemRequest, id string) error
	DeleteMenuItem(ctx context.Context, id string) error

	CreateDrink(ctx context.Context, req dto.CreateDrinkRequest) error
	GetAllDrinks(ctx context.Context, eventID string, params gDto.QueryParams) (dto.GetDrinksResponse, error)
	GetDrink(ctx context.Context, id string) (dto.DrinkResponse, error)
	UpdateDrink(ctx context.Context, req dto.UpdateDrinkRequest, id string) error
	DeleteDrink(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Menu
	eventSvc eventService.Event
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Menu, eventSvc eventService.Event, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Menu {
	return &serviceImpl{
		repo:     repo,
		eventSvc: eventSvc,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) CreateMenuItem(ctx context.Context, req dto.CreateMenuItemRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".menu.CreateMenuItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.eventSvc.Authorize(ctx, req.EventID); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.InsertMenuItem(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create menu item")

		return fmt.Errorf("failed to create menu item: %w", err)
	}

	s.invalidate(ctx, cacheGetAllMenuItems)

	return nil
}

func (s *serviceImpl) GetAllMenuItems(ctx context.Context, eventID string, params gDto.QueryParams) (res dto.GetMenuItemsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".menu.GetAllMenuItems")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.eventSvc.Authorize(ctx, eventID); err != nil {
		return res, err
	}

	filter := shared.FilterByID(eventID, model.FieldEventID, model.MenuItemTableName)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllMenuItems, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.CountMenuItems(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count menu items")

		return res, fmt.Errorf("failed to count menu items: %w", err)
	}

	models, err := s.repo.GetAllMenuItems(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get menu items")

		return res, fmt.Errorf("failed to get menu items: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save menu items to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetMenuItem(ctx context.Context, id string) (res dto.MenuItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".menu.GetMenuItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	item, err := s.repo.GetMenuItem(ctx, shared.FilterByID(id, model.FieldID, model.MenuItemTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get menu item")

		return res, fmt.Errorf("failed to get menu item: %w", err)
	}

	if item.ID == constant.Empty {
		return res, failure.NotFound("menu item not found") // nolint:wrapcheck
	}

	if err = s.eventSvc.Authorize(ctx, item.EventID); err != nil {
		return res, failure.NotFound("menu item not found") // nolint:wrapcheck
	}

	res.FromModel(item)

	return res, nil
}

func (s *serviceImpl) UpdateMenuItem(ctx context.Context, req dto.UpdateMenuItemRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".menu.UpdateMenuItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateMenuItemRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if _, err = s.GetMenuItem(ctx, id); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.UpdateMenuItem(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.FieldID, model.MenuItemTableName)); err != nil {
		log.Error().Err(err).Msg("failed to update menu item")

		return fmt.Errorf("failed to update menu item: %w", err)
	}

	s.invalidate(ctx, cacheGetAllMenuItems)

	return nil
}

func (s *serviceImpl) DeleteMenuItem(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".menu.DeleteMenuItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.GetMenuItem(ctx, id); err != nil {
		return err
	}

	if err = s.repo.DeleteMenuItem(ctx, shared.FilterByID(id, model.FieldID, model.MenuItemTableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete menu item")

		return fmt.Errorf("failed to delete menu item: %w", err)
	}

	s.invalidate(ctx, cacheGetAllMenuItems)

	return nil
}

func (s *serviceImpl) CreateDrink(ctx context.Context, req dto.CreateDrinkRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".menu.CreateDrink")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.eventSvc.Authorize(ctx, req.EventID); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.InsertDrink(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create drink")

		return fmt.Errorf("failed to create drink: %w", err)
	}

	s.invalidate(ctx, cacheGetAllDrinks)

	return nil
}

func (s *serviceImpl) GetAllDrinks(ctx context.Context, eventID string, params gDto.QueryParams) (res dto.GetDrinksResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".menu.GetAllDrinks")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.eventSvc.Authorize(ctx, eventID); err != nil {
		return res, err
	}

	filter := shared.FilterByID(eventID, model.FieldEventID, model.DrinkTableName)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllDrinks, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.CountDrinks(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count drinks")

		return res, fmt.Errorf("failed to count drinks: %w", err)
	}

	models, err := s.repo.GetAllDrinks(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get drinks")

		return res, fmt.Errorf("failed to get drinks: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save drinks to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetDrink(ctx context.Context, id string) (res dto.DrinkResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".menu.GetDrink")
	defer scope.End()
	defer scope.TraceIfError(err)

	drink, err := s.repo.GetDrink(ctx, shared.FilterByID(id, model.FieldID, model.DrinkTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get drink")

		return res, fmt.Errorf("failed to get drink: %w", err)
	}

	if drink.ID == constant.Empty {
		return res, failure.NotFound("drink not found") // nolint:wrapcheck
	}

	if err = s.eventSvc.Authorize(ctx, drink.EventID); err != nil {
		return res, failure.NotFound("drink not found") // nolint:wrapcheck
	}

	res.FromModel(drink)

	return res, nil
}

func (s *serviceImpl) UpdateDrink(ctx context.Context, req dto.UpdateDrinkRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".menu.UpdateDrink")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateDrinkRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if _, err = s.GetDrink(ctx, id); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.UpdateDrink(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.FieldID, model.DrinkTableName)); err != nil {
		log.Error().Err(err).Msg("failed to update drink")

		return fmt.Errorf("failed to update drink: %w", err)
	}

	s.invalidate(ctx, cacheGetAllDrinks)

	return nil
}

func (s *serviceImpl) DeleteDrink(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".menu.DeleteDrink")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.GetDrink(ctx, id); err != nil {
		return err
	}

	if err = s.repo.DeleteDrink(ctx, shared.FilterByID(id, model.FieldID, model.DrinkTableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete drink")

		return fmt.Errorf("failed to delete drink: %w", err)
	}

	s.invalidate(ctx, cacheGetAllDrinks)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, prefix string) {
	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, prefix)
	}()
}
