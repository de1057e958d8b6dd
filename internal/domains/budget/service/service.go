package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"aisle/config"
	"aisle/infras/otel"
	eventService "aisle/internal/domains/event/service"
	"aisle/internal/domains/budget/model"
	"aisle/internal/domains/budget/model/dto"
	"aisle/internal/domains/budget/repository"
	"aisle/shared"
	"aisle/shared/cache"
	"aisle/shared/constant"
	gDto "aisle/shared/dto"
	"aisle/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllBudgetItems = "budget:gets"
)

type Budget interface {
	Create(ctx context.Context, req dto.CreateBudgetItemRequest) error
	GetAll(ctx context.Context, eventID string, params gDto.QueryParams) (dto.GetBudgetItemsResponse, error)
	Get(ctx context.Context, id string) (dto.BudgetItemResponse, error)
	Update(ctx context.Context, req dto.UpdateBudgetItemRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Budget
	eventSvc eventService.Event
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Budget, eventSvc eventService.Event, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Budget {
	return &serviceImpl{
		repo:     repo,
		eventSvc: eventSvc,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBudgetItemRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".budget.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.eventSvc.Authorize(ctx, req.EventID); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create budget item")

		return fmt.Errorf("failed to create budget item: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, eventID string, params gDto.QueryParams) (res dto.GetBudgetItemsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".budget.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.eventSvc.Authorize(ctx, eventID); err != nil {
		return res, err
	}

	filter := shared.FilterByID(eventID, model.FieldEventID, model.TableName)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBudgetItems, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count budget items")

		return res, fmt.Errorf("failed to count budget items: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get budget items")

		return res, fmt.Errorf("failed to get budget items: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save budget items to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BudgetItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".budget.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	item, err := s.getAuthorized(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(item)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBudgetItemRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".budget.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBudgetItemRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if _, err = s.getAuthorized(ctx, id); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update budget item")

		return fmt.Errorf("failed to update budget item: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".budget.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getAuthorized(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete budget item")

		return fmt.Errorf("failed to delete budget item: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) getAuthorized(ctx context.Context, id string) (model.BudgetItem, error) {
	item, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get budget item")

		return item, fmt.Errorf("failed to get budget item: %w", err)
	}

	if item.ID == constant.Empty {
		return item, failure.NotFound("budget item not found") // nolint:wrapcheck
	}

	if err = s.eventSvc.Authorize(ctx, item.EventID); err != nil {
		return model.BudgetItem{}, failure.NotFound("budget item not found") // nolint:wrapcheck
	}

	return item, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllBudgetItems)
	}()
}
