package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"aisle/config"
	"aisle/infras/otel"
	eventService "aisle/internal/domains/event/service"
	"aisle/internal/domains/timeline/model"
	"aisle/internal/domains/timeline/model/dto"
	"aisle/internal/domains/timeline/repository"
	"aisle/shared"
	"aisle/shared/cache"
	"aisle/shared/constant"
	gDto "aisle/shared/dto"
	"aisle/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllTimelineItems = "timeline:gets"
)

type Timeline interface {
	Create(ctx context.Context, req dto.CreateTimelineItemRequest) error
	GetAll(ctx context.Context, eventID string, params gDto.QueryParams) (dto.GetTimelineItemsResponse, error)
	Get(ctx context.Context, id string) (dto.TimelineItemResponse, error)
	Update(ctx context.Context, req dto.UpdateTimelineItemRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Timeline
	eventSvc eventService.Event
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Timeline, eventSvc eventService.Event, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Timeline {
	return &serviceImpl{
		repo:     repo,
		eventSvc: eventSvc,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTimelineItemRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".timeline.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.eventSvc.Authorize(ctx, req.EventID); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create timeline item")

		return fmt.Errorf("failed to create timeline item: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, eventID string, params gDto.QueryParams) (res dto.GetTimelineItemsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".timeline.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.eventSvc.Authorize(ctx, eventID); err != nil {
		return res, err
	}

	filter := shared.FilterByID(eventID, model.FieldEventID, model.TableName)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTimelineItems, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count timeline items")

		return res, fmt.Errorf("failed to count timeline items: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get timeline items")

		return res, fmt.Errorf("failed to get timeline items: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save timeline items to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TimelineItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".timeline.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	item, err := s.getAuthorized(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(item)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTimelineItemRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".timeline.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateTimelineItemRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if _, err = s.getAuthorized(ctx, id); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update timeline item")

		return fmt.Errorf("failed to update timeline item: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".timeline.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getAuthorized(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete timeline item")

		return fmt.Errorf("failed to delete timeline item: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) getAuthorized(ctx context.Context, id string) (model.TimelineItem, error) {
	item, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get timeline item")

		return item, fmt.Errorf("failed to get timeline item: %w", err)
	}

	if item.ID == constant.Empty {
		return item, failure.NotFound("timeline item not found") // nolint:wrapcheck
	}

	if err = s.eventSvc.Authorize(ctx, item.EventID); err != nil {
		return model.TimelineItem{}, failure.NotFound("timeline item not found") // nolint:wrapcheck
	}

	return item, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllTimelineItems)
	}()
}
