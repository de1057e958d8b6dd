package service

import (
	"context"
	"fmt"
	"time"

	"aisle/config"
	"aisle/infras/otel"
	"aisle/internal/domains/event/model"
	"aisle/internal/domains/event/model/dto"
	"aisle/internal/domains/event/repository"
	permModel "aisle/internal/domains/permission/model"
	"aisle/shared"
	"aisle/shared/cache"
	"aisle/shared/constant"
	gDto "aisle/shared/dto"
	"aisle/shared/failure"
	"aisle/shared/password"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetEvent    = "event:get"
	cacheGetAllEvent = "event:gets"
	cacheCountEvent  = "event:count"
)

type Event interface {
	Create(ctx context.Context, req dto.CreateEventRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetEventsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.EventResponse, error)
	Update(ctx context.Context, req dto.UpdateEventRequest, id string) error
	Delete(ctx context.Context, id string) error
	Authorize(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Event
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Event, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Event {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateEventRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	tenantID, _ := ctx.Value(constant.ContextKeyTenantID).(string)

	usernameTaken, err := s.repo.Exist(ctx, shared.FilterByID(req.CoupleUsername, model.FieldCoupleUsername, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check couple username")

		return fmt.Errorf("failed to check couple username: %w", err)
	}

	if usernameTaken {
		return failure.BadRequestFromString("couple username already in use") // nolint:wrapcheck
	}

	hashed, err := password.Hash(req.CouplePassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash couple password")

		return fmt.Errorf("failed to hash couple password: %w", err)
	}

	event, err := req.ToModel(tenantID, user, hashed)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse event request")

		return failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	perms := permModel.Defaults(event.ID, event.Metadata)

	if err = s.repo.InsertWithPermissions(ctx, event, perms); err != nil {
		log.Error().Err(err).Msg("failed to create event")

		return fmt.Errorf("failed to create event: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllEvent)
		shared.InvalidateCaches(c, s.cache, cacheCountEvent)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetEventsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	tenantID, _ := ctx.Value(constant.ContextKeyTenantID).(string)

	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldTenantID,
		Operator: gDto.FilterOperatorEq,
		Value:    tenantID,
		Table:    model.TableName,
	})

	if filter.Operator == "" {
		filter.Operator = gDto.FilterGroupOperatorAnd
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllEvent, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for events")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count events")

		return res, fmt.Errorf("failed to count events: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get events")

		return res, fmt.Errorf("failed to get events: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save events to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count events")

		return res, fmt.Errorf("failed to count events: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	event, err := s.getAuthorized(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(event)

	return res, nil
}

// Authorize verifies the caller may touch the event: employees must be
// in the owning tenant, couples must carry the event in their token.
// Both mismatch and absence surface as NotFound so nothing about other
// tenants' events is leaked.
func (s *serviceImpl) Authorize(ctx context.Context, id string) error {
	_, err := s.getAuthorized(ctx, id)

	return err
}

func (s *serviceImpl) getAuthorized(ctx context.Context, id string) (model.Event, error) {
	var event model.Event

	cacheKey := shared.BuildCacheKey(cacheGetEvent, id)

	err := s.cache.Get(ctx, cacheKey, &event)
	if err != nil {
		event, err = s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get event")

			return event, fmt.Errorf("failed to get event: %w", err)
		}

		if event.ID == constant.Empty {
			return event, failure.NotFound("event not found") // nolint:wrapcheck
		}

		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.cache.Save(c, cacheKey, event, s.cfg.Cache.TTL); err != nil {
				log.Error().Err(err).Msg("failed to save event to cache")
			}
		}()
	}

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	switch role {
	case constant.RoleEmployee:
		tenantID, _ := ctx.Value(constant.ContextKeyTenantID).(string)
		if event.TenantID != tenantID {
			return model.Event{}, failure.NotFound("event not found") // nolint:wrapcheck
		}
	case constant.RoleCouple:
		eventID, _ := ctx.Value(constant.ContextKeyEventID).(string)
		if event.ID != eventID {
			return model.Event{}, failure.NotFound("event not found") // nolint:wrapcheck
		}
	default:
		return model.Event{}, failure.ForbiddenError // nolint:wrapcheck
	}

	return event, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateEventRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateEventRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if _, err = s.getAuthorized(ctx, id); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	updatedFields := shared.TransformFields(req, user)

	if req.EventDate != "" {
		eventDate, parseErr := time.Parse("2006-01-02", req.EventDate)
		if parseErr != nil {
			return failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", parseErr)) // nolint:wrapcheck
		}

		updatedFields[model.FieldEventDate] = eventDate
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update event")

		return fmt.Errorf("failed to update event: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getAuthorized(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete event")

		return fmt.Errorf("failed to delete event: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetEvent, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete event from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllEvent)
		shared.InvalidateCaches(c, s.cache, cacheCountEvent)
	}()
}
