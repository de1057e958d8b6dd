package service

import (
	"context"
	"fmt"

	"aisle/config"
	"aisle/infras/otel"
	"aisle/internal/domains/permission/model"
	"aisle/internal/domains/permission/model/dto"
	"aisle/internal/domains/permission/repository"
	"aisle/shared"
	"aisle/shared/cache"
	"aisle/shared/constant"
	"aisle/shared/failure"
	"aisle/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetPermissions = "permission:get"
)

type Permission interface {
	Get(ctx context.Context, eventID string) (dto.PermissionsResponse, error)
	Set(ctx context.Context, req dto.SetPermissionsRequest, eventID string) error
	SectionEnabled(ctx context.Context, eventID, section string) (bool, error)
}

type serviceImpl struct {
	repo  repository.Permission
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Permission, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Permission {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) get(ctx context.Context, eventID string) (model.Permissions, error) {
	var perms model.Permissions

	cacheKey := shared.BuildCacheKey(cacheGetPermissions, eventID)

	err := s.cache.Get(ctx, cacheKey, &perms)
	if err == nil {
		return perms, nil
	}

	perms, err = s.repo.Get(ctx, shared.FilterByID(eventID, model.FieldEventID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get permissions")

		return perms, fmt.Errorf("failed to get permissions: %w", err)
	}

	if perms.EventID == constant.Empty {
		return perms, failure.NotFound("permissions not found") // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, perms, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save permissions to cache")
		}
	}()

	return perms, nil
}

func (s *serviceImpl) Get(ctx context.Context, eventID string) (res dto.PermissionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	perms, err := s.get(ctx, eventID)
	if err != nil {
		return res, err
	}

	res.FromModel(perms)

	return res, nil
}

// Set overwrites the full section set for the event. Partial updates are
// deliberately unsupported; disabled sections must be stated explicitly.
func (s *serviceImpl) Set(ctx context.Context, req dto.SetPermissionsRequest, eventID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Set")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(eventID, model.FieldEventID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if permissions exist")

		return fmt.Errorf("failed to check if permissions exist: %w", err)
	}

	if !exist {
		return failure.NotFound("permissions not found") // nolint:wrapcheck
	}

	// TransformFields drops zero values, which would silently keep a
	// section enabled when the caller sets it to false. Build the full
	// column map by hand instead.
	updatedFields := map[string]any{
		model.FieldGuestListEnabled: req.GuestListEnabled,
		model.FieldSeatingEnabled:   req.SeatingEnabled,
		model.FieldTimelineEnabled:  req.TimelineEnabled,
		model.FieldMenuEnabled:      req.MenuEnabled,
		model.FieldNotesEnabled:     req.NotesEnabled,
		model.FieldHotelEnabled:     req.HotelEnabled,
		model.FieldWebsiteEnabled:   req.WebsiteEnabled,
		constant.FieldModifiedAt:    timezone.Now(),
		constant.FieldModifiedBy:    user,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update permissions")

		return fmt.Errorf("failed to update permissions: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPermissions, eventID)); err != nil {
			log.Error().Err(err).Msg("failed to delete permissions from cache")
		}
	}()

	return nil
}

// SectionEnabled is consulted by the couple-portal middleware before any
// section-scoped procedure runs, so a hidden section is unreachable, not
// merely hidden in the UI.
func (s *serviceImpl) SectionEnabled(ctx context.Context, eventID, section string) (res bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SectionEnabled")
	defer scope.End()
	defer scope.TraceIfError(err)

	perms, err := s.get(ctx, eventID)
	if err != nil {
		return false, err
	}

	return perms.SectionEnabled(section), nil
}
