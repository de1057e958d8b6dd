package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"aisle/config"
	"aisle/infras/otel"
	eventService "aisle/internal/domains/event/service"
	guestModel "aisle/internal/domains/guest/model"
	guestRepository "aisle/internal/domains/guest/repository"
	"aisle/internal/domains/seating/model"
	"aisle/internal/domains/seating/model/dto"
	"aisle/internal/domains/seating/repository"
	"aisle/shared"
	"aisle/shared/cache"
	"aisle/shared/constant"
	gDto "aisle/shared/dto"
	"aisle/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetFloorPlan     = "seating:floorplan:get"
	cacheGetAllFloorPlans = "seating:floorplan:gets"
	cacheGetAllTables     = "seating:table:gets"
	cacheGetAllSeats      = "seating:seat:gets"

	// Seating mutations rewrite guest rows, so the guest caches are
	// invalidated from here as well.
	cacheGuestGet    = "guest:get"
	cacheGuestGetAll = "guest:gets"
)

type Seating interface {
	CreateFloorPlan(ctx context.Context, req dto.CreateFloorPlanRequest) error
	GetAllFloorPlans(ctx context.Context, eventID string, params gDto.QueryParams) (dto.GetFloorPlansResponse, error)
	GetFloorPlan(ctx context.Context, id string) (dto.FloorPlanResponse, error)
	UpdateFloorPlan(ctx context.Context, req dto.UpdateFloorPlanRequest, id string) error
	DeleteFloorPlan(ctx context.Context, id string) error

	CreateTable(ctx context.Context, req dto.CreateTableRequest) error
	GetAllTables(ctx context.Context, floorPlanID string, params gDto.QueryParams) (dto.GetTablesResponse, error)
	UpdateTable(ctx context.Context, req dto.UpdateTableRequest, id string) error
	DeleteTable(ctx context.Context, id string) error

	CreateSeat(ctx context.Context, req dto.CreateSeatRequest) error
	GetAllSeats(ctx context.Context, floorPlanID string, params gDto.QueryParams) (dto.GetSeatsResponse, error)
	DeleteSeat(ctx context.Context, id string) error

	AssignGuestToTable(ctx context.Context, req dto.AssignTableRequest) error
	AssignGuestToSeat(ctx context.Context, req dto.AssignSeatRequest) error
	UnassignGuest(ctx context.Context, guestID string) error
}

type serviceImpl struct {
	repo      repository.Seating
	guestRepo guestRepository.Guest
	eventSvc  eventService.Event
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Seating, guestRepo guestRepository.Guest, eventSvc eventService.Event, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Seating {
	return &serviceImpl{
		repo:      repo,
		guestRepo: guestRepo,
		eventSvc:  eventSvc,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) CreateFloorPlan(ctx context.Context, req dto.CreateFloorPlanRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".seating.CreateFloorPlan")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.eventSvc.Authorize(ctx, req.EventID); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.InsertFloorPlan(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create floor plan")

		return fmt.Errorf("failed to create floor plan: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) GetAllFloorPlans(ctx context.Context, eventID string, params gDto.QueryParams) (res dto.GetFloorPlansResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".seating.GetAllFloorPlans")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.eventSvc.Authorize(ctx, eventID); err != nil {
		return res, err
	}

	filter := shared.FilterByID(eventID, model.FieldEventID, model.FloorPlanTableName)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllFloorPlans, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.CountFloorPlans(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count floor plans")

		return res, fmt.Errorf("failed to count floor plans: %w", err)
	}

	models, err := s.repo.GetAllFloorPlans(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get floor plans")

		return res, fmt.Errorf("failed to get floor plans: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save floor plans to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetFloorPlan(ctx context.Context, id string) (res dto.FloorPlanResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".seating.GetFloorPlan")
	defer scope.End()
	defer scope.TraceIfError(err)

	plan, err := s.getAuthorizedFloorPlan(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(plan)

	return res, nil
}

func (s *serviceImpl) UpdateFloorPlan(ctx context.Context, req dto.UpdateFloorPlanRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".seating.UpdateFloorPlan")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateFloorPlanRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if _, err = s.getAuthorizedFloorPlan(ctx, id); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.UpdateFloorPlan(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.FieldID, model.FloorPlanTableName)); err != nil {
		log.Error().Err(err).Msg("failed to update floor plan")

		return fmt.Errorf("failed to update floor plan: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) DeleteFloorPlan(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".seating.DeleteFloorPlan")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getAuthorizedFloorPlan(ctx, id); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.DeleteFloorPlanCascade(ctx, id, user); err != nil {
		log.Error().Err(err).Msg("failed to delete floor plan")

		return fmt.Errorf("failed to delete floor plan: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) CreateTable(ctx context.Context, req dto.CreateTableRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".seating.CreateTable")
	defer scope.End()
	defer scope.TraceIfError(err)

	plan, err := s.getAuthorizedFloorPlan(ctx, req.FloorPlanID)
	if err != nil {
		return err
	}

	if plan.Mode != constant.FloorPlanModeReception {
		return failure.BadRequestFromString("tables belong on a reception floor plan") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.InsertTable(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create table")

		return fmt.Errorf("failed to create table: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) GetAllTables(ctx context.Context, floorPlanID string, params gDto.QueryParams) (res dto.GetTablesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".seating.GetAllTables")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getAuthorizedFloorPlan(ctx, floorPlanID); err != nil {
		return res, err
	}

	filter := shared.FilterByID(floorPlanID, model.FieldFloorPlanID, model.TableTableName)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTables, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.CountTables(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count tables")

		return res, fmt.Errorf("failed to count tables: %w", err)
	}

	models, err := s.repo.GetAllTables(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tables")

		return res, fmt.Errorf("failed to get tables: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save tables to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateTable(ctx context.Context, req dto.UpdateTableRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".seating.UpdateTable")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateTableRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	table, err := s.getAuthorizedTable(ctx, id)
	if err != nil {
		return err
	}

	fields := shared.TransformFields(req, userFromContext(ctx))

	// Capacity may not drop below the current occupancy.
	if req.SeatCount != nil {
		occupants, countErr := s.guestRepo.Count(ctx, shared.FilterByID(table.ID, guestModel.FieldTableID, guestModel.TableName))
		if countErr != nil {
			log.Error().Err(countErr).Msg("failed to count table occupants")

			return fmt.Errorf("failed to count table occupants: %w", countErr)
		}

		if *req.SeatCount < occupants {
			return failure.Conflict("seat count is below the current number of seated guests") // nolint:wrapcheck
		}
	}

	if err = s.repo.UpdateTable(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableTableName)); err != nil {
		log.Error().Err(err).Msg("failed to update table")

		return fmt.Errorf("failed to update table: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) DeleteTable(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".seating.DeleteTable")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getAuthorizedTable(ctx, id); err != nil {
		return err
	}

	if err = s.repo.DeleteTableCascade(ctx, id, userFromContext(ctx)); err != nil {
		log.Error().Err(err).Msg("failed to delete table")

		return fmt.Errorf("failed to delete table: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) CreateSeat(ctx context.Context, req dto.CreateSeatRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".seating.CreateSeat")
	defer scope.End()
	defer scope.TraceIfError(err)

	plan, err := s.getAuthorizedFloorPlan(ctx, req.FloorPlanID)
	if err != nil {
		return err
	}

	if plan.Mode != constant.FloorPlanModeCeremony {
		return failure.BadRequestFromString("freestanding seats belong on a ceremony floor plan") // nolint:wrapcheck
	}

	if err = s.repo.InsertSeat(ctx, req.ToModel(userFromContext(ctx))); err != nil {
		log.Error().Err(err).Msg("failed to create seat")

		return fmt.Errorf("failed to create seat: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) GetAllSeats(ctx context.Context, floorPlanID string, params gDto.QueryParams) (res dto.GetSeatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".seating.GetAllSeats")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getAuthorizedFloorPlan(ctx, floorPlanID); err != nil {
		return res, err
	}

	filter := shared.FilterByID(floorPlanID, model.FieldFloorPlanID, model.SeatTableName)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllSeats, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.CountSeats(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count seats")

		return res, fmt.Errorf("failed to count seats: %w", err)
	}

	models, err := s.repo.GetAllSeats(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get seats")

		return res, fmt.Errorf("failed to get seats: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save seats to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) DeleteSeat(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".seating.DeleteSeat")
	defer scope.End()
	defer scope.TraceIfError(err)

	seat, err := s.repo.GetSeatWithEvent(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get seat")

		return fmt.Errorf("failed to get seat: %w", err)
	}

	if seat.ID == constant.Empty {
		return failure.NotFound("seat not found") // nolint:wrapcheck
	}

	if err = s.eventSvc.Authorize(ctx, seat.EventID); err != nil {
		return failure.NotFound("seat not found") // nolint:wrapcheck
	}

	if err = s.repo.DeleteSeat(ctx, shared.FilterByID(id, model.FieldID, model.SeatTableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete seat")

		return fmt.Errorf("failed to delete seat: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

// AssignGuestToTable seats a guest at a reception table. The capacity
// check happens inside the conditional UPDATE, so a full table surfaces
// as Conflict even under concurrent assignments. A guest seated at
// another table is moved, never duplicated.
func (s *serviceImpl) AssignGuestToTable(ctx context.Context, req dto.AssignTableRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".seating.AssignGuestToTable")
	defer scope.End()
	defer scope.TraceIfError(err)

	guest, err := s.getAuthorizedGuest(ctx, req.GuestID)
	if err != nil {
		return err
	}

	table, err := s.repo.GetTableWithEvent(ctx, req.TableID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get table")

		return fmt.Errorf("failed to get table: %w", err)
	}

	if table.ID == constant.Empty || table.EventID != guest.EventID {
		return failure.NotFound("table not found") // nolint:wrapcheck
	}

	if guest.TableID != nil && *guest.TableID == table.ID {
		return failure.Conflict("guest is already seated at this table") // nolint:wrapcheck
	}

	assigned, err := s.repo.AssignGuestToTable(ctx, guest.ID, table.ID, guest.TableID, userFromContext(ctx))
	if err != nil {
		log.Error().Err(err).Msg("failed to assign guest to table")

		return fmt.Errorf("failed to assign guest to table: %w", err)
	}

	if !assigned {
		return failure.Conflict("table is full") // nolint:wrapcheck
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) AssignGuestToSeat(ctx context.Context, req dto.AssignSeatRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".seating.AssignGuestToSeat")
	defer scope.End()
	defer scope.TraceIfError(err)

	guest, err := s.getAuthorizedGuest(ctx, req.GuestID)
	if err != nil {
		return err
	}

	seat, err := s.repo.GetSeatWithEvent(ctx, req.SeatID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get seat")

		return fmt.Errorf("failed to get seat: %w", err)
	}

	if seat.ID == constant.Empty || seat.EventID != guest.EventID {
		return failure.NotFound("seat not found") // nolint:wrapcheck
	}

	if seat.Mode != constant.FloorPlanModeCeremony {
		return failure.BadRequestFromString("freestanding seats belong on a ceremony floor plan") // nolint:wrapcheck
	}

	if seat.GuestID != nil && *seat.GuestID == guest.ID {
		return failure.Conflict("guest is already assigned to this seat") // nolint:wrapcheck
	}

	assigned, err := s.repo.AssignGuestToSeat(ctx, guest.ID, seat.ID, userFromContext(ctx))
	if err != nil {
		log.Error().Err(err).Msg("failed to assign guest to seat")

		return fmt.Errorf("failed to assign guest to seat: %w", err)
	}

	if !assigned {
		return failure.Conflict("seat is already taken") // nolint:wrapcheck
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) UnassignGuest(ctx context.Context, guestID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".seating.UnassignGuest")
	defer scope.End()
	defer scope.TraceIfError(err)

	guest, err := s.getAuthorizedGuest(ctx, guestID)
	if err != nil {
		return err
	}

	if err = s.repo.UnassignGuest(ctx, guest.ID, guest.TableID, userFromContext(ctx)); err != nil {
		log.Error().Err(err).Msg("failed to unassign guest")

		return fmt.Errorf("failed to unassign guest: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) getAuthorizedFloorPlan(ctx context.Context, id string) (model.FloorPlan, error) {
	plan, err := s.repo.GetFloorPlan(ctx, shared.FilterByID(id, model.FieldID, model.FloorPlanTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get floor plan")

		return plan, fmt.Errorf("failed to get floor plan: %w", err)
	}

	if plan.ID == constant.Empty {
		return plan, failure.NotFound("floor plan not found") // nolint:wrapcheck
	}

	if err = s.eventSvc.Authorize(ctx, plan.EventID); err != nil {
		return model.FloorPlan{}, failure.NotFound("floor plan not found") // nolint:wrapcheck
	}

	return plan, nil
}

func (s *serviceImpl) getAuthorizedTable(ctx context.Context, id string) (model.TableWithEvent, error) {
	table, err := s.repo.GetTableWithEvent(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get table")

		return table, fmt.Errorf("failed to get table: %w", err)
	}

	if table.ID == constant.Empty {
		return table, failure.NotFound("table not found") // nolint:wrapcheck
	}

	if err = s.eventSvc.Authorize(ctx, table.EventID); err != nil {
		return model.TableWithEvent{}, failure.NotFound("table not found") // nolint:wrapcheck
	}

	return table, nil
}

func (s *serviceImpl) getAuthorizedGuest(ctx context.Context, id string) (guestModel.Guest, error) {
	guest, err := s.guestRepo.Get(ctx, shared.FilterByID(id, guestModel.FieldID, guestModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return guest, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == constant.Empty {
		return guest, failure.NotFound("guest not found") // nolint:wrapcheck
	}

	if err = s.eventSvc.Authorize(ctx, guest.EventID); err != nil {
		return guestModel.Guest{}, failure.NotFound("guest not found") // nolint:wrapcheck
	}

	return guest, nil
}

func userFromContext(ctx context.Context) string {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return user
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetFloorPlan)
		shared.InvalidateCaches(c, s.cache, cacheGetAllFloorPlans)
		shared.InvalidateCaches(c, s.cache, cacheGetAllTables)
		shared.InvalidateCaches(c, s.cache, cacheGetAllSeats)
		shared.InvalidateCaches(c, s.cache, cacheGuestGet)
		shared.InvalidateCaches(c, s.cache, cacheGuestGetAll)
	}()
}
