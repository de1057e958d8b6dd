package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"aisle/infras/otel"
	eventService "aisle/internal/domains/event/service"
	"aisle/internal/domains/checklist/model"
	"aisle/internal/domains/checklist/model/dto"
	"aisle/internal/domains/checklist/repository"
	"aisle/shared"
	"aisle/shared/constant"
	gDto "aisle/shared/dto"
	"aisle/shared/failure"

	"github.com/rs/zerolog/log"
)

type Checklist interface {
	Create(ctx context.Context, req dto.CreateChecklistItemRequest) error
	GetAll(ctx context.Context, eventID string, params gDto.QueryParams) (dto.GetChecklistItemsResponse, error)
	Get(ctx context.Context, id string) (dto.ChecklistItemResponse, error)
	Update(ctx context.Context, req dto.UpdateChecklistItemRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Checklist
	eventSvc eventService.Event
	otel     otel.Otel
}

func New(repo repository.Checklist, eventSvc eventService.Event, otel otel.Otel) Checklist {
	return &serviceImpl{
		repo:     repo,
		eventSvc: eventSvc,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateChecklistItemRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checklist.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.eventSvc.Authorize(ctx, req.EventID); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create checklist item")

		return fmt.Errorf("failed to create checklist item: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, eventID string, params gDto.QueryParams) (res dto.GetChecklistItemsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checklist.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.eventSvc.Authorize(ctx, eventID); err != nil {
		return res, err
	}

	filter := shared.FilterByID(eventID, model.FieldEventID, model.TableName)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count checklist items")

		return res, fmt.Errorf("failed to count checklist items: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get checklist items")

		return res, fmt.Errorf("failed to get checklist items: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ChecklistItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checklist.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	item, err := s.getAuthorized(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(item)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateChecklistItemRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checklist.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateChecklistItemRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if _, err = s.getAuthorized(ctx, id); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update checklist item")

		return fmt.Errorf("failed to update checklist item: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checklist.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getAuthorized(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete checklist item")

		return fmt.Errorf("failed to delete checklist item: %w", err)
	}

	return nil
}

func (s *serviceImpl) getAuthorized(ctx context.Context, id string) (model.ChecklistItem, error) {
	item, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get checklist item")

		return item, fmt.Errorf("failed to get checklist item: %w", err)
	}

	if item.ID == constant.Empty {
		return item, failure.NotFound("checklist item not found") // nolint:wrapcheck
	}

	if err = s.eventSvc.Authorize(ctx, item.EventID); err != nil {
		return model.ChecklistItem{}, failure.NotFound("checklist item not found") // nolint:wrapcheck
	}

	return item, nil
}
