package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"aisle/infras/otel"
	eventService "aisle/internal/domains/event/service"
	"aisle/internal/domains/accommodation/model"
	"aisle/internal/domains/accommodation/model/dto"
	"aisle/internal/domains/accommodation/repository"
	"aisle/shared"
	"aisle/shared/constant"
	gDto "aisle/shared/dto"
	"aisle/shared/failure"

	"github.com/rs/zerolog/log"
)

type Accommodation interface {
	Create(ctx context.Context, req dto.CreateAccommodationRequest) error
	GetAll(ctx context.Context, eventID string, params gDto.QueryParams) (dto.GetAccommodationsResponse, error)
	Get(ctx context.Context, id string) (dto.AccommodationResponse, error)
	Update(ctx context.Context, req dto.UpdateAccommodationRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Accommodation
	eventSvc eventService.Event
	otel     otel.Otel
}

func New(repo repository.Accommodation, eventSvc eventService.Event, otel otel.Otel) Accommodation {
	return &serviceImpl{
		repo:     repo,
		eventSvc: eventSvc,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAccommodationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".accommodation.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.eventSvc.Authorize(ctx, req.EventID); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create accommodation")

		return fmt.Errorf("failed to create accommodation: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, eventID string, params gDto.QueryParams) (res dto.GetAccommodationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".accommodation.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.eventSvc.Authorize(ctx, eventID); err != nil {
		return res, err
	}

	filter := shared.FilterByID(eventID, model.FieldEventID, model.TableName)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count accommodations")

		return res, fmt.Errorf("failed to count accommodations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get accommodations")

		return res, fmt.Errorf("failed to get accommodations: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AccommodationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".accommodation.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	item, err := s.getAuthorized(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(item)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateAccommodationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".accommodation.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateAccommodationRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if _, err = s.getAuthorized(ctx, id); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update accommodation")

		return fmt.Errorf("failed to update accommodation: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".accommodation.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getAuthorized(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete accommodation")

		return fmt.Errorf("failed to delete accommodation: %w", err)
	}

	return nil
}

func (s *serviceImpl) getAuthorized(ctx context.Context, id string) (model.Accommodation, error) {
	item, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get accommodation")

		return item, fmt.Errorf("failed to get accommodation: %w", err)
	}

	if item.ID == constant.Empty {
		return item, failure.NotFound("accommodation not found") // nolint:wrapcheck
	}

	if err = s.eventSvc.Authorize(ctx, item.EventID); err != nil {
		return model.Accommodation{}, failure.NotFound("accommodation not found") // nolint:wrapcheck
	}

	return item, nil
}
