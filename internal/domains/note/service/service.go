package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"aisle/infras/otel"
	eventService "aisle/internal/domains/event/service"
	"aisle/internal/domains/note/model"
	"aisle/internal/domains/note/model/dto"
	"aisle/internal/domains/note/repository"
	"aisle/shared"
	"aisle/shared/constant"
	gDto "aisle/shared/dto"
	"aisle/shared/failure"

	"github.com/rs/zerolog/log"
)

type Note interface {
	Create(ctx context.Context, req dto.CreateNoteRequest) error
	GetAll(ctx context.Context, eventID string, params gDto.QueryParams) (dto.GetNotesResponse, error)
	Get(ctx context.Context, id string) (dto.NoteResponse, error)
	Update(ctx context.Context, req dto.UpdateNoteRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Note
	eventSvc eventService.Event
	otel     otel.Otel
}

func New(repo repository.Note, eventSvc eventService.Event, otel otel.Otel) Note {
	return &serviceImpl{
		repo:     repo,
		eventSvc: eventSvc,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateNoteRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".note.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.eventSvc.Authorize(ctx, req.EventID); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create note")

		return fmt.Errorf("failed to create note: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, eventID string, params gDto.QueryParams) (res dto.GetNotesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".note.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.eventSvc.Authorize(ctx, eventID); err != nil {
		return res, err
	}

	filter := shared.FilterByID(eventID, model.FieldEventID, model.TableName)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count notes")

		return res, fmt.Errorf("failed to count notes: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get notes")

		return res, fmt.Errorf("failed to get notes: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.NoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".note.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	item, err := s.getAuthorized(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(item)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateNoteRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".note.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateNoteRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if _, err = s.getAuthorized(ctx, id); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update note")

		return fmt.Errorf("failed to update note: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".note.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getAuthorized(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete note")

		return fmt.Errorf("failed to delete note: %w", err)
	}

	return nil
}

func (s *serviceImpl) getAuthorized(ctx context.Context, id string) (model.Note, error) {
	item, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get note")

		return item, fmt.Errorf("failed to get note: %w", err)
	}

	if item.ID == constant.Empty {
		return item, failure.NotFound("note not found") // nolint:wrapcheck
	}

	if err = s.eventSvc.Authorize(ctx, item.EventID); err != nil {
		return model.Note{}, failure.NotFound("note not found") // nolint:wrapcheck
	}

	return item, nil
}
