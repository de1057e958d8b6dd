package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"aisle/infras/otel"
	eventService "aisle/internal/domains/event/service"
	"aisle/internal/domains/message/model"
	"aisle/internal/domains/message/model/dto"
	"aisle/internal/domains/message/repository"
	"aisle/shared"
	"aisle/shared/constant"
	gDto "aisle/shared/dto"
	"aisle/shared/failure"
	"aisle/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Message interface {
	Create(ctx context.Context, req dto.CreateMessageRequest) error
	GetAll(ctx context.Context, eventID string, params gDto.QueryParams) (dto.GetMessagesResponse, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Message
	eventSvc eventService.Event
	otel     otel.Otel
}

func New(repo repository.Message, eventSvc eventService.Event, otel otel.Otel) Message {
	return &serviceImpl{
		repo:     repo,
		eventSvc: eventSvc,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateMessageRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".message.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.eventSvc.Authorize(ctx, req.EventID); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user, role)); err != nil {
		log.Error().Err(err).Msg("failed to create message")

		return fmt.Errorf("failed to create message: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, eventID string, params gDto.QueryParams) (res dto.GetMessagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".message.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.eventSvc.Authorize(ctx, eventID); err != nil {
		return res, err
	}

	filter := shared.FilterByID(eventID, model.FieldEventID, model.TableName)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count messages")

		return res, fmt.Errorf("failed to count messages: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get messages")

		return res, fmt.Errorf("failed to get messages: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

// MarkRead flags a message as seen by the other side of the thread.
// Authors cannot mark their own messages.
func (s *serviceImpl) MarkRead(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".message.MarkRead")
	defer scope.End()
	defer scope.TraceIfError(err)

	message, err := s.getAuthorized(ctx, id)
	if err != nil {
		return err
	}

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if message.AuthorRole == role {
		return failure.BadRequestFromString("cannot mark own message as read") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields := map[string]any{
		model.FieldIsRead:        true,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to mark message as read")

		return fmt.Errorf("failed to mark message as read: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".message.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	message, err := s.getAuthorized(ctx, id)
	if err != nil {
		return err
	}

	// Only the author may delete a message.
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if message.AuthorID != user {
		return failure.ForbiddenError // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete message")

		return fmt.Errorf("failed to delete message: %w", err)
	}

	return nil
}

func (s *serviceImpl) getAuthorized(ctx context.Context, id string) (model.Message, error) {
	message, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get message")

		return message, fmt.Errorf("failed to get message: %w", err)
	}

	if message.ID == constant.Empty {
		return message, failure.NotFound("message not found") // nolint:wrapcheck
	}

	if err = s.eventSvc.Authorize(ctx, message.EventID); err != nil {
		return model.Message{}, failure.NotFound("message not found") // nolint:wrapcheck
	}

	return message, nil
}
