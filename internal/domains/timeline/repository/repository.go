package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"aisle/infras/otel"
	"aisle/infras/postgres"
	"aisle/internal/domains/timeline/model"
	gDto "aisle/shared/dto"
	gRepo "aisle/shared/repository"
)

type Timeline interface {
	Insert(ctx context.Context, model model.TimelineItem) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.TimelineItem, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.TimelineItem, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.TimelineItem]
}

func New(db *postgres.Connection, otel otel.Otel) Timeline {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.TimelineItem](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
