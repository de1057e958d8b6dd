package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"aisle/infras/otel"
	"aisle/infras/postgres"
	"aisle/internal/domains/note/model"
	gDto "aisle/shared/dto"
	gRepo "aisle/shared/repository"
)

type Note interface {
	Insert(ctx context.Context, model model.Note) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Note, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Note, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Note]
}

func New(db *postgres.Connection, otel otel.Otel) Note {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Note](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
