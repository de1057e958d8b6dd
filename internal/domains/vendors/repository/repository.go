package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"aisle/infras/otel"
	"aisle/infras/postgres"
	"aisle/internal/domains/vendors/model"
	gDto "aisle/shared/dto"
	gRepo "aisle/shared/repository"
)

type Vendor interface {
	Insert(ctx context.Context, model model.Vendor) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Vendor, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Vendor, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Vendor]
}

func New(db *postgres.Connection, otel otel.Otel) Vendor {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Vendor](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
