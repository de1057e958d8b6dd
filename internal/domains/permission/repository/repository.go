package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"aisle/infras/otel"
	"aisle/infras/postgres"
	"aisle/internal/domains/permission/model"
	gDto "aisle/shared/dto"
	gRepo "aisle/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Permission interface {
	Insert(ctx context.Context, model model.Permissions) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Permissions) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Permissions, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Permissions]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Permission {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Permissions](model.EntityName, model.TableName, model.FieldEventID, db, otel),
		db:         db,
		otel:       otel,
	}
}
