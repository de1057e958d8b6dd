package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"aisle/infras/otel"
	"aisle/infras/postgres"
	"aisle/internal/domains/event/model"
	permModel "aisle/internal/domains/permission/model"
	"aisle/shared/constant"
	gDto "aisle/shared/dto"
	"aisle/shared/logger"
	gRepo "aisle/shared/repository"
)

type Event interface {
	InsertWithPermissions(ctx context.Context, model model.Event, perms permModel.Permissions) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Event, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Event, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Event]
	permRepo gRepo.Repository[permModel.Permissions]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Event {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Event](model.EntityName, model.TableName, model.FieldID, db, otel),
		permRepo:   gRepo.NewRepository[permModel.Permissions](permModel.EntityName, permModel.TableName, permModel.FieldEventID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// InsertWithPermissions writes the event and its default section
// permission row in one transaction, so no event ever exists without a
// permission record.
func (repo *repositoryImpl) InsertWithPermissions(ctx context.Context, event model.Event, perms permModel.Permissions) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".event.InsertWithPermissions")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (event): %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = repo.Repository.InsertTx(ctx, tx, event); err != nil {
		return err //nolint:wrapcheck
	}

	if err = repo.permRepo.InsertTx(ctx, tx, perms); err != nil {
		return err //nolint:wrapcheck
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (event): %w", err)
	}

	return nil
}
