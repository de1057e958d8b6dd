package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"maps"
	"strings"

	"aisle/infras/otel"
	"aisle/infras/postgres"
	"aisle/internal/domains/guest/model"
	"aisle/shared/constant"
	gDto "aisle/shared/dto"
	"aisle/shared/logger"
	gRepo "aisle/shared/repository"
)

type Guest interface {
	Insert(ctx context.Context, model model.Guest) error
	InsertBulk(ctx context.Context, models []model.Guest) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Guest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Guest, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateGuarded(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetStats(ctx context.Context, eventID string) (model.Stats, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Guest]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Guest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Guest](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// UpdateGuarded applies the update only to rows still matching the
// filter and reports whether any row changed. Lifecycle transitions use
// the current stage as part of the filter, so a concurrent transition
// loses by seeing zero rows affected instead of overwriting.
func (repo *repositoryImpl) UpdateGuarded(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (updated bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.UpdateGuarded")
	defer scope.End()
	defer scope.TraceIfError(err)

	updateField := []string{}
	for col := range maps.Keys(req) {
		updateField = append(updateField, fmt.Sprintf("%s = :%s", col, col))
	}

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return false, fmt.Errorf("failed to update data (%s): required filter", model.EntityName)
	}

	query := fmt.Sprintf("UPDATE %s SET %s %s", model.TableName, strings.Join(updateField, ", "), where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	maps.Copy(args, req)

	result, err := repo.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to update data (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to read rows affected (%s): %w", model.EntityName, err)
	}

	return affected > 0, nil
}

func (repo *repositoryImpl) GetStats(ctx context.Context, eventID string) (stats model.Stats, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.GetStats")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`SELECT
		COUNT(*) AS total,
		COUNT(*) FILTER (WHERE rsvp_status = '%s') AS confirmed,
		COUNT(*) FILTER (WHERE rsvp_status NOT IN ('%s', '%s')) AS pending,
		COUNT(*) FILTER (WHERE rsvp_status = '%s') AS declined
	FROM %s WHERE event_id = $1`,
		constant.RSVPStatusConfirmed,
		constant.RSVPStatusConfirmed, constant.RSVPStatusDeclined,
		constant.RSVPStatusDeclined,
		model.TableName)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.GetContext(ctx, &stats, query, eventID)
	if err != nil {
		logger.ErrorWithStack(err)

		return stats, fmt.Errorf("failed to get stats (%s): %w", model.EntityName, err)
	}

	return stats, nil
}
