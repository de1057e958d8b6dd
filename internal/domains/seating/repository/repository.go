package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"aisle/infras/otel"
	"aisle/infras/postgres"
	"aisle/internal/domains/seating/model"
	"aisle/shared/constant"
	gDto "aisle/shared/dto"
	"aisle/shared/logger"
	gRepo "aisle/shared/repository"
	"aisle/shared/timezone"

	"github.com/jmoiron/sqlx"
)

type Seating interface {
	InsertFloorPlan(ctx context.Context, model model.FloorPlan) error
	GetFloorPlan(ctx context.Context, filter gDto.FilterGroup) (model.FloorPlan, error)
	GetAllFloorPlans(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.FloorPlan, error)
	CountFloorPlans(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateFloorPlan(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	DeleteFloorPlanCascade(ctx context.Context, floorPlanID string, user string) error

	InsertTable(ctx context.Context, model model.Table) error
	GetTable(ctx context.Context, filter gDto.FilterGroup) (model.Table, error)
	GetTableWithEvent(ctx context.Context, tableID string) (model.TableWithEvent, error)
	GetAllTables(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Table, error)
	CountTables(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateTable(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	DeleteTableCascade(ctx context.Context, tableID string, user string) error

	InsertSeat(ctx context.Context, model model.Seat) error
	InsertSeatBulk(ctx context.Context, models []model.Seat) error
	GetSeat(ctx context.Context, filter gDto.FilterGroup) (model.Seat, error)
	GetSeatWithEvent(ctx context.Context, seatID string) (model.SeatWithEvent, error)
	GetAllSeats(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Seat, error)
	CountSeats(ctx context.Context, filter gDto.FilterGroup) (int, error)
	DeleteSeat(ctx context.Context, filter gDto.FilterGroup) error

	AssignGuestToTable(ctx context.Context, guestID, tableID string, previousTableID *string, user string) (bool, error)
	AssignGuestToSeat(ctx context.Context, guestID, seatID string, user string) (bool, error)
	UnassignGuest(ctx context.Context, guestID string, previousTableID *string, user string) error
}

type repositoryImpl struct {
	floorPlans gRepo.Repository[model.FloorPlan]
	tables     gRepo.Repository[model.Table]
	seats      gRepo.Repository[model.Seat]
	db         *postgres.Connection
	otel       otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Seating {
	return &repositoryImpl{
		floorPlans: gRepo.NewRepository[model.FloorPlan](model.FloorPlanEntityName, model.FloorPlanTableName, model.FieldID, db, otel),
		tables:     gRepo.NewRepository[model.Table](model.TableEntityName, model.TableTableName, model.FieldID, db, otel),
		seats:      gRepo.NewRepository[model.Seat](model.SeatEntityName, model.SeatTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) InsertFloorPlan(ctx context.Context, mod model.FloorPlan) error {
	return repo.floorPlans.Insert(ctx, mod) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetFloorPlan(ctx context.Context, filter gDto.FilterGroup) (model.FloorPlan, error) {
	return repo.floorPlans.Get(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetAllFloorPlans(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.FloorPlan, error) {
	return repo.floorPlans.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) CountFloorPlans(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return repo.floorPlans.Count(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) UpdateFloorPlan(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error {
	return repo.floorPlans.Update(ctx, req, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) InsertTable(ctx context.Context, mod model.Table) error {
	return repo.tables.Insert(ctx, mod) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetTable(ctx context.Context, filter gDto.FilterGroup) (model.Table, error) {
	return repo.tables.Get(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetAllTables(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Table, error) {
	return repo.tables.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) CountTables(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return repo.tables.Count(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) UpdateTable(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error {
	return repo.tables.Update(ctx, req, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) InsertSeat(ctx context.Context, mod model.Seat) error {
	return repo.seats.Insert(ctx, mod) //nolint:wrapcheck
}

func (repo *repositoryImpl) InsertSeatBulk(ctx context.Context, models []model.Seat) error {
	return repo.seats.InsertBulk(ctx, models) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetSeat(ctx context.Context, filter gDto.FilterGroup) (model.Seat, error) {
	return repo.seats.Get(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetAllSeats(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Seat, error) {
	return repo.seats.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) CountSeats(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return repo.seats.Count(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) DeleteSeat(ctx context.Context, filter gDto.FilterGroup) error {
	return repo.seats.Delete(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetTableWithEvent(ctx context.Context, tableID string) (res model.TableWithEvent, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".seating.GetTableWithEvent")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT tables.*, floor_plans.event_id
		FROM tables
		JOIN floor_plans ON floor_plans.id = tables.floor_plan_id
		WHERE tables.id = $1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.GetContext(ctx, &res, query, tableID)
	if errors.Is(err, sql.ErrNoRows) {
		return res, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to get data (%s): %w", model.TableEntityName, err)
	}

	return res, nil
}

func (repo *repositoryImpl) GetSeatWithEvent(ctx context.Context, seatID string) (res model.SeatWithEvent, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".seating.GetSeatWithEvent")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT seats.*, floor_plans.event_id, floor_plans.mode
		FROM seats
		JOIN floor_plans ON floor_plans.id = seats.floor_plan_id
		WHERE seats.id = $1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.GetContext(ctx, &res, query, seatID)
	if errors.Is(err, sql.ErrNoRows) {
		return res, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to get data (%s): %w", model.SeatEntityName, err)
	}

	return res, nil
}

// AssignGuestToTable seats the guest in one conditional statement: the
// occupant count and the capacity check live in the same UPDATE, so two
// racing assignments to the last seat cannot both win. A guest already
// seated elsewhere is moved by the same statement; the vacated table is
// renumbered before commit.
func (repo *repositoryImpl) AssignGuestToTable(ctx context.Context, guestID, tableID string, previousTableID *string, user string) (assigned bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".seating.AssignGuestToTable")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to begin transaction (seating): %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query := `UPDATE guests
		SET table_id = $1,
			seat_number = occ.cnt + 1,
			modified_at = $3,
			modified_by = $4
		FROM (SELECT COUNT(*) AS cnt FROM guests WHERE table_id = $1 AND id <> $2) occ
		WHERE guests.id = $2
			AND occ.cnt < (SELECT seat_count FROM tables WHERE id = $1)`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := tx.ExecContext(ctx, query, tableID, guestID, timezone.Now(), user)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to assign guest to table: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to read rows affected (seating): %w", err)
	}

	if affected == 0 {
		_ = tx.Rollback()

		return false, nil
	}

	if previousTableID != nil && *previousTableID != tableID {
		if err = renumberTable(ctx, tx, *previousTableID); err != nil {
			return false, err
		}
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to commit transaction (seating): %w", err)
	}

	return true, nil
}

// AssignGuestToSeat releases whatever seat the guest currently holds,
// then claims the target only if it is still free. A lost race leaves
// nothing changed.
func (repo *repositoryImpl) AssignGuestToSeat(ctx context.Context, guestID, seatID string, user string) (assigned bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".seating.AssignGuestToSeat")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to begin transaction (seating): %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	release := `UPDATE seats SET guest_id = NULL, modified_at = $2, modified_by = $3 WHERE guest_id = $1`

	if _, err = tx.ExecContext(ctx, release, guestID, timezone.Now(), user); err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to release seat: %w", err)
	}

	claim := `UPDATE seats SET guest_id = $1, modified_at = $3, modified_by = $4
		WHERE id = $2 AND guest_id IS NULL`
	scope.SetAttribute(constant.OtelQueryAttributeKey, claim)

	result, err := tx.ExecContext(ctx, claim, guestID, seatID, timezone.Now(), user)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to claim seat: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to read rows affected (seating): %w", err)
	}

	if affected == 0 {
		_ = tx.Rollback()

		return false, nil
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to commit transaction (seating): %w", err)
	}

	return true, nil
}

func (repo *repositoryImpl) UnassignGuest(ctx context.Context, guestID string, previousTableID *string, user string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".seating.UnassignGuest")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (seating): %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	clearGuest := `UPDATE guests SET table_id = NULL, seat_number = NULL, modified_at = $2, modified_by = $3 WHERE id = $1`

	if _, err = tx.ExecContext(ctx, clearGuest, guestID, timezone.Now(), user); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to unassign guest: %w", err)
	}

	clearSeat := `UPDATE seats SET guest_id = NULL, modified_at = $2, modified_by = $3 WHERE guest_id = $1`

	if _, err = tx.ExecContext(ctx, clearSeat, guestID, timezone.Now(), user); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to release seat: %w", err)
	}

	if previousTableID != nil {
		if err = renumberTable(ctx, tx, *previousTableID); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (seating): %w", err)
	}

	return nil
}

// DeleteTableCascade unseats every guest at the table and removes the
// table in one transaction. This is the only place a table deletion may
// happen.
func (repo *repositoryImpl) DeleteTableCascade(ctx context.Context, tableID string, user string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".seating.DeleteTableCascade")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (seating): %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = unseatTableGuests(ctx, tx, tableID, user); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM tables WHERE id = $1`, tableID); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to delete table: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (seating): %w", err)
	}

	return nil
}

// DeleteFloorPlanCascade removes a floor plan with its tables and
// seats, unseating every affected guest, all in one transaction.
func (repo *repositoryImpl) DeleteFloorPlanCascade(ctx context.Context, floorPlanID string, user string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".seating.DeleteFloorPlanCascade")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (seating): %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	unseat := `UPDATE guests SET table_id = NULL, seat_number = NULL, modified_at = $2, modified_by = $3
		WHERE table_id IN (SELECT id FROM tables WHERE floor_plan_id = $1)`

	if _, err = tx.ExecContext(ctx, unseat, floorPlanID, timezone.Now(), user); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to unseat guests: %w", err)
	}

	for _, query := range []string{
		`DELETE FROM seats WHERE floor_plan_id = $1`,
		`DELETE FROM tables WHERE floor_plan_id = $1`,
		`DELETE FROM floor_plans WHERE id = $1`,
	} {
		if _, err = tx.ExecContext(ctx, query, floorPlanID); err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to delete floor plan: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (seating): %w", err)
	}

	return nil
}

func unseatTableGuests(ctx context.Context, tx *sqlx.Tx, tableID, user string) error {
	query := `UPDATE guests SET table_id = NULL, seat_number = NULL, modified_at = $2, modified_by = $3 WHERE table_id = $1`

	if _, err := tx.ExecContext(ctx, query, tableID, timezone.Now(), user); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to unseat guests: %w", err)
	}

	return nil
}

// renumberTable keeps seat numbers dense and deterministic after a
// removal: remaining occupants are renumbered 1..n ascending.
func renumberTable(ctx context.Context, tx *sqlx.Tx, tableID string) error {
	query := `UPDATE guests SET seat_number = ranked.rn
		FROM (
			SELECT id, ROW_NUMBER() OVER (ORDER BY seat_number ASC, id ASC) AS rn
			FROM guests WHERE table_id = $1
		) ranked
		WHERE guests.id = ranked.id`

	if _, err := tx.ExecContext(ctx, query, tableID); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to renumber table seats: %w", err)
	}

	return nil
}
