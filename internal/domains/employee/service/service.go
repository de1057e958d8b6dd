package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"aisle/infras/otel"
	"aisle/internal/domains/employee/model"
	"aisle/internal/domains/employee/model/dto"
	"aisle/internal/domains/employee/repository"
	"aisle/shared"
	"aisle/shared/constant"
	gDto "aisle/shared/dto"
	"aisle/shared/failure"
	"aisle/shared/password"

	"github.com/rs/zerolog/log"
)

type Employee interface {
	Create(ctx context.Context, req dto.CreateEmployeeRequest) error
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetEmployeesResponse, error)
	Get(ctx context.Context, id string) (dto.EmployeeResponse, error)
	Update(ctx context.Context, req dto.UpdateEmployeeRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Employee
	otel otel.Otel
}

func New(repo repository.Employee, otel otel.Otel) Employee {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateEmployeeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".employee.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	emailTaken, err := s.repo.Exist(ctx, shared.FilterByID(req.Email, model.FieldEmail, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check employee email")

		return fmt.Errorf("failed to check employee email: %w", err)
	}

	if emailTaken {
		return failure.BadRequestFromString("email already in use") // nolint:wrapcheck
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	tenantID, _ := ctx.Value(constant.ContextKeyTenantID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(tenantID, user, hashed)); err != nil {
		log.Error().Err(err).Msg("failed to create employee")

		return fmt.Errorf("failed to create employee: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetEmployeesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".employee.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	tenantID, _ := ctx.Value(constant.ContextKeyTenantID).(string)
	filter := shared.FilterByID(tenantID, model.FieldTenantID, model.TableName)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count employees")

		return res, fmt.Errorf("failed to count employees: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get employees")

		return res, fmt.Errorf("failed to get employees: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".employee.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	employee, err := s.getAuthorized(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(employee)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateEmployeeRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".employee.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateEmployeeRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if _, err = s.getAuthorized(ctx, id); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update employee")

		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".employee.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == id {
		return failure.BadRequestFromString("cannot delete own account") // nolint:wrapcheck
	}

	if _, err = s.getAuthorized(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete employee")

		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}

func (s *serviceImpl) getAuthorized(ctx context.Context, id string) (model.Employee, error) {
	employee, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get employee")

		return employee, fmt.Errorf("failed to get employee: %w", err)
	}

	tenantID, _ := ctx.Value(constant.ContextKeyTenantID).(string)

	if employee.ID == constant.Empty || employee.TenantID != tenantID {
		return model.Employee{}, failure.NotFound("employee not found") // nolint:wrapcheck
	}

	return employee, nil
}
