package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"aisle/infras/jwt"
	"aisle/infras/otel"
	"aisle/internal/domains/auth/model/dto"
	employeeModel "aisle/internal/domains/employee/model"
	employeeRepo "aisle/internal/domains/employee/repository"
	eventModel "aisle/internal/domains/event/model"
	eventRepo "aisle/internal/domains/event/repository"
	"aisle/shared"
	"aisle/shared/constant"
	"aisle/shared/failure"
	"aisle/shared/password"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	CoupleLogin(ctx context.Context, req dto.CoupleLoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) error
}

type serviceImpl struct {
	employeeRepo employeeRepo.Employee
	eventRepo    eventRepo.Event
	otel         otel.Otel
	jwtService   jwt.JWT
}

func New(employeeRepo employeeRepo.Employee, eventRepo eventRepo.Event, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		employeeRepo: employeeRepo,
		eventRepo:    eventRepo,
		otel:         otel,
		jwtService:   jwt,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.employeeRepo.Exist(ctx, shared.FilterByID(req.Email, employeeModel.FieldEmail, employeeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if employee exists")

		return fmt.Errorf("failed to check if employee exists: %w", err)
	}

	if exists {
		return failure.BadRequestFromString("email already registered") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.employeeRepo.Insert(ctx, req.ToEmployeeModel(hashedPassword)); err != nil {
		log.Error().Err(err).Msg("failed to create employee")

		return fmt.Errorf("failed to create employee: %w", err)
	}

	return nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	employee, err := s.employeeRepo.Get(ctx, shared.FilterByID(req.Email, employeeModel.FieldEmail, employeeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get employee")

		return res, fmt.Errorf("failed to get employee: %w", err)
	}

	if employee.ID == constant.Empty {
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, failure.BadRequestFromString("invalid email or password") // nolint:wrapcheck
	}

	if err := password.Verify(req.Password, employee.PasswordHash); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.BadRequestFromString("invalid email or password") // nolint:wrapcheck
	}

	if !employee.Active {
		return res, failure.BadRequestFromString("account is deactivated") // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(jwt.Identity{
		UserID:   employee.ID,
		Email:    employee.Email,
		Role:     constant.RoleEmployee,
		TenantID: employee.TenantID,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

// CoupleLogin authenticates against the credentials stored on the event
// itself. The resulting token carries the event id, so every later
// request from the couple is bound to that one wedding.
func (s *serviceImpl) CoupleLogin(ctx context.Context, req dto.CoupleLoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.CoupleLogin")
	defer scope.End()
	defer scope.TraceIfError(err)

	event, err := s.eventRepo.Get(ctx, shared.FilterByID(req.Username, eventModel.FieldCoupleUsername, eventModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get event")

		return res, fmt.Errorf("failed to get event: %w", err)
	}

	if event.ID == constant.Empty {
		log.Warn().Str("username", req.Username).Msg("couple login attempt with unknown username")

		return res, failure.BadRequestFromString("invalid username or password") // nolint:wrapcheck
	}

	if err := password.Verify(req.Password, event.CouplePasswordHash); err != nil {
		log.Warn().Str("username", req.Username).Msg("couple login attempt with wrong password")

		return res, failure.BadRequestFromString("invalid username or password") // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(jwt.Identity{
		UserID:   event.ID,
		Email:    event.CoupleUsername,
		Role:     constant.RoleCouple,
		TenantID: event.TenantID,
		EventID:  event.ID,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(userID, employeeModel.FieldID, employeeModel.TableName)

	employee, err := s.employeeRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get employee")

		return fmt.Errorf("failed to get employee: %w", err)
	}

	if employee.ID == constant.Empty {
		return failure.NotFound("employee not found") // nolint:wrapcheck
	}

	if err := password.Verify(req.CurrentPassword, employee.PasswordHash); err != nil {
		return failure.BadRequestFromString("current password is incorrect") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatePassword := dto.UpdatePasswordRequest{PasswordHash: hashedPassword}

	if err = s.employeeRepo.Update(ctx, shared.TransformFields(updatePassword, userID), filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
