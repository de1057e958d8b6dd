package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"aisle/infras/jwt"
	jwtMocks "aisle/infras/jwt/mocks"
	"aisle/infras/otel/mocks"
	"aisle/internal/domains/auth/model/dto"
	"aisle/internal/domains/auth/service"
	employeeMocks "aisle/internal/domains/employee/mocks"
	employeeModel "aisle/internal/domains/employee/model"
	eventMocks "aisle/internal/domains/event/mocks"
	eventModel "aisle/internal/domains/event/model"
	"aisle/shared/constant"
	"aisle/shared/failure"
	gModel "aisle/shared/model"
	"aisle/shared/timezone"
)

// bcrypt of "password"
const passwordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

func validEmployee() employeeModel.Employee {
	return employeeModel.Employee{
		ID:           "employee-id",
		TenantID:     "tenant-id",
		Email:        "planner@example.com",
		PasswordHash: passwordHash,
		Name:         "Planner",
		Role:         "admin",
		Active:       true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}
}

func validEvent() eventModel.Event {
	return eventModel.Event{
		ID:                 "event-id",
		TenantID:           "tenant-id",
		Title:              "A & B Wedding",
		CoupleUsername:     "a-and-b",
		CouplePasswordHash: passwordHash,
	}
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEmployeeRepo := employeeMocks.NewMockEmployee(ctrl)
	mockEventRepo := eventMocks.NewMockEvent(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	svc := service.New(mockEmployeeRepo, mockEventRepo, mocks.NewOtel(), mockJWT)

	tests := []struct {
		name      string
		req       dto.RegisterRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful registration",
			req: dto.RegisterRequest{
				Email:    "new@example.com",
				Password: "password123",
				Name:     "New Planner",
			},
			setupMock: func() {
				mockEmployeeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockEmployeeRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "email already registered",
			req: dto.RegisterRequest{
				Email:    "taken@example.com",
				Password: "password123",
				Name:     "New Planner",
			},
			setupMock: func() {
				mockEmployeeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "exist check error",
			req: dto.RegisterRequest{
				Email:    "new@example.com",
				Password: "password123",
				Name:     "New Planner",
			},
			setupMock: func() {
				mockEmployeeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Register(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEmployeeRepo := employeeMocks.NewMockEmployee(ctrl)
	mockEventRepo := eventMocks.NewMockEvent(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	svc := service.New(mockEmployeeRepo, mockEventRepo, mocks.NewOtel(), mockJWT)

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful login",
			req: dto.LoginRequest{
				Email:    "planner@example.com",
				Password: "password",
			},
			setupMock: func() {
				mockEmployeeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validEmployee(), nil)

				mockJWT.EXPECT().
					GenerateTokenPair(jwt.Identity{
						UserID:   "employee-id",
						Email:    "planner@example.com",
						Role:     constant.RoleEmployee,
						TenantID: "tenant-id",
					}).
					Return(&jwt.TokenPair{
						AccessToken:  "access-token",
						RefreshToken: "refresh-token",
					}, nil)
			},
			wantErr: false,
		},
		{
			name: "unknown email",
			req: dto.LoginRequest{
				Email:    "nobody@example.com",
				Password: "password",
			},
			setupMock: func() {
				mockEmployeeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(employeeModel.Employee{}, nil)
			},
			wantErr: true,
		},
		{
			name: "wrong password",
			req: dto.LoginRequest{
				Email:    "planner@example.com",
				Password: "not-the-password",
			},
			setupMock: func() {
				mockEmployeeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validEmployee(), nil)
			},
			wantErr: true,
		},
		{
			name: "deactivated account",
			req: dto.LoginRequest{
				Email:    "planner@example.com",
				Password: "password",
			},
			setupMock: func() {
				employee := validEmployee()
				employee.Active = false

				mockEmployeeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(employee, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "access-token", res.AccessToken)
			}
		})
	}
}

func TestAuthService_CoupleLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEmployeeRepo := employeeMocks.NewMockEmployee(ctrl)
	mockEventRepo := eventMocks.NewMockEvent(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	svc := service.New(mockEmployeeRepo, mockEventRepo, mocks.NewOtel(), mockJWT)

	t.Run("token is bound to the event", func(t *testing.T) {
		mockEventRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validEvent(), nil)

		mockJWT.EXPECT().
			GenerateTokenPair(jwt.Identity{
				UserID:   "event-id",
				Email:    "a-and-b",
				Role:     constant.RoleCouple,
				TenantID: "tenant-id",
				EventID:  "event-id",
			}).
			Return(&jwt.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}, nil)

		res, err := svc.CoupleLogin(context.Background(), dto.CoupleLoginRequest{
			Username: "a-and-b",
			Password: "password",
		})
		assert.NoError(t, err)
		assert.Equal(t, "access-token", res.AccessToken)
	})

	t.Run("unknown username", func(t *testing.T) {
		mockEventRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(eventModel.Event{}, nil)

		_, err := svc.CoupleLogin(context.Background(), dto.CoupleLoginRequest{
			Username: "unknown",
			Password: "password",
		})
		assert.Error(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockEventRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validEvent(), nil)

		_, err := svc.CoupleLogin(context.Background(), dto.CoupleLoginRequest{
			Username: "a-and-b",
			Password: "not-the-password",
		})
		assert.Error(t, err)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEmployeeRepo := employeeMocks.NewMockEmployee(ctrl)
	mockEventRepo := eventMocks.NewMockEvent(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	svc := service.New(mockEmployeeRepo, mockEventRepo, mocks.NewOtel(), mockJWT)

	t.Run("successful refresh", func(t *testing.T) {
		mockJWT.EXPECT().
			RefreshTokens("refresh-token").
			Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh-token"})
		assert.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		mockJWT.EXPECT().
			RefreshTokens("bad-token").
			Return(nil, jwt.ErrInvalidToken)

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad-token"})
		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEmployeeRepo := employeeMocks.NewMockEmployee(ctrl)
	mockEventRepo := eventMocks.NewMockEvent(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	svc := service.New(mockEmployeeRepo, mockEventRepo, mocks.NewOtel(), mockJWT)

	t.Run("successful change", func(t *testing.T) {
		mockEmployeeRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validEmployee(), nil)

		mockEmployeeRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "password",
			NewPassword:     "new-password-123",
		}, "employee-id")
		assert.NoError(t, err)
	})

	t.Run("wrong current password", func(t *testing.T) {
		mockEmployeeRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validEmployee(), nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "not-the-password",
			NewPassword:     "new-password-123",
		}, "employee-id")
		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("employee not found", func(t *testing.T) {
		mockEmployeeRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(employeeModel.Employee{}, nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "password",
			NewPassword:     "new-password-123",
		}, "missing-id")
		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
