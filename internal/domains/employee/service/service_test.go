package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"aisle/infras/otel/mocks"
	employeeMocks "aisle/internal/domains/employee/mocks"
	"aisle/internal/domains/employee/model"
	"aisle/internal/domains/employee/model/dto"
	"aisle/internal/domains/employee/service"
	"aisle/shared/constant"
	gDto "aisle/shared/dto"
	"aisle/shared/failure"
)

func tenantContext() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	return context.WithValue(ctx, constant.ContextKeyTenantID, "tenant-id")
}

func tenantEmployee() model.Employee {
	return model.Employee{
		ID:       "employee-id",
		TenantID: "tenant-id",
		Email:    "planner@example.com",
		Name:     "Planner",
		Role:     "planner",
		Active:   true,
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := employeeMocks.NewMockEmployee(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	tests := []struct {
		name      string
		req       dto.CreateEmployeeRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful create",
			req: dto.CreateEmployeeRequest{
				Email:    "new@example.com",
				Password: "password123",
				Name:     "New Planner",
				Role:     "planner",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, employee model.Employee) error {
						assert.Equal(t, "tenant-id", employee.TenantID)
						assert.True(t, employee.Active)
						assert.NotEqual(t, "password123", employee.PasswordHash)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "email already in use",
			req: dto.CreateEmployeeRequest{
				Email:    "taken@example.com",
				Password: "password123",
				Name:     "New Planner",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "exist check error",
			req: dto.CreateEmployeeRequest{
				Email:    "new@example.com",
				Password: "password123",
				Name:     "New Planner",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Create(tenantContext(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEmployeeService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := employeeMocks.NewMockEmployee(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	t.Run("lists employees of the caller's tenant", func(t *testing.T) {
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Employee{tenantEmployee()}, nil)

		res, err := svc.GetAll(tenantContext(), gDto.QueryParams{Limit: 10, Page: 1})
		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Len(t, res.Employees, 1)
		assert.Equal(t, "planner@example.com", res.Employees[0].Email)
	})

	t.Run("count error", func(t *testing.T) {
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("database error"))

		_, err := svc.GetAll(tenantContext(), gDto.QueryParams{Limit: 10, Page: 1})
		assert.Error(t, err)
	})
}

func TestEmployeeService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := employeeMocks.NewMockEmployee(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	t.Run("successful get", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(tenantEmployee(), nil)

		res, err := svc.Get(tenantContext(), "employee-id")
		assert.NoError(t, err)
		assert.Equal(t, "employee-id", res.ID)
	})

	t.Run("employee not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Employee{}, nil)

		_, err := svc.Get(tenantContext(), "missing-id")
		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("employee of another tenant is not found", func(t *testing.T) {
		employee := tenantEmployee()
		employee.TenantID = "other-tenant"

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(employee, nil)

		_, err := svc.Get(tenantContext(), "employee-id")
		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := employeeMocks.NewMockEmployee(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	t.Run("successful update", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(tenantEmployee(), nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Update(tenantContext(), dto.UpdateEmployeeRequest{Name: "Renamed"}, "employee-id")
		assert.NoError(t, err)
	})

	t.Run("empty update request", func(t *testing.T) {
		err := svc.Update(tenantContext(), dto.UpdateEmployeeRequest{}, "employee-id")
		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("employee not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Employee{}, nil)

		err := svc.Update(tenantContext(), dto.UpdateEmployeeRequest{Name: "Renamed"}, "missing-id")
		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := employeeMocks.NewMockEmployee(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	t.Run("successful delete", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(tenantEmployee(), nil)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Delete(tenantContext(), "employee-id")
		assert.NoError(t, err)
	})

	t.Run("cannot delete own account", func(t *testing.T) {
		err := svc.Delete(tenantContext(), "test-user-id")
		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("employee not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Employee{}, nil)

		err := svc.Delete(tenantContext(), "missing-id")
		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
