package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"aisle/config"
	"aisle/infras/otel/mocks"
	permissionMocks "aisle/internal/domains/permission/mocks"
	"aisle/internal/domains/permission/model"
	"aisle/internal/domains/permission/model/dto"
	"aisle/internal/domains/permission/service"
	cacheMocks "aisle/shared/cache/mocks"
	"aisle/shared/constant"
	gDto "aisle/shared/dto"
	"aisle/shared/failure"
	gModel "aisle/shared/model"
)

func newPermissionService(ctrl *gomock.Controller) (service.Permission, *permissionMocks.MockPermission, *cacheMocks.MockRedisCache) {
	mockRepo := permissionMocks.NewMockPermission(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return svc, mockRepo, mockCache
}

func eventPermissions() model.Permissions {
	perms := model.Defaults("event-id", gModel.Metadata{})
	perms.SeatingEnabled = false

	return perms
}

func TestPermissionService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newPermissionService(ctrl)

	t.Run("cache miss falls back to the repository", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(eventPermissions(), nil)

		res, err := svc.Get(context.Background(), "event-id")
		assert.NoError(t, err)
		assert.True(t, res.GuestListEnabled)
		assert.False(t, res.SeatingEnabled)
	})

	t.Run("permissions not found", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Permissions{}, nil)

		_, err := svc.Get(context.Background(), "missing-event")
		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestPermissionService_Set(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newPermissionService(ctrl)

	req := dto.SetPermissionsRequest{
		GuestListEnabled: true,
		SeatingEnabled:   false,
		TimelineEnabled:  true,
		MenuEnabled:      true,
		NotesEnabled:     true,
		HotelEnabled:     true,
		WebsiteEnabled:   true,
	}

	t.Run("disabled sections are written explicitly", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, false, fields[model.FieldSeatingEnabled])
				assert.Equal(t, true, fields[model.FieldGuestListEnabled])

				return nil
			})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := svc.Set(ctx, req, "event-id")
		assert.NoError(t, err)
	})

	t.Run("permissions not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Set(context.Background(), req, "missing-event")
		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestPermissionService_SectionEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newPermissionService(ctrl)

	tests := []struct {
		name    string
		section string
		want    bool
	}{
		{name: "enabled section", section: constant.SectionGuestList, want: true},
		{name: "disabled section", section: constant.SectionSeating, want: false},
		{name: "unknown section defaults to enabled", section: "registry", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCache.EXPECT().
				Get(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(errors.New("cache miss"))

			mockRepo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(eventPermissions(), nil)

			enabled, err := svc.SectionEnabled(context.Background(), "event-id", tt.section)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, enabled)
		})
	}
}
