package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"aisle/config"
	"aisle/infras/otel/mocks"
	eventMocks "aisle/internal/domains/event/mocks"
	"aisle/internal/domains/event/model"
	"aisle/internal/domains/event/model/dto"
	"aisle/internal/domains/event/service"
	permModel "aisle/internal/domains/permission/model"
	cacheMocks "aisle/shared/cache/mocks"
	"aisle/shared/constant"
	gDto "aisle/shared/dto"
	"aisle/shared/failure"
	"aisle/shared/timezone"
)

func newEventService(ctrl *gomock.Controller) (service.Event, *eventMocks.MockEvent, *cacheMocks.MockRedisCache) {
	mockRepo := eventMocks.NewMockEvent(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return svc, mockRepo, mockCache
}

func employeeContext() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
	ctx = context.WithValue(ctx, constant.ContextKeyTenantID, "tenant-id")

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleEmployee)
}

func coupleContext(eventID string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, eventID)
	ctx = context.WithValue(ctx, constant.ContextKeyTenantID, "tenant-id")
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleCouple)

	return context.WithValue(ctx, constant.ContextKeyEventID, eventID)
}

func tenantEvent() model.Event {
	return model.Event{
		ID:         "event-id",
		TenantID:   "tenant-id",
		Title:      "A & B Wedding",
		EventDate:  timezone.Now(),
		PartnerOne: "A",
		PartnerTwo: "B",
		Status:     "planning",
	}
}

func TestEventService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newEventService(ctrl)

	req := dto.CreateEventRequest{
		Title:          "A & B Wedding",
		EventDate:      "2026-09-12",
		PartnerOne:     "A",
		PartnerTwo:     "B",
		CoupleUsername: "a-and-b",
		CouplePassword: "password123",
	}

	t.Run("event starts with default permissions", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		mockRepo.EXPECT().
			InsertWithPermissions(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event model.Event, perms permModel.Permissions) error {
				assert.Equal(t, "tenant-id", event.TenantID)
				assert.Equal(t, "planning", event.Status)
				assert.NotEqual(t, "password123", event.CouplePasswordHash)
				assert.Equal(t, event.ID, perms.EventID)
				assert.True(t, perms.GuestListEnabled)
				assert.True(t, perms.WebsiteEnabled)

				return nil
			})

		err := svc.Create(employeeContext(), req)
		assert.NoError(t, err)
	})

	t.Run("couple username already in use", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := svc.Create(employeeContext(), req)
		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("invalid event date", func(t *testing.T) {
		badReq := req
		badReq.EventDate = "12/09/2026"

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Create(employeeContext(), badReq)
		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestEventService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newEventService(ctrl)

	t.Run("cache miss scopes the query to the tenant", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
				tenantFilter, ok := filter.Filters[len(filter.Filters)-1].(gDto.Filter)
				assert.True(t, ok)
				assert.Equal(t, "tenant-id", tenantFilter.Value)

				return 1, nil
			})

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Event{tenantEvent()}, nil)

		res, err := svc.GetAll(employeeContext(), gDto.QueryParams{Limit: 10, Page: 1}, gDto.FilterGroup{})
		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Len(t, res.Events, 1)
	})

	t.Run("count error", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("database error"))

		_, err := svc.GetAll(employeeContext(), gDto.QueryParams{Limit: 10, Page: 1}, gDto.FilterGroup{})
		assert.Error(t, err)
	})
}

func TestEventService_Authorize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newEventService(ctrl)

	cacheMiss := func() {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
	}

	t.Run("employee of the owning tenant", func(t *testing.T) {
		cacheMiss()
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(tenantEvent(), nil)

		err := svc.Authorize(employeeContext(), "event-id")
		assert.NoError(t, err)
	})

	t.Run("employee of another tenant sees not found", func(t *testing.T) {
		event := tenantEvent()
		event.TenantID = "other-tenant"

		cacheMiss()
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(event, nil)

		err := svc.Authorize(employeeContext(), "event-id")
		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("couple bound to the event", func(t *testing.T) {
		cacheMiss()
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(tenantEvent(), nil)

		err := svc.Authorize(coupleContext("event-id"), "event-id")
		assert.NoError(t, err)
	})

	t.Run("couple of another event sees not found", func(t *testing.T) {
		cacheMiss()
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(tenantEvent(), nil)

		err := svc.Authorize(coupleContext("other-event"), "event-id")
		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("missing role is forbidden", func(t *testing.T) {
		cacheMiss()
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(tenantEvent(), nil)

		err := svc.Authorize(context.Background(), "event-id")
		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})

	t.Run("event not found", func(t *testing.T) {
		cacheMiss()
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Event{}, nil)

		err := svc.Authorize(employeeContext(), "missing-event")
		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestEventService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newEventService(ctrl)

	t.Run("successful update", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(tenantEvent(), nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "confirmed", fields[model.FieldStatus])

				return nil
			})

		err := svc.Update(employeeContext(), dto.UpdateEventRequest{Status: "confirmed"}, "event-id")
		assert.NoError(t, err)
	})

	t.Run("empty update request", func(t *testing.T) {
		err := svc.Update(employeeContext(), dto.UpdateEventRequest{}, "event-id")
		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("invalid event date", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(tenantEvent(), nil)

		err := svc.Update(employeeContext(), dto.UpdateEventRequest{EventDate: "12/09/2026"}, "event-id")
		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestEventService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newEventService(ctrl)

	t.Run("successful delete", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(tenantEvent(), nil)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Delete(employeeContext(), "event-id")
		assert.NoError(t, err)
	})

	t.Run("event not found", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Event{}, nil)

		err := svc.Delete(employeeContext(), "missing-event")
		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
