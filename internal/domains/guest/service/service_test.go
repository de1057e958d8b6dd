package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"aisle/config"
	kafkaMocks "aisle/infras/kafka/mocks"
	"aisle/infras/otel/mocks"
	eventSvcMocks "aisle/internal/domains/event/service/mocks"
	guestMocks "aisle/internal/domains/guest/mocks"
	"aisle/internal/domains/guest/model"
	"aisle/internal/domains/guest/model/dto"
	"aisle/internal/domains/guest/service"
	cacheMocks "aisle/shared/cache/mocks"
	"aisle/shared/constant"
	gDto "aisle/shared/dto"
	"aisle/shared/failure"
	gModel "aisle/shared/model"
	"aisle/shared/timezone"
	"aisle/shared/token"
)

type guestMockSet struct {
	repo     *guestMocks.MockGuest
	eventSvc *eventSvcMocks.MockEvent
	cache    *cacheMocks.MockRedisCache
	kafka    *kafkaMocks.MockClient
}

func newGuestService(ctrl *gomock.Controller) (service.Guest, guestMockSet) {
	set := guestMockSet{
		repo:     guestMocks.NewMockGuest(ctrl),
		eventSvc: eventSvcMocks.NewMockEvent(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		kafka:    kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.Topics.GuestLifecycle = "guest-lifecycle"

	svc := service.New(set.repo, set.eventSvc, cfg, set.cache, set.kafka, mocks.NewOtel())

	return svc, set
}

// allowAsync covers the cache invalidation and lifecycle publishing that
// run on goroutines after the synchronous path returns.
func allowAsync(set guestMockSet) {
	set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func stageGuest(stage int, status string) model.Guest {
	return model.Guest{
		ID:                  "guest-id",
		EventID:             "event-id",
		FirstName:           "Ayu",
		LastName:            "Pratama",
		Stage:               stage,
		SaveTheDateResponse: constant.SaveTheDatePending,
		RSVPStatus:          status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "planner",
			ModifiedBy: "planner",
		},
	}
}

func TestGuestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newGuestService(ctrl)
	allowAsync(set)

	tests := []struct {
		name      string
		req       dto.CreateGuestRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateGuestRequest{
				EventID:   "event-id",
				FirstName: "Ayu",
				LastName:  "Pratama",
			},
			setupMock: func() {
				set.eventSvc.EXPECT().
					Authorize(gomock.Any(), "event-id").
					Return(nil)

				set.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "event not visible to caller",
			req: dto.CreateGuestRequest{
				EventID:   "other-event",
				FirstName: "Ayu",
				LastName:  "Pratama",
			},
			setupMock: func() {
				set.eventSvc.EXPECT().
					Authorize(gomock.Any(), "other-event").
					Return(failure.NotFound("event not found"))
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req: dto.CreateGuestRequest{
				EventID:   "event-id",
				FirstName: "Ayu",
				LastName:  "Pratama",
			},
			setupMock: func() {
				set.eventSvc.EXPECT().
					Authorize(gomock.Any(), "event-id").
					Return(nil)

				set.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGuestService_ImportCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newGuestService(ctrl)
	allowAsync(set)

	tests := []struct {
		name         string
		csv          string
		setupMock    func()
		wantErr      bool
		wantImported int
	}{
		{
			name: "successful import",
			csv:  "first_name,last_name,email,phone\nAyu,Pratama,ayu@example.com,\nBudi,Santoso,,",
			setupMock: func() {
				set.eventSvc.EXPECT().
					Authorize(gomock.Any(), "event-id").
					Return(nil)

				set.repo.EXPECT().
					InsertBulk(gomock.Any(), gomock.Len(2)).
					Return(nil)
			},
			wantErr:      false,
			wantImported: 2,
		},
		{
			name: "invalid row rejects the whole file",
			csv:  "first_name,last_name,email,phone\nAyu,Pratama,not-an-email,\nBudi,Santoso,,",
			setupMock: func() {
				set.eventSvc.EXPECT().
					Authorize(gomock.Any(), "event-id").
					Return(nil)
			},
			wantErr: true,
		},
		{
			name: "empty file",
			csv:  "first_name,last_name,email,phone\n",
			setupMock: func() {
				set.eventSvc.EXPECT().
					Authorize(gomock.Any(), "event-id").
					Return(nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.ImportCSV(ctx, "event-id", strings.NewReader(tt.csv))

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantImported, res.Imported)
			}
		})
	}
}

func TestGuestService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newGuestService(ctrl)
	allowAsync(set)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name: "cache hit",
			setupMock: func() {
				set.eventSvc.EXPECT().
					Authorize(gomock.Any(), "event-id").
					Return(nil)

				set.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			setupMock: func() {
				set.eventSvc.EXPECT().
					Authorize(gomock.Any(), "event-id").
					Return(nil)

				set.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				set.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				set.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Guest{stageGuest(constant.StageSaveTheDate, constant.RSVPStatusDraft)}, nil)
			},
			wantErr:   false,
			wantTotal: 1,
		},
		{
			name: "count error",
			setupMock: func() {
				set.eventSvc.EXPECT().
					Authorize(gomock.Any(), "event-id").
					Return(nil)

				set.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				set.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetAll(context.Background(), "event-id", gDto.QueryParams{Limit: 10, Page: 1}, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, res.TotalData)
			}
		})
	}
}

func TestGuestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newGuestService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful get",
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(stageGuest(constant.StageSaveTheDate, constant.RSVPStatusDraft), nil)

				set.eventSvc.EXPECT().
					Authorize(gomock.Any(), "event-id").
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "guest not found",
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Guest{}, nil)
			},
			wantErr: true,
		},
		{
			name: "guest of a foreign event reads as not found",
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(stageGuest(constant.StageSaveTheDate, constant.RSVPStatusDraft), nil)

				set.eventSvc.EXPECT().
					Authorize(gomock.Any(), "event-id").
					Return(failure.NotFound("event not found"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), "guest-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "guest-id", res.ID)
			}
		})
	}
}

func TestGuestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newGuestService(ctrl)
	allowAsync(set)

	tests := []struct {
		name      string
		req       dto.UpdateGuestRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful update",
			req:  dto.UpdateGuestRequest{FirstName: "Dewi"},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(stageGuest(constant.StageSaveTheDate, constant.RSVPStatusDraft), nil)

				set.eventSvc.EXPECT().
					Authorize(gomock.Any(), "event-id").
					Return(nil)

				set.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:      "empty update request",
			req:       dto.UpdateGuestRequest{},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "guest not found",
			req:  dto.UpdateGuestRequest{FirstName: "Dewi"},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Guest{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, tt.req, "guest-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGuestService_SendInvitation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newGuestService(ctrl)
	allowAsync(set)

	t.Run("draft guest is promoted to invited", func(t *testing.T) {
		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(stageGuest(constant.StageSaveTheDate, constant.RSVPStatusDraft), nil)

		set.eventSvc.EXPECT().
			Authorize(gomock.Any(), "event-id").
			Return(nil)

		set.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, true, fields[model.FieldInvitationSent])
				assert.Equal(t, constant.RSVPStatusInvited, fields[model.FieldRSVPStatus])

				return nil
			})

		err := svc.SendInvitation(context.Background(), "guest-id")
		assert.NoError(t, err)
	})

	t.Run("confirmed guest keeps its status", func(t *testing.T) {
		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(stageGuest(constant.StageFinalized, constant.RSVPStatusConfirmed), nil)

		set.eventSvc.EXPECT().
			Authorize(gomock.Any(), "event-id").
			Return(nil)

		set.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				_, touched := fields[model.FieldRSVPStatus]
				assert.False(t, touched)

				return nil
			})

		err := svc.SendInvitation(context.Background(), "guest-id")
		assert.NoError(t, err)
	})

	t.Run("guest not found", func(t *testing.T) {
		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Guest{}, nil)

		err := svc.SendInvitation(context.Background(), "missing-id")
		assert.Error(t, err)
	})
}

func TestGuestService_RespondSaveTheDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newGuestService(ctrl)
	allowAsync(set)

	t.Run("yes moves the guest to the rsvp stage and issues a token", func(t *testing.T) {
		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(stageGuest(constant.StageSaveTheDate, constant.RSVPStatusDraft), nil)

		set.eventSvc.EXPECT().
			Authorize(gomock.Any(), "event-id").
			Return(nil)

		set.repo.EXPECT().
			UpdateGuarded(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (bool, error) {
				assert.Equal(t, constant.StageRSVP, fields[model.FieldStage])

				issued, _ := fields[model.FieldRSVPToken].(string)
				assert.True(t, token.IsRSVPToken(issued))

				return true, nil
			})

		res, err := svc.RespondSaveTheDate(context.Background(), "guest-id", dto.SaveTheDateRequest{Response: constant.SaveTheDateYes})
		assert.NoError(t, err)
		assert.Equal(t, constant.StageRSVP, res.Stage)
		assert.NotNil(t, res.RSVPToken)
		assert.True(t, token.IsRSVPToken(*res.RSVPToken))
	})

	t.Run("yes again rotates the token", func(t *testing.T) {
		guest := stageGuest(constant.StageRSVP, constant.RSVPStatusInvited)
		previous := "rsvp_" + strings.Repeat("ab", 24)
		guest.RSVPToken = &previous

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(guest, nil)

		set.eventSvc.EXPECT().
			Authorize(gomock.Any(), "event-id").
			Return(nil)

		set.repo.EXPECT().
			UpdateGuarded(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (bool, error) {
				issued, _ := fields[model.FieldRSVPToken].(string)
				assert.True(t, token.IsRSVPToken(issued))
				assert.NotEqual(t, previous, issued)

				return true, nil
			})

		res, err := svc.RespondSaveTheDate(context.Background(), "guest-id", dto.SaveTheDateRequest{Response: constant.SaveTheDateYes})
		assert.NoError(t, err)
		assert.NotNil(t, res.RSVPToken)
		assert.NotEqual(t, previous, *res.RSVPToken)
	})

	t.Run("no clears the token and keeps the stage", func(t *testing.T) {
		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(stageGuest(constant.StageSaveTheDate, constant.RSVPStatusDraft), nil)

		set.eventSvc.EXPECT().
			Authorize(gomock.Any(), "event-id").
			Return(nil)

		set.repo.EXPECT().
			UpdateGuarded(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (bool, error) {
				assert.Nil(t, fields[model.FieldRSVPToken])

				_, staged := fields[model.FieldStage]
				assert.False(t, staged)

				return true, nil
			})

		res, err := svc.RespondSaveTheDate(context.Background(), "guest-id", dto.SaveTheDateRequest{Response: constant.SaveTheDateNo})
		assert.NoError(t, err)
		assert.Equal(t, constant.StageSaveTheDate, res.Stage)
		assert.Nil(t, res.RSVPToken)
	})

	t.Run("finalized guest conflicts", func(t *testing.T) {
		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(stageGuest(constant.StageFinalized, constant.RSVPStatusConfirmed), nil)

		set.eventSvc.EXPECT().
			Authorize(gomock.Any(), "event-id").
			Return(nil)

		_, err := svc.RespondSaveTheDate(context.Background(), "guest-id", dto.SaveTheDateRequest{Response: constant.SaveTheDateYes})
		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("losing a concurrent finalization conflicts", func(t *testing.T) {
		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(stageGuest(constant.StageRSVP, constant.RSVPStatusInvited), nil)

		set.eventSvc.EXPECT().
			Authorize(gomock.Any(), "event-id").
			Return(nil)

		set.repo.EXPECT().
			UpdateGuarded(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := svc.RespondSaveTheDate(context.Background(), "guest-id", dto.SaveTheDateRequest{Response: constant.SaveTheDateYes})
		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestGuestService_GetByToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newGuestService(ctrl)

	validToken := "rsvp_" + strings.Repeat("ab", 24)

	t.Run("successful lookup", func(t *testing.T) {
		guest := stageGuest(constant.StageRSVP, constant.RSVPStatusInvited)
		guest.Email = "ayu@example.com"

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(guest, nil)

		res, err := svc.GetByToken(context.Background(), validToken)
		assert.NoError(t, err)
		assert.Equal(t, "Ayu", res.FirstName)
		assert.Equal(t, constant.StageRSVP, res.Stage)
	})

	t.Run("malformed token never touches the repository", func(t *testing.T) {
		_, err := svc.GetByToken(context.Background(), "not-a-token")
		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("unknown token reads as not found", func(t *testing.T) {
		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Guest{}, nil)

		_, err := svc.GetByToken(context.Background(), validToken)
		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestGuestService_SubmitRSVP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newGuestService(ctrl)
	allowAsync(set)

	validToken := "rsvp_" + strings.Repeat("cd", 24)
	starter := "soup"
	main := "salmon"
	dessert := "tart"

	t.Run("confirmed submission finalizes the guest", func(t *testing.T) {
		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(stageGuest(constant.StageRSVP, constant.RSVPStatusInvited), nil)

		set.repo.EXPECT().
			UpdateGuarded(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (bool, error) {
				assert.Equal(t, constant.StageFinalized, fields[model.FieldStage])
				assert.Equal(t, constant.RSVPStatusConfirmed, fields[model.FieldRSVPStatus])

				return true, nil
			})

		err := svc.SubmitRSVP(context.Background(), validToken, dto.SubmitRSVPRequest{
			Status:           constant.RSVPSubmitConfirmed,
			StarterSelection: &starter,
			MainSelection:    &main,
			DessertSelection: &dessert,
		})
		assert.NoError(t, err)
	})

	t.Run("confirmed submission requires all meal selections", func(t *testing.T) {
		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(stageGuest(constant.StageRSVP, constant.RSVPStatusInvited), nil)

		err := svc.SubmitRSVP(context.Background(), validToken, dto.SubmitRSVPRequest{
			Status:           constant.RSVPSubmitConfirmed,
			StarterSelection: &starter,
		})
		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("declined submission clears meals and dietary info", func(t *testing.T) {
		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(stageGuest(constant.StageRSVP, constant.RSVPStatusInvited), nil)

		set.repo.EXPECT().
			UpdateGuarded(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (bool, error) {
				assert.Equal(t, constant.RSVPStatusDeclined, fields[model.FieldRSVPStatus])
				assert.Nil(t, fields[model.FieldStarterSelection])
				assert.Nil(t, fields[model.FieldDietaryRestrictions])

				return true, nil
			})

		err := svc.SubmitRSVP(context.Background(), validToken, dto.SubmitRSVPRequest{Status: constant.RSVPSubmitDeclined})
		assert.NoError(t, err)
	})

	t.Run("maybe finalizes the stage but stays invited", func(t *testing.T) {
		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(stageGuest(constant.StageRSVP, constant.RSVPStatusInvited), nil)

		set.repo.EXPECT().
			UpdateGuarded(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (bool, error) {
				assert.Equal(t, constant.StageFinalized, fields[model.FieldStage])

				_, touched := fields[model.FieldRSVPStatus]
				assert.False(t, touched)

				return true, nil
			})

		err := svc.SubmitRSVP(context.Background(), validToken, dto.SubmitRSVPRequest{Status: constant.RSVPSubmitMaybe})
		assert.NoError(t, err)
	})

	t.Run("rsvp not open outside stage two", func(t *testing.T) {
		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(stageGuest(constant.StageSaveTheDate, constant.RSVPStatusDraft), nil)

		err := svc.SubmitRSVP(context.Background(), validToken, dto.SubmitRSVPRequest{Status: constant.RSVPSubmitDeclined})
		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("losing the stage guard conflicts", func(t *testing.T) {
		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(stageGuest(constant.StageRSVP, constant.RSVPStatusInvited), nil)

		set.repo.EXPECT().
			UpdateGuarded(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.SubmitRSVP(context.Background(), validToken, dto.SubmitRSVPRequest{Status: constant.RSVPSubmitDeclined})
		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestGuestService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newGuestService(ctrl)
	allowAsync(set)

	t.Run("cache miss falls back to the repository", func(t *testing.T) {
		set.eventSvc.EXPECT().
			Authorize(gomock.Any(), "event-id").
			Return(nil)

		set.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		set.repo.EXPECT().
			GetStats(gomock.Any(), "event-id").
			Return(model.Stats{Total: 12, Confirmed: 5}, nil)

		res, err := svc.Stats(context.Background(), "event-id")
		assert.NoError(t, err)
		assert.Equal(t, 12, res.Total)
		assert.Equal(t, 5, res.Confirmed)
	})

	t.Run("event not visible to caller", func(t *testing.T) {
		set.eventSvc.EXPECT().
			Authorize(gomock.Any(), "event-id").
			Return(failure.NotFound("event not found"))

		_, err := svc.Stats(context.Background(), "event-id")
		assert.Error(t, err)
	})
}
