package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"aisle/config"
	"aisle/infras/otel/mocks"
	eventSvcMocks "aisle/internal/domains/event/service/mocks"
	guestMocks "aisle/internal/domains/guest/mocks"
	guestModel "aisle/internal/domains/guest/model"
	seatingMocks "aisle/internal/domains/seating/mocks"
	"aisle/internal/domains/seating/model"
	"aisle/internal/domains/seating/model/dto"
	"aisle/internal/domains/seating/service"
	cacheMocks "aisle/shared/cache/mocks"
	"aisle/shared/constant"
	gDto "aisle/shared/dto"
	"aisle/shared/failure"
)

type seatingMockSet struct {
	repo      *seatingMocks.MockSeating
	guestRepo *guestMocks.MockGuest
	eventSvc  *eventSvcMocks.MockEvent
	cache     *cacheMocks.MockRedisCache
}

func newSeatingService(ctrl *gomock.Controller) (service.Seating, seatingMockSet) {
	set := seatingMockSet{
		repo:      seatingMocks.NewMockSeating(ctrl),
		guestRepo: guestMocks.NewMockGuest(ctrl),
		eventSvc:  eventSvcMocks.NewMockEvent(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(set.repo, set.guestRepo, set.eventSvc, cfg, set.cache, mocks.NewOtel())

	set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return svc, set
}

func receptionPlan() model.FloorPlan {
	return model.FloorPlan{
		ID:      "plan-id",
		EventID: "event-id",
		Name:    "Reception Hall",
		Mode:    constant.FloorPlanModeReception,
	}
}

func ceremonyPlan() model.FloorPlan {
	return model.FloorPlan{
		ID:      "plan-id",
		EventID: "event-id",
		Name:    "Garden Ceremony",
		Mode:    constant.FloorPlanModeCeremony,
	}
}

func seatedGuest(tableID *string) guestModel.Guest {
	return guestModel.Guest{
		ID:      "guest-id",
		EventID: "event-id",
		TableID: tableID,
	}
}

func eventTable() model.TableWithEvent {
	return model.TableWithEvent{
		Table: model.Table{
			ID:          "table-id",
			FloorPlanID: "plan-id",
			Name:        "Table 1",
			SeatCount:   8,
		},
		EventID: "event-id",
	}
}

func TestSeatingService_CreateFloorPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newSeatingService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func() {
				set.eventSvc.EXPECT().
					Authorize(gomock.Any(), "event-id").
					Return(nil)

				set.repo.EXPECT().
					InsertFloorPlan(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "event not visible to caller",
			setupMock: func() {
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

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.CreateFloorPlan(ctx, dto.CreateFloorPlanRequest{
				EventID: "event-id",
				Name:    "Reception Hall",
				Mode:    constant.FloorPlanModeReception,
			})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSeatingService_CreateTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newSeatingService(ctrl)

	req := dto.CreateTableRequest{
		FloorPlanID: "plan-id",
		Name:        "Table 1",
		TableType:   "round",
		SeatCount:   8,
	}

	t.Run("table on a reception plan", func(t *testing.T) {
		set.repo.EXPECT().
			GetFloorPlan(gomock.Any(), gomock.Any()).
			Return(receptionPlan(), nil)

		set.eventSvc.EXPECT().
			Authorize(gomock.Any(), "event-id").
			Return(nil)

		set.repo.EXPECT().
			InsertTable(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.CreateTable(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("table on a ceremony plan is rejected", func(t *testing.T) {
		set.repo.EXPECT().
			GetFloorPlan(gomock.Any(), gomock.Any()).
			Return(ceremonyPlan(), nil)

		set.eventSvc.EXPECT().
			Authorize(gomock.Any(), "event-id").
			Return(nil)

		err := svc.CreateTable(context.Background(), req)
		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("floor plan not found", func(t *testing.T) {
		set.repo.EXPECT().
			GetFloorPlan(gomock.Any(), gomock.Any()).
			Return(model.FloorPlan{}, nil)

		err := svc.CreateTable(context.Background(), req)
		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestSeatingService_CreateSeat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newSeatingService(ctrl)

	req := dto.CreateSeatRequest{
		FloorPlanID: "plan-id",
		Label:       "A1",
	}

	t.Run("seat on a ceremony plan", func(t *testing.T) {
		set.repo.EXPECT().
			GetFloorPlan(gomock.Any(), gomock.Any()).
			Return(ceremonyPlan(), nil)

		set.eventSvc.EXPECT().
			Authorize(gomock.Any(), "event-id").
			Return(nil)

		set.repo.EXPECT().
			InsertSeat(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.CreateSeat(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("seat on a reception plan is rejected", func(t *testing.T) {
		set.repo.EXPECT().
			GetFloorPlan(gomock.Any(), gomock.Any()).
			Return(receptionPlan(), nil)

		set.eventSvc.EXPECT().
			Authorize(gomock.Any(), "event-id").
			Return(nil)

		err := svc.CreateSeat(context.Background(), req)
		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestSeatingService_UpdateTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newSeatingService(ctrl)

	t.Run("capacity cannot drop below occupancy", func(t *testing.T) {
		set.repo.EXPECT().
			GetTableWithEvent(gomock.Any(), "table-id").
			Return(eventTable(), nil)

		set.eventSvc.EXPECT().
			Authorize(gomock.Any(), "event-id").
			Return(nil)

		set.guestRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(6, nil)

		four := 4
		err := svc.UpdateTable(context.Background(), dto.UpdateTableRequest{SeatCount: &four}, "table-id")
		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("capacity grows freely", func(t *testing.T) {
		set.repo.EXPECT().
			GetTableWithEvent(gomock.Any(), "table-id").
			Return(eventTable(), nil)

		set.eventSvc.EXPECT().
			Authorize(gomock.Any(), "event-id").
			Return(nil)

		set.guestRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(6, nil)

		set.repo.EXPECT().
			UpdateTable(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		ten := 10
		err := svc.UpdateTable(context.Background(), dto.UpdateTableRequest{SeatCount: &ten}, "table-id")
		assert.NoError(t, err)
	})

	t.Run("empty update request", func(t *testing.T) {
		err := svc.UpdateTable(context.Background(), dto.UpdateTableRequest{}, "table-id")
		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestSeatingService_DeleteFloorPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newSeatingService(ctrl)

	t.Run("cascade delete", func(t *testing.T) {
		set.repo.EXPECT().
			GetFloorPlan(gomock.Any(), gomock.Any()).
			Return(receptionPlan(), nil)

		set.eventSvc.EXPECT().
			Authorize(gomock.Any(), "event-id").
			Return(nil)

		set.repo.EXPECT().
			DeleteFloorPlanCascade(gomock.Any(), "plan-id", gomock.Any()).
			Return(nil)

		err := svc.DeleteFloorPlan(context.Background(), "plan-id")
		assert.NoError(t, err)
	})

	t.Run("plan of a foreign event reads as not found", func(t *testing.T) {
		set.repo.EXPECT().
			GetFloorPlan(gomock.Any(), gomock.Any()).
			Return(receptionPlan(), nil)

		set.eventSvc.EXPECT().
			Authorize(gomock.Any(), "event-id").
			Return(failure.NotFound("event not found"))

		err := svc.DeleteFloorPlan(context.Background(), "plan-id")
		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestSeatingService_DeleteTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newSeatingService(ctrl)

	t.Run("cascade unseats its guests", func(t *testing.T) {
		set.repo.EXPECT().
			GetTableWithEvent(gomock.Any(), "table-id").
			Return(eventTable(), nil)

		set.eventSvc.EXPECT().
			Authorize(gomock.Any(), "event-id").
			Return(nil)

		set.repo.EXPECT().
			DeleteTableCascade(gomock.Any(), "table-id", gomock.Any()).
			Return(nil)

		err := svc.DeleteTable(context.Background(), "table-id")
		assert.NoError(t, err)
	})

	t.Run("table not found", func(t *testing.T) {
		set.repo.EXPECT().
			GetTableWithEvent(gomock.Any(), "table-id").
			Return(model.TableWithEvent{}, nil)

		err := svc.DeleteTable(context.Background(), "table-id")
		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestSeatingService_AssignGuestToTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newSeatingService(ctrl)

	req := dto.AssignTableRequest{GuestID: "guest-id", TableID: "table-id"}

	t.Run("successful assignment", func(t *testing.T) {
		set.guestRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(seatedGuest(nil), nil)

		set.eventSvc.EXPECT().
			Authorize(gomock.Any(), "event-id").
			Return(nil)

		set.repo.EXPECT().
			GetTableWithEvent(gomock.Any(), "table-id").
			Return(eventTable(), nil)

		set.repo.EXPECT().
			AssignGuestToTable(gomock.Any(), "guest-id", "table-id", nil, gomock.Any()).
			Return(true, nil)

		err := svc.AssignGuestToTable(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("seated guest is moved, previous table passed along", func(t *testing.T) {
		previous := "old-table-id"

		set.guestRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(seatedGuest(&previous), nil)

		set.eventSvc.EXPECT().
			Authorize(gomock.Any(), "event-id").
			Return(nil)

		set.repo.EXPECT().
			GetTableWithEvent(gomock.Any(), "table-id").
			Return(eventTable(), nil)

		set.repo.EXPECT().
			AssignGuestToTable(gomock.Any(), "guest-id", "table-id", &previous, gomock.Any()).
			Return(true, nil)

		err := svc.AssignGuestToTable(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("full table conflicts", func(t *testing.T) {
		set.guestRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(seatedGuest(nil), nil)

		set.eventSvc.EXPECT().
			Authorize(gomock.Any(), "event-id").
			Return(nil)

		set.repo.EXPECT().
			GetTableWithEvent(gomock.Any(), "table-id").
			Return(eventTable(), nil)

		set.repo.EXPECT().
			AssignGuestToTable(gomock.Any(), "guest-id", "table-id", nil, gomock.Any()).
			Return(false, nil)

		err := svc.AssignGuestToTable(context.Background(), req)
		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("already at this table conflicts", func(t *testing.T) {
		current := "table-id"

		set.guestRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(seatedGuest(&current), nil)

		set.eventSvc.EXPECT().
			Authorize(gomock.Any(), "event-id").
			Return(nil)

		set.repo.EXPECT().
			GetTableWithEvent(gomock.Any(), "table-id").
			Return(eventTable(), nil)

		err := svc.AssignGuestToTable(context.Background(), req)
		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("table of another event reads as not found", func(t *testing.T) {
		foreign := eventTable()
		foreign.EventID = "other-event"

		set.guestRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(seatedGuest(nil), nil)

		set.eventSvc.EXPECT().
			Authorize(gomock.Any(), "event-id").
			Return(nil)

		set.repo.EXPECT().
			GetTableWithEvent(gomock.Any(), "table-id").
			Return(foreign, nil)

		err := svc.AssignGuestToTable(context.Background(), req)
		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestSeatingService_AssignGuestToSeat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newSeatingService(ctrl)

	req := dto.AssignSeatRequest{GuestID: "guest-id", SeatID: "seat-id"}

	ceremonySeat := func(guestID *string) model.SeatWithEvent {
		return model.SeatWithEvent{
			Seat: model.Seat{
				ID:          "seat-id",
				FloorPlanID: "plan-id",
				Label:       "A1",
				GuestID:     guestID,
			},
			EventID: "event-id",
			Mode:    constant.FloorPlanModeCeremony,
		}
	}

	t.Run("successful assignment", func(t *testing.T) {
		set.guestRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(seatedGuest(nil), nil)

		set.eventSvc.EXPECT().
			Authorize(gomock.Any(), "event-id").
			Return(nil)

		set.repo.EXPECT().
			GetSeatWithEvent(gomock.Any(), "seat-id").
			Return(ceremonySeat(nil), nil)

		set.repo.EXPECT().
			AssignGuestToSeat(gomock.Any(), "guest-id", "seat-id", gomock.Any()).
			Return(true, nil)

		err := svc.AssignGuestToSeat(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("taken seat conflicts", func(t *testing.T) {
		set.guestRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(seatedGuest(nil), nil)

		set.eventSvc.EXPECT().
			Authorize(gomock.Any(), "event-id").
			Return(nil)

		set.repo.EXPECT().
			GetSeatWithEvent(gomock.Any(), "seat-id").
			Return(ceremonySeat(nil), nil)

		set.repo.EXPECT().
			AssignGuestToSeat(gomock.Any(), "guest-id", "seat-id", gomock.Any()).
			Return(false, nil)

		err := svc.AssignGuestToSeat(context.Background(), req)
		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("reception seat is rejected", func(t *testing.T) {
		receptionSeat := ceremonySeat(nil)
		receptionSeat.Mode = constant.FloorPlanModeReception

		set.guestRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(seatedGuest(nil), nil)

		set.eventSvc.EXPECT().
			Authorize(gomock.Any(), "event-id").
			Return(nil)

		set.repo.EXPECT().
			GetSeatWithEvent(gomock.Any(), "seat-id").
			Return(receptionSeat, nil)

		err := svc.AssignGuestToSeat(context.Background(), req)
		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestSeatingService_UnassignGuest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newSeatingService(ctrl)

	t.Run("successful unassignment", func(t *testing.T) {
		previous := "table-id"

		set.guestRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(seatedGuest(&previous), nil)

		set.eventSvc.EXPECT().
			Authorize(gomock.Any(), "event-id").
			Return(nil)

		set.repo.EXPECT().
			UnassignGuest(gomock.Any(), "guest-id", &previous, gomock.Any()).
			Return(nil)

		err := svc.UnassignGuest(context.Background(), "guest-id")
		assert.NoError(t, err)
	})

	t.Run("guest not found", func(t *testing.T) {
		set.guestRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(guestModel.Guest{}, nil)

		err := svc.UnassignGuest(context.Background(), "guest-id")
		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestSeatingService_GetAllTables(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newSeatingService(ctrl)

	t.Run("cache miss falls back to the repository", func(t *testing.T) {
		set.repo.EXPECT().
			GetFloorPlan(gomock.Any(), gomock.Any()).
			Return(receptionPlan(), nil)

		set.eventSvc.EXPECT().
			Authorize(gomock.Any(), "event-id").
			Return(nil)

		set.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		set.repo.EXPECT().
			CountTables(gomock.Any(), gomock.Any()).
			Return(1, nil)

		set.repo.EXPECT().
			GetAllTables(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Table{eventTable().Table}, nil)

		res, err := svc.GetAllTables(context.Background(), "plan-id", gDto.QueryParams{Limit: 10, Page: 1})
		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
	})
}
