package dto

import (
	"aisle/internal/domains/seating/model"
	"aisle/shared"
	gDto "aisle/shared/dto"
	gModel "aisle/shared/model"
	"aisle/shared/timezone"

	"github.com/google/uuid"
)

type CreateFloorPlanRequest struct {
	EventID string `json:"event_id" validate:"required"`
	Name    string `json:"name"     validate:"required,max=100"`
	Mode    string `json:"mode"     validate:"required,oneof=ceremony reception"`
}

func (c *CreateFloorPlanRequest) ToModel(user string) model.FloorPlan {
	return model.FloorPlan{
		ID:      uuid.NewString(),
		EventID: c.EventID,
		Name:    c.Name,
		Mode:    c.Mode,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateFloorPlanRequest struct {
	Name string `db:"name" json:"name" validate:"omitempty,max=100"`
}

type FloorPlanResponse struct {
	ID      string `json:"id"`
	EventID string `json:"event_id"`
	Name    string `json:"name"`
	Mode    string `json:"mode"`
	gDto.Metadata
}

func (r *FloorPlanResponse) FromModel(model model.FloorPlan) {
	r.ID = model.ID
	r.EventID = model.EventID
	r.Name = model.Name
	r.Mode = model.Mode
	r.Metadata.FromModel(model.Metadata)
}

type GetFloorPlansResponse struct {
	FloorPlans []FloorPlanResponse `json:"floor_plans"`
	TotalPage  int                 `json:"total_page"`
	TotalData  int                 `json:"total_data"`
}

func (r *GetFloorPlansResponse) FromModels(models []model.FloorPlan, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.FloorPlans = make([]FloorPlanResponse, len(models))
	for i, mod := range models {
		r.FloorPlans[i].FromModel(mod)
	}
}

type CreateTableRequest struct {
	FloorPlanID string  `json:"floor_plan_id" validate:"required"`
	Name        string  `json:"name"          validate:"required,max=100"`
	TableType   string  `json:"table_type"    validate:"required,oneof=round rectangular"`
	SeatCount   int     `json:"seat_count"    validate:"required,min=1"`
	PosX        float64 `json:"pos_x"`
	PosY        float64 `json:"pos_y"`
	Rotation    float64 `json:"rotation"`
}

func (c *CreateTableRequest) ToModel(user string) model.Table {
	return model.Table{
		ID:          uuid.NewString(),
		FloorPlanID: c.FloorPlanID,
		Name:        c.Name,
		TableType:   c.TableType,
		SeatCount:   c.SeatCount,
		PosX:        c.PosX,
		PosY:        c.PosY,
		Rotation:    c.Rotation,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTableRequest struct {
	Name      string   `db:"name"       json:"name"       validate:"omitempty,max=100"`
	TableType string   `db:"table_type" json:"table_type" validate:"omitempty,oneof=round rectangular"`
	SeatCount *int     `db:"seat_count" json:"seat_count" validate:"omitempty,min=1"`
	PosX      *float64 `db:"pos_x"      json:"pos_x"`
	PosY      *float64 `db:"pos_y"      json:"pos_y"`
	Rotation  *float64 `db:"rotation"   json:"rotation"`
}

type TableResponse struct {
	ID          string  `json:"id"`
	FloorPlanID string  `json:"floor_plan_id"`
	Name        string  `json:"name"`
	TableType   string  `json:"table_type"`
	SeatCount   int     `json:"seat_count"`
	PosX        float64 `json:"pos_x"`
	PosY        float64 `json:"pos_y"`
	Rotation    float64 `json:"rotation"`
	gDto.Metadata
}

func (r *TableResponse) FromModel(model model.Table) {
	r.ID = model.ID
	r.FloorPlanID = model.FloorPlanID
	r.Name = model.Name
	r.TableType = model.TableType
	r.SeatCount = model.SeatCount
	r.PosX = model.PosX
	r.PosY = model.PosY
	r.Rotation = model.Rotation
	r.Metadata.FromModel(model.Metadata)
}

type GetTablesResponse struct {
	Tables    []TableResponse `json:"tables"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetTablesResponse) FromModels(models []model.Table, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Tables = make([]TableResponse, len(models))
	for i, mod := range models {
		r.Tables[i].FromModel(mod)
	}
}

type CreateSeatRequest struct {
	FloorPlanID string `json:"floor_plan_id" validate:"required"`
	Label       string `json:"label"         validate:"required,max=50"`
	RowPos      int    `json:"row_pos"       validate:"min=0"`
	ColPos      int    `json:"col_pos"       validate:"min=0"`
}

func (c *CreateSeatRequest) ToModel(user string) model.Seat {
	return model.Seat{
		ID:          uuid.NewString(),
		FloorPlanID: c.FloorPlanID,
		Label:       c.Label,
		RowPos:      c.RowPos,
		ColPos:      c.ColPos,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type SeatResponse struct {
	ID          string  `json:"id"`
	FloorPlanID string  `json:"floor_plan_id"`
	Label       string  `json:"label"`
	RowPos      int     `json:"row_pos"`
	ColPos      int     `json:"col_pos"`
	GuestID     *string `json:"guest_id"`
	gDto.Metadata
}

func (r *SeatResponse) FromModel(model model.Seat) {
	r.ID = model.ID
	r.FloorPlanID = model.FloorPlanID
	r.Label = model.Label
	r.RowPos = model.RowPos
	r.ColPos = model.ColPos
	r.GuestID = model.GuestID
	r.Metadata.FromModel(model.Metadata)
}

type GetSeatsResponse struct {
	Seats     []SeatResponse `json:"seats"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetSeatsResponse) FromModels(models []model.Seat, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Seats = make([]SeatResponse, len(models))
	for i, mod := range models {
		r.Seats[i].FromModel(mod)
	}
}

type AssignTableRequest struct {
	GuestID string `json:"guest_id" validate:"required"`
	TableID string `json:"table_id" validate:"required"`
}

type AssignSeatRequest struct {
	GuestID string `json:"guest_id" validate:"required"`
	SeatID  string `json:"seat_id"  validate:"required"`
}
