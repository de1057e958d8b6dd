package dto

import (
	"time"

	"aisle/internal/domains/timeline/model"
	"aisle/shared"
	gDto "aisle/shared/dto"
	gModel "aisle/shared/model"
	"aisle/shared/timezone"

	"github.com/google/uuid"
)

type CreateTimelineItemRequest struct {
	EventID    string     `json:"event_id" validate:"required"`
	Title      string     `json:"title" validate:"required,max=200"`
	StartsAt   time.Time  `json:"starts_at" validate:"required"`
	EndsAt     *time.Time `json:"ends_at" validate:"omitempty"`
	Location   string     `json:"location" validate:"omitempty,max=200"`
	Notes      string     `json:"notes" validate:"omitempty,max=1000"`
	OrderIndex int        `json:"order_index" validate:"min=0"`
}

func (c *CreateTimelineItemRequest) ToModel(user string) model.TimelineItem {
	return model.TimelineItem{
		ID:         uuid.NewString(),
		EventID:    c.EventID,
		Title:      c.Title,
		StartsAt:   c.StartsAt,
		EndsAt:     c.EndsAt,
		Location:   c.Location,
		Notes:      c.Notes,
		OrderIndex: c.OrderIndex,
		Metadata:   gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTimelineItemRequest struct {
	Title      string     `db:"title" json:"title" validate:"omitempty,max=200"`
	StartsAt   *time.Time `db:"starts_at" json:"starts_at" validate:"omitempty"`
	EndsAt     *time.Time `db:"ends_at" json:"ends_at" validate:"omitempty"`
	Location   string     `db:"location" json:"location" validate:"omitempty,max=200"`
	Notes      string     `db:"notes" json:"notes" validate:"omitempty,max=1000"`
	OrderIndex *int       `db:"order_index" json:"order_index" validate:"omitempty,min=0"`
}

type TimelineItemResponse struct {
	ID         string     `json:"id"`
	EventID    string     `json:"event_id"`
	Title      string     `json:"title"`
	StartsAt   time.Time  `json:"starts_at"`
	EndsAt     *time.Time `json:"ends_at"`
	Location   string     `json:"location"`
	Notes      string     `json:"notes"`
	OrderIndex int        `json:"order_index"`
	gDto.Metadata
}

func (r *TimelineItemResponse) FromModel(model model.TimelineItem) {
	r.ID = model.ID
	r.EventID = model.EventID
	r.Title = model.Title
	r.StartsAt = model.StartsAt
	r.EndsAt = model.EndsAt
	r.Location = model.Location
	r.Notes = model.Notes
	r.OrderIndex = model.OrderIndex
	r.Metadata.FromModel(model.Metadata)
}

type GetTimelineItemsResponse struct {
	TimelineItems []TimelineItemResponse `json:"timeline_items"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetTimelineItemsResponse) FromModels(models []model.TimelineItem, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.TimelineItems = make([]TimelineItemResponse, len(models))
	for i, mod := range models {
		r.TimelineItems[i].FromModel(mod)
	}
}
