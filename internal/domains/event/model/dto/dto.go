package dto

import (
	"time"

	"aisle/internal/domains/event/model"
	"aisle/shared"
	gDto "aisle/shared/dto"
	gModel "aisle/shared/model"
	"aisle/shared/timezone"

	"github.com/google/uuid"
)

type CreateEventRequest struct {
	Title          string `json:"title"           validate:"required,max=200"`
	EventDate      string `json:"event_date"      validate:"required"`
	PartnerOne     string `json:"partner_one"     validate:"required,max=100"`
	PartnerTwo     string `json:"partner_two"     validate:"required,max=100"`
	Status         string `json:"status"          validate:"omitempty,oneof=planning confirmed completed cancelled"`
	CoupleUsername string `json:"couple_username" validate:"required,min=4,max=64"`
	CouplePassword string `json:"couple_password" validate:"required,min=8,max=72"`
}

func (c *CreateEventRequest) ToModel(tenantID, user, passwordHash string) (model.Event, error) {
	eventDate, err := time.Parse("2006-01-02", c.EventDate)
	if err != nil {
		return model.Event{}, err
	}

	status := "planning"
	if c.Status != "" {
		status = c.Status
	}

	return model.Event{
		ID:                 uuid.NewString(),
		TenantID:           tenantID,
		Title:              c.Title,
		EventDate:          eventDate,
		PartnerOne:         c.PartnerOne,
		PartnerTwo:         c.PartnerTwo,
		Status:             status,
		CoupleUsername:     c.CoupleUsername,
		CouplePasswordHash: passwordHash,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateEventRequest struct {
	Title      string `db:"title"       json:"title"       validate:"omitempty,max=200"`
	EventDate  string `json:"event_date"                   validate:"omitempty"`
	PartnerOne string `db:"partner_one" json:"partner_one" validate:"omitempty,max=100"`
	PartnerTwo string `db:"partner_two" json:"partner_two" validate:"omitempty,max=100"`
	Status     string `db:"status"      json:"status"      validate:"omitempty,oneof=planning confirmed completed cancelled"`
}

type EventResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	EventDate  string `json:"event_date"`
	PartnerOne string `json:"partner_one"`
	PartnerTwo string `json:"partner_two"`
	Status     string `json:"status"`
	gDto.Metadata
}

func (r *EventResponse) FromModel(model model.Event) {
	r.ID = model.ID
	r.Title = model.Title
	r.EventDate = model.EventDate.Format("2006-01-02")
	r.PartnerOne = model.PartnerOne
	r.PartnerTwo = model.PartnerTwo
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetEventsResponse struct {
	Events    []EventResponse `json:"events"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetEventsResponse) FromModels(models []model.Event, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Events = make([]EventResponse, len(models))
	for i, mod := range models {
		r.Events[i].FromModel(mod)
	}
}
