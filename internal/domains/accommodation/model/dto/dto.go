package dto

import (
	"time"

	"aisle/internal/domains/accommodation/model"
	"aisle/shared"
	gDto "aisle/shared/dto"
	gModel "aisle/shared/model"
	"aisle/shared/timezone"

	"github.com/google/uuid"
)

type CreateAccommodationRequest struct {
	EventID       string     `json:"event_id" validate:"required"`
	Name          string     `json:"name" validate:"required,max=200"`
	Address       string     `json:"address" validate:"omitempty,max=300"`
	RoomBlockCode string     `json:"room_block_code" validate:"omitempty,max=50"`
	CheckIn       *time.Time `json:"check_in" validate:"omitempty"`
	CheckOut      *time.Time `json:"check_out" validate:"omitempty"`
	Notes         string     `json:"notes" validate:"omitempty,max=1000"`
	BookingURL    string     `json:"booking_url" validate:"omitempty,max=300"`
}

func (c *CreateAccommodationRequest) ToModel(user string) model.Accommodation {
	return model.Accommodation{
		ID:            uuid.NewString(),
		EventID:       c.EventID,
		Name:          c.Name,
		Address:       c.Address,
		RoomBlockCode: c.RoomBlockCode,
		CheckIn:       c.CheckIn,
		CheckOut:      c.CheckOut,
		Notes:         c.Notes,
		BookingURL:    c.BookingURL,
		Metadata:      gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateAccommodationRequest struct {
	Name          string     `db:"name" json:"name" validate:"omitempty,max=200"`
	Address       string     `db:"address" json:"address" validate:"omitempty,max=300"`
	RoomBlockCode string     `db:"room_block_code" json:"room_block_code" validate:"omitempty,max=50"`
	CheckIn       *time.Time `db:"check_in" json:"check_in" validate:"omitempty"`
	CheckOut      *time.Time `db:"check_out" json:"check_out" validate:"omitempty"`
	Notes         string     `db:"notes" json:"notes" validate:"omitempty,max=1000"`
	BookingURL    string     `db:"booking_url" json:"booking_url" validate:"omitempty,max=300"`
}

type AccommodationResponse struct {
	ID            string     `json:"id"`
	EventID       string     `json:"event_id"`
	Name          string     `json:"name"`
	Address       string     `json:"address"`
	RoomBlockCode string     `json:"room_block_code"`
	CheckIn       *time.Time `json:"check_in"`
	CheckOut      *time.Time `json:"check_out"`
	Notes         string     `json:"notes"`
	BookingURL    string     `json:"booking_url"`
	gDto.Metadata
}

func (r *AccommodationResponse) FromModel(model model.Accommodation) {
	r.ID = model.ID
	r.EventID = model.EventID
	r.Name = model.Name
	r.Address = model.Address
	r.RoomBlockCode = model.RoomBlockCode
	r.CheckIn = model.CheckIn
	r.CheckOut = model.CheckOut
	r.Notes = model.Notes
	r.BookingURL = model.BookingURL
	r.Metadata.FromModel(model.Metadata)
}

type GetAccommodationsResponse struct {
	Accommodations []AccommodationResponse `json:"accommodations"`
	TotalPage      int                     `json:"total_page"`
	TotalData      int                     `json:"total_data"`
}

func (r *GetAccommodationsResponse) FromModels(models []model.Accommodation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Accommodations = make([]AccommodationResponse, len(models))
	for i, mod := range models {
		r.Accommodations[i].FromModel(mod)
	}
}
