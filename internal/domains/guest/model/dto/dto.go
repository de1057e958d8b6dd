package dto

import (
	"aisle/internal/domains/guest/model"
	"aisle/shared"
	gDto "aisle/shared/dto"
	gModel "aisle/shared/model"
	"aisle/shared/timezone"

	"github.com/google/uuid"
)

type CreateGuestRequest struct {
	EventID   string `json:"event_id"   validate:"required"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name"  validate:"required,max=100"`
	Email     string `json:"email"      validate:"omitempty,email,max=100"`
	Phone     string `json:"phone"      validate:"omitempty,max=20"`
}

func (c *CreateGuestRequest) ToModel(user string) model.Guest {
	return model.Guest{
		ID:                  uuid.NewString(),
		EventID:             c.EventID,
		FirstName:           c.FirstName,
		LastName:            c.LastName,
		Email:               c.Email,
		Phone:               c.Phone,
		Stage:               1,
		SaveTheDateResponse: "pending",
		RSVPStatus:          "draft",
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// ImportGuestRow is one line of a bulk CSV import. Column headers match
// the struct tags.
type ImportGuestRow struct {
	FirstName string `csv:"first_name" validate:"required,max=100"`
	LastName  string `csv:"last_name"  validate:"required,max=100"`
	Email     string `csv:"email"      validate:"omitempty,email,max=100"`
	Phone     string `csv:"phone"      validate:"omitempty,max=20"`
}

func (r *ImportGuestRow) ToModel(eventID, user string) model.Guest {
	req := CreateGuestRequest{
		EventID:   eventID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
	}

	return req.ToModel(user)
}

type UpdateGuestRequest struct {
	FirstName string `db:"first_name" json:"first_name" validate:"omitempty,max=100"`
	LastName  string `db:"last_name"  json:"last_name"  validate:"omitempty,max=100"`
	Email     string `db:"email"      json:"email"      validate:"omitempty,email,max=100"`
	Phone     string `db:"phone"      json:"phone"      validate:"omitempty,max=20"`
}

type SaveTheDateRequest struct {
	Response string `json:"response" validate:"required,oneof=yes no"`
}

// SubmitRSVPRequest is the public token-gated RSVP submission. Meal
// selections are mandatory only when the status is confirmed; the
// service clears them when declined.
type SubmitRSVPRequest struct {
	Status                 string  `json:"status"                    validate:"required,oneof=confirmed declined maybe"`
	StarterSelection       *string `json:"starter_selection"         validate:"omitempty,max=200"`
	MainSelection          *string `json:"main_selection"            validate:"omitempty,max=200"`
	DessertSelection       *string `json:"dessert_selection"         validate:"omitempty,max=200"`
	HasDietaryRequirements bool    `json:"has_dietary_requirements"`
	DietaryRestrictions    *string `json:"dietary_restrictions"      validate:"omitempty,max=500"`
	AllergySeverity        *string `json:"allergy_severity"          validate:"omitempty,oneof=mild moderate severe life_threatening"`
	CanOthersConsumeNearby *bool   `json:"can_others_consume_nearby"`
	DietaryDetails         *string `json:"dietary_details"           validate:"omitempty,max=1000"`
}

type GuestResponse struct {
	ID                     string  `json:"id"`
	EventID                string  `json:"event_id"`
	FirstName              string  `json:"first_name"`
	LastName               string  `json:"last_name"`
	Email                  string  `json:"email"`
	Phone                  string  `json:"phone"`
	Stage                  int     `json:"stage"`
	SaveTheDateResponse    string  `json:"save_the_date_response"`
	RSVPStatus             string  `json:"rsvp_status"`
	InvitationSent         bool    `json:"invitation_sent"`
	StarterSelection       *string `json:"starter_selection"`
	MainSelection          *string `json:"main_selection"`
	DessertSelection       *string `json:"dessert_selection"`
	HasDietaryRequirements bool    `json:"has_dietary_requirements"`
	DietaryRestrictions    *string `json:"dietary_restrictions"`
	AllergySeverity        *string `json:"allergy_severity"`
	CanOthersConsumeNearby *bool   `json:"can_others_consume_nearby"`
	DietaryDetails         *string `json:"dietary_details"`
	TableID                *string `json:"table_id"`
	SeatNumber             *int    `json:"seat_number"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.EventID = model.EventID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Email = model.Email
	r.Phone = model.Phone
	r.Stage = model.Stage
	r.SaveTheDateResponse = model.SaveTheDateResponse
	r.RSVPStatus = model.RSVPStatus
	r.InvitationSent = model.InvitationSent
	r.StarterSelection = model.StarterSelection
	r.MainSelection = model.MainSelection
	r.DessertSelection = model.DessertSelection
	r.HasDietaryRequirements = model.HasDietaryRequirements
	r.DietaryRestrictions = model.DietaryRestrictions
	r.AllergySeverity = model.AllergySeverity
	r.CanOthersConsumeNearby = model.CanOthersConsumeNearby
	r.DietaryDetails = model.DietaryDetails
	r.TableID = model.TableID
	r.SeatNumber = model.SeatNumber
	r.Metadata.FromModel(model.Metadata)
}

// RespondSaveTheDateResponse returns the freshly issued token so the
// planner UI can hand it to the couple; "no" responses carry no token.
type RespondSaveTheDateResponse struct {
	GuestID   string  `json:"guest_id"`
	Stage     int     `json:"stage"`
	RSVPToken *string `json:"rsvp_token,omitempty"`
}

// PublicGuestResponse is the reduced view served on the anonymous RSVP
// page; it never exposes contact details of other guests or seating.
type PublicGuestResponse struct {
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	Stage            int     `json:"stage"`
	RSVPStatus       string  `json:"rsvp_status"`
	StarterSelection *string `json:"starter_selection"`
	MainSelection    *string `json:"main_selection"`
	DessertSelection *string `json:"dessert_selection"`
}

func (r *PublicGuestResponse) FromModel(model model.Guest) {
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Stage = model.Stage
	r.RSVPStatus = model.RSVPStatus
	r.StarterSelection = model.StarterSelection
	r.MainSelection = model.MainSelection
	r.DessertSelection = model.DessertSelection
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}

type ImportGuestsResponse struct {
	Imported int `json:"imported"`
}
