package model

import (
	"aisle/shared/model"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID                  = "id"
	FieldEventID             = "event_id"
	FieldFirstName           = "first_name"
	FieldLastName            = "last_name"
	FieldEmail               = "email"
	FieldPhone               = "phone"
	FieldStage               = "stage"
	FieldSaveTheDateResponse = "save_the_date_response"
	FieldRSVPToken           = "rsvp_token"
	FieldRSVPStatus          = "rsvp_status"
	FieldInvitationSent      = "invitation_sent"
	FieldStarterSelection    = "starter_selection"
	FieldMainSelection       = "main_selection"
	FieldDessertSelection    = "dessert_selection"
	FieldHasDietaryReqs      = "has_dietary_requirements"
	FieldDietaryRestrictions = "dietary_restrictions"
	FieldAllergySeverity     = "allergy_severity"
	FieldCanConsumeNearby    = "can_others_consume_nearby"
	FieldDietaryDetails      = "dietary_details"
	FieldTableID             = "table_id"
	FieldSeatNumber          = "seat_number"
)

// Guest is one invitee of one event. Stage tracks the three-step
// invitation lifecycle (1 save-the-date, 2 RSVP open, 3 finalized) and
// never decreases. RSVPToken is present iff stage >= 2 and is the only
// credential for public self-service RSVP.
type Guest struct {
	ID                     string  `db:"id"`
	EventID                string  `db:"event_id"`
	FirstName              string  `db:"first_name"`
	LastName               string  `db:"last_name"`
	Email                  string  `db:"email"`
	Phone                  string  `db:"phone"`
	Stage                  int     `db:"stage"`
	SaveTheDateResponse    string  `db:"save_the_date_response"`
	RSVPToken              *string `db:"rsvp_token"`
	RSVPStatus             string  `db:"rsvp_status"`
	InvitationSent         bool    `db:"invitation_sent"`
	StarterSelection       *string `db:"starter_selection"`
	MainSelection          *string `db:"main_selection"`
	DessertSelection       *string `db:"dessert_selection"`
	HasDietaryRequirements bool    `db:"has_dietary_requirements"`
	DietaryRestrictions    *string `db:"dietary_restrictions"`
	AllergySeverity        *string `db:"allergy_severity"`
	CanOthersConsumeNearby *bool   `db:"can_others_consume_nearby"`
	DietaryDetails         *string `db:"dietary_details"`
	TableID                *string `db:"table_id"`
	SeatNumber             *int    `db:"seat_number"`
	model.Metadata
}

// Stats is the per-event RSVP summary. Pending counts guests that are
// neither confirmed nor declined yet.
type Stats struct {
	Total     int `db:"total"     json:"total"`
	Confirmed int `db:"confirmed" json:"confirmed"`
	Pending   int `db:"pending"   json:"pending"`
	Declined  int `db:"declined"  json:"declined"`
}
