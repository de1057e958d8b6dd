package model

import (
	"time"

	"aisle/shared/model"
)

const (
	TableName  = "events"
	EntityName = "event"

	FieldID             = "id"
	FieldTenantID       = "tenant_id"
	FieldTitle          = "title"
	FieldEventDate      = "event_date"
	FieldPartnerOne     = "partner_one"
	FieldPartnerTwo     = "partner_two"
	FieldStatus         = "status"
	FieldCoupleUsername = "couple_username"
)

// Event is one wedding. It owns every child entity (guests, floor
// plans, menu, budget, website) by foreign key and carries the couple
// portal credentials.
// Accessible reports whether an identity may act on this event:
// employees must belong to the owning tenant, couples must be bound to
// this exact event.
func (e Event) Accessible(role, tenantID, eventID string) bool {
	switch role {
	case "employee":
		return e.TenantID == tenantID
	case "couple":
		return e.ID == eventID
	default:
		return false
	}
}

type Event struct {
	ID                 string    `db:"id"`
	TenantID           string    `db:"tenant_id"`
	Title              string    `db:"title"`
	EventDate          time.Time `db:"event_date"`
	PartnerOne         string    `db:"partner_one"`
	PartnerTwo         string    `db:"partner_two"`
	Status             string    `db:"status"`
	CoupleUsername     string    `db:"couple_username"`
	CouplePasswordHash string    `db:"couple_password_hash"`
	model.Metadata
}
