package model

import (
	"time"

	"aisle/shared/model"
)

const (
	TableName  = "accommodations"
	EntityName = "accommodation"

	FieldID      = "id"
	FieldEventID = "event_id"
)

type Accommodation struct {
	ID            string     `db:"id"`
	EventID       string     `db:"event_id"`
	Name          string     `db:"name"`
	Address       string     `db:"address"`
	RoomBlockCode string     `db:"room_block_code"`
	CheckIn       *time.Time `db:"check_in"`
	CheckOut      *time.Time `db:"check_out"`
	Notes         string     `db:"notes"`
	BookingURL    string     `db:"booking_url"`
	model.Metadata
}
