package model

import (
	"aisle/shared/model"
)

const (
	FloorPlanTableName  = "floor_plans"
	FloorPlanEntityName = "floor_plan"

	TableTableName  = "tables"
	TableEntityName = "table"

	SeatTableName  = "seats"
	SeatEntityName = "seat"
)

const (
	FieldID          = "id"
	FieldEventID     = "event_id"
	FieldFloorPlanID = "floor_plan_id"
	FieldName        = "name"
	FieldMode        = "mode"
	FieldTableType   = "table_type"
	FieldSeatCount   = "seat_count"
	FieldGuestID     = "guest_id"
	FieldLabel       = "label"
)

// FloorPlan is one seating canvas of an event, either the ceremony or
// the reception layout. Reception plans hold tables, ceremony plans
// hold freestanding seats.
type FloorPlan struct {
	ID      string `db:"id"`
	EventID string `db:"event_id"`
	Name    string `db:"name"`
	Mode    string `db:"mode"`
	model.Metadata
}

// Table is a reception table. Guests reference it directly and hold a
// dense seat_number within its capacity.
type Table struct {
	ID          string  `db:"id"`
	FloorPlanID string  `db:"floor_plan_id"`
	Name        string  `db:"name"`
	TableType   string  `db:"table_type"`
	SeatCount   int     `db:"seat_count"`
	PosX        float64 `db:"pos_x"`
	PosY        float64 `db:"pos_y"`
	Rotation    float64 `db:"rotation"`
	model.Metadata
}

// TableWithEvent joins a table to the event owning its floor plan so
// assignment checks need a single read.
type TableWithEvent struct {
	Table
	EventID string `db:"event_id"`
}

// Seat is a freestanding ceremony seat. GuestID is its claim; the
// column is unique so one guest never holds two seats.
type Seat struct {
	ID          string  `db:"id"`
	FloorPlanID string  `db:"floor_plan_id"`
	Label       string  `db:"label"`
	RowPos      int     `db:"row_pos"`
	ColPos      int     `db:"col_pos"`
	GuestID     *string `db:"guest_id"`
	model.Metadata
}

type SeatWithEvent struct {
	Seat
	EventID string `db:"event_id"`
	Mode    string `db:"mode"`
}
