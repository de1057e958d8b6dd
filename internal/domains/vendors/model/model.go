package model

import (
	"aisle/shared/model"
)

const (
	TableName  = "vendors"
	EntityName = "vendor"

	FieldID      = "id"
	FieldEventID = "event_id"
)

type Vendor struct {
	ID          string `db:"id"`
	EventID     string `db:"event_id"`
	Name        string `db:"name"`
	Category    string `db:"category"`
	ContactName string `db:"contact_name"`
	Email       string `db:"email"`
	Phone       string `db:"phone"`
	Website     string `db:"website"`
	Notes       string `db:"notes"`
	model.Metadata
}
