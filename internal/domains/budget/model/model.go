package model

import (
	"aisle/shared/model"
)

const (
	TableName  = "budget_items"
	EntityName = "budget_item"

	FieldID      = "id"
	FieldEventID = "event_id"
)

type BudgetItem struct {
	ID              string   `db:"id"`
	EventID         string   `db:"event_id"`
	Category        string   `db:"category"`
	Description     string   `db:"description"`
	EstimatedAmount float64  `db:"estimated_amount"`
	ActualAmount    *float64 `db:"actual_amount"`
	Paid            bool     `db:"paid"`
	VendorID        *string  `db:"vendor_id"`
	model.Metadata
}
