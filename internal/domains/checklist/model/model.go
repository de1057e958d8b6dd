package model

import (
	"time"

	"aisle/shared/model"
)

const (
	TableName  = "checklist_items"
	EntityName = "checklist_item"

	FieldID      = "id"
	FieldEventID = "event_id"
)

type ChecklistItem struct {
	ID          string     `db:"id"`
	EventID     string     `db:"event_id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	DueDate     *time.Time `db:"due_date"`
	Completed   bool       `db:"completed"`
	AssignedTo  string     `db:"assigned_to"`
	model.Metadata
}
