package model

import (
	"aisle/shared/model"
)

const (
	TableName  = "notes"
	EntityName = "note"

	FieldID      = "id"
	FieldEventID = "event_id"
)

type Note struct {
	ID      string `db:"id"`
	EventID string `db:"event_id"`
	Title   string `db:"title"`
	Content string `db:"content"`
	Pinned  bool   `db:"pinned"`
	model.Metadata
}
