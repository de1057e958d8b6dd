package model

import (
	"aisle/shared/model"
)

const (
	TableName  = "messages"
	EntityName = "message"

	FieldID      = "id"
	FieldEventID = "event_id"
	FieldIsRead  = "is_read"
)

// Message is one entry in the planner-couple conversation thread of an
// event. AuthorRole distinguishes the two sides.
type Message struct {
	ID         string `db:"id"`
	EventID    string `db:"event_id"`
	AuthorID   string `db:"author_id"`
	AuthorRole string `db:"author_role"`
	Body       string `db:"body"`
	IsRead     bool   `db:"is_read"`
	model.Metadata
}
