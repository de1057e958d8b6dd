package model

import (
	"time"

	"aisle/shared/model"
)

const (
	TableName  = "timeline_items"
	EntityName = "timeline_item"

	FieldID      = "id"
	FieldEventID = "event_id"
)

type TimelineItem struct {
	ID         string     `db:"id"`
	EventID    string     `db:"event_id"`
	Title      string     `db:"title"`
	StartsAt   time.Time  `db:"starts_at"`
	EndsAt     *time.Time `db:"ends_at"`
	Location   string     `db:"location"`
	Notes      string     `db:"notes"`
	OrderIndex int        `db:"order_index"`
	model.Metadata
}
