package model

import (
	"aisle/shared/model"
)

const (
	MenuItemTableName  = "menu_items"
	MenuItemEntityName = "menu_item"

	DrinkTableName  = "drinks"
	DrinkEntityName = "drink"
)

const (
	FieldID      = "id"
	FieldEventID = "event_id"
	FieldCourse  = "course"
)

type MenuItem struct {
	ID          string `db:"id"`
	EventID     string `db:"event_id"`
	Course      string `db:"course"`
	Name        string `db:"name"`
	Description string `db:"description"`
	OrderIndex  int    `db:"order_index"`
	model.Metadata
}

// Drink is a beverage on the event's drink list. Corkage marks bottles
// the couple brings themselves.
type Drink struct {
	ID       string `db:"id"`
	EventID  string `db:"event_id"`
	Name     string `db:"name"`
	Category string `db:"category"`
	Corkage  bool   `db:"corkage"`
	Notes    string `db:"notes"`
	model.Metadata
}
