package model

import (
	"aisle/shared/model"
)

const (
	TableName  = "event_permissions"
	EntityName = "permission"

	FieldEventID          = "event_id"
	FieldGuestListEnabled = "guest_list_enabled"
	FieldSeatingEnabled   = "seating_enabled"
	FieldTimelineEnabled  = "timeline_enabled"
	FieldMenuEnabled      = "menu_enabled"
	FieldNotesEnabled     = "notes_enabled"
	FieldHotelEnabled     = "hotel_enabled"
	FieldWebsiteEnabled   = "website_enabled"
)

// Permissions is the per-event couple-portal section gate. One row per
// event, created together with the event, every section enabled by
// default.
type Permissions struct {
	EventID          string `db:"event_id"`
	GuestListEnabled bool   `db:"guest_list_enabled"`
	SeatingEnabled   bool   `db:"seating_enabled"`
	TimelineEnabled  bool   `db:"timeline_enabled"`
	MenuEnabled      bool   `db:"menu_enabled"`
	NotesEnabled     bool   `db:"notes_enabled"`
	HotelEnabled     bool   `db:"hotel_enabled"`
	WebsiteEnabled   bool   `db:"website_enabled"`
	model.Metadata
}

// Defaults returns the permission row written when an event is created.
func Defaults(eventID string, meta model.Metadata) Permissions {
	return Permissions{
		EventID:          eventID,
		GuestListEnabled: true,
		SeatingEnabled:   true,
		TimelineEnabled:  true,
		MenuEnabled:      true,
		NotesEnabled:     true,
		HotelEnabled:     true,
		WebsiteEnabled:   true,
		Metadata:         meta,
	}
}

// SectionEnabled reports whether the named couple-portal section is
// visible. Unknown sections are treated as enabled so new resources do
// not lock couples out before a migration adds their flag.
func (p Permissions) SectionEnabled(section string) bool {
	switch section {
	case "guest_list":
		return p.GuestListEnabled
	case "seating":
		return p.SeatingEnabled
	case "timeline":
		return p.TimelineEnabled
	case "menu":
		return p.MenuEnabled
	case "notes":
		return p.NotesEnabled
	case "hotel":
		return p.HotelEnabled
	case "website":
		return p.WebsiteEnabled
	default:
		return true
	}
}
