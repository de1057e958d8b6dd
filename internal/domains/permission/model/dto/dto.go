package dto

import (
	"aisle/internal/domains/permission/model"
	gModel "aisle/shared/model"
	"aisle/shared/timezone"
)

// SetPermissionsRequest overwrites the full section set; there is no
// partial update.
type SetPermissionsRequest struct {
	GuestListEnabled bool `json:"guest_list_enabled"`
	SeatingEnabled   bool `json:"seating_enabled"`
	TimelineEnabled  bool `json:"timeline_enabled"`
	MenuEnabled      bool `json:"menu_enabled"`
	NotesEnabled     bool `json:"notes_enabled"`
	HotelEnabled     bool `json:"hotel_enabled"`
	WebsiteEnabled   bool `json:"website_enabled"`
}

func (r *SetPermissionsRequest) ToModel(eventID, user string) model.Permissions {
	return model.Permissions{
		EventID:          eventID,
		GuestListEnabled: r.GuestListEnabled,
		SeatingEnabled:   r.SeatingEnabled,
		TimelineEnabled:  r.TimelineEnabled,
		MenuEnabled:      r.MenuEnabled,
		NotesEnabled:     r.NotesEnabled,
		HotelEnabled:     r.HotelEnabled,
		WebsiteEnabled:   r.WebsiteEnabled,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type PermissionsResponse struct {
	EventID          string `json:"event_id"`
	GuestListEnabled bool   `json:"guest_list_enabled"`
	SeatingEnabled   bool   `json:"seating_enabled"`
	TimelineEnabled  bool   `json:"timeline_enabled"`
	MenuEnabled      bool   `json:"menu_enabled"`
	NotesEnabled     bool   `json:"notes_enabled"`
	HotelEnabled     bool   `json:"hotel_enabled"`
	WebsiteEnabled   bool   `json:"website_enabled"`
}

func (r *PermissionsResponse) FromModel(model model.Permissions) {
	r.EventID = model.EventID
	r.GuestListEnabled = model.GuestListEnabled
	r.SeatingEnabled = model.SeatingEnabled
	r.TimelineEnabled = model.TimelineEnabled
	r.MenuEnabled = model.MenuEnabled
	r.NotesEnabled = model.NotesEnabled
	r.HotelEnabled = model.HotelEnabled
	r.WebsiteEnabled = model.WebsiteEnabled
}
