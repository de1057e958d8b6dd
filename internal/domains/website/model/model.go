package model

import (
	"aisle/shared/model"
)

const (
	WebsiteTableName  = "wedding_websites"
	WebsiteEntityName = "wedding_website"

	RegistryLinkTableName  = "registry_links"
	RegistryLinkEntityName = "registry_link"

	FAQItemTableName  = "faq_items"
	FAQItemEntityName = "faq_item"

	PhotoTableName  = "website_photos"
	PhotoEntityName = "website_photo"
)

const (
	FieldID        = "id"
	FieldEventID   = "event_id"
	FieldWebsiteID = "website_id"
	FieldSlug      = "slug"
	FieldPublished = "published"
)

// WeddingWebsite is the public-facing site of one event, addressed by
// its unique slug. Only published sites are served anonymously.
type WeddingWebsite struct {
	ID             string `db:"id"`
	EventID        string `db:"event_id"`
	Slug           string `db:"slug"`
	Published      bool   `db:"published"`
	WelcomeMessage string `db:"welcome_message"`
	StoryContent   string `db:"story_content"`
	VenueDetails   string `db:"venue_details"`
	TravelInfo     string `db:"travel_info"`
	DressCode      string `db:"dress_code"`
	model.Metadata
}

type RegistryLink struct {
	ID         string `db:"id"`
	WebsiteID  string `db:"website_id"`
	Title      string `db:"title"`
	URL        string `db:"url"`
	OrderIndex int    `db:"order_index"`
	model.Metadata
}

type FAQItem struct {
	ID         string `db:"id"`
	WebsiteID  string `db:"website_id"`
	Question   string `db:"question"`
	Answer     string `db:"answer"`
	OrderIndex int    `db:"order_index"`
	model.Metadata
}

// WebsitePhoto stores gallery metadata only; the binary lives with an
// external storage collaborator.
type WebsitePhoto struct {
	ID         string `db:"id"`
	WebsiteID  string `db:"website_id"`
	URL        string `db:"url"`
	Caption    string `db:"caption"`
	OrderIndex int    `db:"order_index"`
	model.Metadata
}
