package dto

import (
	"aisle/internal/domains/website/model"
	gDto "aisle/shared/dto"
	gModel "aisle/shared/model"
	"aisle/shared/timezone"

	"github.com/google/uuid"
)

type CreateWebsiteRequest struct {
	EventID        string `json:"event_id"        validate:"required"`
	Slug           string `json:"slug"            validate:"required,min=3,max=100,slug"`
	WelcomeMessage string `json:"welcome_message" validate:"omitempty,max=2000"`
	StoryContent   string `json:"story_content"   validate:"omitempty,max=10000"`
	VenueDetails   string `json:"venue_details"   validate:"omitempty,max=5000"`
	TravelInfo     string `json:"travel_info"     validate:"omitempty,max=5000"`
	DressCode      string `json:"dress_code"      validate:"omitempty,max=500"`
}

func (c *CreateWebsiteRequest) ToModel(user string) model.WeddingWebsite {
	return model.WeddingWebsite{
		ID:             uuid.NewString(),
		EventID:        c.EventID,
		Slug:           c.Slug,
		WelcomeMessage: c.WelcomeMessage,
		StoryContent:   c.StoryContent,
		VenueDetails:   c.VenueDetails,
		TravelInfo:     c.TravelInfo,
		DressCode:      c.DressCode,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateWebsiteRequest struct {
	Slug           string `db:"slug"            json:"slug"            validate:"omitempty,min=3,max=100,slug"`
	Published      *bool  `db:"published"       json:"published"`
	WelcomeMessage string `db:"welcome_message" json:"welcome_message" validate:"omitempty,max=2000"`
	StoryContent   string `db:"story_content"   json:"story_content"   validate:"omitempty,max=10000"`
	VenueDetails   string `db:"venue_details"   json:"venue_details"   validate:"omitempty,max=5000"`
	TravelInfo     string `db:"travel_info"     json:"travel_info"     validate:"omitempty,max=5000"`
	DressCode      string `db:"dress_code"      json:"dress_code"      validate:"omitempty,max=500"`
}

type WebsiteResponse struct {
	ID             string `json:"id"`
	EventID        string `json:"event_id"`
	Slug           string `json:"slug"`
	Published      bool   `json:"published"`
	WelcomeMessage string `json:"welcome_message"`
	StoryContent   string `json:"story_content"`
	VenueDetails   string `json:"venue_details"`
	TravelInfo     string `json:"travel_info"`
	DressCode      string `json:"dress_code"`
	gDto.Metadata
}

func (r *WebsiteResponse) FromModel(model model.WeddingWebsite) {
	r.ID = model.ID
	r.EventID = model.EventID
	r.Slug = model.Slug
	r.Published = model.Published
	r.WelcomeMessage = model.WelcomeMessage
	r.StoryContent = model.StoryContent
	r.VenueDetails = model.VenueDetails
	r.TravelInfo = model.TravelInfo
	r.DressCode = model.DressCode
	r.Metadata.FromModel(model.Metadata)
}

type AddRegistryLinkRequest struct {
	Title      string `json:"title"       validate:"required,max=200"`
	URL        string `json:"url"         validate:"required,url,max=500"`
	OrderIndex int    `json:"order_index" validate:"min=0"`
}

type AddFAQItemRequest struct {
	Question   string `json:"question"    validate:"required,max=500"`
	Answer     string `json:"answer"      validate:"required,max=5000"`
	OrderIndex int    `json:"order_index" validate:"min=0"`
}

type AddPhotoRequest struct {
	URL        string `json:"url"         validate:"required,url,max=500"`
	Caption    string `json:"caption"     validate:"omitempty,max=500"`
	OrderIndex int    `json:"order_index" validate:"min=0"`
}

type RegistryLinkResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	OrderIndex int    `json:"order_index"`
}

func (r *RegistryLinkResponse) FromModel(model model.RegistryLink) {
	r.ID = model.ID
	r.Title = model.Title
	r.URL = model.URL
	r.OrderIndex = model.OrderIndex
}

type FAQItemResponse struct {
	ID         string `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	OrderIndex int    `json:"order_index"`
}

func (r *FAQItemResponse) FromModel(model model.FAQItem) {
	r.ID = model.ID
	r.Question = model.Question
	r.Answer = model.Answer
	r.OrderIndex = model.OrderIndex
}

type PhotoResponse struct {
	ID         string `json:"id"`
	URL        string `json:"url"`
	Caption    string `json:"caption"`
	OrderIndex int    `json:"order_index"`
}

func (r *PhotoResponse) FromModel(model model.WebsitePhoto) {
	r.ID = model.ID
	r.URL = model.URL
	r.Caption = model.Caption
	r.OrderIndex = model.OrderIndex
}

// PublicWebsiteResponse is the anonymous view served by slug: the site
// content with its children, without event internals or metadata.
type PublicWebsiteResponse struct {
	Slug           string                 `json:"slug"`
	WelcomeMessage string                 `json:"welcome_message"`
	StoryContent   string                 `json:"story_content"`
	VenueDetails   string                 `json:"venue_details"`
	TravelInfo     string                 `json:"travel_info"`
	DressCode      string                 `json:"dress_code"`
	RegistryLinks  []RegistryLinkResponse `json:"registry_links"`
	FAQItems       []FAQItemResponse      `json:"faq_items"`
	Photos         []PhotoResponse        `json:"photos"`
}

func (r *PublicWebsiteResponse) FromModels(site model.WeddingWebsite, links []model.RegistryLink, faqs []model.FAQItem, photos []model.WebsitePhoto) {
	r.Slug = site.Slug
	r.WelcomeMessage = site.WelcomeMessage
	r.StoryContent = site.StoryContent
	r.VenueDetails = site.VenueDetails
	r.TravelInfo = site.TravelInfo
	r.DressCode = site.DressCode

	r.RegistryLinks = make([]RegistryLinkResponse, len(links))
	for i, link := range links {
		r.RegistryLinks[i].FromModel(link)
	}

	r.FAQItems = make([]FAQItemResponse, len(faqs))
	for i, faq := range faqs {
		r.FAQItems[i].FromModel(faq)
	}

	r.Photos = make([]PhotoResponse, len(photos))
	for i, photo := range photos {
		r.Photos[i].FromModel(photo)
	}
}

// WebsiteDetailResponse is the authenticated editor view.
type WebsiteDetailResponse struct {
	WebsiteResponse
	RegistryLinks []RegistryLinkResponse `json:"registry_links"`
	FAQItems      []FAQItemResponse      `json:"faq_items"`
	Photos        []PhotoResponse        `json:"photos"`
}
