package dto

import (
	"aisle/internal/domains/message/model"
	"aisle/shared"
	gDto "aisle/shared/dto"
	gModel "aisle/shared/model"
	"aisle/shared/timezone"

	"github.com/google/uuid"
)

type CreateMessageRequest struct {
	EventID string `json:"event_id" validate:"required"`
	Body    string `json:"body"     validate:"required,max=2000"`
}

func (c *CreateMessageRequest) ToModel(authorID, authorRole string) model.Message {
	return model.Message{
		ID:         uuid.NewString(),
		EventID:    c.EventID,
		AuthorID:   authorID,
		AuthorRole: authorRole,
		Body:       c.Body,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  authorID,
			ModifiedBy: authorID,
		},
	}
}

type MessageResponse struct {
	ID         string `json:"id"`
	EventID    string `json:"event_id"`
	AuthorID   string `json:"author_id"`
	AuthorRole string `json:"author_role"`
	Body       string `json:"body"`
	IsRead     bool   `json:"is_read"`
	gDto.Metadata
}

func (r *MessageResponse) FromModel(model model.Message) {
	r.ID = model.ID
	r.EventID = model.EventID
	r.AuthorID = model.AuthorID
	r.AuthorRole = model.AuthorRole
	r.Body = model.Body
	r.IsRead = model.IsRead
	r.Metadata.FromModel(model.Metadata)
}

type GetMessagesResponse struct {
	Messages  []MessageResponse `json:"messages"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetMessagesResponse) FromModels(models []model.Message, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Messages = make([]MessageResponse, len(models))
	for i, mod := range models {
		r.Messages[i].FromModel(mod)
	}
}
