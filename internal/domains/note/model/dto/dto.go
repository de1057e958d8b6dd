package dto

import (
	"aisle/internal/domains/note/model"
	"aisle/shared"
	gDto "aisle/shared/dto"
	gModel "aisle/shared/model"
	"aisle/shared/timezone"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	EventID string `json:"event_id" validate:"required"`
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"omitempty,max=5000"`
	Pinned  bool   `json:"pinned"`
}

func (c *CreateNoteRequest) ToModel(user string) model.Note {
	return model.Note{
		ID:       uuid.NewString(),
		EventID:  c.EventID,
		Title:    c.Title,
		Content:  c.Content,
		Pinned:   c.Pinned,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateNoteRequest struct {
	Title   string `db:"title" json:"title" validate:"omitempty,max=200"`
	Content string `db:"content" json:"content" validate:"omitempty,max=5000"`
	Pinned  *bool  `db:"pinned" json:"pinned"`
}

type NoteResponse struct {
	ID      string `json:"id"`
	EventID string `json:"event_id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Pinned  bool   `json:"pinned"`
	gDto.Metadata
}

func (r *NoteResponse) FromModel(model model.Note) {
	r.ID = model.ID
	r.EventID = model.EventID
	r.Title = model.Title
	r.Content = model.Content
	r.Pinned = model.Pinned
	r.Metadata.FromModel(model.Metadata)
}

type GetNotesResponse struct {
	Notes     []NoteResponse `json:"notes"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetNotesResponse) FromModels(models []model.Note, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Notes = make([]NoteResponse, len(models))
	for i, mod := range models {
		r.Notes[i].FromModel(mod)
	}
}
