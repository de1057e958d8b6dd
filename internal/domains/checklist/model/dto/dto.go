package dto

import (
	"time"

	"aisle/internal/domains/checklist/model"
	"aisle/shared"
	gDto "aisle/shared/dto"
	gModel "aisle/shared/model"
	"aisle/shared/timezone"

	"github.com/google/uuid"
)

type CreateChecklistItemRequest struct {
	EventID     string     `json:"event_id" validate:"required"`
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"omitempty,max=1000"`
	DueDate     *time.Time `json:"due_date" validate:"omitempty"`
	Completed   bool       `json:"completed"`
	AssignedTo  string     `json:"assigned_to" validate:"omitempty,max=100"`
}

func (c *CreateChecklistItemRequest) ToModel(user string) model.ChecklistItem {
	return model.ChecklistItem{
		ID:          uuid.NewString(),
		EventID:     c.EventID,
		Title:       c.Title,
		Description: c.Description,
		DueDate:     c.DueDate,
		Completed:   c.Completed,
		AssignedTo:  c.AssignedTo,
		Metadata:    gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateChecklistItemRequest struct {
	Title       string     `db:"title" json:"title" validate:"omitempty,max=200"`
	Description string     `db:"description" json:"description" validate:"omitempty,max=1000"`
	DueDate     *time.Time `db:"due_date" json:"due_date" validate:"omitempty"`
	Completed   *bool      `db:"completed" json:"completed"`
	AssignedTo  string     `db:"assigned_to" json:"assigned_to" validate:"omitempty,max=100"`
}

type ChecklistItemResponse struct {
	ID          string     `json:"id"`
	EventID     string     `json:"event_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Completed   bool       `json:"completed"`
	AssignedTo  string     `json:"assigned_to"`
	gDto.Metadata
}

func (r *ChecklistItemResponse) FromModel(model model.ChecklistItem) {
	r.ID = model.ID
	r.EventID = model.EventID
	r.Title = model.Title
	r.Description = model.Description
	r.DueDate = model.DueDate
	r.Completed = model.Completed
	r.AssignedTo = model.AssignedTo
	r.Metadata.FromModel(model.Metadata)
}

type GetChecklistItemsResponse struct {
	ChecklistItems []ChecklistItemResponse `json:"checklist_items"`
	TotalPage      int                     `json:"total_page"`
	TotalData      int                     `json:"total_data"`
}

func (r *GetChecklistItemsResponse) FromModels(models []model.ChecklistItem, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.ChecklistItems = make([]ChecklistItemResponse, len(models))
	for i, mod := range models {
		r.ChecklistItems[i].FromModel(mod)
	}
}
