package dto

import (
	"aisle/internal/domains/budget/model"
	"aisle/shared"
	gDto "aisle/shared/dto"
	gModel "aisle/shared/model"
	"aisle/shared/timezone"

	"github.com/google/uuid"
)

type CreateBudgetItemRequest struct {
	EventID         string   `json:"event_id" validate:"required"`
	Category        string   `json:"category" validate:"required,max=100"`
	Description     string   `json:"description" validate:"omitempty,max=500"`
	EstimatedAmount float64  `json:"estimated_amount" validate:"min=0"`
	ActualAmount    *float64 `json:"actual_amount" validate:"omitempty,min=0"`
	Paid            bool     `json:"paid"`
	VendorID        *string  `json:"vendor_id" validate:"omitempty"`
}

func (c *CreateBudgetItemRequest) ToModel(user string) model.BudgetItem {
	return model.BudgetItem{
		ID:              uuid.NewString(),
		EventID:         c.EventID,
		Category:        c.Category,
		Description:     c.Description,
		EstimatedAmount: c.EstimatedAmount,
		ActualAmount:    c.ActualAmount,
		Paid:            c.Paid,
		VendorID:        c.VendorID,
		Metadata:        gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBudgetItemRequest struct {
	Category        string   `db:"category" json:"category" validate:"omitempty,max=100"`
	Description     string   `db:"description" json:"description" validate:"omitempty,max=500"`
	EstimatedAmount *float64 `db:"estimated_amount" json:"estimated_amount" validate:"omitempty,min=0"`
	ActualAmount    *float64 `db:"actual_amount" json:"actual_amount" validate:"omitempty,min=0"`
	Paid            *bool    `db:"paid" json:"paid"`
	VendorID        *string  `db:"vendor_id" json:"vendor_id" validate:"omitempty"`
}

type BudgetItemResponse struct {
	ID              string   `json:"id"`
	EventID         string   `json:"event_id"`
	Category        string   `json:"category"`
	Description     string   `json:"description"`
	EstimatedAmount float64  `json:"estimated_amount"`
	ActualAmount    *float64 `json:"actual_amount"`
	Paid            bool     `json:"paid"`
	VendorID        *string  `json:"vendor_id"`
	gDto.Metadata
}

func (r *BudgetItemResponse) FromModel(model model.BudgetItem) {
	r.ID = model.ID
	r.EventID = model.EventID
	r.Category = model.Category
	r.Description = model.Description
	r.EstimatedAmount = model.EstimatedAmount
	r.ActualAmount = model.ActualAmount
	r.Paid = model.Paid
	r.VendorID = model.VendorID
	r.Metadata.FromModel(model.Metadata)
}

type GetBudgetItemsResponse struct {
	BudgetItems []BudgetItemResponse `json:"budget_items"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetBudgetItemsResponse) FromModels(models []model.BudgetItem, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.BudgetItems = make([]BudgetItemResponse, len(models))
	for i, mod := range models {
		r.BudgetItems[i].FromModel(mod)
	}
}
