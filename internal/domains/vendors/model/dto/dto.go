package dto

import (
	"aisle/internal/domains/vendors/model"
	"aisle/shared"
	gDto "aisle/shared/dto"
	gModel "aisle/shared/model"
	"aisle/shared/timezone"

	"github.com/google/uuid"
)

type CreateVendorRequest struct {
	EventID     string `json:"event_id" validate:"required"`
	Name        string `json:"name" validate:"required,max=200"`
	Category    string `json:"category" validate:"omitempty,max=100"`
	ContactName string `json:"contact_name" validate:"omitempty,max=200"`
	Email       string `json:"email" validate:"omitempty,email,max=100"`
	Phone       string `json:"phone" validate:"omitempty,max=20"`
	Website     string `json:"website" validate:"omitempty,max=300"`
	Notes       string `json:"notes" validate:"omitempty,max=1000"`
}

func (c *CreateVendorRequest) ToModel(user string) model.Vendor {
	return model.Vendor{
		ID:          uuid.NewString(),
		EventID:     c.EventID,
		Name:        c.Name,
		Category:    c.Category,
		ContactName: c.ContactName,
		Email:       c.Email,
		Phone:       c.Phone,
		Website:     c.Website,
		Notes:       c.Notes,
		Metadata:    gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateVendorRequest struct {
	Name        string `db:"name" json:"name" validate:"omitempty,max=200"`
	Category    string `db:"category" json:"category" validate:"omitempty,max=100"`
	ContactName string `db:"contact_name" json:"contact_name" validate:"omitempty,max=200"`
	Email       string `db:"email" json:"email" validate:"omitempty,email,max=100"`
	Phone       string `db:"phone" json:"phone" validate:"omitempty,max=20"`
	Website     string `db:"website" json:"website" validate:"omitempty,max=300"`
	Notes       string `db:"notes" json:"notes" validate:"omitempty,max=1000"`
}

type VendorResponse struct {
	ID          string `json:"id"`
	EventID     string `json:"event_id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Website     string `json:"website"`
	Notes       string `json:"notes"`
	gDto.Metadata
}

func (r *VendorResponse) FromModel(model model.Vendor) {
	r.ID = model.ID
	r.EventID = model.EventID
	r.Name = model.Name
	r.Category = model.Category
	r.ContactName = model.ContactName
	r.Email = model.Email
	r.Phone = model.Phone
	r.Website = model.Website
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetVendorsResponse struct {
	Vendors   []VendorResponse `json:"vendors"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetVendorsResponse) FromModels(models []model.Vendor, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Vendors = make([]VendorResponse, len(models))
	for i, mod := range models {
		r.Vendors[i].FromModel(mod)
	}
}
