package dto

import (
	"aisle/internal/domains/employee/model"
	"aisle/shared"
	gDto "aisle/shared/dto"
	gModel "aisle/shared/model"
	"aisle/shared/timezone"

	"github.com/google/uuid"
)

type CreateEmployeeRequest struct {
	Email    string `json:"email"    validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name"     validate:"required,max=200"`
	Role     string `json:"role"     validate:"omitempty,max=50"`
}

func (c *CreateEmployeeRequest) ToModel(tenantID, user, passwordHash string) model.Employee {
	return model.Employee{
		ID:           uuid.NewString(),
		TenantID:     tenantID,
		Email:        c.Email,
		PasswordHash: passwordHash,
		Name:         c.Name,
		Role:         c.Role,
		Active:       true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateEmployeeRequest struct {
	Name   string `db:"name"   json:"name"   validate:"omitempty,max=200"`
	Role   string `db:"role"   json:"role"   validate:"omitempty,max=50"`
	Active *bool  `db:"active" json:"active"`
}

type EmployeeResponse struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
	gDto.Metadata
}

func (r *EmployeeResponse) FromModel(model model.Employee) {
	r.ID = model.ID
	r.TenantID = model.TenantID
	r.Email = model.Email
	r.Name = model.Name
	r.Role = model.Role
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetEmployeesResponse) FromModels(models []model.Employee, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Employees = make([]EmployeeResponse, len(models))
	for i, mod := range models {
		r.Employees[i].FromModel(mod)
	}
}
