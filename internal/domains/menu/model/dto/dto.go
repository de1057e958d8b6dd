package dto

import (
	"aisle/internal/domains/menu/model"
	"aisle/shared"
	gDto "aisle/shared/dto"
	gModel "aisle/shared/model"
	"aisle/shared/timezone"

	"github.com/google/uuid"
)

type CreateMenuItemRequest struct {
	EventID     string `json:"event_id"    validate:"required"`
	Course      string `json:"course"      validate:"required,max=50"`
	Name        string `json:"name"        validate:"required,max=200"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	OrderIndex  int    `json:"order_index" validate:"min=0"`
}

func (c *CreateMenuItemRequest) ToModel(user string) model.MenuItem {
	return model.MenuItem{
		ID:          uuid.NewString(),
		EventID:     c.EventID,
		Course:      c.Course,
		Name:        c.Name,
		Description: c.Description,
		OrderIndex:  c.OrderIndex,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateMenuItemRequest struct {
	Course      string `db:"course"      json:"course"      validate:"omitempty,max=50"`
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=200"`
	Description string `db:"description" json:"description" validate:"omitempty,max=1000"`
	OrderIndex  *int   `db:"order_index" json:"order_index" validate:"omitempty,min=0"`
}

type MenuItemResponse struct {
	ID          string `json:"id"`
	EventID     string `json:"event_id"`
	Course      string `json:"course"`
	Name        string `json:"name"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index"`
	gDto.Metadata
}

func (r *MenuItemResponse) FromModel(model model.MenuItem) {
	r.ID = model.ID
	r.EventID = model.EventID
	r.Course = model.Course
	r.Name = model.Name
	r.Description = model.Description
	r.OrderIndex = model.OrderIndex
	r.Metadata.FromModel(model.Metadata)
}

type GetMenuItemsResponse struct {
	MenuItems []MenuItemResponse `json:"menu_items"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetMenuItemsResponse) FromModels(models []model.MenuItem, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.MenuItems = make([]MenuItemResponse, len(models))
	for i, mod := range models {
		r.MenuItems[i].FromModel(mod)
	}
}

type CreateDrinkRequest struct {
	EventID  string `json:"event_id" validate:"required"`
	Name     string `json:"name"     validate:"required,max=200"`
	Category string `json:"category" validate:"omitempty,max=50"`
	Corkage  bool   `json:"corkage"`
	Notes    string `json:"notes"    validate:"omitempty,max=1000"`
}

func (c *CreateDrinkRequest) ToModel(user string) model.Drink {
	return model.Drink{
		ID:       uuid.NewString(),
		EventID:  c.EventID,
		Name:     c.Name,
		Category: c.Category,
		Corkage:  c.Corkage,
		Notes:    c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateDrinkRequest struct {
	Name     string `db:"name"     json:"name"     validate:"omitempty,max=200"`
	Category string `db:"category" json:"category" validate:"omitempty,max=50"`
	Corkage  *bool  `db:"corkage"  json:"corkage"`
	Notes    string `db:"notes"    json:"notes"    validate:"omitempty,max=1000"`
}

type DrinkResponse struct {
	ID       string `json:"id"`
	EventID  string `json:"event_id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Corkage  bool   `json:"corkage"`
	Notes    string `json:"notes"`
	gDto.Metadata
}

func (r *DrinkResponse) FromModel(model model.Drink) {
	r.ID = model.ID
	r.EventID = model.EventID
	r.Name = model.Name
	r.Category = model.Category
	r.Corkage = model.Corkage
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetDrinksResponse struct {
	Drinks    []DrinkResponse `json:"drinks"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetDrinksResponse) FromModels(models []model.Drink, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Drinks = make([]DrinkResponse, len(models))
	for i, mod := range models {
		r.Drinks[i].FromModel(mod)
	}
}
