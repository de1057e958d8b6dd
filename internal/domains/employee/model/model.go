package model

import (
	"aisle/shared/model"
)

const (
	TableName  = "employees"
	EntityName = "employee"

	FieldID       = "id"
	FieldTenantID = "tenant_id"
	FieldEmail    = "email"
	FieldActive   = "active"
)

// Employee is a planner-side account. Couples never get an employee
// row; their credentials live on the event.
type Employee struct {
	ID           string `db:"id"`
	TenantID     string `db:"tenant_id"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	Name         string `db:"name"`
	Role         string `db:"role"`
	Active       bool   `db:"active"`
	model.Metadata
}
