package dto

import (
	"aisle/infras/jwt"
	employeeModel "aisle/internal/domains/employee/model"
	gModel "aisle/shared/model"
	"aisle/shared/timezone"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name"     validate:"required,max=200"`
}

// ToEmployeeModel creates the first employee of a brand-new tenant.
// Subsequent accounts are created through the employee endpoints and
// inherit the creator's tenant.
func (r *RegisterRequest) ToEmployeeModel(hashedPassword string) employeeModel.Employee {
	id := uuid.NewString()

	return employeeModel.Employee{
		ID:           id,
		TenantID:     uuid.NewString(),
		Email:        r.Email,
		PasswordHash: hashedPassword,
		Name:         r.Name,
		Role:         "admin",
		Active:       true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  id,
			ModifiedBy: id,
		},
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CoupleLoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=72"`
}

type UpdatePasswordRequest struct {
	PasswordHash string `db:"password_hash" json:"-" validate:"required"`
}
