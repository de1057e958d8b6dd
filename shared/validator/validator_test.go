package validator_test

import (
	"strings"
	"testing"

	"aisle/shared/token"
	"aisle/shared/validator"
)

type ValidTestStruct struct {
	Name     string `validate:"required"                     json:"name"`
	Email    string `validate:"required,email"               json:"email"`
	Party    int    `validate:"gte=1,lte=20"                 json:"party"`
	Category string `validate:"oneof=family friends coworkers" json:"category"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *ValidTestStruct
		expectError bool
	}{
		{
			name: "valid struct",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Party:    2,
				Category: "family",
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &ValidTestStruct{
				Email:    "john@example.com",
				Party:    2,
				Category: "family",
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "invalid-email",
				Party:    2,
				Category: "family",
			},
			expectError: true,
		},
		{
			name: "party size out of range",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Party:    50,
				Category: "family",
			},
			expectError: true,
		},
		{
			name: "invalid category",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Party:    2,
				Category: "invalid",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "test",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "valid email",
			field:       "test@example.com",
			tag:         "email",
			expectError: false,
		},
		{
			name:        "invalid email",
			field:       "invalid-email",
			tag:         "email",
			expectError: true,
		},
		{
			name:        "valid number in range",
			field:       5,
			tag:         "gte=0,lte=100",
			expectError: false,
		},
		{
			name:        "number out of range",
			field:       150,
			tag:         "gte=0,lte=100",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"name":"John Doe","email":"john@example.com","party":2,"category":"family"}`,
			expectError: false,
		},
		{
			name:        "invalid JSON",
			jsonBody:    `{"name":"John Doe","email":"invalid-email","party":2,"category":"family"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"name":"John Doe","email":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)
			var data ValidTestStruct
			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestRSVPTokenValidator(t *testing.T) {
	validToken, err := token.NewRSVPToken()
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	tests := []struct {
		name        string
		value       string
		expectError bool
	}{
		{
			name:        "issued token",
			value:       validToken,
			expectError: false,
		},
		{
			name:        "missing prefix",
			value:       strings.Repeat("ab", 24),
			expectError: true,
		},
		{
			name:        "truncated token",
			value:       validToken[:len(validToken)-2],
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.value, "rsvptoken")

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestSlugValidator(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		expectError bool
	}{
		{
			name:        "simple slug",
			value:       "a-and-b-wedding",
			expectError: false,
		},
		{
			name:        "slug with digits",
			value:       "wedding-2026",
			expectError: false,
		},
		{
			name:        "single word",
			value:       "wedding",
			expectError: false,
		},
		{
			name:        "uppercase rejected",
			value:       "Wedding-2026",
			expectError: true,
		},
		{
			name:        "leading hyphen rejected",
			value:       "-wedding",
			expectError: true,
		},
		{
			name:        "trailing hyphen rejected",
			value:       "wedding-",
			expectError: true,
		},
		{
			name:        "double hyphen rejected",
			value:       "a--b",
			expectError: true,
		},
		{
			name:        "spaces rejected",
			value:       "a and b",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.value, "slug")

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	data := &ValidTestStruct{}
	err := validator.ValidateStruct(data)

	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	errorMsg := err.Error()

	if !strings.Contains(errorMsg, "required") || errorMsg == "" {
		t.Errorf("expected descriptive error message containing 'required', got: %s", errorMsg)
	}
}
