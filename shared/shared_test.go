package shared_test

import (
	"reflect"
	"testing"
	"time"

	"aisle/shared"
	"aisle/shared/constant"
	"aisle/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "valid 1 string",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "valid 0 string",
			input:    "0",
			expected: boolPtr(false),
		},
		{
			name:     "valid t string",
			input:    "t",
			expected: boolPtr(true),
		},
		{
			name:     "valid f string",
			input:    "f",
			expected: boolPtr(false),
		},
		{
			name:     "valid TRUE string",
			input:    "TRUE",
			expected: boolPtr(true),
		},
		{
			name:     "valid FALSE string",
			input:    "FALSE",
			expected: boolPtr(false),
		},
		{
			name:     "invalid string returns nil",
			input:    "invalid",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}
			} else {
				if result == nil {
					t.Errorf("expected %v, got nil", *tt.expected)
				} else if *result != *tt.expected {
					t.Errorf("expected %v, got %v", *tt.expected, *result)
				}
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 1",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "negative limit returns 1",
			total:    100,
			limit:    -5,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "division with remainder",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "limit greater than total",
			total:    5,
			limit:    10,
			expected: 1,
		},
		{
			name:     "large numbers",
			total:    1000000,
			limit:    7,
			expected: 142858,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type TestStruct struct {
		ID         int    `db:"id"`
		Name       string `db:"name"`
		Email      string `db:"email"`
		EmptyField string `db:"empty_field"`
		NoDBTag    string
		NoTagField string `db:""`
	}

	tests := []struct {
		name     string
		data     interface{}
		username string
		expected map[string]any
	}{
		{
			name: "struct with populated fields",
			data: TestStruct{
				ID:         1,
				Name:       "John Doe",
				Email:      "john@example.com",
				EmptyField: "",
				NoDBTag:    "ignored",
				NoTagField: "ignored",
			},
			username: "testuser",
			expected: map[string]any{
				"id":    1,
				"name":  "John Doe",
				"email": "john@example.com",
			},
		},
		{
			name:     "struct with all zero values",
			data:     TestStruct{},
			username: "testuser",
			expected: map[string]any{},
		},
		{
			name: "struct with partial fields",
			data: TestStruct{
				Name: "Jane Doe",
			},
			username: "admin",
			expected: map[string]any{
				"name": "Jane Doe",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.data, tt.username)

			if result[constant.FieldModifiedAt] == nil {
				t.Error("expected modified_at to be set")
			}
			if result[constant.FieldModifiedBy] != tt.username {
				t.Errorf("expected modified_by to be %s, got %v", tt.username, result[constant.FieldModifiedBy])
			}

			if _, ok := result[constant.FieldModifiedAt].(time.Time); !ok {
				t.Error("expected modified_at to be a time.Time")
			}

			for key, expectedValue := range tt.expected {
				if actualValue, exists := result[key]; !exists {
					t.Errorf("expected field %s to exist", key)
				} else if !reflect.DeepEqual(actualValue, expectedValue) {
					t.Errorf("expected field %s to be %v, got %v", key, expectedValue, actualValue)
				}
			}

			for key := range result {
				if key == constant.FieldModifiedAt || key == constant.FieldModifiedBy {
					continue
				}
				if _, expected := tt.expected[key]; !expected {
					t.Errorf("unexpected field %s in result", key)
				}
			}
		})
	}
}

func TestTransformFieldsWithPointers(t *testing.T) {
	type TestStructWithPointers struct {
		ID    *int    `db:"id"`
		Name  *string `db:"name"`
		Count *int    `db:"count"`
	}

	name := "John"
	count := 0 // a non-nil pointer to zero is still an update

	data := TestStructWithPointers{
		ID:    intPtr(1),
		Name:  &name,
		Count: &count,
	}

	result := shared.TransformFields(data, "testuser")

	// Pointer fields are dereferenced so the driver writes the value.
	expectedFields := map[string]any{
		"id":    1,
		"name":  "John",
		"count": 0,
	}

	for key, expectedValue := range expectedFields {
		if actualValue, exists := result[key]; !exists {
			t.Errorf("expected field %s to exist", key)
		} else if !reflect.DeepEqual(actualValue, expectedValue) {
			t.Errorf("expected field %s to be %v, got %v", key, expectedValue, actualValue)
		}
	}
}

func TestFilterByID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		fieldID string
		table   string
	}{
		{
			name:    "basic filter by id",
			id:      "123",
			fieldID: "guest_id",
			table:   "guests",
		},
		{
			name:    "filter with empty table",
			id:      "456",
			fieldID: "id",
			table:   "",
		},
		{
			name:    "filter with uuid",
			id:      "550e8400-e29b-41d4-a716-446655440000",
			fieldID: "id",
			table:   "events",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.FilterByID(tt.id, tt.fieldID, tt.table)

			if len(result.Filters) != 1 {
				t.Fatalf("expected 1 filter, got %d", len(result.Filters))
			}

			filter, ok := result.Filters[0].(dto.Filter)
			if !ok {
				t.Fatal("expected filter to be of type dto.Filter")
			}

			if filter.Field != tt.fieldID {
				t.Errorf("expected field to be %s, got %s", tt.fieldID, filter.Field)
			}

			if filter.Value != tt.id {
				t.Errorf("expected value to be %s, got %v", tt.id, filter.Value)
			}

			if filter.Operator != dto.FilterOperatorEq {
				t.Errorf("expected operator to be %s, got %s", dto.FilterOperatorEq, filter.Operator)
			}

			if filter.Table != tt.table {
				t.Errorf("expected table to be %s, got %s", tt.table, filter.Table)
			}
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{
			name:     "prefix only",
			prefix:   "guest",
			parts:    nil,
			expected: "guest",
		},
		{
			name:     "single part",
			prefix:   "guest",
			parts:    []string{"guest-id"},
			expected: "guest:guest-id",
		},
		{
			name:     "multiple parts",
			prefix:   "guest:stats",
			parts:    []string{"event-id", "v2"},
			expected: "guest:stats:event-id:v2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.BuildCacheKey(tt.prefix, tt.parts...)
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	filter := shared.FilterByID("event-id", "event_id", "guests")

	first := shared.BuildCacheKeyWithQuery("guest:all", params, filter)
	second := shared.BuildCacheKeyWithQuery("guest:all", params, filter)

	if first != second {
		t.Errorf("expected identical keys for identical queries, got %s and %s", first, second)
	}

	otherFilter := shared.FilterByID("other-event", "event_id", "guests")

	different := shared.BuildCacheKeyWithQuery("guest:all", params, otherFilter)
	if first == different {
		t.Errorf("expected distinct keys for distinct filters, got %s twice", first)
	}

	otherParams := dto.QueryParams{Page: 2, Limit: 10}

	paged := shared.BuildCacheKeyWithQuery("guest:all", otherParams, filter)
	if first == paged {
		t.Errorf("expected distinct keys for distinct pages, got %s twice", first)
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(i int) *int {
	return &i
}
