package token_test

import (
	"strings"
	"testing"

	"aisle/shared/token"
)

func TestNewRSVPToken(t *testing.T) {
	generated, err := token.NewRSVPToken()
	if err != nil {
		t.Fatalf("NewRSVPToken() failed: %v", err)
	}

	if !strings.HasPrefix(generated, token.RSVPPrefix) {
		t.Errorf("expected token to start with %q, got %s", token.RSVPPrefix, generated)
	}

	if len(generated) != len(token.RSVPPrefix)+48 {
		t.Errorf("expected token length %d, got %d", len(token.RSVPPrefix)+48, len(generated))
	}

	if !token.IsRSVPToken(generated) {
		t.Errorf("expected generated token to pass IsRSVPToken, got %s", generated)
	}
}

func TestNewRSVPTokenUniqueness(t *testing.T) {
	seen := make(map[string]bool)

	for range 100 {
		generated, err := token.NewRSVPToken()
		if err != nil {
			t.Fatalf("NewRSVPToken() failed: %v", err)
		}

		if seen[generated] {
			t.Fatalf("duplicate token generated: %s", generated)
		}

		seen[generated] = true
	}
}

func TestIsRSVPToken(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{
			name:     "well formed token",
			value:    token.RSVPPrefix + strings.Repeat("ab", 24),
			expected: true,
		},
		{
			name:     "missing prefix",
			value:    strings.Repeat("ab", 24),
			expected: false,
		},
		{
			name:     "wrong prefix",
			value:    "token_" + strings.Repeat("ab", 24),
			expected: false,
		},
		{
			name:     "body too short",
			value:    token.RSVPPrefix + strings.Repeat("ab", 23),
			expected: false,
		},
		{
			name:     "body too long",
			value:    token.RSVPPrefix + strings.Repeat("ab", 25),
			expected: false,
		},
		{
			name:     "non hex body",
			value:    token.RSVPPrefix + strings.Repeat("zz", 24),
			expected: false,
		},
		{
			name:     "empty string",
			value:    "",
			expected: false,
		},
		{
			name:     "prefix only",
			value:    token.RSVPPrefix,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := token.IsRSVPToken(tt.value); got != tt.expected {
				t.Errorf("IsRSVPToken(%q) = %v, expected %v", tt.value, got, tt.expected)
			}
		})
	}
}
