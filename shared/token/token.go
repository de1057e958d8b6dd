package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	// RSVPPrefix marks a token as an RSVP self-service credential.
	RSVPPrefix = "rsvp_"

	rsvpRandomBytes = 24
)

// NewRSVPToken returns a fresh unguessable RSVP credential of the form
// "rsvp_" followed by 48 hex characters from crypto/rand.
func NewRSVPToken() (string, error) {
	buf := make([]byte, rsvpRandomBytes)

	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate rsvp token: %w", err)
	}

	return RSVPPrefix + hex.EncodeToString(buf), nil
}

// IsRSVPToken reports whether the value has the shape of an issued RSVP
// token. It performs no lookup; use it to short-circuit obviously bad input.
func IsRSVPToken(value string) bool {
	if !strings.HasPrefix(value, RSVPPrefix) {
		return false
	}

	body := strings.TrimPrefix(value, RSVPPrefix)
	if len(body) != rsvpRandomBytes*2 {
		return false
	}

	_, err := hex.DecodeString(body)

	return err == nil
}
