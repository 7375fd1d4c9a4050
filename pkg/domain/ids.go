// Package domain defines the typed entity identifiers shared across services.
//
// Every entity ID is a 24-character lowercase hex string (12 random bytes).
// The distinct types exist so an admin ID can never be passed where a user ID
// is expected; the two identity spaces stay disjoint at compile time.
package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	dErrors "coursebay/pkg/domain-errors"
)

// IDLength is the canonical length of a wire-format entity ID.
const IDLength = 24

type (
	// AdminID identifies an admin account.
	AdminID string
	// UserID identifies a user account.
	UserID string
	// CourseID identifies a course.
	CourseID string
	// PurchaseID identifies a purchase ledger entry.
	PurchaseID string
)

func (id AdminID) String() string    { return string(id) }
func (id UserID) String() string     { return string(id) }
func (id CourseID) String() string   { return string(id) }
func (id PurchaseID) String() string { return string(id) }

func (id AdminID) IsZero() bool    { return id == "" }
func (id UserID) IsZero() bool     { return id == "" }
func (id CourseID) IsZero() bool   { return id == "" }
func (id PurchaseID) IsZero() bool { return id == "" }

// newID returns 12 cryptographically random bytes hex-encoded.
func newID() string {
	buf := make([]byte, IDLength/2)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; treat as fatal.
		panic(fmt.Sprintf("domain: read random bytes: %v", err))
	}
	return hex.EncodeToString(buf)
}

// NewAdminID generates a fresh admin ID.
func NewAdminID() AdminID { return AdminID(newID()) }

// NewUserID generates a fresh user ID.
func NewUserID() UserID { return UserID(newID()) }

// NewCourseID generates a fresh course ID.
func NewCourseID() CourseID { return CourseID(newID()) }

// NewPurchaseID generates a fresh purchase ID.
func NewPurchaseID() PurchaseID { return PurchaseID(newID()) }

// parseID validates the wire format: exactly 24 lowercase hex characters.
// Uppercase input is rejected rather than folded; IDs are produced lowercase
// and must round-trip byte for byte.
func parseID(raw, kind string) (string, error) {
	if raw == "" {
		return "", dErrors.New(dErrors.CodeValidation, kind+" id is required")
	}
	if len(raw) != IDLength {
		return "", dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s id must be %d hex characters", kind, IDLength))
	}
	for _, c := range raw {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return "", dErrors.New(dErrors.CodeValidation, kind+" id must be lowercase hex")
		}
	}
	return raw, nil
}

// ParseAdminID parses and validates an admin ID from its wire format.
func ParseAdminID(raw string) (AdminID, error) {
	id, err := parseID(strings.TrimSpace(raw), "admin")
	if err != nil {
		return "", err
	}
	return AdminID(id), nil
}

// ParseUserID parses and validates a user ID from its wire format.
func ParseUserID(raw string) (UserID, error) {
	id, err := parseID(strings.TrimSpace(raw), "user")
	if err != nil {
		return "", err
	}
	return UserID(id), nil
}

// ParseCourseID parses and validates a course ID from its wire format.
func ParseCourseID(raw string) (CourseID, error) {
	id, err := parseID(strings.TrimSpace(raw), "course")
	if err != nil {
		return "", err
	}
	return CourseID(id), nil
}

// ParsePurchaseID parses and validates a purchase ID from its wire format.
func ParsePurchaseID(raw string) (PurchaseID, error) {
	id, err := parseID(strings.TrimSpace(raw), "purchase")
	if err != nil {
		return "", err
	}
	return PurchaseID(id), nil
}
