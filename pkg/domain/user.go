package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// String returns the canonical UUID form of the ID.
func (id UserID) String() string { return uuid.UUID(id).String() }

// MarshalText renders the ID as a UUID string, so JSON payloads carry
// "id": "..." rather than the raw byte array.
func (id UserID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText parses a UUID string.
func (id *UserID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// UserRole represents the access level of a user within the platform.
type UserRole string

const (
	// RoleAdmin is the global platform administrator role.
	RoleAdmin UserRole = "admin"
	// RoleNicheAdmin is the role of a curator who owns and manages niches.
	RoleNicheAdmin UserRole = "niche_admin"
	// RoleSubscriber is the default role for registered users.
	RoleSubscriber UserRole = "subscriber"
)

// Valid reports whether the role is one of the known platform roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleNicheAdmin, RoleSubscriber:
		return true
	}

	return false
}

// User represents an authenticated account with role-based access.
type User struct {
	// ID is the unique identifier of the user.
	ID UserID `json:"id"`

	// Email is the unique login identifier.
	Email string `json:"email"`
	// FullName is the display name shown on dashboards.
	FullName string `json:"fullName"`
	// PasswordHash is the bcrypt hash of the user's password. Never serialized.
	PasswordHash string `json:"-"`
	// Role determines which operations the user may perform.
	Role UserRole `json:"role"`
	// Premium is true for users on an active creator plan and for admins.
	Premium bool `json:"premium"`

	// CreatedAt is when the account was registered.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is when the account was last modified.
	UpdatedAt time.Time `json:"updatedAt"`
}
