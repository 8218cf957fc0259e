package storage

import (
	"context"

	"github.com/aboldguess/Nichifier/pkg/domain"
)

// UserUpdates describes optional fields applied to an existing user. Only
// non-nil fields are changed; updated_at is always set.
type UserUpdates struct {
	// FullName replaces the display name when provided.
	FullName *string
	// PasswordHash replaces the stored credential hash when provided.
	PasswordHash *string
	// Role replaces the user's role when provided.
	Role *domain.UserRole
	// Premium replaces the premium flag when provided.
	Premium *bool
}

// UserStorage defines persistence operations for user accounts.
type UserStorage interface {
	// StoreUser inserts a new user and returns the stored row including
	// generated fields. A duplicate email surfaces as ErrDuplicate.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByID fetches a user by ID. Returns nil when not found.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	// UserByEmail fetches a user by their unique email. Returns nil when not
	// found.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	// UpdateUser applies the provided field set to a user and returns the
	// updated row, or nil when the user does not exist.
	UpdateUser(ctx context.Context, id domain.UserID, updates UserUpdates) (*domain.User, error)
	// Users returns all users ordered by creation time ascending.
	Users(ctx context.Context) ([]domain.User, error)
}
