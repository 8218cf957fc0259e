package auth

import (
	"context"

	"github.com/aboldguess/Nichifier/pkg/domain"
)

//go:generate mockgen -package mockauth -source=interface.go -destination=mock/mockauth.go *
type Auth interface {
	// Register creates a new subscriber account and returns it together with
	// a freshly minted token.
	Register(ctx context.Context, email, fullName, password string) (*domain.User, string, error)
	// Login verifies the credentials and returns the user together with a
	// freshly minted token.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	// UserByID fetches the account behind an authenticated request.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	// Promote changes the role of the account identified by email.
	Promote(ctx context.Context, email string, role domain.UserRole) (*domain.User, error)
	// Users lists all registered accounts.
	Users(ctx context.Context) ([]domain.User, error)
}
