package auth

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/aboldguess/Nichifier/internal/config"
	"github.com/aboldguess/Nichifier/pkg/domain"
	"github.com/aboldguess/Nichifier/pkg/serrors"
	"github.com/aboldguess/Nichifier/pkg/storage"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Options configure token minting for the auth service.
type Options struct {
	// PrivateKey is the PEM-encoded RSA key used to sign tokens.
	PrivateKey string
	// TokenTTL is the lifetime of freshly issued tokens.
	TokenTTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		PrivateKey: cfg.JWT.PrivateKey,
		TokenTTL:   cfg.JWT.TokenTTL,
	}
}

// auth is the concrete implementation of the Auth interface. It coordinates
// credential storage with token minting.
type auth struct {
	storage  storage.Storage
	tokenTTL time.Duration
	key      *rsa.PrivateKey
}

// New creates a new Auth instance backed by the provided storage. The
// configured private key is parsed once up front.
func New(strg storage.Storage, options Options) (Auth, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(options.PrivateKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA private key: %w", err)
	}

	return &auth{
		storage:  strg,
		tokenTTL: options.TokenTTL,
		key:      key,
	}, nil
}

func validatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return serrors.With(serrors.ErrBadRequest, "password must be at least 8 characters")
	}
	if len(password) > MaxPasswordLength {
		return serrors.With(serrors.ErrBadRequest, "password must be at most 128 characters")
	}

	return nil
}

// Register creates a new subscriber account. Emails are stored lowercased so
// logins are case-insensitive.
func (a auth) Register(ctx context.Context,
	email, fullName, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid email address")
	}
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, "", serrors.With(serrors.ErrBadRequest, "full name is required")
	}
	if err := validatePassword(password); err != nil {
		return nil, "", err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user, err := a.storage.StoreUser(ctx, domain.User{
		Email:        email,
		FullName:     fullName,
		PasswordHash: hash,
		Role:         domain.RoleSubscriber,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, "", serrors.With(serrors.ErrConflict, "email is already registered")
		}

		return nil, "", fmt.Errorf("could not store user: %w", err)
	}

	token, err := a.mintToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login verifies the credentials and mints a token. Lookup and password
// failures are reported identically so the endpoint does not leak which
// accounts exist.
func (a auth) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := a.storage.UserByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user by email: %w", err)
	}
	if user == nil || !VerifyPassword(user.PasswordHash, password) {
		return nil, "", serrors.With(serrors.ErrUnauthorized, "invalid email or password")
	}

	token, err := a.mintToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// UserByID fetches the account behind an authenticated request.
func (a auth) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	user, err := a.storage.UserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get user by id: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}

// Promote changes the role of the account identified by email. Promoting to
// admin or niche_admin also grants the premium flag.
func (a auth) Promote(ctx context.Context,
	email string,
	role domain.UserRole) (*domain.User, error) {
	if !role.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid role")
	}

	email = strings.ToLower(strings.TrimSpace(email))
	user, err := a.storage.UserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("could not get user by email: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	updates := storage.UserUpdates{Role: &role}
	if role == domain.RoleAdmin || role == domain.RoleNicheAdmin {
		premium := true
		updates.Premium = &premium
	}

	updated, err := a.storage.UpdateUser(ctx, user.ID, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update user role: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return updated, nil
}

// Users lists all registered accounts.
func (a auth) Users(ctx context.Context) ([]domain.User, error) {
	users, err := a.storage.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list users: %w", err)
	}

	return users, nil
}

func (a auth) mintToken(userID domain.UserID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   uuid.UUID(userID).String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(a.key)
	if err != nil {
		return "", fmt.Errorf("could not sign JWT: %w", err)
	}

	return signed, nil
}
