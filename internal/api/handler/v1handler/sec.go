package v1handler

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/aboldguess/Nichifier/internal/config"
	"github.com/aboldguess/Nichifier/pkg/domain"
	"github.com/aboldguess/Nichifier/pkg/serrors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type ctxKey int

const (
	userIDCtxKey ctxKey = iota
	userCtxKey
)

// SecHandlerOptions configures token verification for the v1 API.
type SecHandlerOptions struct {
	// PublicKey is the PEM-encoded RSA public key used to verify tokens.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application
// configuration.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
	}
}

// SecHandler verifies bearer tokens on authenticated v1 routes and exposes
// the authenticated user ID to handlers through the request context.
type SecHandler struct {
	publicKey *rsa.PublicKey
}

// NewSecHandler parses the configured public key and returns a handler ready
// to verify tokens.
func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse JWT public key: %w", err)
	}

	return &SecHandler{
		publicKey: publicKey,
	}, nil
}

// VerifyToken validates a signed RS256 token and returns the user ID carried
// in its subject claim.
func (s *SecHandler) VerifyToken(tokenString string) (domain.UserID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(*jwt.Token) (any, error) {
			return s.publicKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		return domain.UserID{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return domain.UserID{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	id, err := uuid.Parse(subject)
	if err != nil {
		return domain.UserID{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	return domain.UserID(id), nil
}

// Authenticate is a middleware that rejects requests without a valid bearer
// token and stores the authenticated user ID in the request context.
func (s *SecHandler) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			respondError(r.Context(), w, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		userID, err := s.VerifyToken(tokenString)
		if err != nil {
			respondError(r.Context(), w, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(
			context.WithValue(r.Context(), userIDCtxKey, userID)))
	})
}

// GetUserIDFromContext returns the authenticated user ID stored by the
// Authenticate middleware. The zero ID is returned on unauthenticated
// requests.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	id, _ := ctx.Value(userIDCtxKey).(domain.UserID)

	return id
}

// GetUserFromContext returns the authenticated account loaded by the
// withUser middleware.
func GetUserFromContext(ctx context.Context) domain.User {
	user, _ := ctx.Value(userCtxKey).(domain.User)

	return user
}

// withUser loads the account behind the authenticated user ID so handlers
// can rely on an up-to-date role and premium flag.
func (h *Handler) withUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := h.deps.Auth.UserByID(r.Context(), GetUserIDFromContext(r.Context()))
		if err != nil {
			// a token for a deleted account is as good as no token
			if errors.Is(err, serrors.ErrNotFound) {
				err = serrors.Wrap(serrors.ErrUnauthorized, err, "unknown account")
			}
			respondError(r.Context(), w, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(
			context.WithValue(r.Context(), userCtxKey, *user)))
	})
}

// requireAdmin guards routes reserved for platform administrators.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetUserFromContext(r.Context()).Role != domain.RoleAdmin {
			respondError(r.Context(), w, serrors.With(serrors.ErrForbidden, "admin access required"))

			return
		}

		next.ServeHTTP(w, r)
	})
}
