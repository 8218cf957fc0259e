package auth_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"testing"
	"time"

	"github.com/aboldguess/Nichifier/internal/auth"
	"github.com/aboldguess/Nichifier/pkg/domain"
	"github.com/aboldguess/Nichifier/pkg/serrors"
	"github.com/aboldguess/Nichifier/pkg/storage"
	mockstorage "github.com/aboldguess/Nichifier/pkg/storage/mock"
	"go.uber.org/mock/gomock"
)

func testPrivateKeyPEM(tb testing.TB) string {
	tb.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		tb.Fatalf("could not generate RSA key: %v", err)
	}

	return string(pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	}))
}

func newTestAuth(t *testing.T) (*mockstorage.MockStorage, auth.Auth) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	a, err := auth.New(st, auth.Options{
		PrivateKey: testPrivateKeyPEM(t),
		TokenTTL:   time.Hour,
	})
	if err != nil {
		t.Fatalf("could not create auth service: %v", err)
	}

	return st, a
}

func TestAuth_Register(t *testing.T) {
	st, a := newTestAuth(t)

	st.EXPECT().StoreUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u domain.User) (*domain.User, error) {
			if u.Email != "new@example.com" {
				t.Fatalf("expected lowercased email, got %q", u.Email)
			}
			if u.Role != domain.RoleSubscriber {
				t.Fatalf("expected subscriber role, got %s", u.Role)
			}
			if !auth.VerifyPassword(u.PasswordHash, "s3cret-pass") {
				t.Fatalf("stored hash does not verify against the password")
			}

			return &u, nil
		},
	)

	user, token, err := a.Register(context.Background(), "  New@Example.com ", "New User", "s3cret-pass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "new@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}
}

func TestAuth_Register_Validation(t *testing.T) {
	_, a := newTestAuth(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		email    string
		fullName string
		password string
	}{
		{"invalid email", "not-an-email", "Name", "longenough"},
		{"empty name", "a@example.com", "  ", "longenough"},
		{"short password", "a@example.com", "Name", "short"},
		{"long password", "a@example.com", "Name", string(make([]byte, 129))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := a.Register(ctx, tc.email, tc.fullName, tc.password)
			if !errors.Is(err, serrors.ErrBadRequest) {
				t.Fatalf("expected bad request, got %v", err)
			}
		})
	}
}

func TestAuth_Register_DuplicateEmail(t *testing.T) {
	st, a := newTestAuth(t)

	st.EXPECT().StoreUser(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicate)

	_, _, err := a.Register(context.Background(), "dup@example.com", "Dup", "longenough")
	if !errors.Is(err, serrors.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestAuth_Login(t *testing.T) {
	st, a := newTestAuth(t)

	hash, err := auth.HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stored := domain.User{Email: "user@example.com", PasswordHash: hash, Role: domain.RoleSubscriber}

	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").Return(&stored, nil).Times(2)

	_, token, err := a.Login(context.Background(), "User@Example.com", "correct-horse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}

	// wrong password
	_, _, err = a.Login(context.Background(), "user@example.com", "wrong")
	if !errors.Is(err, serrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestAuth_Login_UnknownEmail(t *testing.T) {
	st, a := newTestAuth(t)

	st.EXPECT().UserByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)

	_, _, err := a.Login(context.Background(), "nobody@example.com", "whatever-pass")
	if !errors.Is(err, serrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestAuth_Promote(t *testing.T) {
	st, a := newTestAuth(t)

	user := domain.User{Email: "creator@example.com", Role: domain.RoleSubscriber}
	st.EXPECT().UserByEmail(gomock.Any(), "creator@example.com").Return(&user, nil)
	st.EXPECT().UpdateUser(gomock.Any(), user.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.UserID, updates storage.UserUpdates) (*domain.User, error) {
			if updates.Role == nil || *updates.Role != domain.RoleAdmin {
				t.Fatalf("expected admin role update")
			}
			if updates.Premium == nil || !*updates.Premium {
				t.Fatalf("expected premium grant for admin promotion")
			}
			promoted := user
			promoted.Role = *updates.Role
			promoted.Premium = true

			return &promoted, nil
		},
	)

	promoted, err := a.Promote(context.Background(), "creator@example.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if promoted.Role != domain.RoleAdmin || !promoted.Premium {
		t.Fatalf("unexpected promoted user: %+v", promoted)
	}
}

func TestAuth_Promote_InvalidRole(t *testing.T) {
	_, a := newTestAuth(t)

	_, err := a.Promote(context.Background(), "x@example.com", domain.UserRole("owner"))
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestHashPassword_LongPassphrase(t *testing.T) {
	// beyond bcrypt's 72 byte limit, the pre-hash keeps the tail significant
	long := string(make([]byte, 100))
	hash, err := auth.HashPassword(long + "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if auth.VerifyPassword(hash, long+"b") {
		t.Fatalf("expected differing tails to fail verification")
	}
	if !auth.VerifyPassword(hash, long+"a") {
		t.Fatalf("expected matching passphrase to verify")
	}
}
