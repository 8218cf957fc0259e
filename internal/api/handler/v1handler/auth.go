package v1handler

import (
	"net/http"

	"github.com/aboldguess/Nichifier/pkg/domain"
)

type registerRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// Register creates a new subscriber account.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(r.Context(), w, err)

		return
	}

	user, token, err := h.deps.Auth.Register(r.Context(), req.Email, req.FullName, req.Password)
	if err != nil {
		respondError(r.Context(), w, err)

		return
	}

	respondJSON(r.Context(), w, http.StatusCreated, authResponse{
		Token: token,
		User:  *user,
	})
}

// Login verifies credentials and returns a fresh token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(r.Context(), w, err)

		return
	}

	user, token, err := h.deps.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(r.Context(), w, err)

		return
	}

	respondJSON(r.Context(), w, http.StatusOK, authResponse{
		Token: token,
		User:  *user,
	})
}

// Me returns the account behind the bearer token.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	respondJSON(r.Context(), w, http.StatusOK, GetUserFromContext(r.Context()))
}
