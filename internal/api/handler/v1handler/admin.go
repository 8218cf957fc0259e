package v1handler

import (
	"net/http"

	"github.com/aboldguess/Nichifier/internal/billing"
	"github.com/aboldguess/Nichifier/pkg/domain"
	"github.com/shopspring/decimal"
)

type settingsRequest struct {
	FeePercent           decimal.Decimal `json:"feePercent"`
	MinimumFee           decimal.Decimal `json:"minimumFee"`
	CurrencyCode         string          `json:"currencyCode"`
	StripePublishableKey string          `json:"stripePublishableKey"`
	StripeSecretKey      string          `json:"stripeSecretKey"`
}

type promoteRequest struct {
	Email string          `json:"email"`
	Role  domain.UserRole `json:"role"`
}

// GetSettings returns the platform monetisation settings.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.deps.Billing.Settings(r.Context())
	if err != nil {
		respondError(r.Context(), w, err)

		return
	}

	respondJSON(r.Context(), w, http.StatusOK, settings)
}

// UpdateSettings replaces the platform monetisation settings.
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(r.Context(), w, err)

		return
	}

	settings, err := h.deps.Billing.UpdateSettings(r.Context(), billing.SettingsUpdate{
		FeePercent:           req.FeePercent,
		MinimumFee:           req.MinimumFee,
		CurrencyCode:         req.CurrencyCode,
		StripePublishableKey: req.StripePublishableKey,
		StripeSecretKey:      req.StripeSecretKey,
	})
	if err != nil {
		respondError(r.Context(), w, err)

		return
	}

	respondJSON(r.Context(), w, http.StatusOK, settings)
}

// ListUsers returns every registered account.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.deps.Auth.Users(r.Context())
	if err != nil {
		respondError(r.Context(), w, err)

		return
	}

	respondJSON(r.Context(), w, http.StatusOK, users)
}

// PromoteUser changes the role of the account identified by email.
func (h *Handler) PromoteUser(w http.ResponseWriter, r *http.Request) {
	var req promoteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(r.Context(), w, err)

		return
	}

	user, err := h.deps.Auth.Promote(r.Context(), req.Email, req.Role)
	if err != nil {
		respondError(r.Context(), w, err)

		return
	}

	respondJSON(r.Context(), w, http.StatusOK, user)
}
