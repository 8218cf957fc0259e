package v1handler

import (
	"net/http"

	"github.com/aboldguess/Nichifier/internal/billing"
	"github.com/aboldguess/Nichifier/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type planRequest struct {
	Slug               string          `json:"slug"`
	DisplayName        string          `json:"displayName"`
	Description        string          `json:"description"`
	MonthlyFee         decimal.Decimal `json:"monthlyFee"`
	CurrencyCode       string          `json:"currencyCode"`
	StripePriceID      string          `json:"stripePriceId"`
	MaxNiches          int             `json:"maxNiches"`
	FeatureSummary     string          `json:"featureSummary"`
	FeeDiscountPercent decimal.Decimal `json:"feeDiscountPercent"`
}

type activePlanResponse struct {
	Plan *domain.CreatorPlan `json:"plan"`
}

type subscribeRequest struct {
	PlanID uuid.UUID `json:"planId"`
}

// ListPlans returns every curator plan, cheapest first.
func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.deps.Billing.Plans(r.Context())
	if err != nil {
		respondError(r.Context(), w, err)

		return
	}

	respondJSON(r.Context(), w, http.StatusOK, plans)
}

// ActivePlan returns the caller's active curator plan, if any.
func (h *Handler) ActivePlan(w http.ResponseWriter, r *http.Request) {
	plan, err := h.deps.Billing.ActivePlan(r.Context(), GetUserIDFromContext(r.Context()))
	if err != nil {
		respondError(r.Context(), w, err)

		return
	}

	respondJSON(r.Context(), w, http.StatusOK, activePlanResponse{Plan: plan})
}

// SubscribeToPlan starts a curator plan subscription for the caller.
func (h *Handler) SubscribeToPlan(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(r.Context(), w, err)

		return
	}

	sub, err := h.deps.Billing.SubscribeToPlan(r.Context(),
		GetUserIDFromContext(r.Context()),
		domain.PlanID(req.PlanID))
	if err != nil {
		respondError(r.Context(), w, err)

		return
	}

	respondJSON(r.Context(), w, http.StatusCreated, sub)
}

// CreatePlan creates a new curator plan.
func (h *Handler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(r.Context(), w, err)

		return
	}

	plan, err := h.deps.Billing.UpsertPlan(r.Context(), planInput(req, nil))
	if err != nil {
		respondError(r.Context(), w, err)

		return
	}

	respondJSON(r.Context(), w, http.StatusCreated, plan)
}

// UpdatePlan updates an existing curator plan.
func (h *Handler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "planID")
	if err != nil {
		respondError(r.Context(), w, err)

		return
	}

	var req planRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(r.Context(), w, err)

		return
	}

	planID := domain.PlanID(id)
	plan, err := h.deps.Billing.UpsertPlan(r.Context(), planInput(req, &planID))
	if err != nil {
		respondError(r.Context(), w, err)

		return
	}

	respondJSON(r.Context(), w, http.StatusOK, plan)
}

func planInput(req planRequest, id *domain.PlanID) billing.PlanInput {
	return billing.PlanInput{
		ID:                 id,
		Slug:               req.Slug,
		DisplayName:        req.DisplayName,
		Description:        req.Description,
		MonthlyFee:         req.MonthlyFee,
		CurrencyCode:       req.CurrencyCode,
		StripePriceID:      req.StripePriceID,
		MaxNiches:          req.MaxNiches,
		FeatureSummary:     req.FeatureSummary,
		FeeDiscountPercent: req.FeeDiscountPercent,
	}
}
