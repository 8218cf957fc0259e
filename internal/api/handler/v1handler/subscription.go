package v1handler

import (
	"net/http"

	"github.com/aboldguess/Nichifier/pkg/domain"
	"github.com/google/uuid"
)

type upsertSubscriptionRequest struct {
	NicheID         uuid.UUID `json:"nicheId"`
	WantsNewsletter bool      `json:"wantsNewsletter"`
	WantsReport     bool      `json:"wantsReport"`
}

type userSubscriptionResponse struct {
	Subscription domain.Subscription `json:"subscription"`
	Niche        domain.Niche        `json:"niche"`
}

// UpsertSubscription creates or updates the caller's subscription to a
// niche.
func (h *Handler) UpsertSubscription(w http.ResponseWriter, r *http.Request) {
	var req upsertSubscriptionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(r.Context(), w, err)

		return
	}

	sub, err := h.deps.Subscriptions.Upsert(r.Context(),
		GetUserFromContext(r.Context()),
		domain.NicheID(req.NicheID),
		req.WantsNewsletter,
		req.WantsReport)
	if err != nil {
		respondError(r.Context(), w, err)

		return
	}

	respondJSON(r.Context(), w, http.StatusOK, sub)
}

// ListSubscriptions returns the caller's subscriptions with their niches.
func (h *Handler) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	subs, err := h.deps.Subscriptions.List(r.Context(), GetUserIDFromContext(r.Context()))
	if err != nil {
		respondError(r.Context(), w, err)

		return
	}

	items := make([]userSubscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		items = append(items, userSubscriptionResponse{
			Subscription: sub.Subscription,
			Niche:        sub.Niche,
		})
	}

	respondJSON(r.Context(), w, http.StatusOK, items)
}

// DeleteSubscription removes one of the caller's subscriptions.
func (h *Handler) DeleteSubscription(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "subscriptionID")
	if err != nil {
		respondError(r.Context(), w, err)

		return
	}

	if err := h.deps.Subscriptions.Delete(r.Context(),
		GetUserIDFromContext(r.Context()),
		domain.SubscriptionID(id)); err != nil {
		respondError(r.Context(), w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
