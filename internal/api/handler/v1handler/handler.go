// Package v1handler implements the HTTP handlers for version 1 of the
// platform API.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aboldguess/Nichifier/internal/auth"
	"github.com/aboldguess/Nichifier/internal/billing"
	"github.com/aboldguess/Nichifier/internal/newsletter"
	"github.com/aboldguess/Nichifier/internal/niche"
	"github.com/aboldguess/Nichifier/internal/subscription"
	"github.com/aboldguess/Nichifier/pkg/logger"
	"github.com/aboldguess/Nichifier/pkg/serrors"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Deps bundles the services the v1 API is built on.
type Deps struct {
	Auth          auth.Auth
	Billing       billing.Billing
	Niches        niche.Niches
	Subscriptions subscription.Subscriptions
	Newsletters   newsletter.Newsletters
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes mounts every v1 endpoint on a fresh router. The provided
// middlewares wrap the whole router; authenticated routes additionally sit
// behind the security handler.
func (h *Handler) Routes(sec *SecHandler, middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)

	r.Get("/niches", h.ListNiches)
	r.Get("/niches/{nicheID}", h.GetNiche)
	r.Get("/niches/{nicheID}/issues", h.ListIssues)
	r.Get("/issues/{issueID}", h.GetIssue)
	r.Get("/plans", h.ListPlans)

	r.Group(func(r chi.Router) {
		r.Use(sec.Authenticate)
		r.Use(h.withUser)

		r.Get("/auth/me", h.Me)

		r.Post("/niches", h.CreateNiche)
		r.Patch("/niches/{nicheID}", h.UpdateNiche)
		r.Delete("/niches/{nicheID}", h.DeleteNiche)
		r.Post("/niches/{nicheID}/issues", h.RequestIssue)

		r.Put("/subscriptions", h.UpsertSubscription)
		r.Get("/subscriptions", h.ListSubscriptions)
		r.Delete("/subscriptions/{subscriptionID}", h.DeleteSubscription)

		r.Get("/billing/plan", h.ActivePlan)
		r.Post("/billing/subscribe", h.SubscribeToPlan)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)

			r.Get("/admin/users", h.ListUsers)
			r.Get("/admin/settings", h.GetSettings)
			r.Put("/admin/settings", h.UpdateSettings)
			r.Post("/admin/plans", h.CreatePlan)
			r.Put("/admin/plans/{planID}", h.UpdatePlan)
			r.Post("/admin/promote", h.PromoteUser)
		})
	})

	return r
}

type errorResponse struct {
	Error string `json:"error"`
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "could not decode request body")
	}

	return nil
}

func respondJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(ctx, "could not encode response", zap.Error(err))
	}
}

func statusForKind(k serrors.Kind) int {
	switch k {
	case serrors.ErrNotFound:
		return http.StatusNotFound
	case serrors.ErrUnauthorized:
		return http.StatusUnauthorized
	case serrors.ErrForbidden:
		return http.StatusForbidden
	case serrors.ErrBadRequest:
		return http.StatusBadRequest
	case serrors.ErrConflict:
		return http.StatusConflict
	case serrors.ErrTimeout:
		return http.StatusGatewayTimeout
	case serrors.ErrUnavailable:
		return http.StatusServiceUnavailable
	case serrors.ErrRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func respondError(ctx context.Context, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	var sErr *serrors.Error
	if errors.As(err, &sErr) {
		status = statusForKind(sErr.Kind())
	}
	if status == http.StatusInternalServerError {
		// internal details stay out of the response body
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		message = sErr.Error()
	}

	respondJSON(ctx, w, status, errorResponse{Error: message})
}

// pathUUID parses a UUID path parameter from the routing context.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s", name)
	}

	return id, nil
}
