package v1handler

import (
	"net/http"

	"github.com/aboldguess/Nichifier/internal/niche"
	"github.com/aboldguess/Nichifier/pkg/domain"
	"github.com/aboldguess/Nichifier/pkg/storage"
	"github.com/shopspring/decimal"
)

type nicheRequest struct {
	Name                string          `json:"name"`
	ShortDescription    string          `json:"shortDescription"`
	DetailedDescription string          `json:"detailedDescription"`
	SplashImageURL      string          `json:"splashImageUrl"`
	NewsletterPrice     decimal.Decimal `json:"newsletterPrice"`
	ReportPrice         decimal.Decimal `json:"reportPrice"`
	CurrencyCode        string          `json:"currencyCode"`
	NewsletterCadence   domain.Cadence  `json:"newsletterCadence"`
	ReportCadence       domain.Cadence  `json:"reportCadence"`
	VoiceInstructions   string          `json:"voiceInstructions"`
	StyleGuide          string          `json:"styleGuide"`
}

type nicheUpdateRequest struct {
	Name                *string          `json:"name"`
	ShortDescription    *string          `json:"shortDescription"`
	DetailedDescription *string          `json:"detailedDescription"`
	SplashImageURL      *string          `json:"splashImageUrl"`
	NewsletterPrice     *decimal.Decimal `json:"newsletterPrice"`
	ReportPrice         *decimal.Decimal `json:"reportPrice"`
	CurrencyCode        *string          `json:"currencyCode"`
	NewsletterCadence   *domain.Cadence  `json:"newsletterCadence"`
	ReportCadence       *domain.Cadence  `json:"reportCadence"`
	VoiceInstructions   *string          `json:"voiceInstructions"`
	StyleGuide          *string          `json:"styleGuide"`
}

// ListNiches returns the full niche catalogue.
func (h *Handler) ListNiches(w http.ResponseWriter, r *http.Request) {
	niches, err := h.deps.Niches.List(r.Context())
	if err != nil {
		respondError(r.Context(), w, err)

		return
	}

	respondJSON(r.Context(), w, http.StatusOK, niches)
}

// GetNiche returns a single niche by ID.
func (h *Handler) GetNiche(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "nicheID")
	if err != nil {
		respondError(r.Context(), w, err)

		return
	}

	n, err := h.deps.Niches.ByID(r.Context(), domain.NicheID(id))
	if err != nil {
		respondError(r.Context(), w, err)

		return
	}

	respondJSON(r.Context(), w, http.StatusOK, n)
}

// CreateNiche creates a new niche owned by the authenticated curator.
func (h *Handler) CreateNiche(w http.ResponseWriter, r *http.Request) {
	var req nicheRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(r.Context(), w, err)

		return
	}

	n, err := h.deps.Niches.Create(r.Context(), GetUserFromContext(r.Context()), niche.Input{
		Name:                req.Name,
		ShortDescription:    req.ShortDescription,
		DetailedDescription: req.DetailedDescription,
		SplashImageURL:      req.SplashImageURL,
		NewsletterPrice:     req.NewsletterPrice,
		ReportPrice:         req.ReportPrice,
		CurrencyCode:        req.CurrencyCode,
		NewsletterCadence:   req.NewsletterCadence,
		ReportCadence:       req.ReportCadence,
		VoiceInstructions:   req.VoiceInstructions,
		StyleGuide:          req.StyleGuide,
	})
	if err != nil {
		respondError(r.Context(), w, err)

		return
	}

	respondJSON(r.Context(), w, http.StatusCreated, n)
}

// UpdateNiche applies partial updates to a niche.
func (h *Handler) UpdateNiche(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "nicheID")
	if err != nil {
		respondError(r.Context(), w, err)

		return
	}

	var req nicheUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(r.Context(), w, err)

		return
	}

	n, err := h.deps.Niches.Update(r.Context(),
		GetUserFromContext(r.Context()),
		domain.NicheID(id),
		storage.NicheUpdates{
			Name:                req.Name,
			ShortDescription:    req.ShortDescription,
			DetailedDescription: req.DetailedDescription,
			SplashImageURL:      req.SplashImageURL,
			NewsletterPrice:     req.NewsletterPrice,
			ReportPrice:         req.ReportPrice,
			CurrencyCode:        req.CurrencyCode,
			NewsletterCadence:   req.NewsletterCadence,
			ReportCadence:       req.ReportCadence,
			VoiceInstructions:   req.VoiceInstructions,
			StyleGuide:          req.StyleGuide,
		})
	if err != nil {
		respondError(r.Context(), w, err)

		return
	}

	respondJSON(r.Context(), w, http.StatusOK, n)
}

// DeleteNiche removes a niche together with its dependent rows.
func (h *Handler) DeleteNiche(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "nicheID")
	if err != nil {
		respondError(r.Context(), w, err)

		return
	}

	if err := h.deps.Niches.Delete(r.Context(),
		GetUserFromContext(r.Context()),
		domain.NicheID(id)); err != nil {
		respondError(r.Context(), w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
