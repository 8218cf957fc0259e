package v1handler

import (
	"net/http"
	"strconv"

	"github.com/aboldguess/Nichifier/pkg/domain"
	"github.com/aboldguess/Nichifier/pkg/serrors"
)

// DefaultIssueLimit caps issue listings when the client does not ask for a
// specific page size.
const DefaultIssueLimit = 20

type requestIssueRequest struct {
	Kind domain.IssueKind `json:"kind"`
}

type requestIssueResponse struct {
	Queued bool `json:"queued"`
}

// ListIssues returns published issues for a niche, newest first. The kind
// query parameter narrows the listing to one product.
func (h *Handler) ListIssues(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "nicheID")
	if err != nil {
		respondError(r.Context(), w, err)

		return
	}

	limit := uint(DefaultIssueLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondError(r.Context(), w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid limit"))

			return
		}
		limit = uint(parsed)
	}

	issues, err := h.deps.Newsletters.NicheIssues(r.Context(),
		domain.NicheID(id),
		domain.IssueKind(r.URL.Query().Get("kind")),
		limit)
	if err != nil {
		respondError(r.Context(), w, err)

		return
	}

	respondJSON(r.Context(), w, http.StatusOK, issues)
}

// GetIssue returns a single published issue.
func (h *Handler) GetIssue(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "issueID")
	if err != nil {
		respondError(r.Context(), w, err)

		return
	}

	issue, err := h.deps.Newsletters.Issue(r.Context(), domain.IssueID(id))
	if err != nil {
		respondError(r.Context(), w, err)

		return
	}

	respondJSON(r.Context(), w, http.StatusOK, issue)
}

// RequestIssue enqueues generation of a fresh issue for the niche.
func (h *Handler) RequestIssue(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "nicheID")
	if err != nil {
		respondError(r.Context(), w, err)

		return
	}

	var req requestIssueRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(r.Context(), w, err)

		return
	}

	queued, err := h.deps.Newsletters.RequestIssue(r.Context(),
		GetUserFromContext(r.Context()),
		domain.NicheID(id),
		req.Kind)
	if err != nil {
		respondError(r.Context(), w, err)

		return
	}

	respondJSON(r.Context(), w, http.StatusAccepted, requestIssueResponse{Queued: queued})
}
