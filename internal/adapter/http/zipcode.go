package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"localreach/internal/core/port"
)

type activeResponse struct {
	Code     string `json:"code"`
	IsActive bool   `json:"is_active"`
}

func (h *Handler) handleCreateZipCode(w http.ResponseWriter, r *http.Request) {
	var req port.CreateZipCodeReq
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	view, err := h.deps.ZipCodes.Create(r.Context(), req, actorFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// handleListZipCodes accepts optional limit and offset query parameters.
func (h *Handler) handleListZipCodes(w http.ResponseWriter, r *http.Request) {
	var (
		q      = r.URL.Query()
		filter port.ListFilter
		err    error
	)
	if v := q.Get("limit"); v != "" {
		if filter.Limit, err = strconv.Atoi(v); err != nil {
			h.writeError(w, r, port.NewValidationError("limit", "must be an integer"))
			return
		}
	}
	if v := q.Get("offset"); v != "" {
		if filter.Offset, err = strconv.Atoi(v); err != nil {
			h.writeError(w, r, port.NewValidationError("offset", "must be an integer"))
			return
		}
	}
	list, err := h.deps.ZipCodes.List(r.Context(), filter, actorFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) handleGetZipCode(w http.ResponseWriter, r *http.Request) {
	view, err := h.deps.ZipCodes.Get(r.Context(), chi.URLParam(r, "code"), actorFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) handleUpdateZipCode(w http.ResponseWriter, r *http.Request) {
	var req port.UpdateZipCodeReq
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	view, err := h.deps.ZipCodes.Update(r.Context(), chi.URLParam(r, "id"), req, actorFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) handleSetZipCodeStatus(w http.ResponseWriter, r *http.Request) {
	var req port.SetStatusReq
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	req.ZipCodeID = chi.URLParam(r, "id")
	st, err := h.deps.ZipCodes.SetStatus(r.Context(), req, actorFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, st)
}

func (h *Handler) handleZipCodeHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.deps.ZipCodes.History(r.Context(), chi.URLParam(r, "id"), actorFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}

// handleZipCodeActive is public. An optional campaign_id query parameter
// scopes the check to a campaign.
func (h *Handler) handleZipCodeActive(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	var campaignID *string
	if v := r.URL.Query().Get("campaign_id"); v != "" {
		campaignID = &v
	}
	active, err := h.deps.ZipCodes.IsActive(r.Context(), code, campaignID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, activeResponse{Code: code, IsActive: active})
}
