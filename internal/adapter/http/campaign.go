package httpadapter

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"localreach/internal/core/port"
)

type sendResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	RecipientCount int    `json:"recipientCount"`
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req port.CreateCampaignReq
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.deps.Campaigns.Create(r.Context(), req, actorFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.deps.Campaigns.Get(r.Context(), chi.URLParam(r, "id"), actorFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handlePreviewCampaign(w http.ResponseWriter, r *http.Request) {
	p, err := h.deps.Campaigns.Preview(r.Context(), chi.URLParam(r, "id"), actorFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// handleSendCampaign sends a campaign and reports the recipient count. The
// request takes no body.
func (h *Handler) handleSendCampaign(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.Campaigns.Send(r.Context(), chi.URLParam(r, "id"), actorFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sendResponse{
		Success:        true,
		Message:        fmt.Sprintf("Campaign sent successfully to %d subscribers", res.RecipientCount),
		RecipientCount: res.RecipientCount,
	})
}

func (h *Handler) handleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req port.CreateTemplateReq
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	t, err := h.deps.Campaigns.CreateTemplate(r.Context(), req, actorFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (h *Handler) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	t, err := h.deps.Campaigns.GetTemplate(r.Context(), chi.URLParam(r, "id"), actorFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}
