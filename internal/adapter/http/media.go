package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"localreach/internal/core/port"
)

func (h *Handler) handleUploadURL(w http.ResponseWriter, r *http.Request) {
	var req port.UploadURLReq
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	up, err := h.deps.Media.UploadURL(r.Context(), req, actorFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, up)
}

// handleWaitForVideo blocks until the asset is ready or polling gives up.
func (h *Handler) handleWaitForVideo(w http.ResponseWriter, r *http.Request) {
	asset, err := h.deps.Media.WaitForVideo(r.Context(), chi.URLParam(r, "assetID"), actorFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, asset)
}
