package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	s, err := h.deps.Subscriptions.Subscribe(r.Context(), chi.URLParam(r, "id"), actorFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *Handler) handleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Subscriptions.Unsubscribe(r.Context(), chi.URLParam(r, "id"), actorFrom(r.Context())); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
