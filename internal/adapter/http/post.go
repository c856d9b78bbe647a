package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type createCollectionRequest struct {
	Name string `json:"name"`
}

type addPostRequest struct {
	PostID string `json:"post_id"`
}

func (h *Handler) handleCreateCollection(w http.ResponseWriter, r *http.Request) {
	var req createCollectionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.deps.Posts.CreateCollection(r.Context(), req.Name, actorFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleCollectionPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.deps.Posts.CollectionPosts(r.Context(), chi.URLParam(r, "id"), actorFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (h *Handler) handleAddToCollection(w http.ResponseWriter, r *http.Request) {
	var req addPostRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.deps.Posts.AddToCollection(r.Context(), chi.URLParam(r, "id"), req.PostID, actorFrom(r.Context())); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleRewritePost(w http.ResponseWriter, r *http.Request) {
	post, err := h.deps.Posts.Rewrite(r.Context(), chi.URLParam(r, "id"), actorFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}
