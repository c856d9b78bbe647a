package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"localreach/internal/core/port"
)

// Deps are the use cases served over HTTP.
type Deps struct {
	Campaigns     port.CampaignUseCase
	ZipCodes      port.ZipCodeUseCase
	Posts         port.PostUseCase
	Subscriptions port.SubscriptionUseCase
	Media         port.MediaUseCase
	Sessions      port.SessionProvider
}

// Handler is the inbound HTTP adapter. Routes are registered on a
// chi.Router; every /api route except the public zip code check resolves
// the caller's session first.
type Handler struct {
	deps   Deps
	logger *slog.Logger
	cookie string
	router chi.Router
}

// Options tune the HTTP adapter.
type Options struct {
	// CORSOrigins are the origins allowed to send credentialed requests.
	CORSOrigins []string
	// SessionCookie is the cookie carrying the session token when no
	// Authorization header is sent.
	SessionCookie string
}

// NewHandler creates a handler with all routes configured.
func NewHandler(deps Deps, logger *slog.Logger, opts Options) *Handler {
	h := &Handler{deps: deps, logger: logger, cookie: opts.SessionCookie}
	if h.cookie == "" {
		h.cookie = "sb-access-token"
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, h.logRequests, middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", h.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/zip-codes/by-code/{code}/active", h.handleZipCodeActive)

		r.Group(func(r chi.Router) {
			r.Use(h.authenticate)

			r.Post("/campaigns", h.handleCreateCampaign)
			r.Get("/campaigns/{id}", h.handleGetCampaign)
			r.Get("/campaigns/{id}/preview", h.handlePreviewCampaign)
			r.Post("/campaigns/{id}/send", h.handleSendCampaign)
			r.Post("/email-templates", h.handleCreateTemplate)
			r.Get("/email-templates/{id}", h.handleGetTemplate)

			r.Post("/zip-codes", h.handleCreateZipCode)
			r.Get("/zip-codes", h.handleListZipCodes)
			r.Get("/zip-codes/by-code/{code}", h.handleGetZipCode)
			r.Put("/zip-codes/{id}", h.handleUpdateZipCode)
			r.Post("/zip-codes/{id}/status", h.handleSetZipCodeStatus)
			r.Get("/zip-codes/{id}/history", h.handleZipCodeHistory)

			r.Post("/collections", h.handleCreateCollection)
			r.Get("/collections/{id}/posts", h.handleCollectionPosts)
			r.Post("/collections/{id}/posts", h.handleAddToCollection)
			r.Post("/posts/{id}/rewrite", h.handleRewritePost)

			r.Post("/lists/{id}/subscriptions", h.handleSubscribe)
			r.Delete("/lists/{id}/subscriptions", h.handleUnsubscribe)

			r.Post("/media/upload-url", h.handleUploadURL)
			r.Get("/media/videos/{assetID}", h.handleWaitForVideo)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
