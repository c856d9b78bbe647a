package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"localreach/internal/core/port"
)

const maxBodyBytes = 1 << 20

type errorBody struct {
	Error string `json:"error"`
}

// decodeJSON reads a JSON request body into dst. Unknown fields are
// rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return port.NewValidationError("body", "invalid JSON")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusFor maps an error onto its HTTP status and the message shown to the
// client.
func statusFor(err error) (int, string) {
	var verr *port.ValidationError
	switch {
	case errors.Is(err, port.ErrUnauthenticated):
		return http.StatusUnauthorized, port.ErrUnauthenticated.Error()
	case errors.Is(err, port.ErrForbidden):
		return http.StatusForbidden, port.ErrForbidden.Error()
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Error()
	case errors.Is(err, port.ErrNoRecipients):
		return http.StatusBadRequest, port.ErrNoRecipients.Error()
	case errors.Is(err, port.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, port.ErrAlreadySent):
		return http.StatusConflict, port.ErrAlreadySent.Error()
	case errors.Is(err, port.ErrConflict):
		return http.StatusConflict, err.Error()
	case errors.Is(err, port.ErrEmailDelivery):
		return http.StatusInternalServerError, port.ErrEmailDelivery.Error()
	case errors.Is(err, port.ErrVideoNotReady):
		return http.StatusGatewayTimeout, port.ErrVideoNotReady.Error()
	case errors.Is(err, port.ErrVideoFailed):
		return http.StatusBadGateway, port.ErrVideoFailed.Error()
	}
	return http.StatusInternalServerError, "internal error"
}

// writeError writes the JSON error body for err. Server side failures are
// logged with the request id.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err),
		)
	}
	writeJSON(w, status, errorBody{Error: msg})
}
