package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/KirkDiggler/armybook-api/internal/errors"
)

type appHandler func(w http.ResponseWriter, r *http.Request) error

type errorResponse struct {
	Error string                 `json:"error"`
	Code  string                 `json:"code"`
	Meta  map[string]interface{} `json:"meta,omitempty"`
}

// makeHandler adapts an appHandler, mapping returned errors to their HTTP status
func makeHandler(h appHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}

		code := errors.GetCode(err)
		status := code.HTTPStatus()
		level := slog.LevelWarn
		switch {
		case errors.IsCanceled(err):
			// the client went away
			level = slog.LevelDebug
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		}
		slog.Log(r.Context(), level, "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"error", err)

		respondWithJSON(w, status, errorResponse{
			Error: errors.GetMessage(err),
			Code:  string(code),
			Meta:  errors.GetMeta(err),
		})
	}
}

func respondWithJSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		slog.Error("failed to marshal response", "error", err)
		w.Header().Set(headerContentType, contentTypeJSON)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`)) // nolint:errcheck // nothing left to report to
		return
	}

	w.Header().Set(headerContentType, contentTypeJSON)
	w.WriteHeader(status)
	_, _ = w.Write(body) // nolint:errcheck // client went away
}
