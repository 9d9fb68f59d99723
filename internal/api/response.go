package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/osdetect/pkg/logger"
)

// Envelope is the body of every /v1 response.
type Envelope struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
	Meta  Meta         `json:"meta"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

type Meta struct {
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body Envelope) {
	body.Meta.RequestID = RequestIDFromContext(r.Context())
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respond(w http.ResponseWriter, r *http.Request, data any) {
	writeJSON(w, r, http.StatusOK, Envelope{Data: data})
}

// respondError writes err as an error envelope. Errors that are not an
// HTTPError are logged and reported as internal errors without detail.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var httpErr HTTPError
	if !errors.As(err, &httpErr) {
		log.ErrorContext(r.Context(), "request failed", logger.Error(err))
		httpErr = ErrInternal
	}
	writeJSON(w, r, httpErr.Status, Envelope{
		Error: &ErrorDetail{Code: httpErr.Code, Message: httpErr.Message},
	})
}
