package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"vtuber-dash/internal/middleware"
	"vtuber-dash/pkg/errors"
	"vtuber-dash/pkg/logger"
)

// respondJSON writes a JSON payload with the given status code.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// respondError writes the structured error envelope. Unknown error values are
// reported as internal errors without leaking their message.
func respondError(w http.ResponseWriter, r *http.Request, log *logger.Logger, err error) {
	appErr, ok := err.(*errors.AppError)
	if !ok {
		log.WithError(err).Error("Unhandled error")
		appErr = errors.NewInternalError("Internal server error", err)
	} else if appErr.StatusCode >= http.StatusInternalServerError {
		log.WithError(appErr).Error("Request failed")
	} else {
		log.WithError(appErr).Debug("Request rejected")
	}

	var resp errors.ErrorResponse
	resp.Error.Type = appErr.Type
	resp.Error.Message = appErr.Message
	resp.Error.Details = appErr.Details
	resp.Error.RequestID = middleware.GetRequestID(r.Context())
	resp.Error.Timestamp = time.Now().UTC().Format(time.RFC3339)

	respondJSON(w, appErr.StatusCode, resp)
}
