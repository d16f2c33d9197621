package errors

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Response is the JSON body written for every failed request.
type Response struct {
	Error string `json:"error"`
}

// AsShowcaseError normalizes any error into the taxonomy. Anything that is not
// already a ShowcaseError is treated as an internal failure.
func AsShowcaseError(err error) *ShowcaseError {
	var se *ShowcaseError
	if errors.As(err, &se) {
		return se
	}

	return NewInternalError(ErrCodeInternalError, "unhandled error", err)
}

// WriteJSON writes err as a `{"error": msg}` body with the matching status.
// Internal failures are logged with their full cause and answered generically.
func WriteJSON(w http.ResponseWriter, r *http.Request, logger Logger, err error) {
	se := AsShowcaseError(err)
	status := se.StatusCode()

	if logger != nil {
		if status >= http.StatusInternalServerError {
			logger.Error(r.Context(), se, "Request failed",
				"type", se.Type,
				"code", se.Code,
				"path", r.URL.Path)
		} else {
			logger.Warn(r.Context(), se, "Request rejected",
				"type", se.Type,
				"code", se.Code,
				"path", r.URL.Path)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{Error: se.PublicMessage()})
}
