package preview

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/goliatone/go-sitegen/internal/contentful"
)

type errorResponse struct {
	OK      bool   `json:"ok"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	status, payload := mapError(err)
	writeJSON(w, status, payload)
}

func mapError(err error) (int, errorResponse) {
	if err == nil {
		return http.StatusInternalServerError, errorResponse{Error: "unknown_error"}
	}

	if errors.Is(err, ErrMissingParam) {
		return http.StatusBadRequest, errorResponse{
			Error:   "missing_parameter",
			Message: err.Error(),
		}
	}

	if errors.Is(err, ErrEntryNotFound) {
		return http.StatusNotFound, errorResponse{
			Error:   "not_found",
			Message: err.Error(),
		}
	}

	if errors.Is(err, contentful.ErrNotConfigured) {
		return http.StatusInternalServerError, errorResponse{
			Error:   "not_configured",
			Message: err.Error(),
		}
	}

	// Upstream API failures pass the upstream status through.
	var apiErr *contentful.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode >= http.StatusBadRequest {
		return apiErr.StatusCode, errorResponse{
			Error:   "upstream_error",
			Message: apiErr.Error(),
		}
	}

	return http.StatusInternalServerError, errorResponse{
		Error:   "internal_error",
		Message: err.Error(),
	}
}
