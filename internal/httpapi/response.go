package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dharmayuga/dharmayuga/pkg/errors"
)

type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// writeJSON writes payload with status. The status line is already sent when
// encoding fails, so the error is only worth logging.
func writeJSON(w http.ResponseWriter, status int, payload any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(payload)
}

func (h *Handler) success(w http.ResponseWriter, status int, data any) {
	if err := writeJSON(w, status, APIResponse{Success: true, Data: data}); err != nil {
		h.logger.Error("Failed to encode response", "status", status, "error", err)
	}
}

func (h *Handler) failure(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("Request failed", "status", status, "error", err)
	}
	resp := APIResponse{Success: false, Error: errors.GetMessage(err), Code: errors.GetCode(err)}
	if encErr := writeJSON(w, status, resp); encErr != nil {
		h.logger.Error("Failed to encode response", "status", status, "error", encErr)
	}
}

func statusFor(err error) int {
	switch {
	case errors.IsInvalidInput(err):
		return http.StatusBadRequest
	case errors.IsNotFound(err):
		return http.StatusNotFound
	case errors.IsConflict(err):
		return http.StatusConflict
	case errors.IsTooManyRequests(err):
		return http.StatusTooManyRequests
	case errors.IsServiceUnavailable(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

func decodeJSON(r *http.Request, dest any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		return errors.Invalid("malformed request body")
	}
	return nil
}
