package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"airdata-service/pkg/apperrors"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func writeNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// writeError maps error kinds to HTTP status codes. Callers never see
// store-specific identifiers or query syntax.
func writeError(w http.ResponseWriter, err error) {
	kind := apperrors.KindOf(err)

	var statusCode int
	switch kind {
	case apperrors.KindNotFound:
		statusCode = http.StatusNotFound
	case apperrors.KindValidation:
		statusCode = http.StatusBadRequest
	case apperrors.KindConflict:
		statusCode = http.StatusConflict
	case apperrors.KindUnavailable:
		statusCode = http.StatusServiceUnavailable
	case apperrors.KindPartialResult:
		statusCode = http.StatusBadGateway
	default:
		statusCode = http.StatusInternalServerError
	}

	message := "internal error"
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	writeJSON(w, statusCode, ErrorResponse{
		Code:  string(kind),
		Error: message,
	})
}
