package response

import (
	"encoding/json"
	"net/http"

	"quicknotes-server/internal/apperr"
)

// ErrorBody is the error payload shape: {statusCode, message, error},
// where error is the standard HTTP status text.
type ErrorBody struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}

// JSON writes v as the response body. Successful payloads are written
// bare, without an envelope.
func JSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, ErrorBody{
		StatusCode: statusCode,
		Message:    message,
		Error:      http.StatusText(statusCode),
	})
}

// FromError maps a service failure to its HTTP status.
func FromError(w http.ResponseWriter, err error) {
	apiErr := apperr.From(err)
	Error(w, apiErr.Status, apiErr.Message)
}

func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnauthorized, message)
}

func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}
