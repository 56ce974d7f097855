package api

import (
	"net/http"

	"github.com/htol/bookshelf/logger"
)

// respondWithError logs an error and sends a plain-text HTTP error response.
// The error itself never reaches the client.
func respondWithError(w http.ResponseWriter, message string, err error, statusCode int) {
	logger.Error(message, "error", err, "status", statusCode)
	http.Error(w, http.StatusText(statusCode), statusCode)
}

// respondWithValidationError sends a plain-text 400 response
func respondWithValidationError(w http.ResponseWriter, message string) {
	logger.Warn("Validation error", "message", message)
	http.Error(w, message, http.StatusBadRequest)
}

// respondWithText writes a plain-text body with status 200
func respondWithText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		logger.Error("Failed to write response", "error", err)
	}
}
