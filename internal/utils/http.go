package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/taskdeck/taskdeck/models"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP
// response with the given status code.
//
// It sets the "Content-Type" header to "application/json" before writing.
// If marshaling fails, it responds with 500 Internal Server Error and
// returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.MessageResponse{Message: "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError renders the uniform JSON error body {"error": message} with the
// given status code. The message must be a stable, client-safe string; raw
// internal errors are never passed here.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	WriteJSON(w, models.ErrorResponse{Error: message}, statusCode) //nolint:errcheck
}
