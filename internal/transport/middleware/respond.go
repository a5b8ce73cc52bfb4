package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError writes the API failure envelope. Middleware rejects requests
// in the same shape handlers use so clients have one error format.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(struct { //nolint:errcheck
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}{Success: false, Error: message})
}
