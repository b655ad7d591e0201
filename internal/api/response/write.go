package response

import (
	"encoding/json"
	"net/http"
)

// LoginResponse is the body returned by a successful login
type LoginResponse struct {
	Token string `json:"token"`
}

// MessageResponse carries a confirmation message
type MessageResponse struct {
	Mensaje string `json:"mensaje"`
}

// HealthResponse is the body of the health check
type HealthResponse struct {
	Status string `json:"status"`
}

// JSON writes a JSON response
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}
