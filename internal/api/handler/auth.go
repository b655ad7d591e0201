package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/hipolitesport/roster/internal/api/request"
	"github.com/hipolitesport/roster/internal/api/response"
	"github.com/hipolitesport/roster/internal/services/auth"
)

// AuthHandler handles login
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if strings.TrimSpace(req.Correo) == "" {
		WriteError(w, NewInvalidRequestError("correo is required"))
		return
	}
	if req.Contrasena == "" {
		WriteError(w, NewInvalidRequestError("contrasena is required"))
		return
	}

	token, err := h.authService.Login(r.Context(), req.Correo, req.Contrasena)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LoginResponse{Token: token})
}
