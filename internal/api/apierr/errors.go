package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hipolitesport/roster/internal/model"
	"github.com/hipolitesport/roster/internal/services/auth"
)

// ErrorResponse is the body of every error response
type ErrorResponse struct {
	Codigo  string `json:"codigo"`
	Mensaje string `json:"mensaje"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodePlayerNotFound     = "PLAYER_NOT_FOUND"
	CodeNameRequired       = "NAME_REQUIRED"
	CodeNegativeStat       = "NEGATIVE_STAT"
	CodeInvalidPosition    = "INVALID_POSITION"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeNotFound           = "NOT_FOUND"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an ErrorResponse
type httpError struct {
	status int
	body   ErrorResponse
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.body.Mensaje
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(he.body)
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	// Map model errors
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, ErrorResponse{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrNameRequired):
		return &httpError{http.StatusBadRequest, ErrorResponse{CodeNameRequired, "The player's name is required"}}
	case errors.Is(err, model.ErrNegativeStat):
		return &httpError{http.StatusBadRequest, ErrorResponse{CodeNegativeStat, "Statistics must not be negative"}}
	case errors.Is(err, model.ErrInvalidPosition):
		return &httpError{http.StatusBadRequest, ErrorResponse{CodeInvalidPosition, "Position must be one of POR, DEF, MED, DEL"}}
	case errors.Is(err, model.ErrInvalidLogin):
		return &httpError{http.StatusUnauthorized, ErrorResponse{CodeInvalidCredentials, "Incorrect email or password"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidToken):
		return &httpError{http.StatusUnauthorized, ErrorResponse{CodeUnauthorized, "Invalid or expired token"}}

	default:
		return &httpError{http.StatusInternalServerError, ErrorResponse{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, ErrorResponse{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, ErrorResponse{CodeUnauthorized, "Authentication required"}}
}

// NewForbiddenError creates a forbidden error
func NewForbiddenError() error {
	return &httpError{http.StatusForbidden, ErrorResponse{CodeForbidden, "Administrator role required"}}
}

// NewNotFoundError creates a not found error for unknown routes
func NewNotFoundError() error {
	return &httpError{http.StatusNotFound, ErrorResponse{CodeNotFound, "Not found"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, ErrorResponse{CodeInternalError, "Internal server error"}}
}
