package roster

import (
	"errors"

	"github.com/hipolitesport/roster/internal/model"
	"github.com/hipolitesport/roster/internal/remote"
)

// User-facing messages
const (
	MsgCreated         = "Player created"
	MsgUpdated         = "Player updated"
	MsgDeleted         = "Player deleted"
	MsgFeedback        = "Statistics updated"
	MsgUnauthorized    = "You are not authorized to perform this action"
	MsgForbidden       = "Only administrators can manage players"
	MsgSessionExpired  = "Your session is invalid or has expired, please log in again"
	MsgConnection      = "Could not connect to the server"
	MsgNameRequired    = "The player's name is required"
	MsgNotFound        = "Player not found"
	MsgInvalidLogin    = "Incorrect email or password"
	MsgNothingPending  = "There is no deletion awaiting confirmation"
	MsgUnexpectedError = "Unexpected error"
)

// UserMessage turns any error from this package, the session or the
// remote client into a single line fit for display
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *remote.APIError
	var transportErr *remote.TransportError

	switch {
	case errors.Is(err, model.ErrUnauthorized):
		return MsgUnauthorized
	case errors.Is(err, model.ErrForbidden):
		return MsgForbidden
	case errors.Is(err, model.ErrInvalidCredential):
		return MsgSessionExpired
	case errors.Is(err, model.ErrInvalidLogin):
		return MsgInvalidLogin
	case errors.Is(err, model.ErrNameRequired):
		return MsgNameRequired
	case errors.Is(err, model.ErrPlayerNotFound):
		return MsgNotFound
	case errors.Is(err, ErrNothingPending):
		return MsgNothingPending
	case errors.Is(err, model.ErrNegativeStat),
		errors.Is(err, model.ErrNegativeDelta),
		errors.Is(err, model.ErrInvalidPosition):
		return capitalize(err.Error())
	case errors.As(err, &transportErr):
		return MsgConnection
	case errors.As(err, &apiErr):
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return MsgUnexpectedError
	default:
		return MsgUnexpectedError
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
