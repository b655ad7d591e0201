package remote

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// TransportError is a failure to reach the server or read its reply
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx reply from the server
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Code)
	}
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
}

// errorBody covers the payload shapes the API has been seen to use:
// {"mensaje"}, {"message"} and {"error": {"code", "message"}}
type errorBody struct {
	Codigo  string `json:"codigo"`
	Mensaje string `json:"mensaje"`
	Message string `json:"message"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		switch {
		case eb.Mensaje != "":
			apiErr.Message, apiErr.Code = eb.Mensaje, eb.Codigo
		case eb.Message != "":
			apiErr.Message = eb.Message
		case eb.Error.Message != "":
			apiErr.Message, apiErr.Code = eb.Error.Message, eb.Error.Code
		}
	}

	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}
