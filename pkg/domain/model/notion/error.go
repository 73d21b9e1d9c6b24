package notion

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response of the Notion API or its OAuth endpoint
type APIError struct {
	StatusCode int    `json:"status"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (x *APIError) Error() string {
	return fmt.Sprintf("notion api error: status=%d code=%s message=%s", x.StatusCode, x.Code, x.Message)
}

// IsUnauthorized is true when the access token was revoked or is invalid
func (x *APIError) IsUnauthorized() bool {
	return x.StatusCode == http.StatusUnauthorized
}

// UserMessage is a short text safe to show in Slack
func (x *APIError) UserMessage() string {
	switch x.StatusCode {
	case http.StatusUnauthorized:
		return "Notion rejected the access token. Please connect your workspace again."
	case http.StatusForbidden:
		return "The integration has no access to the selected page. Share it with the integration in Notion."
	case http.StatusNotFound:
		return "The selected page or database was not found in Notion."
	case http.StatusTooManyRequests:
		return "Notion is rate limiting requests. Please try again in a moment."
	}

	if x.StatusCode >= 500 {
		return "Notion is temporarily unavailable. Please try again later."
	}
	if x.Message != "" {
		return "Notion rejected the request: " + x.Message
	}
	return fmt.Sprintf("Notion rejected the request (status %d).", x.StatusCode)
}

// AsAPIError extracts *APIError from an error chain
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
