package apperr

import (
	"net/http"

	"github.com/m-mizutani/goerr/v2"
)

// HTTPStatusFromError returns the appropriate HTTP status code based on error tags
func HTTPStatusFromError(err error) int {
	switch {
	// 404 Not Found
	case goerr.HasTag(err, ErrTagNotFound):
		return http.StatusNotFound

	// 400 Bad Request
	case goerr.HasTag(err, ErrTagValidation),
		goerr.HasTag(err, ErrTagInvalidInput),
		goerr.HasTag(err, ErrTagRequiredField):
		return http.StatusBadRequest

	// 401 Unauthorized
	case goerr.HasTag(err, ErrTagUnauthorized),
		goerr.HasTag(err, ErrTagUserAborted),
		goerr.HasTag(err, ErrTagStaleCallback),
		goerr.HasTag(err, ErrTagNotConnected):
		return http.StatusUnauthorized

	// 403 Forbidden
	case goerr.HasTag(err, ErrTagForbidden):
		return http.StatusForbidden

	// 502 Bad Gateway
	case goerr.HasTag(err, ErrTagRemoteService),
		goerr.HasTag(err, ErrTagSlackAPI):
		return http.StatusBadGateway

	// 500 Internal Server Error (default)
	default:
		return http.StatusInternalServerError
	}
}
