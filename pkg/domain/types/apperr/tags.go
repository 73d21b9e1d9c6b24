package apperr

import "github.com/m-mizutani/goerr/v2"

// NotFound errors (HTTP 404)
var (
	ErrTagNotFound = goerr.NewTag("not_found")
)

// Validation errors (HTTP 400)
var (
	ErrTagValidation    = goerr.NewTag("validation")
	ErrTagInvalidInput  = goerr.NewTag("invalid_input")
	ErrTagRequiredField = goerr.NewTag("required_field")
)

// Authorization flow errors (HTTP 401/403)
var (
	ErrTagUnauthorized  = goerr.NewTag("unauthorized")
	ErrTagForbidden     = goerr.NewTag("forbidden")
	ErrTagUserAborted   = goerr.NewTag("user_aborted")
	ErrTagStaleCallback = goerr.NewTag("stale_callback")
	ErrTagNotConnected  = goerr.NewTag("not_connected")
)

// External service errors (HTTP 502)
var (
	ErrTagRemoteService = goerr.NewTag("remote_service")
	ErrTagSlackAPI      = goerr.NewTag("slack_api")
	ErrTagStorage       = goerr.NewTag("storage")
)

// System errors (HTTP 500)
var (
	ErrTagInternal = goerr.NewTag("internal")
)
