package apperr

import "github.com/m-mizutani/goerr/v2"

// Authorization flow errors
var (
	ErrUserAborted = goerr.New("user aborted authorization",
		goerr.T(ErrTagUserAborted))

	ErrStaleCallback = goerr.New("authorization callback does not match a pending authorization",
		goerr.T(ErrTagStaleCallback))

	ErrWorkspaceNotAllowed = goerr.New("notion workspace is not allowed",
		goerr.T(ErrTagForbidden))
)

// Session errors
var (
	ErrNotConnected = goerr.New("notion workspace is not connected",
		goerr.T(ErrTagNotConnected))

	ErrDuplicateProperty = goerr.New("property name already exists",
		goerr.T(ErrTagValidation))
)
