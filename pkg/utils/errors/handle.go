package errors

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tsumugi/pkg/domain/types/apperr"
)

// Handle logs errors with context. Errors caused by users or by the remote
// service are logged as warnings, others as errors.
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	logger := ctxlog.From(ctx)
	switch {
	case goerr.HasTag(err, apperr.ErrTagUserAborted),
		goerr.HasTag(err, apperr.ErrTagStaleCallback),
		goerr.HasTag(err, apperr.ErrTagNotConnected),
		goerr.HasTag(err, apperr.ErrTagForbidden),
		goerr.HasTag(err, apperr.ErrTagValidation),
		goerr.HasTag(err, apperr.ErrTagRemoteService):
		logger.Warn("request failed", "error", err)
	default:
		logger.Error("error occurred", "error", err)
	}
}
