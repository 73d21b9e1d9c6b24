package errors_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/tsumugi/pkg/domain/types/apperr"
	"github.com/m-mizutani/tsumugi/pkg/utils/errors"
)

func TestHandle(t *testing.T) {
	testCases := map[string]struct {
		err    error
		expect slog.Level
	}{
		"user aborted":          {goerr.Wrap(apperr.ErrUserAborted, "denied"), slog.LevelWarn},
		"stale callback":        {goerr.Wrap(apperr.ErrStaleCallback, "no binding"), slog.LevelWarn},
		"not connected":         {goerr.Wrap(apperr.ErrNotConnected, "no token"), slog.LevelWarn},
		"workspace not allowed": {goerr.Wrap(apperr.ErrWorkspaceNotAllowed, "blocked"), slog.LevelWarn},
		"validation":            {goerr.New("bad", goerr.T(apperr.ErrTagValidation)), slog.LevelWarn},
		"untagged":              {goerr.New("boom"), slog.LevelError},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			ctx, capture := ctxlog.NewCapture(context.Background())
			errors.Handle(ctx, tc.err)

			records := capture.Records()
			gt.A(t, records).Length(1).Required()
			gt.Equal(t, records[0].Level, tc.expect)
		})
	}

	t.Run("nil is ignored", func(t *testing.T) {
		ctx, capture := ctxlog.NewCapture(context.Background())
		errors.Handle(ctx, nil)
		gt.A(t, capture.Records()).Length(0)
	})
}
