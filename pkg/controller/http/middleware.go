package http

import (
	"bytes"
	"io"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/slack"
	"github.com/m-mizutani/tsumugi/pkg/domain/types/apperr"
	"github.com/m-mizutani/tsumugi/pkg/utils/errors"
	"github.com/m-mizutani/tsumugi/pkg/utils/logging"
)

// maxSlackBodySize bounds webhook bodies read for signature verification
const maxSlackBodySize = 1 << 20

// loggingMiddleware puts a request scoped logger into the context. Handlers
// dispatched in the background keep using it.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		logger := logging.Default().With(
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
		)
		r = r.WithContext(ctxlog.With(r.Context(), logger))

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		logger.Info("http request",
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"remote_addr", r.RemoteAddr,
		)
	})
}

func panicRecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				if v == http.ErrAbortHandler {
					panic(v)
				}
				errors.Handle(r.Context(), goerr.New("panic in http handler",
					goerr.T(apperr.ErrTagInternal),
					goerr.V("recover", v),
					goerr.V("stack", string(debug.Stack()))))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// verifySlackSignature rejects webhooks not signed with the signing secret.
// The body is buffered so the handler can parse it again.
func verifySlackSignature(verifier slack.PayloadVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSlackBodySize))
			if err != nil {
				handleError(w, r, goerr.Wrap(err, "failed to read slack webhook body", goerr.T(apperr.ErrTagInvalidInput)))
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			if err := verifier.Verify(r.Header, body); err != nil {
				handleError(w, r, goerr.Wrap(err, "slack signature verification failed", goerr.T(apperr.ErrTagUnauthorized)))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
