package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	server "github.com/m-mizutani/tsumugi/pkg/controller/http"
	"github.com/m-mizutani/tsumugi/pkg/domain/mock"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/auth"
)

func TestNotionCallback(t *testing.T) {
	testCases := map[string]struct {
		result   *auth.CallbackResult
		status   int
		contains string
	}{
		"connected": {
			result:   &auth.CallbackResult{State: auth.FlowConnected, StatusCode: http.StatusOK, WorkspaceName: "Acme"},
			status:   http.StatusOK,
			contains: "Acme",
		},
		"user aborted": {
			result:   &auth.CallbackResult{State: auth.FlowFailed, Reason: auth.ReasonUserAborted, StatusCode: http.StatusUnauthorized},
			status:   http.StatusUnauthorized,
			contains: "cancelled",
		},
		"stale": {
			result:   &auth.CallbackResult{State: auth.FlowFailed, Reason: auth.ReasonStaleCallback, StatusCode: http.StatusUnauthorized},
			status:   http.StatusUnauthorized,
			contains: "expired",
		},
		"not allowed": {
			result:   &auth.CallbackResult{State: auth.FlowFailed, Reason: auth.ReasonNotAllowed, StatusCode: http.StatusForbidden, WorkspaceName: "Other"},
			status:   http.StatusForbidden,
			contains: "not allowed",
		},
		"provider error": {
			result:   &auth.CallbackResult{State: auth.FlowFailed, Reason: auth.ReasonProviderError, StatusCode: http.StatusBadGateway},
			status:   http.StatusBadGateway,
			contains: "did not accept",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			var got *auth.CallbackRequest
			uc := &mock.OAuthUseCasesMock{
				HandleAuthorizationCallbackFunc: func(ctx context.Context, req *auth.CallbackRequest) *auth.CallbackResult {
					got = req
					return tc.result
				},
			}
			srv := server.New(server.WithOAuthUseCases(uc))

			req := httptest.NewRequest(http.MethodGet, server.NotionCallbackPath+"?code=abc&state=U1&error=", nil)
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			gt.Equal(t, rec.Code, tc.status)
			gt.S(t, rec.Header().Get("Content-Type")).Contains("text/html")
			gt.S(t, rec.Body.String()).Contains(tc.contains)

			gt.V(t, got).NotNil()
			gt.Equal(t, got.Code, "abc")
			gt.Equal(t, got.State, "U1")
			gt.Equal(t, got.Error, "")
		})
	}

	t.Run("workspace name is escaped", func(t *testing.T) {
		uc := &mock.OAuthUseCasesMock{
			HandleAuthorizationCallbackFunc: func(ctx context.Context, req *auth.CallbackRequest) *auth.CallbackResult {
				return &auth.CallbackResult{State: auth.FlowConnected, StatusCode: http.StatusOK, WorkspaceName: "<script>"}
			},
		}
		srv := server.New(server.WithOAuthUseCases(uc))

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, server.NotionCallbackPath+"?code=abc&state=U1", nil))

		gt.S(t, rec.Body.String()).Contains("&lt;script&gt;")
	})
}
