package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/tsumugi/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)

	c.RecordNotionRequest("search", 200, 120*time.Millisecond)
	c.RecordNotionRequest("search", 200, 80*time.Millisecond)
	c.RecordNotionRequest("create_database", 400, 50*time.Millisecond)
	c.RecordAuthorizationCallback("success")
	c.RecordAuthorizationCallback("stale")
	c.RecordAuthorizationCallback("stale")
	c.RecordModalSubmission("validation_error")

	count, err := testutil.GatherAndCount(reg, "tsumugi_notion_requests_total")
	gt.NoError(t, err)
	gt.V(t, count).Equal(2)

	gt.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP tsumugi_authorization_callbacks_total Number of Notion OAuth callbacks by result
# TYPE tsumugi_authorization_callbacks_total counter
tsumugi_authorization_callbacks_total{result="stale"} 2
tsumugi_authorization_callbacks_total{result="success"} 1
`), "tsumugi_authorization_callbacks_total"))
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)
	c.RecordModalSubmission("success")

	srv := httptest.NewServer(metrics.Handler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	gt.NoError(t, err).Required()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	gt.NoError(t, err)
	gt.S(t, string(body)).Contains(`tsumugi_modal_submissions_total{result="success"} 1`)
}

func TestNop(t *testing.T) {
	var r metrics.Recorder = metrics.Nop{}
	r.RecordNotionRequest("search", 500, time.Second)
	r.RecordAuthorizationCallback("success")
	r.RecordModalSubmission("success")
}
