package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder receives measurements from the Notion client and the use cases
type Recorder interface {
	RecordNotionRequest(endpoint string, statusCode int, duration time.Duration)
	RecordAuthorizationCallback(result string)
	RecordModalSubmission(result string)
}

// Collector exports measurements as Prometheus metrics
type Collector struct {
	notionRequests   *prometheus.CounterVec
	notionDuration   *prometheus.HistogramVec
	authCallbacks    *prometheus.CounterVec
	modalSubmissions *prometheus.CounterVec
}

// NewCollector creates a collector and registers it to reg
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		notionRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tsumugi_notion_requests_total",
			Help: "Number of Notion API requests by endpoint and HTTP status. Status 0 is a transport error.",
		}, []string{"endpoint", "status"}),
		notionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tsumugi_notion_request_duration_seconds",
			Help:    "Latency of Notion API requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		authCallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tsumugi_authorization_callbacks_total",
			Help: "Number of Notion OAuth callbacks by result",
		}, []string{"result"}),
		modalSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tsumugi_modal_submissions_total",
			Help: "Number of modal submissions by result",
		}, []string{"result"}),
	}

	reg.MustRegister(
		c.notionRequests,
		c.notionDuration,
		c.authCallbacks,
		c.modalSubmissions,
	)

	return c
}

func (c *Collector) RecordNotionRequest(endpoint string, statusCode int, duration time.Duration) {
	c.notionRequests.WithLabelValues(endpoint, strconv.Itoa(statusCode)).Inc()
	c.notionDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (c *Collector) RecordAuthorizationCallback(result string) {
	c.authCallbacks.WithLabelValues(result).Inc()
}

func (c *Collector) RecordModalSubmission(result string) {
	c.modalSubmissions.WithLabelValues(result).Inc()
}

// Handler serves the Prometheus scrape endpoint
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards everything. Used when metrics are disabled.
type Nop struct{}

func (Nop) RecordNotionRequest(string, int, time.Duration) {}
func (Nop) RecordAuthorizationCallback(string)             {}
func (Nop) RecordModalSubmission(string)                   {}

var (
	_ Recorder = (*Collector)(nil)
	_ Recorder = Nop{}
)
