package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tsumugi/pkg/domain/interfaces"
	model "github.com/m-mizutani/tsumugi/pkg/domain/model/notion"
	"github.com/m-mizutani/tsumugi/pkg/domain/types/apperr"
	"github.com/m-mizutani/tsumugi/pkg/metrics"
	"github.com/m-mizutani/tsumugi/pkg/utils/safe"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://api.notion.com"
	APIVersion     = "2022-06-28"

	// DefaultRequestsPerSecond is the average rate Notion allows per integration
	DefaultRequestsPerSecond = 3

	searchPageSize  = 100
	maxResponseSize = 4 << 20
	untitled        = "Untitled"
)

// Endpoint labels for logs and metrics
const (
	endpointSearch         = "search"
	endpointGetDatabase    = "get_database"
	endpointCreateDatabase = "create_database"
	endpointCreatePage     = "create_page"
)

// Client calls the Notion REST API. It performs no retries; every method is
// one HTTP round trip paced by the rate limiter.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	recorder   metrics.Recorder
}

type ClientOption func(*Client)

func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithRateLimit sets requests per second. Zero or negative disables pacing.
func WithRateLimit(rps float64) ClientOption {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), max(1, int(rps)))
	}
}

func WithRecorder(recorder metrics.Recorder) ClientOption {
	return func(c *Client) {
		c.recorder = recorder
	}
}

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), DefaultRequestsPerSecond),
		recorder:   metrics.Nop{},
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListPages searches pages shared with the integration. An empty query lists recent pages.
func (c *Client) ListPages(ctx context.Context, token, query string) ([]model.PageSummary, error) {
	req := searchRequest{
		Query:    query,
		Filter:   &searchFilter{Property: "object", Value: "page"},
		PageSize: searchPageSize,
	}

	var resp searchResponse[pageObject]
	if err := c.do(ctx, token, endpointSearch, http.MethodPost, "/v1/search", req, &resp); err != nil {
		return nil, err
	}

	pages := make([]model.PageSummary, 0, len(resp.Results))
	for _, p := range resp.Results {
		if p.Archived || p.InTrash {
			continue
		}
		pages = append(pages, p.toSummary())
	}
	return pages, nil
}

// ListDatabases searches databases shared with the integration
func (c *Client) ListDatabases(ctx context.Context, token string) ([]model.DatabaseSummary, error) {
	req := searchRequest{
		Filter:   &searchFilter{Property: "object", Value: "database"},
		PageSize: searchPageSize,
	}

	var resp searchResponse[databaseObject]
	if err := c.do(ctx, token, endpointSearch, http.MethodPost, "/v1/search", req, &resp); err != nil {
		return nil, err
	}

	dbs := make([]model.DatabaseSummary, 0, len(resp.Results))
	for _, db := range resp.Results {
		if db.Archived || db.InTrash {
			continue
		}
		dbs = append(dbs, db.toSummary())
	}
	return dbs, nil
}

// GetDatabase retrieves a database to learn its title column
func (c *Client) GetDatabase(ctx context.Context, token, databaseID string) (*model.DatabaseSummary, error) {
	var db databaseObject
	if err := c.do(ctx, token, endpointGetDatabase, http.MethodGet, "/v1/databases/"+url.PathEscape(databaseID), nil, &db); err != nil {
		return nil, err
	}

	summary := db.toSummary()
	return &summary, nil
}

// CreateDatabase creates a database under a page. The title column is added
// when properties have none.
func (c *Client) CreateDatabase(ctx context.Context, token string, parent *model.Parent, title string, properties []model.PropertyDefinition) (*model.CreatedEntity, error) {
	if parent == nil || parent.Type != model.ParentTypePage {
		return nil, goerr.New("database parent must be a page", goerr.T(apperr.ErrTagValidation))
	}

	req := createDatabaseRequest{
		Parent:     parentRef{Type: "page_id", PageID: parent.ID},
		Title:      richText(title),
		Properties: buildSchema(model.WithTitleProperty(properties)),
	}

	var db databaseObject
	if err := c.do(ctx, token, endpointCreateDatabase, http.MethodPost, "/v1/databases", req, &db); err != nil {
		return nil, err
	}

	return &model.CreatedEntity{
		ID:     db.ID,
		Object: "database",
		URL:    db.URL,
		Title:  titleOrDefault(plainText(db.Title), title),
	}, nil
}

// CreatePage adds a row to a database, setting only its title
func (c *Client) CreatePage(ctx context.Context, token string, parent *model.Parent, title string) (*model.CreatedEntity, error) {
	if parent == nil || parent.Type != model.ParentTypeDatabase {
		return nil, goerr.New("page parent must be a database", goerr.T(apperr.ErrTagValidation))
	}

	titleProperty := parent.TitleProperty
	if titleProperty == "" {
		titleProperty = model.DefaultTitlePropertyName
	}

	req := createPageRequest{
		Parent: parentRef{Type: "database_id", DatabaseID: parent.ID},
		Properties: map[string]any{
			titleProperty: map[string]any{"title": richText(title)},
		},
	}

	var page pageObject
	if err := c.do(ctx, token, endpointCreatePage, http.MethodPost, "/v1/pages", req, &page); err != nil {
		return nil, err
	}

	return &model.CreatedEntity{
		ID:     page.ID,
		Object: "page",
		URL:    page.URL,
		Title:  titleOrDefault(page.title(), title),
	}, nil
}

func (c *Client) do(ctx context.Context, token, endpoint, method, path string, reqBody, respBody any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return goerr.Wrap(err, "rate limiter wait failed", goerr.TV(apperr.EndpointKey, endpoint))
	}

	var body io.Reader
	if reqBody != nil {
		raw, err := json.Marshal(reqBody)
		if err != nil {
			return goerr.Wrap(err, "failed to encode notion request", goerr.TV(apperr.EndpointKey, endpoint))
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return goerr.Wrap(err, "failed to create notion request", goerr.TV(apperr.EndpointKey, endpoint))
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Notion-Version", APIVersion)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.recorder.RecordNotionRequest(endpoint, 0, time.Since(start))
		return goerr.Wrap(err, "notion request failed",
			goerr.T(apperr.ErrTagRemoteService),
			goerr.TV(apperr.EndpointKey, endpoint))
	}
	defer safe.Close(ctx, resp.Body)
	c.recorder.RecordNotionRequest(endpoint, resp.StatusCode, time.Since(start))

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return goerr.Wrap(err, "failed to read notion response",
			goerr.T(apperr.ErrTagRemoteService),
			goerr.TV(apperr.EndpointKey, endpoint))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &model.APIError{StatusCode: resp.StatusCode}
		var envelope errorEnvelope
		if err := json.Unmarshal(raw, &envelope); err == nil {
			apiErr.Code = envelope.Code
			apiErr.Message = envelope.Message
		}
		return goerr.Wrap(apiErr, "notion api returned an error",
			goerr.T(apperr.ErrTagRemoteService),
			goerr.TV(apperr.EndpointKey, endpoint),
			goerr.TV(apperr.StatusCodeKey, resp.StatusCode))
	}

	if respBody != nil {
		if err := json.Unmarshal(raw, respBody); err != nil {
			return goerr.Wrap(err, "failed to decode notion response",
				goerr.T(apperr.ErrTagRemoteService),
				goerr.TV(apperr.EndpointKey, endpoint))
		}
	}
	return nil
}

func titleOrDefault(title, fallback string) string {
	if title != "" && title != untitled {
		return title
	}
	return fallback
}

var _ interfaces.NotionClient = (*Client)(nil)
