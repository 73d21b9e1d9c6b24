package notion

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tsumugi/pkg/domain/interfaces"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/integration"
	model "github.com/m-mizutani/tsumugi/pkg/domain/model/notion"
	"github.com/m-mizutani/tsumugi/pkg/domain/types/apperr"
	"github.com/m-mizutani/tsumugi/pkg/metrics"
	"golang.org/x/oauth2"
)

const (
	DefaultAuthorizeURL = "https://api.notion.com/v1/oauth/authorize"
	DefaultTokenURL     = "https://api.notion.com/v1/oauth/token"

	endpointOAuthToken = "oauth_token"
)

type OAuthConfig struct {
	ClientID            string
	ClientSecret        string `masq:"secret"`
	RedirectURI         string
	AllowedWorkspaceIDs []string
}

// OAuthService runs the authorization code grant of a Notion public integration
type OAuthService struct {
	config     OAuthConfig
	oauth      *oauth2.Config
	httpClient *http.Client
	recorder   metrics.Recorder
}

type OAuthOption func(*OAuthService)

// WithOAuthEndpoint overrides the authorize and token URLs
func WithOAuthEndpoint(authURL, tokenURL string) OAuthOption {
	return func(s *OAuthService) {
		s.oauth.Endpoint.AuthURL = authURL
		s.oauth.Endpoint.TokenURL = tokenURL
	}
}

func WithOAuthHTTPClient(client *http.Client) OAuthOption {
	return func(s *OAuthService) {
		s.httpClient = client
	}
}

func WithOAuthRecorder(recorder metrics.Recorder) OAuthOption {
	return func(s *OAuthService) {
		s.recorder = recorder
	}
}

func NewOAuthService(config OAuthConfig, opts ...OAuthOption) *OAuthService {
	s := &OAuthService{
		config: config,
		oauth: &oauth2.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			RedirectURL:  config.RedirectURI,
			Endpoint: oauth2.Endpoint{
				AuthURL:  DefaultAuthorizeURL,
				TokenURL: DefaultTokenURL,
				// Notion takes client credentials only as a Basic Authorization header
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		httpClient: &http.Client{Timeout: 30 * time.Second},
		recorder:   metrics.Nop{},
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AuthorizeURL builds the consent page URL. state is echoed back to the callback.
func (s *OAuthService) AuthorizeURL(state string) string {
	return s.oauth.AuthCodeURL(state, oauth2.SetAuthURLParam("owner", "user"))
}

// IsWorkspaceAllowed checks the workspace against the allow-list. An empty list allows all.
func (s *OAuthService) IsWorkspaceAllowed(workspaceID string) bool {
	if len(s.config.AllowedWorkspaceIDs) == 0 {
		return true
	}
	return slices.Contains(s.config.AllowedWorkspaceIDs, workspaceID)
}

// Exchange trades the authorization code for a token. The returned record has
// no UserID; the caller owns the binding to a Slack user. A rejection by
// Notion is returned as *model.APIError.
func (s *OAuthService) Exchange(ctx context.Context, code string) (*integration.NotionIntegration, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)

	start := time.Now()
	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			apiErr := toAPIError(retrieveErr)
			s.recorder.RecordNotionRequest(endpointOAuthToken, apiErr.StatusCode, time.Since(start))
			return nil, goerr.Wrap(apiErr, "notion rejected the authorization code",
				goerr.T(apperr.ErrTagRemoteService),
				goerr.TV(apperr.EndpointKey, endpointOAuthToken),
				goerr.TV(apperr.StatusCodeKey, apiErr.StatusCode))
		}

		s.recorder.RecordNotionRequest(endpointOAuthToken, 0, time.Since(start))
		return nil, goerr.Wrap(err, "failed to exchange authorization code",
			goerr.T(apperr.ErrTagRemoteService),
			goerr.TV(apperr.EndpointKey, endpointOAuthToken))
	}
	s.recorder.RecordNotionRequest(endpointOAuthToken, http.StatusOK, time.Since(start))

	workspaceID := extraString(token, "workspace_id")
	if workspaceID == "" {
		return nil, goerr.New("token response has no workspace_id",
			goerr.T(apperr.ErrTagRemoteService),
			goerr.TV(apperr.EndpointKey, endpointOAuthToken))
	}

	record := integration.NewNotionIntegration("")
	record.UpdateWorkspaceInfo(
		workspaceID,
		extraString(token, "workspace_name"),
		extraString(token, "workspace_icon"),
		extraString(token, "bot_id"),
	)
	record.UpdateTokens(token.AccessToken)

	return record, nil
}

func extraString(token *oauth2.Token, key string) string {
	v, _ := token.Extra(key).(string)
	return v
}

// toAPIError converts a token endpoint failure. Notion answers either with
// the OAuth error fields or with its usual {status, code, message} envelope.
func toAPIError(re *oauth2.RetrieveError) *model.APIError {
	apiErr := &model.APIError{
		Code:    re.ErrorCode,
		Message: re.ErrorDescription,
	}
	if re.Response != nil {
		apiErr.StatusCode = re.Response.StatusCode
	}

	if apiErr.Code == "" {
		var envelope errorEnvelope
		if err := json.Unmarshal(re.Body, &envelope); err == nil {
			apiErr.Code = envelope.Code
			apiErr.Message = envelope.Message
		}
	}
	if apiErr.StatusCode == 0 {
		apiErr.StatusCode = http.StatusBadGateway
	}

	return apiErr
}

var _ interfaces.NotionOAuth = (*OAuthService)(nil)
