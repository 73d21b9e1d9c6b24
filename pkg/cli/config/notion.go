package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/auth"
	model "github.com/m-mizutani/tsumugi/pkg/domain/model/notion"
	"github.com/m-mizutani/tsumugi/pkg/metrics"
	"github.com/m-mizutani/tsumugi/pkg/service/notion"
	"github.com/urfave/cli/v3"
)

type Notion struct {
	ClientID            string
	ClientSecret        string `masq:"secret"`
	AllowedWorkspaceIDs []string
	RequestsPerSecond   float64
	PropertyTypesFile   string
	AuthorizationTTL    time.Duration
}

// Flags returns CLI flags for Notion configuration
func (n *Notion) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "notion-client-id",
			Category:    "notion",
			Sources:     cli.EnvVars("TSUMUGI_NOTION_CLIENT_ID"),
			Usage:       "Notion OAuth Client ID",
			Destination: &n.ClientID,
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "notion-client-secret",
			Category:    "notion",
			Sources:     cli.EnvVars("TSUMUGI_NOTION_CLIENT_SECRET"),
			Usage:       "Notion OAuth Client Secret",
			Destination: &n.ClientSecret,
			Required:    true,
		},
		&cli.StringSliceFlag{
			Name:        "notion-allowed-workspace-ids",
			Category:    "notion",
			Sources:     cli.EnvVars("TSUMUGI_NOTION_ALLOWED_WORKSPACE_IDS"),
			Usage:       "Notion workspace IDs allowed to connect (all if empty)",
			Destination: &n.AllowedWorkspaceIDs,
		},
		&cli.FloatFlag{
			Name:        "notion-api-rate",
			Category:    "notion",
			Sources:     cli.EnvVars("TSUMUGI_NOTION_API_RATE"),
			Usage:       "Maximum Notion API requests per second",
			Value:       notion.DefaultRequestsPerSecond,
			Destination: &n.RequestsPerSecond,
		},
		&cli.StringFlag{
			Name:        "notion-property-types",
			Category:    "notion",
			Sources:     cli.EnvVars("TSUMUGI_NOTION_PROPERTY_TYPES"),
			Usage:       "YAML file of selectable property types (embedded default if empty)",
			Destination: &n.PropertyTypesFile,
		},
		&cli.DurationFlag{
			Name:        "notion-authorization-ttl",
			Category:    "notion",
			Sources:     cli.EnvVars("TSUMUGI_NOTION_AUTHORIZATION_TTL"),
			Usage:       "How long a started authorization waits for the callback",
			Value:       auth.DefaultAuthorizationTTL,
			Destination: &n.AuthorizationTTL,
		},
	}
}

// Validate validates the Notion configuration
func (n *Notion) Validate() error {
	if n.ClientID == "" {
		return goerr.New("Notion Client ID is required")
	}
	if n.ClientSecret == "" {
		return goerr.New("Notion Client Secret is required")
	}
	if n.RequestsPerSecond < 0 {
		return goerr.New("Notion API rate must not be negative", goerr.V("rate", n.RequestsPerSecond))
	}
	if n.AuthorizationTTL <= 0 {
		return goerr.New("authorization TTL must be positive", goerr.V("ttl", n.AuthorizationTTL))
	}

	return nil
}

// BuildOAuthService creates the OAuth service redirecting to redirectURI
func (n *Notion) BuildOAuthService(redirectURI string, recorder metrics.Recorder) *notion.OAuthService {
	return notion.NewOAuthService(notion.OAuthConfig{
		ClientID:            n.ClientID,
		ClientSecret:        n.ClientSecret,
		RedirectURI:         redirectURI,
		AllowedWorkspaceIDs: n.AllowedWorkspaceIDs,
	}, notion.WithOAuthRecorder(recorder))
}

// BuildClient creates the REST client
func (n *Notion) BuildClient(recorder metrics.Recorder) *notion.Client {
	return notion.NewClient(
		notion.WithRateLimit(n.RequestsPerSecond),
		notion.WithRecorder(recorder),
	)
}

// Catalog loads the property type catalog
func (n *Notion) Catalog() (*model.Catalog, error) {
	if n.PropertyTypesFile == "" {
		return model.DefaultCatalog(), nil
	}
	return model.LoadCatalog(n.PropertyTypesFile)
}

func (n Notion) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("client_id", n.ClientID),
		slog.Any("allowed_workspace_ids", n.AllowedWorkspaceIDs),
		slog.Float64("requests_per_second", n.RequestsPerSecond),
		slog.String("property_types_file", n.PropertyTypesFile),
		slog.Duration("authorization_ttl", n.AuthorizationTTL),
	)
}
