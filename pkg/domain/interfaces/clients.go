package interfaces

import (
	"context"

	"github.com/m-mizutani/tsumugi/pkg/domain/model/integration"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/notion"
	"github.com/slack-go/slack"
)

// SlackClient is the subset of the Slack Web API used by the flows
type SlackClient interface {
	PostEphemeral(ctx context.Context, channelID, userID string, blocks ...slack.Block) error
	OpenView(ctx context.Context, triggerID string, view slack.ModalViewRequest) (*slack.View, error)
	UpdateView(ctx context.Context, viewID, hash string, view slack.ModalViewRequest) (*slack.View, error)
}

// UserDirectory resolves chat users. Lookup returns false for unknown users.
type UserDirectory interface {
	LookupUser(ctx context.Context, userID string) (bool, error)
}

// NotionClient calls the Notion REST API with a user's access token.
// Non-2xx responses are returned as *notion.APIError.
type NotionClient interface {
	ListPages(ctx context.Context, token, query string) ([]notion.PageSummary, error)
	ListDatabases(ctx context.Context, token string) ([]notion.DatabaseSummary, error)
	GetDatabase(ctx context.Context, token, databaseID string) (*notion.DatabaseSummary, error)
	CreateDatabase(ctx context.Context, token string, parent *notion.Parent, title string, properties []notion.PropertyDefinition) (*notion.CreatedEntity, error)
	CreatePage(ctx context.Context, token string, parent *notion.Parent, title string) (*notion.CreatedEntity, error)
}

// NotionOAuth runs the Notion public integration authorization
type NotionOAuth interface {
	AuthorizeURL(state string) string
	Exchange(ctx context.Context, code string) (*integration.NotionIntegration, error)
	IsWorkspaceAllowed(workspaceID string) bool
}
