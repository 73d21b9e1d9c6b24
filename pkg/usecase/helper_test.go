package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/tsumugi/pkg/adapters/memory"
	"github.com/m-mizutani/tsumugi/pkg/domain/mock"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/integration"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/notion"
	"github.com/m-mizutani/tsumugi/pkg/repository/state"
	"github.com/m-mizutani/tsumugi/pkg/usecase"
	"github.com/slack-go/slack"
)

type fixture struct {
	slack  *mock.SlackClientMock
	users  *mock.UserDirectoryMock
	notion *mock.NotionClientMock
	oauth  *mock.NotionOAuthMock
	tokens *state.TokenStore
	states *state.InteractionStore
	uc     *usecase.UseCases
}

func newFixture(t *testing.T, opts ...usecase.AuthorizationOption) *fixture {
	t.Helper()

	adapter := memory.New()
	f := &fixture{
		slack: &mock.SlackClientMock{
			PostEphemeralFunc: func(ctx context.Context, channelID, userID string, blocks ...slack.Block) error {
				return nil
			},
			OpenViewFunc: func(ctx context.Context, triggerID string, view slack.ModalViewRequest) (*slack.View, error) {
				return &slack.View{}, nil
			},
			UpdateViewFunc: func(ctx context.Context, viewID, hash string, view slack.ModalViewRequest) (*slack.View, error) {
				return &slack.View{}, nil
			},
		},
		users: &mock.UserDirectoryMock{
			LookupUserFunc: func(ctx context.Context, userID string) (bool, error) {
				return true, nil
			},
		},
		notion: &mock.NotionClientMock{
			ListPagesFunc: func(ctx context.Context, token, query string) ([]notion.PageSummary, error) {
				return nil, nil
			},
			ListDatabasesFunc: func(ctx context.Context, token string) ([]notion.DatabaseSummary, error) {
				return nil, nil
			},
			GetDatabaseFunc: func(ctx context.Context, token, databaseID string) (*notion.DatabaseSummary, error) {
				return &notion.DatabaseSummary{ID: databaseID}, nil
			},
			CreateDatabaseFunc: func(ctx context.Context, token string, parent *notion.Parent, title string, properties []notion.PropertyDefinition) (*notion.CreatedEntity, error) {
				return &notion.CreatedEntity{Object: "database", Title: title}, nil
			},
			CreatePageFunc: func(ctx context.Context, token string, parent *notion.Parent, title string) (*notion.CreatedEntity, error) {
				return &notion.CreatedEntity{Object: "page", Title: title}, nil
			},
		},
		oauth: &mock.NotionOAuthMock{
			AuthorizeURLFunc: func(state string) string {
				return "https://api.notion.com/v1/oauth/authorize?state=" + state
			},
			IsWorkspaceAllowedFunc: func(workspaceID string) bool {
				return true
			},
		},
		tokens: state.NewTokenStore(adapter),
		states: state.NewInteractionStore(adapter),
	}

	flow := usecase.NewAuthorizationFlow(f.oauth, f.users, f.slack, f.tokens, f.states, opts...)
	f.uc = usecase.New(flow, func(prompter usecase.ConnectPrompter) *usecase.ModalSession {
		return usecase.NewModalSession(f.slack, f.notion, f.tokens, f.states, prompter)
	})
	return f
}

func (f *fixture) connect(t *testing.T, userID string) *integration.NotionIntegration {
	t.Helper()

	token := integration.NewNotionIntegration(userID)
	token.UpdateWorkspaceInfo("W1", "Acme", "", "bot")
	token.UpdateTokens("secret_" + userID)
	gt.NoError(t, f.tokens.SaveToken(context.Background(), token)).Required()
	return token
}

// withCandidates makes the Notion mock return one page and one database
func (f *fixture) withCandidates() {
	f.notion.ListPagesFunc = func(ctx context.Context, token, query string) ([]notion.PageSummary, error) {
		return []notion.PageSummary{{ID: "P1", Title: "Team wiki", Icon: "📚"}}, nil
	}
	f.notion.ListDatabasesFunc = func(ctx context.Context, token string) ([]notion.DatabaseSummary, error) {
		return []notion.DatabaseSummary{{ID: "D1", Title: "Tasks", TitleProperty: "Task"}}, nil
	}
	f.notion.GetDatabaseFunc = func(ctx context.Context, token, databaseID string) (*notion.DatabaseSummary, error) {
		return &notion.DatabaseSummary{ID: databaseID, Title: "Tasks", TitleProperty: "Task"}, nil
	}
}

func blocksText(t *testing.T, blocks []slack.Block) string {
	t.Helper()
	raw, err := json.Marshal(blocks)
	gt.NoError(t, err).Required()
	return string(raw)
}

func viewText(t *testing.T, view slack.ModalViewRequest) string {
	t.Helper()
	raw, err := json.Marshal(view)
	gt.NoError(t, err).Required()
	return string(raw)
}
