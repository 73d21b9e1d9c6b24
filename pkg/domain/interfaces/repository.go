package interfaces

import (
	"context"

	"github.com/m-mizutani/tsumugi/pkg/domain/model/auth"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/integration"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/modal"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/notion"
)

// TokenRepository keeps one Notion token per user. GetToken returns
// (nil, nil) for a user who is not connected.
type TokenRepository interface {
	SaveToken(ctx context.Context, token *integration.NotionIntegration) error
	GetToken(ctx context.Context, userID string) (*integration.NotionIntegration, error)
	DeleteToken(ctx context.Context, userID string) error
}

// InteractionRepository persists cross-request state of the Slack flows
type InteractionRepository interface {
	// Room binding between the authorization start and the OAuth callback
	StoreRoomBinding(ctx context.Context, pending *auth.PendingAuthorization) error
	GetRoomBinding(ctx context.Context, userID string) (*auth.PendingAuthorization, error)
	ClearRoomBinding(ctx context.Context, userID string) error

	// Modal session state keyed by (userID, viewID)
	SetRoom(ctx context.Context, userID, viewID, roomID string) error
	SetParent(ctx context.Context, userID, viewID string, parent *notion.Parent) error
	AddProperty(ctx context.Context, userID, viewID string, def notion.PropertyDefinition) error
	RemoveProperty(ctx context.Context, userID, viewID, name string) error
	SetInputValue(ctx context.Context, userID, viewID, key, value string) error
	SetInputValues(ctx context.Context, userID, viewID string, values map[string]string) error
	SetCandidates(ctx context.Context, userID, viewID string, candidates *notion.Candidates) error
	GetState(ctx context.Context, userID, viewID string) (*modal.State, error)
	ClearAll(ctx context.Context, userID, viewID string) error
}
