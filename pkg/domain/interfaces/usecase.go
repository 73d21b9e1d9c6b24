package interfaces

import (
	"context"

	"github.com/m-mizutani/tsumugi/pkg/domain/model/auth"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/modal"
)

// SlackUseCases are triggered by slash commands and interactivity payloads
type SlackUseCases interface {
	StartAuthorization(ctx context.Context, userID, roomID string) error
	RebindAuthorization(ctx context.Context, userID, roomID string) error
	Disconnect(ctx context.Context, userID, roomID string) error
	ShowStatus(ctx context.Context, userID, roomID string) error
	ShowHelp(ctx context.Context, userID, roomID string) error

	OpenModal(ctx context.Context, userID, roomID, triggerID string) error
	SelectParent(ctx context.Context, in *modal.Interaction) error
	AddProperty(ctx context.Context, in *modal.Interaction) error
	RemoveProperty(ctx context.Context, in *modal.Interaction) error
	// SubmitModal returns field errors to keep the modal open, or nil to close it
	SubmitModal(ctx context.Context, in *modal.Interaction) (modal.FieldErrors, error)
	CloseModal(ctx context.Context, in *modal.Interaction) error

	// NotifyFailure posts a generic error to the user. in.RoomID may be
	// empty for modal interactions.
	NotifyFailure(ctx context.Context, in *modal.Interaction) error
}

// OAuthUseCases handle the Notion OAuth redirect. The result is always
// non-nil and carries the HTTP status of the page to render.
type OAuthUseCases interface {
	HandleAuthorizationCallback(ctx context.Context, req *auth.CallbackRequest) *auth.CallbackResult
}
