package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tsumugi/pkg/domain/interfaces"
	"github.com/m-mizutani/tsumugi/pkg/domain/types/apperr"
)

// UseCases holds all use cases triggered from Slack and the OAuth redirect
type UseCases struct {
	*AuthorizationFlow
	*ModalSession
}

var (
	_ interfaces.SlackUseCases = (*UseCases)(nil)
	_ interfaces.OAuthUseCases = (*UseCases)(nil)
)

// New wires the authorization flow and the modal session together. The
// modal session prompts through the authorization flow when a user is not
// connected.
func New(auth *AuthorizationFlow, newModal func(prompter ConnectPrompter) *ModalSession) *UseCases {
	return &UseCases{
		AuthorizationFlow: auth,
		ModalSession:      newModal(auth),
	}
}

// ShowHelp lists the available subcommands
func (x *UseCases) ShowHelp(ctx context.Context, userID, roomID string) error {
	if err := x.AuthorizationFlow.slack.PostEphemeral(ctx, roomID, userID, helpBlocks()...); err != nil {
		return goerr.Wrap(err, "failed to post help",
			goerr.TV(apperr.UserIDKey, userID),
			goerr.TV(apperr.ChannelIDKey, roomID))
	}
	return nil
}
