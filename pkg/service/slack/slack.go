package slack

import (
	"context"
	"errors"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tsumugi/pkg/domain/interfaces"
	"github.com/m-mizutani/tsumugi/pkg/domain/types/apperr"
	api "github.com/slack-go/slack"
)

// Service implements Slack Web API operations used by the flows
type Service struct {
	client    *api.Client
	botUserID string
	teamID    string
}

type Option func(*options)

type options struct {
	apiOptions []api.Option
}

// WithAPIURL points the client to another Slack API endpoint
func WithAPIURL(url string) Option {
	return func(o *options) {
		o.apiOptions = append(o.apiOptions, api.OptionAPIURL(url))
	}
}

// New creates a new Slack service and verifies the token
func New(ctx context.Context, token string, opts ...Option) (*Service, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	client := api.New(token, o.apiOptions...)

	resp, err := client.AuthTestContext(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to verify slack token", goerr.T(apperr.ErrTagSlackAPI))
	}

	return &Service{
		client:    client,
		botUserID: resp.UserID,
		teamID:    resp.TeamID,
	}, nil
}

// BotUserID returns the user ID of the app's bot user
func (s *Service) BotUserID() string {
	return s.botUserID
}

// PostEphemeral shows blocks to one user in a channel
func (s *Service) PostEphemeral(ctx context.Context, channelID, userID string, blocks ...api.Block) error {
	ts, err := s.client.PostEphemeralContext(ctx, channelID, userID,
		api.MsgOptionBlocks(blocks...),
		api.MsgOptionText(fallbackText(blocks), false),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post ephemeral message",
			goerr.T(apperr.ErrTagSlackAPI),
			goerr.TV(apperr.ChannelIDKey, channelID),
			goerr.TV(apperr.UserIDKey, userID))
	}

	ctxlog.From(ctx).Debug("posted ephemeral message",
		"channel", channelID,
		"user", userID,
		"timestamp", ts,
	)
	return nil
}

// OpenView opens a modal. triggerID is valid for 3 seconds after the interaction.
func (s *Service) OpenView(ctx context.Context, triggerID string, view api.ModalViewRequest) (*api.View, error) {
	resp, err := s.client.OpenViewContext(ctx, triggerID, view)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open view",
			append([]goerr.Option{goerr.T(apperr.ErrTagSlackAPI)}, responseValues(resp)...)...)
	}
	return &resp.View, nil
}

// UpdateView replaces the blocks of an open view. hash guards against
// overwriting a newer version of the view.
func (s *Service) UpdateView(ctx context.Context, viewID, hash string, view api.ModalViewRequest) (*api.View, error) {
	resp, err := s.client.UpdateViewContext(ctx, view, "", hash, viewID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update view",
			append([]goerr.Option{
				goerr.T(apperr.ErrTagSlackAPI),
				goerr.TV(apperr.ViewIDKey, viewID),
			}, responseValues(resp)...)...)
	}
	return &resp.View, nil
}

// LookupUser checks that the user exists and is active in the workspace
func (s *Service) LookupUser(ctx context.Context, userID string) (bool, error) {
	user, err := s.client.GetUserInfoContext(ctx, userID)
	if err != nil {
		var slackErr api.SlackErrorResponse
		if errors.As(err, &slackErr) && slackErr.Err == "user_not_found" {
			return false, nil
		}
		if err.Error() == "user_not_found" {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to get user info",
			goerr.T(apperr.ErrTagSlackAPI),
			goerr.TV(apperr.UserIDKey, userID))
	}

	if user.Deleted || (s.teamID != "" && user.TeamID != "" && user.TeamID != s.teamID) {
		return false, nil
	}
	return true, nil
}

// responseValues keeps block validation details of views.* errors
func responseValues(resp *api.ViewResponse) []goerr.Option {
	if resp == nil {
		return nil
	}
	return []goerr.Option{goerr.V("response_metadata", resp.ResponseMetadata.Messages)}
}

// fallbackText is the notification text of a block message
func fallbackText(blocks []api.Block) string {
	for _, b := range blocks {
		if section, ok := b.(*api.SectionBlock); ok && section.Text != nil {
			return section.Text.Text
		}
	}
	return ""
}

var (
	_ interfaces.SlackClient   = (*Service)(nil)
	_ interfaces.UserDirectory = (*Service)(nil)
)
