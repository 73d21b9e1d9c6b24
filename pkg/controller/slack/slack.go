package slack

import (
	"context"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tsumugi/pkg/domain/interfaces"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/modal"
	"github.com/m-mizutani/tsumugi/pkg/domain/types/apperr"
	errutil "github.com/m-mizutani/tsumugi/pkg/utils/errors"
	"github.com/slack-go/slack"
)

// Controller handles Slack slash commands and interactivity payloads
type Controller struct {
	uc interfaces.SlackUseCases
}

// New creates a new Slack controller
func New(uc interfaces.SlackUseCases) *Controller {
	return &Controller{
		uc: uc,
	}
}

// HandleSlashCommand routes `/notion <subcommand>`. A failed command also
// leaves a generic error message in the channel.
func (x *Controller) HandleSlashCommand(ctx context.Context, cmd *slack.SlashCommand) error {
	if err := x.runSlashCommand(ctx, cmd); err != nil {
		x.notifyFailure(ctx, &modal.Interaction{UserID: cmd.UserID, RoomID: cmd.ChannelID})
		return err
	}
	return nil
}

func (x *Controller) runSlashCommand(ctx context.Context, cmd *slack.SlashCommand) error {
	subcommand, _, _ := strings.Cut(strings.TrimSpace(cmd.Text), " ")
	subcommand = strings.ToLower(subcommand)

	ctxlog.From(ctx).Debug("handling slash command",
		"command", cmd.Command,
		"subcommand", subcommand,
		"user_id", cmd.UserID,
		"channel_id", cmd.ChannelID,
	)

	switch subcommand {
	case "connect":
		return x.uc.StartAuthorization(ctx, cmd.UserID, cmd.ChannelID)
	case "create", "db":
		return x.uc.OpenModal(ctx, cmd.UserID, cmd.ChannelID, cmd.TriggerID)
	case "disconnect":
		return x.uc.Disconnect(ctx, cmd.UserID, cmd.ChannelID)
	case "status":
		return x.uc.ShowStatus(ctx, cmd.UserID, cmd.ChannelID)
	default:
		return x.uc.ShowHelp(ctx, cmd.UserID, cmd.ChannelID)
	}
}

// HandleBlockActions routes button clicks and dispatching selects
func (x *Controller) HandleBlockActions(ctx context.Context, cb *slack.InteractionCallback) error {
	for _, action := range cb.ActionCallback.BlockActions {
		if action == nil {
			continue
		}
		in := NewInteraction(cb, action)

		ctxlog.From(ctx).Debug("handling block action",
			"action_id", in.ActionID,
			"block_id", in.BlockID,
			"user_id", in.UserID,
			"view_id", in.SurfaceID,
		)

		var err error
		switch in.ActionID {
		case modal.ActionConnectWorkspace:
			err = x.uc.RebindAuthorization(ctx, in.UserID, in.RoomID)
		case modal.ActionParentSelect:
			err = x.uc.SelectParent(ctx, in)
		case modal.ActionPropertyAdd:
			err = x.uc.AddProperty(ctx, in)
		case modal.ActionPropertyRemove:
			err = x.uc.RemoveProperty(ctx, in)
		default:
			// links and inputs without dispatch have nothing to do
			continue
		}
		if err != nil {
			x.notifyFailure(ctx, in)
			return goerr.Wrap(err, "failed to handle block action", goerr.TV(apperr.ActionIDKey, in.ActionID))
		}
	}
	return nil
}

// HandleViewSubmission returns a response with field errors to keep the
// modal open, or nil to close it
func (x *Controller) HandleViewSubmission(ctx context.Context, cb *slack.InteractionCallback) (*slack.ViewSubmissionResponse, error) {
	if cb.View.CallbackID != modal.ViewCreateDatabase {
		ctxlog.From(ctx).Warn("unknown view submitted", "callback_id", cb.View.CallbackID)
		return nil, nil
	}

	errs, err := x.uc.SubmitModal(ctx, NewInteraction(cb, nil))
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return slack.NewErrorsViewSubmissionResponse(errs), nil
	}
	return nil, nil
}

// HandleViewClosed drops the session of a cancelled modal
func (x *Controller) HandleViewClosed(ctx context.Context, cb *slack.InteractionCallback) error {
	if cb.View.CallbackID != modal.ViewCreateDatabase {
		return nil
	}
	return x.uc.CloseModal(ctx, NewInteraction(cb, nil))
}

// notifyFailure is best effort. The original error is returned to the caller either way.
func (x *Controller) notifyFailure(ctx context.Context, in *modal.Interaction) {
	if err := x.uc.NotifyFailure(ctx, in); err != nil {
		errutil.Handle(ctx, goerr.Wrap(err, "failed to notify user of a failed request",
			goerr.TV(apperr.UserIDKey, in.UserID)))
	}
}

// NewInteraction converts an interactivity payload. action is nil for view events.
func NewInteraction(cb *slack.InteractionCallback, action *slack.BlockAction) *modal.Interaction {
	in := &modal.Interaction{
		UserID:    cb.User.ID,
		TeamID:    cb.Team.ID,
		RoomID:    cb.Channel.ID,
		TriggerID: cb.TriggerID,
		ViewID:    cb.View.CallbackID,
		SurfaceID: cb.View.ID,
		Hash:      cb.View.Hash,
		Revision:  cb.View.PrivateMetadata,
		Values:    inputValues(cb.View.State),
	}
	if in.RoomID == "" {
		in.RoomID = cb.Container.ChannelID
	}

	if action != nil {
		in.ActionID = action.ActionID
		in.BlockID = action.BlockID
		in.Value = actionValue(action)
	}
	return in
}

// inputValues flattens view state, dropping block revisions from the keys
func inputValues(state *slack.ViewState) map[string]string {
	values := map[string]string{}
	if state == nil {
		return values
	}

	for blockID, actions := range state.Values {
		for _, action := range actions {
			values[modal.InputKey(blockID)] = actionValue(&action)
		}
	}
	return values
}

func actionValue(action *slack.BlockAction) string {
	if action.SelectedOption.Value != "" {
		return action.SelectedOption.Value
	}
	return action.Value
}
