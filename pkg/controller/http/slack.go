package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	slack_ctrl "github.com/m-mizutani/tsumugi/pkg/controller/slack"
	"github.com/m-mizutani/tsumugi/pkg/domain/types/apperr"
	"github.com/m-mizutani/tsumugi/pkg/utils/async"
	"github.com/m-mizutani/tsumugi/pkg/utils/safe"
	"github.com/slack-go/slack"
)

// slashCommandHandler acknowledges at once and runs the command in the
// background. Slack gives up on a response after three seconds.
func slashCommandHandler(ctrl *slack_ctrl.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cmd, err := slack.SlashCommandParse(r)
		if err != nil {
			handleError(w, r, goerr.Wrap(err, "failed to parse slash command", goerr.T(apperr.ErrTagInvalidInput)))
			return
		}

		ctx := ctxlog.With(r.Context(), ctxlog.From(r.Context()).With("user_id", cmd.UserID))
		async.Dispatch(ctx, func(ctx context.Context) error {
			return ctrl.HandleSlashCommand(ctx, &cmd)
		})

		w.WriteHeader(http.StatusOK)
	}
}

func interactionHandler(ctrl *slack_ctrl.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := r.FormValue("payload")
		if payload == "" {
			handleError(w, r, goerr.New("interaction payload is empty", goerr.T(apperr.ErrTagInvalidInput)))
			return
		}

		var cb slack.InteractionCallback
		if err := json.Unmarshal([]byte(payload), &cb); err != nil {
			handleError(w, r, goerr.Wrap(err, "failed to parse interaction payload", goerr.T(apperr.ErrTagInvalidInput)))
			return
		}

		ctx := ctxlog.With(r.Context(), ctxlog.From(r.Context()).With("user_id", cb.User.ID, "type", cb.Type))

		switch cb.Type {
		case slack.InteractionTypeBlockActions:
			async.Dispatch(ctx, func(ctx context.Context) error {
				return ctrl.HandleBlockActions(ctx, &cb)
			})
			w.WriteHeader(http.StatusOK)

		case slack.InteractionTypeViewSubmission:
			// response_action must be in this response, so no dispatch
			resp, err := ctrl.HandleViewSubmission(ctx, &cb)
			if err != nil {
				handleError(w, r, err)
				return
			}
			if resp == nil {
				w.WriteHeader(http.StatusOK)
				return
			}

			body, err := json.Marshal(resp)
			if err != nil {
				handleError(w, r, goerr.Wrap(err, "failed to marshal view submission response"))
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			safe.Write(ctx, w, body)

		case slack.InteractionTypeViewClosed:
			async.Dispatch(ctx, func(ctx context.Context) error {
				return ctrl.HandleViewClosed(ctx, &cb)
			})
			w.WriteHeader(http.StatusOK)

		default:
			ctxlog.From(ctx).Warn("unsupported interaction type", "type", cb.Type)
			w.WriteHeader(http.StatusOK)
		}
	}
}
