package usecase

import (
	"context"
	"net/http"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tsumugi/pkg/domain/interfaces"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/auth"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/notion"
	"github.com/m-mizutani/tsumugi/pkg/domain/types/apperr"
	"github.com/m-mizutani/tsumugi/pkg/metrics"
	"github.com/m-mizutani/tsumugi/pkg/utils/errors"
	"github.com/slack-go/slack"
)

// AuthorizationFlow links a Slack user to a Notion workspace. The OAuth
// state is the Slack user ID, and the room to notify travels through the
// room binding because the callback runs in a separate request.
type AuthorizationFlow struct {
	oauth    interfaces.NotionOAuth
	users    interfaces.UserDirectory
	slack    interfaces.SlackClient
	tokens   interfaces.TokenRepository
	states   interfaces.InteractionRepository
	ttl      time.Duration
	recorder metrics.Recorder
}

type AuthorizationOption func(*AuthorizationFlow)

// WithAuthorizationTTL sets how long a started authorization accepts its callback
func WithAuthorizationTTL(ttl time.Duration) AuthorizationOption {
	return func(a *AuthorizationFlow) {
		a.ttl = ttl
	}
}

func WithAuthorizationRecorder(recorder metrics.Recorder) AuthorizationOption {
	return func(a *AuthorizationFlow) {
		a.recorder = recorder
	}
}

func NewAuthorizationFlow(
	oauth interfaces.NotionOAuth,
	users interfaces.UserDirectory,
	slackClient interfaces.SlackClient,
	tokens interfaces.TokenRepository,
	states interfaces.InteractionRepository,
	opts ...AuthorizationOption,
) *AuthorizationFlow {
	a := &AuthorizationFlow{
		oauth:    oauth,
		users:    users,
		slack:    slackClient,
		tokens:   tokens,
		states:   states,
		ttl:      auth.DefaultAuthorizationTTL,
		recorder: metrics.Nop{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// StartAuthorization binds the room and shows the connect button
func (a *AuthorizationFlow) StartAuthorization(ctx context.Context, userID, roomID string) error {
	return a.PromptConnect(ctx, userID, roomID, "")
}

// PromptConnect is StartAuthorization with a custom message. Other flows use
// it when they find the user is not connected.
func (a *AuthorizationFlow) PromptConnect(ctx context.Context, userID, roomID, reason string) error {
	if err := a.bind(ctx, userID, roomID, auth.FlowAwaitingRedirect); err != nil {
		return err
	}

	authURL := a.oauth.AuthorizeURL(userID)
	if err := a.slack.PostEphemeral(ctx, roomID, userID, connectPromptBlocks(authURL, reason)...); err != nil {
		return goerr.Wrap(err, "failed to post connect prompt",
			goerr.TV(apperr.UserIDKey, userID),
			goerr.TV(apperr.ChannelIDKey, roomID))
	}

	ctxlog.From(ctx).Info("authorization started", "user_id", userID, "room_id", roomID)
	return nil
}

// RebindAuthorization points a pending authorization at the room where the
// user last clicked connect
func (a *AuthorizationFlow) RebindAuthorization(ctx context.Context, userID, roomID string) error {
	return a.bind(ctx, userID, roomID, auth.FlowAwaitingCallback)
}

func (a *AuthorizationFlow) bind(ctx context.Context, userID, roomID string, stage auth.FlowState) error {
	pending := auth.NewPendingAuthorization(userID, roomID, a.ttl)
	pending.Stage = stage
	if err := a.states.StoreRoomBinding(ctx, pending); err != nil {
		return goerr.Wrap(err, "failed to store room binding",
			goerr.TV(apperr.UserIDKey, userID),
			goerr.TV(apperr.ChannelIDKey, roomID))
	}
	return nil
}

// HandleAuthorizationCallback completes the flow on the OAuth redirect. Any
// callback that does not match a known user with a live room binding is
// rejected before the code is exchanged, and nothing is written.
func (a *AuthorizationFlow) HandleAuthorizationCallback(ctx context.Context, req *auth.CallbackRequest) *auth.CallbackResult {
	result := a.handleCallback(ctx, req)
	a.recorder.RecordAuthorizationCallback(result.Label())
	return result
}

func failed(reason auth.FailureReason, status int) *auth.CallbackResult {
	return &auth.CallbackResult{State: auth.FlowFailed, Reason: reason, StatusCode: status}
}

func (a *AuthorizationFlow) handleCallback(ctx context.Context, req *auth.CallbackRequest) *auth.CallbackResult {
	logger := ctxlog.From(ctx)

	if req.Error != "" {
		errors.Handle(ctx, goerr.Wrap(apperr.ErrUserAborted, "notion redirected with an error",
			goerr.V("error", req.Error),
			goerr.V("state", req.State)))
		return failed(auth.ReasonUserAborted, http.StatusUnauthorized)
	}
	if req.Code == "" || req.State == "" {
		logger.Warn("authorization callback without code or state")
		return failed(auth.ReasonBadRequest, http.StatusBadRequest)
	}

	userID := req.State
	logger = logger.With("user_id", userID)

	exists, err := a.users.LookupUser(ctx, userID)
	if err != nil {
		errors.Handle(ctx, goerr.Wrap(err, "failed to resolve callback state", goerr.TV(apperr.UserIDKey, userID)))
		return failed(auth.ReasonInternal, http.StatusInternalServerError)
	}
	if !exists {
		errors.Handle(ctx, goerr.Wrap(apperr.ErrStaleCallback, "callback state is not a known user",
			goerr.TV(apperr.UserIDKey, userID)))
		return failed(auth.ReasonStaleCallback, http.StatusUnauthorized)
	}

	pending, err := a.states.GetRoomBinding(ctx, userID)
	if err != nil {
		errors.Handle(ctx, err)
		return failed(auth.ReasonInternal, http.StatusInternalServerError)
	}
	if !pending.IsValid() {
		errors.Handle(ctx, goerr.Wrap(apperr.ErrStaleCallback, "no live room binding for callback",
			goerr.TV(apperr.UserIDKey, userID),
			goerr.V("pending", pending)))
		return failed(auth.ReasonStaleCallback, http.StatusUnauthorized)
	}
	logger = logger.With("room_id", pending.RoomID)

	record, err := a.oauth.Exchange(ctx, req.Code)
	if err != nil {
		status := http.StatusBadGateway
		message := "Notion could not be reached. Please try again."
		if apiErr, ok := notion.AsAPIError(err); ok {
			logger.Warn("notion rejected the authorization code",
				"status", apiErr.StatusCode, "code", apiErr.Code, "message", apiErr.Message)
			if apiErr.StatusCode >= 400 {
				status = apiErr.StatusCode
			}
			message = apiErr.UserMessage()
		} else {
			errors.Handle(ctx, err)
		}

		a.notify(ctx, pending, connectFailedBlocks(message+" Run /notion connect to try again."))
		a.clearBinding(ctx, userID)
		return failed(auth.ReasonProviderError, status)
	}

	if !a.oauth.IsWorkspaceAllowed(record.WorkspaceID) {
		errors.Handle(ctx, goerr.Wrap(apperr.ErrWorkspaceNotAllowed, "authorized workspace is not in the allow list",
			goerr.TV(apperr.UserIDKey, userID),
			goerr.TV(apperr.WorkspaceIDKey, record.WorkspaceID),
			goerr.V("workspace_name", record.WorkspaceName)))
		a.notify(ctx, pending, workspaceNotAllowedBlocks(record.WorkspaceName))
		a.clearBinding(ctx, userID)
		result := failed(auth.ReasonNotAllowed, http.StatusForbidden)
		result.WorkspaceName = record.WorkspaceName
		return result
	}

	record.UserID = userID
	if err := a.tokens.SaveToken(ctx, record); err != nil {
		errors.Handle(ctx, err)
		return failed(auth.ReasonInternal, http.StatusInternalServerError)
	}

	a.notify(ctx, pending, connectedBlocks(record.WorkspaceName))
	a.clearBinding(ctx, userID)

	logger.Info("notion workspace connected", "workspace_id", record.WorkspaceID)
	return &auth.CallbackResult{
		State:         auth.FlowConnected,
		StatusCode:    http.StatusOK,
		WorkspaceName: record.WorkspaceName,
	}
}

// notify is best effort. A lost notification must not undo a stored token.
func (a *AuthorizationFlow) notify(ctx context.Context, pending *auth.PendingAuthorization, blocks []slack.Block) {
	if err := a.slack.PostEphemeral(ctx, pending.RoomID, pending.UserID, blocks...); err != nil {
		errors.Handle(ctx, goerr.Wrap(err, "failed to notify room",
			goerr.TV(apperr.UserIDKey, pending.UserID),
			goerr.TV(apperr.ChannelIDKey, pending.RoomID)))
	}
}

// clearBinding leaves a stale binding behind on failure; the next start overwrites it
func (a *AuthorizationFlow) clearBinding(ctx context.Context, userID string) {
	if err := a.states.ClearRoomBinding(ctx, userID); err != nil {
		errors.Handle(ctx, err)
	}
}

// Disconnect forgets the user's token
func (a *AuthorizationFlow) Disconnect(ctx context.Context, userID, roomID string) error {
	token, err := a.tokens.GetToken(ctx, userID)
	if err != nil {
		return err
	}
	if !token.IsConnected() {
		return a.slack.PostEphemeral(ctx, roomID, userID, notConnectedBlocks()...)
	}

	if err := a.tokens.DeleteToken(ctx, userID); err != nil {
		return err
	}
	ctxlog.From(ctx).Info("notion workspace disconnected", "user_id", userID, "workspace_id", token.WorkspaceID)

	return a.slack.PostEphemeral(ctx, roomID, userID, disconnectedBlocks(token.WorkspaceName)...)
}

// ShowStatus tells the user which workspace is connected, or prompts to connect
func (a *AuthorizationFlow) ShowStatus(ctx context.Context, userID, roomID string) error {
	token, err := a.tokens.GetToken(ctx, userID)
	if err != nil {
		return err
	}
	pending, err := a.states.GetRoomBinding(ctx, userID)
	if err != nil {
		return err
	}

	state := auth.CurrentFlowState(token.IsConnected(), pending)
	ctxlog.From(ctx).Debug("showing connection status", "user_id", userID, "flow_state", state)

	switch state {
	case auth.FlowConnected:
		return a.slack.PostEphemeral(ctx, roomID, userID, statusBlocks(token)...)
	case auth.FlowAwaitingCallback:
		return a.PromptConnect(ctx, userID, roomID, "A Notion authorization is in progress. Finish it in your browser, or start over with the button below.")
	default:
		return a.PromptConnect(ctx, userID, roomID, "No Notion workspace is connected yet.")
	}
}

var _ interfaces.OAuthUseCases = (*AuthorizationFlow)(nil)
