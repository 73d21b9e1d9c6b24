package auth

// FlowState is the state of one user's authorization flow
type FlowState string

const (
	FlowIdle             FlowState = "idle"
	FlowAwaitingRedirect FlowState = "awaiting_redirect"
	FlowAwaitingCallback FlowState = "awaiting_callback"
	FlowConnected        FlowState = "connected"
	FlowFailed           FlowState = "failed"
)

// FailureReason explains why a flow ended in FlowFailed
type FailureReason string

const (
	ReasonNone          FailureReason = ""
	ReasonUserAborted   FailureReason = "user_aborted"
	ReasonStaleCallback FailureReason = "stale_callback"
	ReasonBadRequest    FailureReason = "bad_request"
	ReasonProviderError FailureReason = "provider_error"
	ReasonNotAllowed    FailureReason = "workspace_not_allowed"
	ReasonInternal      FailureReason = "internal"
)

// CallbackRequest holds the query parameters of the OAuth redirect
type CallbackRequest struct {
	Code  string
	State string
	Error string
}

// CallbackResult is the outcome of handling one OAuth callback
type CallbackResult struct {
	State         FlowState
	Reason        FailureReason
	StatusCode    int
	WorkspaceName string
}

// Succeeded returns true if the callback connected the workspace
func (x *CallbackResult) Succeeded() bool {
	return x.State == FlowConnected
}

// Label is the metrics label of the result
func (x *CallbackResult) Label() string {
	if x.Succeeded() {
		return "success"
	}
	return string(x.Reason)
}
