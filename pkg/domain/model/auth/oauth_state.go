package auth

import (
	"time"
)

// DefaultAuthorizationTTL is how long a started authorization waits for its callback
const DefaultAuthorizationTTL = 10 * time.Minute

// PendingAuthorization binds a user who started the connect flow to the channel
// that should receive the confirmation. The user ID doubles as the OAuth state.
type PendingAuthorization struct {
	UserID    string    `json:"user_id"`
	RoomID    string    `json:"room_id"`
	Stage     FlowState `json:"stage,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewPendingAuthorization creates a pending authorization expiring after ttl
func NewPendingAuthorization(userID, roomID string, ttl time.Duration) *PendingAuthorization {
	if ttl <= 0 {
		ttl = DefaultAuthorizationTTL
	}

	now := time.Now()
	return &PendingAuthorization{
		UserID:    userID,
		RoomID:    roomID,
		Stage:     FlowAwaitingRedirect,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// IsExpired checks if the pending authorization has expired
func (s *PendingAuthorization) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsValid checks if the pending authorization can still be completed
func (s *PendingAuthorization) IsValid() bool {
	return s != nil && !s.IsExpired() && s.UserID != "" && s.RoomID != ""
}

// CurrentFlowState derives where a user is in the connect flow. The user has
// been shown the connect button in FlowAwaitingRedirect and has clicked it in
// FlowAwaitingCallback.
func CurrentFlowState(connected bool, pending *PendingAuthorization) FlowState {
	switch {
	case connected:
		return FlowConnected
	case !pending.IsValid():
		return FlowIdle
	case pending.Stage == "":
		return FlowAwaitingRedirect
	default:
		return pending.Stage
	}
}
