package integration

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// NotionIntegration is the token record binding a Slack user to one Notion workspace.
// A user has at most one current workspace; saving a new one replaces the old.
type NotionIntegration struct {
	UserID        string    `json:"user_id"`
	WorkspaceID   string    `json:"workspace_id"`
	WorkspaceName string    `json:"workspace_name"`
	WorkspaceIcon string    `json:"workspace_icon,omitempty"`
	BotID         string    `json:"bot_id,omitempty"`
	AccessToken   string    `json:"access_token" masq:"secret"` // Notion tokens don't expire and don't have refresh tokens
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewNotionIntegration creates a new NotionIntegration instance
func NewNotionIntegration(userID string) *NotionIntegration {
	now := time.Now()
	return &NotionIntegration{
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdateTokens updates the access token
func (n *NotionIntegration) UpdateTokens(accessToken string) {
	n.AccessToken = accessToken
	n.UpdatedAt = time.Now()
}

// UpdateWorkspaceInfo updates the workspace information
func (n *NotionIntegration) UpdateWorkspaceInfo(workspaceID, workspaceName, workspaceIcon, botID string) {
	n.WorkspaceID = workspaceID
	n.WorkspaceName = workspaceName
	n.WorkspaceIcon = workspaceIcon
	n.BotID = botID
	n.UpdatedAt = time.Now()
}

// IsConnected checks if the integration is connected
func (n *NotionIntegration) IsConnected() bool {
	return n != nil && n.AccessToken != ""
}

// Validate checks required fields before persisting
func (n *NotionIntegration) Validate() error {
	if n.UserID == "" {
		return goerr.New("user ID is empty")
	}
	if n.WorkspaceID == "" {
		return goerr.New("workspace ID is empty", goerr.V("user_id", n.UserID))
	}
	if n.AccessToken == "" {
		return goerr.New("access token is empty", goerr.V("user_id", n.UserID))
	}
	return nil
}
