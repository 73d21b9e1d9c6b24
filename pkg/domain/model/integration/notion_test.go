package integration_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/integration"
)

func TestNewNotionIntegration(t *testing.T) {
	userID := "U0123"
	notion := integration.NewNotionIntegration(userID)

	gt.V(t, notion.UserID).Equal(userID)
	gt.V(t, notion.WorkspaceID).Equal("")
	gt.V(t, notion.AccessToken).Equal("")
	gt.V(t, notion.CreatedAt).NotEqual(time.Time{})
	gt.V(t, notion.CreatedAt).Equal(notion.UpdatedAt)
}

func TestNotionIntegration_UpdateWorkspaceInfo(t *testing.T) {
	notion := integration.NewNotionIntegration("U0123")
	originalUpdatedAt := notion.UpdatedAt

	time.Sleep(time.Millisecond)
	notion.UpdateWorkspaceInfo("W1", "Acme", "https://example.com/icon.png", "bot-456")

	gt.V(t, notion.WorkspaceID).Equal("W1")
	gt.V(t, notion.WorkspaceName).Equal("Acme")
	gt.V(t, notion.BotID).Equal("bot-456")
	gt.B(t, notion.UpdatedAt.After(originalUpdatedAt)).True()
}

func TestNotionIntegration_IsConnected(t *testing.T) {
	t.Run("not connected when no token", func(t *testing.T) {
		notion := integration.NewNotionIntegration("U0123")
		gt.B(t, notion.IsConnected()).False()
	})

	t.Run("connected when token exists", func(t *testing.T) {
		notion := integration.NewNotionIntegration("U0123")
		notion.UpdateTokens("tok")
		gt.B(t, notion.IsConnected()).True()
	})

	t.Run("nil record is not connected", func(t *testing.T) {
		var notion *integration.NotionIntegration
		gt.B(t, notion.IsConnected()).False()
	})
}

func TestNotionIntegration_Validate(t *testing.T) {
	notion := integration.NewNotionIntegration("U0123")
	gt.Error(t, notion.Validate())

	notion.UpdateWorkspaceInfo("W1", "Acme", "", "")
	gt.Error(t, notion.Validate())

	notion.UpdateTokens("tok")
	gt.NoError(t, notion.Validate())
}
