package state_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/tsumugi/pkg/adapters/memory"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/auth"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/integration"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/modal"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/notion"
	"github.com/m-mizutani/tsumugi/pkg/domain/types/apperr"
	"github.com/m-mizutani/tsumugi/pkg/repository/state"
)

const viewID = modal.ViewCreateDatabase

func newToken(userID, workspaceID, accessToken string) *integration.NotionIntegration {
	token := integration.NewNotionIntegration(userID)
	token.UpdateWorkspaceInfo(workspaceID, "Acme", "", "bot")
	token.UpdateTokens(accessToken)
	return token
}

func TestTokenStore(t *testing.T) {
	ctx := context.Background()
	store := state.NewTokenStore(memory.New())

	t.Run("absent token is not an error", func(t *testing.T) {
		got, err := store.GetToken(ctx, "U0")
		gt.NoError(t, err)
		gt.V(t, got).Nil()
	})

	t.Run("save then get returns the record, clear removes it", func(t *testing.T) {
		gt.NoError(t, store.SaveToken(ctx, newToken("U1", "W1", "tok"))).Required()

		got, err := store.GetToken(ctx, "U1")
		gt.NoError(t, err).Required()
		gt.V(t, got.WorkspaceID).Equal("W1")
		gt.V(t, got.AccessToken).Equal("tok")

		gt.NoError(t, store.DeleteToken(ctx, "U1"))
		got, err = store.GetToken(ctx, "U1")
		gt.NoError(t, err)
		gt.V(t, got).Nil()
	})

	t.Run("save overwrites the previous workspace", func(t *testing.T) {
		gt.NoError(t, store.SaveToken(ctx, newToken("U2", "W1", "tok1")))
		gt.NoError(t, store.SaveToken(ctx, newToken("U2", "W2", "tok2")))

		got, err := store.GetToken(ctx, "U2")
		gt.NoError(t, err).Required()
		gt.V(t, got.WorkspaceID).Equal("W2")
		gt.V(t, got.AccessToken).Equal("tok2")
	})

	t.Run("invalid record is rejected", func(t *testing.T) {
		err := store.SaveToken(ctx, integration.NewNotionIntegration("U3"))
		gt.Error(t, err)
	})
}

func TestRoomBinding(t *testing.T) {
	ctx := context.Background()
	store := state.NewInteractionStore(memory.New())

	got, err := store.GetRoomBinding(ctx, "U1")
	gt.NoError(t, err)
	gt.V(t, got).Nil()

	gt.NoError(t, store.StoreRoomBinding(ctx, auth.NewPendingAuthorization("U1", "R1", time.Minute)))
	gt.NoError(t, store.StoreRoomBinding(ctx, auth.NewPendingAuthorization("U1", "R2", time.Minute)))

	got, err = store.GetRoomBinding(ctx, "U1")
	gt.NoError(t, err).Required()
	gt.V(t, got.RoomID).Equal("R2")
	gt.B(t, got.IsValid()).True()

	gt.NoError(t, store.ClearRoomBinding(ctx, "U1"))
	got, err = store.GetRoomBinding(ctx, "U1")
	gt.NoError(t, err)
	gt.V(t, got).Nil()

	// clearing twice is fine
	gt.NoError(t, store.ClearRoomBinding(ctx, "U1"))
}

func TestModalState_AddRemoveProperty(t *testing.T) {
	ctx := context.Background()
	store := state.NewInteractionStore(memory.New())
	parent := &notion.Parent{ID: "p1", Type: notion.ParentTypePage, Title: "Home"}

	gt.NoError(t, store.SetParent(ctx, "U1", viewID, parent))
	status := notion.NewPropertyDefinition("Status", notion.PropertyTypeSelect, []string{"Todo", "Done"})
	gt.NoError(t, store.AddProperty(ctx, "U1", viewID, status))

	before, err := store.GetState(ctx, "U1", viewID)
	gt.NoError(t, err).Required()

	due := notion.NewPropertyDefinition("Due", notion.PropertyTypeDate, nil)
	gt.NoError(t, store.AddProperty(ctx, "U1", viewID, due))

	added, err := store.GetState(ctx, "U1", viewID)
	gt.NoError(t, err).Required()
	gt.A(t, added.Properties).Length(2)

	gt.NoError(t, store.RemoveProperty(ctx, "U1", viewID, "Due"))

	after, err := store.GetState(ctx, "U1", viewID)
	gt.NoError(t, err).Required()
	gt.V(t, after.Properties).Equal(before.Properties)
	gt.V(t, after.Parent).Equal(before.Parent)
}

func TestModalState_DuplicateProperty(t *testing.T) {
	ctx := context.Background()
	store := state.NewInteractionStore(memory.New())

	gt.NoError(t, store.AddProperty(ctx, "U1", viewID, notion.NewPropertyDefinition("Status", notion.PropertyTypeSelect, nil)))
	err := store.AddProperty(ctx, "U1", viewID, notion.NewPropertyDefinition("status", notion.PropertyTypeRichText, nil))
	gt.Error(t, err)
	gt.B(t, errors.Is(err, apperr.ErrDuplicateProperty)).True()

	// unknown name is a no-op
	gt.NoError(t, store.RemoveProperty(ctx, "U1", viewID, "Owner"))
	st, err := store.GetState(ctx, "U1", viewID)
	gt.NoError(t, err)
	gt.A(t, st.Properties).Length(1)
}

func TestModalState_Inputs(t *testing.T) {
	ctx := context.Background()
	store := state.NewInteractionStore(memory.New())

	gt.NoError(t, store.SetInputValue(ctx, "U1", viewID, modal.BlockTitle, "Roadmap"))
	gt.NoError(t, store.SetInputValue(ctx, "U1", viewID, modal.BlockPropertyName, "Owner"))

	st, err := store.GetState(ctx, "U1", viewID)
	gt.NoError(t, err).Required()
	gt.V(t, st.Title()).Equal("Roadmap")
	gt.V(t, st.Input(modal.BlockPropertyName)).Equal("Owner")

	gt.NoError(t, store.SetInputValues(ctx, "U1", viewID, map[string]string{modal.BlockTitle: "Plan"}))
	st, err = store.GetState(ctx, "U1", viewID)
	gt.NoError(t, err).Required()
	gt.V(t, st.Title()).Equal("Plan")
	gt.V(t, st.Input(modal.BlockPropertyName)).Equal("")
}

func TestModalState_SetParentIdempotent(t *testing.T) {
	ctx := context.Background()
	store := state.NewInteractionStore(memory.New())
	parent := &notion.Parent{ID: "d1", Type: notion.ParentTypeDatabase, TitleProperty: "Task"}

	gt.NoError(t, store.SetParent(ctx, "U1", viewID, parent))
	first, err := store.GetState(ctx, "U1", viewID)
	gt.NoError(t, err)
	gt.NoError(t, store.SetParent(ctx, "U1", viewID, parent))
	second, err := store.GetState(ctx, "U1", viewID)
	gt.NoError(t, err)
	gt.V(t, second).Equal(first)

	gt.Error(t, store.SetParent(ctx, "U1", viewID, &notion.Parent{ID: "x", Type: "workspace"}))

	gt.NoError(t, store.SetParent(ctx, "U1", viewID, nil))
	cleared, err := store.GetState(ctx, "U1", viewID)
	gt.NoError(t, err)
	gt.V(t, cleared.Parent).Nil()
}

func TestModalState_ClearAll(t *testing.T) {
	ctx := context.Background()
	adapter := memory.New()
	store := state.NewInteractionStore(adapter)

	gt.NoError(t, store.SetRoom(ctx, "U1", viewID, "R1"))
	gt.NoError(t, store.SetParent(ctx, "U1", viewID, &notion.Parent{ID: "p1", Type: notion.ParentTypePage}))
	gt.NoError(t, store.AddProperty(ctx, "U1", viewID, notion.NewPropertyDefinition("Status", notion.PropertyTypeSelect, nil)))
	gt.NoError(t, store.SetInputValue(ctx, "U1", viewID, modal.BlockTitle, "Roadmap"))
	gt.NoError(t, store.SetCandidates(ctx, "U1", viewID, &notion.Candidates{
		Pages: []*notion.PageSummary{{ID: "p1", Title: "Home"}},
	}))

	// other sessions must survive
	gt.NoError(t, store.SetRoom(ctx, "U2", viewID, "R2"))

	gt.NoError(t, store.ClearAll(ctx, "U1", viewID))

	st, err := store.GetState(ctx, "U1", viewID)
	gt.NoError(t, err).Required()
	gt.B(t, st.IsEmpty()).True()
	gt.A(t, st.Properties).Length(0)
	gt.V(t, st.Title()).Equal("")

	other, err := store.GetState(ctx, "U2", viewID)
	gt.NoError(t, err)
	gt.V(t, other.RoomID).Equal("R2")

	gt.A(t, adapter.Keys()).Length(1)
}

func TestKeys_CollisionFree(t *testing.T) {
	seen := map[string]bool{}
	keys := []string{
		state.TokenKey("U1"),
		state.RoomKey("U1"),
		state.TokenKey("U1/x"),
		state.TokenKey("U1%2Fx"),
	}
	keys = append(keys, state.ModalKeys("U1", viewID)...)
	keys = append(keys, state.ModalKeys("U1/"+viewID, "room")...)

	for _, k := range keys {
		gt.B(t, seen[k]).False()
		seen[k] = true
	}
}
