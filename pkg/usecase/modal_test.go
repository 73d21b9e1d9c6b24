package usecase_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/modal"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/notion"
)

const viewID = modal.ViewCreateDatabase

func interaction(revision string, values map[string]string) *modal.Interaction {
	return &modal.Interaction{
		UserID:    "U1",
		TeamID:    "T1",
		ViewID:    viewID,
		SurfaceID: "V123",
		Hash:      "h1",
		Revision:  revision,
		Values:    values,
	}
}

// openModal starts a connected session with one page and one database to choose from
func openModal(t *testing.T, f *fixture) {
	t.Helper()
	f.connect(t, "U1")
	f.withCandidates()
	gt.NoError(t, f.uc.OpenModal(context.Background(), "U1", "R1", "trigger-1")).Required()
}

func TestOpenModal(t *testing.T) {
	ctx := context.Background()

	t.Run("not connected prompts instead of opening", func(t *testing.T) {
		f := newFixture(t)
		gt.NoError(t, f.uc.OpenModal(ctx, "U1", "R1", "trigger-1")).Required()

		gt.A(t, f.slack.OpenViewCalls()).Length(0)
		gt.A(t, f.slack.PostEphemeralCalls()).Length(1)

		pending, err := f.states.GetRoomBinding(ctx, "U1")
		gt.NoError(t, err).Required()
		gt.Equal(t, pending.RoomID, "R1")
	})

	t.Run("connected opens the modal with candidates", func(t *testing.T) {
		f := newFixture(t)
		openModal(t, f)

		calls := f.slack.OpenViewCalls()
		gt.A(t, calls).Length(1)
		gt.Equal(t, calls[0].TriggerID, "trigger-1")
		gt.Equal(t, calls[0].View.CallbackID, viewID)
		gt.V(t, calls[0].View.PrivateMetadata).NotEqual("")

		text := viewText(t, calls[0].View)
		gt.S(t, text).Contains("Team wiki")
		gt.S(t, text).Contains("Tasks")

		st, err := f.states.GetState(ctx, "U1", viewID)
		gt.NoError(t, err).Required()
		gt.Equal(t, st.RoomID, "R1")
		gt.A(t, st.Candidates.Pages).Length(1)
		gt.A(t, st.Candidates.Databases).Length(1)
		gt.Equal(t, f.notion.ListPagesCalls()[0].Token, "secret_U1")
	})

	t.Run("reopening starts a fresh session", func(t *testing.T) {
		f := newFixture(t)
		openModal(t, f)
		gt.NoError(t, f.states.AddProperty(ctx, "U1", viewID, notion.NewPropertyDefinition("Status", notion.PropertyTypeRichText, nil))).Required()

		gt.NoError(t, f.uc.OpenModal(ctx, "U1", "R2", "trigger-2")).Required()
		st, err := f.states.GetState(ctx, "U1", viewID)
		gt.NoError(t, err).Required()
		gt.A(t, st.Properties).Length(0)
		gt.Equal(t, st.RoomID, "R2")
	})

	t.Run("revoked token asks to reconnect", func(t *testing.T) {
		f := newFixture(t)
		f.connect(t, "U1")
		f.notion.ListPagesFunc = func(ctx context.Context, token, query string) ([]notion.PageSummary, error) {
			return nil, &notion.APIError{StatusCode: http.StatusUnauthorized, Code: "unauthorized"}
		}

		gt.NoError(t, f.uc.OpenModal(ctx, "U1", "R1", "trigger-1")).Required()
		gt.A(t, f.slack.OpenViewCalls()).Length(0)

		token, err := f.tokens.GetToken(ctx, "U1")
		gt.NoError(t, err)
		gt.V(t, token).Nil()

		calls := f.slack.PostEphemeralCalls()
		gt.A(t, calls).Length(1)
		gt.S(t, blocksText(t, calls[0].Blocks)).Contains("connect your workspace again")
	})

	t.Run("other remote errors open the modal with a notice", func(t *testing.T) {
		f := newFixture(t)
		f.connect(t, "U1")
		f.notion.ListPagesFunc = func(ctx context.Context, token, query string) ([]notion.PageSummary, error) {
			return nil, &notion.APIError{StatusCode: http.StatusServiceUnavailable, Code: "service_unavailable"}
		}

		gt.NoError(t, f.uc.OpenModal(ctx, "U1", "R1", "trigger-1")).Required()
		calls := f.slack.OpenViewCalls()
		gt.A(t, calls).Length(1)
		gt.S(t, viewText(t, calls[0].View)).Contains(modal.BlockNotice)
	})
}

func TestSelectParent(t *testing.T) {
	ctx := context.Background()

	t.Run("page parent keeps the property builder", func(t *testing.T) {
		f := newFixture(t)
		openModal(t, f)

		in := interaction("rev1", map[string]string{modal.BlockTitle: "Roadmap", modal.BlockParent: "page:P1"})
		in.Value = "page:P1"
		gt.NoError(t, f.uc.SelectParent(ctx, in)).Required()

		st, err := f.states.GetState(ctx, "U1", viewID)
		gt.NoError(t, err).Required()
		gt.V(t, st.Parent).NotNil()
		gt.Equal(t, st.Parent.ID, "P1")
		gt.Equal(t, st.Parent.Type, notion.ParentTypePage)
		gt.Equal(t, st.Title(), "Roadmap")

		calls := f.slack.UpdateViewCalls()
		gt.A(t, calls).Length(1)
		gt.Equal(t, calls[0].ViewID, "V123")
		gt.Equal(t, calls[0].Hash, "h1")
		gt.Equal(t, calls[0].View.PrivateMetadata, "rev1")
		gt.S(t, viewText(t, calls[0].View)).Contains(modal.ActionPropertyAdd)
		gt.A(t, f.notion.GetDatabaseCalls()).Length(0)
	})

	t.Run("database parent resolves the title property", func(t *testing.T) {
		f := newFixture(t)
		openModal(t, f)

		in := interaction("rev1", nil)
		in.Value = "database:D1"
		gt.NoError(t, f.uc.SelectParent(ctx, in)).Required()

		st, err := f.states.GetState(ctx, "U1", viewID)
		gt.NoError(t, err).Required()
		gt.Equal(t, st.Parent.Type, notion.ParentTypeDatabase)
		gt.Equal(t, st.Parent.TitleProperty, "Task")
		gt.A(t, f.notion.GetDatabaseCalls()).Length(1)

		text := viewText(t, f.slack.UpdateViewCalls()[0].View)
		gt.S(t, text).Contains("A new page will be added")
		gt.False(t, strings.Contains(text, modal.ActionPropertyAdd))
	})

	t.Run("unknown selection keeps the previous parent", func(t *testing.T) {
		f := newFixture(t)
		openModal(t, f)

		first := interaction("rev1", nil)
		first.Value = "page:P1"
		gt.NoError(t, f.uc.SelectParent(ctx, first)).Required()

		in := interaction("rev1", nil)
		in.Value = "page:P404"
		gt.NoError(t, f.uc.SelectParent(ctx, in)).Required()

		st, err := f.states.GetState(ctx, "U1", viewID)
		gt.NoError(t, err).Required()
		gt.Equal(t, st.Parent.ID, "P1")

		calls := f.slack.UpdateViewCalls()
		gt.A(t, calls).Length(2)
		gt.V(t, calls[1].View.PrivateMetadata).NotEqual("rev1")
		gt.S(t, viewText(t, calls[1].View)).Contains(modal.BlockNotice)
	})

	t.Run("malformed selection", func(t *testing.T) {
		f := newFixture(t)
		openModal(t, f)

		in := interaction("rev1", nil)
		in.Value = "garbage"
		gt.NoError(t, f.uc.SelectParent(ctx, in)).Required()

		st, err := f.states.GetState(ctx, "U1", viewID)
		gt.NoError(t, err).Required()
		gt.V(t, st.Parent).Nil()
	})
}

func TestAddRemoveProperty(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	openModal(t, f)

	add := interaction("rev1", map[string]string{
		modal.BlockTitle:           "Roadmap",
		modal.BlockPropertyName:    "Status",
		modal.BlockPropertyType:    string(notion.PropertyTypeSelect),
		modal.BlockPropertyOptions: "Todo, Doing, Done",
	})
	gt.NoError(t, f.uc.AddProperty(ctx, add)).Required()

	st, err := f.states.GetState(ctx, "U1", viewID)
	gt.NoError(t, err).Required()
	gt.A(t, st.Properties).Length(1)
	gt.Equal(t, st.Properties[0].Name, "Status")
	gt.Equal(t, st.Properties[0].Options, []string{"Todo", "Doing", "Done"})
	gt.Equal(t, st.Input(modal.BlockPropertyName), "")
	gt.Equal(t, st.Title(), "Roadmap")

	calls := f.slack.UpdateViewCalls()
	gt.A(t, calls).Length(1)
	gt.V(t, calls[0].View.PrivateMetadata).NotEqual("rev1")
	gt.S(t, viewText(t, calls[0].View)).Contains("Status")

	t.Run("duplicate name is rejected", func(t *testing.T) {
		dup := interaction("rev2", map[string]string{
			modal.BlockPropertyName: "status",
			modal.BlockPropertyType: string(notion.PropertyTypeRichText),
		})
		gt.NoError(t, f.uc.AddProperty(ctx, dup)).Required()

		st, err := f.states.GetState(ctx, "U1", viewID)
		gt.NoError(t, err).Required()
		gt.A(t, st.Properties).Length(1)

		last := f.slack.UpdateViewCalls()[1]
		gt.Equal(t, last.View.PrivateMetadata, "rev2")
		gt.S(t, viewText(t, last.View)).Contains("already exists")
	})

	t.Run("options on a non-select type are rejected", func(t *testing.T) {
		in := interaction("rev2", map[string]string{
			modal.BlockPropertyName:    "Due",
			modal.BlockPropertyType:    string(notion.PropertyTypeDate),
			modal.BlockPropertyOptions: "a, b",
		})
		gt.NoError(t, f.uc.AddProperty(ctx, in)).Required()

		st, err := f.states.GetState(ctx, "U1", viewID)
		gt.NoError(t, err).Required()
		gt.A(t, st.Properties).Length(1)

		calls := f.slack.UpdateViewCalls()
		gt.S(t, viewText(t, calls[len(calls)-1].View)).Contains("Options are only available")
	})

	t.Run("unknown type with options is reported as unsupported", func(t *testing.T) {
		in := interaction("rev2", map[string]string{
			modal.BlockPropertyName:    "Owner",
			modal.BlockPropertyType:    "people",
			modal.BlockPropertyOptions: "a, b",
		})
		gt.NoError(t, f.uc.AddProperty(ctx, in)).Required()

		st, err := f.states.GetState(ctx, "U1", viewID)
		gt.NoError(t, err).Required()
		gt.A(t, st.Properties).Length(1)

		calls := f.slack.UpdateViewCalls()
		text := viewText(t, calls[len(calls)-1].View)
		gt.S(t, text).Contains("This property type is not supported.")
		gt.S(t, text).NotContains("Options are only available")
	})

	t.Run("missing type is rejected", func(t *testing.T) {
		in := interaction("rev2", map[string]string{modal.BlockPropertyName: "Due"})
		gt.NoError(t, f.uc.AddProperty(ctx, in)).Required()

		st, err := f.states.GetState(ctx, "U1", viewID)
		gt.NoError(t, err).Required()
		gt.A(t, st.Properties).Length(1)
	})

	t.Run("remove restores the previous properties", func(t *testing.T) {
		in := interaction("rev2", nil)
		in.Value = "Status"
		gt.NoError(t, f.uc.RemoveProperty(ctx, in)).Required()

		st, err := f.states.GetState(ctx, "U1", viewID)
		gt.NoError(t, err).Required()
		gt.A(t, st.Properties).Length(0)
		gt.Equal(t, st.Title(), "Roadmap")

		calls := f.slack.UpdateViewCalls()
		gt.Equal(t, calls[len(calls)-1].View.PrivateMetadata, "rev2")
	})
}

func TestSubmitModal(t *testing.T) {
	ctx := context.Background()

	selectParent := func(t *testing.T, f *fixture, value string) {
		t.Helper()
		in := interaction("rev1", nil)
		in.Value = value
		gt.NoError(t, f.uc.SelectParent(ctx, in)).Required()
	}

	t.Run("empty name is a field error without remote calls", func(t *testing.T) {
		f := newFixture(t)
		openModal(t, f)
		selectParent(t, f, "page:P1")

		errs, err := f.uc.SubmitModal(ctx, interaction("rev1", map[string]string{modal.BlockTitle: "  "}))
		gt.NoError(t, err).Required()
		gt.V(t, errs[modal.BlockTitle]).NotEqual("")
		gt.A(t, f.notion.CreateDatabaseCalls()).Length(0)
		gt.A(t, f.notion.CreatePageCalls()).Length(0)
	})

	t.Run("missing parent is reported on the revisioned parent block", func(t *testing.T) {
		f := newFixture(t)
		openModal(t, f)

		errs, err := f.uc.SubmitModal(ctx, interaction("rev9", map[string]string{modal.BlockTitle: "Roadmap"}))
		gt.NoError(t, err).Required()
		gt.V(t, errs[modal.RevisionBlockID(modal.BlockParent, "rev9")]).NotEqual("")
		gt.A(t, f.notion.CreateDatabaseCalls()).Length(0)
	})

	t.Run("parent in the submitted view is used before its selection is stored", func(t *testing.T) {
		f := newFixture(t)
		openModal(t, f)

		errs, err := f.uc.SubmitModal(ctx, interaction("rev1", map[string]string{
			modal.BlockTitle:  "Write docs",
			modal.BlockParent: "database:D1",
		}))
		gt.NoError(t, err).Required()
		gt.V(t, errs).Nil()

		calls := f.notion.CreatePageCalls()
		gt.A(t, calls).Length(1)
		gt.Equal(t, calls[0].Parent.ID, "D1")
		gt.Equal(t, calls[0].Parent.TitleProperty, "Task")
	})

	t.Run("submitted parent outside the candidates is still missing", func(t *testing.T) {
		f := newFixture(t)
		openModal(t, f)

		errs, err := f.uc.SubmitModal(ctx, interaction("rev1", map[string]string{
			modal.BlockTitle:  "Roadmap",
			modal.BlockParent: "page:P404",
		}))
		gt.NoError(t, err).Required()
		gt.V(t, errs[modal.RevisionBlockID(modal.BlockParent, "rev1")]).NotEqual("")
		gt.A(t, f.notion.CreateDatabaseCalls()).Length(0)
	})

	t.Run("page parent creates a database and clears the session", func(t *testing.T) {
		f := newFixture(t)
		openModal(t, f)
		selectParent(t, f, "page:P1")
		gt.NoError(t, f.states.AddProperty(ctx, "U1", viewID, notion.NewPropertyDefinition("Status", notion.PropertyTypeRichText, nil))).Required()
		f.notion.CreateDatabaseFunc = func(ctx context.Context, token string, parent *notion.Parent, title string, properties []notion.PropertyDefinition) (*notion.CreatedEntity, error) {
			return &notion.CreatedEntity{ID: "N1", Object: "database", URL: "https://notion.so/N1", Title: title}, nil
		}

		errs, err := f.uc.SubmitModal(ctx, interaction("rev1", map[string]string{modal.BlockTitle: "Roadmap"}))
		gt.NoError(t, err).Required()
		gt.V(t, errs).Nil()

		calls := f.notion.CreateDatabaseCalls()
		gt.A(t, calls).Length(1)
		gt.Equal(t, calls[0].Token, "secret_U1")
		gt.Equal(t, calls[0].Parent.ID, "P1")
		gt.Equal(t, calls[0].Title, "Roadmap")
		gt.A(t, calls[0].Properties).Length(1)

		posts := f.slack.PostEphemeralCalls()
		gt.A(t, posts).Length(1)
		gt.Equal(t, posts[0].ChannelID, "R1")
		gt.S(t, blocksText(t, posts[0].Blocks)).Contains("https://notion.so/N1")

		st, err := f.states.GetState(ctx, "U1", viewID)
		gt.NoError(t, err).Required()
		gt.True(t, st.IsEmpty())
	})

	t.Run("database parent creates a page", func(t *testing.T) {
		f := newFixture(t)
		openModal(t, f)
		selectParent(t, f, "database:D1")

		errs, err := f.uc.SubmitModal(ctx, interaction("rev1", map[string]string{modal.BlockTitle: "Write docs"}))
		gt.NoError(t, err).Required()
		gt.V(t, errs).Nil()

		calls := f.notion.CreatePageCalls()
		gt.A(t, calls).Length(1)
		gt.Equal(t, calls[0].Parent.TitleProperty, "Task")
		gt.Equal(t, calls[0].Title, "Write docs")
		gt.A(t, f.notion.CreateDatabaseCalls()).Length(0)
	})

	t.Run("remote rejection keeps the session", func(t *testing.T) {
		f := newFixture(t)
		openModal(t, f)
		selectParent(t, f, "page:P1")
		f.notion.CreateDatabaseFunc = func(ctx context.Context, token string, parent *notion.Parent, title string, properties []notion.PropertyDefinition) (*notion.CreatedEntity, error) {
			return nil, &notion.APIError{StatusCode: http.StatusBadRequest, Code: "validation_error", Message: "bad schema"}
		}

		errs, err := f.uc.SubmitModal(ctx, interaction("rev1", map[string]string{modal.BlockTitle: "Roadmap"}))
		gt.NoError(t, err).Required()
		gt.V(t, errs[modal.BlockTitle]).NotEqual("")

		st, err := f.states.GetState(ctx, "U1", viewID)
		gt.NoError(t, err).Required()
		gt.Equal(t, st.Parent.ID, "P1")
		gt.Equal(t, st.Title(), "Roadmap")
		gt.A(t, f.slack.PostEphemeralCalls()).Length(0)
	})

	t.Run("revoked token during submit asks to reconnect", func(t *testing.T) {
		f := newFixture(t)
		openModal(t, f)
		selectParent(t, f, "page:P1")
		f.notion.CreateDatabaseFunc = func(ctx context.Context, token string, parent *notion.Parent, title string, properties []notion.PropertyDefinition) (*notion.CreatedEntity, error) {
			return nil, &notion.APIError{StatusCode: http.StatusUnauthorized, Code: "unauthorized"}
		}

		errs, err := f.uc.SubmitModal(ctx, interaction("rev1", map[string]string{modal.BlockTitle: "Roadmap"}))
		gt.NoError(t, err).Required()
		gt.V(t, errs[modal.BlockTitle]).NotEqual("")

		token, err := f.tokens.GetToken(ctx, "U1")
		gt.NoError(t, err)
		gt.V(t, token).Nil()
		gt.A(t, f.slack.PostEphemeralCalls()).Length(1)
	})
}

func TestCloseModal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	openModal(t, f)

	gt.NoError(t, f.uc.CloseModal(ctx, interaction("rev1", nil))).Required()

	st, err := f.states.GetState(ctx, "U1", viewID)
	gt.NoError(t, err).Required()
	gt.True(t, st.IsEmpty())

	token, err := f.tokens.GetToken(ctx, "U1")
	gt.NoError(t, err)
	gt.V(t, token).NotNil()
}

func TestNotifyFailure(t *testing.T) {
	ctx := context.Background()

	t.Run("modal interaction uses the room of the session", func(t *testing.T) {
		f := newFixture(t)
		openModal(t, f)

		gt.NoError(t, f.uc.NotifyFailure(ctx, interaction("rev1", nil))).Required()

		calls := f.slack.PostEphemeralCalls()
		gt.A(t, calls).Length(1)
		gt.Equal(t, calls[0].ChannelID, "R1")
		gt.Equal(t, calls[0].UserID, "U1")
		gt.S(t, blocksText(t, calls[0].Blocks)).Contains("Something went wrong")
	})

	t.Run("slash command uses its channel", func(t *testing.T) {
		f := newFixture(t)

		gt.NoError(t, f.uc.NotifyFailure(ctx, &modal.Interaction{UserID: "U1", RoomID: "C1"})).Required()

		calls := f.slack.PostEphemeralCalls()
		gt.A(t, calls).Length(1)
		gt.Equal(t, calls[0].ChannelID, "C1")
	})

	t.Run("nothing is posted without a room", func(t *testing.T) {
		f := newFixture(t)

		gt.NoError(t, f.uc.NotifyFailure(ctx, interaction("rev1", nil))).Required()
		gt.A(t, f.slack.PostEphemeralCalls()).Length(0)
	})
}
