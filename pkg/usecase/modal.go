package usecase

import (
	"context"
	"errors"
	"maps"
	"unicode/utf8"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tsumugi/pkg/domain/interfaces"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/integration"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/modal"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/notion"
	"github.com/m-mizutani/tsumugi/pkg/domain/types/apperr"
	"github.com/m-mizutani/tsumugi/pkg/metrics"
	errutil "github.com/m-mizutani/tsumugi/pkg/utils/errors"
)

// ConnectPrompter asks a user to connect Notion in a room
type ConnectPrompter interface {
	PromptConnect(ctx context.Context, userID, roomID, reason string) error
}

const (
	reasonNotConnected = "Connect your Notion workspace before creating a database or page."
	reasonRevoked      = "Notion rejected the saved access token. Please connect your workspace again."
)

// ModalSession drives the "create in Notion" modal. Each interaction loads
// the session from the store, applies one change and re-renders the view.
type ModalSession struct {
	slack    interfaces.SlackClient
	notion   interfaces.NotionClient
	tokens   interfaces.TokenRepository
	states   interfaces.InteractionRepository
	prompter ConnectPrompter
	catalog  *notion.Catalog
	recorder metrics.Recorder
}

type ModalOption func(*ModalSession)

// WithCatalog replaces the embedded property type catalog
func WithCatalog(catalog *notion.Catalog) ModalOption {
	return func(m *ModalSession) {
		m.catalog = catalog
	}
}

func WithModalRecorder(recorder metrics.Recorder) ModalOption {
	return func(m *ModalSession) {
		m.recorder = recorder
	}
}

func NewModalSession(
	slackClient interfaces.SlackClient,
	notionClient interfaces.NotionClient,
	tokens interfaces.TokenRepository,
	states interfaces.InteractionRepository,
	prompter ConnectPrompter,
	opts ...ModalOption,
) *ModalSession {
	m := &ModalSession{
		slack:    slackClient,
		notion:   notionClient,
		tokens:   tokens,
		states:   states,
		prompter: prompter,
		catalog:  notion.DefaultCatalog(),
		recorder: metrics.Nop{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// OpenModal starts a fresh session. Unconnected users get the connect prompt instead.
func (m *ModalSession) OpenModal(ctx context.Context, userID, roomID, triggerID string) error {
	token, err := m.tokens.GetToken(ctx, userID)
	if err != nil {
		return err
	}
	if !token.IsConnected() {
		return m.promptNotConnected(ctx, userID, roomID)
	}

	viewID := modal.ViewCreateDatabase
	if err := m.states.ClearAll(ctx, userID, viewID); err != nil {
		return err
	}
	if err := m.states.SetRoom(ctx, userID, viewID, roomID); err != nil {
		return err
	}

	st := modal.NewState(userID, viewID)
	st.RoomID = roomID

	var notice string
	candidates, err := m.fetchCandidates(ctx, token)
	switch {
	case isUnauthorized(err):
		return m.reconnect(ctx, userID, roomID)
	case err != nil:
		errutil.Handle(ctx, err)
		notice = remoteMessage(err)
	default:
		if err := m.states.SetCandidates(ctx, userID, viewID, candidates); err != nil {
			return err
		}
		st.Candidates = candidates
	}

	if _, err := m.slack.OpenView(ctx, triggerID, createView(st, m.catalog, newRevision(), notice)); err != nil {
		return goerr.Wrap(err, "failed to open modal", goerr.TV(apperr.UserIDKey, userID))
	}
	return nil
}

func (m *ModalSession) fetchCandidates(ctx context.Context, token *integration.NotionIntegration) (*notion.Candidates, error) {
	pages, err := m.notion.ListPages(ctx, token.AccessToken, "")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list notion pages", goerr.TV(apperr.UserIDKey, token.UserID))
	}
	dbs, err := m.notion.ListDatabases(ctx, token.AccessToken)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list notion databases", goerr.TV(apperr.UserIDKey, token.UserID))
	}

	candidates := &notion.Candidates{}
	for i := range pages {
		candidates.Pages = append(candidates.Pages, &pages[i])
	}
	for i := range dbs {
		candidates.Databases = append(candidates.Databases, &dbs[i])
	}
	return candidates, nil
}

// loadSession reads the state and records the current input values of the view
func (m *ModalSession) loadSession(ctx context.Context, in *modal.Interaction) (*modal.State, error) {
	st, err := m.states.GetState(ctx, in.UserID, in.ViewID)
	if err != nil {
		return nil, err
	}

	inputs := make(map[string]string, len(st.Inputs)+len(in.Values))
	maps.Copy(inputs, st.Inputs)
	maps.Copy(inputs, in.Values)
	if err := m.states.SetInputValues(ctx, in.UserID, in.ViewID, inputs); err != nil {
		return nil, err
	}
	st.Inputs = inputs

	if st.RoomID == "" {
		st.RoomID = in.RoomID
	}
	return st, nil
}

func (m *ModalSession) render(ctx context.Context, in *modal.Interaction, st *modal.State, revision, notice string) error {
	if _, err := m.slack.UpdateView(ctx, in.SurfaceID, in.Hash, createView(st, m.catalog, revision, notice)); err != nil {
		return goerr.Wrap(err, "failed to update modal",
			goerr.TV(apperr.UserIDKey, in.UserID),
			goerr.TV(apperr.ViewIDKey, in.SurfaceID))
	}
	return nil
}

// SelectParent stores the chosen page or database and re-renders in place.
// On failure the previous selection is kept and the error is shown inline.
func (m *ModalSession) SelectParent(ctx context.Context, in *modal.Interaction) error {
	st, err := m.loadSession(ctx, in)
	if err != nil {
		return err
	}

	// A new revision makes Slack show the previous selection again
	rejectWith := func(notice string) error {
		return m.render(ctx, in, st, newRevision(), notice)
	}

	selection, err := notion.ParseParentOption(in.Value)
	if err != nil {
		errutil.Handle(ctx, goerr.Wrap(err, "invalid parent selection", goerr.T(apperr.ErrTagValidation)))
		return rejectWith("The selection could not be read. Please choose again.")
	}
	parent, ok := st.Candidates.Find(selection)
	if !ok {
		return rejectWith("The selected page is no longer available. Run /notion create again to refresh the list.")
	}

	if parent.Type == notion.ParentTypeDatabase {
		token, err := m.tokens.GetToken(ctx, in.UserID)
		if err != nil {
			return err
		}
		if !token.IsConnected() {
			return m.promptNotConnected(ctx, in.UserID, st.RoomID)
		}

		db, err := m.notion.GetDatabase(ctx, token.AccessToken, parent.ID)
		switch {
		case isUnauthorized(err):
			return m.reconnect(ctx, in.UserID, st.RoomID)
		case err != nil:
			errutil.Handle(ctx, err)
			return rejectWith(remoteMessage(err))
		}
		parent.TitleProperty = db.TitleProperty
	}

	if err := m.states.SetParent(ctx, in.UserID, in.ViewID, parent); err != nil {
		return err
	}
	st.Parent = parent

	return m.render(ctx, in, st, in.Revision, "")
}

// AddProperty validates the property builder inputs and appends a definition
func (m *ModalSession) AddProperty(ctx context.Context, in *modal.Interaction) error {
	st, err := m.loadSession(ctx, in)
	if err != nil {
		return err
	}

	def := notion.NewPropertyDefinition(
		st.Input(modal.BlockPropertyName),
		notion.PropertyType(st.Input(modal.BlockPropertyType)),
		notion.ParseOptions(st.Input(modal.BlockPropertyOptions)),
	)
	if notice := m.validateProperty(st, def); notice != "" {
		return m.render(ctx, in, st, in.Revision, notice)
	}

	if err := m.states.AddProperty(ctx, in.UserID, in.ViewID, def); err != nil {
		if errors.Is(err, apperr.ErrDuplicateProperty) {
			return m.render(ctx, in, st, in.Revision, "A property named \""+def.Name+"\" already exists.")
		}
		return err
	}
	st.Properties = append(st.Properties, def)

	// empty the builder for the next property
	delete(st.Inputs, modal.BlockPropertyName)
	delete(st.Inputs, modal.BlockPropertyType)
	delete(st.Inputs, modal.BlockPropertyOptions)
	if err := m.states.SetInputValues(ctx, in.UserID, in.ViewID, st.Inputs); err != nil {
		return err
	}

	return m.render(ctx, in, st, newRevision(), "")
}

func (m *ModalSession) validateProperty(st *modal.State, def notion.PropertyDefinition) string {
	if def.Type == "" {
		return "Choose a property type."
	}
	if err := def.Validate(m.catalog); err != nil {
		switch {
		case def.Name == "":
			return "Enter a property name."
		case utf8.RuneCountInString(def.Name) > 100:
			return "Property names are limited to 100 characters."
		case m.catalog.Lookup(def.Type) == nil:
			return "This property type is not supported."
		default:
			return "Options are only available for select and multi-select."
		}
	}
	if st.HasProperty(def.Name) {
		return "A property named \"" + def.Name + "\" already exists."
	}
	if def.Type == notion.PropertyTypeTitle {
		for _, p := range st.Properties {
			if p.Type == notion.PropertyTypeTitle {
				return "A database can have only one title property."
			}
		}
	}
	return ""
}

// RemoveProperty drops the property named by the clicked button
func (m *ModalSession) RemoveProperty(ctx context.Context, in *modal.Interaction) error {
	st, err := m.loadSession(ctx, in)
	if err != nil {
		return err
	}

	if err := m.states.RemoveProperty(ctx, in.UserID, in.ViewID, in.Value); err != nil {
		return err
	}

	kept := st.Properties[:0]
	for _, p := range st.Properties {
		if !notion.SameName(p.Name, in.Value) {
			kept = append(kept, p)
		}
	}
	st.Properties = kept

	return m.render(ctx, in, st, in.Revision, "")
}

// SubmitModal creates the database or page. Returned field errors keep the
// modal open with the session intact; nil closes it.
func (m *ModalSession) SubmitModal(ctx context.Context, in *modal.Interaction) (modal.FieldErrors, error) {
	st, err := m.loadSession(ctx, in)
	if err != nil {
		return nil, err
	}
	logger := ctxlog.From(ctx).With("user_id", in.UserID)

	if st.Parent == nil {
		st.Parent = submittedParent(st)
	}

	if fieldErrs := validateSubmission(st, in.Revision); len(fieldErrs) > 0 {
		m.recorder.RecordModalSubmission("validation_error")
		return fieldErrs, nil
	}

	token, err := m.tokens.GetToken(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !token.IsConnected() {
		m.recorder.RecordModalSubmission("not_connected")
		if err := m.promptNotConnected(ctx, in.UserID, st.RoomID); err != nil {
			errutil.Handle(ctx, err)
		}
		return modal.FieldErrors{modal.BlockTitle: "Your Notion workspace is not connected. Follow the message in the channel to connect it."}, nil
	}

	var created *notion.CreatedEntity
	switch st.Parent.Type {
	case notion.ParentTypePage:
		created, err = m.notion.CreateDatabase(ctx, token.AccessToken, st.Parent, st.Title(), st.Properties)
	case notion.ParentTypeDatabase:
		created, err = m.notion.CreatePage(ctx, token.AccessToken, st.Parent, st.Title())
	}
	if err != nil {
		m.recorder.RecordModalSubmission("remote_error")
		errutil.Handle(ctx, err)

		if isUnauthorized(err) {
			if err := m.reconnect(ctx, in.UserID, st.RoomID); err != nil {
				errutil.Handle(ctx, err)
			}
		}
		return modal.FieldErrors{modal.BlockTitle: remoteMessage(err)}, nil
	}

	logger.Info("created notion entity", "object", created.Object, "id", created.ID, "parent_id", st.Parent.ID)
	m.recorder.RecordModalSubmission("success")

	if st.RoomID != "" {
		if err := m.slack.PostEphemeral(ctx, st.RoomID, in.UserID, createdBlocks(created, st.Parent)...); err != nil {
			errutil.Handle(ctx, err)
		}
	}

	if err := m.states.ClearAll(ctx, in.UserID, in.ViewID); err != nil {
		errutil.Handle(ctx, err)
	}
	return nil, nil
}

// submittedParent resolves the parent from the submitted view state. The
// selection is stored asynchronously and may not have landed yet.
func submittedParent(st *modal.State) *notion.Parent {
	selection, err := notion.ParseParentOption(st.Input(modal.BlockParent))
	if err != nil {
		return nil
	}
	parent, ok := st.Candidates.Find(selection)
	if !ok {
		return nil
	}
	return parent
}

func validateSubmission(st *modal.State, revision string) modal.FieldErrors {
	errs := modal.FieldErrors{}

	title := st.Title()
	switch {
	case title == "":
		errs[modal.BlockTitle] = "Enter a name."
	case utf8.RuneCountInString(title) > maxTitleLength:
		errs[modal.BlockTitle] = "The name is too long."
	}

	if st.Parent == nil {
		// without candidates there is no parent input to attach the error to
		if st.Candidates.IsEmpty() {
			if _, ok := errs[modal.BlockTitle]; !ok {
				errs[modal.BlockTitle] = "No page or database is available as a parent."
			}
		} else {
			errs[modal.RevisionBlockID(modal.BlockParent, revision)] = "Choose a parent page or database."
		}
	}

	return errs
}

// CloseModal drops the session when the user cancels
func (m *ModalSession) CloseModal(ctx context.Context, in *modal.Interaction) error {
	return m.states.ClearAll(ctx, in.UserID, in.ViewID)
}

// NotifyFailure tells the user that a request could not be completed. Modal
// interactions carry no channel, so the room of the session is used.
func (m *ModalSession) NotifyFailure(ctx context.Context, in *modal.Interaction) error {
	roomID := in.RoomID
	if roomID == "" && in.ViewID != "" {
		st, err := m.states.GetState(ctx, in.UserID, in.ViewID)
		if err != nil {
			return err
		}
		roomID = st.RoomID
	}
	if roomID == "" {
		ctxlog.From(ctx).Warn("no room to report the failure in", "user_id", in.UserID)
		return nil
	}

	if err := m.slack.PostEphemeral(ctx, roomID, in.UserID, failureBlocks()...); err != nil {
		return goerr.Wrap(err, "failed to post failure notice",
			goerr.TV(apperr.UserIDKey, in.UserID),
			goerr.TV(apperr.ChannelIDKey, roomID))
	}
	return nil
}

func (m *ModalSession) promptNotConnected(ctx context.Context, userID, roomID string) error {
	errutil.Handle(ctx, goerr.Wrap(apperr.ErrNotConnected, "notion token is missing", goerr.TV(apperr.UserIDKey, userID)))
	return m.prompter.PromptConnect(ctx, userID, roomID, reasonNotConnected)
}

// reconnect forgets a revoked token and asks the user to connect again
func (m *ModalSession) reconnect(ctx context.Context, userID, roomID string) error {
	ctxlog.From(ctx).Warn("notion token was rejected, asking to reconnect", "user_id", userID)

	if err := m.tokens.DeleteToken(ctx, userID); err != nil {
		return err
	}
	return m.prompter.PromptConnect(ctx, userID, roomID, reasonRevoked)
}

func isUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	apiErr, ok := notion.AsAPIError(err)
	return ok && apiErr.IsUnauthorized()
}

// remoteMessage is a readable text for a failed Notion call
func remoteMessage(err error) string {
	if apiErr, ok := notion.AsAPIError(err); ok {
		return apiErr.UserMessage()
	}
	return "Notion could not be reached. Please try again."
}
