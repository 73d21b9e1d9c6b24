package state

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tsumugi/pkg/domain/interfaces"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/auth"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/modal"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/notion"
	"github.com/m-mizutani/tsumugi/pkg/domain/types/apperr"
)

// InteractionStore keeps room bindings and modal session state. Every
// session field is a separate key, so writers replace whole values
// instead of patching a shared document.
type InteractionStore struct {
	adapter interfaces.StorageAdapter
}

// NewInteractionStore creates an interaction store on top of a key-value adapter
func NewInteractionStore(adapter interfaces.StorageAdapter) *InteractionStore {
	return &InteractionStore{adapter: adapter}
}

func sessionValues(userID, viewID string) []goerr.Option {
	return []goerr.Option{
		goerr.TV(apperr.UserIDKey, userID),
		goerr.TV(apperr.ViewIDKey, viewID),
	}
}

// StoreRoomBinding overwrites any pending authorization of the user
func (s *InteractionStore) StoreRoomBinding(ctx context.Context, pending *auth.PendingAuthorization) error {
	if pending == nil || pending.UserID == "" {
		return goerr.New("pending authorization requires a user", goerr.T(apperr.ErrTagValidation))
	}

	if err := putJSON(ctx, s.adapter, roomKey(pending.UserID), pending); err != nil {
		return goerr.Wrap(err, "failed to store room binding", goerr.TV(apperr.UserIDKey, pending.UserID))
	}
	return nil
}

// GetRoomBinding returns nil without error if no binding exists. Expiry is
// left to the caller.
func (s *InteractionStore) GetRoomBinding(ctx context.Context, userID string) (*auth.PendingAuthorization, error) {
	var pending auth.PendingAuthorization
	found, err := getJSON(ctx, s.adapter, roomKey(userID), &pending)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get room binding", goerr.TV(apperr.UserIDKey, userID))
	}
	if !found {
		return nil, nil
	}
	return &pending, nil
}

func (s *InteractionStore) ClearRoomBinding(ctx context.Context, userID string) error {
	if err := deleteKey(ctx, s.adapter, roomKey(userID)); err != nil {
		return goerr.Wrap(err, "failed to clear room binding", goerr.TV(apperr.UserIDKey, userID))
	}
	return nil
}

func (s *InteractionStore) SetRoom(ctx context.Context, userID, viewID, roomID string) error {
	if err := putJSON(ctx, s.adapter, modalKey(userID, viewID, fieldRoom), roomID); err != nil {
		return goerr.Wrap(err, "failed to set room", sessionValues(userID, viewID)...)
	}
	return nil
}

// SetParent replaces the selected parent. A nil parent clears the selection.
func (s *InteractionStore) SetParent(ctx context.Context, userID, viewID string, parent *notion.Parent) error {
	key := modalKey(userID, viewID, fieldParent)

	if parent == nil {
		if err := deleteKey(ctx, s.adapter, key); err != nil {
			return goerr.Wrap(err, "failed to clear parent", sessionValues(userID, viewID)...)
		}
		return nil
	}

	if !parent.Type.IsValid() || parent.ID == "" {
		return goerr.New("invalid parent",
			append(sessionValues(userID, viewID),
				goerr.T(apperr.ErrTagValidation),
				goerr.V("parent_id", parent.ID),
				goerr.V("parent_type", parent.Type))...)
	}

	if err := putJSON(ctx, s.adapter, key, parent); err != nil {
		return goerr.Wrap(err, "failed to set parent", sessionValues(userID, viewID)...)
	}
	return nil
}

func (s *InteractionStore) getProperties(ctx context.Context, userID, viewID string) ([]notion.PropertyDefinition, error) {
	var props []notion.PropertyDefinition
	if _, err := getJSON(ctx, s.adapter, modalKey(userID, viewID, fieldProperties), &props); err != nil {
		return nil, goerr.Wrap(err, "failed to get properties", sessionValues(userID, viewID)...)
	}
	return props, nil
}

func (s *InteractionStore) putProperties(ctx context.Context, userID, viewID string, props []notion.PropertyDefinition) error {
	key := modalKey(userID, viewID, fieldProperties)
	if len(props) == 0 {
		return deleteKey(ctx, s.adapter, key)
	}
	return putJSON(ctx, s.adapter, key, props)
}

// AddProperty appends a definition. Names are unique per session
// regardless of case; a duplicate returns apperr.ErrDuplicateProperty.
func (s *InteractionStore) AddProperty(ctx context.Context, userID, viewID string, def notion.PropertyDefinition) error {
	props, err := s.getProperties(ctx, userID, viewID)
	if err != nil {
		return err
	}

	for _, p := range props {
		if notion.SameName(p.Name, def.Name) {
			return goerr.Wrap(apperr.ErrDuplicateProperty, "property already defined",
				append(sessionValues(userID, viewID), goerr.V("name", def.Name))...)
		}
	}

	if err := s.putProperties(ctx, userID, viewID, append(props, def)); err != nil {
		return goerr.Wrap(err, "failed to add property",
			append(sessionValues(userID, viewID), goerr.V("name", def.Name))...)
	}
	return nil
}

// RemoveProperty drops the definition with the name. Removing an unknown name is a no-op.
func (s *InteractionStore) RemoveProperty(ctx context.Context, userID, viewID, name string) error {
	props, err := s.getProperties(ctx, userID, viewID)
	if err != nil {
		return err
	}

	kept := make([]notion.PropertyDefinition, 0, len(props))
	for _, p := range props {
		if !notion.SameName(p.Name, name) {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(props) {
		return nil
	}

	if err := s.putProperties(ctx, userID, viewID, kept); err != nil {
		return goerr.Wrap(err, "failed to remove property",
			append(sessionValues(userID, viewID), goerr.V("name", name))...)
	}
	return nil
}

func (s *InteractionStore) getInputs(ctx context.Context, userID, viewID string) (map[string]string, error) {
	inputs := map[string]string{}
	if _, err := getJSON(ctx, s.adapter, modalKey(userID, viewID, fieldInputs), &inputs); err != nil {
		return nil, goerr.Wrap(err, "failed to get input values", sessionValues(userID, viewID)...)
	}
	return inputs, nil
}

func (s *InteractionStore) SetInputValue(ctx context.Context, userID, viewID, key, value string) error {
	inputs, err := s.getInputs(ctx, userID, viewID)
	if err != nil {
		return err
	}
	inputs[key] = value

	if err := putJSON(ctx, s.adapter, modalKey(userID, viewID, fieldInputs), inputs); err != nil {
		return goerr.Wrap(err, "failed to set input value",
			append(sessionValues(userID, viewID), goerr.V("key", key))...)
	}
	return nil
}

// SetInputValues replaces all input values of the session
func (s *InteractionStore) SetInputValues(ctx context.Context, userID, viewID string, values map[string]string) error {
	if values == nil {
		values = map[string]string{}
	}

	if err := putJSON(ctx, s.adapter, modalKey(userID, viewID, fieldInputs), values); err != nil {
		return goerr.Wrap(err, "failed to set input values", sessionValues(userID, viewID)...)
	}
	return nil
}

func (s *InteractionStore) SetCandidates(ctx context.Context, userID, viewID string, candidates *notion.Candidates) error {
	if err := putJSON(ctx, s.adapter, modalKey(userID, viewID, fieldCandidates), candidates); err != nil {
		return goerr.Wrap(err, "failed to set candidates", sessionValues(userID, viewID)...)
	}
	return nil
}

// GetState assembles the session from its sub-keys. A session that was
// never written (or was cleared) yields an empty state, not an error.
func (s *InteractionStore) GetState(ctx context.Context, userID, viewID string) (*modal.State, error) {
	st := modal.NewState(userID, viewID)

	if _, err := getJSON(ctx, s.adapter, modalKey(userID, viewID, fieldRoom), &st.RoomID); err != nil {
		return nil, goerr.Wrap(err, "failed to get room", sessionValues(userID, viewID)...)
	}

	var parent notion.Parent
	found, err := getJSON(ctx, s.adapter, modalKey(userID, viewID, fieldParent), &parent)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get parent", sessionValues(userID, viewID)...)
	}
	if found {
		st.Parent = &parent
	}

	if st.Properties, err = s.getProperties(ctx, userID, viewID); err != nil {
		return nil, err
	}
	if st.Inputs, err = s.getInputs(ctx, userID, viewID); err != nil {
		return nil, err
	}

	var candidates notion.Candidates
	found, err = getJSON(ctx, s.adapter, modalKey(userID, viewID, fieldCandidates), &candidates)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get candidates", sessionValues(userID, viewID)...)
	}
	if found {
		st.Candidates = &candidates
	}

	return st, nil
}

// ClearAll deletes every sub-key of the session. It keeps going after a
// failed delete so one bad key does not leave the rest behind.
func (s *InteractionStore) ClearAll(ctx context.Context, userID, viewID string) error {
	var errs []error
	for _, field := range modalFields {
		if err := deleteKey(ctx, s.adapter, modalKey(userID, viewID, field)); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return goerr.Wrap(errors.Join(errs...), "failed to clear modal session", sessionValues(userID, viewID)...)
	}
	return nil
}

var _ interfaces.InteractionRepository = (*InteractionStore)(nil)
