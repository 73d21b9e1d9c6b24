package modal

import (
	"strings"

	"github.com/m-mizutani/tsumugi/pkg/domain/model/notion"
)

// FieldErrors maps a block ID of the modal to an inline error message
type FieldErrors map[string]string

// State is everything accumulated during one modal session (userID, viewID)
type State struct {
	UserID     string                      `json:"user_id"`
	ViewID     string                      `json:"view_id"`
	RoomID     string                      `json:"room_id,omitempty"`
	Parent     *notion.Parent              `json:"parent,omitempty"`
	Properties []notion.PropertyDefinition `json:"properties,omitempty"`
	Inputs     map[string]string           `json:"inputs,omitempty"`
	Candidates *notion.Candidates          `json:"candidates,omitempty"`
}

// NewState returns an empty session state
func NewState(userID, viewID string) *State {
	return &State{
		UserID: userID,
		ViewID: viewID,
		Inputs: map[string]string{},
	}
}

// Input returns a trimmed input value
func (x *State) Input(key string) string {
	if x.Inputs == nil {
		return ""
	}
	return strings.TrimSpace(x.Inputs[key])
}

// Title returns the name the user typed for the new database or page
func (x *State) Title() string {
	return x.Input(BlockTitle)
}

// HasProperty checks if a property with the same name is already defined
func (x *State) HasProperty(name string) bool {
	for _, p := range x.Properties {
		if notion.SameName(p.Name, name) {
			return true
		}
	}
	return false
}

// AcceptsProperties returns true if the selected parent takes property definitions.
// Only new databases (created under a page) have a schema to define.
func (x *State) AcceptsProperties() bool {
	return x.Parent == nil || x.Parent.Type == notion.ParentTypePage
}

// IsEmpty returns true if nothing has been stored for the session
func (x *State) IsEmpty() bool {
	return x.RoomID == "" && x.Parent == nil && len(x.Properties) == 0 &&
		len(x.Inputs) == 0 && x.Candidates == nil
}
