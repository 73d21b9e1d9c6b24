package modal

import "strings"

// ViewCreateDatabase is the logical view ID (Slack callback_id) of the
// "create database/page" modal. One session per user exists for it.
const ViewCreateDatabase = "notion_create_database"

// Block IDs. Input values are stored under these keys.
const (
	BlockTitle           = "title"
	BlockParent          = "parent"
	BlockPropertyName    = "property_name"
	BlockPropertyType    = "property_type"
	BlockPropertyOptions = "property_options"
	BlockPropertyActions = "property_actions"
	BlockProperty        = "property"
	BlockNotice          = "notice"
)

// Action IDs
const (
	ActionTitleInput           = "title_input"
	ActionParentSelect         = "parent_select"
	ActionPropertyNameInput    = "property_name_input"
	ActionPropertyTypeSelect   = "property_type_select"
	ActionPropertyOptionsInput = "property_options_input"
	ActionPropertyAdd          = "property_add"
	ActionPropertyRemove       = "property_remove"
	ActionConnectWorkspace     = "connect_workspace"
	ActionOpenCreated          = "open_created"
)

// revisionSeparator splits a block ID from its revision suffix. Property
// builder inputs get a new revision after each change so Slack drops the
// typed text on re-render.
const revisionSeparator = "."

// RevisionBlockID appends a revision to a block ID
func RevisionBlockID(blockID, revision string) string {
	if revision == "" {
		return blockID
	}
	return blockID + revisionSeparator + revision
}

// InputKey returns the stable key of a (possibly revisioned) block ID
func InputKey(blockID string) string {
	key, _, _ := strings.Cut(blockID, revisionSeparator)
	return key
}
