package apperr

import "github.com/m-mizutani/goerr/v2"

// Slack related keys
var (
	UserIDKey    = goerr.NewTypedKey[string]("user_id")
	ChannelIDKey = goerr.NewTypedKey[string]("channel_id")
	ViewIDKey    = goerr.NewTypedKey[string]("view_id")
	ActionIDKey  = goerr.NewTypedKey[string]("action_id")
)

// Notion related keys
var (
	WorkspaceIDKey = goerr.NewTypedKey[string]("workspace_id")
	EndpointKey    = goerr.NewTypedKey[string]("endpoint")
	StatusCodeKey  = goerr.NewTypedKey[int]("status_code")
)

// Persistence related keys
var (
	StorageKeyKey = goerr.NewTypedKey[string]("storage_key")
	CollectionKey = goerr.NewTypedKey[string]("collection")
	BucketKey     = goerr.NewTypedKey[string]("bucket")
)
