package state

import (
	"net/url"
	"strings"
)

const keyPrefix = "tsumugi"

// Key purposes. Each purpose has its own namespace so token, room binding
// and modal keys never collide even for the same user.
const (
	purposeToken = "token"
	purposeRoom  = "room"
	purposeModal = "modal"
)

type modalField string

const (
	fieldRoom       modalField = "room"
	fieldParent     modalField = "parent"
	fieldProperties modalField = "properties"
	fieldInputs     modalField = "inputs"
	fieldCandidates modalField = "candidates"
)

// modalFields lists every sub-key of a modal session. ClearAll removes all of them.
var modalFields = []modalField{
	fieldRoom,
	fieldParent,
	fieldProperties,
	fieldInputs,
	fieldCandidates,
}

// buildKey joins escaped segments. Escaping keeps IDs containing "/" from
// forging another key.
func buildKey(purpose string, segments ...string) string {
	parts := make([]string, 0, len(segments)+2)
	parts = append(parts, keyPrefix, purpose)
	for _, s := range segments {
		parts = append(parts, url.PathEscape(s))
	}
	return strings.Join(parts, "/")
}

func tokenKey(userID string) string {
	return buildKey(purposeToken, userID)
}

func roomKey(userID string) string {
	return buildKey(purposeRoom, userID)
}

func modalKey(userID, viewID string, field modalField) string {
	return buildKey(purposeModal, userID, viewID, string(field))
}
