package state

var (
	TokenKey = tokenKey
	RoomKey  = roomKey
)

func ModalKeys(userID, viewID string) []string {
	keys := make([]string, 0, len(modalFields))
	for _, f := range modalFields {
		keys = append(keys, modalKey(userID, viewID, f))
	}
	return keys
}
