package modal

// Interaction is a host-agnostic block action or view event
type Interaction struct {
	UserID    string
	TeamID    string
	RoomID    string
	TriggerID string

	// ViewID is the logical view (callback ID); SurfaceID and Hash identify
	// the concrete surface instance to update in place.
	ViewID    string
	SurfaceID string
	Hash      string

	// Revision is carried in the view's private metadata. It suffixes block
	// IDs that must be reset on re-render.
	Revision string

	ActionID string
	BlockID  string
	Value    string

	// Values are the current input values of the view keyed by InputKey
	Values map[string]string
}

// Input returns a submitted input value by key
func (x *Interaction) Input(key string) string {
	if x.Values == nil {
		return ""
	}
	return x.Values[key]
}
