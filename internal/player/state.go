package player

// State is the lifecycle phase of the controller's current session.
type State int32

const (
	// StateIdle means no decoder is running.
	StateIdle State = iota
	// StateStarting means a decoder was launched and its IPC endpoint has
	// not answered yet.
	StateStarting
	// StatePlaying means the decoder answered a metadata poll.
	StatePlaying
	// StateStopping means the session is being torn down.
	StateStopping
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStarting:
		return "starting"
	case StatePlaying:
		return "playing"
	case StateStopping:
		return "stopping"
	default:
		return "unknown"
	}
}
