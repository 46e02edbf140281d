package recording

// State is the recording state shown by the widget. It governs all visual
// behavior and every notification sent to the delegate.
type State int

const (
	// StateNone means no recording session is attached yet
	StateNone State = iota
	StateRecording
	StatePaused
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateRecording:
		return "recording"
	case StatePaused:
		return "paused"
	case StateStopped:
		return "stopped"
	default:
		return "none"
	}
}

// Active reports whether a session is running, paused or not
func (s State) Active() bool {
	return s == StateRecording || s == StatePaused
}

// Delegate is the externally owned recording engine notified of
// user-triggered transitions. All calls are one-way, fire-and-forget.
type Delegate interface {
	PauseRecording()
	ResumeRecording()
	StopRecording()
}
