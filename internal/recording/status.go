package recording

// StatusMessage wraps a state and its display text for the Fyne UI
type StatusMessage struct {
	State State
	Text  string
}

// StatusText returns the display text for a state
func StatusText(state State) string {
	switch state {
	case StateRecording:
		return "Recording"
	case StatePaused:
		return "Paused"
	case StateStopped:
		return "Stopped"
	default:
		return "Idle"
	}
}
