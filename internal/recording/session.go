package recording

import (
	"sync"
	"time"

	"github.com/recbadge/recbadge/internal/logging"
)

// Session holds the current recording state and mirrors user-triggered
// transitions to the delegate. The delegate reference is non-owning and may
// be nil, in which case transitions still happen but no one is notified.
type Session struct {
	mu       sync.Mutex
	state    State
	delegate Delegate

	startedAt time.Time     // start of the current recording span
	elapsed   time.Duration // accumulated recording time, paused spans excluded

	updates chan StatusMessage
}

// NewSession creates a session in the given initial state
func NewSession(initial State, delegate Delegate) *Session {
	s := &Session{
		state:    initial,
		delegate: delegate,
		updates:  make(chan StatusMessage, 10),
	}
	if initial == StateRecording {
		s.startedAt = time.Now()
	}
	return s
}

// State returns the current recording state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Updates is the stream of status messages consumed by the UI. Sends are
// non-blocking; a slow consumer loses intermediate updates, never transitions.
func (s *Session) Updates() <-chan StatusMessage {
	return s.updates
}

// TogglePause flips between recording and paused and notifies the delegate of
// whichever transition occurred. It is a no-op in any other state.
func (s *Session) TogglePause() {
	s.mu.Lock()
	var notify func()
	switch s.state {
	case StateRecording:
		s.elapsed += time.Since(s.startedAt)
		s.state = StatePaused
		if s.delegate != nil {
			notify = s.delegate.PauseRecording
		}
	case StatePaused:
		s.startedAt = time.Now()
		s.state = StateRecording
		if s.delegate != nil {
			notify = s.delegate.ResumeRecording
		}
	default:
		s.mu.Unlock()
		logging.Trace("Ignoring pause toggle in state %s", s.state)
		return
	}
	state := s.state
	s.mu.Unlock()

	logging.InfoLogger.Printf("Recording %s", state)
	if notify != nil {
		notify()
	}
	s.sendStatus(state)
}

// Stop moves to the stopped state from any state and notifies the delegate
func (s *Session) Stop() {
	s.mu.Lock()
	if s.state == StateRecording {
		s.elapsed += time.Since(s.startedAt)
	}
	s.state = StateStopped
	notify := s.delegate
	s.mu.Unlock()

	logging.InfoLogger.Println("Recording stopped")
	if notify != nil {
		notify.StopRecording()
	}
	s.sendStatus(StateStopped)
}

// Elapsed returns the accumulated recording time. Paused spans are excluded
// and the value freezes once the session is stopped.
func (s *Session) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateRecording {
		return s.elapsed + time.Since(s.startedAt)
	}
	return s.elapsed
}

func (s *Session) sendStatus(state State) {
	msg := StatusMessage{State: state, Text: StatusText(state)}
	select {
	case s.updates <- msg:
	default:
		// Channel is full, skip this update
	}
}
