package recording

import (
	"testing"
	"time"
)

// spyDelegate counts the notifications an external engine would receive
type spyDelegate struct {
	pauses  int
	resumes int
	stops   int
}

func (d *spyDelegate) PauseRecording()  { d.pauses++ }
func (d *spyDelegate) ResumeRecording() { d.resumes++ }
func (d *spyDelegate) StopRecording()   { d.stops++ }

func TestTogglePause_FromRecording(t *testing.T) {
	delegate := &spyDelegate{}
	session := NewSession(StateRecording, delegate)

	session.TogglePause()

	if session.State() != StatePaused {
		t.Errorf("Expected paused, got %s", session.State())
	}
	if delegate.pauses != 1 || delegate.resumes != 0 || delegate.stops != 0 {
		t.Errorf("Expected exactly one pause notification, got %+v", delegate)
	}
}

func TestTogglePause_FromPaused(t *testing.T) {
	delegate := &spyDelegate{}
	session := NewSession(StateRecording, delegate)
	session.TogglePause()

	session.TogglePause()

	if session.State() != StateRecording {
		t.Errorf("Expected recording, got %s", session.State())
	}
	if delegate.resumes != 1 {
		t.Errorf("Expected exactly one resume notification, got %d", delegate.resumes)
	}
}

func TestTogglePause_NoOpWhenStoppedOrNone(t *testing.T) {
	for _, initial := range []State{StateStopped, StateNone} {
		delegate := &spyDelegate{}
		session := NewSession(initial, delegate)

		session.TogglePause()

		if session.State() != initial {
			t.Errorf("Toggle from %s should be a no-op, got %s", initial, session.State())
		}
		if delegate.pauses != 0 || delegate.resumes != 0 || delegate.stops != 0 {
			t.Errorf("Toggle from %s should emit no notification, got %+v", initial, delegate)
		}
	}
}

func TestTogglePause_Alternates(t *testing.T) {
	delegate := &spyDelegate{}
	session := NewSession(StateRecording, delegate)

	expected := []State{StatePaused, StateRecording, StatePaused, StateRecording}
	for i, want := range expected {
		session.TogglePause()
		if session.State() != want {
			t.Fatalf("Toggle %d: expected %s, got %s", i+1, want, session.State())
		}
	}
	if delegate.pauses != 2 || delegate.resumes != 2 {
		t.Errorf("Expected 2 pauses and 2 resumes, got %+v", delegate)
	}
}

func TestStop_FromEveryState(t *testing.T) {
	for _, initial := range []State{StateNone, StateRecording, StatePaused, StateStopped} {
		delegate := &spyDelegate{}
		session := NewSession(initial, delegate)

		session.Stop()

		if session.State() != StateStopped {
			t.Errorf("Stop from %s: expected stopped, got %s", initial, session.State())
		}
		if delegate.stops != 1 {
			t.Errorf("Stop from %s: expected exactly one stop notification, got %d", initial, delegate.stops)
		}
	}
}

func TestNilDelegate(t *testing.T) {
	session := NewSession(StateRecording, nil)

	// Must not panic; transitions still happen
	session.TogglePause()
	session.TogglePause()
	session.Stop()

	if session.State() != StateStopped {
		t.Errorf("Expected stopped, got %s", session.State())
	}
}

func TestUpdates_OneMessagePerTransition(t *testing.T) {
	session := NewSession(StateRecording, nil)

	session.TogglePause()
	session.Stop()
	session.TogglePause() // no-op, no message

	var got []State
	for i := 0; i < 2; i++ {
		select {
		case msg := <-session.Updates():
			got = append(got, msg.State)
		default:
			t.Fatalf("Expected 2 status messages, got %d", len(got))
		}
	}
	select {
	case msg := <-session.Updates():
		t.Errorf("Unexpected extra status message: %+v", msg)
	default:
	}

	if got[0] != StatePaused || got[1] != StateStopped {
		t.Errorf("Expected [paused stopped], got %v", got)
	}
}

func TestElapsed_ExcludesPausedTimeAndFreezesOnStop(t *testing.T) {
	session := NewSession(StateRecording, nil)

	time.Sleep(20 * time.Millisecond)
	session.TogglePause()
	pausedAt := session.Elapsed()
	if pausedAt < 20*time.Millisecond {
		t.Errorf("Expected at least 20ms recorded, got %v", pausedAt)
	}

	time.Sleep(30 * time.Millisecond)
	if session.Elapsed() != pausedAt {
		t.Errorf("Elapsed advanced while paused: %v != %v", session.Elapsed(), pausedAt)
	}

	session.TogglePause()
	time.Sleep(20 * time.Millisecond)
	session.Stop()
	stoppedAt := session.Elapsed()
	if stoppedAt < pausedAt+20*time.Millisecond {
		t.Errorf("Expected elapsed to resume counting, got %v", stoppedAt)
	}

	time.Sleep(20 * time.Millisecond)
	if session.Elapsed() != stoppedAt {
		t.Errorf("Elapsed advanced after stop: %v != %v", session.Elapsed(), stoppedAt)
	}
}

func TestStatusText(t *testing.T) {
	cases := map[State]string{
		StateNone:      "Idle",
		StateRecording: "Recording",
		StatePaused:    "Paused",
		StateStopped:   "Stopped",
	}
	for state, want := range cases {
		if got := StatusText(state); got != want {
			t.Errorf("StatusText(%s): expected %q, got %q", state, want, got)
		}
	}
}
