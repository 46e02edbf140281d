package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/recbadge/recbadge/internal/recording"
)

func TestNewBadgeWindow(t *testing.T) {
	a := test.NewApp()
	session := recording.NewSession(recording.StateRecording, nil)
	w := New(session, testConfig())

	win := NewBadgeWindow(a, w)

	// The test driver has no splash support, so this is the fallback window
	if win.Title() != "Recording" {
		t.Errorf("Expected fallback window title 'Recording', got %q", win.Title())
	}
	if !win.FixedSize() {
		t.Error("Badge window should be fixed size")
	}
	if win.Content() != w.Content() {
		t.Error("Badge window should hold the widget's render tree")
	}
}
