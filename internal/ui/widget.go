package ui

import (
	"fmt"
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/recbadge/recbadge/internal/config"
	"github.com/recbadge/recbadge/internal/logging"
	"github.com/recbadge/recbadge/internal/recording"
)

var (
	recordingColor = color.NRGBA{R: 0xD3, G: 0x2F, B: 0x2F, A: 0xFF}
	pausedColor    = color.NRGBA{R: 0xF9, G: 0xA8, B: 0x25, A: 0xFF}
	idleColor      = color.NRGBA{R: 0x9E, G: 0x9E, B: 0x9E, A: 0xFF}
)

const dotSize = 14

// Widget is the floating recording badge: a blinking indicator dot, a hint
// label that hides itself after a delay, an elapsed clock and the
// pause/resume and stop controls.
type Widget struct {
	session *recording.Session
	cfg     *config.Config

	dot          *canvas.Circle
	statusLabel  *widget.Label
	elapsedLabel *widget.Label
	hintLabel    *widget.Label
	pauseButton  *widget.Button
	stopButton   *widget.Button
	content      fyne.CanvasObject

	mu          sync.Mutex
	started     bool
	hintHidden  bool
	blinkHidden bool
	closeOnce   sync.Once
	done        chan struct{}
}

// New builds the widget for the given session. Call Start to begin the
// blink/clock timers and the status subscription, and Close to end them.
func New(session *recording.Session, cfg *config.Config) *Widget {
	w := &Widget{
		session: session,
		cfg:     cfg,
		done:    make(chan struct{}),
	}

	w.dot = canvas.NewCircle(idleColor)

	w.statusLabel = widget.NewLabel(recording.StatusText(session.State()))
	w.statusLabel.TextStyle = fyne.TextStyle{Bold: true}

	w.elapsedLabel = widget.NewLabel(formatElapsed(session.Elapsed()))

	w.hintLabel = widget.NewLabel("Use the buttons to pause or stop the recording")
	w.hintLabel.Wrapping = fyne.TextWrapWord

	w.pauseButton = widget.NewButtonWithIcon("Pause", theme.MediaPauseIcon(), func() {
		w.session.TogglePause()
	})
	w.stopButton = widget.NewButtonWithIcon("Stop", theme.MediaStopIcon(), func() {
		w.session.Stop()
	})

	statusRow := container.NewHBox(
		container.NewCenter(container.NewGridWrap(fyne.NewSize(dotSize, dotSize), w.dot)),
		w.statusLabel,
		w.elapsedLabel,
	)
	buttonRow := container.NewGridWithColumns(2, w.pauseButton, w.stopButton)
	w.content = container.NewPadded(container.NewVBox(
		statusRow,
		buttonRow,
		widget.NewSeparator(),
		w.hintLabel,
	))

	w.applyState(session.State())
	return w
}

// Content returns the widget's render tree
func (w *Widget) Content() fyne.CanvasObject {
	return w.content
}

// Start begins the status subscription, the blink ticker, the elapsed clock
// and the one-shot hint timer. Calling it more than once has no effect.
func (w *Widget) Start() {
	w.mu.Lock()
	if w.started {
		w.mu.Unlock()
		return
	}
	w.started = true
	w.mu.Unlock()

	// The hint hides exactly once per widget lifetime
	time.AfterFunc(w.cfg.HideDelay(), w.hideHint)

	go w.consumeStatus()
	go w.blinkLoop()
	go w.clockLoop()
}

// Close stops the widget's timers. Safe to call from several paths at once;
// the tray, the close intercept and the signal handler all reach it.
func (w *Widget) Close() {
	w.closeOnce.Do(func() {
		close(w.done)
	})
}

// HintVisible reports whether the hint label is still shown
func (w *Widget) HintVisible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return !w.hintHidden
}

// consumeStatus applies session transitions to the render tree
func (w *Widget) consumeStatus() {
	for {
		select {
		case msg := <-w.session.Updates():
			logging.Trace("Status update: %s", msg.Text)
			w.applyState(msg.State)
		case <-w.done:
			return
		}
	}
}

// blinkLoop toggles the indicator dot while recording. In every other state
// it re-shows the dot, so a pause landing between the state read and the
// hide still leaves the dot steady one tick later.
func (w *Widget) blinkLoop() {
	ticker := time.NewTicker(w.cfg.BlinkInterval())
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			w.mu.Lock()
			if w.session.State() != recording.StateRecording {
				w.setDotHiddenLocked(false)
			} else {
				w.setDotHiddenLocked(!w.blinkHidden)
			}
			w.mu.Unlock()
		case <-w.done:
			return
		}
	}
}

// setDotHiddenLocked flips the dot's visibility. Hide/Show refresh the
// canvas object, so every caller must hold w.mu.
func (w *Widget) setDotHiddenLocked(hidden bool) {
	if w.blinkHidden == hidden {
		return
	}
	w.blinkHidden = hidden
	if hidden {
		w.dot.Hide()
	} else {
		w.dot.Show()
	}
}

// dotVisible reads the dot's visibility under the widget lock
func (w *Widget) dotVisible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dot.Visible()
}

// clockLoop refreshes the elapsed readout once a second
func (w *Widget) clockLoop() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if w.session.State() == recording.StateRecording {
				w.elapsedLabel.SetText(formatElapsed(w.session.Elapsed()))
			}
		case <-w.done:
			return
		}
	}
}

func (w *Widget) applyState(state recording.State) {
	switch state {
	case recording.StateRecording:
		w.pauseButton.SetText("Pause")
		w.pauseButton.SetIcon(theme.MediaPauseIcon())
		w.pauseButton.Enable()
		w.stopButton.Enable()
	case recording.StatePaused:
		w.pauseButton.SetText("Resume")
		w.pauseButton.SetIcon(theme.MediaPlayIcon())
		w.pauseButton.Enable()
		w.stopButton.Enable()
	default:
		w.pauseButton.Disable()
		w.stopButton.Disable()
	}

	// The blink goroutine touches the same canvas object
	w.mu.Lock()
	switch state {
	case recording.StateRecording:
		w.dot.FillColor = recordingColor
	case recording.StatePaused:
		w.dot.FillColor = pausedColor
	default:
		w.dot.FillColor = idleColor
	}
	w.setDotHiddenLocked(false)
	canvas.Refresh(w.dot)
	w.mu.Unlock()

	w.statusLabel.SetText(recording.StatusText(state))
	w.elapsedLabel.SetText(formatElapsed(w.session.Elapsed()))
}

func (w *Widget) hideHint() {
	w.mu.Lock()
	if w.hintHidden {
		w.mu.Unlock()
		return
	}
	w.hintHidden = true
	w.mu.Unlock()

	w.hintLabel.Hide()
	logging.Trace("Hint label hidden")
}

func formatElapsed(d time.Duration) string {
	seconds := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
