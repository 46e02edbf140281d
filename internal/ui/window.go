package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// NewBadgeWindow wraps the widget in its floating window. Desktop drivers
// give us a borderless splash window that stays above other windows; any
// other driver falls back to a plain titled window.
func NewBadgeWindow(a fyne.App, w *Widget) fyne.Window {
	var win fyne.Window
	if drv, ok := a.Driver().(desktop.Driver); ok {
		win = drv.CreateSplashWindow()
	} else {
		win = a.NewWindow("Recording")
	}
	win.SetContent(w.Content())
	win.Resize(fyne.NewSize(280, 130))
	win.SetFixedSize(true)
	win.CenterOnScreen()
	return win
}
