package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

// Application identity
const (
	AppID   = "com.ytget.video-processor"
	AppName = "video-processor"
)

// statusRowHeight leaves room for the progress row under the panel
const statusRowHeight float32 = 40

// Launch creates the Fyne application and main window and blocks until the
// window is closed.
func Launch(opts Options) {
	a := app.NewWithID(AppID)
	a.Settings().SetTheme(NewPanelTheme())

	w := a.NewWindow(AppName)
	w.Resize(fyne.NewSize(WindowWidth, WindowHeight+statusRowHeight+LogHeight))
	w.SetFixedSize(true)

	NewRootUI(w, a, opts)
	w.ShowAndRun()
}
