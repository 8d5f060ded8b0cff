// Package ui contains the Fyne desktop user interface. The main window draws
// the transcoding control panel, routes pointer, wheel, keyboard and drop
// events into it, and hands parameter snapshots to the transcode service.
// All UI strings are localized via Localization.
package ui
