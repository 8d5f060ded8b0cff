package ui

import (
	"fyne.io/fyne/v2"
)

// AppIconPath is looked up relative to the working directory
const AppIconPath = "assets/icons/video-processor.png"

// LoadLogoResource loads the window icon from AppIconPath
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIconPath)
}
