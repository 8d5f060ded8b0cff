package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Colour names used by the control panel renderer
const (
	ColorNamePanelBackground fyne.ThemeColorName = "panelBackground"
	ColorNamePanelInk        fyne.ThemeColorName = "panelInk"
	ColorNamePanelTrack      fyne.ThemeColorName = "panelTrack"
	ColorNamePanelHandle     fyne.ThemeColorName = "panelHandle"
	ColorNamePanelPressed    fyne.ThemeColorName = "panelPressed"
)

// PanelTheme is a compact light theme. The control panel is always drawn
// black on white regardless of the variant.
type PanelTheme struct{}

// NewPanelTheme creates the application theme
func NewPanelTheme() fyne.Theme {
	return &PanelTheme{}
}

// Color returns theme colors
func (t *PanelTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case ColorNamePanelBackground:
		return color.White
	case ColorNamePanelInk:
		return color.Black
	case ColorNamePanelTrack:
		return color.RGBA{R: 130, G: 130, B: 130, A: 255}
	case ColorNamePanelHandle:
		return color.RGBA{R: 80, G: 80, B: 80, A: 255}
	case ColorNamePanelPressed:
		return color.RGBA{R: 200, G: 200, B: 200, A: 255}
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.White
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *PanelTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *PanelTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *PanelTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 13
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 3
	}

	return theme.DefaultTheme().Size(name)
}
