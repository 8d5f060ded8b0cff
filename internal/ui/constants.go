package ui

import "time"

// Window geometry
const (
	WindowWidth  float32 = 800
	WindowHeight float32 = 450
	LogHeight    float32 = 140
)

// Control panel layout. Sliders sit on a cross: crop top, quality and crop
// bottom stacked in the middle column, crop left and right beside quality,
// volume below.
const (
	SliderWidth   float32 = 150
	SliderHeight  float32 = 20
	SliderStartX  float32 = 50
	SliderStartY  float32 = 100
	SliderXOffset         = SliderWidth + 50
	SliderYOffset float32 = 50

	SubmitWidth    float32 = 100
	SubmitHeight   float32 = 50
	SubmitFontSize float32 = 28

	RadioX      float32 = 20
	RadioY      float32 = 300
	RadioWidth  float32 = 100
	RadioHeight float32 = 50

	PathFontSize    float32 = 18
	InputPathLineY  float32 = 0
	OutputPathLineY float32 = 50
)

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconStop     = "■"
	IconFolder   = "📁"
	IconClose    = "×"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	DashPlaceholder     = "—"
	ProgressLabelFormat = "%d%%"
)

// Log panel
const (
	MaxLogLines = 500
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 110
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)
