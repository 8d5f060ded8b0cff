package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/video-processor/internal/controls"
)

// ControlPanel is a Fyne widget that draws a controls.Panel and feeds it
// pointer, wheel and keyboard input. Coordinates are widget-local, so the
// panel layout is expressed in the same space the events arrive in.
type ControlPanel struct {
	widget.BaseWidget

	panel    *controls.Panel
	measurer controls.TextMeasurer
	header   []string
	pointer  controls.Point
}

var (
	_ desktop.Mouseable = (*ControlPanel)(nil)
	_ desktop.Hoverable = (*ControlPanel)(nil)
	_ fyne.Draggable    = (*ControlPanel)(nil)
	_ fyne.Scrollable   = (*ControlPanel)(nil)
)

// NewControlPanel wraps panel in a widget
func NewControlPanel(panel *controls.Panel, measurer controls.TextMeasurer) *ControlPanel {
	cp := &ControlPanel{panel: panel, measurer: measurer}
	cp.ExtendBaseWidget(cp)
	return cp
}

// Panel returns the wrapped control model
func (cp *ControlPanel) Panel() *controls.Panel {
	return cp.panel
}

// SetHeader replaces the text lines drawn at the top of the panel
func (cp *ControlPanel) SetHeader(lines ...string) {
	cp.header = append(cp.header[:0], lines...)
	cp.Refresh()
}

// MouseDown starts an interaction with the primary button. Focus is taken
// away from other widgets so arrow keys reach the window again.
func (cp *ControlPanel) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	if app := fyne.CurrentApp(); app != nil {
		if c := app.Driver().CanvasForObject(cp); c != nil {
			c.Unfocus()
		}
	}
	cp.pointer = toPoint(ev.Position)
	cp.panel.PointerDown(cp.pointer)
	cp.Refresh()
}

// MouseUp finishes the interaction started by MouseDown
func (cp *ControlPanel) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	cp.pointer = toPoint(ev.Position)
	cp.panel.PointerUp(cp.pointer)
	cp.Refresh()
}

// MouseIn tracks the pointer entering the panel. A capture whose button
// was released outside the window is dropped without acting on it.
func (cp *ControlPanel) MouseIn(ev *desktop.MouseEvent) {
	cp.pointer = toPoint(ev.Position)
	if cp.panel.Held() && ev.Button&desktop.MouseButtonPrimary == 0 {
		cp.panel.Release()
		cp.Refresh()
	}
}

// MouseMoved tracks hover motion
func (cp *ControlPanel) MouseMoved(ev *desktop.MouseEvent) {
	cp.pointer = toPoint(ev.Position)
	if cp.panel.Held() {
		cp.panel.PointerMove(cp.pointer)
		cp.Refresh()
	}
}

// MouseOut keeps the capture; a drag that leaves the panel still clamps
// onto the captured slider.
func (cp *ControlPanel) MouseOut() {}

// Dragged moves the captured slider
func (cp *ControlPanel) Dragged(ev *fyne.DragEvent) {
	cp.pointer = toPoint(ev.Position)
	cp.panel.PointerMove(cp.pointer)
	cp.Refresh()
}

// DragEnd releases at the last dragged position. The driver may also
// deliver MouseUp; a second release with nothing captured is a no-op.
func (cp *ControlPanel) DragEnd() {
	if !cp.panel.Held() {
		return
	}
	cp.panel.PointerUp(cp.pointer)
	cp.Refresh()
}

// Scrolled nudges sliders under the pointer
func (cp *ControlPanel) Scrolled(ev *fyne.ScrollEvent) {
	cp.pointer = toPoint(ev.Position)
	cp.panel.Wheel(cp.pointer, ev.Scrolled.DY)
	cp.Refresh()
}

// TypedKey nudges the last touched slider on Left/Right. It reports
// whether the key was consumed.
func (cp *ControlPanel) TypedKey(ev *fyne.KeyEvent) bool {
	switch ev.Name {
	case fyne.KeyLeft:
		cp.panel.KeyPressed(controls.KeyDecrease)
	case fyne.KeyRight:
		cp.panel.KeyPressed(controls.KeyIncrease)
	default:
		return false
	}
	cp.Refresh()
	return true
}

// MinSize returns the fixed panel area
func (cp *ControlPanel) MinSize() fyne.Size {
	cp.ExtendBaseWidget(cp)
	return fyne.NewSize(WindowWidth, WindowHeight)
}

// CreateRenderer implements fyne.Widget
func (cp *ControlPanel) CreateRenderer() fyne.WidgetRenderer {
	cp.ExtendBaseWidget(cp)
	bg := canvas.NewRectangle(theme.Color(ColorNamePanelBackground))
	r := &controlPanelRenderer{cp: cp, background: bg}
	r.rebuild()
	return r
}

func toPoint(p fyne.Position) controls.Point {
	return controls.Point{X: p.X, Y: p.Y}
}

// FyneMeasurer measures text with the current theme's regular font
func FyneMeasurer() controls.TextMeasurer {
	return controls.MeasureFunc(func(text string, fontSize float32) controls.Size {
		s := fyne.MeasureText(text, fontSize, fyne.TextStyle{})
		return controls.Size{Width: s.Width, Height: s.Height}
	})
}

type controlPanelRenderer struct {
	cp         *ControlPanel
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *controlPanelRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *controlPanelRenderer) MinSize() fyne.Size {
	return fyne.NewSize(WindowWidth, WindowHeight)
}

func (r *controlPanelRenderer) Refresh() {
	r.background.FillColor = theme.Color(ColorNamePanelBackground)
	r.rebuild()
	r.Layout(r.cp.Size())
	canvas.Refresh(r.cp)
}

func (r *controlPanelRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *controlPanelRenderer) Destroy() {}

// rebuild turns the panel's draw requests into canvas objects
func (r *controlPanelRenderer) rebuild() {
	objects := []fyne.CanvasObject{r.background}

	headerY := []float32{InputPathLineY, OutputPathLineY}
	for i, line := range r.cp.header {
		y := float32(i) * OutputPathLineY
		if i < len(headerY) {
			y = headerY[i]
		}
		t := canvas.NewText(line, theme.Color(ColorNamePanelInk))
		t.TextSize = PathFontSize
		t.Move(fyne.NewPos(0, y))
		objects = append(objects, t)
	}

	for _, op := range r.cp.panel.Draw(r.cp.measurer) {
		if obj := drawObject(op); obj != nil {
			objects = append(objects, obj)
		}
	}
	r.objects = objects
}

func inkColor(ink controls.Ink) color.Color {
	switch ink {
	case controls.InkTrack:
		return theme.Color(ColorNamePanelTrack)
	case controls.InkHandle:
		return theme.Color(ColorNamePanelHandle)
	case controls.InkPressed:
		return theme.Color(ColorNamePanelPressed)
	default:
		return theme.Color(ColorNamePanelInk)
	}
}

func drawObject(op controls.DrawOp) fyne.CanvasObject {
	c := inkColor(op.Ink)
	switch op.Kind {
	case controls.OpRect:
		rect := canvas.NewRectangle(c)
		rect.Move(fyne.NewPos(op.Bounds.X, op.Bounds.Y))
		rect.Resize(fyne.NewSize(op.Bounds.Width, op.Bounds.Height))
		return rect
	case controls.OpRectOutline:
		rect := canvas.NewRectangle(color.Transparent)
		rect.StrokeColor = c
		rect.StrokeWidth = op.StrokeWidth
		rect.Move(fyne.NewPos(op.Bounds.X, op.Bounds.Y))
		rect.Resize(fyne.NewSize(op.Bounds.Width, op.Bounds.Height))
		return rect
	case controls.OpText:
		t := canvas.NewText(op.Text, c)
		t.TextSize = op.FontSize
		t.Move(fyne.NewPos(op.Bounds.X, op.Bounds.Y))
		return t
	case controls.OpCircle, controls.OpCircleOutline:
		circle := canvas.NewCircle(c)
		if op.Kind == controls.OpCircleOutline {
			circle.FillColor = color.Transparent
			circle.StrokeColor = c
			circle.StrokeWidth = 1
		}
		circle.Move(fyne.NewPos(op.Center.X-op.Radius, op.Center.Y-op.Radius))
		circle.Resize(fyne.NewSize(op.Radius*2, op.Radius*2))
		return circle
	default:
		return nil
	}
}
