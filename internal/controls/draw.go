package controls

import "strconv"

// Drawing constants
const (
	SliderHandleSize    float32 = 10
	SliderLineThickness float32 = 2
	LabelFontSize       float32 = 18
	LabelYOffset        float32 = 20
	ValueXOffset        float32 = 10
	ButtonBorderWidth   float32 = 2
	RadioFrameWidth     float32 = 1
)

// OpKind selects the primitive a DrawOp asks for
type OpKind int

const (
	OpRect OpKind = iota
	OpRectOutline
	OpText
	OpCircle
	OpCircleOutline
)

// Ink is a semantic colour the renderer maps onto its palette
type Ink int

const (
	InkForeground Ink = iota
	InkTrack
	InkHandle
	InkPressed
)

// DrawOp is a single draw request. Rect ops use Bounds; text ops use
// Bounds.X/Y as the top-left of the text, Text and FontSize; circle ops use
// Center and Radius.
type DrawOp struct {
	Kind        OpKind
	Ink         Ink
	Bounds      Rect
	StrokeWidth float32
	Text        string
	FontSize    float32
	Center      Point
	Radius      float32
}

// Draw emits the draw requests for every control in the panel
func (p *Panel) Draw(m TextMeasurer) []DrawOp {
	var ops []DrawOp
	for _, s := range p.Sliders {
		ops = append(ops, s.Draw()...)
	}
	for i, b := range p.Buttons {
		ops = append(ops, b.Draw(m, p.Pressed(i))...)
	}
	for _, g := range p.Radios {
		ops = append(ops, g.Draw()...)
	}
	return ops
}

// Draw emits the label, value readout, track and handle of the slider
func (s *Slider) Draw() []DrawOp {
	b := s.Bounds
	handleX := b.X + b.Width*s.Ratio() - SliderHandleSize/2
	return []DrawOp{
		{Kind: OpText, Ink: InkForeground, Text: s.Label, FontSize: LabelFontSize,
			Bounds: Rect{X: b.X, Y: b.Y - LabelYOffset}},
		{Kind: OpText, Ink: InkForeground, Text: strconv.Itoa(s.Value), FontSize: LabelFontSize,
			Bounds: Rect{X: b.X + b.Width + ValueXOffset, Y: b.Y}},
		{Kind: OpRect, Ink: InkTrack,
			Bounds: Rect{X: b.X, Y: b.Y + SliderHandleSize/2, Width: b.Width, Height: SliderLineThickness}},
		{Kind: OpRect, Ink: InkHandle,
			Bounds: Rect{X: handleX, Y: b.Y, Width: SliderHandleSize, Height: SliderHandleSize}},
	}
}

// Draw emits the button frame and its centred label, filled when pressed
func (b *Button) Draw(m TextMeasurer, pressed bool) []DrawOp {
	var ops []DrawOp
	if pressed {
		ops = append(ops, DrawOp{Kind: OpRect, Ink: InkPressed, Bounds: b.Bounds})
	}
	ops = append(ops, DrawOp{Kind: OpRectOutline, Ink: InkForeground, Bounds: b.Bounds, StrokeWidth: ButtonBorderWidth})

	size := Size{Width: float32(len(b.Label)) * b.FontSize * 0.6, Height: b.FontSize}
	if m != nil {
		size = m.MeasureText(b.Label, b.FontSize)
	}
	ops = append(ops, DrawOp{
		Kind:     OpText,
		Ink:      InkForeground,
		Text:     b.Label,
		FontSize: b.FontSize,
		Bounds: Rect{
			X: b.Bounds.X + b.Bounds.Width/2 - size.Width/2,
			Y: b.Bounds.Y + b.Bounds.Height/2 - size.Height/2,
		},
	})
	return ops
}

// Draw emits one circle and label per option and a frame around them
func (g *RadioGroup) Draw() []DrawOp {
	var ops []DrawOp
	if g.Label != "" {
		ops = append(ops, DrawOp{Kind: OpText, Ink: InkForeground, Text: g.Label, FontSize: g.FontSize,
			Bounds: Rect{X: g.Bounds.X, Y: g.Bounds.Y - LabelYOffset}})
	}

	var maxWidth, cumHeight float32
	for i, label := range g.Options {
		size := g.measure(label)
		if size.Width > maxWidth {
			maxWidth = size.Width
		}
		rowY := g.Bounds.Y + g.Padding + cumHeight + g.Spacing*float32(i)

		kind := OpCircleOutline
		if i == g.Selected {
			kind = OpCircle
		}
		ops = append(ops,
			DrawOp{Kind: kind, Ink: InkForeground, Radius: g.ButtonRadius,
				Center: Point{X: g.Bounds.X + g.Padding + g.ButtonRadius, Y: rowY + g.ButtonRadius}},
			DrawOp{Kind: OpText, Ink: InkForeground, Text: label, FontSize: g.FontSize,
				Bounds: Rect{X: g.Bounds.X + g.Padding + g.ButtonRadius*2 + g.Spacing, Y: rowY}},
		)
		cumHeight += size.Height
	}

	frameHeight := cumHeight + g.Padding*2
	if n := len(g.Options); n > 1 {
		frameHeight += g.Spacing * float32(n-1)
	}
	ops = append(ops, DrawOp{
		Kind:        OpRectOutline,
		Ink:         InkForeground,
		StrokeWidth: RadioFrameWidth,
		Bounds: Rect{
			X:      g.Bounds.X,
			Y:      g.Bounds.Y,
			Width:  maxWidth + g.ButtonRadius*2 + g.Spacing + g.Padding*2,
			Height: frameHeight,
		},
	})
	return ops
}
