package controls

// Radio group layout defaults
const (
	DefaultRadioFontSize     float32 = 12
	DefaultRadioButtonRadius float32 = 5
	DefaultRadioSpacing      float32 = 5
	DefaultRadioPadding      float32 = 10
)

// RadioGroup is a set of mutually exclusive labelled options stacked
// vertically inside Bounds. Selected is always a valid index into Options;
// the first option is the default.
type RadioGroup struct {
	Label        string
	Bounds       Rect
	Options      []string
	Selected     int
	FontSize     float32
	ButtonRadius float32
	Spacing      float32
	Padding      float32

	measurer TextMeasurer
}

// NewRadioGroup creates a radio group owning a copy of options. Row heights
// are derived from the rendered label sizes reported by measurer.
func NewRadioGroup(label string, bounds Rect, options []string, measurer TextMeasurer) *RadioGroup {
	owned := make([]string, len(options))
	copy(owned, options)
	return &RadioGroup{
		Label:        label,
		Bounds:       bounds,
		Options:      owned,
		FontSize:     DefaultRadioFontSize,
		ButtonRadius: DefaultRadioButtonRadius,
		Spacing:      DefaultRadioSpacing,
		Padding:      DefaultRadioPadding,
		measurer:     measurer,
	}
}

// HitTest returns the index of the option row under p, scanning in
// declaration order. It returns (-1, false) when no row matches.
func (g *RadioGroup) HitTest(p Point) (int, bool) {
	for i, row := range g.rows() {
		if row.Contains(p) {
			return i, true
		}
	}
	return -1, false
}

// SetValueFromPointer selects the option under p. A point outside every
// row leaves the selection unchanged.
func (g *RadioGroup) SetValueFromPointer(p Point) bool {
	option, ok := g.HitTest(p)
	if !ok {
		return false
	}
	g.Selected = option
	return true
}

// Select sets the selection by index, ignoring out-of-range values
func (g *RadioGroup) Select(option int) bool {
	if option < 0 || option >= len(g.Options) {
		return false
	}
	g.Selected = option
	return true
}

// rows computes the clickable rectangle of every option: the button circle
// plus its label, stacked with Spacing between rows.
func (g *RadioGroup) rows() []Rect {
	rows := make([]Rect, 0, len(g.Options))
	var cumHeight float32
	for i, label := range g.Options {
		size := g.measure(label)
		rows = append(rows, Rect{
			X:      g.Bounds.X + g.Padding,
			Y:      g.Bounds.Y + g.Padding + cumHeight + g.Spacing*float32(i),
			Width:  size.Width + g.ButtonRadius*2 + g.Spacing,
			Height: size.Height,
		})
		cumHeight += size.Height
	}
	return rows
}

func (g *RadioGroup) measure(text string) Size {
	if g.measurer == nil {
		// Rough fallback for a monospace face: 0.6em advance, 1.2em line
		return Size{Width: float32(len(text)) * g.FontSize * 0.6, Height: g.FontSize * 1.2}
	}
	return g.measurer.MeasureText(text, g.FontSize)
}
