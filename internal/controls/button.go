package controls

// Button is a labelled push button. Whether it is pressed is tracked by the
// Panel that owns it.
type Button struct {
	Label    string
	Bounds   Rect
	FontSize float32
}

// NewButton creates a button
func NewButton(label string, bounds Rect, fontSize float32) *Button {
	return &Button{Label: label, Bounds: bounds, FontSize: fontSize}
}

// HitTest reports whether p falls inside the button
func (b *Button) HitTest(p Point) bool {
	return b.Bounds.Contains(p)
}
