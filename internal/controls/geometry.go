package controls

// Point is a position in panel coordinates
type Point struct {
	X float32
	Y float32
}

// Size is a width/height pair as returned by text measurement
type Size struct {
	Width  float32
	Height float32
}

// Rect is an axis-aligned rectangle anchored at its top-left corner
type Rect struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// Contains reports whether p lies inside r. The left and top edges are
// inclusive, the right and bottom edges exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// TextMeasurer reports the rendered size of a label at a font size
type TextMeasurer interface {
	MeasureText(text string, fontSize float32) Size
}

// MeasureFunc adapts a function to TextMeasurer
type MeasureFunc func(text string, fontSize float32) Size

// MeasureText calls f
func (f MeasureFunc) MeasureText(text string, fontSize float32) Size {
	return f(text, fontSize)
}

func clampf(value, lo, hi float32) float32 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// floorMod is the Euclidean remainder, never negative for positive m
func floorMod(v, m int) int {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}
