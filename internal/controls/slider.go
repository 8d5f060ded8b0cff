package controls

// Slider is a bounded integer input quantized to Step.
//
// Value stays within [Min, Max] and on a multiple of Step after every
// pointer, wheel or keyboard update. When Step does not divide Max the
// largest reachable value is Max - Max%Step; likewise the smallest is the
// first multiple of Step not below Min.
type Slider struct {
	Label  string
	Bounds Rect
	Min    int
	Max    int
	Value  int
	Step   int
}

// NewSlider creates a slider and snaps the initial value onto the step grid
func NewSlider(label string, bounds Rect, min, max, value, step int) *Slider {
	if step <= 0 {
		step = 1
	}
	if max < min {
		min, max = max, min
	}
	s := &Slider{
		Label:  label,
		Bounds: bounds,
		Min:    min,
		Max:    max,
		Step:   step,
	}
	s.SetValue(value)
	return s
}

// HitTest reports whether p falls on the slider. The whole track is
// clickable, not only the handle.
func (s *Slider) HitTest(p Point) bool {
	return s.Bounds.Contains(p)
}

// SetValueFromPointer maps the pointer's horizontal position onto the
// slider range. The x coordinate is clamped to the track, normalised,
// scaled by Max and truncated down to a multiple of Step.
func (s *Slider) SetValueFromPointer(p Point) {
	if s.Bounds.Width <= 0 {
		s.SetValue(s.lowest())
		return
	}
	offset := clampf(p.X, s.Bounds.X, s.Bounds.X+s.Bounds.Width) - s.Bounds.X
	scaled := int(offset / s.Bounds.Width * float32(s.Max))
	s.SetValue(scaled - floorMod(scaled, s.step()))
}

// Nudge moves the value by the given number of steps, clamped to the range
func (s *Slider) Nudge(steps int) {
	s.SetValue(s.Value + steps*s.step())
}

// SetValue stores v clamped to the reachable range. Values off the step
// grid are truncated down to the previous multiple.
func (s *Slider) SetValue(v int) {
	v -= floorMod(v, s.step())
	s.Value = clamp(v, s.lowest(), s.highest())
}

// Ratio returns the handle position along the track in [0, 1]
func (s *Slider) Ratio() float32 {
	if s.Max == 0 {
		return 0
	}
	return clampf(float32(s.Value)/float32(s.Max), 0, 1)
}

func (s *Slider) step() int {
	if s.Step <= 0 {
		return 1
	}
	return s.Step
}

// lowest is the first multiple of Step that is not below Min
func (s *Slider) lowest() int {
	step := s.step()
	lo := s.Min - floorMod(s.Min, step)
	if lo < s.Min {
		lo += step
	}
	if lo > s.highest() {
		return s.highest()
	}
	return lo
}

// highest is the last multiple of Step that does not exceed Max
func (s *Slider) highest() int {
	return s.Max - floorMod(s.Max, s.step())
}
