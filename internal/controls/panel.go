package controls

// Key is a keyboard command understood by the panel
type Key int

const (
	// KeyDecrease steps the last-touched slider down
	KeyDecrease Key = iota
	// KeyIncrease steps the last-touched slider up
	KeyIncrease
)

// Panel owns a set of controls and routes pointer, wheel and keyboard input
// to them.
//
// A press captures the first control under the pointer, in priority order
// sliders, buttons, radio groups, or the background when nothing matches.
// The capture lasts until the matching release. The last captured target
// is remembered across releases so keyboard nudges keep going to the slider
// that was touched most recently.
type Panel struct {
	Sliders []*Slider
	Buttons []*Button
	Radios  []*RadioGroup

	// OnButton is called when a press and release both land on a button
	OnButton func(index int)
	// OnChange is called after any control value changed
	OnChange func(target Target)

	current Target
	last    Target
	pointer Point
	held    bool
}

// NewPanel creates an empty panel
func NewPanel() *Panel {
	return &Panel{current: NoTarget, last: NoTarget}
}

// AddSlider appends a slider and returns its handle
func (p *Panel) AddSlider(s *Slider) Target {
	p.Sliders = append(p.Sliders, s)
	return Target{Kind: TargetSlider, Index: len(p.Sliders) - 1}
}

// AddButton appends a button and returns its handle
func (p *Panel) AddButton(b *Button) Target {
	p.Buttons = append(p.Buttons, b)
	return Target{Kind: TargetButton, Index: len(p.Buttons) - 1}
}

// AddRadioGroup appends a radio group and returns its handle
func (p *Panel) AddRadioGroup(g *RadioGroup) Target {
	p.Radios = append(p.Radios, g)
	return Target{Kind: TargetRadioGroup, Index: len(p.Radios) - 1}
}

// Current returns the target holding the pointer capture
func (p *Panel) Current() Target {
	return p.current
}

// Last returns the most recent target captured by a press
func (p *Panel) Last() Target {
	return p.last
}

// SetLast restores a remembered target, e.g. on a panel rebuilt with the
// same layout. Handles that do not exist on this panel are ignored.
func (p *Panel) SetLast(t Target) {
	var n int
	switch t.Kind {
	case TargetSlider:
		n = len(p.Sliders)
	case TargetButton:
		n = len(p.Buttons)
	case TargetRadioGroup:
		n = len(p.Radios)
	case TargetNone, TargetBackground:
		p.last = t
		return
	default:
		return
	}
	if t.Index < 0 || t.Index >= n {
		return
	}
	p.last = t
}

// Pointer returns the last known pointer position
func (p *Panel) Pointer() Point {
	return p.pointer
}

// Held reports whether the primary button is down
func (p *Panel) Held() bool {
	return p.held
}

// HitTest returns the control under pt in capture priority order, or
// Background when nothing matches.
func (p *Panel) HitTest(pt Point) Target {
	for i, s := range p.Sliders {
		if s.HitTest(pt) {
			return Target{Kind: TargetSlider, Index: i}
		}
	}
	for i, b := range p.Buttons {
		if b.HitTest(pt) {
			return Target{Kind: TargetButton, Index: i}
		}
	}
	for i, g := range p.Radios {
		if _, ok := g.HitTest(pt); ok {
			return Target{Kind: TargetRadioGroup, Index: i}
		}
	}
	return Target{Kind: TargetBackground, Index: -1}
}

// PointerDown handles a primary button press at pt
func (p *Panel) PointerDown(pt Point) {
	p.pointer = pt
	p.held = true
	if p.current.Kind == TargetNone {
		p.current = p.HitTest(pt)
	}
	p.last = p.current
	p.dragCaptured()
}

// PointerMove handles pointer motion. Only a captured slider reacts, and
// only while the button is held.
func (p *Panel) PointerMove(pt Point) {
	p.pointer = pt
	if !p.held {
		return
	}
	p.dragCaptured()
}

// PointerUp handles the release at pt and drops the capture. A captured
// radio group re-hit-tests the release point; a captured button fires only
// when released over itself.
func (p *Panel) PointerUp(pt Point) {
	p.pointer = pt
	p.held = false
	target := p.current
	p.current = NoTarget

	switch target.Kind {
	case TargetRadioGroup:
		g := p.Radios[target.Index]
		before := g.Selected
		if g.SetValueFromPointer(pt) && g.Selected != before {
			p.changed(target)
		}
	case TargetButton:
		if p.Buttons[target.Index].HitTest(pt) && p.OnButton != nil {
			p.OnButton(target.Index)
		}
	}
}

// Release drops the capture without acting on it, e.g. when the pointer
// leaves the window mid-drag.
func (p *Panel) Release() {
	p.held = false
	p.current = NoTarget
}

// Wheel nudges every slider under pt by one step against the wheel
// direction: a positive delta (wheel up) lowers the value. Capture and
// button state are ignored.
func (p *Panel) Wheel(pt Point, delta float32) {
	p.pointer = pt
	if delta == 0 {
		return
	}
	steps := 1
	if delta > 0 {
		steps = -1
	}
	for i, s := range p.Sliders {
		if !s.HitTest(pt) {
			continue
		}
		before := s.Value
		s.Nudge(steps)
		if s.Value != before {
			p.changed(Target{Kind: TargetSlider, Index: i})
		}
	}
}

// KeyPressed nudges the last-captured slider, if the last capture was one
func (p *Panel) KeyPressed(key Key) {
	if p.last.Kind != TargetSlider {
		return
	}
	s := p.Sliders[p.last.Index]
	before := s.Value
	switch key {
	case KeyDecrease:
		s.Nudge(-1)
	case KeyIncrease:
		s.Nudge(1)
	}
	if s.Value != before {
		p.changed(p.last)
	}
}

// Pressed reports whether the given button currently holds the capture
func (p *Panel) Pressed(index int) bool {
	return p.current.Is(TargetButton, index)
}

func (p *Panel) dragCaptured() {
	if p.current.Kind != TargetSlider {
		return
	}
	s := p.Sliders[p.current.Index]
	before := s.Value
	s.SetValueFromPointer(p.pointer)
	if s.Value != before {
		p.changed(p.current)
	}
}

func (p *Panel) changed(t Target) {
	if p.OnChange != nil {
		p.OnChange(t)
	}
}
