package controls

import "fmt"

// TargetKind enumerates what the pointer is currently captured by
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetBackground
	TargetSlider
	TargetButton
	TargetRadioGroup
)

// String returns a short name for logs
func (k TargetKind) String() string {
	switch k {
	case TargetNone:
		return "none"
	case TargetBackground:
		return "background"
	case TargetSlider:
		return "slider"
	case TargetButton:
		return "button"
	case TargetRadioGroup:
		return "radio_group"
	default:
		return "unknown"
	}
}

// Target identifies an interaction target. Index is a handle into the
// Panel collection matching Kind and is meaningless for None and Background.
type Target struct {
	Kind  TargetKind
	Index int
}

// NoTarget is the released state
var NoTarget = Target{Kind: TargetNone, Index: -1}

// Is reports whether t refers to the given control
func (t Target) Is(kind TargetKind, index int) bool {
	return t.Kind == kind && t.Index == index
}

// String returns e.g. "slider[2]"
func (t Target) String() string {
	switch t.Kind {
	case TargetSlider, TargetButton, TargetRadioGroup:
		return fmt.Sprintf("%s[%d]", t.Kind, t.Index)
	default:
		return t.Kind.String()
	}
}
