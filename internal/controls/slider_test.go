package controls

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlider(t *testing.T) {
	s := NewSlider("volume", Rect{X: 0, Y: 0, Width: 100, Height: 20}, 1, 150, 100, 5)
	assert.Equal(t, 100, s.Value)

	t.Run("initial value snapped to the grid", func(t *testing.T) {
		s := NewSlider("crop", Rect{Width: 100, Height: 20}, 0, 1000, 120, 50)
		assert.Equal(t, 100, s.Value)
	})

	t.Run("non-positive step falls back to one", func(t *testing.T) {
		s := NewSlider("crf", Rect{Width: 100, Height: 20}, 1, 64, 28, 0)
		assert.Equal(t, 1, s.Step)
		assert.Equal(t, 28, s.Value)
	})
}

func TestSlider_HitTest(t *testing.T) {
	s := NewSlider("crf", Rect{X: 250, Y: 200, Width: 150, Height: 20}, 1, 64, 28, 1)

	tests := []struct {
		name     string
		point    Point
		expected bool
	}{
		{"left edge of track", Point{X: 250, Y: 210}, true},
		{"far from handle but on track", Point{X: 399, Y: 219}, true},
		{"right edge is exclusive", Point{X: 400, Y: 210}, false},
		{"above track", Point{X: 300, Y: 199}, false},
		{"below track", Point{X: 300, Y: 220}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, s.HitTest(test.point))
		})
	}
}

func TestSlider_SetValueFromPointer(t *testing.T) {
	bounds := Rect{X: 100, Y: 100, Width: 150, Height: 20}

	tests := []struct {
		name     string
		min      int
		max      int
		step     int
		x        float32
		expected int
	}{
		{"rightmost bound reaches max", 0, 1000, 50, 250, 1000},
		{"beyond the right bound is clamped", 0, 1000, 50, 900, 1000},
		{"left of the track is clamped", 0, 1000, 50, -40, 0},
		{"middle truncates to a lower multiple", 0, 1000, 50, 175, 500},
		{"truncation instead of rounding", 0, 1000, 50, 100 + 150*0.099, 50},
		{"step not dividing max stops short", 1, 64, 5, 250, 60},
		{"quality slider at its right end", 1, 64, 1, 250, 64},
		{"volume never drops below its smallest step", 1, 150, 5, 100, 5},
		{"volume at right end", 1, 150, 5, 250, 150},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := NewSlider("s", bounds, test.min, test.max, test.min, test.step)
			s.SetValueFromPointer(Point{X: test.x, Y: 110})
			assert.Equal(t, test.expected, s.Value)
		})
	}
}

func TestSlider_Nudge(t *testing.T) {
	s := NewSlider("volume", Rect{Width: 150, Height: 20}, 1, 150, 10, 5)

	s.Nudge(-1)
	assert.Equal(t, 5, s.Value)
	s.Nudge(-1)
	assert.Equal(t, 5, s.Value, "clamped at the smallest reachable value")

	s.SetValue(145)
	s.Nudge(1)
	assert.Equal(t, 150, s.Value)
	s.Nudge(1)
	assert.Equal(t, 150, s.Value, "clamped at max")
}

func TestSlider_InvariantsHoldUnderRandomInput(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	sliders := []*Slider{
		NewSlider("crf", Rect{X: 250, Y: 200, Width: 150, Height: 20}, 1, 64, 28, 1),
		NewSlider("crop", Rect{X: 250, Y: 150, Width: 150, Height: 20}, 0, 1000, 0, 50),
		NewSlider("volume", Rect{X: 250, Y: 300, Width: 150, Height: 20}, 1, 150, 100, 5),
		NewSlider("odd", Rect{X: 250, Y: 350, Width: 150, Height: 20}, 3, 64, 10, 7),
	}

	for i := 0; i < 5000; i++ {
		s := sliders[rng.Intn(len(sliders))]
		switch rng.Intn(3) {
		case 0:
			s.SetValueFromPointer(Point{X: rng.Float32()*400 + 100, Y: s.Bounds.Y})
		case 1:
			s.Nudge(-1)
		case 2:
			s.Nudge(1)
		}
		require.GreaterOrEqual(t, s.Value, s.Min, s.Label)
		require.LessOrEqual(t, s.Value, s.Max, s.Label)
		require.Zero(t, s.Value%s.Step, s.Label)
	}
}

func TestSlider_Ratio(t *testing.T) {
	s := NewSlider("crop", Rect{Width: 150, Height: 20}, 0, 1000, 250, 50)
	assert.InDelta(t, 0.25, s.Ratio(), 1e-6)

	zero := &Slider{}
	assert.Zero(t, zero.Ratio())
}
